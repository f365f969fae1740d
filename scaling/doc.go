// Package scaling prepares raw feature columns for projection and
// clustering: range normalization for engineered scores and column-wise
// standardization for the full feature matrix.
//
// What:
//
//   - NormalizeToRange maps a slice onto [low, high] by min-max scaling;
//     constant input collapses to the midpoint (documented policy, not an error).
//   - Standardize rescales every column of an N×D matrix to zero mean and
//     unit variance (population standard deviation).
//
// Why:
//
//   - Stochastic neighborhood embeddings and density clustering both assume
//     commensurable feature scales; a single dominant column would otherwise
//     decide every distance.
//
// Errors:
//
//   - ErrEmptyDataset: the matrix has no rows or no columns.
//   - ErrDegenerateColumn: a column carries no information (zero variance);
//     standardizing it would divide by zero, so the run aborts instead of
//     producing a misleading embedding.
//
// Complexity:
//
//   - NormalizeToRange: O(n) time, O(n) space.
//   - Standardize:      O(N·D) time, O(N·D) space.
package scaling
