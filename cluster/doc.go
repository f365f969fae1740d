// Package cluster groups the records of one cover element into density-based
// clusters with DBSCAN over the standardized feature matrix.
//
// What:
//
//   - Clusters restricts the matrix to a member-index subset, finds core
//     points (eps-neighborhood of at least MinSamples points, self included),
//     and grows clusters through density-reachability.
//   - Each returned cluster is an ascending slice of original row indices,
//     always a subset of the member list.
//
// Why:
//
//   - Clustering runs in FULL standardized feature space rather than lens
//     space: the 2-D lens exists only to scope which records are compared,
//     never to measure their similarity, so discriminating dimensions are
//     not collapsed away.
//
// Noise policy:
//
//   - Points that are neither core nor density-reachable are noise and join
//     no cluster. With MinSamples == 1 (the reference tuning) every point is
//     core, so the graph provably covers all records; loosen MinSamples and
//     the pipeline surfaces any drops through its coverage statistic.
//
// Complexity:
//
//   - Clusters: O(M²·D) time for M members, O(M) extra memory.
//
// Errors:
//
//   - ErrEps: eps <= 0.
//   - ErrMinSamples: MinSamples < 1.
//   - ErrEmptyDataset: nil/zero-size matrix with a non-empty member list.
//   - ErrMemberRange: member index outside the matrix rows.
package cluster
