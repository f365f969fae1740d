// Package cover tiles the 2-D lens space with overlapping axis-aligned
// rectangles, the “cover elements” that scope the local clustering step.
//
// What:
//
//   - Build splits the observed range of each lens dimension into Resolution
//     equal-width intervals, widens every interval by OverlapFraction of its
//     width, and crosses the two dimensions into Resolution² elements.
//   - Each Element owns the ascending list of record indices whose lens
//     coordinates fall inside its (inclusive) bounds.
//
// Why:
//
//   - The mapper construction clusters records one element at a time; the
//     overlap makes records appear in adjacent elements, and those shared
//     records later become the graph's edges.
//
// Complexity:
//
//   - Build: O(N·Resolution²) time, O(N + Resolution²) memory.
//
// Options:
//
//   - Options.Resolution: base intervals per dimension (elements = res²).
//   - Options.OverlapFraction: symmetric widening, in [0,1).
//
// Errors:
//
//   - ErrEmptyDataset: the lens has no rows.
//   - ErrLensShape: the lens is not N×2.
//   - ErrResolution: resolution below 1.
//   - ErrOverlapFraction: overlap outside [0,1).
package cover
