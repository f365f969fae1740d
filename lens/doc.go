// Package lens projects a standardized feature matrix onto a 2-D plane while
// preserving local neighborhood structure, producing the "lens" that the cover
// generator tiles.
//
// 🚀 What is a lens?
//
//	The mapper construction never clusters in projection space; it only uses
//	the projection to decide which records share a cover element. A good lens
//	therefore needs faithful *local* neighborhoods much more than faithful
//	global distances, which is exactly the trade a stochastic neighborhood
//	embedding (the t-SNE family) makes.
//
// ✨ Key properties:
//   - fixed 2-D output (Dims); arbitrary filter functions are a non-goal
//   - perplexity analogue exposed as Options.NeighborhoodSize
//   - fully deterministic under Options.Seed (seed 0 ⇒ stable default), so
//     pipeline runs are reproducible end to end
//   - classic schedule: early exaggeration, two-phase momentum, adaptive gains
//
// ⚙️ Usage:
//
//	opts := lens.DefaultOptions()
//	opts.NeighborhoodSize = 5 // must stay below the record count
//	opts.Seed = 42
//
//	projected, err := lens.Project(standardized, opts)
//
// Performance:
//
//   - Time:   O(MaxIter·N²)
//   - Memory: O(N²)
//
// Errors:
//
//   - ErrEmptyDataset: nil or zero-size input matrix.
//   - ErrNeighborhoodSize: NeighborhoodSize < 1 or >= N.
//   - ErrGradientConfig: MaxIter < 1 or LearningRate <= 0.
package lens
