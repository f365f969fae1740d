// Package mapper stitches per-cover-element clusters into the final mapper
// graph and orchestrates the full construction pipeline.
//
// What:
//
//   - Assemble turns every cluster of every cover element into a node, then
//     connects two nodes whenever their member sets share a record; the edge
//     weight is the intersection size. Nodes from different elements are
//     never merged, even when their member sets coincide.
//   - Map runs the whole flow from an engineered feature matrix:
//     standardize → project → cover → cluster per element → assemble.
//   - Graph.Stats reports node, edge, component, degree and coverage counts;
//     Graph.ToSimple converts the result into a gonum undirected graph.
//
// How edges are found:
//
//   - An inverted index (record → node ordinals) is folded once over all
//     member lists; each record then contributes one unit of weight to every
//     node pair holding it. Pairs with empty intersections never materialize,
//     so edge detection is near-linear in the total membership instead of
//     quadratic in the node count.
//
// Determinism:
//
//   - Node identity is positional (cube<element>_cluster<position>), edges
//     are emitted in sorted canonical (A < B) order, and the one stochastic
//     stage is seeded through Params.Lens, so the same input and Params
//     always produce the identical graph.
//
// Errors:
//
//   - ErrEmptyDataset, ErrShapeMismatch, ErrEmptyCluster, ErrColorLength,
//     ErrColorFunc; stage failures from Map keep their package sentinels
//     reachable through errors.Is.
package mapper
