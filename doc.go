// Package mapgraph builds topological "mapper graphs" over small tabular
// datasets: clusters of similar records, stitched into a graph through a
// reduced 2-D view of the full feature space.
//
// 🚀 What is mapgraph?
//
//	A deterministic, batch-oriented mapper pipeline:
//		• scaling — min-max range normalization & column standardization
//		• lens    — seeded stochastic 2-D neighborhood embedding (t-SNE family)
//		• cover   — overlapping hyperrectangles tiling the lens space
//		• cluster — DBSCAN per cover element, in full feature space
//		• mapper  — nodes from clusters, edges from shared records, statistics
//		• render  — standalone HTML page with a force-directed chart
//		• dataset — fight-song CSV ingestion & feature engineering
//
// ✨ Why choose mapgraph?
//
//   - Reproducible – one explicit seed drives the only stochastic stage
//   - Honest errors – sentinel errors per package, no silent fallbacks
//   - One-way data flow – every stage consumes its input and hands on
//     an immutable result
//
// Quick ASCII sketch of the construction:
//
//	lens space          cover            clusters           graph
//	 ·  ··       →   ┌──┬──┬──┐   →   {0,1} {1,2} {5}  →   A──B   C
//	   ·   ·         │  │██│  │
//	  ·              └──┴──┴──┘        shared record 1 joins A and B
//
// The cmd/mapgraph CLI wires the stages end to end: build renders the HTML
// artifact, stats prints node, edge, component and coverage counts.
//
// Dive into DESIGN.md for the component-by-component rationale.
//
//	go get github.com/katalvlaran/mapgraph
package mapgraph
