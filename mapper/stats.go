package mapper

import (
	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"
)

// Stats summarizes the assembled graph for reporting.
type Stats struct {
	// NumNodes is the node count.
	NumNodes int
	// NumEdges counts stored unordered pairs; no pair appears twice.
	NumEdges int
	// NumComponents is the number of connected components.
	NumComponents int
	// MaxDegree is the largest node degree, 0 for an edgeless graph.
	MaxDegree int
	// CoveredRecords counts distinct records present in at least one node.
	// A value below the dataset size reveals records dropped as noise.
	CoveredRecords int
}

// ToSimple converts the graph into a gonum undirected graph whose node IDs
// are the ordinals into g.Nodes, for interop with gonum's graph algorithms.
//
// Complexity: O(Nodes + Edges) time and space.
func (g *Graph) ToSimple() *simple.UndirectedGraph {
	sg := simple.NewUndirectedGraph()
	for ord := range g.Nodes {
		sg.AddNode(simple.Node(ord))
	}
	for _, e := range g.Edges {
		sg.SetEdge(sg.NewEdge(simple.Node(e.A), simple.Node(e.B)))
	}
	return sg
}

// Stats computes the summary counts directly from the graph structure; the
// component count comes from gonum's connected-components pass over the
// ToSimple conversion.
//
// Complexity: O(Nodes + Edges + total membership) time.
func (g *Graph) Stats() Stats {
	degree := make([]int, len(g.Nodes))
	for _, e := range g.Edges {
		degree[e.A]++
		degree[e.B]++
	}
	maxDegree := 0
	for _, d := range degree {
		if d > maxDegree {
			maxDegree = d
		}
	}

	seen := make(map[int]struct{})
	for _, node := range g.Nodes {
		for _, rec := range node.Members {
			seen[rec] = struct{}{}
		}
	}

	components := 0
	if len(g.Nodes) > 0 {
		components = len(topo.ConnectedComponents(g.ToSimple()))
	}

	return Stats{
		NumNodes:       len(g.Nodes),
		NumEdges:       len(g.Edges),
		NumComponents:  components,
		MaxDegree:      maxDegree,
		CoveredRecords: len(seen),
	}
}
