package mapper

import (
	"fmt"

	"github.com/katalvlaran/mapgraph/cluster"
	"github.com/katalvlaran/mapgraph/cover"
	"github.com/katalvlaran/mapgraph/lens"
)

// ColorFunc selects the per-node summary statistic computed over the external
// coloring values of the node's members.
type ColorFunc int

const (
	// ColorMean colors a node by the mean coloring value of its members.
	ColorMean ColorFunc = iota
	// ColorMax colors a node by the maximum coloring value of its members.
	ColorMax
	// ColorMin colors a node by the minimum coloring value of its members.
	ColorMin
)

// String returns the lowercase statistic name.
func (f ColorFunc) String() string {
	switch f {
	case ColorMean:
		return "mean"
	case ColorMax:
		return "max"
	case ColorMin:
		return "min"
	default:
		return fmt.Sprintf("ColorFunc(%d)", int(f))
	}
}

// ParseColorFunc maps "mean", "max" or "min" onto the matching ColorFunc;
// anything else errors with ErrColorFunc.
func ParseColorFunc(s string) (ColorFunc, error) {
	switch s {
	case "mean":
		return ColorMean, nil
	case "max":
		return ColorMax, nil
	case "min":
		return ColorMin, nil
	default:
		return 0, fmt.Errorf("mapper: %q: %w", s, ErrColorFunc)
	}
}

// Node wraps one cluster of one cover element.
//
// Nodes from different elements are never merged, even when their member sets
// coincide: the pair (Element, position within the element) is the identity,
// and ID spells it out as cube<element>_cluster<position>.
type Node struct {
	// ID is the stable human-readable identity, e.g. "cube3_cluster0".
	ID string
	// Element is the owning cover element's ID.
	Element int
	// Members lists the record indices of the cluster, ascending.
	Members []int
	// Color is the configured statistic over the members' coloring values.
	Color float64
}

// Size returns the member count.
func (n Node) Size() int { return len(n.Members) }

// Edge joins two nodes whose member sets intersect. A and B are ordinals into
// Graph.Nodes with A < B, so each unordered pair is stored exactly once and
// self-edges cannot exist.
type Edge struct {
	A, B int
	// Weight is the number of shared records.
	Weight int
}

// Graph is the assembled mapper graph. It is built once and never mutated.
type Graph struct {
	Nodes []Node
	Edges []Edge
}

// NumNodes returns the node count.
func (g *Graph) NumNodes() int { return len(g.Nodes) }

// NumEdges returns the number of stored unordered pairs.
func (g *Graph) NumEdges() int { return len(g.Edges) }

// Params bundles the tuning of every pipeline stage.
//
// All values the reference run hand-tuned are explicit here, so callers can
// loosen them — and then watch Stats.CoveredRecords for records dropped as
// noise.
type Params struct {
	Lens    lens.Options
	Cover   cover.Options
	Cluster cluster.Options
	// Color selects the node coloring statistic.
	Color ColorFunc
}

// DefaultParams mirrors the reference pipeline run: perplexity-5 lens,
// resolution 5 with 50% overlap, eps 1.5 with MinSamples 1, mean coloring.
func DefaultParams() Params {
	return Params{
		Lens:    lens.DefaultOptions(),
		Cover:   cover.DefaultOptions(),
		Cluster: cluster.DefaultOptions(),
		Color:   ColorMean,
	}
}
