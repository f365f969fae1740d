package mapper

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/mapgraph/cover"
)

// Assemble stitches per-element clusters into the final mapper graph.
//
// Algorithm outline:
//  1. One node per cluster, walking elements and their clusters in order;
//     node identity is positional and survives re-runs.
//  2. An inverted index (record → node ordinals) folds the member lists once;
//     every record then bumps the weight of each node pair it belongs to, so
//     an edge's weight arrives as exactly the intersection size and pairs
//     with empty intersections never materialize. Near-linear in the total
//     membership size rather than quadratic in nodes.
//  3. Each node is colored with the configured statistic over the external
//     coloring values of its members.
//
// Edges come back sorted by (A, B); nodes keep element-then-cluster order.
//
// Errors: ErrShapeMismatch when the cluster lists do not line up with the
// elements, ErrEmptyCluster for an empty cluster, ErrColorLength when a
// member index has no coloring value.
//
// Complexity: O(T·k + E log E) time for total membership T, per-record node
// multiplicity k and edge count E.
func Assemble(elements []cover.Element, clustersByElement [][][]int, colors []float64, cf ColorFunc) (*Graph, error) {
	if len(clustersByElement) != len(elements) {
		return nil, fmt.Errorf("mapper: %d cluster lists for %d elements: %w",
			len(clustersByElement), len(elements), ErrShapeMismatch)
	}

	// Stage 1 - nodes, in element-then-cluster order.
	var nodes []Node
	for e, elem := range elements {
		for k, members := range clustersByElement[e] {
			if len(members) == 0 {
				return nil, fmt.Errorf("mapper: element %d cluster %d: %w", elem.ID, k, ErrEmptyCluster)
			}
			color, err := colorStat(colors, members, cf)
			if err != nil {
				return nil, err
			}
			nodes = append(nodes, Node{
				ID:      fmt.Sprintf("cube%d_cluster%d", elem.ID, k),
				Element: elem.ID,
				Members: members,
				Color:   color,
			})
		}
	}

	// Stage 2 - inverted index: record -> ordinals of the nodes holding it.
	byRecord := make(map[int][]int)
	for ord, node := range nodes {
		for _, rec := range node.Members {
			byRecord[rec] = append(byRecord[rec], ord)
		}
	}

	// Stage 3 - shared membership becomes edges; each shared record adds one
	// unit of weight to its node pairs.
	weights := make(map[[2]int]int)
	for _, ords := range byRecord {
		for i := 0; i < len(ords); i++ {
			for j := i + 1; j < len(ords); j++ {
				weights[[2]int{ords[i], ords[j]}]++
			}
		}
	}

	edges := make([]Edge, 0, len(weights))
	for pair, w := range weights {
		edges = append(edges, Edge{A: pair[0], B: pair[1], Weight: w})
	}
	sort.Slice(edges, func(i, j int) bool {
		if edges[i].A != edges[j].A {
			return edges[i].A < edges[j].A
		}
		return edges[i].B < edges[j].B
	})

	return &Graph{Nodes: nodes, Edges: edges}, nil
}

// colorStat reduces the coloring values of the given members with the
// configured statistic.
func colorStat(colors []float64, members []int, cf ColorFunc) (float64, error) {
	for _, m := range members {
		if m < 0 || m >= len(colors) {
			return 0, fmt.Errorf("mapper: member %d with %d coloring values: %w",
				m, len(colors), ErrColorLength)
		}
	}

	switch cf {
	case ColorMean:
		var sum float64
		for _, m := range members {
			sum += colors[m]
		}
		return sum / float64(len(members)), nil
	case ColorMax:
		best := colors[members[0]]
		for _, m := range members[1:] {
			if v := colors[m]; v > best {
				best = v
			}
		}
		return best, nil
	case ColorMin:
		best := colors[members[0]]
		for _, m := range members[1:] {
			if v := colors[m]; v < best {
				best = v
			}
		}
		return best, nil
	default:
		return 0, fmt.Errorf("mapper: %d: %w", int(cf), ErrColorFunc)
	}
}
