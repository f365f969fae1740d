package cluster

import (
	"fmt"
	"sort"

	"gonum.org/v1/gonum/mat"
)

// Label values used while expanding clusters.
const (
	labelUndefined = 0
	labelNoise     = -1
)

// Clusters runs DBSCAN over the rows of m listed in members and returns the
// resulting clusters as slices of original row indices.
//
// Distances are Euclidean over the FULL feature row, not over any projection:
// clustering in feature space keeps dimensions a 2-D lens would collapse.
// Only the listed rows participate; rows outside members never bridge two
// clusters.
//
// Behavior:
//   - zero members ⇒ zero clusters, no error (an empty cover element simply
//     contributes nothing);
//   - points whose neighborhood is smaller than MinSamples and that are not
//     density-reachable from a core point are noise and appear in no cluster
//     (documented policy, not an error — impossible at MinSamples == 1);
//   - clusters come back in discovery order with members sorted ascending,
//     and the caller's member order never changes the outcome: the member
//     list is copied and scanned in ascending index order.
//
// Errors: ErrEps, ErrMinSamples, ErrEmptyDataset (nil or zero-size matrix
// with a non-empty member list), ErrMemberRange.
//
// Complexity: O(M²·D) time for M members, O(M) space beyond the output.
func Clusters(m *mat.Dense, members []int, opts Options) ([][]int, error) {
	// Stage 1 - option validation.
	if opts.Eps <= 0 {
		return nil, fmt.Errorf("cluster: eps %g: %w", opts.Eps, ErrEps)
	}
	if opts.MinSamples < 1 {
		return nil, fmt.Errorf("cluster: min samples %d: %w", opts.MinSamples, ErrMinSamples)
	}
	if len(members) == 0 {
		return nil, nil
	}

	// Stage 2 - input validation.
	if m == nil {
		return nil, ErrEmptyDataset
	}
	n, d := m.Dims()
	if n == 0 || d == 0 {
		return nil, ErrEmptyDataset
	}

	local := append([]int(nil), members...)
	sort.Ints(local)
	for _, idx := range local {
		if idx < 0 || idx >= n {
			return nil, fmt.Errorf("cluster: member %d with %d rows: %w", idx, n, ErrMemberRange)
		}
	}

	// Stage 3 - label expansion (classic DBSCAN over local positions).
	labels := make([]int, len(local))
	epsSq := opts.Eps * opts.Eps
	clusterID := 0

	for p := range local {
		if labels[p] != labelUndefined {
			continue
		}
		neigh := rangeQuery(m, local, p, epsSq)
		if len(neigh) < opts.MinSamples {
			labels[p] = labelNoise
			continue
		}

		clusterID++
		labels[p] = clusterID

		// Seed set: grow the cluster through every reachable core point.
		seeds := make([]int, 0, len(neigh))
		for _, q := range neigh {
			if q != p {
				seeds = append(seeds, q)
			}
		}
		for i := 0; i < len(seeds); i++ {
			q := seeds[i]
			if labels[q] == labelNoise {
				labels[q] = clusterID // border point reached by a core
			}
			if labels[q] != labelUndefined {
				continue
			}
			labels[q] = clusterID
			qNeigh := rangeQuery(m, local, q, epsSq)
			if len(qNeigh) >= opts.MinSamples {
				seeds = append(seeds, qNeigh...)
			}
		}
	}

	// Stage 4 - collect clusters; ascending local scan keeps members sorted.
	out := make([][]int, clusterID)
	for p, lab := range labels {
		if lab == labelNoise {
			continue
		}
		out[lab-1] = append(out[lab-1], local[p])
	}
	return out, nil
}

// rangeQuery returns every local position whose row lies within eps of the
// row at local position p (inclusive, squared distances); p itself included.
// Positions come back in ascending order.
func rangeQuery(m *mat.Dense, local []int, p int, epsSq float64) []int {
	base := m.RawRowView(local[p])
	var neigh []int
	for q := range local {
		row := m.RawRowView(local[q])
		var s float64
		for k := range base {
			diff := base[k] - row[k]
			s += diff * diff
		}
		if s <= epsSq {
			neigh = append(neigh, q)
		}
	}
	return neigh
}
