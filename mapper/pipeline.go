package mapper

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/mapgraph/cluster"
	"github.com/katalvlaran/mapgraph/cover"
	"github.com/katalvlaran/mapgraph/lens"
	"github.com/katalvlaran/mapgraph/scaling"
)

// Map runs the full mapper construction over an engineered feature matrix:
// standardize → project → cover → cluster per element → assemble.
//
// features is the raw (engineered) N×D matrix; colors supplies one external
// coloring value per record for the node statistic. Every stage is
// deterministic given Params, including the stochastic projection through
// its seed, so the same call always returns the same graph.
//
// Stage errors are wrapped with the stage name and keep their package
// sentinels reachable through errors.Is.
//
// Complexity: dominated by the projection, O(Lens.MaxIter·N²).
func Map(features *mat.Dense, colors []float64, p Params) (*Graph, error) {
	if features == nil {
		return nil, ErrEmptyDataset
	}
	n, d := features.Dims()
	if n == 0 || d == 0 {
		return nil, ErrEmptyDataset
	}
	if len(colors) != n {
		return nil, fmt.Errorf("mapper: %d coloring values for %d records: %w",
			len(colors), n, ErrColorLength)
	}

	std, err := scaling.Standardize(features)
	if err != nil {
		return nil, fmt.Errorf("mapper: standardize: %w", err)
	}

	projected, err := lens.Project(std, p.Lens)
	if err != nil {
		return nil, fmt.Errorf("mapper: project: %w", err)
	}

	elements, err := cover.Build(projected, p.Cover)
	if err != nil {
		return nil, fmt.Errorf("mapper: cover: %w", err)
	}

	// Clustering runs on the standardized matrix, scoped per element; the
	// lens never measures similarity.
	clustersByElement := make([][][]int, len(elements))
	for i, e := range elements {
		cs, err := cluster.Clusters(std, e.Members, p.Cluster)
		if err != nil {
			return nil, fmt.Errorf("mapper: cluster element %d: %w", e.ID, err)
		}
		clustersByElement[i] = cs
	}

	return Assemble(elements, clustersByElement, colors, p.Color)
}
