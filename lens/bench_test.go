package lens_test

import (
	"testing"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/mapgraph/lens"
)

// benchmarkProject runs Project on n synthetic 5-D records with the given
// iteration budget. It resets the timer after fixture construction and fails
// on unexpected errors.
func benchmarkProject(b *testing.B, n, maxIter int) {
	const d = 5
	m := mat.NewDense(n, d, nil)
	for i := 0; i < n; i++ {
		for k := 0; k < d; k++ {
			m.Set(i, k, float64((i*7+k*3)%13)) // predictable spread
		}
	}
	opts := lens.DefaultOptions()
	opts.NeighborhoodSize = float64(n) / 3
	opts.MaxIter = maxIter

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := lens.Project(m, opts); err != nil {
			b.Fatalf("Project failed: %v", err)
		}
	}
}

// BenchmarkProject_Small benchmarks the reference dataset scale.
func BenchmarkProject_Small(b *testing.B) {
	benchmarkProject(b, 18, 500)
}

// BenchmarkProject_Medium benchmarks a few hundred records with a short
// gradient budget.
func BenchmarkProject_Medium(b *testing.B) {
	benchmarkProject(b, 200, 100)
}
