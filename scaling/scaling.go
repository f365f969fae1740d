package scaling

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// NormalizeToRange min-max scales values onto [low, high] and returns a new
// slice; the input is never mutated.
//
// Policy: when every value is equal (max == min) the linear map is undefined,
// so every element receives the midpoint (low+high)/2. This is a documented
// fixed policy, not an error: a constant engineered score is still a valid
// score, it just carries no spread.
//
// Complexity: O(n) time, O(n) space.
func NormalizeToRange(values []float64, low, high float64) []float64 {
	out := make([]float64, len(values))
	if len(values) == 0 {
		return out
	}

	// Stage 1 - locate the observed range.
	lo, hi := values[0], values[0]
	for _, v := range values[1:] {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}

	// Stage 2 - constant input: midpoint policy.
	if hi == lo {
		mid := (low + high) / 2
		for i := range out {
			out[i] = mid
		}
		return out
	}

	// Stage 3 - affine map [lo,hi] -> [low,high].
	scale := (high - low) / (hi - lo)
	for i, v := range values {
		out[i] = low + (v-lo)*scale
	}
	return out
}

// Standardize returns a copy of m with every column rescaled to zero mean and
// unit variance, using the population standard deviation. The input matrix is
// never mutated.
//
// Returns ErrEmptyDataset when m is nil or has no rows or columns, and
// ErrDegenerateColumn (wrapped with the column index) when a column has zero
// variance; aborting beats silently emitting a NaN-filled matrix.
//
// Complexity: O(N·D) time, O(N·D) space.
func Standardize(m *mat.Dense) (*mat.Dense, error) {
	if m == nil {
		return nil, ErrEmptyDataset
	}
	n, d := m.Dims()
	if n == 0 || d == 0 {
		return nil, ErrEmptyDataset
	}

	out := mat.NewDense(n, d, nil)
	col := make([]float64, n)
	for j := 0; j < d; j++ {
		mat.Col(col, j, m)

		mean := stat.Mean(col, nil)
		std := math.Sqrt(stat.MomentAbout(2, col, mean, nil))
		if std == 0 {
			return nil, fmt.Errorf("scaling: standardize column %d: %w", j, ErrDegenerateColumn)
		}

		for i := 0; i < n; i++ {
			out.Set(i, j, (col[i]-mean)/std)
		}
	}
	return out, nil
}
