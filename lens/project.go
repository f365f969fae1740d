package lens

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// Project embeds the rows of m into the 2-D lens space with a stochastic
// neighborhood embedding of the t-SNE family.
//
// Algorithm outline:
//  1. Pairwise squared Euclidean distances between all rows.
//  2. Per-record bandwidth calibration: binary search for the precision whose
//     affinity row has entropy log(NeighborhoodSize), then row-normalize.
//  3. Symmetrize the conditional affinities into joint ones, floored at pFloor.
//  4. Seeded random initial layout (rngFromSeed; Seed 0 ⇒ package default).
//  5. Momentum gradient descent on the Student-t divergence with early
//     exaggeration and adaptive per-coordinate gains; the layout is recentered
//     every iteration.
//
// Determinism: every loop runs in fixed order and the only randomness is the
// initial layout drawn from the seeded generator, so a given (input, Options)
// pair always yields the same lens.
//
// Errors: ErrEmptyDataset for a nil or zero-size matrix; ErrNeighborhoodSize
// unless 1 <= NeighborhoodSize < N; ErrGradientConfig for MaxIter < 1 or
// LearningRate <= 0.
//
// Complexity: O(MaxIter·N²) time, O(N²) space.
func Project(m *mat.Dense, opts Options) (*mat.Dense, error) {
	// Stage 1 - validate input and options.
	if m == nil {
		return nil, ErrEmptyDataset
	}
	n, d := m.Dims()
	if n == 0 || d == 0 {
		return nil, ErrEmptyDataset
	}
	if opts.NeighborhoodSize < 1 || opts.NeighborhoodSize >= float64(n) {
		return nil, fmt.Errorf("lens: neighborhood size %g with %d records: %w",
			opts.NeighborhoodSize, n, ErrNeighborhoodSize)
	}
	if opts.MaxIter < 1 || opts.LearningRate <= 0 {
		return nil, ErrGradientConfig
	}

	// Stage 2 - feature-space geometry.
	dist := pairwiseSq(m)

	// Stage 3 - conditional affinities with calibrated bandwidths.
	p := condAffinities(dist, n, opts.NeighborhoodSize)

	// Stage 4 - joint affinities: symmetrize and floor.
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			v := (p[i*n+j] + p[j*n+i]) / (2 * float64(n))
			if v < pFloor {
				v = pFloor
			}
			p[i*n+j] = v
			p[j*n+i] = v
		}
	}

	// Stage 5 - seeded initial layout.
	rng := rngFromSeed(opts.Seed)
	y := make([]float64, n*Dims)
	for i := range y {
		y[i] = rng.NormFloat64() * initScale
	}

	// Stage 6 - gradient descent settles the layout.
	descend(p, y, n, opts)

	return mat.NewDense(n, Dims, y), nil
}

// pairwiseSq returns the flattened n×n matrix of squared Euclidean distances
// between rows of m; symmetric with a zero diagonal.
//
// Complexity: O(N²·D).
func pairwiseSq(m *mat.Dense) []float64 {
	n, d := m.Dims()
	out := make([]float64, n*n)
	for i := 0; i < n; i++ {
		ri := m.RawRowView(i)
		for j := i + 1; j < n; j++ {
			rj := m.RawRowView(j)
			var s float64
			for k := 0; k < d; k++ {
				diff := ri[k] - rj[k]
				s += diff * diff
			}
			out[i*n+j] = s
			out[j*n+i] = s
		}
	}
	return out
}

// condAffinities calibrates one bandwidth per record so the Shannon entropy of
// its affinity row matches log(perplexity), then returns the row-normalized
// conditional affinities (flat n×n, zero diagonal).
//
// The search brackets the precision beta: too much entropy raises beta, too
// little lowers it. Rows whose entropy cannot reach the target (for example
// duplicate points at distance zero) keep their best effort after maxBetaIters.
//
// Complexity: O(N²·maxBetaIters).
func condAffinities(dist []float64, n int, perplexity float64) []float64 {
	target := math.Log(perplexity)
	p := make([]float64, n*n)
	row := make([]float64, n)

	for i := 0; i < n; i++ {
		beta := 1.0
		betaMin := math.Inf(-1)
		betaMax := math.Inf(1)
		var sum float64

		for iter := 0; iter < maxBetaIters; iter++ {
			// Affinity row under the current precision.
			sum = 0
			for j := 0; j < n; j++ {
				if j == i {
					row[j] = 0
					continue
				}
				row[j] = math.Exp(-beta * dist[i*n+j])
				sum += row[j]
			}
			if sum == 0 {
				sum = pFloor // all mass underflowed; entropy reads as tiny
			}

			var dp float64
			for j := 0; j < n; j++ {
				if j != i {
					dp += dist[i*n+j] * row[j]
				}
			}
			entropy := math.Log(sum) + beta*dp/sum

			diff := entropy - target
			if math.Abs(diff) < entropyTol {
				break
			}
			if diff > 0 {
				betaMin = beta
				if math.IsInf(betaMax, 1) {
					beta *= 2
				} else {
					beta = (beta + betaMax) / 2
				}
			} else {
				betaMax = beta
				if math.IsInf(betaMin, -1) {
					beta /= 2
				} else {
					beta = (beta + betaMin) / 2
				}
			}
		}

		for j := 0; j < n; j++ {
			if j != i {
				p[i*n+j] = row[j] / sum
			}
		}
	}
	return p
}

// descend runs momentum gradient descent with adaptive gains over the joint
// affinities, mutating the flat N×2 layout y in place.
//
// Complexity: O(MaxIter·N²).
func descend(p, y []float64, n int, opts Options) {
	update := make([]float64, n*Dims)
	gains := make([]float64, n*Dims)
	for i := range gains {
		gains[i] = 1
	}
	grad := make([]float64, n*Dims)
	num := make([]float64, n*n)

	for iter := 0; iter < opts.MaxIter; iter++ {
		exag := 1.0
		if iter < exagIters {
			exag = exaggeration
		}
		momentum := momentumEarly
		if iter >= momentumSwitch {
			momentum = momentumLate
		}

		// Student-t kernel over the current layout and its normalizer.
		var z float64
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				dx := y[i*Dims] - y[j*Dims]
				dy := y[i*Dims+1] - y[j*Dims+1]
				q := 1 / (1 + dx*dx + dy*dy)
				num[i*n+j] = q
				num[j*n+i] = q
				z += 2 * q
			}
		}
		if z == 0 {
			z = pFloor
		}

		// Gradient of the divergence: attraction from p, repulsion from q.
		for i := 0; i < n; i++ {
			var gx, gy float64
			for j := 0; j < n; j++ {
				if j == i {
					continue
				}
				q := num[i*n+j]
				mult := (exag*p[i*n+j] - q/z) * q
				gx += mult * (y[i*Dims] - y[j*Dims])
				gy += mult * (y[i*Dims+1] - y[j*Dims+1])
			}
			grad[i*Dims] = 4 * gx
			grad[i*Dims+1] = 4 * gy
		}

		// Adaptive gains, then the momentum step.
		for k := range grad {
			if (grad[k] > 0) != (update[k] > 0) {
				gains[k] += 0.2
			} else {
				gains[k] *= 0.8
			}
			if gains[k] < minGain {
				gains[k] = minGain
			}
			update[k] = momentum*update[k] - opts.LearningRate*gains[k]*grad[k]
			y[k] += update[k]
		}

		// Recenter so the layout cannot drift as a whole.
		var cx, cy float64
		for i := 0; i < n; i++ {
			cx += y[i*Dims]
			cy += y[i*Dims+1]
		}
		cx /= float64(n)
		cy /= float64(n)
		for i := 0; i < n; i++ {
			y[i*Dims] -= cx
			y[i*Dims+1] -= cy
		}
	}
}
