package lens

// Dims is the fixed dimensionality of the lens space. The pipeline supports a
// single 2-D lens; arbitrary filter functions are out of scope.
const Dims = 2

// Gradient-descent schedule shared by every projection run. The values follow
// the standard t-SNE recipe; they are compile-time constants rather than
// options because varying them does not change what the lens *means*, only
// how fast it settles.
const (
	// exaggeration inflates attractive forces for the first exagIters
	// iterations so that cluster structure forms before fine-tuning.
	exaggeration = 12.0
	exagIters    = 100
	// momentumEarly/momentumLate follow the classic two-phase schedule.
	momentumEarly  = 0.5
	momentumLate   = 0.8
	momentumSwitch = 250
	// initScale is the standard deviation of the random initial layout.
	initScale = 1e-4
	// minGain keeps adaptive per-coordinate gains from collapsing to zero.
	minGain = 0.01
	// entropyTol and maxBetaIters bound the per-point bandwidth search.
	entropyTol   = 1e-5
	maxBetaIters = 50
	// pFloor keeps symmetrized affinities strictly positive.
	pFloor = 1e-12
)

// Options configures a projection run.
//
// NeighborhoodSize is the perplexity analogue: the effective number of
// neighbors each record's affinity distribution spans. It must be at least 1
// and strictly smaller than the record count; for small datasets something
// near N/3 keeps the neighborhoods meaningful.
//
// Seed drives every random draw of the run. Seed 0 selects a fixed default,
// so the zero value of Options is still fully deterministic.
type Options struct {
	// NeighborhoodSize is the target perplexity; 1 <= NeighborhoodSize < N.
	NeighborhoodSize float64
	// Seed for the layout initialization; 0 means the package default.
	Seed int64
	// MaxIter is the number of gradient-descent iterations (must be >= 1).
	MaxIter int
	// LearningRate scales each gradient step (must be > 0).
	LearningRate float64
}

// DefaultOptions returns the tuning used by the reference pipeline run:
// perplexity 5, 500 iterations, learning rate 200, default seed.
func DefaultOptions() Options {
	return Options{
		NeighborhoodSize: 5,
		Seed:             0,
		MaxIter:          500,
		LearningRate:     200,
	}
}
