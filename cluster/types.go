package cluster

// Options configures one density-based clustering run.
type Options struct {
	// Eps is the neighborhood radius (Euclidean, inclusive). Must be > 0.
	Eps float64
	// MinSamples is the density threshold: a point whose eps-neighborhood
	// (itself included) holds at least MinSamples points is a core point.
	// With MinSamples == 1 every point is a core point, so nothing is ever
	// dropped as noise. Must be >= 1.
	MinSamples int
}

// DefaultOptions returns the tuning used by the reference pipeline run:
// eps 1.5 with MinSamples 1, which guarantees every record joins a cluster.
func DefaultOptions() Options {
	return Options{Eps: 1.5, MinSamples: 1}
}
