package cover

// lensDims is the dimensionality of the lens space this cover tiles.
const lensDims = 2

// Options configures cover construction.
type Options struct {
	// Resolution is the number of base intervals per lens dimension; the
	// cover holds Resolution² elements. Must be at least 1.
	Resolution int
	// OverlapFraction widens every base interval symmetrically by this
	// fraction of its width, so adjacent elements share records.
	// Must lie in [0,1).
	OverlapFraction float64
}

// DefaultOptions returns the tuning used by the reference pipeline run:
// resolution 5 with 50% overlap.
func DefaultOptions() Options {
	return Options{Resolution: 5, OverlapFraction: 0.5}
}

// Element is one axis-aligned hyperrectangle of the cover.
//
// Elements are emitted in row-major order over (dim0 interval, dim1 interval)
// and ID always equals the element's position in the returned slice, so
// downstream stages may index either way.
type Element struct {
	// ID is the stable position of this element within the cover.
	ID int
	// Min and Max bound the element per lens dimension; bounds are inclusive.
	Min [lensDims]float64
	Max [lensDims]float64
	// Members holds the indices of the records whose lens coordinates fall
	// inside the bounds, in ascending order. May be empty.
	Members []int
}

// Contains reports whether the lens point (x, y) lies inside the element.
// Bounds are inclusive on both sides.
func (e Element) Contains(x, y float64) bool {
	return x >= e.Min[0] && x <= e.Max[0] && y >= e.Min[1] && y <= e.Max[1]
}
