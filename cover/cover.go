package cover

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Build tiles the observed lens range with Resolution² overlapping elements
// and assigns every record to each element whose bounds contain it.
//
// Per lens dimension, the observed [min, max] range is split into Resolution
// equal-width base intervals; each is then widened symmetrically by
// OverlapFraction of its width. The Cartesian product of the two interval
// sets forms the cover. Bounds are inclusive, and the outermost bounds are
// pinned to the observed extremes, so the union of all elements always covers
// the full observed range: no record is left outside every element.
//
// Every record therefore lands in at least one element; with a non-zero
// overlap it usually lands in several, which is what later stitches clusters
// from neighboring elements into a connected graph.
//
// Complexity: O(N·Resolution²) time, O(N + Resolution²) space.
func Build(lens *mat.Dense, opts Options) ([]Element, error) {
	// Stage 1 - validation.
	if lens == nil {
		return nil, ErrEmptyDataset
	}
	n, d := lens.Dims()
	if n == 0 || d == 0 {
		return nil, ErrEmptyDataset
	}
	if d != lensDims {
		return nil, fmt.Errorf("cover: lens has %d columns: %w", d, ErrLensShape)
	}
	if opts.Resolution < 1 {
		return nil, fmt.Errorf("cover: resolution %d: %w", opts.Resolution, ErrResolution)
	}
	if opts.OverlapFraction < 0 || opts.OverlapFraction >= 1 {
		return nil, fmt.Errorf("cover: overlap fraction %g: %w", opts.OverlapFraction, ErrOverlapFraction)
	}

	// Stage 2 - per-dimension overlapping intervals.
	res := opts.Resolution
	var spans [lensDims][][2]float64
	for dim := 0; dim < lensDims; dim++ {
		lo, hi := lens.At(0, dim), lens.At(0, dim)
		for i := 1; i < n; i++ {
			v := lens.At(i, dim)
			if v < lo {
				lo = v
			}
			if v > hi {
				hi = v
			}
		}
		spans[dim] = intervals(lo, hi, res, opts.OverlapFraction)
	}

	// Stage 3 - Cartesian product, row-major over (dim0, dim1).
	elements := make([]Element, 0, res*res)
	for ix := 0; ix < res; ix++ {
		for iy := 0; iy < res; iy++ {
			elements = append(elements, Element{
				ID:  ix*res + iy,
				Min: [lensDims]float64{spans[0][ix][0], spans[1][iy][0]},
				Max: [lensDims]float64{spans[0][ix][1], spans[1][iy][1]},
			})
		}
	}

	// Stage 4 - membership, records scanned in ascending index order.
	for i := 0; i < n; i++ {
		x, y := lens.At(i, 0), lens.At(i, 1)
		for e := range elements {
			if elements[e].Contains(x, y) {
				elements[e].Members = append(elements[e].Members, i)
			}
		}
	}
	return elements, nil
}

// intervals splits [lo, hi] into res equal-width base intervals and widens
// each symmetrically by overlap of its width.
//
// The first lower bound and the last upper bound are pinned to lo and hi
// verbatim: accumulated rounding in lo+i·width must never push the extreme
// records outside the cover.
func intervals(lo, hi float64, res int, overlap float64) [][2]float64 {
	width := (hi - lo) / float64(res)
	pad := width * overlap / 2

	out := make([][2]float64, res)
	for i := 0; i < res; i++ {
		lower := lo + float64(i)*width - pad
		upper := lo + float64(i+1)*width + pad
		if i == 0 {
			lower = lo
		}
		if i == res-1 {
			upper = hi
		}
		out[i] = [2]float64{lower, upper}
	}
	return out
}
