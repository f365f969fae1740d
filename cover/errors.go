package cover

import "errors"

var (
	// ErrEmptyDataset indicates the lens matrix has no rows or no columns.
	ErrEmptyDataset = errors.New("cover: lens must have at least one row")
	// ErrLensShape indicates the lens matrix is not N×2.
	ErrLensShape = errors.New("cover: lens must have exactly two columns")
	// ErrResolution indicates Resolution < 1.
	ErrResolution = errors.New("cover: resolution must be at least 1")
	// ErrOverlapFraction indicates OverlapFraction outside [0,1).
	ErrOverlapFraction = errors.New("cover: overlap fraction must lie in [0,1)")
)
