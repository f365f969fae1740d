package lens

import "errors"

var (
	// ErrEmptyDataset indicates the input matrix has no rows or no columns.
	ErrEmptyDataset = errors.New("lens: input matrix must have at least one row and one column")
	// ErrNeighborhoodSize indicates NeighborhoodSize is below 1 or not
	// strictly smaller than the number of records.
	ErrNeighborhoodSize = errors.New("lens: neighborhood size must satisfy 1 <= size < record count")
	// ErrGradientConfig indicates a non-positive MaxIter or LearningRate.
	ErrGradientConfig = errors.New("lens: MaxIter and LearningRate must be positive")
)
