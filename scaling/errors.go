package scaling

import "errors"

var (
	// ErrEmptyDataset indicates the input matrix has no rows or no columns.
	ErrEmptyDataset = errors.New("scaling: input matrix must have at least one row and one column")
	// ErrDegenerateColumn indicates a feature column with zero variance.
	ErrDegenerateColumn = errors.New("scaling: column has zero variance")
)
