package cluster

import "errors"

var (
	// ErrEmptyDataset indicates a nil or zero-size feature matrix.
	ErrEmptyDataset = errors.New("cluster: feature matrix must have at least one row")
	// ErrEps indicates a non-positive clustering radius.
	ErrEps = errors.New("cluster: eps must be positive")
	// ErrMinSamples indicates MinSamples below 1.
	ErrMinSamples = errors.New("cluster: min samples must be at least 1")
	// ErrMemberRange indicates a member index outside the matrix rows.
	ErrMemberRange = errors.New("cluster: member index out of range")
)
