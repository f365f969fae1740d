package mapper

import "errors"

var (
	// ErrEmptyDataset indicates the pipeline received no records.
	ErrEmptyDataset = errors.New("mapper: dataset must have at least one record")
	// ErrShapeMismatch indicates clustersByElement does not line up with the
	// cover elements.
	ErrShapeMismatch = errors.New("mapper: one cluster list required per cover element")
	// ErrEmptyCluster indicates an empty cluster was handed to assembly.
	ErrEmptyCluster = errors.New("mapper: clusters must be non-empty")
	// ErrColorLength indicates the coloring values do not cover every record.
	ErrColorLength = errors.New("mapper: coloring values must cover every record index")
	// ErrColorFunc indicates an unknown color statistic name.
	ErrColorFunc = errors.New("mapper: unknown color function")
)
