package dataset

import "errors"

var (
	// ErrMissingColumn indicates the CSV header lacks a required column.
	ErrMissingColumn = errors.New("dataset: required column missing from header")
	// ErrBadNumeric indicates a numeric cell that failed to parse.
	ErrBadNumeric = errors.New("dataset: numeric column failed to parse")
	// ErrUnknownSchool indicates a school with no configured win rate.
	ErrUnknownSchool = errors.New("dataset: school has no configured win rate")
	// ErrNoRecords indicates no row survived the conference filter.
	ErrNoRecords = errors.New("dataset: no records match the configured conference")
)
