package render

import "errors"

var (
	// ErrNilGraph indicates a nil graph was handed to rendering.
	ErrNilGraph = errors.New("render: graph must not be nil")
	// ErrTooltipLength indicates a node member without a tooltip entry.
	ErrTooltipLength = errors.New("render: tooltips must cover every member index")
	// ErrRampStops indicates a ramp request with fewer than two stops.
	ErrRampStops = errors.New("render: a color ramp needs at least two stops")
)
