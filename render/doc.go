// Package render turns an assembled mapper graph into a standalone HTML
// page with a force-directed chart.
//
// What:
//
//   - HTML builds the chart: one named chart node per graph node (symbol
//     size by member count, value by color statistic, hover card listing
//     the member tooltips), one link per edge weighted by the shared-member
//     count, and a continuous visual map over a color ramp.
//   - Render and WriteFile wrap HTML for a writer or a file path.
//   - Ramp interpolates hex color stops in Lab space for the visual map;
//     the default ramp runs dark purple to yellow.
//
// The package consumes the graph structure and per-record tooltip strings;
// it never recomputes pipeline data. Library code stays log-free.
//
// Errors: ErrNilGraph, ErrTooltipLength, ErrRampStops.
package render
