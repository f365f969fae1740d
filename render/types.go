package render

// Chart geometry and node sizing.
const (
	defaultWidth  = "1200px"
	defaultHeight = "800px"
	// Node symbol size grows linearly with the member count.
	baseSymbolSize      = 10
	perMemberSymbolSize = 6
	// Force layout tuning.
	forceRepulsion  = 400
	forceEdgeLength = 80
)

// Default ramp endpoints (dark purple to yellow) and stop count.
const (
	defaultRampLow   = "#440154"
	defaultRampHigh  = "#fde725"
	defaultRampStops = 8
)

// Options configures the rendered page.
type Options struct {
	// Title and Subtitle head the chart.
	Title    string
	Subtitle string
	// Width and Height are CSS sizes of the canvas.
	Width  string
	Height string
	// Ramp lists hex color stops for the visual map, low value first.
	// Empty means the package default purple-to-yellow ramp.
	Ramp []string
	// Meta renders as extra annotation lines under the subtitle, sorted by
	// key for a stable page.
	Meta map[string]string
}

// DefaultOptions returns the standard page: a 1200×800 canvas and the
// default ramp.
func DefaultOptions() Options {
	return Options{
		Title:  "Mapper Graph",
		Width:  defaultWidth,
		Height: defaultHeight,
	}
}
