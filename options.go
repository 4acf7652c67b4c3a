package plot

// Range is a closed interval on one data axis.
type Range struct {
	Min, Max float64
}

// Options configures plot-wide rendering parameters. Marker radius, line
// width, and the dash pattern are uniform across the whole plot; per-series
// variation is limited to color and marker shape.
type Options struct {
	// Padding is the pixel margin reserved on every side of the plot
	// area, inside the viewport.
	Padding float64

	// MarkerRadius is the marker half-extent in pixels.
	MarkerRadius float64

	// LineWidth is the nominal line thickness in pixels.
	LineWidth float64

	// Pattern is the dash pattern applied to all polylines.
	Pattern LinePattern

	// XRange and YRange override the automatic data range when non-nil.
	XRange *Range
	YRange *Range
}

// DefaultOptions returns the standard plot configuration.
func DefaultOptions() Options {
	return Options{
		Padding:      50,
		MarkerRadius: 4,
		LineWidth:    2,
		Pattern:      PatternSolid,
	}
}
