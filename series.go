package plot

// Point is a single data point in data space.
type Point struct {
	X, Y float64
}

// Generator describes a function y = f(x) sampled at evenly spaced x
// values, as an alternative to explicit points.
type Generator struct {
	Function func(x float64) float64
	XMin     float64
	XMax     float64
	Count    int
}

// Points samples the generator. A Count below 2 yields a single sample at
// XMin.
func (g *Generator) Points() []Point {
	n := g.Count
	if n < 1 {
		return nil
	}
	pts := make([]Point, n)
	span := g.XMax - g.XMin
	div := n - 1
	if div < 1 {
		div = 1
	}
	for i := 0; i < n; i++ {
		x := g.XMin + float64(i)/float64(div)*span
		pts[i] = Point{X: x, Y: g.Function(x)}
	}
	return pts
}

// Series is one named sequence of points sharing a color and marker shape.
// Points within a series are connected by a polyline in order; set the
// plot's line pattern to PatternNone to draw markers only, or Marker to
// MarkerNone to draw the line only.
type Series struct {
	Label string
	Color RGBA

	// Points holds explicit data. When Generator is non-nil it takes
	// precedence and Points is ignored.
	Points    []Point
	Generator *Generator

	Marker MarkerShape

	// Colormap, when non-nil, colors each point by its Y position
	// normalized over the plot's Y range instead of the flat series
	// color.
	Colormap *Colormap
}

// resolvedPoints returns the series data, sampling the generator if set.
func (s *Series) resolvedPoints() []Point {
	if s.Generator != nil {
		return s.Generator.Points()
	}
	return s.Points
}
