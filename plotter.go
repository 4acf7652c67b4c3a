package plot

import (
	"math"

	"github.com/gogpu/plot/internal/plotmath"
	"github.com/gogpu/plot/internal/render"
)

// Plotter accumulates series and produces GPU frames. It holds no GPU
// state; the same Plotter can be rendered at different sizes or by
// different renderers.
type Plotter struct {
	Series  []Series
	Options Options
}

// NewPlotter creates a plotter with default options and no series.
func NewPlotter() *Plotter {
	return &Plotter{Options: DefaultOptions()}
}

// AddSeries appends a series to the plot.
func (p *Plotter) AddSeries(s Series) {
	p.Series = append(p.Series, s)
}

// DataRange computes the plot's data ranges: the bounding box of all
// resolved points, with manual overrides from Options applied per axis.
// With no data both axes default to [0, 1]. A constant Y is widened by
// 0.5 in each direction so flat series stay visible; a constant X is left
// as is and produces non-finite coordinates downstream, the same as any
// other degenerate range.
func (p *Plotter) DataRange() (xr, yr Range) {
	xMin, xMax := math.Inf(1), math.Inf(-1)
	yMin, yMax := math.Inf(1), math.Inf(-1)
	empty := true

	for i := range p.Series {
		for _, pt := range p.Series[i].resolvedPoints() {
			empty = false
			xMin = math.Min(xMin, pt.X)
			xMax = math.Max(xMax, pt.X)
			yMin = math.Min(yMin, pt.Y)
			yMax = math.Max(yMax, pt.Y)
		}
	}

	if empty {
		xr, yr = Range{0, 1}, Range{0, 1}
	} else {
		if math.Abs(yMax-yMin) < 1e-12 {
			yMin -= 0.5
			yMax += 0.5
		}
		xr, yr = Range{xMin, xMax}, Range{yMin, yMax}
	}

	if p.Options.XRange != nil {
		xr = *p.Options.XRange
	}
	if p.Options.YRange != nil {
		yr = *p.Options.YRange
	}
	return xr, yr
}

// BuildFrame resolves all series into GPU-ready draw data for the given
// viewport: the uniform block, marker instances in data space, and line
// vertices tessellated in screen space.
func (p *Plotter) BuildFrame(width, height int) *render.Frame {
	xr, yr := p.DataRange()

	frame := &render.Frame{
		Uniforms: render.Uniforms{
			ViewportW: float32(width), ViewportH: float32(height),
			XMin: float32(xr.Min), XMax: float32(xr.Max),
			YMin: float32(yr.Min), YMax: float32(yr.Max),
			PadX: float32(p.Options.Padding), PadY: float32(p.Options.Padding),
			MarkerRadius: float32(p.Options.MarkerRadius),
			LineWidth:    float32(p.Options.LineWidth),
			LinePattern:  uint32(p.Options.Pattern),
		},
	}
	view := frame.Uniforms.View()
	halfWidth := float32(p.Options.LineWidth / 2)
	drawLines := p.Options.Pattern != PatternNone

	for i := range p.Series {
		s := &p.Series[i]
		points := s.resolvedPoints()
		if len(points) == 0 {
			continue
		}

		var linePts []render.LinePoint
		if drawLines && len(points) >= 2 {
			linePts = make([]render.LinePoint, 0, len(points))
		}

		for _, pt := range points {
			c := p.pointColor(s, pt, yr)
			frame.Markers = append(frame.Markers, render.PointInstance{
				X:     float32(pt.X),
				Y:     float32(pt.Y),
				Color: c,
				Shape: uint32(s.Marker),
			})
			if linePts != nil {
				sx, sy := plotmath.DataToScreen(view, float32(pt.X), float32(pt.Y))
				linePts = append(linePts, render.LinePoint{X: sx, Y: sy, Color: c})
			}
		}

		if linePts != nil {
			frame.Lines = append(frame.Lines, render.TessellateLine(linePts, halfWidth)...)
		}
	}

	return frame
}

// pointColor resolves a point's color: the series colormap sampled over
// the plot's Y range when set, the flat series color otherwise.
func (p *Plotter) pointColor(s *Series, pt Point, yr Range) [4]float32 {
	if s.Colormap == nil {
		return s.Color.vec4()
	}
	span := yr.Max - yr.Min
	t := 0.5
	if span > 0 {
		t = (pt.Y - yr.Min) / span
	}
	return s.Colormap.Sample(t).vec4()
}
