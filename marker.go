package plot

import "github.com/gogpu/plot/internal/plotmath"

// MarkerShape selects the signed-distance-field shape drawn for each point
// in a series. All shapes are evaluated analytically on the GPU; marker
// size is uniform per plot (Options.MarkerRadius).
type MarkerShape uint32

const (
	MarkerCircle       MarkerShape = MarkerShape(plotmath.ShapeCircle)
	MarkerSquare       MarkerShape = MarkerShape(plotmath.ShapeSquare)
	MarkerDiamond      MarkerShape = MarkerShape(plotmath.ShapeDiamond)
	MarkerTriangleUp   MarkerShape = MarkerShape(plotmath.ShapeTriangleUp)
	MarkerTriangleDown MarkerShape = MarkerShape(plotmath.ShapeTriangleDown)
	MarkerCross        MarkerShape = MarkerShape(plotmath.ShapeCross)
	MarkerPlus         MarkerShape = MarkerShape(plotmath.ShapePlus)

	// MarkerNone suppresses markers for the series; only the connecting
	// line is drawn.
	MarkerNone MarkerShape = MarkerShape(plotmath.ShapeNone)
)

// String returns the marker's name.
func (m MarkerShape) String() string {
	switch m {
	case MarkerCircle:
		return "circle"
	case MarkerSquare:
		return "square"
	case MarkerDiamond:
		return "diamond"
	case MarkerTriangleUp:
		return "triangle-up"
	case MarkerTriangleDown:
		return "triangle-down"
	case MarkerCross:
		return "cross"
	case MarkerPlus:
		return "plus"
	case MarkerNone:
		return "none"
	default:
		return "circle" // unknown tags render as circles
	}
}

// ParseMarkerShape maps a marker name to its shape. Unknown names return
// MarkerCircle, matching the GPU fallback for unknown tags.
func ParseMarkerShape(name string) MarkerShape {
	switch name {
	case "square":
		return MarkerSquare
	case "diamond":
		return MarkerDiamond
	case "triangle-up":
		return MarkerTriangleUp
	case "triangle-down":
		return MarkerTriangleDown
	case "cross":
		return MarkerCross
	case "plus":
		return MarkerPlus
	case "none":
		return MarkerNone
	default:
		return MarkerCircle
	}
}
