package plot

import "github.com/gogpu/plot/internal/plotmath"

// LinePattern selects the dash pattern for a plot's connecting lines. The
// mask repeats along the polyline's arc length in multiples of the line
// width, so patterns scale with line thickness.
type LinePattern uint32

const (
	PatternSolid   LinePattern = LinePattern(plotmath.PatternSolid)
	PatternDashed  LinePattern = LinePattern(plotmath.PatternDashed)
	PatternDotted  LinePattern = LinePattern(plotmath.PatternDotted)
	PatternDashDot LinePattern = LinePattern(plotmath.PatternDashDot)

	// PatternNone suppresses lines entirely; only markers are drawn.
	PatternNone LinePattern = LinePattern(plotmath.PatternNone)
)

// String returns the pattern's name.
func (p LinePattern) String() string {
	switch p {
	case PatternSolid:
		return "solid"
	case PatternDashed:
		return "dashed"
	case PatternDotted:
		return "dotted"
	case PatternDashDot:
		return "dash-dot"
	case PatternNone:
		return "none"
	default:
		return "solid" // unknown tags render solid
	}
}

// ParseLinePattern maps a pattern name to its tag. Unknown names return
// PatternSolid, matching the GPU fallback for unknown tags.
func ParseLinePattern(name string) LinePattern {
	switch name {
	case "dashed":
		return PatternDashed
	case "dotted":
		return PatternDotted
	case "dash-dot":
		return PatternDashDot
	case "none":
		return PatternNone
	default:
		return PatternSolid
	}
}
