package plotmath

import "math"

// Line pattern tags. Like the marker shape tags these are wire values,
// carried in the uniform block and switched on by the line fragment stage.
const (
	PatternSolid uint32 = iota
	PatternDashed
	PatternDotted
	PatternDashDot
	PatternNone
)

// LineAlphaDiscard is the coverage below which a line fragment is dropped
// instead of blended. Writing near-zero-alpha fragments would still cost a
// blend per pixel.
const LineAlphaDiscard float32 = 0.001

// LineAlpha converts a signed edge distance (±1 marks the nominal line
// edge) to coverage: fully opaque up to |d| = 0.8, fading to 0 at the
// edge. Symmetric in the sign of the distance.
func LineAlpha(edgeDistance float32) float32 {
	d := abs32(edgeDistance)
	return 1 - Smoothstep(0.8, 1.0, d)
}

// PatternOn reports whether a fragment at the given accumulated arc length
// (pixels along the polyline) is in an "on" span of the repeating pattern.
// Spans are measured in multiples of the line width so patterns keep their
// proportions as the width changes.
//
// Unknown tags fall back to solid; PatternNone masks every fragment.
func PatternOn(pattern uint32, arcLength, lineWidth float32) bool {
	w := lineWidth
	if w < 1e-6 {
		w = 1e-6
	}
	t := arcLength / w
	switch pattern {
	case PatternDashed:
		// 4 on, 2 off.
		return mod32(t, 6) < 4
	case PatternDotted:
		// 1 on, 1.5 off.
		return mod32(t, 2.5) < 1
	case PatternDashDot:
		// 4 on, 1.5 off, 1 on, 1.5 off.
		f := mod32(t, 8)
		return f < 4 || (f >= 5.5 && f < 6.5)
	case PatternNone:
		return false
	default:
		return true
	}
}

// mod32 matches the WGSL % operator on f32 for non-negative operands.
func mod32(x, y float32) float32 {
	return float32(math.Mod(float64(x), float64(y)))
}
