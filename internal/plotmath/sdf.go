package plotmath

import "math"

// Marker shape tags. These are the wire values written into the point
// instance buffer and switched on by the fragment shader.
const (
	ShapeCircle uint32 = iota
	ShapeSquare
	ShapeDiamond
	ShapeTriangleUp
	ShapeTriangleDown
	ShapeCross
	ShapePlus
	ShapeNone
)

// SDFBand is the half-width of the anti-aliasing band around a marker
// outline, in quad-local units. Fragments with distance above +SDFBand
// are discarded outright.
const SDFBand float32 = 0.1

// SDF returns the signed distance from quad-local point (x, y) to the
// outline of the given marker shape: negative inside, ~0 on the boundary,
// positive outside. The quad local space is [-1,1] on both axes.
//
// Distances for non-circular shapes are Chebyshev/Manhattan style
// approximations rather than true Euclidean distances. That is deliberate:
// they are cheap to evaluate and the fixed AA band is tuned to them.
//
// Tags outside the drawable range fall back to the circle. ShapeNone is
// not meaningful here; the marker fragment stage discards it before any
// distance is evaluated.
func SDF(x, y float32, shape uint32) float32 {
	ax, ay := abs32(x), abs32(y)
	switch shape {
	case ShapeSquare:
		// Inscribed square, leaves margin inside the quad.
		return max32(ax, ay) - 0.7
	case ShapeDiamond:
		return ax + ay - 1
	case ShapeTriangleUp:
		// Intersection of three half-planes, each negative inside.
		return max32(max32(ax-0.7, y-0.5), (ax*0.866-y)*0.5-0.5)
	case ShapeTriangleDown:
		// TriangleUp mirrored about the X axis.
		return max32(max32(ax-0.7, -y-0.5), (ax*0.866+y)*0.5-0.5)
	case ShapeCross:
		// Rotated band of half-thickness 0.2, clipped to the quad.
		d1 := abs32(ax-ay) - 0.2
		d2 := max32(ax, ay) - 1
		return max32(d1, d2)
	case ShapePlus:
		// Union of a horizontal and a vertical bar, clipped to the quad.
		d1 := max32(ax, ay) - 0.2
		d2 := min32(ax, ay) - 0.2
		d3 := max32(ax, ay) - 1
		return max32(min32(d1, d2), d3)
	default:
		return float32(math.Sqrt(float64(x*x+y*y))) - 1
	}
}

// MarkerAlpha converts a signed distance to marker coverage: 1 inside,
// fading to 0 across the fixed [-SDFBand, +SDFBand] window. The band is
// resolution independent, so edge softness scales with marker radius
// rather than pixel density.
func MarkerAlpha(d float32) float32 {
	return 1 - Smoothstep(-SDFBand, SDFBand, d)
}

// Smoothstep is the standard GPU smoothstep: 0 for x <= edge0, 1 for
// x >= edge1, with a smooth Hermite ramp in between.
func Smoothstep(edge0, edge1, x float32) float32 {
	t := (x - edge0) / (edge1 - edge0)
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	return t * t * (3 - 2*t)
}

func abs32(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}

func max32(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}

func min32(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}
