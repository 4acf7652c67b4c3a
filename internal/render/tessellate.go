package render

import "math"

// minSegmentLength is the shortest segment, in pixels, that still produces
// geometry. Duplicate or near-coincident polyline points are skipped so the
// perpendicular stays well defined.
const minSegmentLength = 0.001

// LinePoint is one polyline vertex in screen pixels with its resolved color.
type LinePoint struct {
	X, Y  float32
	Color [4]float32
}

// TessellateLine expands a screen-space polyline into a triangle list for
// the line pipeline. Each segment becomes a quad (6 vertices, 2 triangles)
// extruded halfWidth pixels to each side of the centerline. EdgeDistance is
// -1 on one rim and +1 on the other so the fragment shader can fade the
// rim; ArcLength accumulates pixel distance along the polyline, including
// skipped segments, so dash patterns stay continuous. Colors interpolate
// between segment endpoints.
//
// Joints are plain butt joints: adjacent quads overlap on the inside of a
// bend and leave a notch on the outside. At typical plot line widths the
// anti-aliased edges make this invisible.
func TessellateLine(points []LinePoint, halfWidth float32) []LineVertex {
	if len(points) < 2 {
		return nil
	}

	verts := make([]LineVertex, 0, (len(points)-1)*6)
	arc := float32(0)

	for i := 0; i+1 < len(points); i++ {
		p0, p1 := points[i], points[i+1]
		dx := p1.X - p0.X
		dy := p1.Y - p0.Y
		length := float32(math.Sqrt(float64(dx*dx + dy*dy)))
		if length < minSegmentLength {
			arc += length
			continue
		}

		// Unit perpendicular, scaled to the half width.
		nx := -dy / length * halfWidth
		ny := dx / length * halfWidth

		arc0 := arc
		arc1 := arc + length
		arc = arc1

		a := LineVertex{X: p0.X + nx, Y: p0.Y + ny, Color: p0.Color, EdgeDistance: 1, ArcLength: arc0}
		b := LineVertex{X: p0.X - nx, Y: p0.Y - ny, Color: p0.Color, EdgeDistance: -1, ArcLength: arc0}
		c := LineVertex{X: p1.X + nx, Y: p1.Y + ny, Color: p1.Color, EdgeDistance: 1, ArcLength: arc1}
		d := LineVertex{X: p1.X - nx, Y: p1.Y - ny, Color: p1.Color, EdgeDistance: -1, ArcLength: arc1}

		verts = append(verts, a, b, c, c, b, d)
	}

	return verts
}
