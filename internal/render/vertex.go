package render

import (
	"encoding/binary"
	"math"

	"github.com/gogpu/gputypes"
)

// PointInstanceStride is the byte stride of one marker instance.
// Layout per instance:
//
//	position (vec2<f32>) = 8 bytes  (location 0)
//	color    (vec4<f32>) = 16 bytes (location 1)
//	shape    (u32)       = 4 bytes  (location 2)
//	_pad     (u32)       = 4 bytes  (location 3, alignment only)
//
// Total = 32 bytes.
const PointInstanceStride = 32

// LineVertexStride is the byte stride of one line strip vertex.
// Layout per vertex:
//
//	position      (vec2<f32>) = 8 bytes  (location 0)
//	color         (vec4<f32>) = 16 bytes (location 1)
//	edge_distance (f32)       = 4 bytes  (location 2)
//	arc_length    (f32)       = 4 bytes  (location 3)
//
// Total = 32 bytes.
const LineVertexStride = 32

// PointInstance is one scatter marker: a data-space position, a resolved
// RGBA color, and a shape tag (plotmath.Shape*). Instances are independent
// and unordered; overlap resolution is draw order, which is buffer order.
type PointInstance struct {
	X, Y  float32    // data-space coordinates
	Color [4]float32 // RGBA, each channel nominally in [0,1]
	Shape uint32
}

// LineVertex is one pre-tessellated line strip vertex in screen pixels.
// EdgeDistance is the signed distance from the segment centerline,
// normalized so +-1 marks the nominal line edge. ArcLength is the
// accumulated distance along the polyline in pixels, used for dash
// pattern masking.
type LineVertex struct {
	X, Y         float32 // screen pixels, already transformed
	Color        [4]float32
	EdgeDistance float32
	ArcLength    float32
}

// PackPointInstances serializes instances into the GPU buffer layout.
func PackPointInstances(points []PointInstance) []byte {
	buf := make([]byte, len(points)*PointInstanceStride)
	for i := range points {
		p := &points[i]
		off := i * PointInstanceStride
		putF32(buf, off+0, p.X)
		putF32(buf, off+4, p.Y)
		putF32(buf, off+8, p.Color[0])
		putF32(buf, off+12, p.Color[1])
		putF32(buf, off+16, p.Color[2])
		putF32(buf, off+20, p.Color[3])
		binary.LittleEndian.PutUint32(buf[off+24:], p.Shape)
		// off+28.._pad stays zero.
	}
	return buf
}

// PackLineVertices serializes line vertices into the GPU buffer layout.
func PackLineVertices(verts []LineVertex) []byte {
	buf := make([]byte, len(verts)*LineVertexStride)
	for i := range verts {
		v := &verts[i]
		off := i * LineVertexStride
		putF32(buf, off+0, v.X)
		putF32(buf, off+4, v.Y)
		putF32(buf, off+8, v.Color[0])
		putF32(buf, off+12, v.Color[1])
		putF32(buf, off+16, v.Color[2])
		putF32(buf, off+20, v.Color[3])
		putF32(buf, off+24, v.EdgeDistance)
		putF32(buf, off+28, v.ArcLength)
	}
	return buf
}

func putF32(buf []byte, off int, v float32) {
	binary.LittleEndian.PutUint32(buf[off:], math.Float32bits(v))
}

// pointInstanceLayout returns the vertex buffer layout for the marker
// pipeline: one buffer, stepped per instance.
func pointInstanceLayout() []gputypes.VertexBufferLayout {
	return []gputypes.VertexBufferLayout{
		{
			ArrayStride: PointInstanceStride,
			StepMode:    gputypes.VertexStepModeInstance,
			Attributes: []gputypes.VertexAttribute{
				{Format: gputypes.VertexFormatFloat32x2, Offset: 0, ShaderLocation: 0},  // position
				{Format: gputypes.VertexFormatFloat32x4, Offset: 8, ShaderLocation: 1},  // color
				{Format: gputypes.VertexFormatUint32, Offset: 24, ShaderLocation: 2},    // shape
			},
		},
	}
}

// lineVertexLayout returns the vertex buffer layout for the line pipeline.
func lineVertexLayout() []gputypes.VertexBufferLayout {
	return []gputypes.VertexBufferLayout{
		{
			ArrayStride: LineVertexStride,
			StepMode:    gputypes.VertexStepModeVertex,
			Attributes: []gputypes.VertexAttribute{
				{Format: gputypes.VertexFormatFloat32x2, Offset: 0, ShaderLocation: 0}, // position
				{Format: gputypes.VertexFormatFloat32x4, Offset: 8, ShaderLocation: 1}, // color
				{Format: gputypes.VertexFormatFloat32, Offset: 24, ShaderLocation: 2},  // edge_distance
				{Format: gputypes.VertexFormatFloat32, Offset: 28, ShaderLocation: 3},  // arc_length
			},
		},
	}
}
