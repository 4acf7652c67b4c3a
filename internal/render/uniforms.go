package render

import (
	"encoding/binary"
	"math"

	"github.com/gogpu/plot/internal/plotmath"
)

// UniformSize is the byte size of the uniform block.
// Layout (std140-friendly, vec2 pairs before scalars):
//
//	viewport_size (vec2<f32>) = 8 bytes
//	x_range       (vec2<f32>) = 8 bytes
//	y_range       (vec2<f32>) = 8 bytes
//	padding       (vec2<f32>) = 8 bytes
//	marker_radius (f32)       = 4 bytes
//	line_width    (f32)       = 4 bytes
//	line_pattern  (u32)       = 4 bytes
//	_pad          (u32)       = 4 bytes
//
// Total = 48 bytes.
const UniformSize = 48

// Uniforms is the per-draw configuration block shared by the marker and
// line pipelines. The caller fills it once per frame, uploads it before
// submission, and replaces it wholesale for the next frame; during a draw
// it is read-only.
//
// Ranges must be strictly increasing and padding must leave a positive
// plot area. Neither is validated here: a degenerate range produces
// non-finite clip positions on the GPU, exactly as the coordinate mapper
// documents.
type Uniforms struct {
	ViewportW, ViewportH float32 // pixels, > 0
	XMin, XMax           float32 // data X range, max > min
	YMin, YMax           float32 // data Y range, max > min
	PadX, PadY           float32 // pixels reserved on each side
	MarkerRadius         float32 // pixels, > 0
	LineWidth            float32 // pixels, > 0
	LinePattern          uint32  // plotmath.Pattern* tag
}

// Marshal serializes the block into the exact byte layout the shader's
// Uniforms struct expects.
func (u *Uniforms) Marshal() []byte {
	buf := make([]byte, UniformSize)
	putF32 := func(off int, v float32) {
		binary.LittleEndian.PutUint32(buf[off:], math.Float32bits(v))
	}
	putF32(0, u.ViewportW)
	putF32(4, u.ViewportH)
	putF32(8, u.XMin)
	putF32(12, u.XMax)
	putF32(16, u.YMin)
	putF32(20, u.YMax)
	putF32(24, u.PadX)
	putF32(28, u.PadY)
	putF32(32, u.MarkerRadius)
	putF32(36, u.LineWidth)
	binary.LittleEndian.PutUint32(buf[40:], u.LinePattern)
	// Bytes 44..47 stay zero (_pad).
	return buf
}

// View returns the coordinate-mapper parameters for this block.
func (u *Uniforms) View() plotmath.View {
	return plotmath.View{
		ViewportW: u.ViewportW, ViewportH: u.ViewportH,
		XMin: u.XMin, XMax: u.XMax,
		YMin: u.YMin, YMax: u.YMax,
		PadX: u.PadX, PadY: u.PadY,
	}
}
