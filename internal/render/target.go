package render

// Target is a CPU-side render destination: straight-alpha RGBA8, row-major,
// 4 bytes per pixel. Rendered plot content is composited over whatever Data
// already holds, so callers can pre-fill a background.
type Target struct {
	Width  int
	Height int
	Data   []byte // len = Width*Height*4
}

// NewTarget allocates a zeroed (fully transparent) target.
func NewTarget(width, height int) Target {
	return Target{
		Width:  width,
		Height: height,
		Data:   make([]byte, width*height*4),
	}
}

// compositeBGRAOverRGBA source-over composites GPU readback pixels (BGRA8)
// onto an RGBA8 destination in place. The source color is premultiplied: the
// pipelines blend straight-alpha shader output with SrcAlpha into a
// transparent-cleared attachment, which leaves (rgb·a, a) in the resolve
// texture. Color channels therefore add without another alpha multiply.
func compositeBGRAOverRGBA(src []byte, dst []byte, pixelCount int) {
	for i := 0; i < pixelCount; i++ {
		o := i * 4
		sb := uint32(src[o+0])
		sg := uint32(src[o+1])
		sr := uint32(src[o+2])
		sa := uint32(src[o+3])
		if sa == 0 {
			continue
		}
		if sa == 255 {
			dst[o+0] = byte(sr)
			dst[o+1] = byte(sg)
			dst[o+2] = byte(sb)
			dst[o+3] = 255
			continue
		}
		inv := 255 - sa
		dst[o+0] = byte(sr + (uint32(dst[o+0])*inv+127)/255)
		dst[o+1] = byte(sg + (uint32(dst[o+1])*inv+127)/255)
		dst[o+2] = byte(sb + (uint32(dst[o+2])*inv+127)/255)
		dst[o+3] = byte(sa + (uint32(dst[o+3])*inv+127)/255)
	}
}
