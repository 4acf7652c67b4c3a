package plotmath

// View holds the per-draw mapping parameters, mirroring the shader's
// uniform block. Ranges are (min, max) and must satisfy max > min for
// finite output; a degenerate range divides by zero and the resulting
// non-finite values propagate unchecked, exactly as they do on the GPU.
type View struct {
	ViewportW, ViewportH float32 // viewport size in pixels
	XMin, XMax           float32 // data X range
	YMin, YMax           float32 // data Y range
	PadX, PadY           float32 // pixels reserved on each side
}

// PlotSize returns the drawable plot area in pixels (viewport minus
// padding on both sides).
func (v View) PlotSize() (w, h float32) {
	return v.ViewportW - 2*v.PadX, v.ViewportH - 2*v.PadY
}

// DataToScreen maps a data-space point to screen pixels (top-left origin,
// Y down). Data Y increases upward, so the normalized Y is flipped.
// Values outside the ranges are not clamped; they land outside the plot
// area and are clipped by the rasterizer.
func DataToScreen(v View, x, y float32) (sx, sy float32) {
	plotW, plotH := v.PlotSize()
	xNorm := (x - v.XMin) / (v.XMax - v.XMin)
	yNorm := (y - v.YMin) / (v.YMax - v.YMin)
	sx = v.PadX + xNorm*plotW
	sy = v.PadY + (1-yNorm)*plotH
	return sx, sy
}

// ScreenToNDC maps screen pixels to normalized device coordinates.
// Screen (0,0) is the top-left corner; NDC (-1,-1) is the bottom-left.
func ScreenToNDC(v View, sx, sy float32) (nx, ny float32) {
	nx = sx/v.ViewportW*2 - 1
	ny = 1 - sy/v.ViewportH*2
	return nx, ny
}

// DataToNDC composes DataToScreen and ScreenToNDC, the full transform the
// marker vertex stage applies to instance centers.
func DataToNDC(v View, x, y float32) (nx, ny float32) {
	sx, sy := DataToScreen(v, x, y)
	return ScreenToNDC(v, sx, sy)
}
