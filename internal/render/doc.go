// Package render is the GPU core of the plot library. It owns the WGSL
// shader, the byte-exact uniform/instance/vertex buffer layouts, the
// marker and line render pipelines on wgpu/hal, and the polyline
// tessellator that feeds the line pipeline.
//
// The package renders offscreen: a 4x MSAA color attachment resolves to a
// single-sample texture which is copied to a staging buffer and read back
// into a caller-provided RGBA target. Surface presentation, pipeline
// ownership across frames, and data layout above the buffer level belong
// to the callers (the root plot package and its hosts).
//
// Execution inside a draw is massively parallel with no shared mutable
// state: the uniform block is written before submission and read-only for
// the draw's duration. Pipeline methods themselves are not safe for
// concurrent use; callers serialize frames.
package render
