// Package plotmath contains the pure math that the plot shaders evaluate
// per vertex and per pixel: the data-to-NDC coordinate mapper, the marker
// signed-distance functions, and the anti-aliasing and dash-mask ramps.
//
// Every function here is a free function with no captured state, mirroring
// the corresponding WGSL in internal/render/shaders/plot.wgsl. The two must
// stay formula-identical: the 0.1 discard/AA thresholds are calibrated to
// these exact (partly non-Euclidean) distance approximations, and the CPU
// side is what the tests exercise.
//
// All arithmetic is float32 to match GPU evaluation.
package plotmath
