// Package plot renders 2D scatter and line plots on the GPU.
//
// Data points are mapped from data space to normalized device coordinates
// on the GPU; markers are drawn as signed-distance-field shapes on
// instanced quads and polylines as anti-aliased pre-tessellated triangle
// strips. Rendering happens offscreen with 4x MSAA and is read back into
// an image.RGBA.
//
// The typical flow is: build a Plotter, add Series, create a Renderer,
// and call Render:
//
//	p := plot.NewPlotter()
//	p.AddSeries(plot.Series{
//	    Label:  "signal",
//	    Color:  plot.RGB(0.2, 0.4, 1),
//	    Points: points,
//	    Marker: plot.MarkerCircle,
//	})
//
//	r, err := plot.NewRenderer()
//	if err != nil { ... }
//	defer r.Close()
//
//	img, err := r.Render(p, 800, 600)
//
// By default the package produces no log output; call SetLogger to enable
// structured logging.
package plot
