package plot

// Colormap maps a normalized value in [0, 1] to a color, for coloring
// points by a continuous quantity. Out-of-range inputs clamp to the
// endpoints.
type Colormap int

const (
	// ColormapViridis is perceptually uniform and colorblind-friendly
	// (dark purple through blue-green to yellow).
	ColormapViridis Colormap = iota

	// ColormapPlasma is perceptually uniform with higher contrast
	// (dark blue through magenta to yellow).
	ColormapPlasma

	// ColormapTurbo is an improved rainbow with better perceptual
	// uniformity than the classic jet map.
	ColormapTurbo

	// ColormapHeat is the classic temperature map
	// (black through red to yellow).
	ColormapHeat

	// ColormapGrayscale maps linearly from black to white.
	ColormapGrayscale
)

type colorStop struct {
	t float64
	c RGBA
}

var viridisStops = []colorStop{
	{0.0, RGB(0.267, 0.004, 0.329)},
	{0.25, RGB(0.282, 0.140, 0.458)},
	{0.5, RGB(0.204, 0.286, 0.469)},
	{0.6, RGB(0.128, 0.400, 0.369)},
	{0.75, RGB(0.527, 0.510, 0.149)},
	{1.0, RGB(0.993, 0.906, 0.144)},
}

var plasmaStops = []colorStop{
	{0.0, RGB(0.050, 0.030, 0.530)},
	{0.25, RGB(0.275, 0.005, 0.610)},
	{0.5, RGB(0.553, 0.027, 0.416)},
	{0.6, RGB(0.764, 0.190, 0.217)},
	{0.75, RGB(0.960, 0.380, 0.113)},
	{1.0, RGB(0.940, 0.975, 0.131)},
}

var turboStops = []colorStop{
	{0.0, RGB(0.180, 0.070, 0.450)},
	{0.2, RGB(0.000, 0.300, 0.740)},
	{0.4, RGB(0.000, 0.780, 0.870)},
	{0.5, RGB(0.000, 0.980, 0.600)},
	{0.6, RGB(0.850, 0.970, 0.110)},
	{0.8, RGB(0.970, 0.430, 0.000)},
	{1.0, RGB(0.880, 0.000, 0.000)},
}

var heatStops = []colorStop{
	{0.0, RGB(0.000, 0.000, 0.000)},
	{0.25, RGB(0.500, 0.000, 0.000)},
	{0.5, RGB(1.000, 0.000, 0.000)},
	{0.75, RGB(1.000, 0.500, 0.000)},
	{1.0, RGB(1.000, 1.000, 0.000)},
}

// Sample returns the colormap's color at position t in [0, 1].
func (m Colormap) Sample(t float64) RGBA {
	t = clamp01(t)
	switch m {
	case ColormapPlasma:
		return samplePalette(plasmaStops, t)
	case ColormapTurbo:
		return samplePalette(turboStops, t)
	case ColormapHeat:
		return samplePalette(heatStops, t)
	case ColormapGrayscale:
		return RGB(t, t, t)
	default:
		return samplePalette(viridisStops, t)
	}
}

// samplePalette interpolates linearly between adjacent stops.
func samplePalette(stops []colorStop, t float64) RGBA {
	if t <= stops[0].t {
		return stops[0].c
	}
	last := stops[len(stops)-1]
	if t >= last.t {
		return last.c
	}
	for i := 0; i+1 < len(stops); i++ {
		s0, s1 := stops[i], stops[i+1]
		if t >= s0.t && t <= s1.t {
			local := (t - s0.t) / (s1.t - s0.t)
			return lerpColor(s0.c, s1.c, local)
		}
	}
	return last.c
}

func lerpColor(a, b RGBA, t float64) RGBA {
	return RGBA{
		R: a.R + (b.R-a.R)*t,
		G: a.G + (b.G-a.G)*t,
		B: a.B + (b.B-a.B)*t,
		A: 1,
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
