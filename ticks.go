package plot

import "math"

// TickConfig bounds how many axis ticks ComputeTicks aims for.
type TickConfig struct {
	MinTicks int
	MaxTicks int
}

// DefaultTickConfig targets 4 to 10 ticks per axis.
func DefaultTickConfig() TickConfig {
	return TickConfig{MinTicks: 4, MaxTicks: 10}
}

// ComputeTicks returns tick positions covering [rangeMin, rangeMax] at a
// "nice" step (1, 2, or 5 times a power of ten). A degenerate range yields
// the single value. The first tick may land just below rangeMin so tick
// labels align on round numbers.
func ComputeTicks(rangeMin, rangeMax float64, config TickConfig) []float64 {
	if math.Abs(rangeMax-rangeMin) < 1e-12 {
		return []float64{rangeMin}
	}

	lo, hi := rangeMin, rangeMax
	if lo > hi {
		lo, hi = hi, lo
	}

	target := float64((config.MinTicks + config.MaxTicks) / 2)
	if target < 2 {
		target = 2
	}
	roughStep := (hi - lo) / target

	magnitude := math.Pow(10, math.Floor(math.Log10(roughStep)))
	normalized := roughStep / magnitude

	var niceFactor float64
	switch {
	case normalized <= 1:
		niceFactor = 1
	case normalized <= 2:
		niceFactor = 2
	case normalized <= 5:
		niceFactor = 5
	default:
		niceFactor = 10
	}

	step := niceFactor * magnitude
	start := math.Floor(lo/step) * step

	var ticks []float64
	for v := start; v <= hi+step*0.001; v += step {
		ticks = append(ticks, v)
	}
	return ticks
}
