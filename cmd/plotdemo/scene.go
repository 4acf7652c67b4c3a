package main

import (
	"fmt"
	"math"

	"github.com/BurntSushi/toml"

	"github.com/gogpu/plot"
)

// scene pairs a configured plotter with its viewport size.
type scene struct {
	plotter *plot.Plotter
	width   int
	height  int
}

// sceneConfig is the TOML shape of a scene file.
type sceneConfig struct {
	Width        int     `toml:"width"`
	Height       int     `toml:"height"`
	Padding      float64 `toml:"padding"`
	MarkerRadius float64 `toml:"marker_radius"`
	LineWidth    float64 `toml:"line_width"`
	Pattern      string  `toml:"pattern"`

	XMin *float64 `toml:"xmin"`
	XMax *float64 `toml:"xmax"`
	YMin *float64 `toml:"ymin"`
	YMax *float64 `toml:"ymax"`

	Series []seriesConfig `toml:"series"`
}

type seriesConfig struct {
	Label    string      `toml:"label"`
	Color    string      `toml:"color"`
	Marker   string      `toml:"marker"`
	Colormap string      `toml:"colormap"`
	Points   [][]float64 `toml:"points"`

	// Sampled function series, as an alternative to explicit points.
	Function string  `toml:"function"`
	FnXMin   float64 `toml:"xmin"`
	FnXMax   float64 `toml:"xmax"`
	Count    int     `toml:"count"`
}

// namedFunctions are the generators a scene file can reference.
var namedFunctions = map[string]func(float64) float64{
	"sin":    math.Sin,
	"cos":    math.Cos,
	"sqrt":   math.Sqrt,
	"square": func(x float64) float64 { return x * x },
	"exp":    math.Exp,
	"log":    math.Log,
}

// loadScene parses a TOML scene file into a plotter.
func loadScene(path string) (*scene, error) {
	var cfg sceneConfig
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, err
	}
	return buildScene(&cfg)
}

func buildScene(cfg *sceneConfig) (*scene, error) {
	p := plot.NewPlotter()
	if cfg.Padding > 0 {
		p.Options.Padding = cfg.Padding
	}
	if cfg.MarkerRadius > 0 {
		p.Options.MarkerRadius = cfg.MarkerRadius
	}
	if cfg.LineWidth > 0 {
		p.Options.LineWidth = cfg.LineWidth
	}
	if cfg.Pattern != "" {
		p.Options.Pattern = plot.ParseLinePattern(cfg.Pattern)
	}
	if cfg.XMin != nil && cfg.XMax != nil {
		p.Options.XRange = &plot.Range{Min: *cfg.XMin, Max: *cfg.XMax}
	}
	if cfg.YMin != nil && cfg.YMax != nil {
		p.Options.YRange = &plot.Range{Min: *cfg.YMin, Max: *cfg.YMax}
	}

	for i := range cfg.Series {
		s, err := buildSeries(&cfg.Series[i])
		if err != nil {
			return nil, fmt.Errorf("series %d (%s): %w", i, cfg.Series[i].Label, err)
		}
		p.AddSeries(s)
	}

	w, h := cfg.Width, cfg.Height
	if w <= 0 {
		w = 800
	}
	if h <= 0 {
		h = 600
	}
	return &scene{plotter: p, width: w, height: h}, nil
}

func buildSeries(cfg *seriesConfig) (plot.Series, error) {
	s := plot.Series{
		Label:  cfg.Label,
		Color:  plot.Hex(cfg.Color),
		Marker: plot.ParseMarkerShape(cfg.Marker),
	}
	if cfg.Color == "" {
		s.Color = plot.Blue
	}

	if cfg.Colormap != "" {
		cm, err := parseColormap(cfg.Colormap)
		if err != nil {
			return s, err
		}
		s.Colormap = &cm
	}

	switch {
	case cfg.Function != "":
		fn, ok := namedFunctions[cfg.Function]
		if !ok {
			return s, fmt.Errorf("unknown function %q", cfg.Function)
		}
		count := cfg.Count
		if count <= 0 {
			count = 100
		}
		s.Generator = &plot.Generator{
			Function: fn,
			XMin:     cfg.FnXMin,
			XMax:     cfg.FnXMax,
			Count:    count,
		}
	case len(cfg.Points) > 0:
		s.Points = make([]plot.Point, 0, len(cfg.Points))
		for _, xy := range cfg.Points {
			if len(xy) != 2 {
				return s, fmt.Errorf("point %v must have exactly two values", xy)
			}
			s.Points = append(s.Points, plot.Point{X: xy[0], Y: xy[1]})
		}
	default:
		return s, fmt.Errorf("series needs either points or a function")
	}

	return s, nil
}

func parseColormap(name string) (plot.Colormap, error) {
	switch name {
	case "viridis":
		return plot.ColormapViridis, nil
	case "plasma":
		return plot.ColormapPlasma, nil
	case "turbo":
		return plot.ColormapTurbo, nil
	case "heat":
		return plot.ColormapHeat, nil
	case "grayscale":
		return plot.ColormapGrayscale, nil
	default:
		return 0, fmt.Errorf("unknown colormap %q", name)
	}
}

// demoScene builds the default scene rendered when no config is given.
func demoScene() *scene {
	p := plot.NewPlotter()
	p.AddSeries(plot.Series{
		Label:  "sin(x)",
		Color:  plot.Hex("#3366ff"),
		Marker: plot.MarkerNone,
		Generator: &plot.Generator{
			Function: math.Sin,
			XMin:     0, XMax: 4 * math.Pi,
			Count: 200,
		},
	})
	p.AddSeries(plot.Series{
		Label:  "cos(x)",
		Color:  plot.Hex("#cc3333"),
		Marker: plot.MarkerNone,
		Generator: &plot.Generator{
			Function: math.Cos,
			XMin:     0, XMax: 4 * math.Pi,
			Count: 200,
		},
	})

	cm := plot.ColormapViridis
	scatter := plot.Series{
		Label:    "samples",
		Marker:   plot.MarkerDiamond,
		Colormap: &cm,
	}
	for i := 0; i < 24; i++ {
		x := float64(i) / 23 * 4 * math.Pi
		scatter.Points = append(scatter.Points, plot.Point{X: x, Y: math.Sin(x) * math.Cos(x/2)})
	}
	p.AddSeries(scatter)

	return &scene{plotter: p, width: 800, height: 600}
}
