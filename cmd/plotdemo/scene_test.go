package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/gogpu/plot"
)

func writeScene(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scene.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write scene: %v", err)
	}
	return path
}

func TestLoadScenePoints(t *testing.T) {
	path := writeScene(t, `
width = 640
height = 480
pattern = "dashed"
marker_radius = 6

[[series]]
label = "trace"
color = "#ff0000"
marker = "square"
points = [[0.0, 1.0], [1.0, 2.5]]
`)

	s, err := loadScene(path)
	if err != nil {
		t.Fatalf("loadScene failed: %v", err)
	}
	if s.width != 640 || s.height != 480 {
		t.Errorf("size = %dx%d, want 640x480", s.width, s.height)
	}
	if s.plotter.Options.Pattern != plot.PatternDashed {
		t.Errorf("pattern = %v, want dashed", s.plotter.Options.Pattern)
	}
	if s.plotter.Options.MarkerRadius != 6 {
		t.Errorf("marker radius = %g, want 6", s.plotter.Options.MarkerRadius)
	}
	if len(s.plotter.Series) != 1 {
		t.Fatalf("series count = %d, want 1", len(s.plotter.Series))
	}
	sr := s.plotter.Series[0]
	if sr.Marker != plot.MarkerSquare {
		t.Errorf("marker = %v, want square", sr.Marker)
	}
	if len(sr.Points) != 2 || sr.Points[1] != (plot.Point{X: 1, Y: 2.5}) {
		t.Errorf("points = %v", sr.Points)
	}
}

func TestLoadSceneFunctionSeries(t *testing.T) {
	path := writeScene(t, `
[[series]]
label = "model"
function = "sin"
xmin = 0.0
xmax = 6.28
count = 50
`)

	s, err := loadScene(path)
	if err != nil {
		t.Fatalf("loadScene failed: %v", err)
	}
	g := s.plotter.Series[0].Generator
	if g == nil {
		t.Fatal("expected a generator series")
	}
	if g.Count != 50 || g.XMax != 6.28 {
		t.Errorf("generator = %+v", g)
	}
	// Default size applies when the scene omits it.
	if s.width != 800 || s.height != 600 {
		t.Errorf("default size = %dx%d, want 800x600", s.width, s.height)
	}
}

func TestLoadSceneManualRanges(t *testing.T) {
	path := writeScene(t, `
xmin = -1.0
xmax = 1.0
ymin = 0.0
ymax = 10.0

[[series]]
points = [[0.0, 5.0]]
`)

	s, err := loadScene(path)
	if err != nil {
		t.Fatalf("loadScene failed: %v", err)
	}
	if s.plotter.Options.XRange == nil || *s.plotter.Options.XRange != (plot.Range{Min: -1, Max: 1}) {
		t.Errorf("x range = %v, want [-1, 1]", s.plotter.Options.XRange)
	}
	if s.plotter.Options.YRange == nil || *s.plotter.Options.YRange != (plot.Range{Min: 0, Max: 10}) {
		t.Errorf("y range = %v, want [0, 10]", s.plotter.Options.YRange)
	}
}

func TestLoadSceneErrors(t *testing.T) {
	cases := []struct {
		name    string
		content string
	}{
		{"empty series", "[[series]]\nlabel = \"x\"\n"},
		{"unknown function", "[[series]]\nfunction = \"tanh\"\n"},
		{"bad point arity", "[[series]]\npoints = [[1.0, 2.0, 3.0]]\n"},
		{"unknown colormap", "[[series]]\ncolormap = \"jet\"\npoints = [[0.0, 0.0]]\n"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			path := writeScene(t, tc.content)
			if _, err := loadScene(path); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestDemoScene(t *testing.T) {
	s := demoScene()
	if len(s.plotter.Series) != 3 {
		t.Errorf("demo series count = %d, want 3", len(s.plotter.Series))
	}
	frame := s.plotter.BuildFrame(s.width, s.height)
	if len(frame.Markers) == 0 || len(frame.Lines) == 0 {
		t.Error("demo scene should produce both markers and lines")
	}
}
