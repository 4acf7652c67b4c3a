package plot

import (
	"image/color"
	"testing"
)

func TestHexFormats(t *testing.T) {
	tests := []struct {
		in   string
		want RGBA
	}{
		{"#f00", RGBA{1, 0, 0, 1}},
		{"#ff0000", RGBA{1, 0, 0, 1}},
		{"00ff00", RGBA{0, 1, 0, 1}},
		{"#0000ffff", RGBA{0, 0, 1, 1}},
		{"#0000", RGBA{0, 0, 0, 0}},
		{"bogus", RGBA{0, 0, 0, 1}}, // invalid input falls back to black
	}
	for _, tt := range tests {
		if got := Hex(tt.in); got != tt.want {
			t.Errorf("Hex(%q) = %+v, want %+v", tt.in, got, tt.want)
		}
	}
}

func TestColorRoundTrip(t *testing.T) {
	c := RGB(0.5, 0.25, 0.75)
	std := c.Color()
	back := FromColor(std)
	if diff := back.R - c.R; diff > 0.01 || diff < -0.01 {
		t.Errorf("round trip red = %g, want near %g", back.R, c.R)
	}
}

func TestFromColorOpaque(t *testing.T) {
	c := FromColor(color.White)
	if c.R != 1 || c.G != 1 || c.B != 1 || c.A != 1 {
		t.Errorf("white = %+v, want all ones", c)
	}
}

func TestVec4(t *testing.T) {
	v := RGBA{0.25, 0.5, 0.75, 1}.vec4()
	want := [4]float32{0.25, 0.5, 0.75, 1}
	if v != want {
		t.Errorf("vec4 = %v, want %v", v, want)
	}
}
