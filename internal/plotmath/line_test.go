package plotmath

import "testing"

func TestLineAlphaProfile(t *testing.T) {
	if a := LineAlpha(0); a != 1 {
		t.Errorf("alpha at centerline = %g, want 1", a)
	}
	if a := LineAlpha(0.8); a != 1 {
		t.Errorf("alpha at fade start = %g, want 1", a)
	}
	if a := LineAlpha(1.0); a != 0 {
		t.Errorf("alpha at nominal edge = %g, want 0", a)
	}
	if a := LineAlpha(1.5); a != 0 {
		t.Errorf("alpha beyond the edge = %g, want 0", a)
	}
}

func TestLineAlphaSymmetric(t *testing.T) {
	for _, d := range []float32{0, 0.25, 0.5, 0.85, 0.95, 1.0, 1.2} {
		pos, neg := LineAlpha(d), LineAlpha(-d)
		if pos != neg {
			t.Errorf("alpha asymmetric at |d|=%g: %g vs %g", d, pos, neg)
		}
	}
}

func TestLineAlphaMonotone(t *testing.T) {
	prev := float32(2)
	for d := float32(0); d <= 1.2; d += 0.05 {
		a := LineAlpha(d)
		if a > prev {
			t.Fatalf("alpha not monotone at d=%g: %g > %g", d, a, prev)
		}
		prev = a
	}
}

func TestPatternSolid(t *testing.T) {
	for _, arc := range []float32{0, 1, 10, 100, 12345} {
		if !PatternOn(PatternSolid, arc, 2) {
			t.Errorf("solid pattern off at arc=%g", arc)
		}
	}
}

func TestPatternNone(t *testing.T) {
	for _, arc := range []float32{0, 1, 10, 100} {
		if PatternOn(PatternNone, arc, 2) {
			t.Errorf("none pattern on at arc=%g", arc)
		}
	}
}

func TestPatternDashed(t *testing.T) {
	const w = 2.0 // pattern period: 6 widths = 12px (8 on, 4 off)

	tests := []struct {
		arc  float32
		want bool
	}{
		{0, true},
		{7.9, true},
		{8.1, false},
		{11.9, false},
		{12.1, true}, // next cycle
	}
	for _, tt := range tests {
		if got := PatternOn(PatternDashed, tt.arc, w); got != tt.want {
			t.Errorf("dashed at arc=%g: got %v, want %v", tt.arc, got, tt.want)
		}
	}
}

func TestPatternDotted(t *testing.T) {
	const w = 2.0 // period 2.5 widths = 5px (2 on, 3 off)

	tests := []struct {
		arc  float32
		want bool
	}{
		{0, true},
		{1.9, true},
		{2.1, false},
		{4.9, false},
		{5.1, true},
	}
	for _, tt := range tests {
		if got := PatternOn(PatternDotted, tt.arc, w); got != tt.want {
			t.Errorf("dotted at arc=%g: got %v, want %v", tt.arc, got, tt.want)
		}
	}
}

func TestPatternDashDot(t *testing.T) {
	const w = 1.0 // period 8: dash [0,4), gap, dot [5.5,6.5), gap

	tests := []struct {
		arc  float32
		want bool
	}{
		{0, true},
		{3.9, true},
		{4.5, false},
		{5.7, true}, // the dot
		{6.6, false},
		{8.2, true}, // next cycle's dash
	}
	for _, tt := range tests {
		if got := PatternOn(PatternDashDot, tt.arc, w); got != tt.want {
			t.Errorf("dash-dot at arc=%g: got %v, want %v", tt.arc, got, tt.want)
		}
	}
}

func TestPatternUnknownTagSolid(t *testing.T) {
	if !PatternOn(99, 3, 2) {
		t.Error("unknown pattern tag should behave as solid")
	}
}

func TestPatternZeroWidthDoesNotPanic(t *testing.T) {
	// Zero line width is a caller error; the mask must still be finite.
	if !PatternOn(PatternSolid, 5, 0) {
		t.Error("solid must stay on regardless of width")
	}
	_ = PatternOn(PatternDashed, 5, 0)
}
