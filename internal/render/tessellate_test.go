package render

import (
	"math"
	"testing"
)

func TestTessellateLineSingleSegment(t *testing.T) {
	red := [4]float32{1, 0, 0, 1}
	points := []LinePoint{
		{X: 0, Y: 10, Color: red},
		{X: 10, Y: 10, Color: red},
	}

	verts := TessellateLine(points, 1)
	if len(verts) != 6 {
		t.Fatalf("vertex count = %d, want 6", len(verts))
	}

	// Horizontal segment: perpendicular is vertical, so the quad spans
	// y in [9, 11].
	for i, v := range verts {
		if v.Y != 9 && v.Y != 11 {
			t.Errorf("vertex %d y = %g, want 9 or 11", i, v.Y)
		}
		if v.EdgeDistance != 1 && v.EdgeDistance != -1 {
			t.Errorf("vertex %d edge_distance = %g, want +-1", i, v.EdgeDistance)
		}
		if v.Color != red {
			t.Errorf("vertex %d color = %v, want %v", i, v.Color, red)
		}
	}

	// Arc length: 0 at the start, segment length at the end.
	if verts[0].ArcLength != 0 {
		t.Errorf("start arc length = %g, want 0", verts[0].ArcLength)
	}
	if verts[5].ArcLength != 10 {
		t.Errorf("end arc length = %g, want 10", verts[5].ArcLength)
	}
}

func TestTessellateLineArcLengthAccumulates(t *testing.T) {
	white := [4]float32{1, 1, 1, 1}
	points := []LinePoint{
		{X: 0, Y: 0, Color: white},
		{X: 3, Y: 4, Color: white}, // length 5
		{X: 3, Y: 10, Color: white}, // length 6
	}

	verts := TessellateLine(points, 1)
	if len(verts) != 12 {
		t.Fatalf("vertex count = %d, want 12", len(verts))
	}
	if got := verts[5].ArcLength; got != 5 {
		t.Errorf("first segment end arc = %g, want 5", got)
	}
	if got := verts[6].ArcLength; got != 5 {
		t.Errorf("second segment start arc = %g, want 5", got)
	}
	if got := verts[11].ArcLength; got != 11 {
		t.Errorf("second segment end arc = %g, want 11", got)
	}
}

func TestTessellateLineSkipsDegenerateSegments(t *testing.T) {
	c := [4]float32{0, 0, 0, 1}
	points := []LinePoint{
		{X: 0, Y: 0, Color: c},
		{X: 0, Y: 0, Color: c}, // duplicate, skipped
		{X: 10, Y: 0, Color: c},
	}

	verts := TessellateLine(points, 1)
	if len(verts) != 6 {
		t.Fatalf("vertex count = %d, want 6 (one quad)", len(verts))
	}
	for i, v := range verts {
		if math.IsNaN(float64(v.X)) || math.IsNaN(float64(v.Y)) {
			t.Errorf("vertex %d has NaN position", i)
		}
	}
}

func TestTessellateLineTooFewPoints(t *testing.T) {
	if verts := TessellateLine(nil, 1); verts != nil {
		t.Errorf("nil points: got %d vertices, want none", len(verts))
	}
	one := []LinePoint{{X: 1, Y: 2}}
	if verts := TessellateLine(one, 1); verts != nil {
		t.Errorf("single point: got %d vertices, want none", len(verts))
	}
}

func TestTessellateLineColorPerEndpoint(t *testing.T) {
	red := [4]float32{1, 0, 0, 1}
	blue := [4]float32{0, 0, 1, 1}
	points := []LinePoint{
		{X: 0, Y: 0, Color: red},
		{X: 10, Y: 0, Color: blue},
	}

	verts := TessellateLine(points, 2)
	// First two vertices belong to p0, the rest include p1's rim.
	if verts[0].Color != red || verts[1].Color != red {
		t.Error("start vertices should carry the start color")
	}
	if verts[2].Color != blue || verts[5].Color != blue {
		t.Error("end vertices should carry the end color")
	}
}

func TestTessellateLineWidth(t *testing.T) {
	c := [4]float32{1, 1, 1, 1}
	points := []LinePoint{
		{X: 0, Y: 0, Color: c},
		{X: 0, Y: 10, Color: c}, // vertical: perpendicular is horizontal
	}

	verts := TessellateLine(points, 3)
	for i, v := range verts {
		if v.X != 3 && v.X != -3 {
			t.Errorf("vertex %d x = %g, want +-3", i, v.X)
		}
	}
}
