package formats

import (
	stdmath "math"
	"testing"
)

func TestParseSplineDoc(t *testing.T) {
	data := []byte(`name: jump-route
radius: 6
sides: 8
subdivisions: 24
points:
  - position: [0, 0, 0]
    heading: 90
    tangent: 256
  - position: [0, 512, 64]
    heading: 90
    pitch: -15
    tangent: 256
`)
	doc, err := ParseSplineDoc(data)
	if err != nil {
		t.Fatalf("ParseSplineDoc failed: %v", err)
	}
	if doc.Name != "jump-route" || doc.Radius != 6 || doc.Sides != 8 || doc.Subdivisions != 24 {
		t.Errorf("header mismatch: %+v", doc)
	}
	if len(doc.Points) != 2 {
		t.Fatalf("got %d points, want 2", len(doc.Points))
	}
	if doc.Points[1].Pitch != -15 {
		t.Errorf("pitch = %v, want -15", doc.Points[1].Pitch)
	}
}

func TestParseSplineDocDefaults(t *testing.T) {
	doc, err := ParseSplineDoc([]byte("points:\n  - position: [1, 2, 3]\n"))
	if err != nil {
		t.Fatalf("ParseSplineDoc failed: %v", err)
	}
	if doc.Radius != defaultRadius || doc.Sides != defaultSides || doc.Subdivisions != defaultSubdivisions {
		t.Errorf("defaults not applied: %+v", doc)
	}
	if doc.Points[0].Tangent != defaultTangent {
		t.Errorf("point tangent = %v, want %v", doc.Points[0].Tangent, defaultTangent)
	}
}

func TestSplineDocRoundTrip(t *testing.T) {
	doc := &SplineDoc{
		Name:         "loop",
		Radius:       4,
		Sides:        6,
		Subdivisions: 16,
		Points: []DocPoint{
			{Position: [3]float64{0, 0, 0}, Heading: 45, Tangent: 128, Color: "#ff0000"},
			{Position: [3]float64{100, 100, 0}, Heading: 135, Tangent: 128, Color: "#0000ff"},
		},
	}
	data, err := doc.Marshal()
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	back, err := ParseSplineDoc(data)
	if err != nil {
		t.Fatalf("ParseSplineDoc failed: %v", err)
	}
	if back.Name != doc.Name || len(back.Points) != len(doc.Points) {
		t.Fatalf("round trip changed document: %+v", back)
	}
	if back.Points[0].Color != "#ff0000" {
		t.Errorf("color = %q, want #ff0000", back.Points[0].Color)
	}
}

func TestControlPoints(t *testing.T) {
	doc := &SplineDoc{
		Points: []DocPoint{
			{Position: [3]float64{1, 2, 3}, Heading: 180, Pitch: 90, Tangent: 64},
		},
	}
	controls := doc.ControlPoints()
	if len(controls) != 1 {
		t.Fatalf("got %d controls, want 1", len(controls))
	}
	c := controls[0]
	if c.Position.X != 1 || c.Position.Y != 2 || c.Position.Z != 3 {
		t.Errorf("position = %v", c.Position)
	}
	if stdmath.Abs(c.Heading-stdmath.Pi) > 1e-12 {
		t.Errorf("heading = %v, want pi", c.Heading)
	}
	if stdmath.Abs(c.Pitch-stdmath.Pi/2) > 1e-12 {
		t.Errorf("pitch = %v, want pi/2", c.Pitch)
	}
	if c.Tangent != 64 {
		t.Errorf("tangent = %v, want 64", c.Tangent)
	}
}
