package spline

import (
	stdmath "math"
	"testing"

	"github.com/pathprop/pathprop/pkg/math"
)

func TestSampleEndpoints(t *testing.T) {
	controls := []ControlPoint{
		{Position: math.Vec3{X: 0, Y: 0, Z: 0}, Heading: 0, Pitch: 0, Tangent: 10},
		{Position: math.Vec3{X: 100, Y: 0, Z: 0}, Heading: 0, Pitch: 0, Tangent: 10},
	}
	pts := Sample(controls, 16)
	if len(pts) != 17 {
		t.Fatalf("got %d points, want 17", len(pts))
	}
	if pts[0] != controls[0].Position {
		t.Errorf("first sample = %v, want %v", pts[0], controls[0].Position)
	}
	if pts[len(pts)-1] != controls[1].Position {
		t.Errorf("last sample = %v, want %v", pts[len(pts)-1], controls[1].Position)
	}
}

func TestSampleCount(t *testing.T) {
	controls := []ControlPoint{
		{Position: math.Vec3{X: 0, Y: 0, Z: 0}, Tangent: 5},
		{Position: math.Vec3{X: 10, Y: 0, Z: 0}, Tangent: 5},
		{Position: math.Vec3{X: 10, Y: 10, Z: 0}, Heading: stdmath.Pi / 2, Tangent: 5},
	}
	pts := Sample(controls, 8)
	if want := 2*8 + 1; len(pts) != want {
		t.Errorf("got %d points, want %d", len(pts), want)
	}
}

func TestSampleStraightLine(t *testing.T) {
	// Handles aligned with the chord keep the curve on the x axis and x
	// strictly increasing.
	controls := []ControlPoint{
		{Position: math.Vec3{X: 0, Y: 0, Z: 0}, Heading: 0, Tangent: 30},
		{Position: math.Vec3{X: 100, Y: 0, Z: 0}, Heading: 0, Tangent: 30},
	}
	pts := Sample(controls, 10)
	for i, p := range pts {
		if stdmath.Abs(p.Y) > 1e-9 || stdmath.Abs(p.Z) > 1e-9 {
			t.Errorf("sample %d off axis: %v", i, p)
		}
		if i > 0 && p.X <= pts[i-1].X {
			t.Errorf("sample %d not monotone: x %v after %v", i, p.X, pts[i-1].X)
		}
	}
}

func TestSamplePitch(t *testing.T) {
	// A straight-up handle must pull the first samples upward.
	controls := []ControlPoint{
		{Position: math.Vec3{X: 0, Y: 0, Z: 0}, Pitch: stdmath.Pi / 2, Tangent: 50},
		{Position: math.Vec3{X: 100, Y: 0, Z: 0}, Pitch: -stdmath.Pi / 2, Tangent: 50},
	}
	pts := Sample(controls, 8)
	if pts[1].Z <= 0 {
		t.Errorf("first interior sample did not rise: %v", pts[1])
	}
}

func TestSampleTooFewControls(t *testing.T) {
	if pts := Sample(nil, 16); pts != nil {
		t.Errorf("Sample(nil) = %v, want nil", pts)
	}
	one := []ControlPoint{{Position: math.Vec3{X: 1, Y: 2, Z: 3}}}
	if pts := Sample(one, 16); pts != nil {
		t.Errorf("Sample(single) = %v, want nil", pts)
	}
}

func TestTangentVec(t *testing.T) {
	tests := []struct {
		name string
		c    ControlPoint
		want math.Vec3
	}{
		{"east", ControlPoint{Heading: 0, Pitch: 0, Tangent: 2}, math.Vec3{X: 2, Y: 0, Z: 0}},
		{"north", ControlPoint{Heading: stdmath.Pi / 2, Pitch: 0, Tangent: 3}, math.Vec3{X: 0, Y: 3, Z: 0}},
		{"up", ControlPoint{Heading: 0, Pitch: stdmath.Pi / 2, Tangent: 4}, math.Vec3{X: 0, Y: 0, Z: 4}},
	}
	for _, tt := range tests {
		got := tt.c.TangentVec()
		if got.Distance(tt.want) > 1e-9 {
			t.Errorf("%s: TangentVec() = %v, want %v", tt.name, got, tt.want)
		}
	}
}
