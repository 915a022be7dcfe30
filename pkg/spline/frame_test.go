package spline

import (
	"errors"
	stdmath "math"
	"testing"

	"github.com/pathprop/pathprop/pkg/math"
)

func TestBuildSkeletonFaceCount(t *testing.T) {
	pts := []math.Vec3{{X: 0, Y: 0, Z: 0}, {X: 10, Y: 0, Z: 0}, {X: 10, Y: 10, Z: 0}}
	faces, err := BuildSkeleton(pts, 4, 6)
	if err != nil {
		t.Fatalf("BuildSkeleton failed: %v", err)
	}
	if len(faces) != 3 {
		t.Fatalf("got %d faces, want 3", len(faces))
	}
	for i, f := range faces {
		if len(f.Ring) != 6 {
			t.Errorf("face %d has %d ring points, want 6", i, len(f.Ring))
		}
		if f.Center != pts[i] {
			t.Errorf("face %d center = %v, want %v", i, f.Center, pts[i])
		}
	}
}

func TestBuildSkeletonRingRadius(t *testing.T) {
	pts := []math.Vec3{{X: 0, Y: 0, Z: 0}, {X: 10, Y: 0, Z: 0}, {X: 10, Y: 10, Z: 0}, {X: 10, Y: 10, Z: 20}}
	const radius = 4.0
	faces, err := BuildSkeleton(pts, radius, 8)
	if err != nil {
		t.Fatalf("BuildSkeleton failed: %v", err)
	}
	for i, f := range faces {
		for k, p := range f.Ring {
			d := p.Distance(f.Center)
			if stdmath.Abs(d-radius) > 1e-6 {
				t.Errorf("face %d ring %d at distance %v, want %v", i, k, d, radius)
			}
		}
	}
}

func TestBuildSkeletonRingOrthogonal(t *testing.T) {
	// Every ring point must lie in the mitre plane of its vertex. For a
	// straight path the mitre normal is the path direction everywhere.
	pts := []math.Vec3{{X: 0, Y: 0, Z: 0}, {X: 10, Y: 0, Z: 0}}
	faces, err := BuildSkeleton(pts, 2, 4)
	if err != nil {
		t.Fatalf("BuildSkeleton failed: %v", err)
	}
	dir := math.Vec3{X: 1}
	for i, f := range faces {
		for k, p := range f.Ring {
			if d := p.Sub(f.Center).Dot(dir); stdmath.Abs(d) > 1e-6 {
				t.Errorf("face %d ring %d off the mitre plane: dot = %v", i, k, d)
			}
		}
	}
}

func TestBuildSkeletonVerticalStart(t *testing.T) {
	// A path that starts straight up hits the degenerate world-up seed
	// and must fall back to world X.
	pts := []math.Vec3{{X: 0, Y: 0, Z: 0}, {X: 0, Y: 0, Z: 10}, {X: 5, Y: 0, Z: 15}}
	faces, err := BuildSkeleton(pts, 3, 6)
	if err != nil {
		t.Fatalf("BuildSkeleton failed: %v", err)
	}
	for i, f := range faces {
		for k, p := range f.Ring {
			d := p.Distance(f.Center)
			if stdmath.Abs(d-3) > 1e-6 {
				t.Errorf("face %d ring %d at distance %v, want 3", i, k, d)
			}
		}
	}
}

func TestBuildSkeletonNoTwist(t *testing.T) {
	// Along a gentle arc, consecutive up vectors (ring point 0 relative
	// to center) must stay close: parallel transport forbids sudden
	// flips.
	var pts []math.Vec3
	for i := 0; i <= 16; i++ {
		a := float64(i) / 16 * stdmath.Pi / 2
		pts = append(pts, math.Vec3{X: stdmath.Cos(a) * 100, Y: stdmath.Sin(a) * 100})
	}
	faces, err := BuildSkeleton(pts, 4, 6)
	if err != nil {
		t.Fatalf("BuildSkeleton failed: %v", err)
	}
	for i := 1; i < len(faces); i++ {
		prevUp := faces[i-1].Ring[0].Sub(faces[i-1].Center).Normalize()
		up := faces[i].Ring[0].Sub(faces[i].Center).Normalize()
		if dot := prevUp.Dot(up); dot < 0.9 {
			t.Errorf("up vector flipped between faces %d and %d: dot = %v", i-1, i, dot)
		}
	}
}

func TestBuildSkeletonDegenerate(t *testing.T) {
	if faces, err := BuildSkeleton(nil, 4, 6); err != nil || len(faces) != 0 {
		t.Errorf("empty input: got %d faces, err %v", len(faces), err)
	}
	one := []math.Vec3{{X: 1, Y: 2, Z: 3}}
	if faces, err := BuildSkeleton(one, 4, 6); err != nil || len(faces) != 0 {
		t.Errorf("single point: got %d faces, err %v", len(faces), err)
	}
}

func TestBuildSkeletonBadParams(t *testing.T) {
	pts := []math.Vec3{{X: 0, Y: 0, Z: 0}, {X: 1, Y: 0, Z: 0}}
	if _, err := BuildSkeleton(pts, 4, 1); !errors.Is(err, ErrTooFewSides) {
		t.Errorf("sides=1: err = %v, want ErrTooFewSides", err)
	}
	if _, err := BuildSkeleton(pts, 0, 6); !errors.Is(err, ErrBadRadius) {
		t.Errorf("radius=0: err = %v, want ErrBadRadius", err)
	}
}
