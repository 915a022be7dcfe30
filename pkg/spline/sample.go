package spline

import (
	stdmath "math"

	"github.com/pathprop/pathprop/pkg/math"
)

// ControlPoint is one authored spline point: a position plus the
// direction and magnitude of the Bezier handle leaving it. Heading and
// pitch are radians.
type ControlPoint struct {
	Position math.Vec3
	Heading  float64
	Pitch    float64
	Tangent  float64
}

// TangentVec returns the handle vector derived from heading, pitch and
// tangent magnitude.
func (c ControlPoint) TangentVec() math.Vec3 {
	sinP, cosP := stdmath.Sincos(c.Pitch)
	sinH, cosH := stdmath.Sincos(c.Heading)
	return math.Vec3{X: cosH * cosP, Y: sinH * cosP, Z: sinP}.Scale(c.Tangent)
}

// Sample converts a control-point sequence into a polyline. Each pair of
// consecutive control points defines a cubic Bezier segment with handles
// A, A+tangent(A), B-tangent(B), B, evaluated at subdivisions equally
// spaced parameters in [0, 1). The final control position is appended
// once at the very end. Fewer than 2 control points yields nil.
func Sample(controls []ControlPoint, subdivisions int) []math.Vec3 {
	if len(controls) < 2 || subdivisions < 1 {
		return nil
	}

	out := make([]math.Vec3, 0, (len(controls)-1)*subdivisions+1)
	for i := 0; i < len(controls)-1; i++ {
		a, b := controls[i], controls[i+1]
		p0 := a.Position
		p1 := a.Position.Add(a.TangentVec())
		p2 := b.Position.Sub(b.TangentVec())
		p3 := b.Position
		for s := 0; s < subdivisions; s++ {
			t := float64(s) / float64(subdivisions)
			out = append(out, deCasteljau(p0, p1, p2, p3, t))
		}
	}
	return append(out, controls[len(controls)-1].Position)
}

// deCasteljau evaluates a cubic Bezier by three rounds of linear
// interpolation.
func deCasteljau(p0, p1, p2, p3 math.Vec3, t float64) math.Vec3 {
	q0 := lerp(p0, p1, t)
	q1 := lerp(p1, p2, t)
	q2 := lerp(p2, p3, t)
	r0 := lerp(q0, q1, t)
	r1 := lerp(q1, q2, t)
	return lerp(r0, r1, t)
}

func lerp(a, b math.Vec3, t float64) math.Vec3 {
	return a.Add(b.Sub(a).Scale(t))
}
