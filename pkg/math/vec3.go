// Package math provides the vector types and operations used by the
// path-to-mesh pipeline.
package math

import "math"

// Vec3 is a 3D vector with double-precision components.
type Vec3 struct {
	X, Y, Z float64
}

// Add returns v + other.
func (v Vec3) Add(other Vec3) Vec3 {
	return Vec3{v.X + other.X, v.Y + other.Y, v.Z + other.Z}
}

// Sub returns v - other.
func (v Vec3) Sub(other Vec3) Vec3 {
	return Vec3{v.X - other.X, v.Y - other.Y, v.Z - other.Z}
}

// Scale returns v * s.
func (v Vec3) Scale(s float64) Vec3 {
	return Vec3{v.X * s, v.Y * s, v.Z * s}
}

// Dot returns the dot product.
func (v Vec3) Dot(other Vec3) float64 {
	return v.X*other.X + v.Y*other.Y + v.Z*other.Z
}

// Cross returns the cross product.
func (v Vec3) Cross(other Vec3) Vec3 {
	return Vec3{
		v.Y*other.Z - v.Z*other.Y,
		v.Z*other.X - v.X*other.Z,
		v.X*other.Y - v.Y*other.X,
	}
}

// Length returns the magnitude.
func (v Vec3) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// Normalize returns a unit vector. The zero vector normalizes to itself.
func (v Vec3) Normalize() Vec3 {
	l := v.Length()
	if l == 0 {
		return Vec3{}
	}
	return Vec3{v.X / l, v.Y / l, v.Z / l}
}

// Distance returns the distance to another point.
func (v Vec3) Distance(other Vec3) float64 {
	return v.Sub(other).Length()
}

// ProjectOnPlane returns v projected onto the plane through the origin
// with the given normal. The normal must be unit length.
func (v Vec3) ProjectOnPlane(normal Vec3) Vec3 {
	return v.Sub(normal.Scale(v.Dot(normal)))
}

// RotateAround rotates v around the given axis by angle radians using
// Rodrigues' formula: v is split into components parallel and orthogonal
// to the axis, and only the orthogonal part rotates. The axis must be
// unit length.
func (v Vec3) RotateAround(axis Vec3, angle float64) Vec3 {
	parallel := axis.Scale(v.Dot(axis))
	ortho := v.Sub(parallel)
	w := axis.Cross(ortho)
	sin, cos := math.Sincos(angle)
	return parallel.Add(ortho.Scale(cos)).Add(w.Scale(sin))
}

// Snap returns v with each component rounded to the nearest multiple of
// grid. A grid of 0 returns v unchanged.
func (v Vec3) Snap(grid float64) Vec3 {
	if grid == 0 {
		return v
	}
	return Vec3{
		math.Round(v.X/grid) * grid,
		math.Round(v.Y/grid) * grid,
		math.Round(v.Z/grid) * grid,
	}
}
