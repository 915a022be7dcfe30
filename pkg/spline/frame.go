package spline

import (
	"errors"
	stdmath "math"

	"github.com/pathprop/pathprop/pkg/math"
)

// Frame building errors.
var (
	ErrTooFewSides = errors.New("cross-section needs at least 2 sides")
	ErrBadRadius   = errors.New("radius must be positive")
)

// Face is the ring of cross-section points at one polyline vertex,
// together with the vertex itself.
type Face struct {
	Center math.Vec3
	Ring   []math.Vec3
}

// degenerateSeed guards the up-vector seed: below this length the
// world-up projection is unusable and world-X is projected instead.
const degenerateSeed = 1e-9

// BuildSkeleton computes one cross-section Face per polyline vertex.
//
// Each vertex gets a mitre plane: interior vertices use the normalized
// sum of the incoming and outgoing segment directions, the ends use
// their single adjacent segment. An up vector seeded from world up is
// parallel-transported along the path by re-projecting it onto each
// mitre plane in turn, which keeps the ring from twisting through
// bends. The ring is the transported up vector rotated about the mitre
// normal in steps of 2π/sides.
//
// Fewer than 2 points yields an empty skeleton and no error.
func BuildSkeleton(points []math.Vec3, radius float64, sides int) ([]Face, error) {
	if sides < 2 {
		return nil, ErrTooFewSides
	}
	if radius <= 0 {
		return nil, ErrBadRadius
	}
	if len(points) < 2 {
		return nil, nil
	}

	n := len(points)
	dirs := make([]math.Vec3, n-1)
	for i := 0; i < n-1; i++ {
		dirs[i] = points[i+1].Sub(points[i]).Normalize()
	}

	mitre := make([]math.Vec3, n)
	mitre[0] = dirs[0]
	mitre[n-1] = dirs[n-2]
	for i := 1; i < n-1; i++ {
		mitre[i] = dirs[i-1].Add(dirs[i]).Normalize()
	}

	up := math.Vec3{Z: 1}.ProjectOnPlane(mitre[0])
	if up.Length() < degenerateSeed {
		// Path starts straight up or down, so world up is useless as a
		// seed. World X cannot also be parallel to the same mitre plane
		// normal.
		up = math.Vec3{X: 1}.ProjectOnPlane(mitre[0])
	}

	faces := make([]Face, n)
	step := 2 * stdmath.Pi / float64(sides)
	for i := 0; i < n; i++ {
		up = up.ProjectOnPlane(mitre[i]).Normalize().Scale(radius)

		ring := make([]math.Vec3, sides)
		for k := 0; k < sides; k++ {
			ring[k] = up.RotateAround(mitre[i], float64(k)*step).Add(points[i])
		}
		faces[i] = Face{Center: points[i], Ring: ring}
	}
	return faces, nil
}
