// Package spline turns recorded or authored paths into the polylines and
// cross-section skeletons the mesh builder consumes.
package spline

import (
	stdmath "math"

	"github.com/pathprop/pathprop/pkg/math"
)

// Prune simplifies a polyline by removing near-collinear interior
// vertices. Two passes: consecutive duplicate points are dropped first
// (a zero-length segment has no direction), then interior vertices are
// removed greedily, straightest bend first, until no remaining bend is
// within tolerance radians of a straight line. Endpoints are never
// removed.
//
// When several bends are equally straight the earliest one along the
// path wins. Downstream vertex counts depend on this order, so it is
// part of the contract.
func Prune(points []math.Vec3, tolerance float64) []math.Vec3 {
	pts := dedup(points)
	if len(pts) <= 2 {
		return pts
	}

	threshold := stdmath.Cos(tolerance)
	n := len(pts)

	// Doubly linked index list over pts, so removals do not shift the
	// remaining vertices around.
	next := make([]int, n)
	prev := make([]int, n)
	for i := range pts {
		next[i] = i + 1
		prev[i] = i - 1
	}
	next[n-1] = -1

	dir := func(a, b int) math.Vec3 {
		return pts[b].Sub(pts[a]).Normalize()
	}

	// score[i] is the collinearity of the bend at interior vertex i:
	// the dot product of the adjacent segment directions. 1 is straight.
	score := make([]float64, n)
	for i := 1; i < n-1; i++ {
		score[i] = dir(i-1, i).Dot(dir(i, i+1))
	}

	alive := n
	for alive > 2 {
		best := stdmath.Inf(-1)
		bestIdx := -1
		for i := next[0]; next[i] != -1; i = next[i] {
			if score[i] > best {
				best = score[i]
				bestIdx = i
			}
		}
		if bestIdx == -1 || best < threshold {
			break
		}

		a, b := prev[bestIdx], next[bestIdx]
		next[a] = b
		prev[b] = a
		alive--

		// Only the two bends adjacent to the removed vertex change.
		if prev[a] != -1 {
			score[a] = dir(prev[a], a).Dot(dir(a, b))
		}
		if next[b] != -1 {
			score[b] = dir(a, b).Dot(dir(b, next[b]))
		}
	}

	out := make([]math.Vec3, 0, alive)
	for i := 0; i != -1; i = next[i] {
		out = append(out, pts[i])
	}
	return out
}

// dedup drops points that exactly repeat their predecessor.
func dedup(points []math.Vec3) []math.Vec3 {
	out := make([]math.Vec3, 0, len(points))
	for i, p := range points {
		if i > 0 && p == points[i-1] {
			continue
		}
		out = append(out, p)
	}
	return out
}
