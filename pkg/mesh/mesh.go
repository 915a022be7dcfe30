// Package mesh stitches cross-section skeletons into closed triangulated
// tube meshes, optionally partitioned into bounded chunks.
package mesh

import (
	"errors"
	"fmt"

	"github.com/pathprop/pathprop/pkg/math"
	"github.com/pathprop/pathprop/pkg/spline"
)

// Build errors.
var (
	ErrRaggedSkeleton = errors.New("skeleton faces have differing side counts")
	ErrBadMaterials   = errors.New("material list must have one name total or one per face")
)

// Triangle is one emitted mesh triangle with its material reference.
type Triangle struct {
	V        [3]math.Vec3
	Material string
}

// Chunk is a bounded run of triangles plus the grid-snapped origin the
// model compiler uses to place it. An unchunked build produces exactly
// one Chunk with a zero origin.
type Chunk struct {
	Triangles []Triangle
	Origin    math.Vec3
}

// DefaultGridSnap is the placement grid for chunk origins, in world
// units.
const DefaultGridSnap = 64.0

// Options tune mesh emission.
type Options struct {
	// PrismsPerChunk bounds the number of body segments per chunk.
	// Zero emits a single chunk.
	PrismsPerChunk int
	// GridSnap is the chunk origin grid. Zero means DefaultGridSnap.
	GridSnap float64
}

// Build triangulates a skeleton into a capped tube. Materials must hold
// either a single name, applied everywhere, or one name per face; a
// prism takes the material of its rear face, the start cap that of the
// first face and the end cap that of the last.
//
// A skeleton with fewer than 2 faces yields no chunks and no error.
func Build(skeleton []spline.Face, materials []string, opts Options) ([]Chunk, error) {
	if len(skeleton) < 2 {
		return nil, nil
	}
	sides := len(skeleton[0].Ring)
	for _, f := range skeleton {
		if len(f.Ring) != sides {
			return nil, ErrRaggedSkeleton
		}
	}
	if len(materials) != 1 && len(materials) != len(skeleton) {
		return nil, fmt.Errorf("%w: %d names for %d faces", ErrBadMaterials, len(materials), len(skeleton))
	}

	matFor := func(face int) string {
		if len(materials) == 1 {
			return materials[0]
		}
		return materials[face]
	}

	prisms := len(skeleton) - 1
	perChunk := opts.PrismsPerChunk
	if perChunk <= 0 || perChunk > prisms {
		perChunk = prisms
	}
	snap := opts.GridSnap
	if snap == 0 {
		snap = DefaultGridSnap
	}

	var chunks []Chunk
	for start := 0; start < prisms; start += perChunk {
		end := start + perChunk
		if end > prisms {
			end = prisms
		}

		var tris []Triangle
		if start == 0 {
			tris = appendCap(tris, skeleton[0], matFor(0), false)
		}
		for p := start; p < end; p++ {
			tris = appendPrism(tris, skeleton[p], skeleton[p+1], matFor(p))
		}
		if end == prisms {
			tris = appendCap(tris, skeleton[prisms], matFor(len(skeleton)-1), true)
		}

		origin := math.Vec3{}
		if opts.PrismsPerChunk > 0 {
			origin = skeleton[start].Center.Snap(snap)
		}
		chunks = append(chunks, Chunk{Triangles: tris, Origin: origin})
	}
	return chunks, nil
}

// appendCap fan-triangulates a face. The end cap reverses the winding so
// both caps face outward.
func appendCap(tris []Triangle, face spline.Face, material string, reversed bool) []Triangle {
	ring := face.Ring
	for i := 1; i < len(ring)-1; i++ {
		tri := Triangle{V: [3]math.Vec3{ring[0], ring[i+1], ring[i]}, Material: material}
		if reversed {
			tri.V = [3]math.Vec3{ring[0], ring[i], ring[i+1]}
		}
		tris = append(tris, tri)
	}
	return tris
}

// appendPrism emits the two outward-wound triangles of each quad between
// two consecutive faces.
func appendPrism(tris []Triangle, back, front spline.Face, material string) []Triangle {
	sides := len(back.Ring)
	for n := 0; n < sides; n++ {
		next := (n + 1) % sides
		tris = append(tris,
			Triangle{
				V:        [3]math.Vec3{back.Ring[n], back.Ring[next], front.Ring[n]},
				Material: material,
			},
			Triangle{
				V:        [3]math.Vec3{back.Ring[next], front.Ring[next], front.Ring[n]},
				Material: material,
			},
		)
	}
	return tris
}
