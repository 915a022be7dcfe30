package formats

import (
	"bufio"
	"fmt"
	"io"

	"github.com/pathprop/pathprop/pkg/mesh"
)

// smdHeader is the fixed preamble of a static-prop SMD: format version,
// a single bone, one zero-pose keyframe.
const smdHeader = `version 1
nodes
0 "static_prop" -1
end
skeleton
time 0
0 0.000000 0.000000 0.000000 0.000000 0.000000 0.000000
end
triangles
`

// WriteSMD serializes a triangle list as a version-1 studiomdl SMD.
// Pipeline coordinates are east/north/up; SMD expects north/west/up, so
// each vertex is written as (y, -x, z). Normals and UVs are zero filled,
// the compiler recomputes smoothed normals anyway.
func WriteSMD(w io.Writer, tris []mesh.Triangle) error {
	bw := bufio.NewWriter(w)
	bw.WriteString(smdHeader)
	for _, tri := range tris {
		fmt.Fprintf(bw, "%s.vmt\n", tri.Material)
		for _, v := range tri.V {
			fmt.Fprintf(bw, "0 %.6f %.6f %.6f 0.000000 0.000000 0.000000 0.000000 0.000000\n",
				v.Y, -v.X, v.Z)
		}
	}
	bw.WriteString("end\n")
	return bw.Flush()
}
