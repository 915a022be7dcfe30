package formats

import (
	"bufio"
	"fmt"
	"io"

	"github.com/pathprop/pathprop/pkg/math"
)

// QC describes one model compile script.
type QC struct {
	ModelName    string // compiled model path, e.g. "pathprop/run1.mdl"
	Body         string // SMD reference without extension
	MaterialPath string // $cdmaterials search path
	SurfaceProp  string
	Scale        float64
	// Origin, when set, is the chunk origin in pipeline coordinates.
	// It is reordered into SMD space and negated on write so the
	// compiled chunk sits back at its recorded position.
	Origin *math.Vec3
}

// WriteQC serializes a static-prop compile script.
func WriteQC(w io.Writer, qc QC) error {
	bw := bufio.NewWriter(w)
	bw.WriteString("$staticprop\n")
	fmt.Fprintf(bw, "$modelname \"%s\"\n", qc.ModelName)
	if qc.Origin != nil {
		fmt.Fprintf(bw, "$origin %s %s %s\n",
			qcFloat(-qc.Origin.Y), qcFloat(qc.Origin.X), qcFloat(-qc.Origin.Z))
	}
	fmt.Fprintf(bw, "$scale \"%g\"\n", qc.Scale)
	fmt.Fprintf(bw, "$body \"Body\" \"%s\"\n", qc.Body)
	fmt.Fprintf(bw, "$cdmaterials \"%s\"\n", qc.MaterialPath)
	fmt.Fprintf(bw, "$sequence idle \"%s\"\n", qc.Body)
	fmt.Fprintf(bw, "$surfaceprop \"%s\"\n", qc.SurfaceProp)
	bw.WriteString("$mostlyopaque\n")
	return bw.Flush()
}

// qcFloat formats a coordinate without a negative zero.
func qcFloat(f float64) string {
	if f == 0 {
		f = 0
	}
	return fmt.Sprintf("%g", f)
}
