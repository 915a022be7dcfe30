package formats

import (
	"bytes"
	"strings"
	"testing"

	"github.com/pathprop/pathprop/pkg/math"
)

func TestWriteQC(t *testing.T) {
	var buf bytes.Buffer
	err := WriteQC(&buf, QC{
		ModelName:    "pathprop/run1.mdl",
		Body:         "run1",
		MaterialPath: "pathprop",
		SurfaceProp:  "default",
		Scale:        1.0,
	})
	if err != nil {
		t.Fatalf("WriteQC failed: %v", err)
	}
	out := buf.String()

	for _, want := range []string{
		"$staticprop\n",
		"$modelname \"pathprop/run1.mdl\"\n",
		"$scale \"1\"\n",
		"$body \"Body\" \"run1\"\n",
		"$cdmaterials \"pathprop\"\n",
		"$sequence idle \"run1\"\n",
		"$surfaceprop \"default\"\n",
		"$mostlyopaque\n",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("QC missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "$origin") {
		t.Errorf("QC has an origin without one being set:\n%s", out)
	}
}

func TestWriteQCOrigin(t *testing.T) {
	origin := math.Vec3{X: 320, Y: 0, Z: -64}
	var buf bytes.Buffer
	err := WriteQC(&buf, QC{
		ModelName:    "pathprop/run1_2.mdl",
		Body:         "run1_2",
		MaterialPath: "pathprop",
		SurfaceProp:  "default",
		Scale:        1.0,
		Origin:       &origin,
	})
	if err != nil {
		t.Fatalf("WriteQC failed: %v", err)
	}
	// Origin is reordered into SMD space (y, -x, z), then negated:
	// (320, 0, -64) -> (-0, 320, 64) with -0 normalized.
	if !strings.Contains(buf.String(), "$origin 0 320 64\n") {
		t.Errorf("QC origin wrong:\n%s", buf.String())
	}
}
