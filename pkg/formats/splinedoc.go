package formats

import (
	"fmt"
	stdmath "math"

	"gopkg.in/yaml.v3"

	"github.com/pathprop/pathprop/pkg/math"
	"github.com/pathprop/pathprop/pkg/spline"
)

// SplineDoc is a saved authored spline: the control points plus the
// tube parameters chosen in the editor.
type SplineDoc struct {
	Name         string     `yaml:"name"`
	Radius       float64    `yaml:"radius"`
	Sides        int        `yaml:"sides"`
	Subdivisions int        `yaml:"subdivisions"`
	Points       []DocPoint `yaml:"points"`
}

// DocPoint is one control point as stored on disk. Angles are degrees
// in the document, matching what authors read off the in-game camera.
type DocPoint struct {
	Position [3]float64 `yaml:"position,flow"`
	Heading  float64    `yaml:"heading"`
	Pitch    float64    `yaml:"pitch"`
	Tangent  float64    `yaml:"tangent"`
	Color    string     `yaml:"color,omitempty"`
}

// Authoring defaults, applied when a document leaves a field unset.
const (
	defaultRadius       = 4.0
	defaultSides        = 3
	defaultSubdivisions = 16
	defaultTangent      = 512.0
)

// ParseSplineDoc decodes a YAML spline document and fills defaulted
// fields.
func ParseSplineDoc(data []byte) (*SplineDoc, error) {
	var doc SplineDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing spline document: %w", err)
	}
	if doc.Radius == 0 {
		doc.Radius = defaultRadius
	}
	if doc.Sides == 0 {
		doc.Sides = defaultSides
	}
	if doc.Subdivisions == 0 {
		doc.Subdivisions = defaultSubdivisions
	}
	for i := range doc.Points {
		if doc.Points[i].Tangent == 0 {
			doc.Points[i].Tangent = defaultTangent
		}
	}
	return &doc, nil
}

// Marshal encodes the document as YAML.
func (d *SplineDoc) Marshal() ([]byte, error) {
	return yaml.Marshal(d)
}

// ControlPoints converts the document points into sampler inputs,
// switching angles from degrees to radians.
func (d *SplineDoc) ControlPoints() []spline.ControlPoint {
	controls := make([]spline.ControlPoint, len(d.Points))
	for i, p := range d.Points {
		controls[i] = spline.ControlPoint{
			Position: math.Vec3{X: p.Position[0], Y: p.Position[1], Z: p.Position[2]},
			Heading:  p.Heading * stdmath.Pi / 180,
			Pitch:    p.Pitch * stdmath.Pi / 180,
			Tangent:  p.Tangent,
		}
	}
	return controls
}
