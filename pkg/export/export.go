// Package export runs the full path-to-model pipeline and packages the
// result: prune, frame, triangulate, then render the SMD/QC/VMT/VTF
// documents a model compiler needs.
package export

import (
	"archive/zip"
	"bytes"
	"errors"
	"fmt"
	"path"

	"github.com/pathprop/pathprop/pkg/formats"
	"github.com/pathprop/pathprop/pkg/material"
	"github.com/pathprop/pathprop/pkg/math"
	"github.com/pathprop/pathprop/pkg/mesh"
	"github.com/pathprop/pathprop/pkg/spline"
)

// Export errors.
var (
	ErrNoGeometry = errors.New("path has too few distinct points to build a model")
	ErrBadChunk   = errors.New("prisms per chunk must be at least 1")
)

// Params describe one model build.
type Params struct {
	// Name is the output base name, also used for the compiled model
	// path.
	Name string
	// Radius and Sides shape the tube cross-section.
	Radius float64
	Sides  int
	// Tolerance is the pruning angle in radians.
	Tolerance float64
	// PrismsPerChunk splits long tubes into multiple models. Zero
	// disables chunking.
	PrismsPerChunk int
	// GridSnap overrides the chunk origin grid. Zero keeps the default.
	GridSnap float64
	// Start is the tube color. When End is set the tube fades from
	// Start to End along its length.
	Start material.Color
	End   *material.Color
	// Scale and SurfaceProp pass through to the compile script.
	Scale       float64
	SurfaceProp string
}

// File is one generated output document.
type File struct {
	Name string
	Data []byte
}

// Build runs the pipeline over a recorded or sampled polyline and
// returns every document needed to compile the model.
func Build(points []math.Vec3, p Params) ([]File, error) {
	if p.PrismsPerChunk < 0 {
		return nil, ErrBadChunk
	}

	pruned := spline.Prune(points, p.Tolerance)
	skeleton, err := spline.BuildSkeleton(pruned, p.Radius, p.Sides)
	if err != nil {
		return nil, fmt.Errorf("building skeleton: %w", err)
	}
	if len(skeleton) < 2 {
		return nil, ErrNoGeometry
	}

	mats := materialsFor(skeleton, p)
	chunks, err := mesh.Build(skeleton, material.Names(mats), mesh.Options{
		PrismsPerChunk: p.PrismsPerChunk,
		GridSnap:       p.GridSnap,
	})
	if err != nil {
		return nil, fmt.Errorf("building mesh: %w", err)
	}

	var files []File
	for i, chunk := range chunks {
		body := p.Name
		if len(chunks) > 1 {
			body = fmt.Sprintf("%s_%d", p.Name, i)
		}

		var smd bytes.Buffer
		if err := formats.WriteSMD(&smd, chunk.Triangles); err != nil {
			return nil, fmt.Errorf("writing %s.smd: %w", body, err)
		}
		files = append(files, File{Name: body + ".smd", Data: smd.Bytes()})

		qc := formats.QC{
			ModelName:    path.Join("pathprop", body+".mdl"),
			Body:         body,
			MaterialPath: "pathprop",
			SurfaceProp:  p.SurfaceProp,
			Scale:        p.Scale,
		}
		if p.PrismsPerChunk > 0 {
			origin := chunk.Origin
			qc.Origin = &origin
		}
		var qcBuf bytes.Buffer
		if err := formats.WriteQC(&qcBuf, qc); err != nil {
			return nil, fmt.Errorf("writing %s.qc: %w", body, err)
		}
		files = append(files, File{Name: body + ".qc", Data: qcBuf.Bytes()})
	}

	matFiles, err := materialFiles(mats)
	if err != nil {
		return nil, err
	}
	return append(files, matFiles...), nil
}

// materialsFor picks the material set: a gradient gets one sample per
// skeleton face, a flat color one material total.
func materialsFor(skeleton []spline.Face, p Params) []material.Material {
	if p.End != nil {
		return material.Gradient(p.Start, *p.End, len(skeleton))
	}
	return []material.Material{material.Flat(p.Start)}
}

// materialFiles renders one VMT per distinct material name plus the
// shared placeholder texture. Gradient samples that quantize to the same
// color collapse into one file.
func materialFiles(mats []material.Material) ([]File, error) {
	var files []File
	seen := make(map[string]bool)
	for _, m := range mats {
		if seen[m.Name] {
			continue
		}
		seen[m.Name] = true
		files = append(files, File{
			Name: path.Join("materials", "pathprop", m.Name+".vmt"),
			Data: []byte(m.VMT()),
		})
	}

	var vtf bytes.Buffer
	if err := formats.WriteVTF(&vtf); err != nil {
		return nil, fmt.Errorf("writing pathprop.vtf: %w", err)
	}
	files = append(files, File{
		Name: path.Join("materials", "pathprop", "pathprop.vtf"),
		Data: vtf.Bytes(),
	})
	return files, nil
}

// Bundle packs generated files into a single zip archive.
func Bundle(files []File) ([]byte, error) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for _, f := range files {
		w, err := zw.Create(f.Name)
		if err != nil {
			return nil, fmt.Errorf("bundling %s: %w", f.Name, err)
		}
		if _, err := w.Write(f.Data); err != nil {
			return nil, fmt.Errorf("bundling %s: %w", f.Name, err)
		}
	}
	if err := zw.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
