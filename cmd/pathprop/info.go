package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pathprop/pathprop/pkg/formats"
	"github.com/pathprop/pathprop/pkg/math"
	"github.com/pathprop/pathprop/pkg/spline"
)

func cmdInfo(args []string) {
	fs := flag.NewFlagSet("info", flag.ExitOnError)
	fs.Parse(args)

	if fs.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Usage: pathprop info <file>")
		os.Exit(1)
	}

	input := fs.Arg(0)
	data, err := os.ReadFile(input)
	if err != nil {
		fatal(err)
	}

	switch strings.ToLower(filepath.Ext(input)) {
	case ".vmf":
		infoVMF(input, data)
	case ".yaml", ".yml":
		infoSplineDoc(input, data)
	default:
		infoPathLog(input, data)
	}
}

func infoPathLog(name string, data []byte) {
	rec := formats.ParsePathLog(data)

	fmt.Printf("Recording: %s\n", name)
	fmt.Printf("Points:    %d\n", len(rec.Points))
	if rec.Skipped > 0 {
		fmt.Printf("Skipped:   %d malformed statements\n", rec.Skipped)
	}
	if len(rec.Points) < 2 {
		return
	}
	lo, hi := bounds(rec.Points)
	fmt.Printf("Length:    %.1f units\n", pathLength(rec.Points))
	fmt.Printf("Extent:    %.0f x %.0f x %.0f\n", hi.X-lo.X, hi.Y-lo.Y, hi.Z-lo.Z)
}

func infoSplineDoc(name string, data []byte) {
	doc, err := formats.ParseSplineDoc(data)
	if err != nil {
		fatal(err)
	}

	fmt.Printf("Spline:    %s\n", name)
	if doc.Name != "" {
		fmt.Printf("Name:      %s\n", doc.Name)
	}
	fmt.Printf("Controls:  %d\n", len(doc.Points))
	fmt.Printf("Tube:      radius %g, %d sides, %d subdivisions\n",
		doc.Radius, doc.Sides, doc.Subdivisions)
	if points := spline.Sample(doc.ControlPoints(), doc.Subdivisions); len(points) >= 2 {
		fmt.Printf("Length:    %.1f units\n", pathLength(points))
	}
}

func infoVMF(name string, data []byte) {
	vmf, err := formats.ParseVMF(data)
	if err != nil {
		fatal(err)
	}
	sides, err := vmf.WorldSolidSides()
	if err != nil {
		fatal(err)
	}

	matCount := make(map[string]int)
	for _, side := range sides {
		mat, err := side.GetOne("material")
		if err != nil {
			continue
		}
		if s, err := mat.Str(); err == nil {
			matCount[strings.ToLower(s)]++
		}
	}

	fmt.Printf("Map:       %s\n", name)
	fmt.Printf("Sides:     %d renderable brush sides\n", len(sides))
	fmt.Println()
	fmt.Println("Materials by use:")

	type matStat struct {
		name  string
		count int
	}
	var stats []matStat
	for m, c := range matCount {
		stats = append(stats, matStat{m, c})
	}
	sort.Slice(stats, func(i, j int) bool {
		if stats[i].count != stats[j].count {
			return stats[i].count > stats[j].count
		}
		return stats[i].name < stats[j].name
	})
	for i, s := range stats {
		if i >= 10 {
			fmt.Printf("  ... and %d more\n", len(stats)-i)
			break
		}
		fmt.Printf("  %-40s %d\n", s.name, s.count)
	}
}

func pathLength(points []math.Vec3) float64 {
	var total float64
	for i := 1; i < len(points); i++ {
		total += points[i].Distance(points[i-1])
	}
	return total
}

func bounds(points []math.Vec3) (lo, hi math.Vec3) {
	lo, hi = points[0], points[0]
	for _, p := range points[1:] {
		lo.X = min(lo.X, p.X)
		lo.Y = min(lo.Y, p.Y)
		lo.Z = min(lo.Z, p.Z)
		hi.X = max(hi.X, p.X)
		hi.Y = max(hi.Y, p.Y)
		hi.Z = max(hi.Z, p.Z)
	}
	return lo, hi
}
