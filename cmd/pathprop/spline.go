package main

import (
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/pathprop/pathprop/internal/logger"
	"github.com/pathprop/pathprop/pkg/export"
	"github.com/pathprop/pathprop/pkg/formats"
	"github.com/pathprop/pathprop/pkg/spline"
)

func cmdSpline(args []string) {
	fs := flag.NewFlagSet("spline", flag.ExitOnError)
	cfg := loadConfig(fs, args)
	name := fs.String("name", "", "Output base name (default: document name)")
	gradient := fs.String("gradient", "", "Fade to this hex color along the path")

	input, err := parseWithInput(fs, args)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		fmt.Fprintln(os.Stderr, "Usage: pathprop spline <doc.yaml> [options]")
		os.Exit(1)
	}
	initLogger(cfg)

	data, err := os.ReadFile(input)
	if err != nil {
		fatal(err)
	}
	doc, err := formats.ParseSplineDoc(data)
	if err != nil {
		fatal(err)
	}
	if len(doc.Points) < 2 {
		fatal(fmt.Errorf("spline document %s has %d control points, need at least 2", input, len(doc.Points)))
	}

	// Document settings win over config defaults; explicit flags win over
	// both.
	set := map[string]bool{}
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })
	if !set["radius"] {
		cfg.Generate.Radius = doc.Radius
	}
	if !set["sides"] {
		cfg.Generate.Sides = doc.Sides
	}
	if !set["subdiv"] {
		cfg.Generate.Subdivisions = doc.Subdivisions
	}
	if first := doc.Points[0].Color; first != "" && !set["color"] {
		cfg.Generate.Color = first
	}
	endColor := *gradient
	if last := doc.Points[len(doc.Points)-1].Color; endColor == "" && last != "" && last != doc.Points[0].Color {
		endColor = last
	}

	base := *name
	if base == "" {
		base = doc.Name
	}
	if base == "" {
		base = baseName(input)
	}

	points := spline.Sample(doc.ControlPoints(), cfg.Generate.Subdivisions)
	logger.Info("sampled spline document",
		zap.String("file", input),
		zap.Int("controls", len(doc.Points)),
		zap.Int("points", len(points)))

	params, err := buildParams(cfg.Generate, base, endColor)
	if err != nil {
		fatal(err)
	}

	files, err := export.Build(points, params)
	if err != nil {
		fatal(err)
	}
	logger.Info("built model sources",
		zap.String("name", base),
		zap.Int("files", len(files)))

	if err := writeOutput(files, cfg.Output, base); err != nil {
		fatal(err)
	}
}
