package main

import (
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/pathprop/pathprop/internal/logger"
	"github.com/pathprop/pathprop/pkg/export"
	"github.com/pathprop/pathprop/pkg/formats"
)

func cmdBuild(args []string) {
	fs := flag.NewFlagSet("build", flag.ExitOnError)
	cfg := loadConfig(fs, args)
	name := fs.String("name", "", "Output base name (default: input file name)")
	gradient := fs.String("gradient", "", "Fade to this hex color along the path")

	input, err := parseWithInput(fs, args)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		fmt.Fprintln(os.Stderr, "Usage: pathprop build <path.log> [options]")
		os.Exit(1)
	}
	initLogger(cfg)

	base := *name
	if base == "" {
		base = baseName(input)
	}

	data, err := os.ReadFile(input)
	if err != nil {
		fatal(err)
	}

	rec := formats.ParsePathLog(data)
	if rec.Skipped > 0 {
		logger.Warn("skipped malformed statements",
			zap.String("file", input),
			zap.Int("count", rec.Skipped))
	}
	logger.Info("parsed path recording",
		zap.String("file", input),
		zap.Int("points", len(rec.Points)))

	params, err := buildParams(cfg.Generate, base, *gradient)
	if err != nil {
		fatal(err)
	}

	files, err := export.Build(rec.Points, params)
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
