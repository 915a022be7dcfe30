package main

import (
	"errors"
	"flag"
	"fmt"
	stdmath "math"
	"os"
	"path/filepath"
	"strings"

	"github.com/pathprop/pathprop/internal/config"
	"github.com/pathprop/pathprop/internal/logger"
	"github.com/pathprop/pathprop/pkg/export"
	"github.com/pathprop/pathprop/pkg/material"
)

var errMissingInput = errors.New("missing input file")

// parseWithInput parses a subcommand's flags around its single
// positional input argument. flag stops at the first non-flag argument,
// so options given after the input path need a second parsing pass.
func parseWithInput(fs *flag.FlagSet, args []string) (string, error) {
	if err := fs.Parse(args); err != nil {
		return "", err
	}
	if fs.NArg() == 0 {
		return "", errMissingInput
	}
	input := fs.Arg(0)
	if err := fs.Parse(fs.Args()[1:]); err != nil {
		return "", err
	}
	if fs.NArg() > 0 {
		return "", fmt.Errorf("unexpected argument %q", fs.Arg(0))
	}
	return input, nil
}

// loadConfig resolves the config file before flag registration so the
// override flags default to the loaded values.
func loadConfig(fs *flag.FlagSet, args []string) *config.Config {
	path := configPathFromArgs(args)
	cfg, err := config.Load(path)
	if err != nil {
		fatal(err)
	}

	// Registered so the flag parser accepts it; the value was already
	// consumed above.
	fs.String("config", path, "Config file path")
	config.BindGenerateFlags(fs, &cfg.Generate)
	config.BindOutputFlags(fs, &cfg.Output)
	config.BindLoggingFlags(fs, &cfg.Logging)
	return cfg
}

// configPathFromArgs pre-scans for -config, which has to take effect
// before the other flags are registered.
func configPathFromArgs(args []string) string {
	for i, a := range args {
		switch {
		case a == "-config" || a == "--config":
			if i+1 < len(args) {
				return args[i+1]
			}
		case strings.HasPrefix(a, "-config="):
			return strings.TrimPrefix(a, "-config=")
		case strings.HasPrefix(a, "--config="):
			return strings.TrimPrefix(a, "--config=")
		}
	}
	return ""
}

func initLogger(cfg *config.Config) {
	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fatal(err)
	}
}

// buildParams converts validated CLI settings into pipeline parameters.
func buildParams(g config.GenerateConfig, name, gradientHex string) (export.Params, error) {
	if g.Sides < 2 {
		return export.Params{}, fmt.Errorf("at least 2 sides required, got %d", g.Sides)
	}
	if g.Radius <= 0 {
		return export.Params{}, fmt.Errorf("radius must be positive, got %v", g.Radius)
	}
	if g.Subdivisions < 1 {
		return export.Params{}, fmt.Errorf("at least 1 subdivision required, got %d", g.Subdivisions)
	}
	if g.ToleranceDeg < 0 {
		return export.Params{}, fmt.Errorf("tolerance must not be negative, got %v", g.ToleranceDeg)
	}
	if g.PrismsPerChunk < 0 {
		return export.Params{}, fmt.Errorf("prisms per chunk must not be negative, got %d", g.PrismsPerChunk)
	}

	start, err := material.ParseHex(g.Color)
	if err != nil {
		return export.Params{}, fmt.Errorf("color: %w", err)
	}

	p := export.Params{
		Name:           name,
		Radius:         g.Radius,
		Sides:          g.Sides,
		Tolerance:      g.ToleranceDeg * stdmath.Pi / 180,
		PrismsPerChunk: g.PrismsPerChunk,
		GridSnap:       g.GridSnap,
		Start:          start,
		Scale:          g.Scale,
		SurfaceProp:    g.SurfaceProp,
	}
	if gradientHex != "" {
		end, err := material.ParseHex(gradientHex)
		if err != nil {
			return export.Params{}, fmt.Errorf("gradient: %w", err)
		}
		p.End = &end
	}
	return p, nil
}

// writeOutput writes generated files into the output directory, or a
// single zip when bundling is on.
func writeOutput(files []export.File, out config.OutputConfig, name string) error {
	if err := os.MkdirAll(out.Dir, 0755); err != nil {
		return err
	}

	if out.Zip {
		data, err := export.Bundle(files)
		if err != nil {
			return err
		}
		path := filepath.Join(out.Dir, name+".zip")
		if err := os.WriteFile(path, data, 0644); err != nil {
			return err
		}
		fmt.Printf("Wrote %s (%d files bundled)\n", path, len(files))
		return nil
	}

	for _, f := range files {
		path := filepath.Join(out.Dir, filepath.FromSlash(f.Name))
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return err
		}
		if err := os.WriteFile(path, f.Data, 0644); err != nil {
			return err
		}
		fmt.Println(path)
	}
	return nil
}

// baseName strips the directory and extension from an input path to get
// a default model name.
func baseName(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

func fatal(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	logger.Sync()
	os.Exit(1)
}
