package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pathprop/pathprop/internal/config"
)

// cmdConfig manages the persistent config file.
func cmdConfig(args []string) {
	if len(args) < 1 {
		fmt.Fprintln(os.Stderr, "Usage: pathprop config <init|show>")
		os.Exit(1)
	}

	switch args[0] {
	case "init":
		fs := flag.NewFlagSet("config init", flag.ExitOnError)
		out := fs.String("o", filepath.Join(config.ConfigDir(), "config.yaml"), "Where to write the config file")
		fs.Parse(args[1:])

		if _, err := os.Stat(*out); err == nil {
			fatal(fmt.Errorf("%s already exists, remove it first", *out))
		}
		if err := config.Default().SaveTo(*out); err != nil {
			fatal(err)
		}
		fmt.Printf("Wrote %s\n", *out)

	case "show":
		fs := flag.NewFlagSet("config show", flag.ExitOnError)
		path := fs.String("config", "", "Config file path")
		fs.Parse(args[1:])

		cfg, err := config.Load(*path)
		if err != nil {
			fatal(err)
		}
		data, err := cfg.Marshal()
		if err != nil {
			fatal(err)
		}
		os.Stdout.Write(data)

	default:
		fmt.Fprintf(os.Stderr, "Unknown config subcommand: %s\n", args[0])
		os.Exit(1)
	}
}
