// pathprop turns recorded game paths and authored splines into Source
// engine static prop sources.
package main

import (
	"fmt"
	"os"

	"github.com/pathprop/pathprop/internal/logger"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]
	args := os.Args[2:]

	switch command {
	case "build", "b":
		cmdBuild(args)
	case "spline", "s":
		cmdSpline(args)
	case "info":
		cmdInfo(args)
	case "config":
		cmdConfig(args)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}

	logger.Sync()
}

func printUsage() {
	fmt.Println(`pathprop - path to static prop generator

Usage:
  pathprop <command> [options]

Commands:
  build <path.log>    Build model sources from a recorded console path
  spline <doc.yaml>   Build model sources from an authored spline document
  info <file>         Summarize a recording, spline document, or VMF map
  config init|show    Write or print the persistent config

Examples:
  pathprop build run1.log -color ff0000 -sides 6
  pathprop build run1.log -gradient 0000ff -chunk 50 -zip
  pathprop spline jump.yaml -dir out
  pathprop info de_survival.vmf`)
}
