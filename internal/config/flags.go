package config

import "flag"

// BindGenerateFlags registers generation overrides on a subcommand flag
// set, defaulting to the loaded config values. The bound fields are
// updated in place when the flag set parses.
func BindGenerateFlags(fs *flag.FlagSet, g *GenerateConfig) {
	fs.Float64Var(&g.Radius, "radius", g.Radius, "Tube radius in units")
	fs.IntVar(&g.Sides, "sides", g.Sides, "Cross-section side count (>= 2)")
	fs.IntVar(&g.Subdivisions, "subdiv", g.Subdivisions, "Spline samples per segment")
	fs.Float64Var(&g.ToleranceDeg, "tolerance", g.ToleranceDeg, "Pruning angle tolerance in degrees")
	fs.IntVar(&g.PrismsPerChunk, "chunk", g.PrismsPerChunk, "Prisms per output chunk (0 = single model)")
	fs.Float64Var(&g.GridSnap, "grid", g.GridSnap, "Chunk origin snap grid in units")
	fs.StringVar(&g.Color, "color", g.Color, "Tube color as a hex triplet")
	fs.Float64Var(&g.Scale, "scale", g.Scale, "Model scale")
	fs.StringVar(&g.SurfaceProp, "surfaceprop", g.SurfaceProp, "Model surface property")
}

// BindOutputFlags registers output overrides on a subcommand flag set.
func BindOutputFlags(fs *flag.FlagSet, o *OutputConfig) {
	fs.StringVar(&o.Dir, "dir", o.Dir, "Output directory")
	fs.BoolVar(&o.Zip, "zip", o.Zip, "Bundle output into a single zip")
}

// BindLoggingFlags registers logging overrides on a subcommand flag set.
func BindLoggingFlags(fs *flag.FlagSet, l *LoggingConfig) {
	fs.StringVar(&l.Level, "loglevel", l.Level, "Log level (debug, info, warn, error)")
	fs.StringVar(&l.LogFile, "logfile", l.LogFile, "Log file path (empty = console only)")
}
