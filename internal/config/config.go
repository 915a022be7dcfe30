// Package config handles tool configuration: built-in defaults overlaid
// by an optional YAML file, overlaid by command-line flags.
package config

// Config holds all tool settings.
type Config struct {
	Generate GenerateConfig `yaml:"generate"`
	Output   OutputConfig   `yaml:"output"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// GenerateConfig holds the default tube generation parameters.
type GenerateConfig struct {
	Radius         float64 `yaml:"radius"`
	Sides          int     `yaml:"sides"`
	Subdivisions   int     `yaml:"subdivisions"`     // spline samples per segment
	ToleranceDeg   float64 `yaml:"tolerance_deg"`    // pruning angle, degrees
	PrismsPerChunk int     `yaml:"prisms_per_chunk"` // 0 = single model
	GridSnap       float64 `yaml:"grid_snap"`        // chunk origin grid, units
	Color          string  `yaml:"color"`            // hex triplet
	Scale          float64 `yaml:"scale"`
	SurfaceProp    string  `yaml:"surfaceprop"`
}

// OutputConfig holds where generated files land.
type OutputConfig struct {
	Dir string `yaml:"dir"`
	Zip bool   `yaml:"zip"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Generate: GenerateConfig{
			Radius:         4,
			Sides:          6,
			Subdivisions:   16,
			ToleranceDeg:   1,
			PrismsPerChunk: 0,
			GridSnap:       64,
			Color:          "ffffff",
			Scale:          1,
			SurfaceProp:    "default",
		},
		Output: OutputConfig{
			Dir: ".",
			Zip: false,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
