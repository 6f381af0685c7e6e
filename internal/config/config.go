// Package config resolves render settings from an optional JSON file and CLI
// flags. Scene geometry is fixed in code; only output and scheduling knobs
// live here.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"runtime"
)

// Config holds the configurable output and scheduling settings.
type Config struct {
	OutputDir    string `json:"output_dir"`
	Workers      int    `json:"workers"`
	Preview      string `json:"preview"`
	PreviewScale int    `json:"preview_scale"`
}

// Load reads a JSON config file and returns Config.
// Fields not set in the file keep their zero values.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}

	return cfg, nil
}

// Flags holds CLI flag values that override config file settings.
type Flags struct {
	OutputDir    string
	Workers      int
	Preview      string
	PreviewScale int
}

// Resolve applies flag overrides, then fills any remaining empty fields with
// defaults. CLI flags take priority when non-zero/non-empty.
func (c *Config) Resolve(flags Flags) {
	if flags.OutputDir != "" {
		c.OutputDir = flags.OutputDir
	}
	if flags.Workers > 0 {
		c.Workers = flags.Workers
	}
	if flags.Preview != "" {
		c.Preview = flags.Preview
	}
	if flags.PreviewScale > 0 {
		c.PreviewScale = flags.PreviewScale
	}

	if c.OutputDir == "" {
		c.OutputDir = "."
	}
	if c.Workers <= 0 {
		c.Workers = runtime.NumCPU()
	}
	if c.Preview == "" {
		c.Preview = "none"
	}
	if c.PreviewScale <= 0 {
		c.PreviewScale = 1
	}
}
