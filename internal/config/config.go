package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
)

// Config holds all configurable paths and build settings.
type Config struct {
	// Paths
	SourceDir  string `json:"source_dir"`
	RigFile    string `json:"rig_file"`
	OutputFile string `json:"output_file"`

	// Optional preview snapshot of the merged mesh.
	PreviewFile string `json:"preview_file"`
	PreviewSize int    `json:"preview_size"`
	Supersample int    `json:"supersample"`

	Workers int `json:"workers"`
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
	SourceDir  string
	RigFile    string
	OutputFile string
	Preview    string
	Workers    int
}

// Resolve fills in any empty fields with defaults.
// CLI flags take priority when non-zero/non-empty.
func (c *Config) Resolve(flags Flags) {
	if flags.SourceDir != "" {
		c.SourceDir = flags.SourceDir
	}
	if flags.RigFile != "" {
		c.RigFile = flags.RigFile
	}
	if flags.OutputFile != "" {
		c.OutputFile = flags.OutputFile
	}
	if flags.Preview != "" {
		c.PreviewFile = flags.Preview
	}
	if flags.Workers > 0 {
		c.Workers = flags.Workers
	}

	if c.SourceDir == "" {
		c.SourceDir = "."
	}
	if c.RigFile == "" {
		c.RigFile = filepath.Join(c.SourceDir, "rig.toml")
	} else if !filepath.IsAbs(c.RigFile) {
		c.RigFile = filepath.Join(c.SourceDir, c.RigFile)
	}
	if c.OutputFile == "" {
		c.OutputFile = filepath.Join(c.SourceDir, "mesh.json")
	}

	if c.PreviewSize <= 0 {
		c.PreviewSize = 512
	}
	if c.Supersample <= 0 {
		c.Supersample = 2
	}
	if c.Workers <= 0 {
		c.Workers = runtime.NumCPU()
	}
}
