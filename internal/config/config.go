package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config holds all configurable paths and render settings.
type Config struct {
	// Paths
	OutputDir  string `json:"output_dir" yaml:"output_dir"`
	TextureDir string `json:"texture_dir" yaml:"texture_dir"`
	Texture    string `json:"texture" yaml:"texture"`

	// Scene
	Mesh     string   `json:"mesh" yaml:"mesh"`
	MeshSize float32  `json:"mesh_size" yaml:"mesh_size"`
	Frames   int      `json:"frames" yaml:"frames"`
	Pitch    *float64 `json:"pitch" yaml:"pitch"` // degrees, camera tilt; nil means default

	// Render settings
	RenderSize  int `json:"render_size" yaml:"render_size"`
	Supersample int `json:"supersample" yaml:"supersample"`
	Workers     int `json:"workers" yaml:"workers"`

	// Despeckle is the island share below which stray pixels are cleared.
	// Negative disables it.
	Despeckle float64 `json:"despeckle" yaml:"despeckle"`

	// Logging
	LogLevel  string `json:"log_level" yaml:"log_level"`
	LogFormat string `json:"log_format" yaml:"log_format"`
}

// Load reads a JSON or YAML (.yaml, .yml) config file and returns Config.
// Fields not set in the file keep their zero values.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	var cfg Config
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &cfg)
	default:
		err = json.Unmarshal(data, &cfg)
	}
	if err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}

	return cfg, nil
}

// Resolve fills in any empty fields with defaults.
// CLI flags take priority when non-zero/non-empty.
func (c *Config) Resolve(flags Flags) {
	// CLI flags override config file
	if flags.OutputDir != "" {
		c.OutputDir = flags.OutputDir
	}
	if flags.Texture != "" {
		c.Texture = flags.Texture
	}
	if flags.Mesh != "" {
		c.Mesh = flags.Mesh
	}
	if flags.Frames > 0 {
		c.Frames = flags.Frames
	}
	if flags.RenderSize > 0 {
		c.RenderSize = flags.RenderSize
	}
	if flags.Workers > 0 {
		c.Workers = flags.Workers
	}
	if flags.Pitch != nil {
		c.Pitch = flags.Pitch
	}
	if flags.LogLevel != "" {
		c.LogLevel = flags.LogLevel
	}

	if c.OutputDir == "" {
		c.OutputDir = "renders"
	}
	// Texture names resolve next to the texture file unless told otherwise
	if c.TextureDir == "" && c.Texture != "" {
		c.TextureDir = filepath.Dir(c.Texture)
	}

	if c.Mesh == "" {
		c.Mesh = "cube"
	}
	if c.MeshSize <= 0 {
		c.MeshSize = 2
	}
	if c.Frames <= 0 {
		c.Frames = 8
	}
	if c.Pitch == nil {
		pitch := -20.0
		c.Pitch = &pitch
	}

	// Defaults for render settings
	if c.RenderSize <= 0 {
		c.RenderSize = 256
	}
	if c.Supersample <= 0 {
		c.Supersample = 2
	}
	if c.Workers <= 0 {
		c.Workers = runtime.NumCPU()
	}
	if c.Despeckle == 0 {
		c.Despeckle = 0.02
	} else if c.Despeckle < 0 {
		c.Despeckle = 0
	}

	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
	if c.LogFormat == "" {
		c.LogFormat = "console"
	}
}

// Flags holds CLI flag values that override config file settings.
type Flags struct {
	OutputDir  string
	Texture    string
	Mesh       string
	Frames     int
	RenderSize int
	Workers    int
	Pitch      *float64 // nil when -pitch was not given
	LogLevel   string
}
