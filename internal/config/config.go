package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"gopkg.in/yaml.v3"
)

// Config holds all configurable paths and render settings.
type Config struct {
	// Paths
	SkinDir   string `yaml:"skin_dir"`
	CapeDir   string `yaml:"cape_dir"`
	OutputDir string `yaml:"output_dir"`

	// Render settings
	RenderSize  int     `yaml:"render_size"`
	Supersample int     `yaml:"supersample"`
	WebPQuality int     `yaml:"webp_quality"`
	Workers     int     `yaml:"workers"`
	CameraYaw   float64 `yaml:"camera_yaw"`
	CameraPitch float64 `yaml:"camera_pitch"`

	// Logging
	LogLevel string `yaml:"log_level"`
	LogFile  string `yaml:"log_file"`
}

// Load reads a YAML config file and returns Config.
// Fields not set in the file keep their zero values.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}

	return cfg, nil
}

// Flags holds CLI flag values that override config file settings.
type Flags struct {
	SkinDir   string
	OutputDir string
	Size      int
	Quality   int
	Workers   int
}

// Resolve fills in any empty fields with defaults.
// CLI flags take priority when non-zero/non-empty.
func (c *Config) Resolve(flags Flags) {
	// CLI flags override config file
	if flags.SkinDir != "" {
		c.SkinDir = flags.SkinDir
	}
	if flags.OutputDir != "" {
		c.OutputDir = flags.OutputDir
	}
	if flags.Size > 0 {
		c.RenderSize = flags.Size
	}
	if flags.Quality > 0 {
		c.WebPQuality = flags.Quality
	}
	if flags.Workers > 0 {
		c.Workers = flags.Workers
	}

	if c.SkinDir == "" {
		cwd, _ := os.Getwd()
		c.SkinDir = filepath.Join(cwd, "skins")
	}
	if c.CapeDir == "" {
		c.CapeDir = filepath.Join(c.SkinDir, "capes")
	}
	if c.OutputDir == "" {
		c.OutputDir = filepath.Join(filepath.Dir(c.SkinDir), "renders")
	} else if !filepath.IsAbs(c.OutputDir) {
		cwd, _ := os.Getwd()
		c.OutputDir = filepath.Join(cwd, c.OutputDir)
	}

	// Defaults for render settings
	if c.RenderSize <= 0 {
		c.RenderSize = 512
	}
	if c.Supersample <= 0 {
		c.Supersample = 2
	}
	if c.WebPQuality <= 0 {
		c.WebPQuality = 90
	}
	if c.Workers <= 0 {
		c.Workers = runtime.NumCPU()
	}
	if c.CameraYaw == 0 && c.CameraPitch == 0 {
		c.CameraYaw = 30
		c.CameraPitch = -12
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
}
