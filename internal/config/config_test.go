package config

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	data := []byte(`
skin_dir: /data/skins
render_size: 256
webp_quality: 80
log_level: debug
`)
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.SkinDir != "/data/skins" {
		t.Errorf("SkinDir = %q", cfg.SkinDir)
	}
	if cfg.RenderSize != 256 {
		t.Errorf("RenderSize = %d", cfg.RenderSize)
	}
	if cfg.WebPQuality != 80 {
		t.Errorf("WebPQuality = %d", cfg.WebPQuality)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel = %q", cfg.LogLevel)
	}
}

func TestLoadMissing(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("Load of missing file succeeded")
	}
}

func TestLoadInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("skin_dir: [oops"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("Load of invalid YAML succeeded")
	}
}

func TestResolveDefaults(t *testing.T) {
	var cfg Config
	cfg.Resolve(Flags{})

	if cfg.RenderSize != 512 {
		t.Errorf("RenderSize = %d, want 512", cfg.RenderSize)
	}
	if cfg.Supersample != 2 {
		t.Errorf("Supersample = %d, want 2", cfg.Supersample)
	}
	if cfg.WebPQuality != 90 {
		t.Errorf("WebPQuality = %d, want 90", cfg.WebPQuality)
	}
	if cfg.Workers != runtime.NumCPU() {
		t.Errorf("Workers = %d, want NumCPU", cfg.Workers)
	}
	if cfg.CameraYaw != 30 || cfg.CameraPitch != -12 {
		t.Errorf("camera = %v/%v, want 30/-12", cfg.CameraYaw, cfg.CameraPitch)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("LogLevel = %q, want info", cfg.LogLevel)
	}
	if cfg.SkinDir == "" || cfg.OutputDir == "" || cfg.CapeDir == "" {
		t.Error("paths left empty after Resolve")
	}
}

func TestResolveFlagOverride(t *testing.T) {
	cfg := Config{SkinDir: "/from/file", RenderSize: 256, Workers: 4}
	cfg.Resolve(Flags{SkinDir: "/from/flag", Size: 128, Workers: 2})

	if cfg.SkinDir != "/from/flag" {
		t.Errorf("SkinDir = %q, flag should win", cfg.SkinDir)
	}
	if cfg.RenderSize != 128 {
		t.Errorf("RenderSize = %d, flag should win", cfg.RenderSize)
	}
	if cfg.Workers != 2 {
		t.Errorf("Workers = %d, flag should win", cfg.Workers)
	}
}
