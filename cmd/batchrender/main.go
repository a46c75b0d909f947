package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"mc-skin-mesher/internal/batch"
	"mc-skin-mesher/internal/config"
	"mc-skin-mesher/internal/logger"
	"mc-skin-mesher/internal/raster"
	"mc-skin-mesher/internal/texture"
)

func main() {
	configFile := flag.String("config", "", "Path to config.yaml file")
	skinDir := flag.String("skins", "", "Directory of skin textures")
	outputDir := flag.String("output", "", "Output directory (default: sibling renders/)")
	size := flag.Int("size", 0, "Output image edge length (default: 512)")
	quality := flag.Int("quality", 0, "WebP quality 1-100 (default: 90)")
	workers := flag.Int("workers", 0, "Number of worker goroutines (default: NumCPU)")
	testN := flag.Int("test", 0, "Render only first N skins for testing")

	flag.Parse()

	var cfg config.Config
	if *configFile != "" {
		var err error
		cfg, err = config.Load(*configFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
	}

	// CLI flags override config file
	cfg.Resolve(config.Flags{
		SkinDir:   *skinDir,
		OutputDir: *outputDir,
		Size:      *size,
		Quality:   *quality,
		Workers:   *workers,
	})

	if err := logger.Init(cfg.LogLevel, cfg.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Error: logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	skinIndex := texture.BuildIndex(cfg.SkinDir)
	if skinIndex.Len() == 0 {
		logger.Sugar.Fatalf("no skin textures under %s", cfg.SkinDir)
	}

	var capeIndex *texture.Index
	if idx := texture.BuildIndex(cfg.CapeDir); idx.Len() > 0 {
		capeIndex = idx
	}

	names := skinIndex.Stems()
	if *testN > 0 && *testN < len(names) {
		names = names[:*testN]
	}

	logger.Sugar.Infof("skins: %d indexed, workers: %d", len(names), cfg.Workers)
	logger.Sugar.Infof("output: %s", cfg.OutputDir)

	start := time.Now()

	results := batch.Run(batch.Config{
		OutputDir:   cfg.OutputDir,
		Skins:       texture.NewCache(skinIndex),
		Capes:       capeIndex,
		RenderSize:  cfg.RenderSize,
		Supersample: cfg.Supersample,
		Workers:     cfg.Workers,
		Camera:      raster.Camera{Yaw: cfg.CameraYaw, Pitch: cfg.CameraPitch},
	}, names)

	elapsed := time.Since(start)

	success, failed := 0, 0
	var errors []batch.Result
	for _, r := range results {
		if r.Success {
			success++
		} else {
			failed++
			errors = append(errors, r)
		}
	}

	logger.Sugar.Infof("rendered %d/%d in %.1fs", success, len(names), elapsed.Seconds())

	if len(errors) > 0 {
		limit := 20
		if len(errors) < limit {
			limit = len(errors)
		}
		for _, e := range errors[:limit] {
			logger.Sugar.Warnf("failed %s: %s", e.Name, e.Error)
		}
	}

	manifestPath := filepath.Join(cfg.OutputDir, "manifest.json")
	os.MkdirAll(cfg.OutputDir, 0755)
	if err := batch.WriteManifest(manifestPath, results); err != nil {
		logger.Sugar.Warnf("manifest write failed: %v", err)
	} else {
		logger.Sugar.Infof("manifest: %s", manifestPath)
	}

	if failed > 0 {
		os.Exit(1)
	}
}
