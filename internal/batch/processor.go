package batch

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"

	"github.com/HugoSmits86/nativewebp"

	"mc-skin-mesher/internal/logger"
	"mc-skin-mesher/internal/pipeline"
	"mc-skin-mesher/internal/raster"
	"mc-skin-mesher/internal/texture"
)

// Config holds all shared resources for a batch run.
type Config struct {
	OutputDir   string
	Skins       texture.Resolver
	Capes       *texture.Index
	RenderSize  int
	Supersample int
	Workers     int
	Camera      raster.Camera
}

// Result holds the outcome of processing one skin.
type Result struct {
	Name        string
	Slim        bool
	Legacy      bool
	Faces       int
	CulledFaces int
	Colors      int
	Success     bool
	Error       string
}

// Run processes every indexed skin using a worker pool.
func Run(cfg Config, names []string) []Result {
	total := len(names)
	results := make([]Result, total)
	var processed atomic.Int64

	start := time.Now()

	// Progress reporter
	done := make(chan struct{})
	go func() {
		ticker := time.NewTicker(2 * time.Second)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				p := processed.Load()
				if p > 0 {
					elapsed := time.Since(start).Seconds()
					rate := float64(p) / elapsed
					logger.Sugar.Infof("[%d/%d] %.1f skins/sec", p, total, rate)
				}
			}
		}
	}()

	// Worker pool
	skinChan := make(chan int, cfg.Workers*2)
	var wg sync.WaitGroup

	for w := 0; w < cfg.Workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range skinChan {
				results[idx] = processSkin(cfg, names[idx])
				processed.Add(1)
			}
		}()
	}

	// Send work
	for i := range names {
		skinChan <- i
	}
	close(skinChan)

	wg.Wait()
	close(done)

	return results
}

func processSkin(cfg Config, name string) Result {
	src := cfg.Skins.Resolve(name)
	if src == nil {
		return Result{Name: name, Error: "skin texture not found or invalid"}
	}

	opts := pipeline.Options{}
	if cfg.Capes != nil {
		if capePath, ok := cfg.Capes.ResolvePath(name); ok {
			cape, err := texture.LoadImage(capePath)
			if err != nil {
				return Result{Name: name, Error: err.Error()}
			}
			opts.Cape = cape
		}
	}

	res, err := pipeline.GenerateSkin(src, opts)
	if err != nil {
		return Result{Name: name, Error: err.Error()}
	}

	out := raster.Render(res.Mesh, res.Palette, res.Index, raster.Options{
		Size:        cfg.RenderSize,
		Supersample: cfg.Supersample,
		Camera:      cfg.Camera,
	})

	outPath := filepath.Join(cfg.OutputDir, name+".webp")
	if err := os.MkdirAll(filepath.Dir(outPath), 0755); err != nil {
		return Result{Name: name, Error: err.Error()}
	}

	f, err := os.Create(outPath)
	if err != nil {
		return Result{Name: name, Error: err.Error()}
	}
	defer f.Close()

	if err := nativewebp.Encode(f, out, nil); err != nil {
		return Result{Name: name, Error: fmt.Sprintf("WebP encode: %v", err)}
	}

	return Result{
		Name:        name,
		Slim:        res.Variant.Slim,
		Legacy:      res.Variant.Legacy,
		Faces:       res.Mesh.FaceCount(),
		CulledFaces: res.CulledFaces,
		Colors:      res.Palette.Len(),
		Success:     true,
	}
}
