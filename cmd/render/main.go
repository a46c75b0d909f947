package main

import (
	"flag"
	"fmt"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/HugoSmits86/nativewebp"

	"mc-skin-mesher/internal/atlas"
	"mc-skin-mesher/internal/logger"
	"mc-skin-mesher/internal/pipeline"
	"mc-skin-mesher/internal/raster"
	"mc-skin-mesher/internal/texture"
)

func main() {
	skinPath := flag.String("skin", "", "Path to skin texture (PNG or TGA)")
	capePath := flag.String("cape", "", "Path to cape texture (optional)")
	outPath := flag.String("out", "", "Output image path (default: <skin>.webp)")
	size := flag.Int("size", 512, "Output image edge length in pixels")
	supersample := flag.Int("supersample", 2, "Internal oversampling factor")
	slim := flag.Bool("slim", false, "Force the slim (3px arm) model")
	classic := flag.Bool("classic", false, "Force the classic (4px arm) model")
	noHat := flag.Bool("nohat", false, "Drop the hat layer")
	yaw := flag.Float64("yaw", 30, "Camera yaw in degrees")
	pitch := flag.Float64("pitch", -12, "Camera pitch in degrees")
	paletteOut := flag.String("palette", "", "Also write the palette strip as PNG to this path")
	logLevel := flag.String("log", "info", "Log level: debug, info, warn, error")

	flag.Parse()

	if *skinPath == "" {
		fmt.Fprintln(os.Stderr, "Usage: render -skin <file> [options]")
		flag.PrintDefaults()
		os.Exit(2)
	}

	if err := logger.Init(*logLevel, ""); err != nil {
		fmt.Fprintf(os.Stderr, "Error: logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	opts := pipeline.Options{}
	if *slim || *classic || *noHat {
		if *slim && *classic {
			logger.Fatal("both -slim and -classic given")
		}
		opts.Variant = &atlas.ModelVariant{Slim: *slim, NoHat: *noHat}
	}

	img, err := texture.LoadImage(*skinPath)
	if err != nil {
		logger.Sugar.Fatalf("load skin: %v", err)
	}

	if *capePath != "" {
		cape, err := texture.LoadImage(*capePath)
		if err != nil {
			logger.Sugar.Fatalf("load cape: %v", err)
		}
		opts.Cape = cape
	}

	res, err := pipeline.Generate(img, opts)
	if err != nil {
		logger.Sugar.Fatalf("generate: %v", err)
	}

	logger.Sugar.Infof("variant: slim=%v legacy=%v cape=%v",
		res.Variant.Slim, res.Variant.Legacy, res.Variant.Cape)
	logger.Sugar.Infof("mesh: %d parts, %d faces (%d culled), %d vertices, %d colors",
		len(res.Mesh.Parts), res.Mesh.FaceCount(), res.CulledFaces,
		len(res.Mesh.Vertices), res.Palette.Len())

	out := raster.Render(res.Mesh, res.Palette, res.Index, raster.Options{
		Size:        *size,
		Supersample: *supersample,
		Camera:      raster.Camera{Yaw: *yaw, Pitch: *pitch},
	})

	dest := *outPath
	if dest == "" {
		dest = strings.TrimSuffix(*skinPath, filepath.Ext(*skinPath)) + ".webp"
	}

	f, err := os.Create(dest)
	if err != nil {
		logger.Sugar.Fatalf("create output: %v", err)
	}
	defer f.Close()

	if err := nativewebp.Encode(f, out, nil); err != nil {
		logger.Sugar.Fatalf("WebP encode: %v", err)
	}
	logger.Sugar.Infof("wrote %s", dest)

	if *paletteOut != "" {
		pf, err := os.Create(*paletteOut)
		if err != nil {
			logger.Sugar.Fatalf("create palette output: %v", err)
		}
		defer pf.Close()
		if err := png.Encode(pf, res.Palette.StripImage()); err != nil {
			logger.Sugar.Fatalf("palette encode: %v", err)
		}
		logger.Sugar.Infof("wrote %s", *paletteOut)
	}
}
