package main

import (
	"fmt"
	"os"

	"mc-skin-mesher/internal/pipeline"
	"mc-skin-mesher/internal/texture"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "Usage: inspect <skin.png> [...]")
		os.Exit(2)
	}

	for _, arg := range os.Args[1:] {
		src, err := texture.LoadSkin(arg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Load error %s: %v\n", arg, err)
			continue
		}

		res, err := pipeline.GenerateSkin(src, pipeline.Options{})
		if err != nil {
			fmt.Fprintf(os.Stderr, "Generate error %s: %v\n", arg, err)
			continue
		}

		b := src.Image.Bounds()
		fmt.Printf("\n=== %s (%dx%d scale=%d) ===\n", arg, b.Dx(), b.Dy(), src.Scale)
		fmt.Printf("variant: slim=%v legacy=%v\n", res.Variant.Slim, res.Variant.Legacy)
		fmt.Printf("faces: %d (%d culled), triangles: %d\n",
			res.Mesh.FaceCount(), res.CulledFaces, res.Mesh.TriangleCount())
		fmt.Printf("vertices: %d unique, indices: %d\n",
			len(res.Mesh.Vertices), len(res.Mesh.Indices))
		fmt.Printf("palette: %d colors, index texture: %dx%d\n",
			res.Palette.Len(), res.Index.W, res.Index.H)

		for _, p := range res.Mesh.Parts {
			min, max := p.Min(), p.Max()
			fmt.Printf("  %-14s faces=%d box=[%.2f %.2f %.2f]..[%.2f %.2f %.2f]\n",
				p.Name, len(p.Faces),
				min.X(), min.Y(), min.Z(), max.X(), max.Y(), max.Z())
		}
	}
}
