package raster

import (
	"image"

	"github.com/go-gl/mathgl/mgl64"

	"mc-skin-mesher/internal/mesh"
	"mc-skin-mesher/internal/palette"
)

// Options controls one render.
type Options struct {
	Size        int // output edge length in pixels
	Supersample int // internal oversampling factor, ≥ 1
	Camera      Camera
}

// DefaultOptions returns the standard display render settings.
func DefaultOptions() Options {
	return Options{Size: 512, Supersample: 2, Camera: DefaultCamera()}
}

// Render rasterizes the merged mesh with its palette texture to an
// NRGBA image of opts.Size (after supersample reduction).
func Render(m *mesh.Mesh, pal *palette.Palette, index *palette.IndexTexture, opts Options) *image.NRGBA {
	if opts.Size <= 0 {
		opts.Size = 512
	}
	if opts.Supersample < 1 {
		opts.Supersample = 1
	}

	renderSize := opts.Size * opts.Supersample
	if len(m.Vertices) == 0 || len(m.Indices) == 0 {
		return image.NewNRGBA(image.Rect(0, 0, opts.Size, opts.Size))
	}

	tex := index.ColorImage(pal)

	margin := 16 * opts.Supersample
	px, py, pz := ProjectVertices(m.Vertices, opts.Camera, renderSize, margin)

	uvs := make([][2]float64, len(m.Vertices))
	for i, v := range m.Vertices {
		uvs[i] = [2]float64{float64(v.UV.X()), float64(v.UV.Y())}
	}

	fb := NewFrameBuffer(renderSize, renderSize)
	lc := DefaultLightConfig()

	for i := 0; i+2 < len(m.Indices); i += 3 {
		idx := [3]int{int(m.Indices[i]), int(m.Indices[i+1]), int(m.Indices[i+2])}

		// Flat shade from the shared vertex normal, in view space.
		n := m.Vertices[idx[0]].Normal
		viewN := opts.Camera.TransformNormal(mgl64.Vec3{
			float64(n.X()), float64(n.Y()), float64(n.Z()),
		})
		shade := lc.ComputeShade(viewN)

		RasterizeTriangle(fb, px, py, pz, uvs, idx, tex, shade, &lc)
	}

	img := image.NewNRGBA(image.Rect(0, 0, renderSize, renderSize))
	copy(img.Pix, fb.Color)

	if opts.Supersample > 1 {
		img = Downsample(img, opts.Size)
	}
	return img
}
