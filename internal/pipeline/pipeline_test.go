package pipeline

import (
	"errors"
	"image"
	"image/color"
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"mc-skin-mesher/internal/atlas"
	"mc-skin-mesher/internal/geom"
	"mc-skin-mesher/internal/skin"
)

func opaqueImage(w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, color.NRGBA{R: 160, G: 110, B: 70, A: 255})
		}
	}
	return img
}

func TestGenerateOpaqueClassic(t *testing.T) {
	res, err := Generate(opaqueImage(64, 64), Options{})
	if err != nil {
		t.Fatal(err)
	}

	if res.Variant.Slim || res.Variant.Legacy {
		t.Errorf("variant = %s, want classic/extended", res.Variant)
	}
	if len(res.Mesh.Parts) != 12 {
		t.Fatalf("parts = %d, want 12", len(res.Mesh.Parts))
	}

	// Fully opaque layers hide every base face.
	if res.CulledFaces != 36 {
		t.Errorf("culled = %d, want 36", res.CulledFaces)
	}
	if got := res.Mesh.FaceCount(); got != 6*12-res.CulledFaces {
		t.Errorf("faces = %d, want %d", got, 6*12-res.CulledFaces)
	}

	if res.Palette.Len() != 1 {
		t.Errorf("palette size = %d for a single-color skin", res.Palette.Len())
	}
	if res.Index.W == 0 || res.Index.H == 0 {
		t.Error("empty index texture")
	}
}

func TestGenerateLegacy(t *testing.T) {
	res, err := Generate(opaqueImage(64, 32), Options{})
	if err != nil {
		t.Fatal(err)
	}

	if !res.Variant.Legacy {
		t.Fatalf("variant = %s, want legacy", res.Variant)
	}
	if len(res.Mesh.Parts) != 7 {
		t.Errorf("parts = %d, want 7 (hat is the only layer)", len(res.Mesh.Parts))
	}
	if res.CulledFaces != 6 {
		t.Errorf("culled = %d, want 6", res.CulledFaces)
	}
}

func TestGenerateTransparentLayers(t *testing.T) {
	img := opaqueImage(64, 64)
	// Clear every overlay region: hat row and the lower layer band.
	for y := 0; y < 16; y++ {
		for x := 32; x < 64; x++ {
			img.SetNRGBA(x, y, color.NRGBA{})
		}
	}
	for y := 32; y < 48; y++ {
		for x := 0; x < 64; x++ {
			img.SetNRGBA(x, y, color.NRGBA{})
		}
	}
	for y := 48; y < 64; y++ {
		for x := 0; x < 16; x++ {
			img.SetNRGBA(x, y, color.NRGBA{})
		}
		for x := 48; x < 64; x++ {
			img.SetNRGBA(x, y, color.NRGBA{})
		}
	}

	res, err := Generate(img, Options{})
	if err != nil {
		t.Fatal(err)
	}

	if res.CulledFaces != 0 {
		t.Errorf("culled = %d under transparent layers, want 0", res.CulledFaces)
	}
	if got := res.Mesh.FaceCount(); got != 72 {
		t.Errorf("faces = %d, want 72", got)
	}
	// Skin color plus the transparent entry.
	if res.Palette.Len() != 2 {
		t.Errorf("palette size = %d, want 2", res.Palette.Len())
	}
}

func TestGenerateAllTransparent(t *testing.T) {
	res, err := Generate(image.NewNRGBA(image.Rect(0, 0, 64, 64)), Options{})
	if err != nil {
		t.Fatal(err)
	}

	// Transparent layers never cull.
	if res.CulledFaces != 0 {
		t.Errorf("culled = %d, want 0", res.CulledFaces)
	}
	// Every sampled color collapses to the canonical transparent entry.
	if res.Palette.Len() != 1 {
		t.Errorf("palette size = %d, want 1", res.Palette.Len())
	}
	if res.Palette.Colors[0] != (color.NRGBA{}) {
		t.Errorf("canonical transparent = %v, want zero", res.Palette.Colors[0])
	}
}

func TestGenerateSlimInference(t *testing.T) {
	img := opaqueImage(64, 64)
	for y := 16; y < 32; y++ {
		img.SetNRGBA(47, y, color.NRGBA{})
	}

	res, err := Generate(img, Options{})
	if err != nil {
		t.Fatal(err)
	}
	if !res.Variant.Slim {
		t.Fatalf("variant = %s, want slim", res.Variant)
	}
}

func TestGenerateDeclaredVariant(t *testing.T) {
	res, err := Generate(opaqueImage(64, 64), Options{
		Variant: &atlas.ModelVariant{Slim: true, NoHat: true},
	})
	if err != nil {
		t.Fatal(err)
	}
	if !res.Variant.Slim {
		t.Error("declared slim not honored")
	}
	if len(res.Mesh.Parts) != 11 {
		t.Errorf("parts = %d, want 11 without the hat", len(res.Mesh.Parts))
	}
}

func TestGenerateCape(t *testing.T) {
	res, err := Generate(opaqueImage(64, 64), Options{
		Cape: opaqueImage(64, 32),
	})
	if err != nil {
		t.Fatal(err)
	}
	if !res.Variant.Cape {
		t.Fatal("cape variant flag not set")
	}
	if len(res.Mesh.Parts) != 13 {
		t.Errorf("parts = %d, want 13 with cape", len(res.Mesh.Parts))
	}

	// The cape is unpaired geometry; culling is unchanged.
	if res.CulledFaces != 36 {
		t.Errorf("culled = %d, want 36", res.CulledFaces)
	}
}

// Byte-identical input yields byte-identical mesh and palette.
func TestGenerateIdempotent(t *testing.T) {
	img := opaqueImage(64, 64)
	// A few distinct colors so palette order is exercised.
	img.SetNRGBA(10, 10, color.NRGBA{R: 255, A: 255})
	img.SetNRGBA(42, 20, color.NRGBA{B: 255, A: 255})

	first, err := Generate(img, Options{})
	if err != nil {
		t.Fatal(err)
	}
	second, err := Generate(img, Options{})
	if err != nil {
		t.Fatal(err)
	}

	if len(first.Palette.Colors) != len(second.Palette.Colors) {
		t.Fatalf("palette sizes differ: %d vs %d", len(first.Palette.Colors), len(second.Palette.Colors))
	}
	for i := range first.Palette.Colors {
		if first.Palette.Colors[i] != second.Palette.Colors[i] {
			t.Fatalf("palette entry %d differs: %v vs %v", i, first.Palette.Colors[i], second.Palette.Colors[i])
		}
	}

	if len(first.Mesh.Vertices) != len(second.Mesh.Vertices) {
		t.Fatalf("vertex counts differ: %d vs %d", len(first.Mesh.Vertices), len(second.Mesh.Vertices))
	}
	for i := range first.Mesh.Vertices {
		if first.Mesh.Vertices[i] != second.Mesh.Vertices[i] {
			t.Fatalf("vertex %d differs", i)
		}
	}
	if len(first.Mesh.Indices) != len(second.Mesh.Indices) {
		t.Fatalf("index counts differ: %d vs %d", len(first.Mesh.Indices), len(second.Mesh.Indices))
	}
	for i := range first.Mesh.Indices {
		if first.Mesh.Indices[i] != second.Mesh.Indices[i] {
			t.Fatalf("index %d differs: %d vs %d", i, first.Mesh.Indices[i], second.Mesh.Indices[i])
		}
	}

	if first.Index.W != second.Index.W || first.Index.H != second.Index.H {
		t.Fatalf("index textures differ: %dx%d vs %dx%d",
			first.Index.W, first.Index.H, second.Index.W, second.Index.H)
	}
	for i := range first.Index.Idx {
		if first.Index.Idx[i] != second.Index.Idx[i] {
			t.Fatalf("index texel %d differs", i)
		}
	}
}

// An extra set overriding a body part still gets its colors and UVs
// through extraction; the set order fixes precedence.
func TestGenerateExtraOverride(t *testing.T) {
	// Transparent skin with a red head front, so nothing is culled and
	// the merge sees matching face counts on both heads.
	img := image.NewNRGBA(image.Rect(0, 0, 64, 64))
	for y := 8; y < 16; y++ {
		for x := 8; x < 16; x++ {
			img.SetNRGBA(x, y, color.NRGBA{R: 255, A: 255})
		}
	}

	b := geom.New(atlas.ModelVariant{Slim: true})
	b.SetName = "posed"
	b.Rotations = map[atlas.PartName]mgl32.Vec3{atlas.Head: {0, 30, 0}}
	extra, err := b.Build()
	if err != nil {
		t.Fatal(err)
	}

	res, err := Generate(img, Options{Extra: []*geom.PartSet{&extra}})
	if err != nil {
		t.Fatal(err)
	}

	// Same names merged, later set's head wins with its pose.
	if len(res.Mesh.Parts) != 12 {
		t.Fatalf("parts = %d, want 12", len(res.Mesh.Parts))
	}
	head := res.Mesh.Parts[0]
	if head.Name != atlas.Head {
		t.Fatalf("first part = %s, want head", head.Name)
	}
	if head.Rotation == mgl32.Ident4() {
		t.Error("override head lost its pose")
	}

	// The winning head was extracted: its UVs point into the packed
	// texture, not at source pixel rectangles.
	for _, f := range head.Faces {
		for _, uv := range f.UV {
			if uv.X() < 0 || uv.X() > 1 || uv.Y() < 0 || uv.Y() > 1 {
				t.Fatalf("head %s: UV %v outside the packed texture", f.Dir, uv)
			}
		}
	}

	// Red plus the canonical transparent entry.
	if res.Palette.Len() != 2 {
		t.Errorf("palette size = %d, want 2", res.Palette.Len())
	}
}

func TestGenerateBadDimensions(t *testing.T) {
	_, err := Generate(opaqueImage(50, 50), Options{})
	if !errors.Is(err, skin.ErrUnsupportedImageDimensions) {
		t.Fatalf("Generate(50x50) = %v, want ErrUnsupportedImageDimensions", err)
	}
}

func TestGenerateBadCape(t *testing.T) {
	_, err := Generate(opaqueImage(64, 64), Options{Cape: opaqueImage(64, 64)})
	if !errors.Is(err, skin.ErrUnsupportedImageDimensions) {
		t.Fatalf("bad cape = %v, want ErrUnsupportedImageDimensions", err)
	}
}

func TestGenerateDeclaredLegacySlim(t *testing.T) {
	// A declared slim variant on a legacy image has no defined layout.
	_, err := Generate(opaqueImage(64, 32), Options{
		Variant: &atlas.ModelVariant{Slim: true},
	})
	if !errors.Is(err, atlas.ErrUnknownVariant) {
		t.Fatalf("slim on legacy = %v, want ErrUnknownVariant", err)
	}
}
