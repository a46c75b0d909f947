// Package pipeline runs the full skin-to-mesh transformation: variant
// resolution, part building, visibility culling, palette extraction and
// the final multi-set merge. One call per render request; stages run
// strictly in dependency order and any stage error aborts the request
// with no partial output.
package pipeline

import (
	"image"

	"github.com/go-gl/mathgl/mgl32"

	"mc-skin-mesher/internal/atlas"
	"mc-skin-mesher/internal/cull"
	"mc-skin-mesher/internal/geom"
	"mc-skin-mesher/internal/mesh"
	"mc-skin-mesher/internal/palette"
	"mc-skin-mesher/internal/skin"
)

// Options selects the model variant and optional extras for one request.
type Options struct {
	// Variant declares the model variant; nil infers it from the image.
	// The legacy flag always follows the actual image layout.
	Variant *atlas.ModelVariant

	// Cape enables the cape part, sampled from this 64×32 texture.
	Cape image.Image

	// Rotations poses individual parts (degrees, Y-X-Z order).
	Rotations map[atlas.PartName]mgl32.Vec3

	// ArmTilt overrides the default outward arm rotation in degrees.
	ArmTilt *float32

	// Extra part sets from upstream generators, merged after the body
	// set. Later sets override identically named parts.
	Extra []*geom.PartSet
}

// Result bundles the merged mesh with the compact palette and the
// packed index texture its UVs point into.
type Result struct {
	Mesh    *mesh.Mesh
	Palette *palette.Palette
	Index   *palette.IndexTexture

	Variant     atlas.ModelVariant
	CulledFaces int
}

// Generate runs the pipeline over one decoded skin image.
func Generate(img image.Image, opts Options) (*Result, error) {
	src, err := skin.Intake(img)
	if err != nil {
		return nil, err
	}
	return GenerateSkin(src, opts)
}

// GenerateSkin runs the pipeline over an already validated skin.
func GenerateSkin(src *skin.Skin, opts Options) (*Result, error) {
	variant, err := src.ResolveVariant(opts.Variant)
	if err != nil {
		return nil, err
	}

	var capeSrc *skin.Skin
	if opts.Cape != nil {
		capeSrc, err = skin.IntakeCape(opts.Cape)
		if err != nil {
			return nil, err
		}
		variant.Cape = true
	} else {
		variant.Cape = false
	}

	builder := geom.New(variant)
	if opts.ArmTilt != nil {
		builder.ArmTilt = *opts.ArmTilt
	}
	builder.Rotations = opts.Rotations

	body, err := builder.Build()
	if err != nil {
		return nil, err
	}

	culled := cull.Apply(&body, func(source geom.TextureSource, region atlas.FaceUV) bool {
		if source == geom.SourceCape {
			if capeSrc == nil {
				return false
			}
			return capeSrc.RegionOpaque(region)
		}
		return src.RegionOpaque(region)
	})

	sets := append([]*geom.PartSet{&body}, opts.Extra...)

	pal, index := palette.Extract(sets, palette.Sources{Skin: src, Cape: capeSrc})

	merged, err := mesh.Organize(sets)
	if err != nil {
		return nil, err
	}

	return &Result{
		Mesh:        merged,
		Palette:     pal,
		Index:       index,
		Variant:     variant,
		CulledFaces: culled,
	}, nil
}
