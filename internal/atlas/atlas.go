package atlas

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownVariant marks a variant flag combination with no defined
	// layout. Configuration error, never retried.
	ErrUnknownVariant = errors.New("unknown model variant")

	// ErrMissingAtlasEntry marks a (part, face) pair the selected variant
	// defines no rectangle for. Configuration error, never retried.
	ErrMissingAtlasEntry = errors.New("missing atlas entry")
)

// BaseTextureWidth is the skin atlas width all rectangles are defined
// against. Extended-height skins are square, legacy skins are half-height.
const (
	BaseTextureWidth        = 64
	BaseTextureHeight       = 64
	LegacyBaseTextureHeight = 32

	CapeTextureWidth  = 64
	CapeTextureHeight = 32
)

// boxUVs lays out the six face rectangles of a cuboid with texture origin
// (u,v) and dimensions w×h×d, following the standard unwrapped-box
// convention: top and bottom on the first row, then east/north/west/south
// side by side. Down faces sample mirrored horizontally.
func boxUVs(u, v, w, h, d int) [faceDirectionCount]FaceUV {
	var uvs [faceDirectionCount]FaceUV
	uvs[Up] = FaceUV{Rect: Rect{u + d, v, w, d}}
	uvs[Down] = FaceUV{Rect: Rect{u + d + w, v, w, d}, MirrorX: true}
	uvs[East] = FaceUV{Rect: Rect{u, v + d, d, h}}
	uvs[North] = FaceUV{Rect: Rect{u + d, v + d, w, h}}
	uvs[West] = FaceUV{Rect: Rect{u + d + w, v + d, d, h}}
	uvs[South] = FaceUV{Rect: Rect{u + d + w + d, v + d, w, h}}
	return uvs
}

// mirrorBox flips every face of a box layout horizontally and swaps the
// east and west rectangles. Legacy skins have no dedicated left-limb
// regions; the left limbs sample the right-limb regions mirrored.
func mirrorBox(uvs [faceDirectionCount]FaceUV) [faceDirectionCount]FaceUV {
	out := uvs
	for d := range out {
		out[d] = out[d].Mirrored()
	}
	out[East], out[West] = out[West], out[East]
	return out
}

// armWidth returns the arm box width in texels for the variant.
func armWidth(v ModelVariant) int {
	if v.Slim {
		return 3
	}
	return 4
}

// Supported reports whether the variant has a defined layout. Legacy
// half-height skins predate both slim arms and the non-hat overlay
// layers, so the slim flag is rejected for them.
func Supported(v ModelVariant) bool {
	if v.Legacy && v.Slim {
		return false
	}
	return true
}

// Parts returns the ordered list of parts that exist for the variant.
func Parts(v ModelVariant) ([]PartName, error) {
	if !Supported(v) {
		return nil, fmt.Errorf("atlas: %s: %w", v, ErrUnknownVariant)
	}

	parts := []PartName{Head, Body, RightArm, LeftArm, RightLeg, LeftLeg}
	if !v.NoHat {
		parts = append(parts, HeadLayer)
	}
	if !v.Legacy {
		parts = append(parts, BodyLayer, RightArmLayer, LeftArmLayer, RightLegLayer, LeftLegLayer)
	}
	if v.Cape {
		parts = append(parts, Cape)
	}
	if v.Ears {
		parts = append(parts, RightEar, LeftEar)
	}
	return parts, nil
}

// Lookup returns the texture region for one face of one part under the
// given variant. The rectangle is in 64-wide base scale regardless of the
// actual source image resolution.
func Lookup(v ModelVariant, p PartName, d FaceDirection) (FaceUV, error) {
	if !Supported(v) {
		return FaceUV{}, fmt.Errorf("atlas: %s: %w", v, ErrUnknownVariant)
	}
	if d >= faceDirectionCount {
		return FaceUV{}, fmt.Errorf("atlas: %s %s: %w", p, d, ErrMissingAtlasEntry)
	}

	aw := armWidth(v)

	var box [faceDirectionCount]FaceUV
	switch p {
	case Head:
		box = boxUVs(0, 0, 8, 8, 8)
	case HeadLayer:
		if v.NoHat {
			return FaceUV{}, missing(v, p, d)
		}
		box = boxUVs(32, 0, 8, 8, 8)
	case Body:
		box = boxUVs(16, 16, 8, 12, 4)
	case RightArm:
		box = boxUVs(40, 16, aw, 12, 4)
	case RightLeg:
		box = boxUVs(0, 16, 4, 12, 4)
	case LeftArm:
		if v.Legacy {
			box = mirrorBox(boxUVs(40, 16, aw, 12, 4))
		} else {
			box = boxUVs(32, 48, aw, 12, 4)
		}
	case LeftLeg:
		if v.Legacy {
			box = mirrorBox(boxUVs(0, 16, 4, 12, 4))
		} else {
			box = boxUVs(16, 48, 4, 12, 4)
		}
	case BodyLayer:
		if v.Legacy {
			return FaceUV{}, missing(v, p, d)
		}
		box = boxUVs(16, 32, 8, 12, 4)
	case RightArmLayer:
		if v.Legacy {
			return FaceUV{}, missing(v, p, d)
		}
		box = boxUVs(40, 32, aw, 12, 4)
	case LeftArmLayer:
		if v.Legacy {
			return FaceUV{}, missing(v, p, d)
		}
		box = boxUVs(48, 48, aw, 12, 4)
	case RightLegLayer:
		if v.Legacy {
			return FaceUV{}, missing(v, p, d)
		}
		box = boxUVs(0, 32, 4, 12, 4)
	case LeftLegLayer:
		if v.Legacy {
			return FaceUV{}, missing(v, p, d)
		}
		box = boxUVs(0, 48, 4, 12, 4)
	case Cape:
		if !v.Cape {
			return FaceUV{}, missing(v, p, d)
		}
		box = boxUVs(0, 0, 10, 16, 1)
	case RightEar, LeftEar:
		if !v.Ears {
			return FaceUV{}, missing(v, p, d)
		}
		// Ear plates sample the spare head-row region next to the
		// head bottom rectangle.
		box = boxUVs(24, 0, 6, 6, 1)
	default:
		return FaceUV{}, missing(v, p, d)
	}

	return box[d], nil
}

func missing(v ModelVariant, p PartName, d FaceDirection) error {
	return fmt.Errorf("atlas: %s has no region for %s %s: %w", v, p, d, ErrMissingAtlasEntry)
}

// TextureSize returns the base source texture dimensions the variant's
// skin rectangles live on.
func TextureSize(v ModelVariant) (w, h int) {
	if v.Legacy {
		return BaseTextureWidth, LegacyBaseTextureHeight
	}
	return BaseTextureWidth, BaseTextureHeight
}

// Validate performs the startup exhaustiveness pass: every part of every
// supported flag combination must resolve a rectangle for all six faces,
// and that rectangle must lie inside its texture. Returns the first
// inconsistency found.
func Validate() error {
	variants := allVariants()
	for _, v := range variants {
		parts, err := Parts(v)
		if err != nil {
			return err
		}
		for _, p := range parts {
			for _, d := range Directions {
				fu, err := Lookup(v, p, d)
				if err != nil {
					return err
				}
				w, h := TextureSize(v)
				if p == Cape {
					w, h = CapeTextureWidth, CapeTextureHeight
				}
				r := fu.Rect
				if r.W <= 0 || r.H <= 0 || r.X < 0 || r.Y < 0 || r.X+r.W > w || r.Y+r.H > h {
					return fmt.Errorf("atlas: %s %s %s: rect %+v outside %dx%d texture: %w",
						v, p, d, r, w, h, ErrMissingAtlasEntry)
				}
			}
		}
	}
	return nil
}

// allVariants enumerates every supported flag combination.
func allVariants() []ModelVariant {
	var out []ModelVariant
	for _, slim := range []bool{false, true} {
		for _, legacy := range []bool{false, true} {
			if slim && legacy {
				continue
			}
			for _, ears := range []bool{false, true} {
				for _, cape := range []bool{false, true} {
					out = append(out, ModelVariant{Slim: slim, Legacy: legacy, Ears: ears, Cape: cape})
				}
			}
		}
	}
	return out
}
