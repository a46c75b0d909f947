package palette

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"

	"mc-skin-mesher/internal/geom"
	"mc-skin-mesher/internal/skin"
)

// Sources supplies the read-only textures parts sample from.
type Sources struct {
	Skin *skin.Skin
	Cape *skin.Skin
}

func (s Sources) texture(src geom.TextureSource) *skin.Skin {
	if src == geom.SourceCape {
		return s.Cape
	}
	return s.Skin
}

// Extract scans every retained face of the sets in order, deduplicates
// sampled colors into a palette, packs each face's texel footprint into
// a compact index texture and rewrites the face UV quads into that
// layout (normalized coordinates, half-texel inset against bleeding).
//
// Iteration order is fixed by the set/part/face order, so the palette
// order and packing are identical across runs on identical input.
func Extract(sets []*geom.PartSet, src Sources) (*Palette, *IndexTexture) {
	pal := NewPalette()

	type slot struct {
		face *geom.Face
		tex  *skin.Skin
		w, h int
	}
	var slots []slot
	totalArea := 0
	maxW := 0

	for _, set := range sets {
		for i := range set.Parts {
			part := &set.Parts[i]
			tex := src.texture(part.Source)
			if tex == nil {
				continue
			}
			for j := range part.Faces {
				f := &part.Faces[j]
				w := f.Region.Rect.W * tex.Scale
				h := f.Region.Rect.H * tex.Scale
				if w <= 0 || h <= 0 {
					continue
				}
				slots = append(slots, slot{face: f, tex: tex, w: w, h: h})
				totalArea += w * h
				if w > maxW {
					maxW = w
				}
			}
		}
	}

	if len(slots) == 0 {
		return pal, &IndexTexture{}
	}

	texW := packWidth(maxW, totalArea)

	// Shelf packing in slot order.
	x, y, rowH := 0, 0, 0
	type placed struct {
		slot
		x, y int
	}
	placements := make([]placed, 0, len(slots))
	for _, s := range slots {
		if x+s.w > texW {
			x = 0
			y += rowH
			rowH = 0
		}
		placements = append(placements, placed{slot: s, x: x, y: y})
		x += s.w
		if s.h > rowH {
			rowH = s.h
		}
	}
	texH := y + rowH

	out := &IndexTexture{W: texW, H: texH, Idx: make([]uint32, texW*texH)}

	for _, pl := range placements {
		copyRegion(pal, out, pl.x, pl.y, pl.slot.face, pl.slot.tex)
		rewriteUV(pl.slot.face, pl.x, pl.y, pl.slot.w, pl.slot.h, texW, texH)
	}

	return pal, out
}

// packWidth picks the packed texture width: wide enough for the widest
// face, near-square for the total area, rounded up to a power of two.
func packWidth(maxW, totalArea int) int {
	side := int(math.Ceil(math.Sqrt(float64(totalArea))))
	if side < maxW {
		side = maxW
	}
	w := 1
	for w < side {
		w <<= 1
	}
	return w
}

// copyRegion samples the face's source region texel by texel, applying
// the mirror flags so the packed region is stored in display
// orientation, and records palette indices.
func copyRegion(pal *Palette, out *IndexTexture, dstX, dstY int, f *geom.Face, tex *skin.Skin) {
	r := f.Region.Rect
	scale := tex.Scale
	w := r.W * scale
	h := r.H * scale

	for dy := 0; dy < h; dy++ {
		sy := dy
		if f.Region.MirrorY {
			sy = h - 1 - dy
		}
		for dx := 0; dx < w; dx++ {
			sx := dx
			if f.Region.MirrorX {
				sx = w - 1 - dx
			}
			c := tex.At(r.X*scale+sx, r.Y*scale+sy)
			out.Idx[(dstY+dy)*out.W+dstX+dx] = pal.Add(c)
		}
	}
}

// rewriteUV points the face quad into the packed layout. The mirror is
// baked into the copied texels, so the quad runs straight TL→BR, inset
// half a texel to keep samples inside the region.
func rewriteUV(f *geom.Face, x, y, w, h, texW, texH int) {
	const inset = 0.5
	u0 := (float32(x) + inset) / float32(texW)
	v0 := (float32(y) + inset) / float32(texH)
	u1 := (float32(x+w) - inset) / float32(texW)
	v1 := (float32(y+h) - inset) / float32(texH)

	f.UV = [4]mgl32.Vec2{{u0, v0}, {u1, v0}, {u1, v1}, {u0, v1}}
}
