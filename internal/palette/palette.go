// Package palette compacts the sparse skin atlas: it deduplicates every
// color the retained faces sample into an ordered palette, packs the
// face footprints into a small index texture, and rewrites face UVs into
// the packed layout. Extraction is deterministic and total.
package palette

import (
	"image"
	"image/color"
)

// Palette is the ordered set of unique colors, in first-seen order. All
// fully transparent pixels collapse into one canonical entry, since
// their RGB channels are arbitrary in source images.
type Palette struct {
	Colors []color.NRGBA

	lookup map[color.NRGBA]uint32
}

// NewPalette returns an empty palette.
func NewPalette() *Palette {
	return &Palette{lookup: make(map[color.NRGBA]uint32)}
}

// canonical maps fully transparent colors onto the single transparent
// entry and returns every other color unchanged.
func canonical(c color.NRGBA) color.NRGBA {
	if c.A == 0 {
		return color.NRGBA{}
	}
	return c
}

// Add returns the palette index for c, appending it on first sight.
func (p *Palette) Add(c color.NRGBA) uint32 {
	c = canonical(c)
	if i, ok := p.lookup[c]; ok {
		return i
	}
	i := uint32(len(p.Colors))
	p.Colors = append(p.Colors, c)
	p.lookup[c] = i
	return i
}

// Index returns the index of c if present.
func (p *Palette) Index(c color.NRGBA) (uint32, bool) {
	i, ok := p.lookup[canonical(c)]
	return i, ok
}

// Len returns the number of unique colors.
func (p *Palette) Len() int { return len(p.Colors) }

// StripSize returns the dimensions of the palette strip layout (1×N).
func (p *Palette) StripSize() (w, h int) {
	if len(p.Colors) == 0 {
		return 0, 0
	}
	return len(p.Colors), 1
}

// StripImage renders the palette as a 1×N strip, ready for an external
// encoder.
func (p *Palette) StripImage() *image.NRGBA {
	w, h := p.StripSize()
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for i, c := range p.Colors {
		o := i * 4
		img.Pix[o] = c.R
		img.Pix[o+1] = c.G
		img.Pix[o+2] = c.B
		img.Pix[o+3] = c.A
	}
	return img
}

// IndexTexture is the packed per-texel palette index grid the rewritten
// face UVs point into.
type IndexTexture struct {
	W, H int
	Idx  []uint32
}

// At returns the palette index at (x, y).
func (t *IndexTexture) At(x, y int) uint32 {
	return t.Idx[y*t.W+x]
}

// ColorImage expands the index grid back into an NRGBA image through the
// palette, for renderers that sample colors directly.
func (t *IndexTexture) ColorImage(p *Palette) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, t.W, t.H))
	for i, idx := range t.Idx {
		c := color.NRGBA{}
		if int(idx) < len(p.Colors) {
			c = p.Colors[idx]
		}
		o := i * 4
		img.Pix[o] = c.R
		img.Pix[o+1] = c.G
		img.Pix[o+2] = c.B
		img.Pix[o+3] = c.A
	}
	return img
}
