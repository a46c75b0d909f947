// Package skin handles source skin image intake: format normalization,
// dimension validation, model variant inference and read-only pixel
// probes for the later pipeline stages.
package skin

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"

	"mc-skin-mesher/internal/atlas"
)

// ErrUnsupportedImageDimensions is returned when a source image does not
// match any known skin layout. Input error: surfaced to the caller, not
// retried.
var ErrUnsupportedImageDimensions = errors.New("unsupported image dimensions")

// MaxScale caps high-resolution skins at 1024×1024 (16× base).
const MaxScale = 16

// Skin wraps a validated, NRGBA-normalized skin texture. The pixel buffer
// is read-only for the rest of the pipeline and may be shared across
// concurrently computed parts.
type Skin struct {
	Image  *image.NRGBA
	Scale  int  // pixels per base texel (1 for a 64-wide skin)
	Legacy bool // 64×32 layout
}

// Intake validates dimensions and converts the decoded image to NRGBA.
// Accepted layouts: 64×64 and 64×32, or any power-of-two multiple of
// them up to MaxScale.
func Intake(img image.Image) (*Skin, error) {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()

	scale := w / atlas.BaseTextureWidth
	if scale < 1 || scale > MaxScale || scale*atlas.BaseTextureWidth != w || scale&(scale-1) != 0 {
		return nil, fmt.Errorf("skin: %dx%d: %w", w, h, ErrUnsupportedImageDimensions)
	}

	var legacy bool
	switch h {
	case scale * atlas.BaseTextureHeight:
		legacy = false
	case scale * atlas.LegacyBaseTextureHeight:
		legacy = true
	default:
		return nil, fmt.Errorf("skin: %dx%d: %w", w, h, ErrUnsupportedImageDimensions)
	}

	return &Skin{Image: toNRGBA(img), Scale: scale, Legacy: legacy}, nil
}

// IntakeCape validates and converts a cape texture (64×32 or a
// power-of-two multiple).
func IntakeCape(img image.Image) (*Skin, error) {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()

	scale := w / atlas.CapeTextureWidth
	if scale < 1 || scale > MaxScale || scale*atlas.CapeTextureWidth != w ||
		scale&(scale-1) != 0 || h != scale*atlas.CapeTextureHeight {
		return nil, fmt.Errorf("skin: cape %dx%d: %w", w, h, ErrUnsupportedImageDimensions)
	}

	return &Skin{Image: toNRGBA(img), Scale: scale}, nil
}

// Texel returns the pixel at base-scale coordinates (x, y). For
// high-resolution skins this is the top-left pixel of the texel block.
func (s *Skin) Texel(x, y int) color.NRGBA {
	return s.At(x*s.Scale, y*s.Scale)
}

// At returns the pixel at raw image coordinates, transparent black
// outside the bounds.
func (s *Skin) At(px, py int) color.NRGBA {
	b := s.Image.Bounds()
	if px < 0 || py < 0 || px >= b.Dx() || py >= b.Dy() {
		return color.NRGBA{}
	}
	i := s.Image.PixOffset(b.Min.X+px, b.Min.Y+py)
	p := s.Image.Pix
	return color.NRGBA{R: p[i], G: p[i+1], B: p[i+2], A: p[i+3]}
}

// RegionOpaque reports whether every pixel of the region is fully opaque.
// Only a fully opaque overlay face occludes the face beneath it.
func (s *Skin) RegionOpaque(fu atlas.FaceUV) bool {
	return s.scanRegion(fu, func(a uint8) bool { return a == 0xff })
}

// RegionTransparent reports whether every pixel of the region is fully
// transparent.
func (s *Skin) RegionTransparent(fu atlas.FaceUV) bool {
	return s.scanRegion(fu, func(a uint8) bool { return a == 0 })
}

func (s *Skin) scanRegion(fu atlas.FaceUV, ok func(alpha uint8) bool) bool {
	r := fu.Rect
	x0, y0 := r.X*s.Scale, r.Y*s.Scale
	x1, y1 := (r.X+r.W)*s.Scale, (r.Y+r.H)*s.Scale
	for py := y0; py < y1; py++ {
		for px := x0; px < x1; px++ {
			if !ok(s.At(px, py).A) {
				return false
			}
		}
	}
	return true
}

// toNRGBA converts any decoded image to NRGBA, forcing alpha to opaque
// for source formats that carry none.
func toNRGBA(src image.Image) *image.NRGBA {
	if n, ok := src.(*image.NRGBA); ok {
		return n
	}
	b := src.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), src, b.Min, draw.Src)

	switch src.(type) {
	case *image.YCbCr, *image.Gray:
		for i := 3; i < len(dst.Pix); i += 4 {
			dst.Pix[i] = 0xff
		}
	}
	return dst
}
