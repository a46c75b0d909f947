package raster

import "image"

// SampleNearest returns the texel nearest to (u, v) with clamping.
// Nearest sampling keeps pixel-art skins crisp and never bleeds across
// neighboring regions of the packed palette texture; UV quads are inset
// half a texel, so clamping only triggers on boundary rounding.
func SampleNearest(tex *image.NRGBA, u, v float64) (r, g, b, a uint8) {
	w := tex.Rect.Dx()
	h := tex.Rect.Dy()
	if w == 0 || h == 0 {
		return 0, 0, 0, 0
	}

	x := int(u * float64(w))
	y := int(v * float64(h))
	if x < 0 {
		x = 0
	}
	if x >= w {
		x = w - 1
	}
	if y < 0 {
		y = 0
	}
	if y >= h {
		y = h - 1
	}

	i := y*tex.Stride + x*4
	pix := tex.Pix
	return pix[i], pix[i+1], pix[i+2], pix[i+3]
}
