package raster

import (
	"image"
	"math"
)

// RasterizeTriangle rasterizes one mesh triangle with nearest texture
// sampling, z-buffer, flat shading and ACES tone mapping.
//
// This is the hot path: no allocation in the inner loop, direct Pix
// access through SampleNearest.
func RasterizeTriangle(
	fb *FrameBuffer,
	px, py, pz []float64,
	uvs [][2]float64,
	idx [3]int,
	tex *image.NRGBA,
	shade float64,
	lc *LightConfig,
) {
	nv := len(px)
	for _, i := range idx {
		if i < 0 || i >= nv {
			return
		}
	}

	x0, y0, z0 := px[idx[0]], py[idx[0]], pz[idx[0]]
	x1, y1, z1 := px[idx[1]], py[idx[1]], pz[idx[1]]
	x2, y2, z2 := px[idx[2]], py[idx[2]], pz[idx[2]]

	u0, v0uv := uvs[idx[0]][0], uvs[idx[0]][1]
	u1, v1uv := uvs[idx[1]][0], uvs[idx[1]][1]
	u2, v2uv := uvs[idx[2]][0], uvs[idx[2]][1]

	// Bounding box
	size := fb.Width
	minX := int(math.Min(math.Min(x0, x1), x2))
	maxX := int(math.Max(math.Max(x0, x1), x2)) + 1
	minY := int(math.Min(math.Min(y0, y1), y2))
	maxY := int(math.Max(math.Max(y0, y1), y2)) + 1

	if minX < 0 {
		minX = 0
	}
	if maxX >= size {
		maxX = size - 1
	}
	if minY < 0 {
		minY = 0
	}
	if maxY >= fb.Height {
		maxY = fb.Height - 1
	}
	if minX >= maxX || minY >= maxY {
		return
	}

	// Barycentric setup
	det := (y1-y2)*(x0-x2) + (x2-x1)*(y0-y2)
	if det > -1e-8 && det < 1e-8 {
		return
	}
	invDet := 1.0 / det

	dy12 := y1 - y2
	dx21 := x2 - x1
	dy20 := y2 - y0
	dx02 := x0 - x2

	exposure := lc.Exposure
	invGamma := lc.InvGamma

	for sy := minY; sy <= maxY; sy++ {
		dsy := float64(sy) + 0.5 - y2
		rowOff := sy * size
		for sx := minX; sx <= maxX; sx++ {
			dsx := float64(sx) + 0.5 - x2
			w0 := (dy12*dsx + dx21*dsy) * invDet
			w1 := (dy20*dsx + dx02*dsy) * invDet
			w2 := 1.0 - w0 - w1

			if w0 < -0.001 || w1 < -0.001 || w2 < -0.001 {
				continue
			}

			z := w0*z0 + w1*z1 + w2*z2
			zIdx := rowOff + sx
			if z <= fb.ZBuf[zIdx] {
				continue
			}

			u := w0*u0 + w1*u1 + w2*u2
			v := w0*v0uv + w1*v1uv + w2*v2uv
			cr, cg, cb, ca := SampleNearest(tex, u, v)

			// Transparent texels leave no depth mark
			if ca < 8 {
				continue
			}
			fb.ZBuf[zIdx] = z

			// sRGB decode → shade → tone map → encode
			sr := srgbToLinear[cr] * shade * exposure
			sg := srgbToLinear[cg] * shade * exposure
			sb := srgbToLinear[cb] * shade * exposure

			fr := math.Pow(ACESTonemap(sr), invGamma)
			fg := math.Pow(ACESTonemap(sg), invGamma)
			fbl := math.Pow(ACESTonemap(sb), invGamma)

			pxIdx := zIdx * 4
			fb.Color[pxIdx] = clamp255(fr * 255)
			fb.Color[pxIdx+1] = clamp255(fg * 255)
			fb.Color[pxIdx+2] = clamp255(fbl * 255)
			fb.Color[pxIdx+3] = ca
		}
	}
}

func clamp255(v float64) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v + 0.5)
}
