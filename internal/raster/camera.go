package raster

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"mc-skin-mesher/internal/mesh"
)

// Camera is a fixed orthographic orbit around the model. Yaw and pitch
// are in degrees; positive yaw turns the model toward its left side.
type Camera struct {
	Yaw   float64
	Pitch float64
}

// DefaultCamera is the standard three-quarter display view.
func DefaultCamera() Camera {
	return Camera{Yaw: 30, Pitch: -12}
}

// viewMatrix builds the orbit rotation: pitch about X after yaw about Y.
func (c Camera) viewMatrix() mgl64.Mat3 {
	return mgl64.Rotate3DX(deg2rad(c.Pitch)).Mul3(mgl64.Rotate3DY(deg2rad(c.Yaw)))
}

func deg2rad(d float64) float64 { return d * math.Pi / 180 }

// ProjectVertices transforms all mesh vertices by the orbit view and
// maps them into screen space: the view-space bounding box is centered
// and scaled to fit renderSize with the given margin. Screen Y grows
// downward; Z grows toward the viewer (larger = closer).
func ProjectVertices(verts []mesh.Vertex, cam Camera, renderSize, margin int) (px, py, pz []float64) {
	n := len(verts)
	px = make([]float64, n)
	py = make([]float64, n)
	pz = make([]float64, n)
	if n == 0 {
		return
	}

	r := cam.viewMatrix()

	min := mgl64.Vec3{math.Inf(1), math.Inf(1), math.Inf(1)}
	max := mgl64.Vec3{math.Inf(-1), math.Inf(-1), math.Inf(-1)}
	for i, v := range verts {
		tv := r.Mul3x1(mgl64.Vec3{
			float64(v.Position.X()),
			float64(v.Position.Y()),
			float64(v.Position.Z()),
		})
		px[i], py[i], pz[i] = tv.X(), tv.Y(), tv.Z()
		for k := 0; k < 3; k++ {
			if tv[k] < min[k] {
				min[k] = tv[k]
			}
			if tv[k] > max[k] {
				max[k] = tv[k]
			}
		}
	}

	center := min.Add(max).Mul(0.5)
	span := max.X() - min.X()
	if s := max.Y() - min.Y(); s > span {
		span = s
	}
	if span < 0.001 {
		span = 0.001
	}
	scale := float64(renderSize-2*margin) / span
	half := float64(renderSize) / 2

	for i := 0; i < n; i++ {
		// +Y up in model space, +Y down on screen; -Z faces the
		// viewer, larger pz is closer.
		px[i] = (px[i]-center.X())*scale + half
		py[i] = (center.Y()-py[i])*scale + half
		pz[i] = (center.Z() - pz[i]) * scale
	}
	return
}

// TransformNormal rotates a model-space normal into view space.
func (c Camera) TransformNormal(n mgl64.Vec3) mgl64.Vec3 {
	return c.viewMatrix().Mul3x1(n)
}
