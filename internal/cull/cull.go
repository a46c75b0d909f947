// Package cull removes part faces that can never be visible: a base-part
// face fully enclosed behind the matching face of an opaque overlay
// shell. Culling is total; in the worst case it removes nothing.
package cull

import (
	"mc-skin-mesher/internal/atlas"
	"mc-skin-mesher/internal/geom"
)

// containTolerance absorbs float noise when comparing box extents.
const containTolerance = 1e-4

// OpacityFunc reports whether every pixel of a texture region is fully
// opaque. A translucent or empty overlay face never occludes the face
// beneath it.
type OpacityFunc func(source geom.TextureSource, region atlas.FaceUV) bool

// Occludes is the pure containment predicate: it reports whether outer's
// face in direction dir fully covers inner's face in the same direction.
// It holds when outer and inner share a pose transform, outer's inflated
// box contains inner's on every axis, and the face region of outer is
// opaque per the supplied probe. Equal-plane faces count as covered; the
// outer layer is the one declared closer to the camera.
func Occludes(outer, inner *geom.Part, dir atlas.FaceDirection, opaque OpacityFunc) bool {
	if outer.Rotation != inner.Rotation {
		return false
	}

	of := outer.Face(dir)
	if of == nil {
		return false
	}
	if inner.Face(dir) == nil {
		return false
	}

	oMin, oMax := outer.Min(), outer.Max()
	iMin, iMax := inner.Min(), inner.Max()
	for axis := 0; axis < 3; axis++ {
		if oMin[axis] > iMin[axis]+containTolerance {
			return false
		}
		if oMax[axis] < iMax[axis]-containTolerance {
			return false
		}
	}

	if opaque == nil {
		return false
	}
	return opaque(outer.Source, of.Region)
}

// Apply strips occluded faces from the set in place. Only declared
// overlay relationships are considered: each layer part is paired with
// its base part; coincidental overlaps between unrelated parts are left
// alone. Returns the number of faces removed.
func Apply(set *geom.PartSet, opaque OpacityFunc) int {
	removed := 0
	for i := range set.Parts {
		outer := &set.Parts[i]
		baseName, ok := outer.Name.BaseOf()
		if !ok {
			continue
		}
		inner := set.Part(baseName)
		if inner == nil {
			continue
		}

		for _, dir := range atlas.Directions {
			if Occludes(outer, inner, dir, opaque) {
				if inner.RemoveFace(dir) {
					removed++
				}
			}
		}
	}
	return removed
}
