// Package geom builds the cuboid part geometry of the humanoid model:
// one Part per atlas part name, each with up to six textured faces. Parts
// are created here, thinned by the culler, recolored by the palette
// extractor and finally consumed by the mesh organizer.
package geom

import (
	"github.com/go-gl/mathgl/mgl32"

	"mc-skin-mesher/internal/atlas"
)

// TextureSource tags which input texture a part samples from.
type TextureSource uint8

const (
	SourceSkin TextureSource = iota
	SourceCape
)

// Face is one planar quad of a part. Verts and UV run in the order
// top-left, top-right, bottom-right, bottom-left; triangulation is
// (0,1,2) and (0,2,3). Region is the source-texture rectangle the face
// samples; UV starts as pixel corners of that rectangle and is rewritten
// by the palette extractor into the packed index texture.
type Face struct {
	Dir    atlas.FaceDirection
	Verts  [4]mgl32.Vec3
	UV     [4]mgl32.Vec2
	Normal mgl32.Vec3
	Region atlas.FaceUV
}

// Part is a named cuboid. Position is the box minimum corner before
// inflation; Inflate grows the box uniformly on all sides (overlay
// shells). Rotation is the pose transform applied to emitted vertices.
type Part struct {
	Name     atlas.PartName
	Source   TextureSource
	Position mgl32.Vec3
	Size     mgl32.Vec3
	Inflate  float32
	Rotation mgl32.Mat4
	Faces    []Face
}

// Min returns the inflated box minimum corner.
func (p *Part) Min() mgl32.Vec3 {
	f := p.Inflate
	return p.Position.Sub(mgl32.Vec3{f, f, f})
}

// Max returns the inflated box maximum corner.
func (p *Part) Max() mgl32.Vec3 {
	f := p.Inflate
	return p.Position.Add(p.Size).Add(mgl32.Vec3{f, f, f})
}

// Face returns the retained face with the given direction, or nil if it
// was culled.
func (p *Part) Face(d atlas.FaceDirection) *Face {
	for i := range p.Faces {
		if p.Faces[i].Dir == d {
			return &p.Faces[i]
		}
	}
	return nil
}

// RemoveFace drops the face with the given direction, keeping the
// remaining faces in emission order.
func (p *Part) RemoveFace(d atlas.FaceDirection) bool {
	for i := range p.Faces {
		if p.Faces[i].Dir == d {
			p.Faces = append(p.Faces[:i], p.Faces[i+1:]...)
			return true
		}
	}
	return false
}

// PartSet is one independently generated collection of parts. Sets are
// handed to the mesh organizer, which consumes them; a set must not be
// reused after merging.
type PartSet struct {
	Name  string
	Parts []Part
}

// Part returns the named part, or nil.
func (s *PartSet) Part(name atlas.PartName) *Part {
	for i := range s.Parts {
		if s.Parts[i].Name == name {
			return &s.Parts[i]
		}
	}
	return nil
}

// FaceCount returns the number of retained faces across all parts.
func (s *PartSet) FaceCount() int {
	n := 0
	for i := range s.Parts {
		n += len(s.Parts[i].Faces)
	}
	return n
}
