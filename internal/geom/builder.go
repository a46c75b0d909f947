package geom

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"

	"mc-skin-mesher/internal/atlas"
)

// Inflate factors for overlay shells: the hat sits further off the head
// than the other layers do off their base parts.
const (
	HatInflate   = 0.5
	LayerInflate = 0.25

	// DefaultArmTilt is the slight outward arm rotation of the static
	// display pose, in degrees.
	DefaultArmTilt = 10

	// capeTilt angles the cape away from the body, in degrees about X.
	capeTilt = 10
)

// Builder emits the part set for one model variant. The zero value plus
// a variant is usable; New applies the default display pose.
type Builder struct {
	Variant atlas.ModelVariant

	// ArmTilt is the outward Z-rotation of both arms in degrees.
	ArmTilt float32

	// Rotations adds per-part pose rotations (degrees, applied in
	// Y-X-Z order about the part's anchor). Keyed by the base part;
	// overlay shells and ears follow their base.
	Rotations map[atlas.PartName]mgl32.Vec3

	// SetName names the produced part set.
	SetName string
}

// New returns a builder with the default display pose.
func New(v atlas.ModelVariant) *Builder {
	return &Builder{Variant: v, ArmTilt: DefaultArmTilt, SetName: "player"}
}

// Build emits one part per atlas part name for the variant, each with six
// textured faces positioned on the canonical box, inflated for overlay
// shells and transformed by the pose. A missing atlas rectangle aborts
// with the atlas configuration error.
func (b *Builder) Build() (PartSet, error) {
	names, err := atlas.Parts(b.Variant)
	if err != nil {
		return PartSet{}, err
	}

	set := PartSet{Name: b.SetName}
	for _, name := range names {
		part, err := b.buildPart(name)
		if err != nil {
			return PartSet{}, err
		}
		set.Parts = append(set.Parts, part)
	}
	return set, nil
}

func (b *Builder) buildPart(name atlas.PartName) (Part, error) {
	box := partBox(name, b.Variant.Slim)

	part := Part{
		Name:     name,
		Source:   box.source,
		Position: box.pos,
		Size:     box.size,
		Inflate:  box.inflate,
		Rotation: b.poseTransform(name),
	}

	rot3 := part.Rotation.Mat3()
	for _, dir := range atlas.Directions {
		region, err := atlas.Lookup(b.Variant, name, dir)
		if err != nil {
			return Part{}, fmt.Errorf("geom: build %s: %w", name, err)
		}

		face := boxFace(part.Min(), part.Max(), dir, region)
		for i := range face.Verts {
			face.Verts[i] = mgl32.TransformCoordinate(face.Verts[i], part.Rotation)
		}
		face.Normal = rot3.Mul3x1(face.Normal).Normalize()
		part.Faces = append(part.Faces, face)
	}
	return part, nil
}

// poseTransform composes the default display pose with any caller
// rotation for the part's group, anchored per part.
func (b *Builder) poseTransform(name atlas.PartName) mgl32.Mat4 {
	group := poseGroup(name)
	euler := b.Rotations[group]

	switch group {
	case atlas.RightArm:
		euler[2] -= b.ArmTilt
	case atlas.LeftArm:
		euler[2] += b.ArmTilt
	case atlas.Cape:
		euler[0] -= capeTilt
	}

	if euler == (mgl32.Vec3{}) {
		return mgl32.Ident4()
	}
	return anchoredRotation(euler, anchorFor(group, b.Variant.Slim))
}

// anchoredRotation builds T(anchor) · R(yxz) · T(-anchor); rotating a
// part about its pivot instead of the model origin.
func anchoredRotation(eulerDeg mgl32.Vec3, anchor mgl32.Vec3) mgl32.Mat4 {
	rot := mgl32.AnglesToQuat(
		mgl32.DegToRad(eulerDeg.Y()),
		mgl32.DegToRad(eulerDeg.X()),
		mgl32.DegToRad(eulerDeg.Z()),
		mgl32.YXZ,
	).Mat4()
	return mgl32.Translate3D(anchor.X(), anchor.Y(), anchor.Z()).
		Mul4(rot).
		Mul4(mgl32.Translate3D(-anchor.X(), -anchor.Y(), -anchor.Z()))
}

// poseGroup maps overlay shells and ears onto the base part whose pose
// they follow.
func poseGroup(name atlas.PartName) atlas.PartName {
	if base, ok := name.BaseOf(); ok {
		return base
	}
	switch name {
	case atlas.RightEar, atlas.LeftEar:
		return atlas.Head
	}
	return name
}

// anchorFor returns the rotation pivot of a pose group: the neck for the
// head, shoulder tops for arms, hip tops for legs.
func anchorFor(group atlas.PartName, slim bool) mgl32.Vec3 {
	box := partBox(group, slim)
	top := box.pos.Y() + box.size.Y()
	cx := box.pos.X() + box.size.X()/2
	cz := box.pos.Z() + box.size.Z()/2
	switch group {
	case atlas.Head:
		return mgl32.Vec3{0, box.pos.Y(), 0}
	case atlas.Cape:
		return mgl32.Vec3{0, top, box.pos.Z()}
	default:
		return mgl32.Vec3{cx, top, cz}
	}
}

type boxSpec struct {
	pos     mgl32.Vec3
	size    mgl32.Vec3
	inflate float32
	source  TextureSource
}

// partBox returns the canonical model-unit box of a part. The model
// faces -Z; the right limbs are on -X. Overlay shells share their base
// box and differ only by inflate.
func partBox(name atlas.PartName, slim bool) boxSpec {
	armW := float32(4)
	armX := float32(-8)
	if slim {
		armW = 3
		armX = -7
	}

	switch name {
	case atlas.Head:
		return boxSpec{pos: mgl32.Vec3{-4, 24, -4}, size: mgl32.Vec3{8, 8, 8}}
	case atlas.HeadLayer:
		b := partBox(atlas.Head, slim)
		b.inflate = HatInflate
		return b
	case atlas.Body:
		return boxSpec{pos: mgl32.Vec3{-4, 12, -2}, size: mgl32.Vec3{8, 12, 4}}
	case atlas.BodyLayer:
		b := partBox(atlas.Body, slim)
		b.inflate = LayerInflate
		return b
	case atlas.RightArm:
		return boxSpec{pos: mgl32.Vec3{armX, 12, -2}, size: mgl32.Vec3{armW, 12, 4}}
	case atlas.RightArmLayer:
		b := partBox(atlas.RightArm, slim)
		b.inflate = LayerInflate
		return b
	case atlas.LeftArm:
		return boxSpec{pos: mgl32.Vec3{4, 12, -2}, size: mgl32.Vec3{armW, 12, 4}}
	case atlas.LeftArmLayer:
		b := partBox(atlas.LeftArm, slim)
		b.inflate = LayerInflate
		return b
	case atlas.RightLeg:
		return boxSpec{pos: mgl32.Vec3{-4, 0, -2}, size: mgl32.Vec3{4, 12, 4}}
	case atlas.RightLegLayer:
		b := partBox(atlas.RightLeg, slim)
		b.inflate = LayerInflate
		return b
	case atlas.LeftLeg:
		return boxSpec{pos: mgl32.Vec3{0, 0, -2}, size: mgl32.Vec3{4, 12, 4}}
	case atlas.LeftLegLayer:
		b := partBox(atlas.LeftLeg, slim)
		b.inflate = LayerInflate
		return b
	case atlas.Cape:
		return boxSpec{pos: mgl32.Vec3{-5, 8, 2}, size: mgl32.Vec3{10, 16, 1}, source: SourceCape}
	case atlas.RightEar:
		return boxSpec{pos: mgl32.Vec3{-9, 30, -0.5}, size: mgl32.Vec3{6, 6, 1}}
	case atlas.LeftEar:
		return boxSpec{pos: mgl32.Vec3{3, 30, -0.5}, size: mgl32.Vec3{6, 6, 1}}
	}
	return boxSpec{}
}

// boxFace emits the quad of one cuboid face with corners in TL, TR, BR,
// BL order as seen looking at that face from outside, and the matching
// UV pixel quad of its texture region.
func boxFace(min, max mgl32.Vec3, dir atlas.FaceDirection, region atlas.FaceUV) Face {
	var v [4]mgl32.Vec3
	var n mgl32.Vec3

	switch dir {
	case atlas.North: // front, -Z
		v = [4]mgl32.Vec3{
			{min.X(), max.Y(), min.Z()},
			{max.X(), max.Y(), min.Z()},
			{max.X(), min.Y(), min.Z()},
			{min.X(), min.Y(), min.Z()},
		}
		n = mgl32.Vec3{0, 0, -1}
	case atlas.South: // back, +Z
		v = [4]mgl32.Vec3{
			{max.X(), max.Y(), max.Z()},
			{min.X(), max.Y(), max.Z()},
			{min.X(), min.Y(), max.Z()},
			{max.X(), min.Y(), max.Z()},
		}
		n = mgl32.Vec3{0, 0, 1}
	case atlas.East: // model right side, -X
		v = [4]mgl32.Vec3{
			{min.X(), max.Y(), max.Z()},
			{min.X(), max.Y(), min.Z()},
			{min.X(), min.Y(), min.Z()},
			{min.X(), min.Y(), max.Z()},
		}
		n = mgl32.Vec3{-1, 0, 0}
	case atlas.West: // model left side, +X
		v = [4]mgl32.Vec3{
			{max.X(), max.Y(), min.Z()},
			{max.X(), max.Y(), max.Z()},
			{max.X(), min.Y(), max.Z()},
			{max.X(), min.Y(), min.Z()},
		}
		n = mgl32.Vec3{1, 0, 0}
	case atlas.Up:
		v = [4]mgl32.Vec3{
			{min.X(), max.Y(), max.Z()},
			{max.X(), max.Y(), max.Z()},
			{max.X(), max.Y(), min.Z()},
			{min.X(), max.Y(), min.Z()},
		}
		n = mgl32.Vec3{0, 1, 0}
	case atlas.Down:
		v = [4]mgl32.Vec3{
			{min.X(), min.Y(), min.Z()},
			{max.X(), min.Y(), min.Z()},
			{max.X(), min.Y(), max.Z()},
			{min.X(), min.Y(), max.Z()},
		}
		n = mgl32.Vec3{0, -1, 0}
	}

	return Face{
		Dir:    dir,
		Verts:  v,
		UV:     regionQuad(region),
		Normal: n,
		Region: region,
	}
}

// regionQuad expands a texture region into a pixel-space UV quad in TL,
// TR, BR, BL order, honoring the mirror flags.
func regionQuad(region atlas.FaceUV) [4]mgl32.Vec2 {
	r := region.Rect
	x0, y0 := float32(r.X), float32(r.Y)
	x1, y1 := float32(r.X+r.W), float32(r.Y+r.H)

	if region.MirrorX {
		x0, x1 = x1, x0
	}
	if region.MirrorY {
		y0, y1 = y1, y0
	}
	return [4]mgl32.Vec2{{x0, y0}, {x1, y0}, {x1, y1}, {x0, y1}}
}
