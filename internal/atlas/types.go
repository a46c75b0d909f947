// Package atlas describes the fixed UV layout of humanoid skin textures.
// It maps (part, face direction) pairs to pixel rectangles on the source
// image for every supported model variant. Pure lookup, no side effects.
package atlas

import "fmt"

// FaceDirection identifies one of the six faces of a cuboid part.
// North is the front of the model (-Z), Up is +Y.
type FaceDirection uint8

const (
	North FaceDirection = iota
	South
	East
	West
	Up
	Down

	faceDirectionCount
)

// Directions lists all face directions in canonical emission order.
var Directions = [6]FaceDirection{North, South, East, West, Up, Down}

func (d FaceDirection) String() string {
	switch d {
	case North:
		return "north"
	case South:
		return "south"
	case East:
		return "east"
	case West:
		return "west"
	case Up:
		return "up"
	case Down:
		return "down"
	}
	return fmt.Sprintf("direction(%d)", uint8(d))
}

// PartName identifies a body part of the humanoid model. Layer parts are
// the inflated overlay shells of their base part (hat, jacket, sleeves,
// pants). Cape and ears only exist when the variant enables them.
type PartName uint8

const (
	Head PartName = iota
	Body
	RightArm
	LeftArm
	RightLeg
	LeftLeg
	HeadLayer
	BodyLayer
	RightArmLayer
	LeftArmLayer
	RightLegLayer
	LeftLegLayer
	Cape
	RightEar
	LeftEar

	partNameCount
)

func (p PartName) String() string {
	switch p {
	case Head:
		return "head"
	case Body:
		return "body"
	case RightArm:
		return "right_arm"
	case LeftArm:
		return "left_arm"
	case RightLeg:
		return "right_leg"
	case LeftLeg:
		return "left_leg"
	case HeadLayer:
		return "head_layer"
	case BodyLayer:
		return "body_layer"
	case RightArmLayer:
		return "right_arm_layer"
	case LeftArmLayer:
		return "left_arm_layer"
	case RightLegLayer:
		return "right_leg_layer"
	case LeftLegLayer:
		return "left_leg_layer"
	case Cape:
		return "cape"
	case RightEar:
		return "right_ear"
	case LeftEar:
		return "left_ear"
	}
	return fmt.Sprintf("part(%d)", uint8(p))
}

// IsLayer reports whether p is an overlay shell of another part.
func (p PartName) IsLayer() bool {
	switch p {
	case HeadLayer, BodyLayer, RightArmLayer, LeftArmLayer, RightLegLayer, LeftLegLayer:
		return true
	}
	return false
}

// BaseOf returns the base part a layer encloses. ok is false for
// non-layer parts.
func (p PartName) BaseOf() (base PartName, ok bool) {
	switch p {
	case HeadLayer:
		return Head, true
	case BodyLayer:
		return Body, true
	case RightArmLayer:
		return RightArm, true
	case LeftArmLayer:
		return LeftArm, true
	case RightLegLayer:
		return RightLeg, true
	case LeftLegLayer:
		return LeftLeg, true
	}
	return p, false
}

// ModelVariant selects which parts exist and which UV rectangles apply.
// The zero value is the modern classic model with overlay layers.
type ModelVariant struct {
	Slim   bool // 3px-wide arms (Alex) instead of 4px (Steve)
	Legacy bool // 64×32 layout: mirrored left limbs, hat is the only layer
	Ears   bool // deadmau5-style ear plates on the head
	Cape   bool // cape part backed by a separate 64×32 texture
	NoHat  bool // suppress the hat layer even where the layout has one
}

func (v ModelVariant) String() string {
	model := "classic"
	if v.Slim {
		model = "slim"
	}
	height := "extended"
	if v.Legacy {
		height = "legacy"
	}
	s := model + "/" + height
	if v.Ears {
		s += "+ears"
	}
	if v.Cape {
		s += "+cape"
	}
	return s
}

// Rect is a pixel rectangle on the source texture, in 64-wide base scale.
// High-resolution skins multiply every coordinate by width/64.
type Rect struct {
	X, Y, W, H int
}

// FaceUV is the texture region of one part face. MirrorX flips the sample
// direction horizontally; legacy left limbs reuse the right-limb regions
// mirrored, and down faces are mirrored per the layout convention.
type FaceUV struct {
	Rect    Rect
	MirrorX bool
	MirrorY bool
}

// Mirrored returns fu with the horizontal mirror flag toggled.
func (fu FaceUV) Mirrored() FaceUV {
	fu.MirrorX = !fu.MirrorX
	return fu
}
