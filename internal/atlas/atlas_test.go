package atlas

import (
	"errors"
	"testing"
)

func TestValidate(t *testing.T) {
	if err := Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
}

func TestSupported(t *testing.T) {
	tests := []struct {
		variant ModelVariant
		want    bool
	}{
		{ModelVariant{}, true},
		{ModelVariant{Slim: true}, true},
		{ModelVariant{Legacy: true}, true},
		{ModelVariant{Legacy: true, Slim: true}, false},
		{ModelVariant{Slim: true, Ears: true, Cape: true, NoHat: true}, true},
	}

	for _, tt := range tests {
		if got := Supported(tt.variant); got != tt.want {
			t.Errorf("Supported(%s) = %v, want %v", tt.variant, got, tt.want)
		}
	}
}

func TestPartsCount(t *testing.T) {
	tests := []struct {
		variant ModelVariant
		count   int
	}{
		{ModelVariant{}, 12},
		{ModelVariant{Slim: true}, 12},
		{ModelVariant{NoHat: true}, 11},
		{ModelVariant{Legacy: true}, 7},
		{ModelVariant{Legacy: true, NoHat: true}, 6},
		{ModelVariant{Cape: true, Ears: true}, 15},
	}

	for _, tt := range tests {
		parts, err := Parts(tt.variant)
		if err != nil {
			t.Errorf("Parts(%s): %v", tt.variant, err)
			continue
		}
		if len(parts) != tt.count {
			t.Errorf("Parts(%s) = %d parts, want %d", tt.variant, len(parts), tt.count)
		}
	}
}

func TestPartsUnknownVariant(t *testing.T) {
	_, err := Parts(ModelVariant{Legacy: true, Slim: true})
	if !errors.Is(err, ErrUnknownVariant) {
		t.Fatalf("Parts(legacy+slim) = %v, want ErrUnknownVariant", err)
	}
}

func TestHeadRects(t *testing.T) {
	tests := []struct {
		dir     FaceDirection
		rect    Rect
		mirrorX bool
	}{
		{North, Rect{8, 8, 8, 8}, false},
		{South, Rect{24, 8, 8, 8}, false},
		{East, Rect{0, 8, 8, 8}, false},
		{West, Rect{16, 8, 8, 8}, false},
		{Up, Rect{8, 0, 8, 8}, false},
		{Down, Rect{16, 0, 8, 8}, true},
	}

	for _, tt := range tests {
		fu, err := Lookup(ModelVariant{}, Head, tt.dir)
		if err != nil {
			t.Fatalf("Lookup(head, %s): %v", tt.dir, err)
		}
		if fu.Rect != tt.rect {
			t.Errorf("head %s rect = %v, want %v", tt.dir, fu.Rect, tt.rect)
		}
		if fu.MirrorX != tt.mirrorX {
			t.Errorf("head %s mirrorX = %v, want %v", tt.dir, fu.MirrorX, tt.mirrorX)
		}
	}
}

func TestArmWidth(t *testing.T) {
	classic, err := Lookup(ModelVariant{}, RightArm, North)
	if err != nil {
		t.Fatal(err)
	}
	slim, err := Lookup(ModelVariant{Slim: true}, RightArm, North)
	if err != nil {
		t.Fatal(err)
	}

	if classic.Rect.W != 4 {
		t.Errorf("classic right arm width = %d, want 4", classic.Rect.W)
	}
	if slim.Rect.W != 3 {
		t.Errorf("slim right arm width = %d, want 3", slim.Rect.W)
	}
	if classic.Rect.X != slim.Rect.X || classic.Rect.Y != slim.Rect.Y {
		t.Errorf("slim arm origin %v moved from classic %v", slim.Rect, classic.Rect)
	}
}

// Legacy skins have no left-limb regions; the left limbs reuse the
// right-limb regions mirrored, with east and west swapped.
func TestLegacyLeftLimbMirror(t *testing.T) {
	legacy := ModelVariant{Legacy: true}

	l, err := Lookup(legacy, LeftArm, North)
	if err != nil {
		t.Fatal(err)
	}
	r, err := Lookup(legacy, RightArm, North)
	if err != nil {
		t.Fatal(err)
	}
	if l.Rect != r.Rect {
		t.Errorf("legacy left arm north rect = %v, want right arm's %v", l.Rect, r.Rect)
	}
	if l.MirrorX == r.MirrorX {
		t.Error("legacy left arm north should be mirrored relative to right arm")
	}

	le, err := Lookup(legacy, LeftLeg, East)
	if err != nil {
		t.Fatal(err)
	}
	rw, err := Lookup(legacy, RightLeg, West)
	if err != nil {
		t.Fatal(err)
	}
	if le.Rect != rw.Rect {
		t.Errorf("legacy left leg east rect = %v, want right leg west's %v", le.Rect, rw.Rect)
	}
}

func TestLookupMissingEntry(t *testing.T) {
	tests := []struct {
		variant ModelVariant
		part    PartName
	}{
		{ModelVariant{NoHat: true}, HeadLayer},
		{ModelVariant{Legacy: true}, BodyLayer},
		{ModelVariant{}, Cape},
		{ModelVariant{}, RightEar},
	}

	for _, tt := range tests {
		_, err := Lookup(tt.variant, tt.part, North)
		if !errors.Is(err, ErrMissingAtlasEntry) {
			t.Errorf("Lookup(%s, %s) = %v, want ErrMissingAtlasEntry", tt.variant, tt.part, err)
		}
	}
}

func TestTextureSize(t *testing.T) {
	if w, h := TextureSize(ModelVariant{}); w != 64 || h != 64 {
		t.Errorf("extended size = %dx%d, want 64x64", w, h)
	}
	if w, h := TextureSize(ModelVariant{Legacy: true}); w != 64 || h != 32 {
		t.Errorf("legacy size = %dx%d, want 64x32", w, h)
	}
}

func TestBaseOf(t *testing.T) {
	if base, ok := RightArmLayer.BaseOf(); !ok || base != RightArm {
		t.Errorf("BaseOf(right_arm_layer) = %s, %v", base, ok)
	}
	if _, ok := Head.BaseOf(); ok {
		t.Error("BaseOf(head) should report ok=false")
	}
	if _, ok := Cape.BaseOf(); ok {
		t.Error("BaseOf(cape) should report ok=false")
	}
}
