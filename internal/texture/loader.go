// Package texture loads skin and cape image files from disk and caches
// the validated results for batch runs.
package texture

import (
	"bytes"
	"fmt"
	"image"
	_ "image/png"
	"os"

	_ "github.com/ftrvxmtrx/tga"

	"mc-skin-mesher/internal/skin"
)

// LoadSkin reads and decodes a skin image file (PNG or TGA) and runs it
// through intake validation.
func LoadSkin(path string) (*skin.Skin, error) {
	img, err := decodeFile(path)
	if err != nil {
		return nil, err
	}
	s, err := skin.Intake(img)
	if err != nil {
		return nil, fmt.Errorf("texture: %s: %w", path, err)
	}
	return s, nil
}

// LoadImage reads and decodes an image file without layout validation.
// Used for cape textures, which the pipeline validates itself.
func LoadImage(path string) (image.Image, error) {
	return decodeFile(path)
}

func decodeFile(path string) (image.Image, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("texture: read %s: %w", path, err)
	}

	img, _, err := image.Decode(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("texture: decode %s: %w", path, err)
	}
	return img, nil
}
