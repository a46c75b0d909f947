package skin

import "mc-skin-mesher/internal/atlas"

// slimProbes are base-scale pixels inside the front rectangle column that
// only a classic (4px-wide) right arm occupies. Slim skins leave the
// column transparent.
var slimProbes = [...][2]int{
	{47, 20},
	{47, 26},
	{47, 31},
}

// InferVariant decides the model variant from the image alone: the layout
// height picks legacy vs. extended, and an alpha probe on the
// classic-only arm column picks slim vs. classic. Legacy skins predate
// slim arms and are always classic.
func (s *Skin) InferVariant() atlas.ModelVariant {
	v := atlas.ModelVariant{Legacy: s.Legacy}
	if s.Legacy {
		return v
	}

	for _, p := range slimProbes {
		if s.Texel(p[0], p[1]).A != 0 {
			return v
		}
	}
	v.Slim = true
	return v
}

// ResolveVariant validates or infers the variant for this skin. A
// declared variant wins, except that its legacy flag must agree with the
// actual image layout.
func (s *Skin) ResolveVariant(declared *atlas.ModelVariant) (atlas.ModelVariant, error) {
	if declared == nil {
		return s.InferVariant(), nil
	}
	v := *declared
	v.Legacy = s.Legacy
	if !atlas.Supported(v) {
		_, err := atlas.Parts(v)
		return atlas.ModelVariant{}, err
	}
	return v, nil
}
