package tape

import (
	"math/rand/v2"
)

// Fallback is the tape color used when an artwork's image cannot be
// fetched or decoded. A desaturated pink that sits well on both wall
// appearances.
const Fallback = "#dfa8b5"

// Palette holds the tape colors drawn for samples with no usable hue.
var Palette = []string{
	"#f2797b", // coral
	"#f2a25c", // apricot
	"#e8c547", // mustard
	"#7fb685", // sage
	"#6ea4bf", // dusty blue
	"#b07fb6", // lilac
}

// Sample acceptance gates and tape output range. A sample below
// minSaturation or outside the lightness window has no hue worth
// keeping; accepted hues are pushed into a narrow saturated pastel
// band so every strip reads as tape rather than paint.
const (
	minSaturation = 0.18
	minLightness  = 0.12
	maxLightness  = 0.88

	tapeSaturation  = 0.70
	tapeLightnessLo = 0.55
	tapeLightnessHi = 0.75
)

// Derive turns a sampled pixel color into a washi tape color.
// Saturated mid-tone samples keep their hue; washed-out, near-black,
// and near-white samples draw a random [Palette] entry instead.
func Derive(sample Color, rng *rand.Rand) string {
	return DeriveFrom(sample, rng, Palette)
}

// DeriveFrom is Derive with a custom palette for the no-hue draw. An
// empty palette falls back to [Palette].
func DeriveFrom(sample Color, rng *rand.Rand, palette []string) string {
	if len(palette) == 0 {
		palette = Palette
	}

	h, s, l := sample.hsl()
	if s < minSaturation || l < minLightness || l > maxLightness {
		return palette[rng.IntN(len(palette))]
	}

	s = max(s, tapeSaturation)
	l = min(max(l, tapeLightnessLo), tapeLightnessHi)
	return fromHSL(h, s, l).Hex()
}
