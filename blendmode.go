package psd2x

import (
	"fmt"

	"github.com/signal-slot/mcp-psd2x/internal/blend"
)

// BlendMode identifies how a layer combines with the content beneath it.
//
// BlendPassThrough is meaningful only on folders: a pass-through folder
// does not composite as a unit, its children blend directly against the
// enclosing canvas. Every other mode maps to a per-pixel blend function.
type BlendMode int

const (
	// BlendPassThrough disables group isolation for a folder.
	BlendPassThrough BlendMode = iota
	// BlendNormal is standard source-over alpha compositing.
	BlendNormal
	// BlendMultiply multiplies the channels, always darkening.
	BlendMultiply
	// BlendScreen inverse-multiplies the channels, always lightening.
	BlendScreen
	// BlendOverlay multiplies dark areas and screens light ones.
	BlendOverlay
	// BlendDarken keeps the darker channel.
	BlendDarken
	// BlendLighten keeps the lighter channel.
	BlendLighten
	// BlendColorDodge brightens the backdrop to reflect the source.
	BlendColorDodge
	// BlendColorBurn darkens the backdrop to reflect the source.
	BlendColorBurn
	// BlendHardLight multiplies or screens depending on the source.
	BlendHardLight
	// BlendSoftLight is a soft, non-clipping variant of HardLight.
	BlendSoftLight
	// BlendDifference takes the absolute channel difference.
	BlendDifference
	// BlendExclusion is Difference with lower contrast.
	BlendExclusion
	// BlendHue keeps the source hue with backdrop saturation/luminosity.
	BlendHue
	// BlendSaturation keeps the source saturation.
	BlendSaturation
	// BlendColor keeps the source hue and saturation.
	BlendColor
	// BlendLuminosity keeps the source luminosity.
	BlendLuminosity

	blendModeCount
)

var blendModeNames = [blendModeCount]string{
	BlendPassThrough: "pass-through",
	BlendNormal:      "normal",
	BlendMultiply:    "multiply",
	BlendScreen:      "screen",
	BlendOverlay:     "overlay",
	BlendDarken:      "darken",
	BlendLighten:     "lighten",
	BlendColorDodge:  "color-dodge",
	BlendColorBurn:   "color-burn",
	BlendHardLight:   "hard-light",
	BlendSoftLight:   "soft-light",
	BlendDifference:  "difference",
	BlendExclusion:   "exclusion",
	BlendHue:         "hue",
	BlendSaturation:  "saturation",
	BlendColor:       "color",
	BlendLuminosity:  "luminosity",
}

// String returns the canonical lower-case name of the mode.
func (m BlendMode) String() string {
	if m < 0 || m >= blendModeCount {
		return fmt.Sprintf("BlendMode(%d)", int(m))
	}
	return blendModeNames[m]
}

// ParseBlendMode returns the mode with the given canonical name.
func ParseBlendMode(name string) (BlendMode, error) {
	for m, n := range blendModeNames {
		if n == name {
			return BlendMode(m), nil
		}
	}
	return 0, fmt.Errorf("psd2x: unknown blend mode %q", name)
}

// fn returns the pixel blend function for the mode.
//
// The enum is closed, so an unmapped value is a programming error; it
// panics rather than silently mis-blending. BlendPassThrough never
// reaches the pixel level (the compositor resolves it at the folder
// level) and panics for the same reason.
func (m BlendMode) fn() blend.Func {
	switch m {
	case BlendNormal:
		return blend.SourceOver
	case BlendMultiply:
		return blend.Multiply
	case BlendScreen:
		return blend.Screen
	case BlendOverlay:
		return blend.Overlay
	case BlendDarken:
		return blend.Darken
	case BlendLighten:
		return blend.Lighten
	case BlendColorDodge:
		return blend.ColorDodge
	case BlendColorBurn:
		return blend.ColorBurn
	case BlendHardLight:
		return blend.HardLight
	case BlendSoftLight:
		return blend.SoftLight
	case BlendDifference:
		return blend.Difference
	case BlendExclusion:
		return blend.Exclusion
	case BlendHue:
		return blend.Hue
	case BlendSaturation:
		return blend.Saturation
	case BlendColor:
		return blend.Color
	case BlendLuminosity:
		return blend.Luminosity
	default:
		panic(fmt.Sprintf("psd2x: blend mode %v has no pixel function", m))
	}
}
