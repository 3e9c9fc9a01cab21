package lottie

import "strconv"

// LayerType is the "ty" discriminator of a layer fragment.
type LayerType int

const (
	LayerTypePrecomposition   LayerType = 0
	LayerTypeSolid            LayerType = 1
	LayerTypeImage            LayerType = 2
	LayerTypeGroup            LayerType = 3
	LayerTypeShape            LayerType = 4
	LayerTypeText             LayerType = 5
	LayerTypeAudio            LayerType = 6
	LayerTypeVideoPlaceholder LayerType = 7
	LayerTypeImageSequence    LayerType = 8
	LayerTypeVideo            LayerType = 9
	LayerTypeImagePlaceholder LayerType = 10
	LayerTypeGuide            LayerType = 11
	LayerTypeAdjustment       LayerType = 12
	LayerTypeCamera           LayerType = 13
	LayerTypeLight            LayerType = 14
)

var layerTypeNames = [...]string{
	"precomposition", "solid", "image", "group", "shape", "text", "audio",
	"video-placeholder", "image-sequence", "video", "image-placeholder",
	"guide", "adjustment", "camera", "light",
}

func (t LayerType) String() string {
	if t >= 0 && int(t) < len(layerTypeNames) {
		return layerTypeNames[t]
	}
	return "LayerType(" + strconv.Itoa(int(t)) + ")"
}

// ParseLayerType maps a name produced by LayerType.String back to its value.
func ParseLayerType(s string) (LayerType, bool) {
	for i, name := range layerTypeNames {
		if name == s {
			return LayerType(i), true
		}
	}
	return 0, false
}

// BlendMode is the "bm" value of a layer.
type BlendMode int

const (
	BlendModeNormal BlendMode = iota
	BlendModeMultiply
	BlendModeScreen
	BlendModeOverlay
	BlendModeDarken
	BlendModeLighten
	BlendModeColorDodge
	BlendModeColorBurn
	BlendModeHardLight
	BlendModeSoftLight
	BlendModeDifference
	BlendModeExclusion
	BlendModeHue
	BlendModeSaturation
	BlendModeColor
	BlendModeLuminosity
)

var blendModeNames = [...]string{
	"normal", "multiply", "screen", "overlay", "darken", "lighten",
	"color-dodge", "color-burn", "hard-light", "soft-light", "difference",
	"exclusion", "hue", "saturation", "color", "luminosity",
}

func (m BlendMode) String() string {
	if m >= 0 && int(m) < len(blendModeNames) {
		return blendModeNames[m]
	}
	return "BlendMode(" + strconv.Itoa(int(m)) + ")"
}

// MatteMode is the "tt" value of a layer.
type MatteMode int

const (
	MatteModeNormal MatteMode = iota
	MatteModeAlpha
	MatteModeInvertedAlpha
	MatteModeLuma
	MatteModeInvertedLuma
)

var matteModeNames = [...]string{"normal", "alpha", "inverted-alpha", "luma", "inverted-luma"}

func (m MatteMode) String() string {
	if m >= 0 && int(m) < len(matteModeNames) {
		return matteModeNames[m]
	}
	return "MatteMode(" + strconv.Itoa(int(m)) + ")"
}
