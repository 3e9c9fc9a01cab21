package lottie

import (
	"math"
	"strconv"
	"strings"

	"gitlab.com/tozd/go/errors"
)

// ErrInvalidColor is returned for color strings ParseColor cannot read.
var ErrInvalidColor = errors.New("invalid color")

// Color is a normalized RGBA color, each channel in [0, 1].
type Color struct {
	R, G, B, A float64
}

// ParseColor reads a hex color with an optional leading "#". Besides the
// usual "rgb", "rgba", "rrggbb" and "rrggbbaa" forms it accepts the shorthand
// used by renderer bridges:
//
//	g       gray, opaque
//	ga      gray with alpha
//	rgbaa   short color with a two digit alpha
//	rrggbba long color with a one digit alpha
func ParseColor(s string) (Color, error) {
	h := strings.TrimPrefix(strings.TrimSpace(s), "#")
	switch len(h) {
	case 1:
		h = strings.Repeat(h, 6) + "ff"
	case 2:
		h = strings.Repeat(h[:1], 6) + h[1:] + h[1:]
	case 3:
		h = double(h) + "ff"
	case 4:
		h = double(h)
	case 5:
		h = double(h[:3]) + h[3:]
	case 6:
		h += "ff"
	case 7:
		h += h[6:]
	case 8:
	default:
		return Color{}, errors.Errorf("%w: %q", ErrInvalidColor, s)
	}

	var ch [4]float64
	for i := range ch {
		v, err := strconv.ParseUint(h[i*2:i*2+2], 16, 8)
		if err != nil {
			return Color{}, errors.Errorf("%w: %q", ErrInvalidColor, s)
		}
		ch[i] = float64(v) / 255
	}
	return Color{R: ch[0], G: ch[1], B: ch[2], A: ch[3]}, nil
}

func double(s string) string {
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		b.WriteByte(s[i])
		b.WriteByte(s[i])
	}
	return b.String()
}

// RGB returns the color as the three element array Lottie stores for fill,
// stroke and font colors.
func (c Color) RGB() [3]float64 {
	return [3]float64{c.R, c.G, c.B}
}

// Hex formats the color as "#rrggbb", or "#rrggbbaa" when it is not opaque.
func (c Color) Hex() string {
	var b strings.Builder
	b.WriteByte('#')
	ch := []float64{c.R, c.G, c.B}
	if c.A < 1 {
		ch = append(ch, c.A)
	}
	for _, v := range ch {
		n := int(math.Round(math.Max(0, math.Min(1, v)) * 255))
		if n < 16 {
			b.WriteByte('0')
		}
		b.WriteString(strconv.FormatInt(int64(n), 16))
	}
	return b.String()
}

// lottieColor converts a hex color to a document RGB array. Unreadable input
// yields black.
func lottieColor(hex string) []any {
	c, err := ParseColor(hex)
	if err != nil {
		return numbers(0, 0, 0)
	}
	return numbers(c.R, c.G, c.B)
}
