// Package colorspace converts colors between hex, RGB and HSL forms.
//
// The conversions are lenient: malformed hex input decodes to black and
// out-of-range channels or percentages are clamped instead of rejected.
// Callers that need to reject bad input should validate with ParseHex first.
package colorspace

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// ErrInvalidHex reports a string that is not six hex digits with an optional leading '#'.
var ErrInvalidHex = errors.New("invalid hex color")

var hexPattern = regexp.MustCompile(`^#?[0-9a-fA-F]{6}$`)

// RGB holds 8-bit channel values. Values outside [0,255] are clamped on encoding.
type RGB struct {
	R int
	G int
	B int
}

// String renders the color as a CSS rgb() expression.
func (c RGB) String() string {
	return fmt.Sprintf("rgb(%d, %d, %d)", c.R, c.G, c.B)
}

// HSL holds hue in degrees and saturation/lightness as percentages.
type HSL struct {
	H float64
	S float64
	L float64
}

// String renders the color as a CSS hsl() expression with rounded components.
// Hues that round up to 360 wrap to 0.
func (c HSL) String() string {
	hue := int(math.Round(c.H)) % 360
	return fmt.Sprintf("hsl(%d, %d%%, %d%%)", hue, int(math.Round(c.S)), int(math.Round(c.L)))
}

// ParseHex strictly decodes a "#RRGGBB" or "RRGGBB" string.
func ParseHex(hex string) (RGB, error) {
	if !hexPattern.MatchString(hex) {
		return RGB{}, fmt.Errorf("%w: %q", ErrInvalidHex, hex)
	}

	digits := strings.TrimPrefix(hex, "#")
	channels := [3]int{}
	for i := range channels {
		value, err := strconv.ParseUint(digits[i*2:i*2+2], 16, 8)
		if err != nil {
			return RGB{}, fmt.Errorf("%w: %q", ErrInvalidHex, hex)
		}
		channels[i] = int(value)
	}

	return RGB{R: channels[0], G: channels[1], B: channels[2]}, nil
}

// HexToRGB decodes a hex color, returning black for malformed input.
func HexToRGB(hex string) RGB {
	rgb, err := ParseHex(hex)
	if err != nil {
		return RGB{}
	}
	return rgb
}

// RGBToHex encodes a color as an upper-case "#RRGGBB" string.
func RGBToHex(c RGB) string {
	return fmt.Sprintf("#%02X%02X%02X", clampChannel(c.R), clampChannel(c.G), clampChannel(c.B))
}

// Canonical returns the upper-case, '#'-prefixed form of hex without validating it.
func Canonical(hex string) string {
	upper := strings.ToUpper(hex)
	if strings.HasPrefix(upper, "#") {
		return upper
	}
	return "#" + upper
}

// RGBToHSL converts an RGB color to HSL. Achromatic colors report hue and saturation 0.
func RGBToHSL(c RGB) HSL {
	r := float64(clampChannel(c.R)) / 255
	g := float64(clampChannel(c.G)) / 255
	b := float64(clampChannel(c.B)) / 255

	maxC := math.Max(r, math.Max(g, b))
	minC := math.Min(r, math.Min(g, b))
	l := (maxC + minC) / 2

	if maxC == minC {
		return HSL{H: 0, S: 0, L: l * 100}
	}

	d := maxC - minC
	var s float64
	if l > 0.5 {
		s = d / (2 - maxC - minC)
	} else {
		s = d / (maxC + minC)
	}

	var h float64
	switch maxC {
	case r:
		h = (g - b) / d
		if g < b {
			h += 6
		}
	case g:
		h = (b-r)/d + 2
	default:
		h = (r-g)/d + 4
	}

	return HSL{H: NormalizeHue(h / 6 * 360), S: s * 100, L: l * 100}
}

// HSLToRGB converts an HSL color to RGB, rounding each channel to the nearest integer.
//
// The hue selects one of six 60° sectors, each the half-open interval [n·60, (n+1)·60).
func HSLToRGB(c HSL) RGB {
	h := NormalizeHue(c.H)
	s := clampPercent(c.S) / 100
	l := clampPercent(c.L) / 100

	if s == 0 {
		v := toChannel(l)
		return RGB{R: v, G: v, B: v}
	}

	chroma := (1 - math.Abs(2*l-1)) * s
	sector := h / 60
	x := chroma * (1 - math.Abs(math.Mod(sector, 2)-1))
	m := l - chroma/2

	var r, g, b float64
	switch int(math.Floor(sector)) {
	case 0:
		r, g, b = chroma, x, 0
	case 1:
		r, g, b = x, chroma, 0
	case 2:
		r, g, b = 0, chroma, x
	case 3:
		r, g, b = 0, x, chroma
	case 4:
		r, g, b = x, 0, chroma
	default:
		r, g, b = chroma, 0, x
	}

	return RGB{R: toChannel(r + m), G: toChannel(g + m), B: toChannel(b + m)}
}

// NormalizeHue wraps degrees into [0,360). Non-finite input yields 0.
func NormalizeHue(degrees float64) float64 {
	if math.IsNaN(degrees) || math.IsInf(degrees, 0) {
		return 0
	}

	h := math.Mod(degrees, 360)
	if h < 0 {
		h += 360
	}
	// Adding 360 to a tiny negative remainder can round up to exactly 360.
	if h >= 360 {
		h -= 360
	}
	return h
}

// HexToHSL decodes a hex color straight to HSL.
func HexToHSL(hex string) HSL {
	return RGBToHSL(HexToRGB(hex))
}

// HSLToHex encodes an HSL color as "#RRGGBB".
func HSLToHex(c HSL) string {
	return RGBToHex(HSLToRGB(c))
}

func toChannel(v float64) int {
	return int(math.Round(v * 255))
}

func clampChannel(v int) int {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return v
}

func clampPercent(v float64) float64 {
	if math.IsNaN(v) || v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
