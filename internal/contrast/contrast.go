// Package contrast measures how readable colors are against each other.
package contrast

import (
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/alexisbeaulieu97/swatch/internal/colorspace"
)

const (
	// Black is the dark label colour offered for light swatches.
	Black = "#000000"
	// White is the light label colour offered for dark swatches.
	White = "#FFFFFF"
)

// toColorful decodes hex leniently, matching colorspace semantics.
func toColorful(hex string) colorful.Color {
	rgb := colorspace.HexToRGB(hex)
	return colorful.Color{
		R: float64(rgb.R) / 255,
		G: float64(rgb.G) / 255,
		B: float64(rgb.B) / 255,
	}
}

// RelativeLuminance returns the WCAG relative luminance of hex in [0,1].
func RelativeLuminance(hex string) float64 {
	r, g, b := toColorful(hex).LinearRgb()
	return 0.2126*r + 0.7152*g + 0.0722*b
}

// Ratio returns the WCAG contrast ratio between two colors, from 1 to 21.
func Ratio(a, b string) float64 {
	la := RelativeLuminance(a)
	lb := RelativeLuminance(b)
	lighter := math.Max(la, lb)
	darker := math.Min(la, lb)
	return (lighter + 0.05) / (darker + 0.05)
}

// TextColor picks black or white, whichever reads better on hex.
func TextColor(hex string) string {
	if Ratio(hex, Black) >= Ratio(hex, White) {
		return Black
	}
	return White
}

// Distance returns the CIEDE2000 perceptual distance between two colors.
func Distance(a, b string) float64 {
	return toColorful(a).DistanceCIEDE2000(toColorful(b))
}
