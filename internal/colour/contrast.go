package colour

import (
	"math"
)

// Display precision for luminance and contrast readouts.
const displayDecimals = 2

// Luminance calculates the relative luminance of an opaque colour according to
// WCAG 2.x. Returns a value between 0 (darkest) and 1 (lightest). Alpha is
// ignored; use LuminanceOver for translucent colours.
// https://www.w3.org/TR/WCAG21/#dfn-relative-luminance.
func Luminance(c RGBA) float64 {
	r := gammaCorrect(float64(c.R) / 255.0)
	g := gammaCorrect(float64(c.G) / 255.0)
	b := gammaCorrect(float64(c.B) / 255.0)

	return 0.2126*r + 0.7152*g + 0.0722*b
}

// gammaCorrect linearises a gamma-encoded sRGB channel in [0, 1].
func gammaCorrect(v float64) float64 {
	if v <= 0.03928 {
		return v / 12.92
	}
	return math.Pow((v+0.055)/1.055, 2.4)
}

// LuminanceOver returns the luminance of c as seen over backdrop. The colour
// is flattened first whenever it is translucent.
func LuminanceOver(c, backdrop RGBA) float64 {
	if !c.Opaque() {
		c = Flatten(c, Flatten(backdrop, White))
	}
	return Luminance(c)
}

// RoundedLuminance is LuminanceOver rounded for display.
func RoundedLuminance(c, backdrop RGBA) float64 {
	return RoundTo(LuminanceOver(c, backdrop), displayDecimals)
}

// ContrastRatio calculates the contrast ratio between two opaque colours
// according to WCAG 2.x. Returns a value between 1 and 21. Argument order does
// not matter.
// https://www.w3.org/TR/WCAG21/#dfn-contrast-ratio.
func ContrastRatio(c1, c2 RGBA) float64 {
	l1 := Luminance(c1)
	l2 := Luminance(c2)

	// Ensure l1 is the lighter colour.
	if l1 < l2 {
		l1, l2 = l2, l1
	}

	return (l1 + 0.05) / (l2 + 0.05)
}

// RoundedContrast flattens fg over bg and returns their contrast ratio rounded
// for display. bg must already be opaque.
func RoundedContrast(fg, bg RGBA) float64 {
	return RoundTo(ContrastRatio(Flatten(fg, bg), bg), displayDecimals)
}

// RoundTo rounds v half away from zero to the given number of decimals.
func RoundTo(v float64, decimals int) float64 {
	p := math.Pow(10, float64(decimals))
	return math.Round(v*p) / p
}
