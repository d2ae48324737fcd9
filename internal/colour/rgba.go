// Package colour provides the colour model and the contrast maths used to
// evaluate text, control and background combinations.
package colour

import (
	"fmt"
	"image/color"
	"math"
	"strconv"
	"strings"
)

// RGBA is an sRGB colour with 8-bit channels and a straight (non-premultiplied)
// alpha between 0 and 1. Values are immutable; every operation returns a copy.
type RGBA struct {
	R uint8   `json:"r"`
	G uint8   `json:"g"`
	B uint8   `json:"b"`
	A float64 `json:"a"`
}

var (
	// White is the opaque page canvas assumed behind every layer.
	White = RGBA{R: 255, G: 255, B: 255, A: 1}

	// Black is opaque black.
	Black = RGBA{A: 1}

	// DefaultBackdrop is the canvas translucent backgrounds are flattened onto.
	DefaultBackdrop = White
)

// NewRGBA returns a colour with alpha clamped to [0, 1]. A NaN alpha is
// treated as fully opaque.
func NewRGBA(r, g, b uint8, a float64) RGBA {
	return RGBA{R: r, G: g, B: b, A: clampAlpha(a)}
}

// FromColor converts any image/color value, un-premultiplying its alpha.
func FromColor(c color.Color) RGBA {
	r, g, b, a := c.RGBA()
	if a == 0 {
		return RGBA{}
	}
	// color.Color channels are alpha-premultiplied 16-bit values.
	unmul := func(v uint32) uint8 {
		return uint8(math.Round(float64(v) * 255 / float64(a)))
	}
	return RGBA{
		R: unmul(r),
		G: unmul(g),
		B: unmul(b),
		A: float64(a) / 0xffff,
	}
}

// RGBA implements color.Color.
func (c RGBA) RGBA() (r, g, b, a uint32) {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.alpha8()}.RGBA()
}

// Opaque reports whether the colour fully masks whatever is behind it.
func (c RGBA) Opaque() bool {
	return c.A >= 1
}

// WithAlpha returns a copy of c with the given alpha.
func (c RGBA) WithAlpha(a float64) RGBA {
	c.A = clampAlpha(a)
	return c
}

// Hex returns the colour as a lowercase 6-digit hex string (e.g., "#1a2b3c").
// Alpha is discarded.
func (c RGBA) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// HexNoHash returns Hex without the leading '#', as used in saved paths.
func (c RGBA) HexNoHash() string {
	return strings.TrimPrefix(c.Hex(), "#")
}

// CSSRGB returns the colour as "rgb(r,g,b)".
func (c RGBA) CSSRGB() string {
	return fmt.Sprintf("rgb(%d,%d,%d)", c.R, c.G, c.B)
}

// CSSRGBA returns the colour as "rgba(r,g,b,a)".
func (c RGBA) CSSRGBA() string {
	return fmt.Sprintf("rgba(%d,%d,%d,%s)", c.R, c.G, c.B, strconv.FormatFloat(c.A, 'f', -1, 64))
}

// String returns the CSS rgba() form.
func (c RGBA) String() string {
	return c.CSSRGBA()
}

// SameHex reports whether two colours share the same 6-digit hex, ignoring alpha.
func SameHex(a, b RGBA) bool {
	return a.R == b.R && a.G == b.G && a.B == b.B
}

func (c RGBA) alpha8() uint8 {
	return uint8(math.Round(clampAlpha(c.A) * 255))
}

func clampAlpha(a float64) float64 {
	switch {
	case math.IsNaN(a):
		return 1
	case a < 0:
		return 0
	case a > 1:
		return 1
	}
	return a
}

func clampChannel(v float64) uint8 {
	switch {
	case math.IsNaN(v), v <= 0:
		return 0
	case v >= 255:
		return 255
	}
	return uint8(math.Round(v))
}
