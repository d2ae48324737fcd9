package colour

import (
	"math"
	"strconv"
	"strings"
)

// SAPC constants. The channel weights deliberately differ from the WCAG
// luminance coefficients in Luminance; do not share them.
const (
	sapcTRC = 2.218 // single-exponent linearisation, matches piecewise sRGB at #777

	sapcRco = 0.2126
	sapcGco = 0.7156
	sapcBco = 0.0722

	sapcScaleBoW = 161.8 // dark text on light
	sapcScaleWoB = 161.8 // light text on dark

	sapcNormBGExp  = 0.38
	sapcNormTxtExp = 0.43
	sapcRevBGExp   = 0.5
	sapcRevTxtExp  = 0.43

	sapcBlackThreshold = 0.02
	sapcBlackClamp     = 1.33

	// Results closer to zero than this are reported as 0%.
	sapcNoiseFloor = 15.0
)

// Polarity describes which side of a pair is lighter.
type Polarity int

const (
	// PolarityNormal is dark text on a light background.
	PolarityNormal Polarity = iota
	// PolarityReverse is light text on a dark background.
	PolarityReverse
)

// String returns the polarity name.
func (p Polarity) String() string {
	if p == PolarityReverse {
		return "reverse"
	}
	return "normal"
}

// SAPC is the result of the experimental perceptual contrast metric. Value is
// a signed percentage: positive for normal polarity, negative for reverse.
type SAPC struct {
	Value    float64
	Polarity Polarity
	// Clamped is set when |Value| fell below the noise floor; the display
	// string is then "0%".
	Clamped bool
}

// String formats the result to three significant digits with a trailing '%'.
func (s SAPC) String() string {
	if s.Clamped {
		return "0%"
	}
	return FormatPrecision3(s.Value) + "%"
}

// MarshalText implements encoding.TextMarshaler using the display string.
func (s SAPC) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// PerceptualContrast computes SAPC contrast for text over a background, both
// given as 8-bit sRGB channels. Swapping the arguments changes both sign and
// magnitude.
func PerceptualContrast(bgR, bgG, bgB, txtR, txtG, txtB uint8) SAPC {
	ybg := sapcY(bgR, bgG, bgB)
	ytxt := sapcY(txtR, txtG, txtB)

	if ybg > ytxt {
		ytxt = softClampBlack(ytxt)
		v := (math.Pow(ybg, sapcNormBGExp) - math.Pow(ytxt, sapcNormTxtExp)) * sapcScaleBoW
		return SAPC{Value: v, Polarity: PolarityNormal, Clamped: v < sapcNoiseFloor}
	}

	ybg = softClampBlack(ybg)
	v := (math.Pow(ybg, sapcRevBGExp) - math.Pow(ytxt, sapcRevTxtExp)) * sapcScaleWoB
	return SAPC{Value: v, Polarity: PolarityReverse, Clamped: v > -sapcNoiseFloor}
}

// PerceptualContrastRGBA is PerceptualContrast for opaque RGBA values.
func PerceptualContrastRGBA(bg, txt RGBA) SAPC {
	return PerceptualContrast(bg.R, bg.G, bg.B, txt.R, txt.G, txt.B)
}

func sapcY(r, g, b uint8) float64 {
	lin := func(v uint8) float64 {
		return math.Pow(float64(v)/255.0, sapcTRC)
	}
	return lin(r)*sapcRco + lin(g)*sapcGco + lin(b)*sapcBco
}

func softClampBlack(y float64) float64 {
	if y > sapcBlackThreshold {
		return y
	}
	return y + math.Pow(math.Abs(y-sapcBlackThreshold), sapcBlackClamp)
}

// FormatPrecision3 formats v with three significant digits the way
// ECMAScript's Number.prototype.toPrecision(3) does: fixed notation while the
// exponent is between -7 and 2, exponential notation ("1.23e+3") otherwise.
// Exact ties round away from zero.
func FormatPrecision3(v float64) string {
	switch {
	case math.IsNaN(v):
		return "NaN"
	case math.IsInf(v, 1):
		return "Infinity"
	case math.IsInf(v, -1):
		return "-Infinity"
	case v == 0:
		return "0.00"
	}

	// strconv breaks exact ties to even; toPrecision picks the larger
	// magnitude.
	if halfwayAt3(v) {
		v = math.Nextafter(v, math.Copysign(math.Inf(1), v))
	}

	// Round to three significant digits first so the exponent reflects carries
	// such as 99.96 -> 100.
	e := strconv.FormatFloat(v, 'e', 2, 64)
	mantissa, expPart, _ := strings.Cut(e, "e")
	exp, _ := strconv.Atoi(expPart)

	if exp < -6 || exp >= 3 {
		sign := "+"
		if exp < 0 {
			sign = "-"
			exp = -exp
		}
		return mantissa + "e" + sign + strconv.Itoa(exp)
	}
	return strconv.FormatFloat(v, 'f', 2-exp, 64)
}

// halfwayAt3 reports whether v lies exactly halfway between two
// three-significant-digit values. Thirty digits cover the exact expansion far
// enough: a float64 that is not a tie differs from one within 17 digits.
func halfwayAt3(v float64) bool {
	digits, _, _ := strings.Cut(strconv.FormatFloat(math.Abs(v), 'e', 30, 64), "e")
	digits = strings.Replace(digits, ".", "", 1)
	return digits[3] == '5' && strings.TrimRight(digits[4:], "0") == ""
}
