package colour

import (
	"math"
)

// WCAG 2.1 contrast thresholds. Each tier is inclusive at its lower bound.
const (
	// MinContrastAAA is the minimum ratio for AAA normal text.
	MinContrastAAA = 7.0
	// MinContrastAA is the minimum ratio for AA normal text.
	MinContrastAA = 4.5
	// MinContrastAALarge is the minimum ratio for AA large text
	// (> 24px, or > 18.5px bold) and for non-text UI components.
	MinContrastAALarge = 3.0
)

// Grade is a discrete WCAG 2.1 accessibility outcome.
type Grade int

const (
	GradeFail Grade = iota
	GradeAALarge
	GradeAA
	GradeAAA
)

// String returns the label shown next to a contrast readout.
func (g Grade) String() string {
	switch g {
	case GradeAALarge:
		return "AA Large"
	case GradeAA:
		return "AA"
	case GradeAAA:
		return "AAA"
	default:
		return "fail"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (g Grade) MarshalText() ([]byte, error) {
	return []byte(g.String()), nil
}

// Passes reports whether the grade is anything other than a failure.
func (g Grade) Passes() bool {
	return g != GradeFail
}

// Classify maps a WCAG contrast ratio to a grade. Non-text elements (controls,
// icons, borders) only have a single AA tier at 3:1.
// https://www.w3.org/WAI/WCAG21/Understanding/non-text-contrast.
func Classify(ratio float64, nonText bool) Grade {
	if math.IsNaN(ratio) {
		return GradeFail
	}
	if nonText {
		if ratio >= MinContrastAALarge {
			return GradeAA
		}
		return GradeFail
	}

	switch {
	case ratio >= MinContrastAAA:
		return GradeAAA
	case ratio >= MinContrastAA:
		return GradeAA
	case ratio >= MinContrastAALarge:
		return GradeAALarge
	default:
		return GradeFail
	}
}

// Indicator is the advisory colour-coded state of a SAPC readout. It is not a
// pass/fail grade: SAPC results depend on font size and weight.
type Indicator int

const (
	IndicatorLow Indicator = iota
	IndicatorOK
)

// Advisory SAPC magnitudes for the indicator.
const (
	sapcIndicatorText    = 70.0
	sapcIndicatorNonText = 65.0
)

// String returns the indicator name.
func (i Indicator) String() string {
	if i == IndicatorOK {
		return "ok"
	}
	return "low"
}

// MarshalText implements encoding.TextMarshaler.
func (i Indicator) MarshalText() ([]byte, error) {
	return []byte(i.String()), nil
}

// SAPCIndicator returns the advisory indicator for a SAPC result, using the
// magnitude so both polarities are treated alike.
func SAPCIndicator(s SAPC, nonText bool) Indicator {
	threshold := sapcIndicatorText
	if nonText {
		threshold = sapcIndicatorNonText
	}
	if !s.Clamped && math.Abs(s.Value) >= threshold {
		return IndicatorOK
	}
	return IndicatorLow
}
