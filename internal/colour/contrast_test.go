package colour

import (
	"math"
	"testing"
)

func almostEqual(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

func TestLuminance(t *testing.T) {
	tests := []struct {
		name string
		c    RGBA
		want float64
	}{
		{name: "black", c: Black, want: 0},
		{name: "white", c: White, want: 1},
		{name: "default text", c: MustParse("#002244"), want: 0.015614},
		{name: "default control", c: MustParse("#0094F0"), want: 0.274711},
		{name: "default background", c: MustParse("#EEF9FF"), want: 0.931485},
		{name: "mid grey", c: MustParse("#777777"), want: 0.184475},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Luminance(tt.c); !almostEqual(got, tt.want, 1e-5) {
				t.Errorf("Luminance() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestLuminanceMonotonic(t *testing.T) {
	base := []RGBA{Black, White, MustParse("#336699"), MustParse("#a0b0c0")}

	for _, c := range base {
		for ch := 0; ch < 3; ch++ {
			prev := -1.0
			for v := 0; v <= 255; v++ {
				probe := c
				switch ch {
				case 0:
					probe.R = uint8(v)
				case 1:
					probe.G = uint8(v)
				case 2:
					probe.B = uint8(v)
				}
				l := Luminance(probe)
				if l < prev {
					t.Fatalf("luminance decreased for %v channel %d at %d: %v < %v", c, ch, v, l, prev)
				}
				prev = l
			}
		}
	}
}

func TestLuminanceOver(t *testing.T) {
	halfBlack := RGBA{A: 0.5}

	if got := LuminanceOver(halfBlack, White); !almostEqual(got, Luminance(RGBA{R: 128, G: 128, B: 128, A: 1}), 1e-12) {
		t.Errorf("LuminanceOver(half black, white) = %v", got)
	}
	if got := LuminanceOver(halfBlack, Black); got != 0 {
		t.Errorf("LuminanceOver(half black, black) = %v, want 0", got)
	}
	if got := RoundedLuminance(halfBlack, White); got != 0.22 {
		t.Errorf("RoundedLuminance(half black, white) = %v, want 0.22", got)
	}

	opaque := MustParse("#0094F0")
	if LuminanceOver(opaque, Black) != Luminance(opaque) {
		t.Error("opaque colour should ignore the backdrop")
	}
}

func TestContrastRatio(t *testing.T) {
	text := MustParse("#002244")
	control := MustParse("#0094F0")
	background := MustParse("#EEF9FF")

	tests := []struct {
		name string
		a, b RGBA
		want float64
	}{
		{name: "black on white", a: Black, b: White, want: 21},
		{name: "text on control", a: text, b: control, want: 4.948796},
		{name: "control on background", a: control, b: background, want: 3.022644},
		{name: "text on background", a: text, b: background, want: 14.958447},
		{name: "grey 767676 on white", a: MustParse("#767676"), b: White, want: 4.542225},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ContrastRatio(tt.a, tt.b); !almostEqual(got, tt.want, 1e-5) {
				t.Errorf("ContrastRatio() = %v, want %v", got, tt.want)
			}
			if got := ContrastRatio(tt.b, tt.a); !almostEqual(got, tt.want, 1e-5) {
				t.Errorf("ContrastRatio() reversed = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestContrastRatioIdentity(t *testing.T) {
	for _, s := range []string{"#000", "#fff", "#ff0000", "#002244", "#777777"} {
		c := MustParse(s)
		if got := ContrastRatio(c, c); got != 1 {
			t.Errorf("ContrastRatio(%s, %s) = %v, want 1", s, s, got)
		}
	}
}

func TestRoundedContrast(t *testing.T) {
	text := MustParse("#002244")
	control := MustParse("#0094F0")
	background := MustParse("#EEF9FF")

	if got := RoundedContrast(text, Flatten(control, background)); got != 4.95 {
		t.Errorf("text on opaque control = %v, want 4.95", got)
	}

	// An opaque control flattens to itself, so the result is the same as
	// comparing against the control directly.
	if got, want := RoundedContrast(text, Flatten(control, background)), RoundTo(ContrastRatio(text, control), 2); got != want {
		t.Errorf("flattened opaque control = %v, want %v", got, want)
	}

	translucent := control.WithAlpha(0.5)
	if got := RoundedContrast(text, Flatten(translucent, background)); got != 8.62 {
		t.Errorf("text on half-transparent control = %v, want 8.62", got)
	}

	// Translucent text is flattened onto its background first.
	if got := RoundedContrast(RGBA{A: 0.5}, White); got != 3.95 {
		t.Errorf("half black on white = %v, want 3.95", got)
	}
}

func TestRoundTo(t *testing.T) {
	tests := []struct {
		v        float64
		decimals int
		want     float64
	}{
		{v: 4.948796, decimals: 2, want: 4.95},
		{v: 1.005, decimals: 0, want: 1},
		{v: 2.5, decimals: 0, want: 3},
		{v: 0.015614, decimals: 2, want: 0.02},
		{v: 21.000000000000004, decimals: 2, want: 21},
	}

	for _, tt := range tests {
		if got := RoundTo(tt.v, tt.decimals); got != tt.want {
			t.Errorf("RoundTo(%v, %d) = %v, want %v", tt.v, tt.decimals, got, tt.want)
		}
	}
}
