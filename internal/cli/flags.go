package cli

import (
	"github.com/spf13/pflag"

	"github.com/jmylchreest/contrastcheck/internal/colour"
)

// colourValue is a pflag.Value holding a parsed colour.
type colourValue struct {
	value colour.RGBA
	set   bool
}

var _ pflag.Value = (*colourValue)(nil)

func newColourValue(def colour.RGBA) *colourValue {
	return &colourValue{value: def}
}

// String returns the current value in CSS rgba() form.
func (v *colourValue) String() string {
	if v == nil {
		return ""
	}
	if v.value.Opaque() {
		return v.value.Hex()
	}
	return v.value.CSSRGBA()
}

// Set parses s as a colour.
func (v *colourValue) Set(s string) error {
	c, err := colour.Parse(s)
	if err != nil {
		return err
	}
	v.value = c
	v.set = true
	return nil
}

// Type names the flag value in help output.
func (v *colourValue) Type() string {
	return "colour"
}

// Get returns the colour and whether it was set explicitly.
func (v *colourValue) Get() (colour.RGBA, bool) {
	return v.value, v.set
}
