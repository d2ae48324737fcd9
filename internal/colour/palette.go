package colour

import (
	"encoding/json"
	"slices"
)

// defaultPresets are offered to every picker when no seed colour is usable.
var defaultPresets = []string{"#002244", "#0094F0", "#EEF9FF"}

// DefaultPresets returns a copy of the fallback preset triple.
func DefaultPresets() []string {
	return slices.Clone(defaultPresets)
}

// Palette is an ordered set of preset colours, unique by hex.
type Palette struct {
	Colors []RGBA
}

// NewPalette builds a palette from seed strings. Seeds that are not colours
// are skipped and the first occurrence of each hex wins.
func NewPalette(seeds []string) *Palette {
	p := &Palette{}
	for _, seed := range seeds {
		c, err := Parse(seed)
		if err != nil {
			continue
		}
		if !p.Contains(c) {
			p.Colors = append(p.Colors, c)
		}
	}
	return p
}

// Len returns the number of colours in the palette.
func (p *Palette) Len() int {
	return len(p.Colors)
}

// Contains reports whether a colour with the same hex is already present.
func (p *Palette) Contains(c RGBA) bool {
	return slices.ContainsFunc(p.Colors, func(existing RGBA) bool {
		return SameHex(existing, c)
	})
}

// ToHex converts the palette colours to hex strings.
func (p *Palette) ToHex() []string {
	hexColors := make([]string, len(p.Colors))
	for i, c := range p.Colors {
		hexColors[i] = c.Hex()
	}
	return hexColors
}

// BuildPresets returns the deduplicated hex presets for the given seeds,
// falling back to DefaultPresets when none of them is a colour.
func BuildPresets(seeds []string) []string {
	p := NewPalette(seeds)
	if p.Len() == 0 {
		return DefaultPresets()
	}
	return p.ToHex()
}

// ColorJSON represents a colour in JSON output format.
type ColorJSON struct {
	Hex string `json:"hex"`
	RGB string `json:"rgb"`
}

// PaletteJSON represents the palette in JSON format.
type PaletteJSON struct {
	Count  int         `json:"count"`
	Colors []ColorJSON `json:"colors"`
}

// ToJSON converts the palette to JSON format.
func (p *Palette) ToJSON() ([]byte, error) {
	colors := make([]ColorJSON, len(p.Colors))
	for i, c := range p.Colors {
		colors[i] = ColorJSON{Hex: c.Hex(), RGB: c.CSSRGB()}
	}

	return json.MarshalIndent(PaletteJSON{Count: len(colors), Colors: colors}, "", "  ")
}

// All returns an iterator over all colours in the palette.
func (p *Palette) All() func(func(int, RGBA) bool) {
	return func(yield func(int, RGBA) bool) {
		for i, c := range p.Colors {
			if !yield(i, c) {
				return
			}
		}
	}
}
