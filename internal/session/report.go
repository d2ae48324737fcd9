package session

import (
	"github.com/jmylchreest/contrastcheck/internal/colour"
)

// Pair is one contrast readout between a foreground and the opaque background
// it is drawn on. Foreground and Background hold the flattened colours.
type Pair struct {
	Name       string           `json:"name"`
	Foreground colour.RGBA      `json:"foreground"`
	Background colour.RGBA      `json:"background"`
	NonText    bool             `json:"non_text"`
	Ratio      float64          `json:"ratio"`
	Grade      colour.Grade     `json:"grade"`
	Luminance  float64          `json:"luminance"`
	SAPC       colour.SAPC      `json:"sapc"`
	Indicator  colour.Indicator `json:"sapc_indicator"`
}

// Report is everything shown for a session: three contrast pairs and the
// background's own luminance.
type Report struct {
	Text       colour.RGBA `json:"text"`
	Object     colour.RGBA `json:"object"`
	Background colour.RGBA `json:"background"`
	Backdrop   colour.RGBA `json:"backdrop"`

	TextOnObject       Pair `json:"text_on_object"`
	ObjectOnBackground Pair `json:"object_on_background"`
	TextOnBackground   Pair `json:"text_on_background"`

	BackgroundLuminance float64  `json:"background_luminance"`
	Path                string   `json:"path"`
	Swatches            []string `json:"swatches,omitempty"`
	Presets             []string `json:"presets"`
}

// Pairs returns the three contrast pairs in display order.
func (r Report) Pairs() []Pair {
	return []Pair{r.TextOnObject, r.ObjectOnBackground, r.TextOnBackground}
}

// Evaluate computes the report for s. The background is flattened onto the
// backdrop (normally the white page canvas), the control onto that, and the
// text onto whichever surface it sits on.
func Evaluate(s Session, backdrop colour.RGBA) Report {
	surface := colour.FlattenOnto(backdrop, s.Background())
	control := colour.Flatten(s.Object(), surface)

	return Report{
		Text:       s.Text(),
		Object:     s.Object(),
		Background: s.Background(),
		Backdrop:   backdrop,

		TextOnObject:       evaluatePair("Text on Control on Background", s.Text(), control, false),
		ObjectOnBackground: evaluatePair("Control on Background", s.Object(), surface, true),
		TextOnBackground:   evaluatePair("Text on Background", s.Text(), surface, false),

		BackgroundLuminance: colour.RoundTo(colour.Luminance(surface), 2),
		Path:                EncodePath(s),
		Swatches:            s.Swatches(),
		Presets:             s.Presets(),
	}
}

func evaluatePair(name string, fg, bg colour.RGBA, nonText bool) Pair {
	flat := colour.Flatten(fg, bg)
	ratio := colour.RoundedContrast(fg, bg)
	sapc := colour.PerceptualContrastRGBA(bg, flat)

	return Pair{
		Name:       name,
		Foreground: flat,
		Background: bg,
		NonText:    nonText,
		Ratio:      ratio,
		Grade:      colour.Classify(ratio, nonText),
		Luminance:  colour.RoundedLuminance(flat, bg),
		SAPC:       sapc,
		Indicator:  colour.SAPCIndicator(sapc, nonText),
	}
}
