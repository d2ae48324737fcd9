package cli

import (
	"fmt"
	"strings"

	"github.com/jmylchreest/contrastcheck/internal/colour"
	"github.com/jmylchreest/contrastcheck/internal/session"
)

const (
	previewWidth  = 6
	previewText   = "Aa"
	pairNameWidth = 24
)

var (
	passColour = colour.MustParse("#2e7d32")
	failColour = colour.MustParse("#d32f2f")
)

// gradeColour picks the terminal colour for a grade label.
func gradeColour(g colour.Grade) colour.RGBA {
	if g.Passes() {
		return passColour
	}
	return failColour
}

// renderReport formats a report as plain-text tables.
func renderReport(r session.Report, preview bool) string {
	var b strings.Builder

	colours := NewTable(colourHeaders(preview))
	live := [...]colour.RGBA{r.Text, r.Object, r.Background}
	for _, role := range session.Roles {
		c := live[role]
		row := []string{role.Label(), c.Hex(), c.CSSRGBA()}
		if preview {
			row = append(row, colour.ColourPreview(c, previewWidth))
		}
		colours.AddRow(row)
	}
	b.WriteString(colours.Render())
	b.WriteString("\n")

	pairs := NewTable(pairHeaders(preview))
	pairs.SetColumnMaxWidth(0, pairNameWidth)
	for _, p := range r.Pairs() {
		row := []string{
			p.Name,
			fmt.Sprintf("%.2f:1", p.Ratio),
			colour.ColourString(gradeColour(p.Grade), p.Grade.String()),
			fmt.Sprintf("%.2f", p.Luminance),
			fmt.Sprintf("%s (%s)", p.SAPC, p.Indicator),
		}
		if preview {
			row = append(row, colour.PairPreview(p.Foreground, p.Background, previewText, previewWidth))
		}
		pairs.AddRow(row)
	}
	b.WriteString(pairs.Render())
	b.WriteString("\n")

	fmt.Fprintf(&b, "Background luminance: %.2f\n", r.BackgroundLuminance)
	if !r.Backdrop.Opaque() || !colour.SameHex(r.Backdrop, colour.White) {
		fmt.Fprintf(&b, "Backdrop: %s\n", r.Backdrop.CSSRGBA())
	}
	if len(r.Swatches) > 0 {
		fmt.Fprintf(&b, "Swatches: %s\n", strings.Join(r.Swatches, " "))
	}
	fmt.Fprintf(&b, "Presets: %s\n", strings.Join(r.Presets, " "))
	fmt.Fprintf(&b, "Path: %s\n", r.Path)

	if hasTranslucent(r) {
		b.WriteString("Note: alpha is not stored in the path; translucent colours reopen opaque.\n")
	}

	return b.String()
}

func colourHeaders(preview bool) []string {
	headers := []string{"ROLE", "HEX", "CSS"}
	if preview {
		headers = append(headers, "PREVIEW")
	}
	return headers
}

func pairHeaders(preview bool) []string {
	headers := []string{"PAIR", "RATIO", "GRADE", "LUMINANCE", "SAPC"}
	if preview {
		headers = append(headers, "PREVIEW")
	}
	return headers
}

func hasTranslucent(r session.Report) bool {
	return !r.Text.Opaque() || !r.Object.Opaque() || !r.Background.Opaque()
}

// renderSummary is the compact three-line form used after each edit in the
// explorer.
func renderSummary(r session.Report) string {
	var b strings.Builder
	for _, p := range r.Pairs() {
		fmt.Fprintf(&b, "%-30s %6.2f:1  %-8s  SAPC %s\n", p.Name, p.Ratio, p.Grade, p.SAPC)
	}
	return b.String()
}
