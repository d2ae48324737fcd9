package session

import (
	"slices"
	"strings"

	"github.com/jmylchreest/contrastcheck/internal/colour"
)

// Seed is the decoded form of a path: one colour per role plus any extra
// swatch strings, passed through verbatim.
type Seed struct {
	Text       colour.RGBA
	Object     colour.RGBA
	Background colour.RGBA
	Swatches   []string

	// Raw holds the text, object and background segments as given, empty
	// when missing. Presets are built from these rather than the decoded
	// colours.
	Raw [3]string

	// Fallbacks lists the roles whose segment was missing or not a colour
	// and which therefore hold their default.
	Fallbacks []Role
}

// DecodeSeed interprets path segments as text, object and background colours
// followed by extra swatches. Missing or invalid colour segments fall back to
// the role's default; this never fails.
func DecodeSeed(segments []string) Seed {
	var (
		colours   [3]colour.RGBA
		raw       [3]string
		fallbacks []Role
	)
	for _, role := range Roles {
		idx := int(role)
		if idx < len(segments) {
			raw[idx] = segments[idx]
			if c, err := colour.Parse(segments[idx]); err == nil {
				colours[idx] = c
				continue
			}
		}
		colours[idx] = DefaultColour(role)
		fallbacks = append(fallbacks, role)
	}

	var swatches []string
	if len(segments) > len(Roles) {
		swatches = slices.Clone(segments[len(Roles):])
	}

	return Seed{
		Text:       colours[RoleText],
		Object:     colours[RoleObject],
		Background: colours[RoleBackground],
		Swatches:   swatches,
		Raw:        raw,
		Fallbacks:  fallbacks,
	}
}

// SplitPath splits a URL path into segments, dropping the empty segment
// before the leading slash. "/002244/0094f0" yields ["002244", "0094f0"].
// Inner empty segments are kept so positions stay stable.
func SplitPath(path string) []string {
	path = strings.TrimPrefix(path, "/")
	if path == "" {
		return nil
	}
	return strings.Split(path, "/")
}

// Decode is a shorthand for New(DecodeSeed(SplitPath(path))).
func Decode(path string) Session {
	return New(DecodeSeed(SplitPath(path)))
}

// EncodePath returns "/text/object/background" as lowercase hex without '#',
// followed by the session's extra swatches unchanged. Alpha is not encoded:
// a translucent colour reopens as its opaque rgb.
func EncodePath(s Session) string {
	var b strings.Builder
	for _, role := range Roles {
		b.WriteByte('/')
		b.WriteString(s.Colour(role).HexNoHash())
	}
	for _, sw := range s.swatches {
		b.WriteByte('/')
		b.WriteString(sw)
	}
	return b.String()
}
