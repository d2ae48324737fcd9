package session

import (
	"slices"

	"github.com/jmylchreest/contrastcheck/internal/colour"
)

// Session owns the three live colours. It is a value: SetColor returns a new
// Session and leaves the receiver untouched, so earlier snapshots stay valid.
type Session struct {
	colours  [3]colour.RGBA
	seeds    [3]string
	swatches []string
}

// New creates a session from a decoded seed.
func New(seed Seed) Session {
	return Session{
		colours:  [3]colour.RGBA{seed.Text, seed.Object, seed.Background},
		seeds:    seed.Raw,
		swatches: slices.Clone(seed.Swatches),
	}
}

// Colour returns the live colour for a role.
func (s Session) Colour(r Role) colour.RGBA {
	if r < RoleText || r > RoleBackground {
		return colour.RGBA{}
	}
	return s.colours[r]
}

// Text returns the text colour.
func (s Session) Text() colour.RGBA { return s.colours[RoleText] }

// Object returns the control colour.
func (s Session) Object() colour.RGBA { return s.colours[RoleObject] }

// Background returns the background colour.
func (s Session) Background() colour.RGBA { return s.colours[RoleBackground] }

// SetColor returns a copy of s with one role replaced. Unknown roles return s
// unchanged.
func (s Session) SetColor(r Role, c colour.RGBA) Session {
	if r < RoleText || r > RoleBackground {
		return s
	}
	// colours is an array, so the receiver copy is independent. swatches is
	// shared but never written after New.
	s.colours[r] = c
	return s
}

// Swatches returns the extra swatch strings the session was seeded with.
func (s Session) Swatches() []string {
	return slices.Clone(s.swatches)
}

// Presets returns the preset palette offered to all three pickers, built
// from the seed strings the session was opened with followed by the extra
// swatches. Edits do not change it, and seeds that are not colours are
// skipped rather than replaced by role defaults.
func (s Session) Presets() []string {
	return s.PresetsWith()
}

// PresetsWith is Presets with additional swatches appended, such as those
// from user configuration.
func (s Session) PresetsWith(extra ...string) []string {
	return colour.BuildPresets(slices.Concat(s.seeds[:], s.swatches, extra))
}

// Edit is a single picker change.
type Edit struct {
	Role   Role
	Colour colour.RGBA
}

// Apply returns a copy of s with the edit applied.
func (s Session) Apply(e Edit) Session {
	return s.SetColor(e.Role, e.Colour)
}
