// Package session holds the three live colours of a contrast check and
// converts them to and from the compact path form used for sharing.
package session

import (
	"fmt"
	"strings"

	"github.com/jmylchreest/contrastcheck/internal/colour"
)

// Role identifies which of the three colours is being referred to.
type Role int

const (
	// RoleText is the foreground text colour.
	RoleText Role = iota
	// RoleObject is the control (button, input) drawn behind the text.
	RoleObject
	// RoleBackground is the page background behind the control.
	RoleBackground
)

// Roles lists every role in path order.
var Roles = []Role{RoleText, RoleObject, RoleBackground}

// Per-role fallbacks, identical to the default presets.
var defaultColours = map[Role]colour.RGBA{
	RoleText:       colour.MustParse("#002244"),
	RoleObject:     colour.MustParse("#0094F0"),
	RoleBackground: colour.MustParse("#EEF9FF"),
}

// String returns the role name.
func (r Role) String() string {
	switch r {
	case RoleText:
		return "text"
	case RoleObject:
		return "object"
	case RoleBackground:
		return "background"
	default:
		return fmt.Sprintf("role(%d)", int(r))
	}
}

// Label returns the name shown to users.
func (r Role) Label() string {
	switch r {
	case RoleText:
		return "Text"
	case RoleObject:
		return "Control"
	case RoleBackground:
		return "Background"
	default:
		return r.String()
	}
}

// ParseRole parses a role name. Common aliases are accepted.
func ParseRole(name string) (Role, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "text", "fg", "foreground":
		return RoleText, nil
	case "object", "obj", "control":
		return RoleObject, nil
	case "background", "bg":
		return RoleBackground, nil
	default:
		return 0, fmt.Errorf("unknown role: %q (valid: text, object, background)", name)
	}
}

// DefaultColour returns the fallback colour for a role.
func DefaultColour(r Role) colour.RGBA {
	return defaultColours[r]
}
