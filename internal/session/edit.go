package session

import (
	"fmt"
	"strings"

	"github.com/jmylchreest/contrastcheck/internal/colour"
)

// ParseEdit parses "<role> <colour>" (e.g. "text rgba(0,0,0,0.8)") into an
// Edit. Everything after the role is treated as the colour, so CSS values with
// spaces are accepted.
func ParseEdit(line string) (Edit, error) {
	roleName, value, ok := strings.Cut(strings.TrimSpace(line), " ")
	if !ok {
		return Edit{}, fmt.Errorf("expected \"<role> <colour>\", got %q", line)
	}

	role, err := ParseRole(roleName)
	if err != nil {
		return Edit{}, err
	}

	c, err := colour.Parse(value)
	if err != nil {
		return Edit{}, fmt.Errorf("%s: %w", role, err)
	}

	return Edit{Role: role, Colour: c}, nil
}
