package colour

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/colornames"
)

// ErrInvalidColor is returned when a string is not a recognised colour.
var ErrInvalidColor = errors.New("invalid colour")

// Parse converts a CSS colour string into an RGBA value.
// Supported formats: #RGB, #RGBA, #RRGGBB, #RRGGBBAA (the '#' is optional),
// rgb(), rgba(), hsl(), hsla(), CSS named colours and "transparent".
func Parse(s string) (RGBA, error) {
	value := strings.ToLower(strings.TrimSpace(s))
	if value == "" {
		return RGBA{}, fmt.Errorf("%w: empty string", ErrInvalidColor)
	}

	if value == "transparent" {
		return RGBA{}, nil
	}
	if c, ok := colornames.Map[value]; ok {
		return FromColor(c), nil
	}

	var (
		c   RGBA
		err error
	)
	switch {
	case strings.HasPrefix(value, "rgb"):
		c, err = parseRGBFunc(value)
	case strings.HasPrefix(value, "hsl"):
		c, err = parseHSLFunc(value)
	default:
		c, err = parseHex(value)
	}
	if err != nil {
		return RGBA{}, fmt.Errorf("%w: %q: %w", ErrInvalidColor, s, err)
	}
	return c, nil
}

// MustParse is like Parse but panics on error. Intended for package-level
// defaults and tests.
func MustParse(s string) RGBA {
	c, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return c
}

// IsValid reports whether s can be parsed as a colour.
func IsValid(s string) bool {
	_, err := Parse(s)
	return err == nil
}

// parseHex parses #RGB, #RGBA, #RRGGBB and #RRGGBBAA with or without the hash.
func parseHex(value string) (RGBA, error) {
	hex := strings.TrimPrefix(value, "#")

	// Expand shorthand format (RGB -> RRGGBB).
	if len(hex) == 3 || len(hex) == 4 {
		expanded := make([]byte, 0, len(hex)*2)
		for i := 0; i < len(hex); i++ {
			expanded = append(expanded, hex[i], hex[i])
		}
		hex = string(expanded)
	}

	if len(hex) != 6 && len(hex) != 8 {
		return RGBA{}, fmt.Errorf("invalid hex length %d", len(hex))
	}

	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return RGBA{}, fmt.Errorf("invalid hex digits: %w", err)
	}

	if len(hex) == 6 {
		return RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 1}, nil
	}
	return RGBA{
		R: uint8(v >> 24),
		G: uint8(v >> 16),
		B: uint8(v >> 8),
		A: float64(uint8(v)) / 255,
	}, nil
}

// functionArgs splits "name(a, b, c / d)" into its arguments. Both the legacy
// comma syntax and the CSS4 space syntax with a slash before alpha are accepted.
func functionArgs(value string, names ...string) ([]string, error) {
	open := strings.IndexByte(value, '(')
	if open < 0 || !strings.HasSuffix(value, ")") {
		return nil, errors.New("missing parentheses")
	}
	name := strings.TrimSpace(value[:open])
	known := false
	for _, n := range names {
		if name == n {
			known = true
			break
		}
	}
	if !known {
		return nil, fmt.Errorf("unknown function %q", name)
	}

	body := value[open+1 : len(value)-1]
	body = strings.ReplaceAll(body, "/", " ")
	body = strings.ReplaceAll(body, ",", " ")
	args := strings.Fields(body)
	if len(args) != 3 && len(args) != 4 {
		return nil, fmt.Errorf("expected 3 or 4 arguments, got %d", len(args))
	}
	return args, nil
}

// parseNumber parses a plain number or a percentage. Percentages are scaled
// so that 100% equals full.
func parseNumber(arg string, full float64) (float64, error) {
	if pct, ok := strings.CutSuffix(arg, "%"); ok {
		v, err := strconv.ParseFloat(pct, 64)
		if err != nil {
			return 0, err
		}
		return v / 100 * full, nil
	}
	return strconv.ParseFloat(arg, 64)
}

func parseAlphaArg(args []string) (float64, error) {
	if len(args) < 4 {
		return 1, nil
	}
	a, err := parseNumber(args[3], 1)
	if err != nil {
		return 0, fmt.Errorf("alpha: %w", err)
	}
	return clampAlpha(a), nil
}

func parseRGBFunc(value string) (RGBA, error) {
	args, err := functionArgs(value, "rgb", "rgba")
	if err != nil {
		return RGBA{}, err
	}

	var ch [3]uint8
	for i := range ch {
		v, err := parseNumber(args[i], 255)
		if err != nil {
			return RGBA{}, fmt.Errorf("channel %d: %w", i, err)
		}
		ch[i] = clampChannel(v)
	}

	a, err := parseAlphaArg(args)
	if err != nil {
		return RGBA{}, err
	}
	return RGBA{R: ch[0], G: ch[1], B: ch[2], A: a}, nil
}

func parseHSLFunc(value string) (RGBA, error) {
	args, err := functionArgs(value, "hsl", "hsla")
	if err != nil {
		return RGBA{}, err
	}

	h, err := strconv.ParseFloat(strings.TrimSuffix(args[0], "deg"), 64)
	if err != nil {
		return RGBA{}, fmt.Errorf("hue: %w", err)
	}
	s, err := parseNumber(args[1], 1)
	if err != nil {
		return RGBA{}, fmt.Errorf("saturation: %w", err)
	}
	l, err := parseNumber(args[2], 1)
	if err != nil {
		return RGBA{}, fmt.Errorf("lightness: %w", err)
	}
	a, err := parseAlphaArg(args)
	if err != nil {
		return RGBA{}, err
	}

	if math.IsNaN(h) || math.IsInf(h, 0) {
		return RGBA{}, errors.New("hue out of range")
	}
	// Normalize hue to 0-360 range.
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}

	c := colorful.Hsl(h, clampUnit(s), clampUnit(l)).Clamped()
	return RGBA{
		R: clampChannel(c.R * 255),
		G: clampChannel(c.G * 255),
		B: clampChannel(c.B * 255),
		A: a,
	}, nil
}

func clampUnit(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
