// Package config loads user defaults for contrastcheck from a config file and
// the environment.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/jmylchreest/contrastcheck/internal/colour"
)

// Output formats understood by the check command.
const (
	FormatTable = "table"
	FormatJSON  = "json"
	FormatPath  = "path"
)

// Formats lists the valid values for Config.Format.
var Formats = []string{FormatTable, FormatJSON, FormatPath}

// Config holds user defaults. Command-line flags override every field.
type Config struct {
	// Backdrop is the canvas behind a translucent background.
	Backdrop string `json:"backdrop" toml:"backdrop" yaml:"backdrop"`

	// Swatches are extra preset colours appended to every session.
	Swatches []string `json:"swatches" toml:"swatches" yaml:"swatches"`

	// Format is the default output format (table, json, path).
	Format string `json:"format" toml:"format" yaml:"format"`

	// Preview shows ANSI colour previews in table output.
	Preview bool `json:"preview" toml:"preview" yaml:"preview"`

	// NoColour disables all ANSI escapes.
	NoColour bool `json:"no_colour" toml:"no_colour" yaml:"no_colour"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Backdrop: colour.DefaultBackdrop.Hex(),
		Format:   FormatTable,
	}
}

// Validate checks that every field holds a usable value.
func (c Config) Validate() error {
	if !colour.IsValid(c.Backdrop) {
		return fmt.Errorf("invalid backdrop colour: %q", c.Backdrop)
	}
	if !slices.Contains(Formats, c.Format) {
		return fmt.Errorf("invalid format: %s (valid: %s)", c.Format, strings.Join(Formats, ", "))
	}
	return nil
}

// BackdropColour returns the parsed backdrop, or the default when invalid.
func (c Config) BackdropColour() colour.RGBA {
	b, err := colour.Parse(c.Backdrop)
	if err != nil {
		return colour.DefaultBackdrop
	}
	return b
}

// Builder provides a fluent interface for assembling a Config from layered
// sources. Later sources override earlier ones: defaults, file, environment.
type Builder struct {
	config   Config
	filePath string
	useEnv   bool
	getenv   func(string) (string, bool)
}

// NewBuilder creates a Builder starting from Default.
func NewBuilder() *Builder {
	return &Builder{
		config: Default(),
		getenv: os.LookupEnv,
	}
}

// WithFile loads the given config file. An empty path is ignored.
func (b *Builder) WithFile(path string) *Builder {
	b.filePath = strings.TrimSpace(path)
	return b
}

// WithEnvConfig applies CONTRASTCHECK_* environment variables and NO_COLOR.
func (b *Builder) WithEnvConfig() *Builder {
	b.useEnv = true
	return b
}

// withLookupEnv replaces the environment source (used by tests).
func (b *Builder) withLookupEnv(fn func(string) (string, bool)) *Builder {
	b.getenv = fn
	return b
}

// Build assembles and validates the configuration.
func (b *Builder) Build() (Config, error) {
	cfg := b.config

	if b.filePath != "" {
		if err := loadFile(b.filePath, &cfg); err != nil {
			return cfg, err
		}
	}

	if b.useEnv {
		if err := applyEnv(&cfg, b.getenv); err != nil {
			return cfg, err
		}
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// loadFile decodes a config file over cfg, choosing the decoder by extension.
func loadFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config: %w", err)
	}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		err = toml.Unmarshal(data, cfg)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, cfg)
	case ".json":
		err = json.Unmarshal(data, cfg)
	default:
		return fmt.Errorf("unsupported config extension: %s", ext)
	}
	if err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	return nil
}

func applyEnv(cfg *Config, getenv func(string) (string, bool)) error {
	if v, ok := getenv("CONTRASTCHECK_BACKDROP"); ok && v != "" {
		cfg.Backdrop = v
	}
	if v, ok := getenv("CONTRASTCHECK_SWATCHES"); ok && v != "" {
		cfg.Swatches = parseList(v)
	}
	if v, ok := getenv("CONTRASTCHECK_FORMAT"); ok && v != "" {
		cfg.Format = strings.ToLower(v)
	}
	if v, ok := getenv("CONTRASTCHECK_PREVIEW"); ok && v != "" {
		preview, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("CONTRASTCHECK_PREVIEW: %w", err)
		}
		cfg.Preview = preview
	}
	// https://no-color.org: any value disables colour.
	if _, ok := getenv("NO_COLOR"); ok {
		cfg.NoColour = true
	}
	return nil
}

// parseList parses a comma-separated list, skipping empty entries.
func parseList(s string) []string {
	var out []string
	for _, item := range strings.Split(s, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
