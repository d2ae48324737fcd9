package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"slices"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/contrastcheck/internal/colour"
	"github.com/jmylchreest/contrastcheck/internal/config"
	"github.com/jmylchreest/contrastcheck/internal/session"
)

type checkOptions struct {
	format   string
	output   string
	preview  bool
	swatches []string

	backdrop   *colourValue
	text       *colourValue
	object     *colourValue
	background *colourValue
}

func newCheckCmd(a *app) *cobra.Command {
	opts := &checkOptions{
		backdrop:   newColourValue(colour.DefaultBackdrop),
		text:       newColourValue(session.DefaultColour(session.RoleText)),
		object:     newColourValue(session.DefaultColour(session.RoleObject)),
		background: newColourValue(session.DefaultColour(session.RoleBackground)),
	}

	cmd := &cobra.Command{
		Use:   "check [PATH]",
		Short: "Evaluate contrast for a text, control and background colour",
		Long: `Evaluate the contrast of a colour combination.

PATH has the form /TEXT/CONTROL/BACKGROUND[/SWATCH...]. Missing or invalid
colours fall back to the defaults (#002244, #0094F0, #EEF9FF). Extra
segments are kept as preset swatches.

Examples:
  # Check the default colours
  contrastcheck check

  # Check a saved path
  contrastcheck check /002244/0094f0/eef9ff

  # Override the control with a translucent colour
  contrastcheck check /002244/0094f0/eef9ff --object "rgba(0,148,240,0.5)"

  # Print the report as JSON
  contrastcheck check -f json /000/fff/fff

  # Print only the canonical path
  contrastcheck check -f path /red/white/blue`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd, a, opts, args)
		},
	}

	cmd.Flags().StringVarP(&opts.format, "format", "f", config.FormatTable, "output format (table, json, path)")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default: stdout)")
	cmd.Flags().BoolVar(&opts.preview, "preview", false, "show colour previews in terminal")
	cmd.Flags().StringSliceVar(&opts.swatches, "swatch", nil, "extra preset swatch (repeatable)")
	cmd.Flags().Var(opts.backdrop, "backdrop", "canvas behind a translucent background")
	cmd.Flags().Var(opts.text, "text", "override the text colour")
	cmd.Flags().Var(opts.object, "object", "override the control colour")
	cmd.Flags().Var(opts.background, "background", "override the background colour")

	return cmd
}

func runCheck(cmd *cobra.Command, a *app, opts *checkOptions, args []string) error {
	path := ""
	if len(args) > 0 {
		path = args[0]
	}

	s := a.sessionFromPath(path)
	overrides := []*colourValue{opts.text, opts.object, opts.background}
	for _, role := range session.Roles {
		if c, set := overrides[role].Get(); set {
			a.logger.Debug("overriding colour", "role", role.String(), "colour", c.CSSRGBA())
			s = s.SetColor(role, c)
		}
	}

	format := a.config.Format
	if cmd.Flags().Changed("format") {
		format = opts.format
	}
	preview := a.config.Preview || opts.preview

	backdrop := a.config.BackdropColour()
	if c, set := opts.backdrop.Get(); set {
		backdrop = c
	}

	report := session.Evaluate(s, backdrop)
	report.Presets = s.PresetsWith(slices.Concat(a.config.Swatches, opts.swatches)...)

	var output string
	switch format {
	case config.FormatTable:
		output = renderReport(report, preview && !a.config.NoColour)
	case config.FormatJSON:
		data, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to convert to JSON: %w", err)
		}
		output = string(data) + "\n"
	case config.FormatPath:
		output = report.Path + "\n"
	default:
		return fmt.Errorf("unsupported format: %s (supported: table, json, path)", format)
	}

	return a.writeOutput(cmd, opts.output, output)
}

// sessionFromPath decodes a path, logging any role that fell back to its
// default.
func (a *app) sessionFromPath(path string) session.Session {
	segments := session.SplitPath(path)
	seed := session.DecodeSeed(segments)
	for _, role := range seed.Fallbacks {
		value := ""
		if int(role) < len(segments) {
			value = segments[role]
		}
		a.logger.Debug("using default colour",
			"role", role.String(),
			"segment", value,
			"default", session.DefaultColour(role).Hex())
	}
	return session.New(seed)
}

// writeOutput writes to a file when path is set, otherwise to stdout.
func (a *app) writeOutput(cmd *cobra.Command, path, output string) error {
	if path == "" {
		_, err := fmt.Fprint(cmd.OutOrStdout(), output)
		return err
	}

	a.logger.Debug("writing output", "path", path)
	if err := os.WriteFile(path, []byte(output), 0o644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	if !a.quiet {
		fmt.Fprintf(cmd.ErrOrStderr(), "Wrote report to %s\n", path)
	}
	return nil
}
