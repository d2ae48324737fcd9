package cli

import (
	"fmt"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/contrastcheck/internal/colour"
)

func newPresetsCmd(a *app) *cobra.Command {
	var (
		format  string
		preview bool
	)

	cmd := &cobra.Command{
		Use:   "presets [SEED...]",
		Short: "Build the preset swatch palette from seed colours",
		Long: `Build the preset palette offered to colour pickers.

Seeds that are not colours are skipped, duplicates (by hex, ignoring alpha)
are removed keeping the first occurrence, and the default palette
#002244 #0094F0 #EEF9FF is used when nothing remains. Swatches from the
config file are appended after the arguments.

Examples:
  # Deduplicate seeds
  contrastcheck presets "#FF0000" ff0000 red

  # Output as JSON
  contrastcheck presets -f json navy "rgb(0,0,128)" teal`,
		RunE: func(cmd *cobra.Command, args []string) error {
			seeds := slices.Concat(args, a.config.Swatches)
			presets := colour.BuildPresets(seeds)
			a.logger.Debug("built presets", "seeds", len(seeds), "presets", len(presets))

			output, err := formatPresets(presets, format, preview && !a.config.NoColour)
			if err != nil {
				return err
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), output)
			return err
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "hex", "output format (hex, rgb, json)")
	cmd.Flags().BoolVar(&preview, "preview", false, "show colour previews in terminal")

	return cmd
}

// formatPresets formats preset hex strings according to the specified format.
func formatPresets(presets []string, format string, showPreview bool) (string, error) {
	palette := colour.NewPalette(presets)

	switch format {
	case "hex":
		var b strings.Builder
		for i, hex := range presets {
			if showPreview {
				b.WriteString(colour.FormatColourWithPreview(palette.Colors[i], 8) + "\n")
				continue
			}
			b.WriteString(hex + "\n")
		}
		return b.String(), nil
	case "rgb":
		var b strings.Builder
		for _, c := range palette.All() {
			if showPreview {
				b.WriteString(colour.ColourPreview(c, 8) + "  ")
			}
			b.WriteString(c.CSSRGB() + "\n")
		}
		return b.String(), nil
	case "json":
		data, err := palette.ToJSON()
		if err != nil {
			return "", fmt.Errorf("failed to convert to JSON: %w", err)
		}
		return string(data) + "\n", nil
	default:
		return "", fmt.Errorf("unsupported format: %s (supported: hex, rgb, json)", format)
	}
}
