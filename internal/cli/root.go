// Package cli provides the command-line interface for contrastcheck.
package cli

import (
	"fmt"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"github.com/jmylchreest/contrastcheck/internal/colour"
	"github.com/jmylchreest/contrastcheck/internal/config"
	"github.com/jmylchreest/contrastcheck/internal/logging"
	"github.com/jmylchreest/contrastcheck/internal/version"
)

// app carries state resolved once in PersistentPreRunE and shared by every
// subcommand.
type app struct {
	verbose    bool
	quiet      bool
	noColour   bool
	configPath string

	config config.Config
	logger hclog.Logger
}

// NewRootCmd builds the command tree.
func NewRootCmd() *cobra.Command {
	a := &app{
		config: config.Default(),
		logger: logging.Discard(),
	}

	rootCmd := &cobra.Command{
		Use:   "contrastcheck",
		Short: "Check colour contrast for text, controls and backgrounds",
		Long: `contrastcheck evaluates the contrast between a text colour, a control
colour drawn behind it and the page background.

Each pair is scored with the WCAG 2.1 contrast ratio (graded fail, AA Large,
AA or AAA; controls use the non-text 3:1 threshold) and with the experimental
SAPC/APCA perceptual metric. Translucent colours are flattened onto whatever
is behind them, with a white page as the default canvas.

Colours are shared as paths of the form /TEXT/CONTROL/BACKGROUND[/SWATCH...]
using hex without '#', e.g. /002244/0094f0/eef9ff.`,
		Version:           version.Short(),
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
	}

	rootCmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().BoolVarP(&a.quiet, "quiet", "q", false, "suppress non-error output")
	rootCmd.PersistentFlags().StringVar(&a.configPath, "config", "", "config file (.toml, .yaml or .json)")
	rootCmd.PersistentFlags().BoolVar(&a.noColour, "no-colour", false, "disable ANSI colour output")

	rootCmd.SetVersionTemplate(version.String() + "\n")

	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newCheckCmd(a))
	rootCmd.AddCommand(newPresetsCmd(a))
	rootCmd.AddCommand(newExploreCmd(a))

	return rootCmd
}

// setup loads configuration and the logger before any subcommand runs.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	a.logger = logging.New("contrastcheck", cmd.ErrOrStderr(), a.verbose, a.quiet)

	cfg, err := config.NewBuilder().
		WithFile(a.configPath).
		WithEnvConfig().
		Build()
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	if a.noColour {
		cfg.NoColour = true
	}
	a.config = cfg

	colour.DisableColourOutput = cfg.NoColour

	a.logger.Debug("configuration loaded",
		"config", a.configPath,
		"backdrop", cfg.Backdrop,
		"format", cfg.Format,
		"swatches", len(cfg.Swatches))
	return nil
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Long:  `Print detailed version information including build date, commit hash, and Go version.`,
		// Overrides the root hook so a broken config file or environment
		// cannot stop version reporting.
		PersistentPreRunE: func(*cobra.Command, []string) error { return nil },
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version.String())
		},
	}
}
