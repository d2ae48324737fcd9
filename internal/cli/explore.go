package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/jmylchreest/contrastcheck/internal/session"
)

const exploreHelp = `Commands:
  text <colour>        set the text colour
  object <colour>      set the control colour (alias: control)
  background <colour>  set the background colour (alias: bg)
  show                 print the full report
  presets              print the preset palette
  save                 print the shareable path
  undo                 revert the last change
  help                 show this help
  quit                 exit (alias: exit)
`

func newExploreCmd(a *app) *cobra.Command {
	var preview bool

	cmd := &cobra.Command{
		Use:   "explore [PATH]",
		Short: "Edit colours interactively and watch the contrast change",
		Long: `Start an interactive session seeded from PATH (or the defaults).

Each line read from standard input is a command. Setting a colour replaces
just that role and prints the updated contrast summary; "save" prints the
path that reproduces the current colours and swatches.

` + exploreHelp,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := ""
			if len(args) > 0 {
				path = args[0]
			}
			e := &explorer{
				app:     a,
				current: a.sessionFromPath(path),
				out:     cmd.OutOrStdout(),
				preview: (preview || a.config.Preview) && !a.config.NoColour,
				prompt:  isTerminal(cmd.InOrStdin()),
			}
			return e.run(cmd.InOrStdin())
		},
	}

	cmd.Flags().BoolVar(&preview, "preview", false, "show colour previews in terminal")

	return cmd
}

// explorer is a line-oriented editing loop over a Session. Each edit pushes
// the previous snapshot onto history.
type explorer struct {
	app     *app
	current session.Session
	history []session.Session
	out     io.Writer
	preview bool
	prompt  bool
}

func (e *explorer) run(in io.Reader) error {
	scanner := bufio.NewScanner(in)
	e.printf("%s", renderSummary(e.report()))

	for {
		if e.prompt {
			e.printf("> ")
		}
		if !scanner.Scan() {
			break
		}
		if done := e.handle(scanner.Text()); done {
			return nil
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}
	return nil
}

// handle executes one command line and reports whether the loop should stop.
func (e *explorer) handle(line string) bool {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return false
	}

	cmd, _, _ := strings.Cut(line, " ")
	switch strings.ToLower(cmd) {
	case "quit", "exit":
		return true
	case "help", "?":
		e.printf("%s", exploreHelp)
	case "show":
		e.printf("%s", renderReport(e.report(), e.preview))
	case "presets":
		e.printf("%s\n", strings.Join(e.presets(), " "))
	case "save":
		e.printf("%s\n", session.EncodePath(e.current))
	case "undo":
		if len(e.history) == 0 {
			e.printf("nothing to undo\n")
			return false
		}
		e.current = e.history[len(e.history)-1]
		e.history = e.history[:len(e.history)-1]
		e.printf("%s", renderSummary(e.report()))
	default:
		edit, err := session.ParseEdit(line)
		if err != nil {
			e.app.logger.Debug("rejected edit", "line", line, "error", err)
			e.printf("error: %v\n", err)
			return false
		}
		e.history = append(e.history, e.current)
		e.current = e.current.Apply(edit)
		e.app.logger.Debug("applied edit", "role", edit.Role.String(), "colour", edit.Colour.CSSRGBA())
		e.printf("%s", renderSummary(e.report()))
	}
	return false
}

func (e *explorer) report() session.Report {
	r := session.Evaluate(e.current, e.app.config.BackdropColour())
	r.Presets = e.presets()
	return r
}

func (e *explorer) presets() []string {
	return e.current.PresetsWith(e.app.config.Swatches...)
}

func (e *explorer) printf(format string, args ...any) {
	fmt.Fprintf(e.out, format, args...)
}

// isTerminal reports whether r is an interactive terminal.
func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
