// Package logging builds the diagnostic logger shared by all commands.
package logging

import (
	"io"

	"github.com/hashicorp/go-hclog"
)

// New returns a logger writing to w. Verbose enables debug output, quiet
// limits output to errors; otherwise warnings and above are shown.
func New(name string, w io.Writer, verbose, quiet bool) hclog.Logger {
	level := hclog.Warn
	switch {
	case quiet:
		level = hclog.Error
	case verbose:
		level = hclog.Debug
	}

	return hclog.New(&hclog.LoggerOptions{
		Name:   name,
		Output: w,
		Level:  level,
	})
}

// Discard returns a logger that drops everything.
func Discard() hclog.Logger {
	return hclog.New(&hclog.LoggerOptions{
		Output: io.Discard,
		Level:  hclog.Off,
	})
}
