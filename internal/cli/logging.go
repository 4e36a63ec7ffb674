package cli

import (
	"io"
	"os"

	"github.com/hashicorp/go-hclog"
)

// logOutput receives log lines and the progress bar; tests replace it
var logOutput io.Writer = os.Stderr

// newLogger creates the CLI logger. --quiet wins over --verbose.
func newLogger(quiet, verbose bool) hclog.Logger {
	level := hclog.Info
	switch {
	case quiet:
		level = hclog.Error
	case verbose:
		level = hclog.Debug
	}

	return hclog.New(&hclog.LoggerOptions{
		Name:   "redirect-mapper",
		Level:  level,
		Output: logOutput,
	})
}
