// Package logging configures the process logger. Debug output from other
// packages is routed through injectable Printf-style hooks (see
// git.SetDebugLogger); this package supplies the implementation.
package logging

import (
	"io"

	"github.com/charmbracelet/log"
)

// New returns a logger writing to w. Debug enables debug-level output;
// otherwise only warnings and errors are shown.
func New(w io.Writer, debug bool) *log.Logger {
	level := log.WarnLevel
	if debug {
		level = log.DebugLevel
	}
	return log.NewWithOptions(w, log.Options{
		Level:           level,
		Prefix:          "chlog",
		ReportTimestamp: debug,
	})
}

// DebugFunc adapts a logger to the Printf-style hook used by SetDebugLogger.
func DebugFunc(l *log.Logger) func(format string, args ...any) {
	return func(format string, args ...any) {
		l.Debugf(format, args...)
	}
}
