// Package log provides the linter's verbose diagnostic channel. It is
// separate from lint output on purpose: violations go to stdout for
// consumption, diagnostics go here (stderr) for humans.
package log

import (
	"fmt"
	"io"
)

const prefix = "rflint: "

// Logger writes prefixed diagnostic lines to a writer. The zero value
// is disabled; a nil *Logger is also safe to call.
type Logger struct {
	Enabled bool
	W       io.Writer
}

// New returns a logger writing to w when enabled.
func New(w io.Writer, enabled bool) *Logger {
	return &Logger{Enabled: enabled, W: w}
}

// Printf writes one formatted, prefixed line when the logger is
// enabled, and does nothing otherwise.
func (l *Logger) Printf(format string, args ...any) {
	if l == nil || !l.Enabled || l.W == nil {
		return
	}
	fmt.Fprintf(l.W, prefix+format+"\n", args...)
}
