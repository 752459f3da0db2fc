// internal/cmdutil/log.go
package cmdutil

import (
	"fmt"
	"io"
)

// Logger writes prefixed diagnostic lines to dst. A quiet logger drops
// everything except errors.
type Logger struct {
	dst   io.Writer
	quiet bool
}

func NewLogger(dst io.Writer, quiet bool) *Logger { return &Logger{dst: dst, quiet: quiet} }

func (l *Logger) Infof(format string, a ...any) { Infof(l.dst, l.quiet, format, a...) }
func (l *Logger) Warnf(format string, a ...any) { Warnf(l.dst, l.quiet, format, a...) }

// Errorf is never suppressed.
func (l *Logger) Errorf(format string, a ...any) {
	_, _ = fmt.Fprintf(l.dst, "ERROR: "+format+"\n", a...)
}

func Infof(dst io.Writer, quiet bool, format string, a ...any) {
	if quiet {
		return
	}
	_, _ = fmt.Fprintf(dst, "INFO: "+format+"\n", a...)
}

func Warnf(dst io.Writer, quiet bool, format string, a ...any) {
	if quiet {
		return
	}
	_, _ = fmt.Fprintf(dst, "WARN: "+format+"\n", a...)
}
