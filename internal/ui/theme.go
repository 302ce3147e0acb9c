// Package ui renders gplgen's terminal output.
package ui

import (
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"golang.org/x/term"
)

// Configure applies the colour preference. Colour is disabled when noColor
// is set and FORCE_COLOR is not.
func Configure(noColor bool) {
	if noColor && !isForceColor() {
		color.NoColor = true
	}
}

func isForceColor() bool {
	fc := strings.TrimSpace(os.Getenv("FORCE_COLOR"))
	return fc != "" && fc != "0"
}

// IsTerminal reports whether w is a file attached to a terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd())) // #nosec G115 - file descriptors fit in int
}

// Success returns text for completed actions.
func Success(format string, a ...any) string {
	return color.New(color.FgGreen).Sprintf(format, a...)
}

// Warn returns warning text.
func Warn(format string, a ...any) string {
	return color.New(color.FgYellow).Sprintf(format, a...)
}

// Error returns error text.
func Error(format string, a ...any) string {
	return color.New(color.FgHiRed, color.Bold).Sprintf(format, a...)
}

// Muted returns de-emphasised text.
func Muted(format string, a ...any) string {
	return color.New(color.FgHiBlack).Sprintf(format, a...)
}
