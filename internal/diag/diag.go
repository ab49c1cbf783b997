// Package diag prints severity-tagged messages to the terminal. Messages
// are colorized only when the target stream is an interactive terminal;
// otherwise a plain severity label is prepended instead. Printing is
// best-effort and never fails the caller.
package diag

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

// Bold foreground colors keyed by severity color name. Unknown names
// disable colorization for that message.
var colors = map[string]termenv.Color{
	"red":    termenv.ANSIBrightRed,
	"yellow": termenv.ANSIBrightYellow,
}

// terminalChecker lets a writer report its own interactivity, overriding
// the file-descriptor probe.
type terminalChecker interface {
	IsTerminal() bool
}

func isTerminal(w io.Writer) bool {
	if t, ok := w.(terminalChecker); ok {
		return t.IsTerminal()
	}
	if f, ok := w.(*os.File); ok {
		return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
	}
	return false
}

// Colorize wraps msg in the named ANSI color when w is an interactive
// terminal. Otherwise altText is prepended as a plain-text label.
func Colorize(msg, color string, w io.Writer, altText string) string {
	c, ok := colors[color]
	if ok && isTerminal(w) {
		return termenv.ANSI.String(msg).Foreground(c).String()
	}
	return altText + msg
}

// Fmessage writes one formatted diagnostic line to w.
func Fmessage(w io.Writer, msg, color, altText string) {
	fmt.Fprintln(w, Colorize(msg, color, w, altText))
}

// Fwarning writes msg to w in yellow, or with a "warning: " prefix.
func Fwarning(w io.Writer, msg string) {
	Fmessage(w, msg, "yellow", "warning: ")
}

// Ferror writes msg to w in red, or with an "error: " prefix.
func Ferror(w io.Writer, msg string) {
	Fmessage(w, msg, "red", "error: ")
}

// Message prints an uncolored informational message to stderr.
func Message(msg string) {
	Fmessage(os.Stderr, msg, "", "")
}

// Warning prints a warning to stderr.
func Warning(msg string) {
	Fwarning(os.Stderr, msg)
}

// Error prints an error to stderr.
func Error(msg string) {
	Ferror(os.Stderr, msg)
}
