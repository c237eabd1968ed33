// Package util collects small terminal and error helpers shared across commands.
package util

import (
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"
)

// Quantify returns a pluralized count, e.g. "1 episode" or "26 episodes".
func Quantify(count int, singular, plural string) string {
	if count == 1 {
		return fmt.Sprintf("%d %s", count, singular)
	}
	return fmt.Sprintf("%d %s", count, plural)
}

// Capitalize transforms the first byte of an ASCII string to upper case.
func Capitalize(s string) string {
	if len(s) == 0 {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// IsTerminal reports whether f is attached to a terminal.
func IsTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// PrintErasable prints a transient status line to stdout and returns a closure that clears it.
// Nothing is printed when stdout is not a terminal, so piped output stays clean.
func PrintErasable(msg string) (eraser func()) {
	if !IsTerminal(os.Stdout) {
		return func() {}
	}

	fmt.Fprintf(os.Stdout, "\r%s", msg)
	return func() {
		fmt.Fprintf(os.Stdout, "\r%s\r", strings.Repeat(" ", len([]rune(msg))))
	}
}

// Ignore executes f and discards its error.
func Ignore(f func() error) {
	_ = f()
}
