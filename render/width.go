package render

import (
	"os"

	"golang.org/x/term"
)

// DefaultWidth is used when the terminal width cannot be determined, e.g.
// when output is redirected to a file.
const DefaultWidth = 80

// WidthFunc reports the display width available at the time of a call.
type WidthFunc func() int

// TerminalWidth samples the current terminal width of stdout. It falls
// back to DefaultWidth when stdout is not a terminal or the reported size
// is not positive.
func TerminalWidth() int {
	w, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || w <= 0 {
		return DefaultWidth
	}
	return w
}

// FixedWidth returns a WidthFunc that always reports w.
func FixedWidth(w int) WidthFunc {
	return func() int { return w }
}
