package main

import (
	"os"

	"golang.org/x/term"
)

// WantTUI returns true if the CLI should show the interactive pause:
// stdout is a terminal and --no-tui was not set.
func WantTUI(noTUIFlag bool) bool {
	if noTUIFlag {
		return false
	}
	if os.Getenv("TAGDUMP_NO_TUI") != "" {
		return false
	}
	return term.IsTerminal(int(os.Stdout.Fd()))
}
