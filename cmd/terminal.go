package cmd

import (
	"os"

	"github.com/fatih/color"

	isatty "github.com/mattn/go-isatty"
)

// isTerminal determines whether or not a file descriptor refers to a terminal,
// including mintty-based terminals.
func isTerminal(fd uintptr) bool {
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// ConfigureColor enables colorized output only if standard output is a
// terminal.
func ConfigureColor() {
	color.NoColor = !isTerminal(os.Stdout.Fd())
}
