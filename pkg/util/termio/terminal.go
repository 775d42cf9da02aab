package termio

import (
	"os"

	"golang.org/x/term"
)

// IsTerminal reports whether f refers to an interactive terminal.  Escape
// sequences are only worth emitting when this holds, otherwise they end up
// verbatim in logs and pipes.
func IsTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
