package terminal

import (
	"os"

	"github.com/mattn/go-isatty"
)

// IsInteractive reports whether both stdin and stdout are attached to a
// terminal (including Cygwin pseudo-terminals). A program driving a weft
// runtime refuses to take over the screen when this is false.
func IsInteractive() bool {
	return isTTY(os.Stdin.Fd()) && isTTY(os.Stdout.Fd())
}

// IsOutputTTY reports whether stdout alone is a terminal. Useful when
// input is piped but output still supports escape sequences.
func IsOutputTTY() bool {
	return isTTY(os.Stdout.Fd())
}

func isTTY(fd uintptr) bool {
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
