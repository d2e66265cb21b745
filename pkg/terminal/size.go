// Package terminal is the ambient screen-size and capability probe for
// weft. It answers two questions the core never asks the OS itself: how big
// is the display surface, and is there a real terminal attached at all.
package terminal

import (
	"os"
	"strconv"

	"golang.org/x/sys/unix"
)

// Size holds terminal dimensions in character cells.
type Size struct {
	Cols int
	Rows int
}

// GetSize returns the current terminal dimensions. It tries multiple
// strategies in order:
//  1. TIOCGWINSZ ioctl on stdout (then stderr, in case stdout is redirected)
//  2. COLUMNS/LINES environment variables
//  3. Fallback to 80x24
func GetSize() Size {
	for _, fd := range []uintptr{os.Stdout.Fd(), os.Stderr.Fd()} {
		if s, ok := sizeFromIoctl(fd); ok {
			return s
		}
	}
	return sizeFromEnv()
}

// GetSizeFromFd returns terminal size from a specific file descriptor,
// with the same env and 80x24 fallbacks as GetSize.
func GetSizeFromFd(fd uintptr) Size {
	if s, ok := sizeFromIoctl(fd); ok {
		return s
	}
	return sizeFromEnv()
}

// ScreenSize adapts GetSize to the (width, height) shape the model
// registry's ambient provider wants.
func ScreenSize() (int, int) {
	s := GetSize()
	return s.Cols, s.Rows
}

func sizeFromIoctl(fd uintptr) (Size, bool) {
	ws, err := unix.IoctlGetWinsize(int(fd), unix.TIOCGWINSZ)
	if err != nil || ws.Col == 0 || ws.Row == 0 {
		return Size{}, false
	}
	return Size{Cols: int(ws.Col), Rows: int(ws.Row)}, true
}

func sizeFromEnv() Size {
	return Size{
		Cols: envInt("COLUMNS", 80),
		Rows: envInt("LINES", 24),
	}
}

// envInt reads a positive integer from the named environment variable,
// returning fallback if it is unset, empty, or not a valid positive
// integer.
func envInt(name string, fallback int) int {
	v := os.Getenv(name)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return fallback
	}
	return n
}
