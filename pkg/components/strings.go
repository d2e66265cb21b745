// Package components provides ready-made leaf components for weft trees
// plus the ANSI-aware string helpers they are built from. Everything here
// sits on top of the model package; the core never depends back on it.
package components

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// VisibleLen returns the visible width of s in terminal cells. ANSI escape
// sequences are ignored; wide characters count as width 2.
func VisibleLen(s string) int {
	return ansi.StringWidth(s)
}

// Truncate cuts s to at most maxWidth visible cells, appending tail when a
// cut happens. The tail counts toward maxWidth.
func Truncate(s string, maxWidth int, tail string) string {
	if maxWidth <= 0 {
		return ""
	}
	return ansi.Truncate(s, maxWidth, tail)
}

// PadRight pads s with trailing spaces to exactly width visible cells,
// truncating first if s is too wide.
func PadRight(s string, width int) string {
	if width <= 0 {
		return ""
	}
	s = ansi.Truncate(s, width, "")
	if vis := ansi.StringWidth(s); vis < width {
		return s + strings.Repeat(" ", width-vis)
	}
	return s
}

// PadCenter centers s within width visible cells; an odd remainder leaves
// the extra space on the right.
func PadCenter(s string, width int) string {
	if width <= 0 {
		return ""
	}
	s = ansi.Truncate(s, width, "")
	vis := ansi.StringWidth(s)
	if vis >= width {
		return s
	}
	left := (width - vis) / 2
	right := width - vis - left
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", right)
}

// FitBlock word-wraps s and shapes it into exactly height lines of exactly
// width cells, padding or clipping as needed. This is how leaf components
// honor the bounds their container hands them.
func FitBlock(s string, width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}

	wrapped := strings.Split(ansi.Wrap(s, width, ""), "\n")
	lines := make([]string, height)
	for i := 0; i < height; i++ {
		if i < len(wrapped) {
			lines[i] = PadRight(wrapped[i], width)
		} else {
			lines[i] = strings.Repeat(" ", width)
		}
	}
	return strings.Join(lines, "\n")
}
