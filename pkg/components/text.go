package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"gitlab.com/tinyland/lab/weft/pkg/model"
)

// Component names registered by this package.
const (
	TextName = "text"
	FillName = "fill"
)

// RegisterText adds the "text" component to reg.
//
// Text is a geometry-owning leaf: it fills its bounds with the word-wrapped
// value of state["content"], aligned per state["align"] ("left" default,
// "center"), and styled with lipgloss when state["fg"] (hex color) or
// state["bold"] are set. The rendered block is newline-terminated so that
// sibling blocks stack when a container concatenates them.
func RegisterText(reg *model.Registry) error {
	return reg.Register(&model.Definition{
		Name:      TextName,
		Container: true,
		Defaults: model.State{
			"content": "",
			"align":   "left",
		},
		View: textView,
	})
}

func textView(m *model.Model) (string, error) {
	b := m.Bounds()
	if b.Empty() {
		return "", nil
	}

	s := m.State()
	content := s.String("content", "")

	if s.String("align", "left") == "center" {
		padded := make([]string, 0, b.Height)
		for _, line := range strings.Split(FitBlock(content, b.Width, b.Height), "\n") {
			padded = append(padded, PadCenter(strings.TrimRight(line, " "), b.Width))
		}
		content = strings.Join(padded, "\n")
	} else {
		content = FitBlock(content, b.Width, b.Height)
	}

	style := lipgloss.NewStyle()
	styled := false
	if fg := s.String("fg", ""); fg != "" {
		style = style.Foreground(lipgloss.Color(fg))
		styled = true
	}
	if s.Bool("bold", false) {
		style = style.Bold(true)
		styled = true
	}
	if !styled {
		return content + "\n", nil
	}

	// Style line by line so padding stays outside the escape sequences.
	lines := strings.Split(content, "\n")
	for i, line := range lines {
		lines[i] = style.Render(line)
	}
	return strings.Join(lines, "\n") + "\n", nil
}

// RegisterFill adds the "fill" component to reg: a geometry-owning leaf
// that paints its bounds with a single rune from state["char"] (space
// default). Useful as a spacer and in layout tests.
func RegisterFill(reg *model.Registry) error {
	return reg.Register(&model.Definition{
		Name:      FillName,
		Container: true,
		Defaults: model.State{
			"char": " ",
		},
		View: func(m *model.Model) (string, error) {
			b := m.Bounds()
			if b.Empty() {
				return "", nil
			}
			ch := m.State().String("char", " ")
			if VisibleLen(ch) != 1 {
				ch = " "
			}
			row := strings.Repeat(ch, b.Width)
			rows := make([]string, b.Height)
			for i := range rows {
				rows[i] = row
			}
			return strings.Join(rows, "\n") + "\n", nil
		},
	})
}

// RegisterAll registers every component this package provides.
func RegisterAll(reg *model.Registry) error {
	if err := RegisterText(reg); err != nil {
		return err
	}
	return RegisterFill(reg)
}
