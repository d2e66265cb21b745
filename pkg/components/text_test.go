package components

import (
	"strings"
	"testing"

	"gitlab.com/tinyland/lab/weft/pkg/model"
)

func newComponentRegistry(t *testing.T) *model.Registry {
	t.Helper()
	reg := model.NewRegistry()
	reg.SetScreenSize(func() (int, int) { return 20, 5 })
	if err := RegisterAll(reg); err != nil {
		t.Fatalf("RegisterAll: %v", err)
	}
	return reg
}

func TestTextFillsItsBounds(t *testing.T) {
	reg := newComponentRegistry(t)

	m, err := reg.New(TextName, model.State{
		"content": "hi", "width": 6, "height": 3,
	})
	if err != nil {
		t.Fatalf("new text: %v", err)
	}

	got, err := m.View()
	if err != nil {
		t.Fatalf("View: %v", err)
	}
	if !strings.HasSuffix(got, "\n") {
		t.Fatalf("text block must be newline-terminated: %q", got)
	}

	lines := strings.Split(strings.TrimSuffix(got, "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("rendered %d lines, want 3:\n%q", len(lines), got)
	}
	for i, line := range lines {
		if VisibleLen(line) != 6 {
			t.Errorf("line %d width = %d, want 6 (%q)", i, VisibleLen(line), line)
		}
	}
	if lines[0] != "hi    " {
		t.Errorf("line 0 = %q, want %q", lines[0], "hi    ")
	}
}

func TestTextWrapsLongContent(t *testing.T) {
	reg := newComponentRegistry(t)

	m, err := reg.New(TextName, model.State{
		"content": "one two three", "width": 4, "height": 3,
	})
	if err != nil {
		t.Fatalf("new text: %v", err)
	}

	got, _ := m.View()
	lines := strings.Split(strings.TrimSuffix(got, "\n"), "\n")
	if strings.TrimRight(lines[0], " ") != "one" {
		t.Errorf("line 0 = %q, want wrapped %q", lines[0], "one")
	}
	if strings.TrimRight(lines[1], " ") != "two" {
		t.Errorf("line 1 = %q, want wrapped %q", lines[1], "two")
	}
}

func TestTextCenterAlign(t *testing.T) {
	reg := newComponentRegistry(t)

	m, err := reg.New(TextName, model.State{
		"content": "ab", "align": "center", "width": 6, "height": 1,
	})
	if err != nil {
		t.Fatalf("new text: %v", err)
	}

	got, _ := m.View()
	if got != "  ab  \n" {
		t.Errorf("centered view = %q, want %q", got, "  ab  \n")
	}
}

func TestTextStyledOutputKeepsWidth(t *testing.T) {
	reg := newComponentRegistry(t)

	m, err := reg.New(TextName, model.State{
		"content": "x", "fg": "#7C3AED", "bold": true, "width": 4, "height": 1,
	})
	if err != nil {
		t.Fatalf("new text: %v", err)
	}

	got, _ := m.View()
	line := strings.TrimSuffix(got, "\n")
	if VisibleLen(line) != 4 {
		t.Errorf("styled line visible width = %d, want 4 (%q)", VisibleLen(line), line)
	}
}

func TestFillPaintsBounds(t *testing.T) {
	reg := newComponentRegistry(t)

	m, err := reg.New(FillName, model.State{
		"char": "#", "width": 3, "height": 2,
	})
	if err != nil {
		t.Fatalf("new fill: %v", err)
	}

	got, _ := m.View()
	if got != "###\n###\n" {
		t.Errorf("fill view = %q", got)
	}
}

func TestFillRejectsWideChar(t *testing.T) {
	reg := newComponentRegistry(t)

	m, err := reg.New(FillName, model.State{
		"char": "語", "width": 2, "height": 1,
	})
	if err != nil {
		t.Fatalf("new fill: %v", err)
	}

	// Double-width rune would break the cell grid; falls back to space.
	got, _ := m.View()
	if got != "  \n" {
		t.Errorf("wide-char fill = %q, want two spaces", got)
	}
}

func TestStackedTextBlocksCompose(t *testing.T) {
	reg := newComponentRegistry(t)
	err := reg.Register(&model.Definition{
		Name:      "stack",
		Container: true,
		Children: []model.ChildSpec{
			{Select: model.Use{Name: TextName}, Weight: 1,
				Map: func(model.State) model.State { return model.State{"content": "top"} }},
			{Select: model.Use{Name: TextName}, Weight: 1,
				Map: func(model.State) model.State { return model.State{"content": "bottom"} }},
		},
	})
	if err != nil {
		t.Fatalf("register stack: %v", err)
	}

	m, err := reg.New("stack", model.State{"width": 8, "height": 2})
	if err != nil {
		t.Fatalf("new stack: %v", err)
	}

	got, err := m.View()
	if err != nil {
		t.Fatalf("View: %v", err)
	}
	// Newline termination keeps sibling blocks on separate lines even
	// though the container concatenates with no separator.
	want := "top     \nbottom  \n"
	if got != want {
		t.Errorf("stacked view = %q, want %q", got, want)
	}
}

func TestStringHelpers(t *testing.T) {
	if got := PadRight("ab", 4); got != "ab  " {
		t.Errorf("PadRight = %q", got)
	}
	if got := PadRight("abcdef", 3); got != "abc" {
		t.Errorf("PadRight overflow = %q, want truncated", got)
	}
	if got := PadCenter("ab", 5); got != " ab  " {
		t.Errorf("PadCenter = %q", got)
	}
	if got := Truncate("hello", 4, "…"); VisibleLen(got) != 4 {
		t.Errorf("Truncate width = %d (%q)", VisibleLen(got), got)
	}
	if got := VisibleLen("\x1b[1mbold\x1b[0m"); got != 4 {
		t.Errorf("VisibleLen ignores ANSI: got %d", got)
	}
}

func TestFitBlockZeroDimensions(t *testing.T) {
	if got := FitBlock("x", 0, 3); got != "" {
		t.Errorf("FitBlock with zero width = %q", got)
	}
	if got := FitBlock("x", 3, 0); got != "" {
		t.Errorf("FitBlock with zero height = %q", got)
	}
}
