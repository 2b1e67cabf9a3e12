package components

import (
	"strings"
	"testing"

	"github.com/opencode-ai/palettes/internal/tui/styles"
	"github.com/opencode-ai/palettes/pkg/color"
	"github.com/opencode-ai/palettes/pkg/palette"
)

func samplePickerItems() []PickerItem {
	return []PickerItem{
		{Name: "Common", Description: "named basics", Colors: []color.Color{color.New(0, 0, 0, 255)}},
		{Name: "Dawnbringer16", Description: "pixel art", Colors: make([]color.Color, 16)},
		{Name: "Dawnbringer32", Description: "pixel art", Colors: make([]color.Color, 32)},
	}
}

func TestPickerFilterAndMove(t *testing.T) {
	p := NewPicker(samplePickerItems())

	p.Move(-1)
	if got := p.SelectedItem(); got == nil || got.Name != "Dawnbringer32" {
		t.Fatalf("expected wrap to Dawnbringer32, got %+v", got)
	}

	p.SetQuery("pixel 16")
	if len(p.Visible()) != 1 {
		t.Fatalf("expected 1 visible item, got %d", len(p.Visible()))
	}
	if got := p.SelectedItem(); got == nil || got.Name != "Dawnbringer16" {
		t.Fatalf("expected Dawnbringer16 selected, got %+v", got)
	}

	p.SetQuery("nothing")
	if p.SelectedItem() != nil {
		t.Fatalf("expected no selection")
	}

	p.Reset()
	if p.Query != "" || p.Index != 0 {
		t.Fatalf("expected reset state, got %+v", p)
	}
}

func TestPickerRender(t *testing.T) {
	styleSet := styles.DefaultStyles()
	p := NewPicker(samplePickerItems())
	p.Move(1)

	out := strings.Join(p.Render(styleSet, 80), "\n")
	if !strings.Contains(out, "> Dawnbringer16 (16)") {
		t.Fatalf("expected selected marker, got:\n%s", out)
	}
	if !strings.Contains(out, "Common (1)") {
		t.Fatalf("expected Common row, got:\n%s", out)
	}

	p.SetQuery("zzz")
	out = strings.Join(p.Render(styleSet, 80), "\n")
	if !strings.Contains(out, "No palettes match 'zzz'") {
		t.Fatalf("expected filtered empty state, got:\n%s", out)
	}

	empty := NewPicker(nil)
	out = strings.Join(empty.Render(styleSet, 80), "\n")
	if !strings.Contains(out, "No palettes found") {
		t.Fatalf("expected catalog empty state, got:\n%s", out)
	}
}

func TestTruncate(t *testing.T) {
	if got := truncate("abcdef", 10); got != "abcdef" {
		t.Fatalf("unexpected %q", got)
	}
	if got := truncate("abcdefghij", 6); got != "abc..." {
		t.Fatalf("unexpected %q", got)
	}
}

func TestSwatchList(t *testing.T) {
	p := palette.New(palette.Definition{
		Name: "Warm",
		Entries: []palette.Entry{
			{Name: "ember", Value: color.New(255, 64, 0, 255)},
			{Name: "ash", Value: color.New(80, 80, 80, 255)},
			{Name: "sand", Value: color.New(200, 180, 120, 255)},
		},
	})
	list := &SwatchList{Palette: p}
	list.Move(-1)
	if list.Index != 2 {
		t.Fatalf("expected wrap to 2, got %d", list.Index)
	}

	lines := list.Render(styles.DefaultStyles(), 2)
	if len(lines) != 3 {
		t.Fatalf("expected title plus 2 rows, got %d", len(lines))
	}
	out := strings.Join(lines, "\n")
	if !strings.Contains(out, "Warm (3 colors)") || !strings.Contains(out, "SAND") || !strings.Contains(out, "#c8b478ff") {
		t.Fatalf("unexpected render:\n%s", out)
	}

	empty := &SwatchList{Palette: palette.New(palette.Definition{Name: "Nothing"})}
	empty.Move(1)
	if !strings.Contains(strings.Join(empty.Render(styles.DefaultStyles(), 5), "\n"), "Nothing has no colors") {
		t.Fatalf("expected empty palette state")
	}
}

func TestWindow(t *testing.T) {
	cases := []struct{ cursor, total, height, start, end int }{
		{0, 3, 10, 0, 3},
		{0, 10, 4, 0, 4},
		{5, 10, 4, 3, 7},
		{9, 10, 4, 6, 10},
	}
	for _, c := range cases {
		start, end := window(c.cursor, c.total, c.height)
		if start != c.start || end != c.end {
			t.Fatalf("window(%d,%d,%d) = %d,%d; want %d,%d", c.cursor, c.total, c.height, start, end, c.start, c.end)
		}
	}
}
