package components

import (
	"fmt"

	"github.com/opencode-ai/palettes/internal/tui/styles"
	"github.com/opencode-ai/palettes/pkg/palette"
)

// SwatchList renders the entries of one palette with a cursor.
type SwatchList struct {
	Palette *palette.Palette
	Index   int
}

// Move shifts the cursor, wrapping at either end.
func (l *SwatchList) Move(delta int) {
	n := l.Palette.Len()
	if n == 0 {
		l.Index = 0
		return
	}
	l.Index = ((l.Index+delta)%n + n) % n
}

// Render renders up to height entry lines around the cursor, preceded by
// a title line.
func (l *SwatchList) Render(styleSet styles.Styles, height int) []string {
	if l.Palette == nil {
		return nil
	}
	lines := []string{styleSet.Title.Render(fmt.Sprintf("%s (%d colors)", l.Palette.Name(), l.Palette.Len()))}
	if l.Palette.Len() == 0 {
		return append(lines, EmptyPalette(l.Palette.Name()).Render(styleSet))
	}

	start, end := window(l.Index, l.Palette.Len(), height)
	for i := start; i < end; i++ {
		entry := l.Palette.Entry(i)
		label := fmt.Sprintf(" %-24s", truncate(entry.Name, 24))
		detail := fmt.Sprintf("%s  %s", entry.Value.String(), entry.Value.CSS())
		swatch := styles.LabeledSwatch(entry.Value, " "+palette.UpperSnake(entry.Name), 28)

		if i == l.Index {
			lines = append(lines, swatch+styleSet.Focus.Render(label)+" "+styleSet.Text.Render(detail))
			continue
		}
		lines = append(lines, swatch+label+" "+styleSet.Muted.Render(detail))
	}
	return lines
}

// window returns the [start, end) range of size at most height that
// contains cursor.
func window(cursor, total, height int) (int, int) {
	if height <= 0 || total <= height {
		return 0, total
	}
	start := cursor - height/2
	if start < 0 {
		start = 0
	}
	if start+height > total {
		start = total - height
	}
	return start, start + height
}
