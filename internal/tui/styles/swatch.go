package styles

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/opencode-ai/palettes/pkg/color"
)

var (
	black = color.New(0, 0, 0, 255)
	white = color.New(255, 255, 255, 255)
)

// ContrastText picks black or white, whichever reads better on c.
func ContrastText(c color.Color) color.Color {
	l, _, _ := c.Colorful().Lab()
	if l > 0.6 {
		return black
	}
	return white
}

// Swatch renders a block of width cells filled with c.
func Swatch(c color.Color, width int) string {
	if width <= 0 {
		return ""
	}
	return lipgloss.NewStyle().Background(c.Lipgloss()).Render(strings.Repeat(" ", width))
}

// LabeledSwatch renders label on a c background, padded to width cells.
func LabeledSwatch(c color.Color, label string, width int) string {
	return lipgloss.NewStyle().
		Background(c.Lipgloss()).
		Foreground(ContrastText(c).Lipgloss()).
		Width(width).
		Render(label)
}

// Strip renders one cell per color, in order, up to max cells.
func Strip(colors []color.Color, max int) string {
	if max > 0 && len(colors) > max {
		colors = colors[:max]
	}
	var b strings.Builder
	for _, c := range colors {
		b.WriteString(Swatch(c, 1))
	}
	return b.String()
}
