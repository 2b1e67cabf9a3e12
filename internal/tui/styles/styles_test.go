package styles

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"

	"github.com/opencode-ai/palettes/pkg/color"
)

func TestThemeByName(t *testing.T) {
	theme, ok := ThemeByName("High-Contrast")
	assert.True(t, ok)
	assert.Equal(t, "high-contrast", theme.Name)

	theme, ok = ThemeByName("neon")
	assert.False(t, ok)
	assert.Equal(t, DefaultTheme.Name, theme.Name)

	assert.Equal(t, []string{"default", "high-contrast"}, ThemeNames())
}

func TestBuildStylesUsesTokens(t *testing.T) {
	s := BuildStyles(HighContrastTheme)
	assert.Equal(t, lipgloss.Color("#ffd400"), s.Focus.GetForeground())
	assert.Equal(t, lipgloss.Color("#ffffff"), s.Text.GetForeground())
}

func TestContrastText(t *testing.T) {
	assert.Equal(t, black, ContrastText(color.MustParseHex("#ffff00")))
	assert.Equal(t, white, ContrastText(color.MustParseHex("#0000ff")))
	assert.Equal(t, white, ContrastText(color.MustParseHex("#140c1c")))
}

func TestSwatchWidth(t *testing.T) {
	assert.Equal(t, "", Swatch(color.New(1, 2, 3, 255), 0))
	out := Swatch(color.New(1, 2, 3, 255), 4)
	assert.Equal(t, 4, lipgloss.Width(out))

	strip := Strip([]color.Color{black, white, black}, 2)
	assert.Equal(t, 2, lipgloss.Width(strip))

	label := LabeledSwatch(white, "white", 10)
	assert.Equal(t, 10, lipgloss.Width(label))
	assert.True(t, strings.Contains(label, "white"))
}
