package styles

import (
	"sort"
	"strings"

	"github.com/opencode-ai/palettes/pkg/color"
)

// ThemeTokens defines the semantic color roles for the TUI.
type ThemeTokens struct {
	Background color.Color
	Panel      color.Color
	Text       color.Color
	TextMuted  color.Color
	Border     color.Color
	Accent     color.Color
	Focus      color.Color
	Success    color.Color
	Warning    color.Color
	Error      color.Color
}

// Theme bundles tokens with a name.
type Theme struct {
	Name   string
	Tokens ThemeTokens
}

// Themes lists available themes by name.
var Themes = map[string]Theme{
	"default":       DefaultTheme,
	"high-contrast": HighContrastTheme,
}

// ThemeNames returns the registered theme names in order.
func ThemeNames() []string {
	names := make([]string, 0, len(Themes))
	for name := range Themes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ThemeByName resolves a theme, falling back to DefaultTheme for unknown
// or empty names.
func ThemeByName(name string) (Theme, bool) {
	theme, ok := Themes[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return DefaultTheme, false
	}
	return theme, true
}
