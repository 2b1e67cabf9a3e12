package styles

import "github.com/charmbracelet/lipgloss"

// Styles contains lipgloss styles derived from theme tokens.
type Styles struct {
	Theme    Theme
	Title    lipgloss.Style
	Text     lipgloss.Style
	Muted    lipgloss.Style
	Accent   lipgloss.Style
	Panel    lipgloss.Style
	Border   lipgloss.Style
	Focus    lipgloss.Style
	Selected lipgloss.Style
	Success  lipgloss.Style
	Warning  lipgloss.Style
	Error    lipgloss.Style
}

// DefaultStyles builds styles from the default theme.
func DefaultStyles() Styles {
	return BuildStyles(DefaultTheme)
}

// BuildStyles converts theme tokens into lipgloss styles.
func BuildStyles(theme Theme) Styles {
	tokens := theme.Tokens

	return Styles{
		Theme:    theme,
		Title:    lipgloss.NewStyle().Foreground(tokens.Text.Lipgloss()).Bold(true),
		Text:     lipgloss.NewStyle().Foreground(tokens.Text.Lipgloss()),
		Muted:    lipgloss.NewStyle().Foreground(tokens.TextMuted.Lipgloss()),
		Accent:   lipgloss.NewStyle().Foreground(tokens.Accent.Lipgloss()),
		Panel:    lipgloss.NewStyle().Foreground(tokens.Text.Lipgloss()).Background(tokens.Panel.Lipgloss()).BorderStyle(lipgloss.NormalBorder()).BorderForeground(tokens.Border.Lipgloss()),
		Border:   lipgloss.NewStyle().Foreground(tokens.Border.Lipgloss()),
		Focus:    lipgloss.NewStyle().Foreground(tokens.Focus.Lipgloss()).Bold(true),
		Selected: lipgloss.NewStyle().Foreground(tokens.Background.Lipgloss()).Background(tokens.Focus.Lipgloss()),
		Success:  lipgloss.NewStyle().Foreground(tokens.Success.Lipgloss()),
		Warning:  lipgloss.NewStyle().Foreground(tokens.Warning.Lipgloss()),
		Error:    lipgloss.NewStyle().Foreground(tokens.Error.Lipgloss()),
	}
}
