package styles

import "github.com/opencode-ai/palettes/pkg/color"

// DefaultTheme is the baseline theme.
var DefaultTheme = Theme{
	Name: "default",
	Tokens: ThemeTokens{
		Background: color.MustParseHex("#0B0F14"),
		Panel:      color.MustParseHex("#121821"),
		Text:       color.MustParseHex("#E6EDF3"),
		TextMuted:  color.MustParseHex("#8B9AAE"),
		Border:     color.MustParseHex("#223043"),
		Accent:     color.MustParseHex("#5B8DEF"),
		Focus:      color.MustParseHex("#7AA2F7"),
		Success:    color.MustParseHex("#3FB950"),
		Warning:    color.MustParseHex("#D29922"),
		Error:      color.MustParseHex("#F85149"),
	},
}
