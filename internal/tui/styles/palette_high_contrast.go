package styles

import "github.com/opencode-ai/palettes/pkg/color"

// HighContrastTheme favors visibility on low-contrast terminals.
var HighContrastTheme = Theme{
	Name: "high-contrast",
	Tokens: ThemeTokens{
		Background: color.MustParseHex("#000000"),
		Panel:      color.MustParseHex("#0A0A0A"),
		Text:       color.MustParseHex("#FFFFFF"),
		TextMuted:  color.MustParseHex("#C0C0C0"),
		Border:     color.MustParseHex("#FFFFFF"),
		Accent:     color.MustParseHex("#00A2FF"),
		Focus:      color.MustParseHex("#FFD400"),
		Success:    color.MustParseHex("#00FF5A"),
		Warning:    color.MustParseHex("#FFB000"),
		Error:      color.MustParseHex("#FF4040"),
	},
}
