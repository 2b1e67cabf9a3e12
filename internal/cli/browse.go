package cli

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/opencode-ai/palettes/internal/tui"
)

var browseTheme string

func init() {
	rootCmd.AddCommand(browseCmd)
	browseCmd.Flags().StringVar(&browseTheme, "theme", "", "TUI theme (default from config)")
}

var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Browse palettes interactively",
	Long:  "Launch a terminal browser over every palette in the catalog.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runBrowse()
	},
}

func runBrowse() error {
	if IsNonInteractive() {
		return &PreflightError{
			Message:  "browse requires an interactive terminal",
			Hint:     "Run without --non-interactive and with a TTY, or use list/show",
			NextStep: "palettes list",
		}
	}

	cat, err := loadCatalog()
	if err != nil {
		return err
	}

	tuiConfig := tui.Config{Catalog: cat}
	if cfg := GetConfig(); cfg != nil {
		tuiConfig.Theme = cfg.TUI.Theme
	}
	if browseTheme != "" {
		tuiConfig.Theme = browseTheme
	}

	return tui.Run(tuiConfig)
}

func hasTTY() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
}
