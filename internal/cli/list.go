package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(listCmd)
}

type paletteSummary struct {
	Name        string `json:"name"`
	Colors      int    `json:"colors"`
	Source      string `json:"source"`
	Builtin     bool   `json:"builtin"`
	Description string `json:"description,omitempty"`
	URL         string `json:"url,omitempty"`
}

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List available palettes",
	Long:    "List palettes from .palettes/, ~/.config/palettes, /usr/share/palettes and the builtin set, in precedence order.",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cat, err := loadCatalog()
		if err != nil {
			return err
		}

		summaries := make([]paletteSummary, 0, cat.Len())
		for _, p := range cat.Palettes() {
			src, _ := cat.Source(p.Name())
			summaries = append(summaries, paletteSummary{
				Name:        p.Name(),
				Colors:      p.Len(),
				Source:      p.Source(),
				Builtin:     src.Builtin,
				Description: src.Description,
				URL:         src.URL,
			})
		}

		out := cmd.OutOrStdout()
		if IsJSONOutput() || IsJSONLOutput() {
			return WriteOutput(out, summaries)
		}
		if len(summaries) == 0 {
			fmt.Fprintln(out, "No palettes found.")
			return nil
		}

		rows := make([][]string, 0, len(summaries))
		for _, s := range summaries {
			rows = append(rows, []string{s.Name, strconv.Itoa(s.Colors), formatYesNo(s.Builtin), s.Source})
		}
		return writeTable(out, []string{"NAME", "COLORS", "BUILTIN", "SOURCE"}, rows)
	},
}
