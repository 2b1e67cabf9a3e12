package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/opencode-ai/palettes/internal/tui/styles"
	"github.com/opencode-ai/palettes/pkg/color"
)

var (
	nearestCount    int
	nearestPalettes []string
)

func init() {
	rootCmd.AddCommand(nearestCmd)
	nearestCmd.Flags().IntVarP(&nearestCount, "count", "n", 5, "number of matches (0 for all)")
	nearestCmd.Flags().StringSliceVarP(&nearestPalettes, "palette", "p", nil, "restrict the search to these palettes")
}

var nearestCmd = &cobra.Command{
	Use:   "nearest <color>",
	Short: "Find the palette colors closest to a color",
	Long:  "Rank palette colors by perceptual (CIEDE2000) distance to a hex color such as #ff8800.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		target, err := color.ParseHex(args[0])
		if err != nil {
			return &PreflightError{
				Message: err.Error(),
				Hint:    "Colors are written #rgb, #rgba, #rrggbb or #rrggbbaa",
			}
		}

		cat, err := loadCatalog()
		if err != nil {
			return err
		}
		matches, err := cat.Nearest(target, nearestCount, nearestPalettes...)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if IsJSONOutput() || IsJSONLOutput() {
			return WriteOutput(out, matches)
		}

		rows := make([][]string, 0, len(matches))
		for _, m := range matches {
			rows = append(rows, []string{
				m.Palette,
				m.Name,
				m.Hex,
				fmt.Sprintf("%.4f", m.Distance),
				styles.Swatch(m.Value, 4),
			})
		}
		return writeTable(out, []string{"PALETTE", "NAME", "HEX", "DISTANCE", ""}, rows)
	},
}
