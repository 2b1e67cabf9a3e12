package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(getCmd)
}

var getCmd = &cobra.Command{
	Use:   "get <palette> <color>",
	Short: "Look up one color by name",
	Long: `Look up a color the way generated Get methods do: case, underscores and
other punctuation are ignored, so "customColor", "custom_color" and
"CUSTOM_COLOR" all match.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		cat, err := loadCatalog()
		if err != nil {
			return err
		}

		c, err := cat.Lookup(args[0], args[1])
		if err != nil {
			return &PreflightError{
				Message:  err.Error(),
				NextStep: fmt.Sprintf("palettes show %s", args[0]),
			}
		}

		out := cmd.OutOrStdout()
		if IsJSONOutput() || IsJSONLOutput() {
			return WriteOutput(out, newColorDetail(args[1], c))
		}
		fmt.Fprintln(out, c.String())
		return nil
	},
}
