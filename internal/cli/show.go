package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/opencode-ai/palettes/internal/tui/styles"
	"github.com/opencode-ai/palettes/pkg/color"
	"github.com/opencode-ai/palettes/pkg/palette"
)

func init() {
	rootCmd.AddCommand(showCmd)
}

type colorDetail struct {
	Name      string  `json:"name"`
	Constant  string  `json:"constant"`
	Accessor  string  `json:"accessor"`
	Hex       string  `json:"hex"`
	CSS       string  `json:"css"`
	R         uint8   `json:"r"`
	G         uint8   `json:"g"`
	B         uint8   `json:"b"`
	A         uint8   `json:"a"`
	Intensity float32 `json:"intensity"`
}

func newColorDetail(name string, c color.Color) colorDetail {
	return colorDetail{
		Name:      name,
		Constant:  palette.UpperSnake(name),
		Accessor:  palette.GoName(palette.LowerSnake(name)),
		Hex:       c.String(),
		CSS:       c.CSS(),
		R:         c.R(),
		G:         c.G(),
		B:         c.B(),
		A:         c.A(),
		Intensity: float32(c.Intensity()) / float32(color.NeutralIntensity),
	}
}

var showCmd = &cobra.Command{
	Use:   "show <palette>",
	Short: "Show the colors of a palette",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cat, err := loadCatalog()
		if err != nil {
			return err
		}
		p, ok := cat.Get(args[0])
		if !ok {
			return &PreflightError{
				Message:  fmt.Sprintf("palette %q not found", args[0]),
				Hint:     "Palette names ignore case and punctuation",
				NextStep: "palettes list",
			}
		}

		details := make([]colorDetail, 0, p.Len())
		for name, c := range p.Entries() {
			details = append(details, newColorDetail(name, c))
		}

		out := cmd.OutOrStdout()
		if IsJSONOutput() || IsJSONLOutput() {
			return WriteOutput(out, details)
		}

		fmt.Fprintf(out, "%s (%d colors) from %s\n", p.Name(), p.Len(), p.Source())
		rows := make([][]string, 0, len(details))
		for i, d := range details {
			rows = append(rows, []string{
				d.Name,
				d.Constant,
				d.Hex,
				d.CSS,
				styles.Swatch(p.Entry(i).Value, 4),
			})
		}
		if err := writeTable(out, []string{"NAME", "CONSTANT", "HEX", "CSS", ""}, rows); err != nil {
			return err
		}

		for _, s := range p.Shadowed() {
			fmt.Fprintf(out, "note: %q is hidden from lookup by %q (key %s)\n", s.Hidden.Name, s.First.Name, s.Key)
		}
		return nil
	},
}
