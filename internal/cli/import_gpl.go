package cli

import (
	"bytes"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/opencode-ai/palettes/internal/gpl"
	"github.com/opencode-ai/palettes/pkg/palette"
)

var importOut string

func init() {
	rootCmd.AddCommand(importGPLCmd)
	importGPLCmd.Flags().StringVarP(&importOut, "out", "o", "", "write declarations to this file instead of stdout")
}

type importedPalette struct {
	Name   string        `json:"name"`
	Source string        `json:"source"`
	Colors []colorDetail `json:"colors"`
}

var importGPLCmd = &cobra.Command{
	Use:   "import-gpl <file.gpl|dir>...",
	Short: "Convert GIMP palettes into palette declarations",
	Long: `Convert GIMP .gpl palettes into declaration source. Palette names come
from the file name in PascalCase and color names are snake_cased. Directories
are searched recursively.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var defs []palette.Definition
		for _, arg := range args {
			info, err := os.Stat(arg)
			if err != nil {
				return fmt.Errorf("stat %s: %w", arg, err)
			}
			if info.IsDir() {
				imported, err := gpl.ImportDir(arg)
				if err != nil {
					return err
				}
				defs = append(defs, imported...)
				continue
			}
			def, err := gpl.ParseFile(arg)
			if err != nil {
				return err
			}
			if len(def.Entries) == 0 {
				logger.Warn().Str("path", arg).Msg("no colors found, skipping")
				continue
			}
			defs = append(defs, def)
		}

		out := cmd.OutOrStdout()
		if IsJSONOutput() || IsJSONLOutput() {
			result := make([]importedPalette, 0, len(defs))
			for _, def := range defs {
				p := importedPalette{Name: def.Name, Source: def.Source}
				for _, entry := range def.Entries {
					p.Colors = append(p.Colors, newColorDetail(entry.Name, entry.Value))
				}
				result = append(result, p)
			}
			return WriteOutput(out, result)
		}

		var buf bytes.Buffer
		if err := gpl.WriteDeclarations(&buf, defs); err != nil {
			return err
		}
		if importOut == "" {
			_, err := out.Write(buf.Bytes())
			return err
		}
		if err := os.WriteFile(importOut, buf.Bytes(), 0o644); err != nil {
			return fmt.Errorf("write %s: %w", importOut, err)
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "Wrote %d palette(s) to %s\n", len(defs), importOut)
		return nil
	},
}
