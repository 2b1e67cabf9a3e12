package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/opencode-ai/palettes/internal/catalog"
	"github.com/opencode-ai/palettes/internal/codegen"
	"github.com/opencode-ai/palettes/internal/logging"
	"github.com/opencode-ai/palettes/pkg/palette"
)

var (
	genOut     string
	genPackage string
	genBuiltin bool
	genDryRun  bool
)

func init() {
	rootCmd.AddCommand(genCmd)
	genCmd.Flags().StringVarP(&genOut, "out", "o", "", "output directory (default generate.output from config)")
	genCmd.Flags().StringVar(&genPackage, "package", "", "package name when generating a single palette")
	genCmd.Flags().BoolVar(&genBuiltin, "builtin", false, "also generate the builtin palettes")
	genCmd.Flags().BoolVar(&genDryRun, "dry-run", false, "list the files that would be written")
}

type genResult struct {
	Path    string `json:"path"`
	Changed bool   `json:"changed"`
}

var genCmd = &cobra.Command{
	Use:   "gen [file|dir]...",
	Short: "Generate Go packages from palette declarations",
	Long: `Generate one Go package per palette. Each package holds a zero-size type
named after the palette with an UPPER_SNAKE constant and an accessor method
per color, plus Name, All, Len, Iter and Get.

Without arguments the sources listed under generate.sources in the config
are used.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := GetConfig()

		paths := args
		if len(paths) == 0 {
			paths = cfg.Generate.Sources
		}
		sources, err := catalog.LoadPaths(paths)
		if err != nil {
			return err
		}
		if genBuiltin {
			builtins, err := catalog.LoadBuiltins()
			if err != nil {
				return err
			}
			sources = append(sources, builtins...)
		}
		if len(sources) == 0 {
			return &PreflightError{
				Message:  "no palette sources to generate",
				Hint:     "Pass .palette or .yaml files, set generate.sources in the config, or use --builtin",
				NextStep: "palettes gen colors.palette --out internal/palettes",
			}
		}

		defs := make([]palette.Definition, 0, len(sources))
		for _, src := range sources {
			defs = append(defs, src.Definition)
		}

		outDir := genOut
		if outDir == "" {
			outDir = cfg.Generate.Output
		}
		pkg := genPackage
		if pkg == "" {
			pkg = cfg.Generate.Package
		}
		opts := codegen.Options{
			Package:       pkg,
			ColorImport:   cfg.Generate.ColorImport,
			PaletteImport: cfg.Generate.PaletteImport,
		}

		step := startProgress(cmd.ErrOrStderr(), fmt.Sprintf("Generating %d palette(s)", len(defs)))
		files, err := codegen.GenerateAll(defs, opts)
		if err != nil {
			step.Fail(err)
			return generateError(err)
		}

		var results []genResult
		if genDryRun {
			for _, path := range codegen.SortedPaths(files) {
				results = append(results, genResult{Path: path, Changed: true})
			}
			step.Done("dry run")
		} else {
			written, err := codegen.WriteAll(outDir, files, logging.Component("codegen"))
			if err != nil {
				step.Fail(err)
				return err
			}
			changed := 0
			for _, w := range written {
				results = append(results, genResult{Path: w.Path, Changed: w.Changed})
				if w.Changed {
					changed++
				}
			}
			step.Done(fmt.Sprintf("%d written, %d unchanged", changed, len(written)-changed))
		}

		out := cmd.OutOrStdout()
		if IsJSONOutput() || IsJSONLOutput() {
			return WriteOutput(out, results)
		}
		rows := make([][]string, 0, len(results))
		for _, r := range results {
			status := "unchanged"
			if r.Changed {
				status = "written"
			}
			if genDryRun {
				status = "would write"
			}
			rows = append(rows, []string{r.Path, status})
		}
		return writeTable(out, []string{"PATH", "STATUS"}, rows)
	},
}

func generateError(err error) error {
	var verr *codegen.ValidationError
	if errors.As(err, &verr) {
		return &PreflightError{
			Message:  err.Error(),
			Hint:     "Rename the listed colors so their constant and accessor names are distinct exported Go identifiers",
			NextStep: "palettes check",
		}
	}
	return err
}
