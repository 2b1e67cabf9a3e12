package cli

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/opencode-ai/palettes/internal/catalog"
	"github.com/opencode-ai/palettes/internal/codegen"
	"github.com/opencode-ai/palettes/pkg/palette"
)

func init() {
	rootCmd.AddCommand(checkCmd)
}

type checkResult struct {
	Palette  string   `json:"palette"`
	Source   string   `json:"source"`
	Colors   int      `json:"colors"`
	OK       bool     `json:"ok"`
	Problems []string `json:"problems,omitempty"`
	Warnings []string `json:"warnings,omitempty"`
}

var checkCmd = &cobra.Command{
	Use:   "check [file|dir]...",
	Short: "Parse and validate palettes without generating code",
	Long: `Parse palette sources and report anything that would stop code generation.
Without arguments every palette in the catalog is checked.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		var (
			sources []catalog.Source
			err     error
		)
		if len(args) > 0 {
			sources, err = catalog.LoadPaths(args)
		} else {
			sources, err = catalog.LoadFromSearchPaths(resolveProjectDir(), GetConfig().Catalog.Dirs...)
		}
		if err != nil {
			return err
		}

		results := make([]checkResult, 0, len(sources))
		failed := 0
		for _, src := range sources {
			r := checkSource(src)
			if !r.OK {
				failed++
			}
			results = append(results, r)
		}

		out := cmd.OutOrStdout()
		if IsJSONOutput() || IsJSONLOutput() {
			if err := WriteOutput(out, results); err != nil {
				return err
			}
		} else {
			rows := make([][]string, 0, len(results))
			for _, r := range results {
				status := "ok"
				if !r.OK {
					status = "FAIL"
				}
				rows = append(rows, []string{r.Palette, strconv.Itoa(r.Colors), status, r.Source})
			}
			if err := writeTable(out, []string{"PALETTE", "COLORS", "STATUS", "SOURCE"}, rows); err != nil {
				return err
			}
			for _, r := range results {
				for _, p := range r.Problems {
					fmt.Fprintf(out, "%s: error: %s\n", r.Palette, p)
				}
				for _, w := range r.Warnings {
					fmt.Fprintf(out, "%s: warning: %s\n", r.Palette, w)
				}
			}
		}

		if failed > 0 {
			return fmt.Errorf("%d of %d palettes failed validation", failed, len(results))
		}
		return nil
	},
}

func checkSource(src catalog.Source) checkResult {
	def := src.Definition
	r := checkResult{
		Palette: def.Name,
		Source:  def.Source,
		Colors:  len(def.Entries),
		OK:      true,
	}

	if err := codegen.Validate(def, codegen.Options{}); err != nil {
		r.OK = false
		var verr *codegen.ValidationError
		if errors.As(err, &verr) {
			for _, p := range verr.Problems {
				msg := p.Msg
				if p.Entry.Pos.IsValid() {
					msg = p.Entry.Pos.String() + ": " + msg
				}
				r.Problems = append(r.Problems, msg)
			}
		} else {
			r.Problems = append(r.Problems, err.Error())
		}
	}

	for _, s := range palette.New(def).Shadowed() {
		r.Warnings = append(r.Warnings, fmt.Sprintf("%q is unreachable by Get; %q has the same lookup key %q", s.Hidden.Name, s.First.Name, s.Key))
	}
	return r
}
