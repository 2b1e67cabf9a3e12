package codegen

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
)

// WriteResult reports what WriteAll did with one file.
type WriteResult struct {
	Path    string
	Changed bool
}

// WriteAll writes generated files below outDir. Files whose content is
// already up to date are left untouched.
func WriteAll(outDir string, files map[string][]byte, logger zerolog.Logger) ([]WriteResult, error) {
	results := make([]WriteResult, 0, len(files))
	for _, rel := range SortedPaths(files) {
		path := filepath.Join(outDir, filepath.FromSlash(rel))
		src := files[rel]

		if existing, err := os.ReadFile(path); err == nil && bytes.Equal(existing, src) {
			logger.Debug().Str("path", path).Msg("generated file up to date")
			results = append(results, WriteResult{Path: path})
			continue
		}

		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return results, fmt.Errorf("create output dir for %s: %w", path, err)
		}
		if err := os.WriteFile(path, src, 0o644); err != nil {
			return results, fmt.Errorf("write %s: %w", path, err)
		}
		logger.Info().Str("path", path).Int("bytes", len(src)).Msg("wrote generated palette")
		results = append(results, WriteResult{Path: path, Changed: true})
	}
	return results, nil
}
