package catalog

import (
	"embed"
	"fmt"
	"io/fs"
	"sort"
)

//go:embed builtin/*.palette builtin/*.yaml
var builtinFS embed.FS

// LoadBuiltins returns the palettes bundled with the binary.
func LoadBuiltins() ([]Source, error) {
	entries, err := fs.ReadDir(builtinFS, "builtin")
	if err != nil {
		return nil, fmt.Errorf("read builtin palettes: %w", err)
	}

	sources := make([]Source, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		path := "builtin/" + entry.Name()
		data, err := builtinFS.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read builtin palette %s: %w", entry.Name(), err)
		}
		loaded, err := parseSource(path, data)
		if err != nil {
			return nil, err
		}
		for i := range loaded {
			loaded[i].Builtin = true
		}
		sources = append(sources, loaded...)
	}

	sort.Slice(sources, func(i, j int) bool {
		return sources[i].Name() < sources[j].Name()
	})

	return sources, nil
}
