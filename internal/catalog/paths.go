package catalog

import (
	"os"
	"path/filepath"

	"github.com/opencode-ai/palettes/pkg/palette"
)

// SearchPaths returns palette directories in precedence order.
func SearchPaths(projectDir string) []string {
	paths := make([]string, 0, 3)
	if projectDir != "" {
		paths = append(paths, filepath.Join(projectDir, ".palettes"))
	}

	if home, err := os.UserHomeDir(); err == nil && home != "" {
		paths = append(paths, filepath.Join(home, ".config", "palettes"))
	}

	paths = append(paths, filepath.Join(string(filepath.Separator), "usr", "share", "palettes"))
	return paths
}

// LoadFromSearchPaths loads palettes from extra, then the search paths for
// projectDir, then the builtins. The first palette with a given name wins;
// names compare by lookup key, so "dawnbringer16" shadows "Dawnbringer16".
func LoadFromSearchPaths(projectDir string, extra ...string) ([]Source, error) {
	dirs := append(append([]string{}, extra...), SearchPaths(projectDir)...)

	seen := make(map[string]struct{})
	resolved := make([]Source, 0)
	add := func(sources []Source) {
		for _, src := range sources {
			key := palette.LookupKey(src.Name())
			if _, exists := seen[key]; exists {
				continue
			}
			seen[key] = struct{}{}
			resolved = append(resolved, src)
		}
	}

	for _, dir := range dirs {
		sources, err := LoadFromDir(dir)
		if err != nil {
			return nil, err
		}
		add(sources)
	}

	builtins, err := LoadBuiltins()
	if err != nil {
		return nil, err
	}
	add(builtins)

	return resolved, nil
}
