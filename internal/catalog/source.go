// Package catalog finds, loads and indexes palette sources.
package catalog

import (
	"fmt"
	"go/token"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/opencode-ai/palettes/internal/declare"
	"github.com/opencode-ai/palettes/pkg/palette"
)

// Source is a palette definition plus the metadata its file carried.
type Source struct {
	Definition  palette.Definition
	Description string
	URL         string
	Builtin     bool
}

// Name returns the palette name.
func (s Source) Name() string { return s.Definition.Name }

// yamlPalette is the on-disk form of a .yaml palette.
type yamlPalette struct {
	Name        string      `yaml:"name"`
	Description string      `yaml:"description"`
	URL         string      `yaml:"url"`
	Colors      []yamlColor `yaml:"colors"`
}

type yamlColor struct {
	Name  string    `yaml:"name"`
	Value yaml.Node `yaml:"value"`
}

// IsSourceFile reports whether path has a palette source extension.
func IsSourceFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".palette", ".yaml", ".yml":
		return true
	}
	return false
}

// LoadFile reads every palette in a .palette or .yaml file.
func LoadFile(path string) ([]Source, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("palette path is required")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read palette %s: %w", path, err)
	}
	return parseSource(path, data)
}

func parseSource(path string, data []byte) ([]Source, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".palette":
		defs, err := declare.ParseSource(path, data)
		if err != nil {
			return nil, fmt.Errorf("parse palette %s: %w", path, err)
		}
		sources := make([]Source, 0, len(defs))
		for _, def := range defs {
			sources = append(sources, Source{Definition: def})
		}
		return sources, nil

	case ".yaml", ".yml":
		src, err := parseYAML(path, data)
		if err != nil {
			return nil, fmt.Errorf("parse palette %s: %w", path, err)
		}
		return []Source{src}, nil

	default:
		return nil, fmt.Errorf("unsupported palette file %s: want .palette, .yaml or .yml", path)
	}
}

func parseYAML(path string, data []byte) (Source, error) {
	var raw yamlPalette
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return Source{}, err
	}

	raw.Name = strings.TrimSpace(raw.Name)
	if raw.Name == "" {
		return Source{}, fmt.Errorf("palette name is required")
	}

	def := palette.Definition{
		Name:    raw.Name,
		Source:  path,
		Entries: make([]palette.Entry, 0, len(raw.Colors)),
	}
	for i, c := range raw.Colors {
		pos := token.Position{Filename: path, Line: c.Value.Line, Column: c.Value.Column}
		if c.Name == "" {
			return Source{}, fmt.Errorf("color %d: name is required", i+1)
		}
		if c.Value.Kind != yaml.ScalarNode {
			return Source{}, fmt.Errorf("color %q: value must be a hex string or (r, g, b) triple", c.Name)
		}
		value, err := declare.ParseValue(c.Name, c.Value.Value, pos)
		if err != nil {
			return Source{}, err
		}
		def.Entries = append(def.Entries, palette.Entry{Name: c.Name, Value: value, Pos: pos})
	}
	if err := def.Validate(); err != nil {
		return Source{}, err
	}

	return Source{
		Definition:  def,
		Description: strings.TrimSpace(raw.Description),
		URL:         strings.TrimSpace(raw.URL),
	}, nil
}

// configFiles share the palette search directories with palette sources.
var configFiles = map[string]bool{
	"config.yaml": true,
	"config.yml":  true,
}

func isConfigFile(name string) bool {
	return configFiles[strings.ToLower(name)]
}

// LoadFromDir loads every palette source in dir except config.yaml. A
// missing directory is not an error.
func LoadFromDir(dir string) ([]Source, error) {
	if strings.TrimSpace(dir) == "" {
		return []Source{}, nil
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return []Source{}, nil
		}
		return nil, fmt.Errorf("read palettes dir %s: %w", dir, err)
	}

	sources := make([]Source, 0)
	for _, entry := range entries {
		if entry.IsDir() || !IsSourceFile(entry.Name()) || isConfigFile(entry.Name()) {
			continue
		}
		loaded, err := LoadFile(filepath.Join(dir, entry.Name()))
		if err != nil {
			return nil, err
		}
		sources = append(sources, loaded...)
	}

	sort.SliceStable(sources, func(i, j int) bool {
		return sources[i].Name() < sources[j].Name()
	})

	return sources, nil
}

// LoadPaths loads explicit files and directories in the order given.
func LoadPaths(paths []string) ([]Source, error) {
	var sources []Source
	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			return nil, fmt.Errorf("stat palette source %s: %w", path, err)
		}
		var loaded []Source
		if info.IsDir() {
			loaded, err = LoadFromDir(path)
		} else {
			loaded, err = LoadFile(path)
		}
		if err != nil {
			return nil, err
		}
		sources = append(sources, loaded...)
	}
	return sources, nil
}
