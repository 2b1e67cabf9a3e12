package catalog

import (
	"fmt"
	"sort"

	"github.com/rs/zerolog"

	"github.com/opencode-ai/palettes/pkg/color"
	"github.com/opencode-ai/palettes/pkg/palette"
)

// Catalog indexes loaded palettes by name.
type Catalog struct {
	sources  []Source
	palettes []*palette.Palette
	byKey    map[string]int
	logger   zerolog.Logger
}

// New builds a catalog. Later sources whose name matches an earlier one by
// lookup key are dropped.
func New(sources []Source, logger zerolog.Logger) *Catalog {
	c := &Catalog{
		byKey:  make(map[string]int, len(sources)),
		logger: logger,
	}
	for _, src := range sources {
		key := palette.LookupKey(src.Name())
		if i, exists := c.byKey[key]; exists {
			logger.Debug().
				Str("palette", src.Name()).
				Str("source", src.Definition.Source).
				Str("kept", c.sources[i].Definition.Source).
				Msg("palette shadowed")
			continue
		}

		p := palette.New(src.Definition)
		for _, s := range p.Shadowed() {
			logger.Debug().
				Str("palette", p.Name()).
				Str("color", s.Hidden.Name).
				Str("kept", s.First.Name).
				Msg("color unreachable by name")
		}

		c.byKey[key] = len(c.palettes)
		c.sources = append(c.sources, src)
		c.palettes = append(c.palettes, p)
	}
	logger.Debug().Int("palettes", len(c.palettes)).Msg("catalog loaded")
	return c
}

// Load builds a catalog from extra directories, the search paths for
// projectDir and the builtins.
func Load(projectDir string, extra []string, logger zerolog.Logger) (*Catalog, error) {
	sources, err := LoadFromSearchPaths(projectDir, extra...)
	if err != nil {
		return nil, err
	}
	return New(sources, logger), nil
}

// Len returns the number of palettes.
func (c *Catalog) Len() int { return len(c.palettes) }

// Names returns palette names in load order.
func (c *Catalog) Names() []string {
	names := make([]string, len(c.palettes))
	for i, p := range c.palettes {
		names[i] = p.Name()
	}
	return names
}

// Palettes returns every palette in load order.
func (c *Catalog) Palettes() []*palette.Palette {
	return append([]*palette.Palette(nil), c.palettes...)
}

// Get finds a palette by name, ignoring case and punctuation.
func (c *Catalog) Get(name string) (*palette.Palette, bool) {
	i, ok := c.byKey[palette.LookupKey(name)]
	if !ok {
		return nil, false
	}
	return c.palettes[i], true
}

// Source returns the source a palette was loaded from.
func (c *Catalog) Source(name string) (Source, bool) {
	i, ok := c.byKey[palette.LookupKey(name)]
	if !ok {
		return Source{}, false
	}
	return c.sources[i], true
}

// Lookup resolves "palette" and "color" names to a value.
func (c *Catalog) Lookup(paletteName, colorName string) (color.Color, error) {
	p, ok := c.Get(paletteName)
	if !ok {
		return 0, fmt.Errorf("palette %q not found", paletteName)
	}
	v, ok := p.Get(colorName)
	if !ok {
		return 0, fmt.Errorf("color %q not found in palette %s", colorName, p.Name())
	}
	return v, nil
}

// Match is one result of Nearest.
type Match struct {
	Palette  string      `json:"palette"`
	Name     string      `json:"name"`
	Value    color.Color `json:"-"`
	Hex      string      `json:"hex"`
	Distance float64     `json:"distance"`
}

// Nearest ranks entries by CIEDE2000 distance to target and returns the
// closest n (all of them when n <= 0). When only is non-empty the search is
// restricted to those palettes. Ties keep catalog and declaration order.
func (c *Catalog) Nearest(target color.Color, n int, only ...string) ([]Match, error) {
	palettes := c.palettes
	if len(only) > 0 {
		palettes = make([]*palette.Palette, 0, len(only))
		for _, name := range only {
			p, ok := c.Get(name)
			if !ok {
				return nil, fmt.Errorf("palette %q not found", name)
			}
			palettes = append(palettes, p)
		}
	}

	want := target.Colorful()
	var matches []Match
	for _, p := range palettes {
		for name, v := range p.Entries() {
			matches = append(matches, Match{
				Palette:  p.Name(),
				Name:     name,
				Value:    v,
				Hex:      v.String(),
				Distance: want.DistanceCIEDE2000(v.Colorful()),
			})
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Distance < matches[j].Distance
	})
	if n > 0 && len(matches) > n {
		matches = matches[:n]
	}
	return matches, nil
}
