// Package palette models palette definitions and the queryable collection
// built from them.
package palette

import (
	"fmt"
	"go/token"
	"iter"

	"github.com/opencode-ai/palettes/pkg/color"
)

// Entry is a single named color in declaration order.
type Entry struct {
	Name  string
	Value color.Color
	// Pos is where the entry was declared; zero for entries built in code.
	Pos token.Position
}

// Definition is a parsed palette: a name and its ordered entries.
type Definition struct {
	Name    string
	Entries []Entry
	Source  string // file path, "builtin", or empty
	Pos     token.Position
}

// Validate checks that the palette name is a usable Go identifier.
// Entries are not checked; an empty palette is valid.
func (d Definition) Validate() error {
	if d.Name == "" {
		return fmt.Errorf("palette name is required")
	}
	if !token.IsIdentifier(d.Name) {
		return fmt.Errorf("palette name %q is not a valid identifier", d.Name)
	}
	return nil
}

// Collection is the read-only contract every palette exposes, whether it
// was built at run time with New or emitted by the code generator.
type Collection interface {
	// Name returns the palette name.
	Name() string
	// All returns a fresh slice of every color in declaration order.
	All() []color.Color
	// Len returns the number of colors.
	Len() int
	// Iter returns a restartable sequence over All.
	Iter() iter.Seq[color.Color]
	// Get looks a color up by name, ignoring case and punctuation. The
	// first declared match wins.
	Get(name string) (color.Color, bool)
}

// Palette is a Collection built from a Definition at run time.
// It is immutable after New returns.
type Palette struct {
	name      string
	source    string
	entries   []Entry
	byKey     map[string]int
	constants map[string]int
	accessors map[string]int
}

var _ Collection = (*Palette)(nil)

// New builds a palette from def. The lookup tables are built once here;
// for entries sharing a lookup key or binding name the first one wins.
func New(def Definition) *Palette {
	p := &Palette{
		name:      def.Name,
		source:    def.Source,
		entries:   make([]Entry, len(def.Entries)),
		byKey:     make(map[string]int, len(def.Entries)),
		constants: make(map[string]int, len(def.Entries)),
		accessors: make(map[string]int, len(def.Entries)),
	}
	copy(p.entries, def.Entries)

	for i, entry := range p.entries {
		addFirst(p.byKey, LookupKey(entry.Name), i)
		addFirst(p.constants, UpperSnake(entry.Name), i)
		addFirst(p.accessors, LowerSnake(entry.Name), i)
	}
	return p
}

func addFirst(m map[string]int, key string, i int) {
	if _, exists := m[key]; !exists {
		m[key] = i
	}
}

// Name returns the palette name.
func (p *Palette) Name() string { return p.name }

// Source returns where the palette was loaded from.
func (p *Palette) Source() string { return p.source }

// Len returns the number of entries, duplicates included.
func (p *Palette) Len() int { return len(p.entries) }

// All returns every color in declaration order.
func (p *Palette) All() []color.Color {
	out := make([]color.Color, len(p.entries))
	for i, entry := range p.entries {
		out[i] = entry.Value
	}
	return out
}

// Iter returns a sequence over the colors in declaration order. Each call
// to the returned function starts a new traversal.
func (p *Palette) Iter() iter.Seq[color.Color] {
	return func(yield func(color.Color) bool) {
		for _, entry := range p.entries {
			if !yield(entry.Value) {
				return
			}
		}
	}
}

// Entries returns a sequence of declared names and colors.
func (p *Palette) Entries() iter.Seq2[string, color.Color] {
	return func(yield func(string, color.Color) bool) {
		for _, entry := range p.entries {
			if !yield(entry.Name, entry.Value) {
				return
			}
		}
	}
}

// Entry returns the i-th entry in declaration order.
func (p *Palette) Entry(i int) Entry { return p.entries[i] }

// Get returns the first color whose lookup key matches name's.
func (p *Palette) Get(name string) (color.Color, bool) {
	i, ok := p.byKey[LookupKey(name)]
	if !ok {
		return 0, false
	}
	return p.entries[i].Value, true
}

// Constant returns the color bound to an UPPER_SNAKE constant name.
func (p *Palette) Constant(name string) (color.Color, bool) {
	i, ok := p.constants[name]
	if !ok {
		return 0, false
	}
	return p.entries[i].Value, true
}

// Accessor returns the zero-argument accessor for a lower_snake name.
func (p *Palette) Accessor(name string) (func() color.Color, bool) {
	i, ok := p.accessors[name]
	if !ok {
		return nil, false
	}
	value := p.entries[i].Value
	return func() color.Color { return value }, true
}

// Definition returns a copy of the definition the palette was built from.
func (p *Palette) Definition() Definition {
	entries := make([]Entry, len(p.entries))
	copy(entries, p.entries)
	return Definition{Name: p.name, Entries: entries, Source: p.source}
}

// Shadowed describes an entry that Get can never return because an earlier
// entry has the same lookup key.
type Shadowed struct {
	Key    string
	First  Entry
	Hidden Entry
}

// Shadowed lists entries hidden from Get, in declaration order.
func (p *Palette) Shadowed() []Shadowed {
	var out []Shadowed
	for i, entry := range p.entries {
		key := LookupKey(entry.Name)
		if first := p.byKey[key]; first != i {
			out = append(out, Shadowed{Key: key, First: p.entries[first], Hidden: entry})
		}
	}
	return out
}
