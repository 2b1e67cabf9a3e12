// Package codegen emits Go source for palette definitions.
//
// Each palette becomes its own package holding one typed constant per
// entry, an accessor method per entry, and the palette.Collection methods
// on a zero-size type named after the palette.
package codegen

import (
	"bytes"
	"fmt"
	"go/format"
	"go/token"
	"path/filepath"
	"sort"
	"strings"
	"text/template"

	"github.com/opencode-ai/palettes/pkg/palette"
)

const (
	// DefaultColorImport is the import path of the color package used by
	// generated code.
	DefaultColorImport = "github.com/opencode-ai/palettes/pkg/color"
	// DefaultPaletteImport is the import path of the palette package used by
	// generated code.
	DefaultPaletteImport = "github.com/opencode-ai/palettes/pkg/palette"
)

// Options controls code generation.
type Options struct {
	// Package overrides the generated package name. The default is the
	// lower-cased palette name. Ignored by GenerateAll when it would make
	// two palettes share a package.
	Package       string
	ColorImport   string
	PaletteImport string
}

func (o Options) withDefaults() Options {
	if o.ColorImport == "" {
		o.ColorImport = DefaultColorImport
	}
	if o.PaletteImport == "" {
		o.PaletteImport = DefaultPaletteImport
	}
	return o
}

// PackageName returns the package a definition is generated into.
func PackageName(def palette.Definition, opts Options) string {
	if opts.Package != "" {
		return opts.Package
	}
	return strings.ToLower(def.Name)
}

type entryData struct {
	Name   string
	Const  string
	Method string
	Value  string
	Doc    string
}

type keyData struct {
	Key   string
	Const string
}

type fileData struct {
	Package       string
	Type          string
	Source        string
	ColorImport   string
	PaletteImport string
	Len           int
	Entries       []entryData
	Keys          []keyData
}

// Generate returns gofmt'd Go source for def. The definition is validated
// first; binding collisions are reported as a *ValidationError.
func Generate(def palette.Definition, opts Options) ([]byte, error) {
	opts = opts.withDefaults()
	if err := Validate(def, opts); err != nil {
		return nil, err
	}

	data := fileData{
		Package:       PackageName(def, opts),
		Type:          def.Name,
		Source:        filepath.ToSlash(def.Source),
		ColorImport:   opts.ColorImport,
		PaletteImport: opts.PaletteImport,
		Len:           len(def.Entries),
	}

	seenKeys := make(map[string]bool, len(def.Entries))
	for _, entry := range def.Entries {
		e := entryData{
			Name:   entry.Name,
			Const:  palette.UpperSnake(entry.Name),
			Method: palette.GoName(palette.LowerSnake(entry.Name)),
			Value:  fmt.Sprintf("0x%012x", uint64(entry.Value)),
			Doc:    swatch(entry),
		}
		data.Entries = append(data.Entries, e)

		key := palette.LookupKey(entry.Name)
		if !seenKeys[key] {
			seenKeys[key] = true
			data.Keys = append(data.Keys, keyData{Key: key, Const: e.Const})
		}
	}

	var buf bytes.Buffer
	if err := fileTemplate.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("render palette %s: %w", def.Name, err)
	}

	src, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("format palette %s: %w", def.Name, err)
	}
	return src, nil
}

// GenerateAll generates every definition into its own package directory.
// The returned map is keyed by slash-separated path relative to the output
// root, e.g. "dawnbringer16/dawnbringer16.go".
func GenerateAll(defs []palette.Definition, opts Options) (map[string][]byte, error) {
	if len(defs) > 1 {
		opts.Package = ""
	}

	files := make(map[string][]byte, len(defs))
	owners := make(map[string]string, len(defs))
	for _, def := range defs {
		pkg := PackageName(def, opts)
		if owner, exists := owners[pkg]; exists {
			return nil, fmt.Errorf("palettes %s and %s both generate package %s", owner, def.Name, pkg)
		}
		owners[pkg] = def.Name

		src, err := Generate(def, opts)
		if err != nil {
			return nil, err
		}
		files[pkg+"/"+pkg+".go"] = src
	}
	return files, nil
}

// SortedPaths returns the keys of files in lexical order.
func SortedPaths(files map[string][]byte) []string {
	paths := make([]string, 0, len(files))
	for path := range files {
		paths = append(paths, path)
	}
	sort.Strings(paths)
	return paths
}

func swatch(entry palette.Entry) string {
	desc := entry.Value.CSS()
	if entry.Value.Intensity() != 256 {
		desc += ", intensity " + entry.Value.IntensityFraction()
	}
	return desc
}

func isPackageName(name string) bool {
	return token.IsIdentifier(name) && name != "_"
}

var fileTemplate = template.Must(template.New("palette").Funcs(template.FuncMap{
	"quote": func(s string) string { return fmt.Sprintf("%q", s) },
}).Parse(`// Code generated by palettes{{if .Source}} from {{.Source}}{{end}}. DO NOT EDIT.

package {{.Package}}

import (
	"iter"
	"slices"

	"{{.ColorImport}}"
	"{{.PaletteImport}}"
)

// {{.Type}} is the {{.Type}} palette, containing {{.Len}} colors.
{{- if .Entries}}
//
{{- range .Entries}}
//   - {{.Name}}: {{.Doc}}
{{- end}}
{{- end}}
type {{.Type}} struct{}

var _ palette.Collection = {{.Type}}{}

// Len is the number of colors in {{.Type}}.
const Len = {{.Len}}
{{if .Entries}}
const (
{{- range .Entries}}
	// {{.Const}} is {{quote .Name}}; {{.Doc}}.
	{{.Const}} color.Color = {{.Value}}
{{- end}}
)
{{end}}
{{- range .Entries}}
// {{.Method}} returns {{.Const}}.
func ({{$.Type}}) {{.Method}}() color.Color {
	return {{.Const}}
}
{{end}}
// Name returns "{{.Type}}".
func ({{.Type}}) Name() string {
	return {{quote .Type}}
}

// All returns every color in declaration order.
func ({{.Type}}) All() []color.Color {
	return []color.Color{
	{{- range .Entries}}
		{{.Const}},
	{{- end}}
	}
}

// Len returns the number of colors in the palette.
func ({{.Type}}) Len() int {
	return Len
}

// Iter returns a sequence over All.
func (p {{.Type}}) Iter() iter.Seq[color.Color] {
	return slices.Values(p.All())
}

// Get returns a color by name, ignoring case and punctuation.
func ({{.Type}}) Get(name string) (color.Color, bool) {
	switch palette.LookupKey(name) {
	{{- range .Keys}}
	case {{quote .Key}}:
		return {{.Const}}, true
	{{- end}}
	}
	return 0, false
}
`))
