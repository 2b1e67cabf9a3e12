// Package gpl imports GIMP palette (.gpl) files as palette declarations.
package gpl

import (
	"bufio"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/opencode-ai/palettes/pkg/color"
	"github.com/opencode-ai/palettes/pkg/palette"
)

// Color is one named swatch read from a .gpl file.
type Color struct {
	Name  string
	Value color.Color
}

// Parse reads swatches from a GIMP palette. Header lines ("GIMP Palette",
// "Name: ...", "Columns: ...") and comments are skipped, as are rows that
// do not start with three channel values in [0, 255] followed by a name
// or alpha column. An optional fourth integer column in [0, 255] is alpha.
// Exact duplicate name/value pairs are dropped.
func Parse(r io.Reader) ([]Color, error) {
	var colors []Color
	seen := make(map[Color]struct{})

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		switch {
		case line == "",
			strings.HasPrefix(line, "#"),
			strings.Contains(line, ":"),
			strings.EqualFold(line, "gimp palette"):
			continue
		}

		c, ok := parseRow(strings.Fields(line))
		if !ok {
			continue
		}
		if _, dup := seen[c]; dup {
			continue
		}
		seen[c] = struct{}{}
		colors = append(colors, c)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read gpl: %w", err)
	}
	return colors, nil
}

func parseRow(fields []string) (Color, bool) {
	if len(fields) < 4 {
		return Color{}, false
	}

	var rgb [3]uint8
	for i := range rgb {
		v, err := strconv.Atoi(fields[i])
		if err != nil || v < 0 || v > 255 {
			return Color{}, false
		}
		rgb[i] = uint8(v)
	}

	alpha, nameStart := 255, 4
	if a, err := strconv.Atoi(fields[3]); err != nil || a < 0 || a > 255 {
		nameStart = 3
	} else {
		alpha = a
	}

	value := color.New(rgb[0], rgb[1], rgb[2], uint8(alpha))
	return Color{Name: swatchName(strings.Join(fields[nameStart:], " "), value), Value: value}, true
}

func swatchName(raw string, value color.Color) string {
	hex := strings.TrimPrefix(value.Hex(), "#")
	name := SnakeCase(raw)
	if name == "" || name == "untitled" {
		name = hex
	}
	if name == hex || name == hex[:6] || startsWithDigit(name) {
		name = "color_" + name
	}
	return name
}

func startsWithDigit(s string) bool {
	return s != "" && s[0] >= '0' && s[0] <= '9'
}

// SnakeCase lowercases s and collapses every run of characters other than
// ASCII letters and digits into one underscore, trimming underscores at
// either end: "Light Blue (2)" -> "light_blue_2".
func SnakeCase(s string) string {
	var b strings.Builder
	pendingSep := false
	for _, r := range strings.ToLower(strings.TrimSpace(s)) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			if pendingSep && b.Len() > 0 {
				b.WriteByte('_')
			}
			pendingSep = false
			b.WriteRune(r)
			continue
		}
		pendingSep = true
	}
	return b.String()
}

// PaletteName derives a PascalCase palette name from a file stem:
// "dawnbringer-16" -> "Dawnbringer16".
func PaletteName(stem string) string {
	var b strings.Builder
	for _, part := range strings.FieldsFunc(stem, func(r rune) bool {
		return !((r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9'))
	}) {
		b.WriteString(strings.ToUpper(part[:1]))
		b.WriteString(strings.ToLower(part[1:]))
	}
	return b.String()
}

// Definition converts imported swatches to a palette definition.
func Definition(name, source string, colors []Color) palette.Definition {
	def := palette.Definition{Name: name, Source: source, Entries: make([]palette.Entry, 0, len(colors))}
	for _, c := range colors {
		def.Entries = append(def.Entries, palette.Entry{Name: c.Name, Value: c.Value})
	}
	return def
}

// ParseFile imports one .gpl file, naming the palette after the file stem.
func ParseFile(path string) (palette.Definition, error) {
	f, err := os.Open(path)
	if err != nil {
		return palette.Definition{}, fmt.Errorf("open gpl %s: %w", path, err)
	}
	defer f.Close()

	colors, err := Parse(f)
	if err != nil {
		return palette.Definition{}, fmt.Errorf("parse gpl %s: %w", path, err)
	}
	stem := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	return Definition(PaletteName(stem), path, colors), nil
}

// ImportDir imports every .gpl file below root in lexical path order.
// Files without any swatches are skipped.
func ImportDir(root string) ([]palette.Definition, error) {
	var paths []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.EqualFold(filepath.Ext(path), ".gpl") {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk %s: %w", root, err)
	}
	sort.Strings(paths)

	var defs []palette.Definition
	for _, path := range paths {
		def, err := ParseFile(path)
		if err != nil {
			return nil, err
		}
		if len(def.Entries) == 0 {
			continue
		}
		defs = append(defs, def)
	}
	return defs, nil
}

// WriteDeclaration writes def in declaration syntax. Values are written in
// canonical hex, so the output parses back to the same colors.
func WriteDeclaration(w io.Writer, def palette.Definition) error {
	if _, err := fmt.Fprintf(w, "%s {\n", def.Name); err != nil {
		return err
	}
	for _, entry := range def.Entries {
		if _, err := fmt.Fprintf(w, "\t%q: %q,\n", entry.Name, entry.Value.String()); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, "}\n")
	return err
}

// WriteDeclarations writes each definition separated by a blank line.
func WriteDeclarations(w io.Writer, defs []palette.Definition) error {
	for i, def := range defs {
		if i > 0 {
			if _, err := io.WriteString(w, "\n"); err != nil {
				return err
			}
		}
		if err := WriteDeclaration(w, def); err != nil {
			return err
		}
	}
	return nil
}
