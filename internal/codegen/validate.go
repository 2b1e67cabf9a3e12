package codegen

import (
	"fmt"
	"strings"

	"github.com/opencode-ai/palettes/pkg/palette"
)

// reservedMethods are the palette.Collection methods on every generated
// type; accessors may not shadow them.
var reservedMethods = map[string]bool{
	"Name": true,
	"All":  true,
	"Len":  true,
	"Iter": true,
	"Get":  true,
}

// Problem is one reason an entry cannot be generated.
type Problem struct {
	Entry palette.Entry
	Msg   string
}

// ValidationError lists every binding problem found in a palette.
type ValidationError struct {
	Palette  string
	Problems []Problem
}

func (e *ValidationError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "palette %s cannot be generated", e.Palette)
	for _, p := range e.Problems {
		b.WriteString("\n  - ")
		if p.Entry.Pos.IsValid() {
			fmt.Fprintf(&b, "%s: ", p.Entry.Pos)
		}
		b.WriteString(p.Msg)
	}
	return b.String()
}

// Validate checks that def can be emitted as Go: the palette name must be
// an exported identifier other than Len, the package name must be an
// identifier, and every entry must yield exported constant and accessor
// names that collide with nothing else in the package.
//
// Entries whose lookup keys collide without colliding as bindings are
// allowed; the generated Get returns the first of them.
func Validate(def palette.Definition, opts Options) error {
	if err := def.Validate(); err != nil {
		return err
	}
	if pkg := PackageName(def, opts); !isPackageName(pkg) {
		return fmt.Errorf("palette %s: package name %q is not a valid identifier", def.Name, pkg)
	}

	verr := &ValidationError{Palette: def.Name}
	add := func(entry palette.Entry, format string, args ...any) {
		verr.Problems = append(verr.Problems, Problem{Entry: entry, Msg: fmt.Sprintf(format, args...)})
	}

	// The type shares file scope with Len and the lower-case import names.
	typeEntry := palette.Entry{Name: def.Name, Pos: def.Pos}
	switch {
	case !palette.IsExportedIdentifier(def.Name):
		add(typeEntry, "palette name %q is not an exported Go identifier", def.Name)
	case def.Name == "Len":
		add(typeEntry, "palette name %q collides with the generated Len constant", def.Name)
	}

	consts := map[string]string{def.Name: "the palette type", "Len": "the Len constant"}
	methods := make(map[string]string, len(def.Entries))

	for _, entry := range def.Entries {
		constName := palette.UpperSnake(entry.Name)
		method := palette.GoName(palette.LowerSnake(entry.Name))

		switch {
		case !palette.IsExportedIdentifier(constName):
			add(entry, "color %q gives constant name %q, which is not an exported Go identifier", entry.Name, constName)
		case consts[constName] != "":
			add(entry, "color %q gives constant %s, already used by %s", entry.Name, constName, consts[constName])
		default:
			consts[constName] = fmt.Sprintf("color %q", entry.Name)
		}

		switch {
		case !palette.IsExportedIdentifier(method):
			add(entry, "color %q gives accessor name %q, which is not an exported Go identifier", entry.Name, method)
		case reservedMethods[method]:
			add(entry, "color %q gives accessor %s, which is reserved for the palette API", entry.Name, method)
		case methods[method] != "":
			add(entry, "color %q gives accessor %s, already used by %s", entry.Name, method, methods[method])
		default:
			methods[method] = fmt.Sprintf("color %q", entry.Name)
		}
	}

	if len(verr.Problems) > 0 {
		return verr
	}
	return nil
}
