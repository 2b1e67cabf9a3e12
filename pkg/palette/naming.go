package palette

import (
	"go/token"
	"strings"
	"unicode"
)

// UpperSnake converts a declared name to the constant form. An underscore
// goes before every uppercase rune that is neither first nor preceded by
// another uppercase rune, then ASCII letters are uppercased:
// "customColor" -> "CUSTOM_COLOR", "HTMLColor" -> "HTMLCOLOR".
func UpperSnake(name string) string {
	return snake(name, toASCIIUpper, toASCIIUpper)
}

// LowerSnake converts a declared name to the accessor form using the same
// boundary rule as UpperSnake. Uppercase runes are lowercased and every
// other rune passes through: "customColor" -> "custom_color".
func LowerSnake(name string) string {
	return snake(name, toASCIILower, func(r rune) rune { return r })
}

func snake(name string, upper, other func(rune) rune) string {
	var b strings.Builder
	b.Grow(len(name) + 4)

	prevUpper := false
	for i, r := range []rune(name) {
		isUpper := unicode.IsUpper(r)
		if isUpper {
			if i > 0 && !prevUpper {
				b.WriteByte('_')
			}
			b.WriteRune(upper(r))
		} else {
			b.WriteRune(other(r))
		}
		prevUpper = isUpper
	}
	return b.String()
}

func toASCIIUpper(r rune) rune {
	if r >= 'a' && r <= 'z' {
		return r - 'a' + 'A'
	}
	return r
}

func toASCIILower(r rune) rune {
	if r >= 'A' && r <= 'Z' {
		return r - 'A' + 'a'
	}
	return r
}

// LookupKey normalizes a name for Get: every rune that is not a letter or
// number (including ² and Ⅻ) is dropped and the rest is lowercased, so "customColor",
// "CUSTOM_COLOR" and "custom-color" share the key "customcolor".
func LookupKey(name string) string {
	var b strings.Builder
	b.Grow(len(name))
	for _, r := range name {
		if unicode.IsLetter(r) || unicode.IsNumber(r) {
			b.WriteRune(unicode.ToLower(r))
		}
	}
	return b.String()
}

// GoName turns a lower_snake accessor name into an exported Go method name
// by title-casing each segment between non-alphanumeric runes:
// "custom_color" -> "CustomColor". It returns "" if nothing is left.
func GoName(lowerSnake string) string {
	var b strings.Builder
	startSegment := true
	for _, r := range lowerSnake {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			startSegment = true
			continue
		}
		if startSegment {
			r = unicode.ToUpper(r)
			startSegment = false
		}
		b.WriteRune(r)
	}
	return b.String()
}

// IsExportedIdentifier reports whether name can be used as an exported Go
// identifier.
func IsExportedIdentifier(name string) bool {
	return token.IsIdentifier(name) && token.IsExported(name)
}
