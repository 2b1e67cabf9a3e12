package color

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseError describes a hex color string that could not be decoded.
type ParseError struct {
	Input string
	// Channel is "R", "G", "B", "A" or "I" (intensity) when a single digit
	// group failed, and empty for whole-string failures.
	Channel string
	// Pattern is the layout that was being decoded, e.g. "#rrGGbb".
	Pattern string
	Msg     string
}

func (e *ParseError) Error() string {
	return "parse error: " + e.Msg
}

type hexLayout struct {
	digits   int
	patterns []string
}

var (
	channelNames = []string{"R", "G", "B", "A"}

	hexLayouts = map[int]hexLayout{
		8: {digits: 2, patterns: []string{"#RRggbbaa", "#rrGGbbaa", "#rrggBBaa", "#rrggbbAA"}},
		6: {digits: 2, patterns: []string{"#RRggbb", "#rrGGbb", "#rrggBB"}},
		4: {digits: 1, patterns: []string{"#Rgba", "#rGba", "#rgBa", "#rgbA"}},
		3: {digits: 1, patterns: []string{"#Rgb", "#rGb", "#rgB"}},
	}
)

// ParseHex decodes "#rgb", "#rgba", "#rrggbb" or "#rrggbbaa", each
// optionally followed by "+iiii" giving a 16-bit hex intensity. Missing
// alpha defaults to 0xff. The leading '#' is mandatory.
func ParseHex(s string) (Color, error) {
	hex, ok := strings.CutPrefix(s, "#")
	if !ok {
		return 0, &ParseError{Input: s, Msg: "HTML hex color string must start with '#'."}
	}

	intensity := NeutralIntensity
	if n := len(hex); n >= 5 && hex[n-5] == '+' {
		v, err := strconv.ParseUint(hex[n-4:], 16, 16)
		if err != nil {
			return 0, &ParseError{
				Input:   s,
				Channel: "I",
				Pattern: "+IIII",
				Msg:     fmt.Sprintf("Error parsing intensity portion: %q is not a 4-digit hex value", hex[n-4:]),
			}
		}
		intensity = uint16(v)
		hex = hex[:n-5]
	}

	layout, ok := hexLayouts[len(hex)]
	if !ok {
		return 0, &ParseError{Input: s, Msg: "Hex color must be in #rrggbb, #rrggbbaa, #rgb, or #rgba format."}
	}

	channels := [4]uint8{0, 0, 0, 0xff}
	for i, pattern := range layout.patterns {
		group := hex[i*layout.digits : (i+1)*layout.digits]
		if layout.digits == 1 {
			group = strings.Repeat(group, 2)
		}
		v, err := strconv.ParseUint(group, 16, 8)
		if err != nil {
			name := channelNames[i]
			return 0, &ParseError{
				Input:   s,
				Channel: name,
				Pattern: pattern,
				Msg:     fmt.Sprintf("%s %s was invalid.", pattern, strings.Repeat(name, layout.digits)),
			}
		}
		channels[i] = uint8(v)
	}

	return pack(channels[0], channels[1], channels[2], channels[3], intensity), nil
}

// MustParseHex is like ParseHex but panics on error.
func MustParseHex(s string) Color {
	c, err := ParseHex(s)
	if err != nil {
		panic(err)
	}
	return c
}
