// Package declare parses palette declarations:
//
//	Name {
//		"entryName": "#rrggbb",
//		"other": (0.5, 0.25, 1.0),
//	}
//
// Values are either hex strings (see color.ParseHex) or a parenthesized
// triple of normalized red, green and blue values. The parser works on a
// TokenStream; Tokenize supplies one for Go-style source text.
package declare

import (
	"errors"
	"fmt"
	"go/token"
	"strconv"
	"strings"

	"github.com/opencode-ai/palettes/pkg/color"
	"github.com/opencode-ai/palettes/pkg/palette"
)

// SyntaxError reports a structurally malformed declaration.
type SyntaxError struct {
	Pos token.Position
	Msg string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%s: syntax error: %s", e.Pos, e.Msg)
}

// ValueError reports a value of the right shape that could not be decoded.
type ValueError struct {
	Pos token.Position
	Msg string
	// Channel names the failing component: "R", "G", "B", "A", "I" for hex
	// digit groups, "red", "green", "blue" for triples, or "" when the
	// value as a whole is malformed.
	Channel string
}

func (e *ValueError) Error() string {
	return fmt.Sprintf("%s: invalid value: %s", e.Pos, e.Msg)
}

type parser struct {
	ts  TokenStream
	tok Token
}

func newParser(ts TokenStream) *parser {
	p := &parser{ts: ts}
	p.next()
	return p
}

func (p *parser) next() {
	p.tok = p.ts.Next()
}

func (p *parser) syntaxErrorf(format string, args ...any) error {
	if p.tok.Kind == Illegal {
		return &SyntaxError{Pos: p.tok.Pos, Msg: "unexpected " + p.tok.Lit}
	}
	return &SyntaxError{Pos: p.tok.Pos, Msg: fmt.Sprintf(format, args...)}
}

// ParseDeclaration parses exactly one declaration and requires the stream
// to end after it.
func ParseDeclaration(ts TokenStream) (palette.Definition, error) {
	p := newParser(ts)
	def, err := p.declaration()
	if err != nil {
		return palette.Definition{}, err
	}
	if p.tok.Kind == Semicolon {
		p.next()
	}
	if p.tok.Kind != EOF {
		return palette.Definition{}, p.syntaxErrorf("expected end of input after palette %s, found %s", def.Name, p.tok.describe())
	}
	return def, nil
}

// ParseFile parses zero or more declarations, each optionally followed by
// a semicolon. Parsing stops at the first error.
func ParseFile(ts TokenStream) ([]palette.Definition, error) {
	p := newParser(ts)
	var defs []palette.Definition
	for p.tok.Kind != EOF {
		def, err := p.declaration()
		if err != nil {
			return nil, err
		}
		defs = append(defs, def)
		if p.tok.Kind == Semicolon {
			p.next()
		}
	}
	return defs, nil
}

// ParseSource tokenizes src and parses every declaration in it. Each
// definition's Source is set to filename.
func ParseSource(filename string, src []byte) ([]palette.Definition, error) {
	defs, err := ParseFile(Tokenize(filename, src))
	if err != nil {
		return nil, err
	}
	for i := range defs {
		defs[i].Source = filename
	}
	return defs, nil
}

func (p *parser) declaration() (palette.Definition, error) {
	if p.tok.Kind != Ident {
		return palette.Definition{}, p.syntaxErrorf("expected palette name, found %s", p.tok.describe())
	}
	def := palette.Definition{Name: p.tok.Lit, Pos: p.tok.Pos}
	p.next()

	if p.tok.Kind != LBrace {
		return palette.Definition{}, p.syntaxErrorf("expected '{' after palette name %s, found %s", def.Name, p.tok.describe())
	}
	p.next()

	def.Entries = []palette.Entry{}
	for p.tok.Kind != RBrace {
		if p.tok.Kind == EOF {
			return palette.Definition{}, p.syntaxErrorf("missing closing '}' for palette %s", def.Name)
		}

		entry, err := p.entry()
		if err != nil {
			return palette.Definition{}, err
		}
		def.Entries = append(def.Entries, entry)

		switch p.tok.Kind {
		case Comma:
			p.next()
		case RBrace:
		case EOF:
			return palette.Definition{}, p.syntaxErrorf("missing closing '}' for palette %s", def.Name)
		default:
			return palette.Definition{}, p.syntaxErrorf("expected comma or end of block, found %s", p.tok.describe())
		}
	}
	p.next()

	return def, nil
}

func (p *parser) entry() (palette.Entry, error) {
	if p.tok.Kind != String {
		return palette.Entry{}, p.syntaxErrorf("expected color name string, found %s", p.tok.describe())
	}
	nameTok := p.tok
	name, err := strconv.Unquote(nameTok.Lit)
	if err != nil {
		return palette.Entry{}, &SyntaxError{Pos: nameTok.Pos, Msg: fmt.Sprintf("malformed string literal %s", nameTok.Lit)}
	}
	p.next()

	if p.tok.Kind != Colon {
		return palette.Entry{}, p.syntaxErrorf("expected ':' after color name %q, found %s", name, p.tok.describe())
	}
	p.next()

	value, err := p.value(name)
	if err != nil {
		return palette.Entry{}, err
	}

	return palette.Entry{Name: name, Value: value, Pos: nameTok.Pos}, nil
}

func (p *parser) value(name string) (color.Color, error) {
	switch p.tok.Kind {
	case String:
		return p.hexValue()
	case LParen:
		return p.tripleValue()
	}
	return 0, p.syntaxErrorf("expected hex string or (r, g, b) triple for %q, found %s", name, p.tok.describe())
}

// ParseValue decodes a single value written outside a declaration, such as
// a value field in a YAML palette: either a bare hex string ("#rrggbb") or
// a triple ("(0.5, 0.5, 1.0)"). Errors are reported at pos.
func ParseValue(name, s string, pos token.Position) (color.Color, error) {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "(") {
		s = strconv.Quote(s)
	}

	p := newParser(Tokenize(pos.Filename, []byte(s)))
	c, err := p.value(name)
	if err == nil && p.tok.Kind != EOF {
		err = p.syntaxErrorf("unexpected %s after value for %q", p.tok.describe(), name)
	}
	if err != nil {
		var serr *SyntaxError
		var verr *ValueError
		switch {
		case errors.As(err, &serr):
			serr.Pos = pos
		case errors.As(err, &verr):
			verr.Pos = pos
		}
		return 0, err
	}
	return c, nil
}

func (p *parser) hexValue() (color.Color, error) {
	tok := p.tok
	s, err := strconv.Unquote(tok.Lit)
	if err != nil {
		return 0, &SyntaxError{Pos: tok.Pos, Msg: fmt.Sprintf("malformed string literal %s", tok.Lit)}
	}
	p.next()

	c, err := color.ParseHex(s)
	if err != nil {
		var perr *color.ParseError
		if errors.As(err, &perr) {
			return 0, &ValueError{Pos: tok.Pos, Msg: perr.Msg, Channel: perr.Channel}
		}
		return 0, &ValueError{Pos: tok.Pos, Msg: err.Error()}
	}
	return c, nil
}

var tripleChannels = [3]string{"red", "green", "blue"}

func (p *parser) tripleValue() (color.Color, error) {
	p.next() // '('

	var channels [3]uint8
	for i, channel := range tripleChannels {
		if i > 0 {
			if p.tok.Kind != Comma {
				return 0, p.syntaxErrorf("expected ',' before %s channel, found %s", channel, p.tok.describe())
			}
			p.next()
		}
		v, err := p.number(channel)
		if err != nil {
			return 0, err
		}
		channels[i] = color.ScaleChannel(v)
	}

	if p.tok.Kind != RParen {
		return 0, p.syntaxErrorf("expected ')' after blue channel, found %s", p.tok.describe())
	}
	p.next()

	return color.New(channels[0], channels[1], channels[2], 0xff), nil
}

// number parses an optionally signed base-10 literal as a float32.
func (p *parser) number(channel string) (float32, error) {
	sign := float32(1)
	switch p.tok.Kind {
	case Sub:
		sign = -1
		p.next()
	case Add:
		p.next()
	}

	tok := p.tok
	if tok.Kind != Float && tok.Kind != Int && tok.Kind != Imag {
		return 0, p.syntaxErrorf("expected float literal for %s channel, found %s", channel, tok.describe())
	}
	p.next()

	if tok.Kind == Imag {
		return 0, &ValueError{Pos: tok.Pos, Channel: channel, Msg: fmt.Sprintf("%s channel %s is an imaginary literal, not a base-10 float literal", channel, tok.Lit)}
	}

	if !isDecimalLiteral(tok.Lit) {
		return 0, &ValueError{Pos: tok.Pos, Channel: channel, Msg: fmt.Sprintf("%s channel %s is not a base-10 float literal", channel, tok.Lit)}
	}
	// Out-of-range literals come back as ±Inf and saturate like any other
	// out-of-range channel.
	v, err := strconv.ParseFloat(tok.Lit, 32)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, &ValueError{Pos: tok.Pos, Channel: channel, Msg: fmt.Sprintf("%s channel %s: %v", channel, tok.Lit, errors.Unwrap(err))}
	}
	return sign * float32(v), nil
}

func isDecimalLiteral(lit string) bool {
	if len(lit) < 2 || lit[0] != '0' {
		return true
	}
	switch strings.ToLower(lit[:2]) {
	case "0x", "0b", "0o":
		return false
	}
	return true
}
