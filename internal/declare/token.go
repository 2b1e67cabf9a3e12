package declare

import (
	"fmt"
	"go/scanner"
	"go/token"
)

// Kind classifies a token.
type Kind int

const (
	EOF Kind = iota
	Illegal
	Ident
	String
	Float
	Int
	Colon
	Comma
	Semicolon
	LBrace
	RBrace
	LParen
	RParen
	Add
	Sub
	Imag
)

var kindNames = map[Kind]string{
	EOF:       "end of input",
	Illegal:   "illegal token",
	Ident:     "identifier",
	String:    "string literal",
	Float:     "float literal",
	Int:       "integer literal",
	Colon:     "':'",
	Comma:     "','",
	Semicolon: "';'",
	LBrace:    "'{'",
	RBrace:    "'}'",
	LParen:    "'('",
	RParen:    "')'",
	Add:       "'+'",
	Sub:       "'-'",
	Imag:      "imaginary literal",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Token is one lexical element of a declaration. Lit holds the source
// text; for String tokens it is the quoted literal as written.
type Token struct {
	Kind Kind
	Lit  string
	Pos  token.Position
}

func (t Token) describe() string {
	switch t.Kind {
	case EOF:
		return t.Kind.String()
	case Illegal, Ident, String, Float, Int, Imag:
		return fmt.Sprintf("%s %s", t.Kind, t.Lit)
	default:
		return t.Kind.String()
	}
}

// TokenStream yields tokens until it returns an EOF token, after which it
// keeps returning EOF.
type TokenStream interface {
	Next() Token
}

// SliceStream replays a fixed list of tokens.
type SliceStream struct {
	tokens []Token
	pos    int
}

// NewSliceStream returns a stream over tokens.
func NewSliceStream(tokens ...Token) *SliceStream {
	return &SliceStream{tokens: tokens}
}

// Next implements TokenStream.
func (s *SliceStream) Next() Token {
	if s.pos >= len(s.tokens) {
		var pos token.Position
		if n := len(s.tokens); n > 0 {
			pos = s.tokens[n-1].Pos
		}
		return Token{Kind: EOF, Pos: pos}
	}
	tok := s.tokens[s.pos]
	s.pos++
	return tok
}

// goStream adapts go/scanner, the Go language's own lexer, to TokenStream.
type goStream struct {
	fset *token.FileSet
	s    scanner.Scanner
	errs scanner.ErrorList
}

// Tokenize returns a stream over src using Go's lexical rules. Comments
// are skipped and automatically inserted semicolons are dropped, so
// declarations may be laid out freely across lines.
func Tokenize(filename string, src []byte) TokenStream {
	g := &goStream{fset: token.NewFileSet()}
	file := g.fset.AddFile(filename, -1, len(src))
	g.s.Init(file, src, func(pos token.Position, msg string) {
		g.errs.Add(pos, msg)
	}, 0)
	return g
}

func (g *goStream) Next() Token {
	for {
		errCount := len(g.errs)
		p, tok, lit := g.s.Scan()
		pos := g.fset.Position(p)

		if len(g.errs) > errCount {
			return Token{Kind: Illegal, Lit: g.errs[errCount].Msg, Pos: g.errs[errCount].Pos}
		}

		switch tok {
		case token.EOF:
			return Token{Kind: EOF, Pos: pos}
		case token.SEMICOLON:
			if lit == "\n" {
				continue
			}
			return Token{Kind: Semicolon, Lit: lit, Pos: pos}
		case token.IDENT:
			return Token{Kind: Ident, Lit: lit, Pos: pos}
		case token.STRING:
			return Token{Kind: String, Lit: lit, Pos: pos}
		case token.FLOAT:
			return Token{Kind: Float, Lit: lit, Pos: pos}
		case token.INT:
			return Token{Kind: Int, Lit: lit, Pos: pos}
		case token.IMAG:
			return Token{Kind: Imag, Lit: lit, Pos: pos}
		case token.COLON:
			return Token{Kind: Colon, Lit: ":", Pos: pos}
		case token.COMMA:
			return Token{Kind: Comma, Lit: ",", Pos: pos}
		case token.LBRACE:
			return Token{Kind: LBrace, Lit: "{", Pos: pos}
		case token.RBRACE:
			return Token{Kind: RBrace, Lit: "}", Pos: pos}
		case token.LPAREN:
			return Token{Kind: LParen, Lit: "(", Pos: pos}
		case token.RPAREN:
			return Token{Kind: RParen, Lit: ")", Pos: pos}
		case token.ADD:
			return Token{Kind: Add, Lit: "+", Pos: pos}
		case token.SUB:
			return Token{Kind: Sub, Lit: "-", Pos: pos}
		default:
			text := lit
			if text == "" {
				text = tok.String()
			}
			return Token{Kind: Illegal, Lit: text, Pos: pos}
		}
	}
}
