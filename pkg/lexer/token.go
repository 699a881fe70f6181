package lexer

import (
	"fmt"
	"strconv"
)

// Kind identifies the lexical category of a token.
type Kind int

const (
	EOF Kind = iota

	// Keywords
	Let
	Const
	Function
	Return
	If
	Else

	// Literals
	Number
	String
	Identifier

	// Symbols
	Assign
	Plus
	Minus
	Star
	Slash
	LParen
	RParen
	LBrace
	RBrace
	Less
	Greater
	Semicolon
	Comma
)

var kindNames = map[Kind]string{
	EOF:        "EOF",
	Let:        "let",
	Const:      "const",
	Function:   "function",
	Return:     "return",
	If:         "if",
	Else:       "else",
	Number:     "number",
	String:     "string",
	Identifier: "identifier",
	Assign:     "=",
	Plus:       "+",
	Minus:      "-",
	Star:       "*",
	Slash:      "/",
	LParen:     "(",
	RParen:     ")",
	LBrace:     "{",
	RBrace:     "}",
	Less:       "<",
	Greater:    ">",
	Semicolon:  ";",
	Comma:      ",",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("unknown_kind_%d", int(k))
}

// MarshalText lets AST dumps render operators as their source symbol.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

var keywords = map[string]Kind{
	"let":      Let,
	"const":    Const,
	"function": Function,
	"return":   Return,
	"if":       If,
	"else":     Else,
}

var symbols = map[rune]Kind{
	'=': Assign,
	'+': Plus,
	'-': Minus,
	'*': Star,
	'/': Slash,
	'(': LParen,
	')': RParen,
	'{': LBrace,
	'}': RBrace,
	'<': Less,
	'>': Greater,
	';': Semicolon,
	',': Comma,
}

// Token is a single lexical unit. Text carries the payload of String and
// Identifier tokens, Number the payload of Number tokens.
type Token struct {
	Kind   Kind
	Text   string
	Number float64
}

// Tok builds a payload-free token of the given kind.
func Tok(kind Kind) Token {
	return Token{Kind: kind}
}

// Num builds a number literal token.
func Num(value float64) Token {
	return Token{Kind: Number, Number: value}
}

// Str builds a string literal token.
func Str(value string) Token {
	return Token{Kind: String, Text: value}
}

// Ident builds an identifier token.
func Ident(name string) Token {
	return Token{Kind: Identifier, Text: name}
}

// IsKeyword reports whether the token is one of the reserved words.
func (t Token) IsKeyword() bool {
	return t.Kind >= Let && t.Kind <= Else
}

func (t Token) String() string {
	switch t.Kind {
	case Number:
		return strconv.FormatFloat(t.Number, 'f', -1, 64)
	case String:
		return strconv.Quote(t.Text)
	case Identifier:
		return t.Text
	default:
		return t.Kind.String()
	}
}
