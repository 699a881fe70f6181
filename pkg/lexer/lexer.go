package lexer

import (
	"fmt"
	"strconv"
	"unicode"
)

// Lexer produces tokens on demand from an in-memory source string.
//
// The lexer never fails: characters outside the language collapse to EOF and
// an unterminated string literal runs to the end of the input.
type Lexer struct {
	input    []rune
	position int
}

// New returns a lexer positioned at the start of src.
func New(src string) *Lexer {
	return &Lexer{input: []rune(src)}
}

// NextToken returns the next token and advances the cursor. Once the input
// is exhausted it keeps returning EOF.
func (l *Lexer) NextToken() Token {
	l.skipTrivia()

	if l.position >= len(l.input) {
		return Tok(EOF)
	}

	ch := l.input[l.position]
	switch {
	case ch == '"':
		return l.readString()
	case isIdentStart(ch):
		return l.readIdentifier()
	case isDigit(ch):
		return l.readNumber()
	}
	if kind, ok := symbols[ch]; ok {
		l.position++
		return Tok(kind)
	}
	return Tok(EOF)
}

// Tokenize drains a fresh lexer over src. The result always ends with EOF.
func Tokenize(src string) []Token {
	l := New(src)
	var out []Token
	for {
		tok := l.NextToken()
		out = append(out, tok)
		if tok.Kind == EOF {
			return out
		}
	}
}

func (l *Lexer) skipTrivia() {
	for {
		start := l.position
		l.skipWhitespace()
		l.skipComment()
		if l.position == start {
			return
		}
	}
}

func (l *Lexer) skipWhitespace() {
	for l.position < len(l.input) && unicode.IsSpace(l.input[l.position]) {
		l.position++
	}
}

func (l *Lexer) skipComment() {
	if !l.peekIs(0, '/') || !l.peekIs(1, '/') {
		return
	}
	for l.position < len(l.input) && l.input[l.position] != '\n' {
		l.position++
	}
}

func (l *Lexer) readString() Token {
	l.position++ // opening quote
	start := l.position
	for l.position < len(l.input) && l.input[l.position] != '"' {
		l.position++
	}
	text := string(l.input[start:l.position])
	if l.position < len(l.input) {
		l.position++ // closing quote
	}
	return Str(text)
}

func (l *Lexer) readIdentifier() Token {
	start := l.position
	for l.position < len(l.input) && isIdentPart(l.input[l.position]) {
		l.position++
	}
	text := string(l.input[start:l.position])
	if kind, ok := keywords[text]; ok {
		return Tok(kind)
	}
	return Ident(text)
}

func (l *Lexer) readNumber() Token {
	start := l.position
	seenDot := false
	for l.position < len(l.input) {
		ch := l.input[l.position]
		if ch == '.' && !seenDot {
			seenDot = true
		} else if !isDigit(ch) {
			break
		}
		l.position++
	}
	text := string(l.input[start:l.position])
	value, err := strconv.ParseFloat(text, 64)
	if err != nil {
		// Only ASCII digits and a single dot reach here.
		panic(fmt.Sprintf("lexer: malformed number literal %q: %v", text, err))
	}
	return Num(value)
}

func (l *Lexer) peekIs(offset int, want rune) bool {
	idx := l.position + offset
	return idx < len(l.input) && l.input[idx] == want
}

func isIdentStart(ch rune) bool {
	return ch == '_' || unicode.IsLetter(ch)
}

func isIdentPart(ch rune) bool {
	return isIdentStart(ch) || unicode.IsDigit(ch)
}

func isDigit(ch rune) bool {
	return ch >= '0' && ch <= '9'
}
