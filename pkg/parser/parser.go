package parser

import (
	"tsi/interpreter-go/pkg/ast"
	"tsi/interpreter-go/pkg/lexer"
)

// Parser is a recursive-descent parser with a single token of lookahead.
// Recursion depth grows with parenthesis nesting only.
type Parser struct {
	lexer   *lexer.Lexer
	current lexer.Token
}

// New primes a parser over src.
func New(src string) *Parser {
	p := &Parser{lexer: lexer.New(src)}
	p.current = p.lexer.NextToken()
	return p
}

// IsEOF reports whether the lookahead is the end of input.
func (p *Parser) IsEOF() bool {
	return p.current.Kind == lexer.EOF
}

// Peek returns the current lookahead without consuming it.
func (p *Parser) Peek() lexer.Token {
	return p.current
}

// advance pulls the next token and returns the one it replaced.
func (p *Parser) advance() lexer.Token {
	prev := p.current
	p.current = p.lexer.NextToken()
	return prev
}

func (p *Parser) check(kind lexer.Kind) bool {
	return p.current.Kind == kind
}

// ParseProgram parses statements until end of input, stopping at the first
// error.
func (p *Parser) ParseProgram() ([]ast.Statement, error) {
	var stmts []ast.Statement
	for !p.IsEOF() {
		stmt, err := p.ParseStatement()
		if err != nil {
			return stmts, err
		}
		stmts = append(stmts, stmt)
	}
	return stmts, nil
}
