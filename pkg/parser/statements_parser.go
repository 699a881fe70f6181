package parser

import (
	"tsi/interpreter-go/pkg/ast"
	"tsi/interpreter-go/pkg/lexer"
)

// ParseStatement consumes exactly one statement.
func (p *Parser) ParseStatement() (ast.Statement, error) {
	if p.check(lexer.Let) {
		return p.parseLetStatement()
	}
	expr, err := p.ParseExpression()
	if err != nil {
		return nil, err
	}
	return ast.NewExpressionStatement(expr), nil
}

func (p *Parser) parseLetStatement() (ast.Statement, error) {
	p.advance() // let

	if !p.check(lexer.Identifier) {
		return nil, errorf("expected identifier after let")
	}
	name := ast.NewIdentifier(p.advance().Text)

	if !p.check(lexer.Assign) {
		return nil, errorf("expected = after identifier in let statement")
	}
	p.advance()

	value, err := p.ParseExpression()
	if err != nil {
		return nil, err
	}
	if p.check(lexer.Semicolon) {
		p.advance()
	}
	return ast.NewLetStatement(name, value), nil
}
