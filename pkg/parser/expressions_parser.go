package parser

import (
	"tsi/interpreter-go/pkg/ast"
	"tsi/interpreter-go/pkg/lexer"
)

const lowestPrecedence = 0

// precedence returns the binding power of a binary operator, or 0 for
// tokens that are not binary operators.
func precedence(kind lexer.Kind) int {
	switch kind {
	case lexer.Plus, lexer.Minus:
		return 1
	case lexer.Star, lexer.Slash:
		return 2
	default:
		return 0
	}
}

// ParseExpression parses one expression.
func (p *Parser) ParseExpression() (ast.Expression, error) {
	return p.parseBinaryExpression(lowestPrecedence)
}

// parseBinaryExpression climbs precedence levels. Operators of the same
// level stop the recursive call, which keeps them left-associative.
func (p *Parser) parseBinaryExpression(minPrecedence int) (ast.Expression, error) {
	left, err := p.parseAtom()
	if err != nil {
		return nil, err
	}
	for {
		op := p.current.Kind
		prec := precedence(op)
		if prec <= minPrecedence {
			return left, nil
		}
		p.advance()
		right, err := p.parseBinaryExpression(prec)
		if err != nil {
			return nil, err
		}
		left = ast.NewBinaryExpression(op, left, right)
	}
}

func (p *Parser) parseAtom() (ast.Expression, error) {
	if !p.check(lexer.LParen) {
		return p.parsePrimary()
	}
	p.advance()
	expr, err := p.ParseExpression()
	if err != nil {
		return nil, err
	}
	if !p.check(lexer.RParen) {
		return nil, errorf("expected )")
	}
	p.advance()
	return expr, nil
}

func (p *Parser) parsePrimary() (ast.Expression, error) {
	switch p.current.Kind {
	case lexer.Number:
		return ast.NewNumberLiteral(p.advance().Number), nil
	case lexer.String:
		return ast.NewStringLiteral(p.advance().Text), nil
	case lexer.Identifier:
		return ast.NewIdentifier(p.advance().Text), nil
	default:
		return nil, unexpectedToken(p.current)
	}
}
