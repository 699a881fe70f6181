package ast

import "tsi/interpreter-go/pkg/lexer"

// Identifier and literal helpers.

func ID(name string) *Identifier {
	return NewIdentifier(name)
}

func Num(value float64) *NumberLiteral {
	return NewNumberLiteral(value)
}

func Str(value string) *StringLiteral {
	return NewStringLiteral(value)
}

// Expression helpers.

func Bin(operator lexer.Kind, left, right Expression) *BinaryExpression {
	return NewBinaryExpression(operator, left, right)
}

func Add(left, right Expression) *BinaryExpression { return Bin(lexer.Plus, left, right) }
func Sub(left, right Expression) *BinaryExpression { return Bin(lexer.Minus, left, right) }
func Mul(left, right Expression) *BinaryExpression { return Bin(lexer.Star, left, right) }
func Div(left, right Expression) *BinaryExpression { return Bin(lexer.Slash, left, right) }

// Statement helpers.

func Let(name string, value Expression) *LetStatement {
	return NewLetStatement(ID(name), value)
}

func Expr(expr Expression) *ExpressionStatement {
	return NewExpressionStatement(expr)
}
