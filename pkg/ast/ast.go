package ast

import (
	"strconv"

	"tsi/interpreter-go/pkg/lexer"
)

type NodeType string

const (
	NodeIdentifier          NodeType = "Identifier"
	NodeNumberLiteral       NodeType = "NumberLiteral"
	NodeStringLiteral       NodeType = "StringLiteral"
	NodeBinaryExpression    NodeType = "BinaryExpression"
	NodeLetStatement        NodeType = "LetStatement"
	NodeExpressionStatement NodeType = "ExpressionStatement"
)

type Node interface {
	NodeType() NodeType
	String() string
	isNode()
}

type nodeImpl struct {
	Type NodeType `json:"type"`
}

func newNodeImpl(kind NodeType) nodeImpl {
	return nodeImpl{Type: kind}
}

func (n nodeImpl) NodeType() NodeType { return n.Type }
func (nodeImpl) isNode()              {}

// Marker interfaces.

type Expression interface {
	Node
	expressionNode()
}

type expressionMarker struct{}

func (expressionMarker) expressionNode() {}

type Statement interface {
	Node
	statementNode()
}

type statementMarker struct{}

func (statementMarker) statementNode() {}

// Identifier

type Identifier struct {
	nodeImpl
	expressionMarker

	Name string `json:"name"`
}

func NewIdentifier(name string) *Identifier {
	return &Identifier{nodeImpl: newNodeImpl(NodeIdentifier), Name: name}
}

func (n *Identifier) String() string { return n.Name }

// Literals

type NumberLiteral struct {
	nodeImpl
	expressionMarker

	Value float64 `json:"value"`
}

func NewNumberLiteral(value float64) *NumberLiteral {
	return &NumberLiteral{nodeImpl: newNodeImpl(NodeNumberLiteral), Value: value}
}

func (n *NumberLiteral) String() string {
	return strconv.FormatFloat(n.Value, 'f', -1, 64)
}

type StringLiteral struct {
	nodeImpl
	expressionMarker

	Value string `json:"value"`
}

func NewStringLiteral(value string) *StringLiteral {
	return &StringLiteral{nodeImpl: newNodeImpl(NodeStringLiteral), Value: value}
}

func (n *StringLiteral) String() string {
	return `"` + n.Value + `"`
}

// Operators

// BinaryExpression owns both operands. Operator is one of lexer.Plus,
// lexer.Minus, lexer.Star or lexer.Slash.
type BinaryExpression struct {
	nodeImpl
	expressionMarker

	Operator lexer.Kind `json:"operator"`
	Left     Expression `json:"left"`
	Right    Expression `json:"right"`
}

func NewBinaryExpression(operator lexer.Kind, left, right Expression) *BinaryExpression {
	return &BinaryExpression{nodeImpl: newNodeImpl(NodeBinaryExpression), Operator: operator, Left: left, Right: right}
}

// String renders the expression fully parenthesized so grouping is visible.
func (n *BinaryExpression) String() string {
	return "(" + n.Left.String() + " " + n.Operator.String() + " " + n.Right.String() + ")"
}

// Statements

type LetStatement struct {
	nodeImpl
	statementMarker

	Name  *Identifier `json:"name"`
	Value Expression  `json:"value"`
}

func NewLetStatement(name *Identifier, value Expression) *LetStatement {
	return &LetStatement{nodeImpl: newNodeImpl(NodeLetStatement), Name: name, Value: value}
}

func (n *LetStatement) String() string {
	return "let " + n.Name.String() + " = " + n.Value.String() + ";"
}

type ExpressionStatement struct {
	nodeImpl
	statementMarker

	Expression Expression `json:"expression"`
}

func NewExpressionStatement(expr Expression) *ExpressionStatement {
	return &ExpressionStatement{nodeImpl: newNodeImpl(NodeExpressionStatement), Expression: expr}
}

func (n *ExpressionStatement) String() string {
	return n.Expression.String()
}
