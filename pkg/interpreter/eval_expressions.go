package interpreter

import (
	"fmt"

	"tsi/interpreter-go/pkg/ast"
	"tsi/interpreter-go/pkg/lexer"
	"tsi/interpreter-go/pkg/runtime"
)

func (i *Interpreter) evaluateExpression(node ast.Expression) (runtime.Value, error) {
	switch n := node.(type) {
	case *ast.NumberLiteral:
		return runtime.NumberValue{Val: n.Value}, nil
	case *ast.StringLiteral:
		return runtime.StringValue{Val: n.Value}, nil
	case *ast.Identifier:
		val, ok := i.env.Lookup(n.Name)
		if !ok {
			return nil, undefinedVariable(n.Name)
		}
		return val, nil
	case *ast.BinaryExpression:
		return i.evaluateBinaryExpression(n)
	case nil:
		return nil, fmt.Errorf("nil expression")
	default:
		return nil, fmt.Errorf("unsupported expression type %s", node.NodeType())
	}
}

func (i *Interpreter) evaluateBinaryExpression(expr *ast.BinaryExpression) (runtime.Value, error) {
	left, err := i.evaluateExpression(expr.Left)
	if err != nil {
		return nil, err
	}
	right, err := i.evaluateExpression(expr.Right)
	if err != nil {
		return nil, err
	}
	return evaluateArithmetic(expr.Operator, left, right)
}

// evaluateArithmetic applies op without coercion. Division by zero follows
// IEEE-754 and yields an infinity or NaN.
func evaluateArithmetic(op lexer.Kind, left runtime.Value, right runtime.Value) (runtime.Value, error) {
	switch lv := left.(type) {
	case runtime.NumberValue:
		rv, ok := right.(runtime.NumberValue)
		if !ok {
			return nil, invalidOperation()
		}
		switch op {
		case lexer.Plus:
			return runtime.NumberValue{Val: lv.Val + rv.Val}, nil
		case lexer.Minus:
			return runtime.NumberValue{Val: lv.Val - rv.Val}, nil
		case lexer.Star:
			return runtime.NumberValue{Val: lv.Val * rv.Val}, nil
		case lexer.Slash:
			return runtime.NumberValue{Val: lv.Val / rv.Val}, nil
		}
	case runtime.StringValue:
		rv, ok := right.(runtime.StringValue)
		if ok && op == lexer.Plus {
			return runtime.StringValue{Val: lv.Val + rv.Val}, nil
		}
	}
	return nil, invalidOperation()
}
