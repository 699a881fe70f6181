package interpreter

import (
	"fmt"

	"tsi/interpreter-go/pkg/ast"
	"tsi/interpreter-go/pkg/runtime"
)

// Interpreter evaluates statements one at a time against its own
// environment.
type Interpreter struct {
	env     *runtime.Environment
	last    runtime.Value
	hasLast bool
}

// New returns an interpreter with an empty environment.
func New() *Interpreter {
	return &Interpreter{env: runtime.NewEnvironment()}
}

// Environment returns the interpreter's variable table.
func (i *Interpreter) Environment() *runtime.Environment {
	return i.env
}

// LastValue returns the value of the most recent successful statement.
func (i *Interpreter) LastValue() (runtime.Value, bool) {
	return i.last, i.hasLast
}

// Variables returns a snapshot of every binding.
func (i *Interpreter) Variables() map[string]runtime.Value {
	return i.env.Snapshot()
}

// Eval evaluates one statement. A let binding defines or overwrites its name;
// both statement forms update the last value. A failing statement changes
// nothing.
func (i *Interpreter) Eval(stmt ast.Statement) (runtime.Value, error) {
	var (
		val runtime.Value
		err error
	)
	switch s := stmt.(type) {
	case *ast.LetStatement:
		val, err = i.evaluateExpression(s.Value)
		if err != nil {
			return nil, err
		}
		i.env.Define(s.Name.Name, val)
	case *ast.ExpressionStatement:
		val, err = i.evaluateExpression(s.Expression)
		if err != nil {
			return nil, err
		}
	case nil:
		return nil, fmt.Errorf("nil statement")
	default:
		return nil, fmt.Errorf("unsupported statement type %s", stmt.NodeType())
	}
	i.last = val
	i.hasLast = true
	return val, nil
}
