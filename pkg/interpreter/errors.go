package interpreter

import "fmt"

// EvalErrorKind enumerates the ways evaluating a statement can fail.
type EvalErrorKind int

const (
	UndefinedVariable EvalErrorKind = iota
	InvalidOperation
)

func (k EvalErrorKind) String() string {
	switch k {
	case UndefinedVariable:
		return "undefined_variable"
	case InvalidOperation:
		return "invalid_operation"
	default:
		return fmt.Sprintf("unknown_eval_error_%d", int(k))
	}
}

// EvalError is returned by Eval. Name is set for UndefinedVariable.
type EvalError struct {
	Kind EvalErrorKind
	Name string
}

func (e *EvalError) Error() string {
	switch e.Kind {
	case UndefinedVariable:
		return "undefined variable: " + e.Name
	case InvalidOperation:
		return "invalid operation"
	default:
		return e.Kind.String()
	}
}

func undefinedVariable(name string) *EvalError {
	return &EvalError{Kind: UndefinedVariable, Name: name}
}

func invalidOperation() *EvalError {
	return &EvalError{Kind: InvalidOperation}
}
