package parser

import (
	"fmt"

	"tsi/interpreter-go/pkg/lexer"
)

// ParseError reports a token sequence the grammar does not accept. The
// parser does not resynchronize after one.
type ParseError struct {
	Reason string
}

func (e *ParseError) Error() string {
	return e.Reason
}

func errorf(format string, args ...any) *ParseError {
	return &ParseError{Reason: fmt.Sprintf(format, args...)}
}

func unexpectedToken(tok lexer.Token) *ParseError {
	return errorf("expected expression, got %s", tok)
}
