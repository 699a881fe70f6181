package interpreter

import (
	"testing"

	"tsi/interpreter-go/pkg/parser"
	"tsi/interpreter-go/pkg/runtime"
)

// evalSource parses and evaluates every statement of src in order, failing
// the test on the first error.
func evalSource(t *testing.T, interp *Interpreter, src string) runtime.Value {
	t.Helper()
	p := parser.New(src)
	var last runtime.Value
	for !p.IsEOF() {
		stmt, err := p.ParseStatement()
		if err != nil {
			t.Fatalf("parse %q: %v", src, err)
		}
		last, err = interp.Eval(stmt)
		if err != nil {
			t.Fatalf("eval %q: %v", src, err)
		}
	}
	return last
}
