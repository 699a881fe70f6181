package runtime

import (
	"fmt"
	"math"
	"strconv"
)

// Kind identifies the runtime value category.
type Kind int

const (
	KindNumber Kind = iota
	KindString
	KindBool
	KindNull
)

func (k Kind) String() string {
	switch k {
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindBool:
		return "boolean"
	case KindNull:
		return "null"
	default:
		return fmt.Sprintf("unknown_kind_%d", int(k))
	}
}

// Value is the shared behaviour for all runtime values. Every variant is a
// plain comparable struct, so values copy freely and compare with ==.
type Value interface {
	Kind() Kind
}

type NumberValue struct {
	Val float64
}

func (v NumberValue) Kind() Kind { return KindNumber }

type StringValue struct {
	Val string
}

func (v StringValue) Kind() Kind { return KindString }

// BoolValue and NullValue have no literal syntax yet; they are reserved for
// comparison operators and control flow.
type BoolValue struct {
	Val bool
}

func (v BoolValue) Kind() Kind { return KindBool }

type NullValue struct{}

func (NullValue) Kind() Kind { return KindNull }

// Format renders a value for display. Strings are printed bare.
func Format(val Value) string {
	switch v := val.(type) {
	case NumberValue:
		return formatNumber(v.Val)
	case StringValue:
		return v.Val
	case BoolValue:
		if v.Val {
			return "true"
		}
		return "false"
	case NullValue:
		return "null"
	case nil:
		return "<none>"
	default:
		return fmt.Sprintf("[%s]", v.Kind())
	}
}

// Literal renders a value the way it would be written in source. Numbers
// use the shortest representation that parses back to the same float64.
func Literal(val Value) string {
	if s, ok := val.(StringValue); ok {
		return `"` + s.Val + `"`
	}
	return Format(val)
}

func formatNumber(f float64) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}
