package lisp

import (
	"strconv"
	"strings"
)

// Expression is any value flowing through the reader and the evaluator.
// The set of implementations is closed: List, Closure, *Builtin, Bool,
// Number and Symbol.
type Expression interface {
	String() string
	expression()
}

type List []Expression

type Closure struct {
	Params Expression
	Body   Expression
}

type BuiltinFunc func(args []Expression) (Expression, error)

// Builtin wraps a native function. Builtins compare by pointer identity.
type Builtin struct {
	Name string
	Fn   BuiltinFunc
}

type Bool bool

type Number float64

type Symbol string

func (List) expression()     {}
func (Closure) expression()  {}
func (*Builtin) expression() {}
func (Bool) expression()     {}
func (Number) expression()   {}
func (Symbol) expression()   {}

func (l List) String() string {
	s := make([]string, len(l))
	for i, e := range l {
		s[i] = e.String()
	}
	return "(" + strings.Join(s, ",") + ")"
}

func (Closure) String() string { return "#<closure>" }

func (*Builtin) String() string { return "#<builtin>" }

func (b Bool) String() string {
	return strconv.FormatBool(bool(b))
}

func (n Number) String() string {
	return strconv.FormatFloat(float64(n), 'f', -1, 64)
}

func (s Symbol) String() string { return string(s) }

// Source renders e the way it would be written, separating list elements
// with spaces, so that parsing the result gives back an equal tree.
func Source(e Expression) string {
	l, ok := e.(List)
	if !ok {
		return e.String()
	}
	s := make([]string, len(l))
	for i, x := range l {
		s[i] = Source(x)
	}
	return "(" + strings.Join(s, " ") + ")"
}

// Equal reports structural equality. Closures compare by their params and
// body, builtins by identity.
func Equal(a, b Expression) bool {
	switch x := a.(type) {
	case List:
		y, ok := b.(List)
		if !ok || len(x) != len(y) {
			return false
		}
		for i := range x {
			if !Equal(x[i], y[i]) {
				return false
			}
		}
		return true
	case Closure:
		y, ok := b.(Closure)
		return ok && Equal(x.Params, y.Params) && Equal(x.Body, y.Body)
	case *Builtin:
		y, ok := b.(*Builtin)
		return ok && x == y
	case nil:
		return b == nil
	}
	return a == b
}

func typeName(e Expression) string {
	switch e.(type) {
	case List:
		return "list"
	case Closure:
		return "closure"
	case *Builtin:
		return "builtin"
	case Bool:
		return "bool"
	case Number:
		return "number"
	case Symbol:
		return "symbol"
	}
	return "nil"
}
