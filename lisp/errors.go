package lisp

import (
	"errors"
	"fmt"
)

var (
	ErrUnboundSymbol = errors.New("unbound symbol")
	ErrArity         = errors.New("wrong number of arguments")
	ErrType          = errors.New("wrong argument type")
	ErrNotCallable   = errors.New("not callable")
	ErrSyntax        = errors.New("invalid syntax")
)

// ParseError reports a malformed token stream.
type ParseError struct {
	Msg string
}

func (e *ParseError) Error() string { return e.Msg }

func parseErrorf(format string, args ...any) error {
	return &ParseError{Msg: fmt.Sprintf(format, args...)}
}

// EvalError reports a failure during evaluation. Err is one of the
// sentinel errors above and can be matched with errors.Is.
type EvalError struct {
	Msg string
	Err error
}

func (e *EvalError) Error() string { return e.Msg }

func (e *EvalError) Unwrap() error { return e.Err }

func evalErrorf(kind error, format string, args ...any) error {
	return &EvalError{Msg: fmt.Sprintf(format, args...), Err: kind}
}

// Kind returns the label a front end prints in front of err.
func Kind(err error) string {
	var perr *ParseError
	if errors.As(err, &perr) {
		return "parse error"
	}
	var eerr *EvalError
	if errors.As(err, &eerr) {
		return "eval error"
	}
	return "error"
}
