package lisp

import (
	"io"
	"log/slog"
)

// Lisp holds a root environment shared by every top-level evaluation.
type Lisp struct {
	Env    *Env
	logger *slog.Logger
}

type Option func(*Lisp)

func WithLogger(logger *slog.Logger) Option {
	return func(l *Lisp) {
		l.logger = logger
	}
}

func New(opts ...Option) *Lisp {
	l := &Lisp{
		Env:    GlobalEnv(),
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Eval evaluates the first expression in input against the root env.
func (l *Lisp) Eval(input string) (Expression, error) {
	return EvaluateText(input, l.Env)
}

func (l *Lisp) EvalExpr(e Expression) (Expression, error) {
	return Evaluate(e, l.Env)
}

// Reset drops every binding made since New and reinstalls the builtins.
func (l *Lisp) Reset() {
	l.Env = GlobalEnv()
	l.logger.Debug("environment reset")
}
