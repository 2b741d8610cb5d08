package lisp

import "sort"

// Env is one frame of bindings chained to an optional outer frame.
type Env struct {
	dict  map[Symbol]Expression
	outer *Env
}

func NewEnv(outer *Env) *Env {
	return &Env{dict: map[Symbol]Expression{}, outer: outer}
}

func (e *Env) find(s Symbol) (*Env, bool) {
	if _, ok := e.dict[s]; ok {
		return e, true
	}
	if e.outer == nil {
		return nil, false
	}
	return e.outer.find(s)
}

// Lookup resolves s in this frame or, failing that, in the outer chain.
func (e *Env) Lookup(s Symbol) (Expression, bool) {
	ed, ok := e.find(s)
	if !ok {
		return nil, false
	}
	return ed.dict[s], true
}

// Define binds s in this frame only, shadowing any outer binding.
func (e *Env) Define(s Symbol, exp Expression) {
	e.dict[s] = exp
}

func (e *Env) Outer() *Env {
	return e.outer
}

// Names returns the symbols bound in this frame, sorted.
func (e *Env) Names() []Symbol {
	names := make([]Symbol, 0, len(e.dict))
	for s := range e.dict {
		names = append(names, s)
	}
	sort.Slice(names, func(i, j int) bool { return names[i] < names[j] })
	return names
}

func (e *Env) addBuiltin(s Symbol, f BuiltinFunc) {
	e.dict[s] = &Builtin{Name: string(s), Fn: f}
}

// newCallEnv binds params positionally to args in a fresh frame on top of outer.
func newCallEnv(params List, args []Expression, outer *Env) *Env {
	env := NewEnv(outer)
	for i, p := range params {
		env.dict[p.(Symbol)] = args[i]
	}
	return env
}
