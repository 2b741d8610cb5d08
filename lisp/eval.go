package lisp

// Evaluate computes the value of e in env. Only def writes to env, and only
// to its innermost frame.
func Evaluate(e Expression, env *Env) (Expression, error) {
	switch x := e.(type) {
	case Bool, Number:
		return x, nil
	case Symbol:
		v, ok := env.Lookup(x)
		if !ok {
			return nil, evalErrorf(ErrUnboundSymbol, "unbound symbol %s", x)
		}
		return v, nil
	case List:
		return evalList(x, env)
	case Closure, *Builtin:
		return nil, evalErrorf(ErrSyntax, "unexpected %s outside of a call", typeName(x))
	}
	return nil, evalErrorf(ErrSyntax, "cannot evaluate %v", e)
}

func evalList(list List, env *Env) (Expression, error) {
	if len(list) == 0 {
		return nil, evalErrorf(ErrSyntax, "cannot evaluate empty list")
	}
	head, args := list[0], list[1:]
	// special forms rely on their args not being evaluated first
	if s, ok := head.(Symbol); ok {
		switch s {
		case "def":
			return evalDef(args, env)
		case "if":
			return evalIf(args, env)
		case "fn":
			if len(args) != 2 {
				return nil, evalErrorf(ErrArity, "fn expects 2 forms, got %d", len(args))
			}
			return Closure{Params: args[0], Body: args[1]}, nil
		}
	}
	// procedure call
	proc, err := Evaluate(head, env)
	if err != nil {
		return nil, err
	}
	switch p := proc.(type) {
	case Closure:
		return applyClosure(p, args, env)
	case *Builtin:
		evalled, err := evalArgs(args, env)
		if err != nil {
			return nil, err
		}
		return p.Fn(evalled)
	}
	return nil, evalErrorf(ErrNotCallable, "attempt to apply non-procedure %s", proc)
}

func evalDef(args []Expression, env *Env) (Expression, error) {
	if len(args) != 2 {
		return nil, evalErrorf(ErrArity, "def expects 2 forms, got %d", len(args))
	}
	sym, ok := args[0].(Symbol)
	if !ok {
		return nil, evalErrorf(ErrType, "def expects a symbol, got %s", typeName(args[0]))
	}
	v, err := Evaluate(args[1], env)
	if err != nil {
		return nil, err
	}
	env.Define(sym, v)
	return sym, nil
}

func evalIf(args []Expression, env *Env) (Expression, error) {
	if len(args) != 2 && len(args) != 3 {
		return nil, evalErrorf(ErrArity, "if expects a test and 1 or 2 branches, got %d forms", len(args))
	}
	tested, err := Evaluate(args[0], env)
	if err != nil {
		return nil, err
	}
	b, ok := tested.(Bool)
	if !ok {
		return nil, evalErrorf(ErrType, "if test must be a bool, got %s", typeName(tested))
	}
	if b {
		return Evaluate(args[1], env)
	}
	if len(args) == 2 {
		return nil, evalErrorf(ErrSyntax, "if test is false and there is no else branch")
	}
	return Evaluate(args[2], env)
}

// applyClosure chains the call frame to the caller's env; closures do not
// capture the env they were created in.
func applyClosure(c Closure, args []Expression, env *Env) (Expression, error) {
	params, ok := c.Params.(List)
	if !ok {
		return nil, evalErrorf(ErrType, "closure params must be a list, got %s", typeName(c.Params))
	}
	for _, p := range params {
		if _, ok := p.(Symbol); !ok {
			return nil, evalErrorf(ErrType, "closure param must be a symbol, got %s", typeName(p))
		}
	}
	if len(args) != len(params) {
		return nil, evalErrorf(ErrArity, "closure expects %d arguments, got %d", len(params), len(args))
	}
	evalled, err := evalArgs(args, env)
	if err != nil {
		return nil, err
	}
	return Evaluate(c.Body, newCallEnv(params, evalled, env))
}

func evalArgs(args []Expression, env *Env) ([]Expression, error) {
	evalled := make([]Expression, len(args))
	for i, arg := range args {
		v, err := Evaluate(arg, env)
		if err != nil {
			return nil, err
		}
		evalled[i] = v
	}
	return evalled, nil
}

// EvaluateText parses the first expression in text and evaluates it in env.
// Tokens after the first complete expression are ignored.
func EvaluateText(text string, env *Env) (Expression, error) {
	e, _, err := Parse(Tokenize(text))
	if err != nil {
		return nil, err
	}
	return Evaluate(e, env)
}
