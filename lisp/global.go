package lisp

// GlobalEnv returns a fresh root frame with the builtins installed.
func GlobalEnv() *Env {
	env := NewEnv(nil)
	for s, f := range map[Symbol]BuiltinFunc{
		"+":   add,
		"-":   sub,
		"*":   mul,
		"/":   div,
		"=":   compare("=", func(a, b Number) bool { return a == b }),
		"<":   compare("<", func(a, b Number) bool { return a < b }),
		">":   compare(">", func(a, b Number) bool { return a > b }),
		"<=":  compare("<=", func(a, b Number) bool { return a <= b }),
		">=":  compare(">=", func(a, b Number) bool { return a >= b }),
		"not": not,
	} {
		env.addBuiltin(s, f)
	}
	return env
}

func numbers(name string, args []Expression) ([]Number, error) {
	nums := make([]Number, len(args))
	for i, arg := range args {
		n, ok := arg.(Number)
		if !ok {
			return nil, evalErrorf(ErrType, "%s expects numbers, got %s %s", name, typeName(arg), arg)
		}
		nums[i] = n
	}
	return nums, nil
}

func add(args []Expression) (Expression, error) {
	nums, err := numbers("+", args)
	if err != nil {
		return nil, err
	}
	var sum Number
	for _, n := range nums {
		sum += n
	}
	return sum, nil
}

// sub subtracts the sum of the rest from the first argument.
func sub(args []Expression) (Expression, error) {
	nums, err := numbers("-", args)
	if err != nil {
		return nil, err
	}
	if len(nums) == 0 {
		return nil, evalErrorf(ErrArity, "- expects at least 1 argument")
	}
	v := nums[0]
	for _, n := range nums[1:] {
		v -= n
	}
	return v, nil
}

func mul(args []Expression) (Expression, error) {
	nums, err := numbers("*", args)
	if err != nil {
		return nil, err
	}
	product := Number(1)
	for _, n := range nums {
		product *= n
	}
	return product, nil
}

func div(args []Expression) (Expression, error) {
	nums, err := numbers("/", args)
	if err != nil {
		return nil, err
	}
	if len(nums) == 0 {
		return nil, evalErrorf(ErrArity, "/ expects at least 1 argument")
	}
	v := nums[0]
	for _, n := range nums[1:] {
		v /= n
	}
	return v, nil
}

// compare builds a builtin that holds when every adjacent pair satisfies cmp.
func compare(name string, cmp func(a, b Number) bool) BuiltinFunc {
	return func(args []Expression) (Expression, error) {
		nums, err := numbers(name, args)
		if err != nil {
			return nil, err
		}
		if len(nums) == 0 {
			return nil, evalErrorf(ErrArity, "%s expects at least 1 argument", name)
		}
		for i := 1; i < len(nums); i++ {
			if !cmp(nums[i-1], nums[i]) {
				return Bool(false), nil
			}
		}
		return Bool(true), nil
	}
}

func not(args []Expression) (Expression, error) {
	if len(args) != 1 {
		return nil, evalErrorf(ErrArity, "not expects 1 argument, got %d", len(args))
	}
	b, ok := args[0].(Bool)
	if !ok {
		return nil, evalErrorf(ErrType, "not expects a bool, got %s", typeName(args[0]))
	}
	return !b, nil
}
