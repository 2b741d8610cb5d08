package lisp

// Load evaluates every expression in data against the root env, stopping at
// the first error.
func (l *Lisp) Load(data string) error {
	exps, err := Multiparse(data)
	if err != nil {
		return err
	}
	for i, e := range exps {
		v, err := l.EvalExpr(e)
		if err != nil {
			l.logger.Debug("load failed", "form", i, "source", Source(e), "err", err)
			return err
		}
		l.logger.Debug("loaded", "form", i, "value", v.String())
	}
	return nil
}
