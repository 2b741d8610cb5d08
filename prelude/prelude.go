package prelude

import (
	_ "embed"

	"github.com/agarick/muck/lisp"
)

//go:embed prelude.lisp
var prelude string

// Load defines the prelude functions in the root env of l.
func Load(l *lisp.Lisp) error {
	return l.Load(prelude)
}
