package types2

import (
	"github.com/you-not-fish/minic/internal/syntax"
	"github.com/you-not-fish/minic/internal/types"
)

// call checks a call expression. Every argument is checked even when the
// callee is unknown or the count is wrong.
func (c *Checker) call(x *operand, e *syntax.CallExpr) {
	args := make([]operand, len(e.Args))
	for i, a := range e.Args {
		c.expr(&args[i], a)
	}

	fn, ok := c.lookup(e.Fun.Value).(*types.FuncObj)
	if !ok {
		c.errorf(e.Fun.Pos(), FnCallParamType, "call to undefined function '%s'", e.Fun.Value)
		x.setInvalid(e.Pos())
		return
	}

	sig := fn.Signature()
	if len(e.Args) != sig.NumParams() {
		c.errorf(e.Pos(), FnCallParamCount, "function '%s' expects %d argument(s), got %d", e.Fun.Value, sig.NumParams(), len(e.Args))
	} else {
		for i := range args {
			a := &args[i]
			if a.mode == invalid {
				continue
			}
			want := sig.Param(i).Type()
			if !types.Identical(a.typ, want) {
				c.errorf(e.Args[i].Pos(), FnCallParamType, "argument %d of '%s': cannot use %s as %s", i+1, e.Fun.Value, a.typ, want)
			}
		}
	}

	x.setValue(e.Pos(), sig.Result())
}
