// Package types2 implements the type checker. It walks a parsed program
// with its own scope stack, infers a type for every expression from a
// fixed operator table, and checks declarations, calls, conditions and
// returns against the declared types.
package types2

import (
	"github.com/you-not-fish/minic/internal/syntax"
	"github.com/you-not-fish/minic/internal/types"
)

// Config specifies the configuration for type checking.
type Config struct {
	// Error is called for each type error, in the order found.
	// If nil, errors are only returned.
	Error func(*Error)
}

// Info holds the results of type checking.
type Info struct {
	// Types maps every checked expression to its type. Expressions that
	// could not be typed map to Unknown.
	Types map[syntax.Expr]types.Type
}

// TypeOf returns the recorded type of x, or Unknown if x was not checked.
func (info *Info) TypeOf(x syntax.Expr) types.Type {
	if t, ok := info.Types[x]; ok {
		return t
	}
	return types.Typ[types.Unknown]
}

// Check type-checks prog and returns every diagnostic in discovery order.
// info may be nil.
func Check(prog *syntax.Program, conf *Config, info *Info) []*Error {
	return NewChecker(conf, info).Check(prog)
}
