// Package resolve implements the scope checker: every identifier use and
// call must resolve to a declaration, names may not be redeclared in one
// scope, and break, return and function definitions may only appear where
// the language allows them.
package resolve

import (
	"github.com/you-not-fish/minic/internal/syntax"
	"github.com/you-not-fish/minic/internal/types"
)

// Config specifies the configuration for scope checking.
type Config struct {
	// Error is called for each diagnostic, in the order they are found.
	// If nil, diagnostics are only returned.
	Error func(*Error)
}

// Checker walks a program with a stack of lexical scopes.
// A Checker may be reused; each Analyse starts from a clean state.
type Checker struct {
	conf   *Config
	scope  *types.Scope // innermost scope
	global *types.Scope
	errors []*Error
}

// NewChecker returns a checker using conf, which may be nil.
func NewChecker(conf *Config) *Checker {
	if conf == nil {
		conf = &Config{}
	}
	return &Checker{conf: conf}
}

// Analyse checks prog and returns every diagnostic in discovery order.
func Analyse(prog *syntax.Program, conf *Config) []*Error {
	return NewChecker(conf).Analyse(prog)
}

// Analyse checks prog. It always walks the whole program.
func (c *Checker) Analyse(prog *syntax.Program) []*Error {
	c.errors = nil
	c.global = types.NewScope(nil, types.GlobalScope, prog.Pos(), "program")
	c.scope = c.global

	c.collectGlobals(prog.Items)
	for _, item := range prog.Items {
		c.topLevel(item)
	}

	if c.scope != c.global {
		c.errorf(prog.Pos(), InvalidScopeExit, "scope stack not balanced at end of program (%s scope %s still open)", c.scope.Kind(), c.scope.Comment())
		c.scope = c.global
	}
	return c.errors
}

// Global returns the global scope built by the last Analyse, with every
// scope opened during the walk as a descendant.
func (c *Checker) Global() *types.Scope {
	return c.global
}
