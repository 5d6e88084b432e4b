package types2

import (
	"github.com/you-not-fish/minic/internal/syntax"
	"github.com/you-not-fish/minic/internal/types"
)

// Checker is the type checker. A Checker may be reused; each Check starts
// from a fresh scope stack and an empty error list.
type Checker struct {
	conf *Config
	info *Info

	// Current checking context
	scope *types.Scope // current scope

	// Function context
	funcSig *types.Func // current function signature

	// Control-flow context
	loopDepth int // nested loop depth (for break validation)

	errors []*Error
}

// NewChecker returns a checker. conf and info may be nil.
func NewChecker(conf *Config, info *Info) *Checker {
	if conf == nil {
		conf = &Config{}
	}
	if info != nil && info.Types == nil {
		info.Types = make(map[syntax.Expr]types.Type)
	}
	return &Checker{conf: conf, info: info}
}

// Check type-checks prog.
func (c *Checker) Check(prog *syntax.Program) []*Error {
	c.errors = nil
	c.funcSig = nil
	c.loopDepth = 0
	c.scope = types.NewScope(nil, types.GlobalScope, prog.Pos(), "program")

	// Phase 1: hoist top-level functions and variables
	c.collectDecls(prog.Items)

	// Phase 2: check global initializers and function bodies in order
	for _, item := range prog.Items {
		switch d := item.(type) {
		case *syntax.FuncDecl:
			c.funcBody(d)
		case *syntax.VarDeclStmt:
			c.varInit(d)
		case *syntax.BlockStmt:
			for _, s := range d.Stmts {
				if v, ok := s.(*syntax.VarDeclStmt); ok {
					c.varInit(v)
				} else {
					c.stmt(s)
				}
			}
		}
	}
	return c.errors
}

// openScope creates a new scope as a child of the current scope.
func (c *Checker) openScope(kind types.ScopeKind, n syntax.Node, comment string) {
	c.scope = types.NewScope(c.scope, kind, n.Pos(), comment)
}

// closeScope returns to the parent scope.
func (c *Checker) closeScope() {
	c.scope = c.scope.Parent()
}

// lookup looks up a name in the current scope chain.
func (c *Checker) lookup(name string) types.Object {
	obj, _ := c.scope.LookupParent(name)
	return obj
}

func (c *Checker) record(x syntax.Expr, typ types.Type) {
	if c.info != nil {
		c.info.Types[x] = typ
	}
}
