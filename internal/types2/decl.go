package types2

import (
	"github.com/you-not-fish/minic/internal/syntax"
	"github.com/you-not-fish/minic/internal/types"
)

// collectDecls declares every top-level function and variable in the
// global scope before any body is checked.
func (c *Checker) collectDecls(items []syntax.Decl) {
	for _, item := range items {
		switch d := item.(type) {
		case *syntax.FuncDecl:
			c.collectFuncDecl(d)
		case *syntax.VarDeclStmt:
			c.collectVarDecl(d)
		case *syntax.BlockStmt:
			for _, s := range d.Stmts {
				if v, ok := s.(*syntax.VarDeclStmt); ok {
					c.collectVarDecl(v)
				}
			}
		}
	}
}

func (c *Checker) collectVarDecl(d *syntax.VarDeclStmt) {
	obj := types.NewVar(d.Name.Pos(), d.Name.Value, types.FromKind(d.Type))
	if c.scope.Insert(obj) != nil {
		c.errorf(d.Name.Pos(), ErroneousVarDecl, "global variable '%s' redefined", d.Name.Value)
	}
}

func (c *Checker) collectFuncDecl(d *syntax.FuncDecl) {
	obj := types.NewFuncObjFromDecl(d)
	existing := c.scope.Insert(obj)
	if existing == nil {
		return
	}
	prev, ok := existing.(*types.FuncObj)
	switch {
	case !ok:
		c.errorf(d.Name.Pos(), ErroneousVarDecl, "function '%s' conflicts with global variable", d.Name.Value)
	case !types.IdenticalSignatures(prev.Signature(), obj.Signature()):
		c.errorf(d.Name.Pos(), ErroneousVarDecl, "function '%s' redefined with different signature", d.Name.Value)
	}
}

// varInit checks the initializer of a global variable.
func (c *Checker) varInit(d *syntax.VarDeclStmt) {
	if d.Init != nil {
		c.initializer(d, types.FromKind(d.Type))
	}
}

// localVarDecl declares a local variable and checks its initializer.
// The name is declared first, so it is visible in its own initializer.
func (c *Checker) localVarDecl(d *syntax.VarDeclStmt) {
	typ := types.FromKind(d.Type)
	if types.IsUnknown(typ) {
		c.errorf(d.Name.Pos(), ErroneousVarDecl, "invalid type for variable '%s'", d.Name.Value)
	}
	if c.scope.Insert(types.NewVar(d.Name.Pos(), d.Name.Value, typ)) != nil {
		c.errorf(d.Name.Pos(), ErroneousVarDecl, "variable '%s' redefined in local scope", d.Name.Value)
	}
	if d.Init != nil {
		c.initializer(d, typ)
	}
}

func (c *Checker) initializer(d *syntax.VarDeclStmt, typ types.Type) {
	var x operand
	c.expr(&x, d.Init)
	if x.mode == invalid {
		return
	}
	if !types.Identical(x.typ, typ) {
		c.errorf(d.Init.Pos(), ExpressionTypeMismatch, "cannot use %s value as %s in initializer of '%s'", x.typ, typ, d.Name.Value)
	}
}

// funcBody checks a function definition. Parameters and the outermost
// locals of the body share one scope.
func (c *Checker) funcBody(d *syntax.FuncDecl) {
	if d.Body == nil {
		return
	}

	obj := types.NewFuncObjFromDecl(d)
	sig := obj.Signature()

	c.openScope(types.FuncScope, d, "function "+d.Name.Value)
	outerSig, outerLoop := c.funcSig, c.loopDepth
	c.funcSig, c.loopDepth = sig, 0
	defer func() {
		c.funcSig, c.loopDepth = outerSig, outerLoop
		c.closeScope()
	}()

	for i, p := range d.Params {
		if c.scope.Insert(sig.Param(i)) != nil {
			c.errorf(p.Name.Pos(), ErroneousVarDecl, "parameter '%s' redefined in function '%s'", p.Name.Value, d.Name.Value)
		}
	}

	if !containsReturn(d.Body) && !isImplicitReturn(d) {
		c.errorf(d.Name.Pos(), ReturnStmtNotFound, "function '%s' missing return statement", d.Name.Value)
	}

	c.stmts(d.Body.Stmts)
}

// isImplicitReturn reports whether d may omit its return: int main
// returns 0 when it falls off the end.
func isImplicitReturn(d *syntax.FuncDecl) bool {
	return d.Name.Value == "main" && d.Result == syntax.IntKw
}

// containsReturn reports whether a return statement appears anywhere in s,
// looking through blocks, both branches of if, and loop bodies. It does not
// check that every path returns: `if (c) return 1;` counts.
func containsReturn(s syntax.Stmt) bool {
	switch s := s.(type) {
	case *syntax.ReturnStmt:
		return true
	case *syntax.BlockStmt:
		for _, s := range s.Stmts {
			if containsReturn(s) {
				return true
			}
		}
	case *syntax.IfStmt:
		return containsReturn(s.Then) || (s.Else != nil && containsReturn(s.Else))
	case *syntax.WhileStmt:
		return containsReturn(s.Body)
	case *syntax.DoWhileStmt:
		return containsReturn(s.Body)
	case *syntax.ForStmt:
		return containsReturn(s.Body)
	}
	return false
}
