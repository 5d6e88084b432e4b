package resolve

import (
	"fmt"

	"github.com/you-not-fish/minic/internal/syntax"
	"github.com/you-not-fish/minic/internal/types"
)

// collectGlobals registers every top-level function and variable before
// any body is checked, so top-level names may be used before their
// declaration.
func (c *Checker) collectGlobals(items []syntax.Decl) {
	for _, item := range items {
		switch d := item.(type) {
		case *syntax.FuncDecl:
			c.collectFunc(d)
		case *syntax.VarDeclStmt:
			c.collectVar(d)
		case *syntax.BlockStmt:
			for _, s := range d.Stmts {
				if v, ok := s.(*syntax.VarDeclStmt); ok {
					c.collectVar(v)
				}
			}
		}
	}
}

func (c *Checker) collectFunc(d *syntax.FuncDecl) {
	name := d.Name.Value
	obj := types.NewFuncObjFromDecl(d)
	existing := c.global.Insert(obj)
	if existing == nil {
		return
	}

	prev, ok := existing.(*types.FuncObj)
	if !ok {
		c.errorf(d.Name.Pos(), FunctionPrototypeRedefinition, "function '%s' conflicts with variable", name)
		return
	}

	x, y := prev.Signature(), obj.Signature()
	switch {
	case x.NumParams() != y.NumParams():
		c.errorf(d.Name.Pos(), FunctionRedeclarationWithDifferentSignature,
			"function '%s' redeclared with different signature (%d parameters, previously %d)", name, y.NumParams(), x.NumParams())
	case !types.IdenticalSignatures(x, y):
		c.errorf(d.Name.Pos(), FunctionRedeclarationWithDifferentSignature,
			"function '%s' redeclared with different parameter or result types (%s, previously %s)", name, y, x)
	case prev.HasBody() && obj.HasBody():
		c.errorf(d.Name.Pos(), FunctionPrototypeRedefinition, "function '%s' redefined", name)
	case obj.HasBody():
		// The definition takes the prototype's place.
		c.global.Replace(obj)
	}
}

func (c *Checker) collectVar(d *syntax.VarDeclStmt) {
	obj := types.NewVar(d.Name.Pos(), d.Name.Value, types.FromKind(d.Type))
	if existing := c.global.Insert(obj); existing != nil {
		if _, isFunc := existing.(*types.FuncObj); isFunc {
			c.errorf(d.Name.Pos(), FunctionPrototypeRedefinition, "variable '%s' conflicts with function", d.Name.Value)
			return
		}
		c.errorf(d.Name.Pos(), VariableRedefinition, "global variable '%s' redefined", d.Name.Value)
	}
}

func (c *Checker) topLevel(item syntax.Decl) {
	switch d := item.(type) {
	case *syntax.FuncDecl:
		c.funcDecl(d)
	case *syntax.VarDeclStmt:
		// Declared by collectGlobals.
		c.exprOpt(d.Init)
	case *syntax.BlockStmt:
		for _, s := range d.Stmts {
			if v, ok := s.(*syntax.VarDeclStmt); ok {
				c.exprOpt(v.Init)
			} else {
				c.stmt(s)
			}
		}
	default:
		panic(fmt.Sprintf("resolve: unexpected top-level item %T", item))
	}
}

// openScope pushes a new scope.
func (c *Checker) openScope(kind types.ScopeKind, n syntax.Node, comment string) {
	c.scope = types.NewScope(c.scope, kind, n.Pos(), comment)
}

// closeScope pops the innermost scope.
func (c *Checker) closeScope() {
	c.scope = c.scope.Parent()
}

// funcDecl checks a function. Parameters and the top-level locals of the
// body share one scope.
func (c *Checker) funcDecl(d *syntax.FuncDecl) {
	c.openScope(types.FuncScope, d, "function "+d.Name.Value)
	defer c.closeScope()

	for _, p := range d.Params {
		obj := types.NewParam(p.Name.Pos(), p.Name.Value, types.FromKind(p.Type))
		if c.scope.Insert(obj) != nil {
			c.errorf(p.Name.Pos(), ParameterRedefinition, "parameter '%s' redefined in function '%s'", p.Name.Value, d.Name.Value)
		}
	}
	if d.Body != nil {
		c.stmts(d.Body.Stmts)
	}
}

func (c *Checker) stmts(list []syntax.Stmt) {
	for _, s := range list {
		c.stmt(s)
	}
}

func (c *Checker) stmt(s syntax.Stmt) {
	switch s := s.(type) {
	case *syntax.EmptyStmt:

	case *syntax.ExprStmt:
		c.expr(s.X)

	case *syntax.VarDeclStmt:
		c.varDecl(s)

	case *syntax.BlockStmt:
		if s.DeclList {
			c.stmts(s.Stmts)
			return
		}
		c.openScope(types.BlockScope, s, "block")
		c.stmts(s.Stmts)
		c.closeScope()

	case *syntax.IfStmt:
		c.expr(s.Cond)
		c.stmt(s.Then)
		if s.Else != nil {
			c.stmt(s.Else)
		}

	case *syntax.WhileStmt:
		c.openScope(types.LoopScope, s, "while")
		c.expr(s.Cond)
		c.stmt(s.Body)
		c.closeScope()

	case *syntax.DoWhileStmt:
		c.openScope(types.LoopScope, s, "do")
		c.stmt(s.Body)
		c.expr(s.Cond)
		c.closeScope()

	case *syntax.ForStmt:
		c.openScope(types.LoopScope, s, "for")
		if s.Init != nil {
			c.stmt(s.Init)
		}
		c.exprOpt(s.Cond)
		c.exprOpt(s.Post)
		c.stmt(s.Body)
		c.closeScope()

	case *syntax.BreakStmt:
		if !c.scope.InLoop() {
			c.errorf(s.Pos(), BreakContinueOutsideLoop, "break statement outside of loop")
		}

	case *syntax.ReturnStmt:
		if c.scope.Enclosing(types.FuncScope) == nil {
			c.errorf(s.Pos(), ReturnOutsideFunction, "return statement outside of function")
		}
		c.exprOpt(s.Result)

	case *syntax.FuncDecl:
		c.errorf(s.Name.Pos(), LocalFunctionDefinition, "nested function definition '%s' not allowed", s.Name.Value)
		c.funcDecl(s)

	default:
		panic(fmt.Sprintf("resolve: unexpected statement %T", s))
	}
}

// varDecl declares a local. The name is visible in its own initializer.
func (c *Checker) varDecl(d *syntax.VarDeclStmt) {
	obj := types.NewVar(d.Name.Pos(), d.Name.Value, types.FromKind(d.Type))
	if c.scope.Insert(obj) != nil {
		c.errorf(d.Name.Pos(), VariableRedefinition, "variable '%s' redefined in the same scope", d.Name.Value)
	}
	c.exprOpt(d.Init)
}

func (c *Checker) exprOpt(x syntax.Expr) {
	if x != nil {
		c.expr(x)
	}
}

func (c *Checker) expr(x syntax.Expr) {
	switch x := x.(type) {
	case *syntax.BasicLit:

	case *syntax.Name:
		if obj, _ := c.scope.LookupParent(x.Value); obj == nil {
			c.errorf(x.Pos(), UndeclaredVariableAccessed, "variable '%s' used but not declared", x.Value)
		}

	case *syntax.CallExpr:
		obj, _ := c.scope.LookupParent(x.Fun.Value)
		if _, isFunc := obj.(*types.FuncObj); !isFunc {
			c.errorf(x.Fun.Pos(), UndefinedFunctionCalled, "function '%s' called but not defined", x.Fun.Value)
		}
		for _, a := range x.Args {
			c.expr(a)
		}

	case *syntax.UnaryExpr:
		c.expr(x.X)

	case *syntax.PostfixExpr:
		c.expr(x.X)

	case *syntax.BinaryExpr:
		c.expr(x.X)
		c.expr(x.Y)

	case *syntax.IndexExpr:
		c.expr(x.X)
		c.expr(x.Index)

	default:
		panic(fmt.Sprintf("resolve: unexpected expression %T", x))
	}
}
