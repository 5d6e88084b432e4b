package types2

import (
	"fmt"

	"github.com/you-not-fish/minic/internal/syntax"
	"github.com/you-not-fish/minic/internal/types"
)

// stmts checks a list of statements.
func (c *Checker) stmts(list []syntax.Stmt) {
	for _, s := range list {
		c.stmt(s)
	}
}

// stmt checks a single statement.
func (c *Checker) stmt(s syntax.Stmt) {
	switch s := s.(type) {
	case *syntax.EmptyStmt:
		// Nothing to check

	case *syntax.ExprStmt:
		c.exprStmt(s.X)

	case *syntax.VarDeclStmt:
		c.localVarDecl(s)

	case *syntax.BlockStmt:
		c.blockStmt(s)

	case *syntax.IfStmt:
		c.cond(s.Cond, ExpectedBooleanExpression, "if")
		c.stmt(s.Then)
		if s.Else != nil {
			c.stmt(s.Else)
		}

	case *syntax.WhileStmt:
		c.loop(s, "while", func() {
			c.cond(s.Cond, NonBooleanCondStmt, "while")
			c.stmt(s.Body)
		})

	case *syntax.DoWhileStmt:
		c.loop(s, "do", func() {
			c.stmt(s.Body)
			c.cond(s.Cond, NonBooleanCondStmt, "do-while")
		})

	case *syntax.ForStmt:
		c.loop(s, "for", func() {
			if s.Init != nil {
				c.stmt(s.Init)
			}
			if s.Cond != nil {
				c.cond(s.Cond, NonBooleanCondStmt, "for")
			}
			if s.Post != nil {
				c.exprStmt(s.Post)
			}
			c.stmt(s.Body)
		})

	case *syntax.BreakStmt:
		if c.loopDepth == 0 {
			c.errorf(s.Pos(), ErroneousBreak, "break outside of loop")
		}

	case *syntax.ReturnStmt:
		c.returnStmt(s)

	case *syntax.FuncDecl:
		// A local definition is the scope checker's to report; its body is
		// still typed so that errors inside it are not lost.
		c.funcBody(s)

	default:
		panic(fmt.Sprintf("types2: unexpected statement %T", s))
	}
}

// exprStmt checks an expression evaluated for its effect.
func (c *Checker) exprStmt(e syntax.Expr) {
	var x operand
	c.expr(&x, e)
	if x.mode != invalid && x.unknown() {
		c.errorf(e.Pos(), EmptyExpression, "expression could not be resolved")
	}
}

// blockStmt checks a braced block. A declaration list groups the variables
// of one declaration and does not open a scope.
func (c *Checker) blockStmt(s *syntax.BlockStmt) {
	if s.DeclList {
		c.stmts(s.Stmts)
		return
	}
	c.openScope(types.BlockScope, s, "block")
	c.stmts(s.Stmts)
	c.closeScope()
}

// loop runs body inside a fresh loop scope.
func (c *Checker) loop(s syntax.Stmt, comment string, body func()) {
	c.openScope(types.LoopScope, s, comment)
	c.loopDepth++
	defer func() {
		c.loopDepth--
		c.closeScope()
	}()
	body()
}

// cond checks that a condition is boolean.
func (c *Checker) cond(e syntax.Expr, kind ErrorKind, what string) {
	var x operand
	c.expr(&x, e)
	if x.mode == invalid {
		return
	}
	if !types.IsBooleanType(x.typ) {
		c.errorf(e.Pos(), kind, "non-boolean condition in %s statement (got %s)", what, x.typ)
	}
}

// returnStmt checks a return statement against the enclosing function.
func (c *Checker) returnStmt(s *syntax.ReturnStmt) {
	if c.funcSig == nil {
		// Outside any function; the parser and the scope checker report it.
		if s.Result != nil {
			var x operand
			c.expr(&x, s.Result)
		}
		return
	}

	result := c.funcSig.Result()
	if s.Result == nil {
		if !types.Identical(result, types.Typ[types.Void]) {
			c.errorf(s.Pos(), EmptyExpression, "return statement missing expression (function returns %s)", result)
		}
		return
	}

	var x operand
	c.expr(&x, s.Result)
	if x.mode == invalid {
		return
	}
	if !types.Identical(x.typ, result) {
		c.errorf(s.Result.Pos(), ErroneousReturnType, "cannot return %s from function returning %s", x.typ, result)
	}
}
