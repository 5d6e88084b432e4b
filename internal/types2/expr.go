package types2

import (
	"fmt"

	"github.com/you-not-fish/minic/internal/syntax"
	"github.com/you-not-fish/minic/internal/types"
)

// expr type-checks expression e and stores the result in x.
func (c *Checker) expr(x *operand, e syntax.Expr) {
	c.exprInternal(x, e)
	c.record(e, x.typ)
}

func (c *Checker) exprInternal(x *operand, e syntax.Expr) {
	switch e := e.(type) {
	case *syntax.BasicLit:
		x.setValue(e.Pos(), types.LiteralType(e.Kind))

	case *syntax.Name:
		c.ident(x, e)

	case *syntax.UnaryExpr:
		c.unary(x, e.Pos(), e.Op, e.X)

	case *syntax.PostfixExpr:
		c.unary(x, e.Pos(), e.Op, e.X)

	case *syntax.BinaryExpr:
		c.binary(x, e)

	case *syntax.CallExpr:
		c.call(x, e)

	case *syntax.IndexExpr:
		// No type in the language can be indexed, so the result has no
		// type. A bad operand still poisons the whole expression.
		var idx operand
		c.expr(x, e.X)
		c.expr(&idx, e.Index)
		if x.mode == invalid || idx.mode == invalid {
			x.setInvalid(e.Pos())
			return
		}
		x.setValue(e.Pos(), types.Typ[types.Unknown])

	default:
		panic(fmt.Sprintf("types2: unexpected expression %T", e))
	}
}

// ident resolves a name. Undeclared names are the scope checker's to
// report; here they only have no type.
func (c *Checker) ident(x *operand, e *syntax.Name) {
	switch obj := c.lookup(e.Value).(type) {
	case *types.Var:
		x.setVar(e.Pos(), obj.Type())
	default:
		x.setValue(e.Pos(), types.Typ[types.Unknown])
	}
}

// unary checks a prefix or postfix operation.
func (c *Checker) unary(x *operand, pos syntax.Pos, op syntax.Kind, operandExpr syntax.Expr) {
	c.expr(x, operandExpr)
	if x.mode == invalid {
		return
	}
	x.pos = pos

	switch op {
	case syntax.Not:
		if !types.IsBooleanType(x.typ) {
			c.invalidOp(x, AttemptedBoolOpOnNonBools, "operator ! not defined on %s", x.typ)
			return
		}
		x.setValue(pos, types.Typ[types.Bool])

	case syntax.Sub, syntax.Add, syntax.Inc, syntax.Dec:
		if !types.IsNumericType(x.typ) {
			c.invalidOp(x, AttemptedAddOpOnNonNumeric, "operator %s not defined on %s", op, x.typ)
			return
		}
		x.setValue(pos, x.typ)

	default:
		panic(fmt.Sprintf("types2: unexpected unary operator %s", op))
	}
}

// binary checks a binary operation, including assignment.
func (c *Checker) binary(x *operand, e *syntax.BinaryExpr) {
	var y operand
	c.expr(x, e.X)
	c.expr(&y, e.Y)
	if x.mode == invalid || y.mode == invalid {
		x.setInvalid(e.Pos())
		return
	}
	lt, rt := x.typ, y.typ
	x.pos = e.Pos()

	switch e.Op {
	case syntax.Assign:
		if !types.Identical(lt, rt) {
			c.invalidOp(x, ExpressionTypeMismatch, "cannot assign %s to %s", rt, lt)
			return
		}
		x.setValue(e.Pos(), lt)

	case syntax.Add, syntax.Sub, syntax.Mul, syntax.Div:
		if !types.IsNumericType(lt) || !types.IsNumericType(rt) {
			c.invalidOp(x, AttemptedAddOpOnNonNumeric, "operator %s not defined on %s and %s", e.Op, lt, rt)
			return
		}
		x.setValue(e.Pos(), common(lt, rt))

	case syntax.AndAnd, syntax.OrOr:
		if !types.IsBooleanType(lt) || !types.IsBooleanType(rt) {
			c.invalidOp(x, AttemptedBoolOpOnNonBools, "operator %s not defined on %s and %s", e.Op, lt, rt)
			return
		}
		x.setValue(e.Pos(), types.Typ[types.Bool])

	case syntax.And, syntax.Or, syntax.Xor:
		if !types.IsNumericType(lt) || !types.IsNumericType(rt) {
			c.invalidOp(x, AttemptedBitOpOnNonNumeric, "operator %s not defined on %s and %s", e.Op, lt, rt)
			return
		}
		x.setValue(e.Pos(), common(lt, rt))

	case syntax.Shl, syntax.Shr:
		if !types.IsIntegerType(lt) || !types.IsIntegerType(rt) {
			c.invalidOp(x, AttemptedShiftOnNonInt, "shift %s requires int operands, got %s and %s", e.Op, lt, rt)
			return
		}
		x.setValue(e.Pos(), types.Typ[types.Int])

	case syntax.Eql, syntax.Neq, syntax.Lss, syntax.Leq, syntax.Gtr, syntax.Geq:
		if types.IsUnknown(lt) || types.IsUnknown(rt) {
			c.errorf(e.Pos(), ExpressionTypeMismatch, "cannot compare %s and %s", lt, rt)
		}
		x.setValue(e.Pos(), types.Typ[types.Bool])

	case syntax.Pow:
		if !types.IsNumericType(lt) || !types.IsNumericType(rt) {
			c.invalidOp(x, AttemptedExponentiationOfNonNumeric, "operator ** not defined on %s and %s", lt, rt)
			return
		}
		x.setValue(e.Pos(), common(lt, rt))

	default:
		panic(fmt.Sprintf("types2: unexpected binary operator %s", e.Op))
	}
}

// common returns the type shared by both operands of an arithmetic
// operation. There is no implicit conversion: int and float mix to Unknown.
func common(x, y types.Type) types.Type {
	if types.Identical(x, y) {
		return x
	}
	return types.Typ[types.Unknown]
}
