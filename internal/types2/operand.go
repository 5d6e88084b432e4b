package types2

import (
	"github.com/you-not-fish/minic/internal/syntax"
	"github.com/you-not-fish/minic/internal/types"
)

// operandMode describes the mode of an operand.
type operandMode int

const (
	invalid  operandMode = iota // an error was already reported for the operand
	variable                    // operand is a named variable
	value                       // operand is a computed value
)

// operand represents the result of evaluating an expression.
// An operand in value mode may still have type Unknown, for example a
// name that no scope declares; only invalid operands are silent.
type operand struct {
	mode operandMode
	pos  syntax.Pos
	typ  types.Type
}

// String returns a string representation of the operand for debugging.
func (x *operand) String() string {
	if x.mode == invalid {
		return "invalid operand"
	}
	return x.typ.String()
}

func (x *operand) setVar(pos syntax.Pos, typ types.Type) {
	x.mode = variable
	x.pos = pos
	x.typ = typ
}

func (x *operand) setValue(pos syntax.Pos, typ types.Type) {
	x.mode = value
	x.pos = pos
	x.typ = typ
}

func (x *operand) setInvalid(pos syntax.Pos) {
	x.mode = invalid
	x.pos = pos
	x.typ = types.Typ[types.Unknown]
}

// unknown reports whether x has no usable type.
func (x *operand) unknown() bool {
	return types.IsUnknown(x.typ)
}
