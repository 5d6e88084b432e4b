// Package ir implements the three-address intermediate representation:
// a flat, ordered list of instructions with named temporaries and labels,
// and the lowering from a checked AST to that list.
package ir

// Op represents an instruction opcode.
type Op int

const (
	OpInvalid Op = iota

	OpAssign // result = arg1

	// Arithmetic
	OpAdd // result = arg1 + arg2
	OpSub // result = arg1 - arg2
	OpMul // result = arg1 * arg2
	OpDiv // result = arg1 / arg2

	// Comparison
	OpEq // result = arg1 == arg2
	OpNe // result = arg1 != arg2
	OpLt // result = arg1 < arg2
	OpLe // result = arg1 <= arg2
	OpGt // result = arg1 > arg2
	OpGe // result = arg1 >= arg2

	// Logical
	OpLAnd // result = arg1 && arg2
	OpLOr  // result = arg1 || arg2
	OpLNot // result = !arg1

	// Control flow; result holds the target label
	OpJump      // goto result
	OpJumpTrue  // if arg1 goto result
	OpJumpFalse // ifFalse arg1 goto result

	// Calls
	OpCall  // result = call arg1
	OpRet   // return [result]
	OpParam // param result

	OpLabel // result:

	opCount // sentinel; must be last
)

// OpInfo holds metadata about an opcode.
type OpInfo struct {
	Name    string // name as written in dumps
	Symbol  string // infix or prefix operator, if any
	Defines bool   // result names a value the instruction defines
	Jump    bool   // result names a label to jump to
	NArgs   int    // number of operands read from arg1, arg2
}

var opInfoTable = [opCount]OpInfo{
	OpInvalid: {Name: "INVALID"},

	OpAssign: {Name: "ASSIGN", Defines: true, NArgs: 1},

	OpAdd: {Name: "ADD", Symbol: "+", Defines: true, NArgs: 2},
	OpSub: {Name: "SUB", Symbol: "-", Defines: true, NArgs: 2},
	OpMul: {Name: "MUL", Symbol: "*", Defines: true, NArgs: 2},
	OpDiv: {Name: "DIV", Symbol: "/", Defines: true, NArgs: 2},

	OpEq: {Name: "EQ", Symbol: "==", Defines: true, NArgs: 2},
	OpNe: {Name: "NE", Symbol: "!=", Defines: true, NArgs: 2},
	OpLt: {Name: "LT", Symbol: "<", Defines: true, NArgs: 2},
	OpLe: {Name: "LE", Symbol: "<=", Defines: true, NArgs: 2},
	OpGt: {Name: "GT", Symbol: ">", Defines: true, NArgs: 2},
	OpGe: {Name: "GE", Symbol: ">=", Defines: true, NArgs: 2},

	OpLAnd: {Name: "LAND", Symbol: "&&", Defines: true, NArgs: 2},
	OpLOr:  {Name: "LOR", Symbol: "||", Defines: true, NArgs: 2},
	OpLNot: {Name: "LNOT", Symbol: "!", Defines: true, NArgs: 1},

	OpJump:      {Name: "JUMP", Jump: true},
	OpJumpTrue:  {Name: "JUMP_TRUE", Jump: true, NArgs: 1},
	OpJumpFalse: {Name: "JUMP_FALSE", Jump: true, NArgs: 1},

	OpCall:  {Name: "CALL", Defines: true},
	OpRet:   {Name: "RET"},
	OpParam: {Name: "PARAM"},

	OpLabel: {Name: "LABEL"},
}

// String returns the opcode name.
func (o Op) String() string {
	return o.Info().Name
}

// Info returns the OpInfo for this op.
func (o Op) Info() OpInfo {
	if o >= 0 && int(o) < len(opInfoTable) {
		return opInfoTable[o]
	}
	return OpInfo{Name: "unknown"}
}

// LookupOp returns the op with the given name, as printed by String.
func LookupOp(name string) (Op, bool) {
	for op := OpAssign; op < opCount; op++ {
		if opInfoTable[op].Name == name {
			return op, true
		}
	}
	return OpInvalid, false
}
