package types2

import (
	"fmt"

	"github.com/you-not-fish/minic/internal/syntax"
)

// ErrorKind classifies a type diagnostic.
type ErrorKind int

const (
	ErroneousVarDecl ErrorKind = iota
	FnCallParamCount
	FnCallParamType
	ErroneousReturnType
	ExpressionTypeMismatch
	ExpectedBooleanExpression
	ErroneousBreak
	NonBooleanCondStmt
	EmptyExpression
	AttemptedBoolOpOnNonBools
	AttemptedBitOpOnNonNumeric
	AttemptedShiftOnNonInt
	AttemptedAddOpOnNonNumeric
	AttemptedExponentiationOfNonNumeric
	ReturnStmtNotFound
)

var errorKindNames = [...]string{
	ErroneousVarDecl:                    "ErroneousVarDecl",
	FnCallParamCount:                    "FnCallParamCount",
	FnCallParamType:                     "FnCallParamType",
	ErroneousReturnType:                 "ErroneousReturnType",
	ExpressionTypeMismatch:              "ExpressionTypeMismatch",
	ExpectedBooleanExpression:           "ExpectedBooleanExpression",
	ErroneousBreak:                      "ErroneousBreak",
	NonBooleanCondStmt:                  "NonBooleanCondStmt",
	EmptyExpression:                     "EmptyExpression",
	AttemptedBoolOpOnNonBools:           "AttemptedBoolOpOnNonBools",
	AttemptedBitOpOnNonNumeric:          "AttemptedBitOpOnNonNumeric",
	AttemptedShiftOnNonInt:              "AttemptedShiftOnNonInt",
	AttemptedAddOpOnNonNumeric:          "AttemptedAddOpOnNonNumeric",
	AttemptedExponentiationOfNonNumeric: "AttemptedExponentiationOfNonNumeric",
	ReturnStmtNotFound:                  "ReturnStmtNotFound",
}

func (k ErrorKind) String() string {
	if k >= 0 && int(k) < len(errorKindNames) {
		return errorKindNames[k]
	}
	return fmt.Sprintf("ErrorKind(%d)", int(k))
}

// Error represents a type checking error.
type Error struct {
	Kind ErrorKind
	Pos  syntax.Pos
	Msg  string
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s: %s", e.Pos, e.Kind, e.Msg)
}

// errorf reports a type checking error at the given position.
func (c *Checker) errorf(pos syntax.Pos, kind ErrorKind, format string, args ...interface{}) {
	err := &Error{Kind: kind, Pos: pos, Msg: fmt.Sprintf(format, args...)}
	c.errors = append(c.errors, err)
	if c.conf.Error != nil {
		c.conf.Error(err)
	}
}

// invalidOp reports an operator applied to operands it does not accept
// and marks x invalid.
func (c *Checker) invalidOp(x *operand, kind ErrorKind, format string, args ...interface{}) {
	c.errorf(x.pos, kind, "invalid operation: "+format, args...)
	x.setInvalid(x.pos)
}
