package resolve

import (
	"fmt"

	"github.com/you-not-fish/minic/internal/syntax"
)

// ErrorKind classifies a scope diagnostic.
type ErrorKind int

const (
	UndeclaredVariableAccessed ErrorKind = iota
	UndefinedFunctionCalled
	VariableRedefinition
	FunctionPrototypeRedefinition
	ParameterRedefinition
	FunctionRedeclarationWithDifferentSignature
	LocalFunctionDefinition
	BreakContinueOutsideLoop
	ReturnOutsideFunction
	InvalidScopeExit
)

var errorKindNames = [...]string{
	UndeclaredVariableAccessed:                  "UndeclaredVariableAccessed",
	UndefinedFunctionCalled:                     "UndefinedFunctionCalled",
	VariableRedefinition:                        "VariableRedefinition",
	FunctionPrototypeRedefinition:               "FunctionPrototypeRedefinition",
	ParameterRedefinition:                       "ParameterRedefinition",
	FunctionRedeclarationWithDifferentSignature: "FunctionRedeclarationWithDifferentSignature",
	LocalFunctionDefinition:                     "LocalFunctionDefinition",
	BreakContinueOutsideLoop:                    "BreakContinueOutsideLoop",
	ReturnOutsideFunction:                       "ReturnOutsideFunction",
	InvalidScopeExit:                            "InvalidScopeExit",
}

func (k ErrorKind) String() string {
	if k >= 0 && int(k) < len(errorKindNames) {
		return errorKindNames[k]
	}
	return fmt.Sprintf("ErrorKind(%d)", int(k))
}

// Error is a scope diagnostic.
type Error struct {
	Kind ErrorKind
	Pos  syntax.Pos
	Msg  string
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s: %s", e.Pos, e.Kind, e.Msg)
}

// errorf records a diagnostic and forwards it to the configured handler.
func (c *Checker) errorf(pos syntax.Pos, kind ErrorKind, format string, args ...interface{}) {
	err := &Error{Kind: kind, Pos: pos, Msg: fmt.Sprintf(format, args...)}
	c.errors = append(c.errors, err)
	if c.conf.Error != nil {
		c.conf.Error(err)
	}
}
