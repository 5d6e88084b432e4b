package syntax

import "fmt"

// ErrorKind classifies a parse error.
type ErrorKind uint8

const (
	UnexpectedEOF ErrorKind = iota
	FailedToFindToken
	ExpectedTypeToken
	ExpectedIdentifier
	UnexpectedToken
	ExpectedFloatLit
	ExpectedIntLit
	ExpectedStringLit
	ExpectedBoolLit
	ExpectedExpr
)

var errorKindNames = [...]string{
	UnexpectedEOF:      "UnexpectedEOF",
	FailedToFindToken:  "FailedToFindToken",
	ExpectedTypeToken:  "ExpectedTypeToken",
	ExpectedIdentifier: "ExpectedIdentifier",
	UnexpectedToken:    "UnexpectedToken",
	ExpectedFloatLit:   "ExpectedFloatLit",
	ExpectedIntLit:     "ExpectedIntLit",
	ExpectedStringLit:  "ExpectedStringLit",
	ExpectedBoolLit:    "ExpectedBoolLit",
	ExpectedExpr:       "ExpectedExpr",
}

func (k ErrorKind) String() string {
	if int(k) < len(errorKindNames) {
		return errorKindNames[k]
	}
	return fmt.Sprintf("ErrorKind(%d)", k)
}

// ParseError describes a failed production: what was expected, the token
// found instead, and where.
type ParseError struct {
	Kind  ErrorKind
	Token Token
	Pos   Pos
	Msg   string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: %s: %s", e.Pos, e.Kind, e.Msg)
}
