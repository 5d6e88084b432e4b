// Package syntax implements the token model, AST and parser for the Mini language.
package syntax

import "fmt"

// Kind classifies a lexical token.
type Kind uint

const (
	// Special tokens
	EOF     Kind = iota // end of input
	Illegal             // lexical error

	Ident // identifier

	// Literals
	IntLit    // 123
	FloatLit  // 3.14, 1e10
	StringLit // "hello"
	CharLit   // 'a'
	BoolLit   // true, false

	// Assignment
	Assign    // =
	AddAssign // +=
	SubAssign // -=

	// Binary operators
	OrOr   // ||
	AndAnd // &&
	Eql    // ==
	Neq    // !=
	Lss    // <
	Leq    // <=
	Gtr    // >
	Geq    // >=
	Or     // |
	Xor    // ^
	And    // &
	Shl    // <<
	Shr    // >>
	Add    // +
	Sub    // -
	Mul    // *
	Div    // /
	Pow    // **

	// Unary operators
	Not // !
	Inc // ++
	Dec // --

	// Delimiters
	Lparen // (
	Rparen // )
	Lbrack // [
	Rbrack // ]
	Lbrace // {
	Rbrace // }
	Comma  // ,
	Semi   // ;

	// Type keywords
	IntKw
	FloatKw
	StringKw
	BoolKw
	CharKw

	// Control keywords
	If
	Else
	While
	Do
	For
	Return
	Break
	Fn

	// Trivia
	LineComment  // // ...
	BlockComment // /* ... */

	kindCount
)

var kindNames = [...]string{
	EOF:     "EOF",
	Illegal: "ILLEGAL",
	Ident:   "NAME",

	IntLit:    "INT",
	FloatLit:  "FLOAT",
	StringLit: "STRING",
	CharLit:   "CHAR",
	BoolLit:   "BOOL",

	Assign:    "=",
	AddAssign: "+=",
	SubAssign: "-=",

	OrOr:   "||",
	AndAnd: "&&",
	Eql:    "==",
	Neq:    "!=",
	Lss:    "<",
	Leq:    "<=",
	Gtr:    ">",
	Geq:    ">=",
	Or:     "|",
	Xor:    "^",
	And:    "&",
	Shl:    "<<",
	Shr:    ">>",
	Add:    "+",
	Sub:    "-",
	Mul:    "*",
	Div:    "/",
	Pow:    "**",

	Not: "!",
	Inc: "++",
	Dec: "--",

	Lparen: "(",
	Rparen: ")",
	Lbrack: "[",
	Rbrack: "]",
	Lbrace: "{",
	Rbrace: "}",
	Comma:  ",",
	Semi:   ";",

	IntKw:    "int",
	FloatKw:  "float",
	StringKw: "string",
	BoolKw:   "bool",
	CharKw:   "char",

	If:     "if",
	Else:   "else",
	While:  "while",
	Do:     "do",
	For:    "for",
	Return: "return",
	Break:  "break",
	Fn:     "fn",

	LineComment:  "COMMENT",
	BlockComment: "COMMENT",
}

// String returns the display form of the kind: the symbol for operators and
// the spelling for keywords.
func (k Kind) String() string {
	if k < kindCount {
		return kindNames[k]
	}
	return fmt.Sprintf("kind(%d)", k)
}

// IsLiteral reports whether k is one of the literal kinds.
func (k Kind) IsLiteral() bool {
	return k >= IntLit && k <= BoolLit
}

// IsTypeKeyword reports whether k names one of the declarable types.
func (k Kind) IsTypeKeyword() bool {
	return k >= IntKw && k <= CharKw
}

// IsTrivia reports whether k is a comment kind.
func (k Kind) IsTrivia() bool {
	return k == LineComment || k == BlockComment
}

// IsAssign reports whether k is = or one of the compound assignment forms.
func (k Kind) IsAssign() bool {
	return k == Assign || k == AddAssign || k == SubAssign
}

// Token is one classified lexical unit. Tokens are produced by a scanner and
// are never modified afterwards.
type Token struct {
	Kind Kind
	Text string // source spelling; decoded content for string and char literals
	Line uint32 // 1-based
	Col  uint32 // 1-based
}

func (t Token) String() string {
	switch {
	case t.Kind == EOF:
		return fmt.Sprintf("%d:%d: EOF", t.Line, t.Col)
	case t.Kind == Ident || t.Kind.IsLiteral() || t.Kind.IsTrivia() || t.Kind == Illegal:
		return fmt.Sprintf("%d:%d: %s %q", t.Line, t.Col, t.Kind, t.Text)
	}
	return fmt.Sprintf("%d:%d: %s", t.Line, t.Col, t.Kind)
}

// Assoc is the associativity of a binary operator.
type Assoc uint8

const (
	Left Assoc = iota
	Right
)

// OpInfo describes a binary or assignment operator.
type OpInfo struct {
	Prec   int
	Assoc  Assoc
	Symbol string
}

// Precedence levels, lowest binding first.
const (
	PrecAssign = 1 + iota
	PrecOrOr
	PrecAndAnd
	PrecEquality
	PrecRelational
	PrecBitOr
	PrecBitXor
	PrecBitAnd
	PrecShift
	PrecAdditive
	PrecMultiplicative
	PrecPow
	PrecUnary
)

// opTable maps every infix operator to its precedence, associativity and
// display symbol. Kinds missing from the table do not continue an expression.
var opTable = map[Kind]OpInfo{
	Assign:    {PrecAssign, Right, "="},
	AddAssign: {PrecAssign, Right, "+="},
	SubAssign: {PrecAssign, Right, "-="},

	OrOr:   {PrecOrOr, Left, "||"},
	AndAnd: {PrecAndAnd, Left, "&&"},

	Eql: {PrecEquality, Left, "=="},
	Neq: {PrecEquality, Left, "!="},

	Lss: {PrecRelational, Left, "<"},
	Leq: {PrecRelational, Left, "<="},
	Gtr: {PrecRelational, Left, ">"},
	Geq: {PrecRelational, Left, ">="},

	Or:  {PrecBitOr, Left, "|"},
	Xor: {PrecBitXor, Left, "^"},
	And: {PrecBitAnd, Left, "&"},

	Shl: {PrecShift, Left, "<<"},
	Shr: {PrecShift, Left, ">>"},

	Add: {PrecAdditive, Left, "+"},
	Sub: {PrecAdditive, Left, "-"},

	Mul: {PrecMultiplicative, Left, "*"},
	Div: {PrecMultiplicative, Left, "/"},

	Pow: {PrecPow, Right, "**"},
}

// LookupOp returns the operator information for k.
func LookupOp(k Kind) (OpInfo, bool) {
	info, ok := opTable[k]
	return info, ok
}

// Precedence returns the binary precedence of k, or 0 if k is not an infix operator.
func (k Kind) Precedence() int {
	return opTable[k].Prec
}

var keywords = map[string]Kind{
	"int":    IntKw,
	"float":  FloatKw,
	"string": StringKw,
	"bool":   BoolKw,
	"char":   CharKw,
	"if":     If,
	"else":   Else,
	"while":  While,
	"do":     Do,
	"for":    For,
	"return": Return,
	"break":  Break,
	"fn":     Fn,
	"true":   BoolLit,
	"false":  BoolLit,
}

// LookupKeyword returns the kind for ident: a keyword kind, BoolLit for
// true/false, or Ident.
func LookupKeyword(ident string) Kind {
	if k, ok := keywords[ident]; ok {
		return k
	}
	return Ident
}
