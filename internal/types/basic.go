package types

import "github.com/you-not-fish/minic/internal/syntax"

// BasicKind describes the kind of basic type.
type BasicKind int

const (
	// Unknown is the type of an expression that could not be resolved.
	// It never matches any declared type, including itself in checks
	// that demand a concrete operand.
	Unknown BasicKind = iota

	Void
	Int
	Float
	String
	Bool
	Char
)

// BasicInfo describes properties of a basic type.
type BasicInfo int

const (
	IsBoolean BasicInfo = 1 << iota
	IsInteger
	IsFloat
	IsString
	IsChar
	IsNumeric = IsInteger | IsFloat
)

// Basic represents one of the predeclared types.
type Basic struct {
	typ
	kind BasicKind
	info BasicInfo
	name string
}

// Kind returns the kind of the basic type.
func (b *Basic) Kind() BasicKind { return b.kind }

// Info returns information about the basic type.
func (b *Basic) Info() BasicInfo { return b.info }

// Name returns the name of the basic type.
func (b *Basic) Name() string { return b.name }

// String implements Type.
func (b *Basic) String() string { return b.name }

// Typ holds the basic types, indexed by BasicKind.
var Typ = []*Basic{
	Unknown: {kind: Unknown, name: "unknown"},
	Void:    {kind: Void, name: "void"},
	Int:     {kind: Int, info: IsInteger, name: "int"},
	Float:   {kind: Float, info: IsFloat, name: "float"},
	String:  {kind: String, info: IsString, name: "string"},
	Bool:    {kind: Bool, info: IsBoolean, name: "bool"},
	Char:    {kind: Char, info: IsChar, name: "char"},
}

// FromKind maps a type keyword to its type. Anything that is not a type
// keyword maps to Unknown.
func FromKind(k syntax.Kind) *Basic {
	switch k {
	case syntax.IntKw:
		return Typ[Int]
	case syntax.FloatKw:
		return Typ[Float]
	case syntax.StringKw:
		return Typ[String]
	case syntax.BoolKw:
		return Typ[Bool]
	case syntax.CharKw:
		return Typ[Char]
	}
	return Typ[Unknown]
}

// LiteralType returns the type of a literal token kind.
func LiteralType(k syntax.Kind) *Basic {
	switch k {
	case syntax.IntLit:
		return Typ[Int]
	case syntax.FloatLit:
		return Typ[Float]
	case syntax.StringLit:
		return Typ[String]
	case syntax.BoolLit:
		return Typ[Bool]
	case syntax.CharLit:
		return Typ[Char]
	}
	return Typ[Unknown]
}
