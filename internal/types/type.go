// Package types holds the closed set of MiniC types, the symbol objects
// declared by a program, and the lexical scopes both checkers build.
// It has no knowledge of checking rules.
package types

// Type is the interface implemented by all types.
type Type interface {
	// String returns a human-readable representation of the type.
	String() string

	// aType is a marker method to restrict implementations to this package.
	aType()
}

// typ is a base struct for all type implementations.
type typ struct{}

func (typ) aType() {}
