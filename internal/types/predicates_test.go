package types

import (
	"strings"
	"testing"

	"github.com/you-not-fish/minic/internal/syntax"
)

func stringsReader(s string) *strings.Reader { return strings.NewReader(s) }

func TestIdentical(t *testing.T) {
	p := func(typ Type) *Var { return NewParam(syntax.Pos{}, "p", typ) }
	tests := []struct {
		name string
		a, b Type
		want bool
	}{
		{"same basic", Typ[Int], Typ[Int], true},
		{"diff basic", Typ[Int], Typ[Float], false},
		{"unknown self", Typ[Unknown], Typ[Unknown], false},
		{"unknown vs int", Typ[Unknown], Typ[Int], false},
		{"nil", nil, Typ[Int], false},
		{"same sig", NewFunc([]*Var{p(Typ[Int])}, Typ[Int]), NewFunc([]*Var{p(Typ[Int])}, Typ[Int]), true},
		{"diff arity", NewFunc(nil, Typ[Int]), NewFunc([]*Var{p(Typ[Int])}, Typ[Int]), false},
		{"diff param", NewFunc([]*Var{p(Typ[Int])}, Typ[Int]), NewFunc([]*Var{p(Typ[Bool])}, Typ[Int]), false},
		{"diff result", NewFunc(nil, Typ[Int]), NewFunc(nil, Typ[Float]), false},
		{"sig vs basic", NewFunc(nil, Typ[Int]), Typ[Int], false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Identical(tt.a, tt.b); got != tt.want {
				t.Errorf("Identical(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestIdenticalSignaturesIgnoresNames(t *testing.T) {
	x := NewFunc([]*Var{NewParam(syntax.Pos{}, "a", Typ[Int])}, Typ[Int])
	y := NewFunc([]*Var{NewParam(syntax.Pos{}, "_p0", Typ[Int])}, Typ[Int])
	if !IdenticalSignatures(x, y) {
		t.Errorf("signatures differing only in parameter names should be identical")
	}
}

func TestPredicates(t *testing.T) {
	tests := []struct {
		typ                                Type
		unknown, boolean, integer, numeric bool
	}{
		{Typ[Unknown], true, false, false, false},
		{nil, true, false, false, false},
		{Typ[Int], false, false, true, true},
		{Typ[Float], false, false, false, true},
		{Typ[Bool], false, true, false, false},
		{Typ[String], false, false, false, false},
		{Typ[Char], false, false, false, false},
		{NewFunc(nil, Typ[Int]), false, false, false, false},
	}
	for _, tt := range tests {
		if got := IsUnknown(tt.typ); got != tt.unknown {
			t.Errorf("IsUnknown(%v) = %v", tt.typ, got)
		}
		if got := IsBooleanType(tt.typ); got != tt.boolean {
			t.Errorf("IsBooleanType(%v) = %v", tt.typ, got)
		}
		if got := IsIntegerType(tt.typ); got != tt.integer {
			t.Errorf("IsIntegerType(%v) = %v", tt.typ, got)
		}
		if got := IsNumericType(tt.typ); got != tt.numeric {
			t.Errorf("IsNumericType(%v) = %v", tt.typ, got)
		}
	}
}
