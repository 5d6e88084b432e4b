package types

import "github.com/you-not-fish/minic/internal/syntax"

// Object represents a declared entity: a variable or a function.
type Object interface {
	Name() string    // object name
	Type() Type      // object type
	Pos() syntax.Pos // declaration position
	Parent() *Scope  // enclosing scope

	setParent(*Scope)
	aObject()
}

type object struct {
	name   string
	typ    Type
	pos    syntax.Pos
	parent *Scope
}

func (o *object) Name() string       { return o.name }
func (o *object) Type() Type         { return o.typ }
func (o *object) Pos() syntax.Pos    { return o.pos }
func (o *object) Parent() *Scope     { return o.parent }
func (o *object) setParent(s *Scope) { o.parent = s }
func (*object) aObject()             {}

// Var represents a variable or a function parameter.
type Var struct {
	object
	isParam bool
}

// NewVar creates a new variable object.
func NewVar(pos syntax.Pos, name string, typ Type) *Var {
	return &Var{object: object{name: name, typ: typ, pos: pos}}
}

// NewParam creates a new parameter object.
func NewParam(pos syntax.Pos, name string, typ Type) *Var {
	return &Var{object: object{name: name, typ: typ, pos: pos}, isParam: true}
}

// IsParam reports whether v is a function parameter.
func (v *Var) IsParam() bool { return v.isParam }

// FuncObj represents a declared function. A prototype creates a FuncObj
// with HasBody false; the matching definition flips it.
type FuncObj struct {
	object
	sig     *Func
	hasBody bool
}

// NewFuncObj creates a function object with the given signature.
func NewFuncObj(pos syntax.Pos, name string, sig *Func, hasBody bool) *FuncObj {
	return &FuncObj{object: object{name: name, typ: sig, pos: pos}, sig: sig, hasBody: hasBody}
}

// Signature returns the function signature.
func (f *FuncObj) Signature() *Func { return f.sig }

// HasBody reports whether a definition (not only a prototype) was seen.
func (f *FuncObj) HasBody() bool { return f.hasBody }

// NewFuncObjFromDecl builds the function object for a declaration.
func NewFuncObjFromDecl(d *syntax.FuncDecl) *FuncObj {
	params := make([]*Var, len(d.Params))
	for i, p := range d.Params {
		params[i] = NewParam(p.Pos(), p.Name.Value, FromKind(p.Type))
	}
	sig := NewFunc(params, FromKind(d.Result))
	return NewFuncObj(d.Pos(), d.Name.Value, sig, !d.IsProto())
}
