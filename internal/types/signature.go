package types

import "strings"

// Func represents a function signature. Parameter names are kept so that
// diagnostics can mention them; identity only looks at types.
type Func struct {
	typ
	params []*Var
	result Type
}

// NewFunc creates a function signature.
func NewFunc(params []*Var, result Type) *Func {
	return &Func{params: params, result: result}
}

// Params returns the parameters.
func (f *Func) Params() []*Var { return f.params }

// NumParams returns the number of parameters.
func (f *Func) NumParams() int { return len(f.params) }

// Param returns the i'th parameter.
func (f *Func) Param(i int) *Var { return f.params[i] }

// Result returns the result type.
func (f *Func) Result() Type { return f.result }

// String implements Type.
func (f *Func) String() string {
	var buf strings.Builder
	buf.WriteString("fn ")
	buf.WriteString(f.result.String())
	buf.WriteByte('(')
	for i, p := range f.params {
		if i > 0 {
			buf.WriteString(", ")
		}
		buf.WriteString(p.Type().String())
	}
	buf.WriteByte(')')
	return buf.String()
}
