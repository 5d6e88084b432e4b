package types

import (
	"fmt"
	"sort"
	"strings"

	"github.com/you-not-fish/minic/internal/syntax"
)

// ScopeKind tells what construct opened a scope.
type ScopeKind int

const (
	GlobalScope ScopeKind = iota
	FuncScope
	BlockScope
	LoopScope
)

var scopeKindNames = [...]string{
	GlobalScope: "global",
	FuncScope:   "function",
	BlockScope:  "block",
	LoopScope:   "loop",
}

func (k ScopeKind) String() string {
	if int(k) < len(scopeKindNames) {
		return scopeKindNames[k]
	}
	return fmt.Sprintf("ScopeKind(%d)", int(k))
}

// Scope represents a lexical scope.
// Scopes form a tree rooted at the global scope of a program.
type Scope struct {
	parent   *Scope
	children []*Scope
	elems    map[string]Object
	kind     ScopeKind
	pos      syntax.Pos
	comment  string // debugging comment (e.g., "function foo", "block")
}

// NewScope creates a new scope with the given parent.
func NewScope(parent *Scope, kind ScopeKind, pos syntax.Pos, comment string) *Scope {
	s := &Scope{
		parent:  parent,
		elems:   make(map[string]Object),
		kind:    kind,
		pos:     pos,
		comment: comment,
	}
	if parent != nil {
		parent.children = append(parent.children, s)
	}
	return s
}

// Parent returns the parent scope, or nil for the global scope.
func (s *Scope) Parent() *Scope { return s.parent }

// Children returns the list of child scopes.
func (s *Scope) Children() []*Scope { return s.children }

// Kind returns what opened the scope.
func (s *Scope) Kind() ScopeKind { return s.kind }

// Pos returns the start position of the scope in source.
func (s *Scope) Pos() syntax.Pos { return s.pos }

// Comment returns the scope's comment (for debugging).
func (s *Scope) Comment() string { return s.comment }

// Lookup returns the object with the given name in this scope only.
func (s *Scope) Lookup(name string) Object {
	return s.elems[name]
}

// LookupParent returns the object with the given name by searching
// from the current scope up through all parent scopes, together with
// the scope in which it was found. It returns (nil, nil) if not found.
func (s *Scope) LookupParent(name string) (Object, *Scope) {
	for scope := s; scope != nil; scope = scope.parent {
		if obj := scope.elems[name]; obj != nil {
			return obj, scope
		}
	}
	return nil, nil
}

// Insert inserts an object into the scope.
// If an object with the same name already exists, Insert leaves the scope
// unchanged and returns the existing object. Otherwise it returns nil.
func (s *Scope) Insert(obj Object) Object {
	name := obj.Name()
	if existing := s.elems[name]; existing != nil {
		return existing
	}
	s.elems[name] = obj
	obj.setParent(s)
	return nil
}

// Replace unconditionally binds obj in this scope.
func (s *Scope) Replace(obj Object) {
	s.elems[obj.Name()] = obj
	obj.setParent(s)
}

// Enclosing returns the innermost scope of the given kind, starting at s.
func (s *Scope) Enclosing(kind ScopeKind) *Scope {
	for scope := s; scope != nil; scope = scope.parent {
		if scope.kind == kind {
			return scope
		}
	}
	return nil
}

// InLoop reports whether s is a loop scope or nested in one, without
// crossing a function boundary.
func (s *Scope) InLoop() bool {
	for scope := s; scope != nil && scope.kind != FuncScope; scope = scope.parent {
		if scope.kind == LoopScope {
			return true
		}
	}
	return false
}

// Names returns the names of all objects in the scope, sorted.
func (s *Scope) Names() []string {
	names := make([]string, 0, len(s.elems))
	for name := range s.elems {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// NumObjects returns the number of objects in the scope.
func (s *Scope) NumObjects() int {
	return len(s.elems)
}

// String returns a string representation of the scope tree for debugging.
func (s *Scope) String() string {
	var buf strings.Builder
	s.writeTo(&buf, 0)
	return buf.String()
}

func (s *Scope) writeTo(buf *strings.Builder, indent int) {
	prefix := strings.Repeat("  ", indent)
	fmt.Fprintf(buf, "%s%s scope %s {\n", prefix, s.kind, s.comment)
	for _, name := range s.Names() {
		obj := s.elems[name]
		fmt.Fprintf(buf, "%s  %s: %s\n", prefix, name, obj.Type())
	}
	for _, child := range s.children {
		child.writeTo(buf, indent+1)
	}
	fmt.Fprintf(buf, "%s}\n", prefix)
}
