package driver

import (
	"fmt"
	"sort"

	"github.com/you-not-fish/minic/internal/syntax"
)

// Diagnostic is one error found in the source, from any stage.
type Diagnostic struct {
	Stage string // "scan", "parse", "resolve" or "typecheck"
	Pos   syntax.Pos
	Kind  string
	Msg   string
}

// String formats d as "file:line:col: Kind: message".
func (d Diagnostic) String() string {
	return fmt.Sprintf("%s: %s: %s", d.Pos, d.Kind, d.Msg)
}

// NumDiagnostics returns the number of diagnostics in r.
func (r *Result) NumDiagnostics() int {
	return len(r.LexErrors) + len(r.ParseErrors) + len(r.ScopeErrors) + len(r.TypeErrors)
}

// Diagnostics returns all diagnostics sorted by stage, then position.
func (r *Result) Diagnostics() []Diagnostic {
	var list []Diagnostic
	for _, e := range r.LexErrors {
		list = append(list, Diagnostic{"scan", e.Pos, "LexicalError", e.Msg})
	}
	for _, e := range r.ParseErrors {
		list = append(list, Diagnostic{"parse", e.Pos, e.Kind.String(), e.Msg})
	}
	for _, e := range r.ScopeErrors {
		list = append(list, Diagnostic{"resolve", e.Pos, e.Kind.String(), e.Msg})
	}
	for _, e := range r.TypeErrors {
		list = append(list, Diagnostic{"typecheck", e.Pos, e.Kind.String(), e.Msg})
	}

	order := make(map[string]int)
	for i, name := range StageNames() {
		order[name] = i
	}
	sort.SliceStable(list, func(i, j int) bool {
		a, b := list[i], list[j]
		if a.Stage != b.Stage {
			return order[a.Stage] < order[b.Stage]
		}
		if a.Pos.Line() != b.Pos.Line() {
			return a.Pos.Line() < b.Pos.Line()
		}
		return a.Pos.Col() < b.Pos.Col()
	})
	return list
}

// DiagnosticStrings returns Diagnostics rendered with String, optionally
// restricted to one stage.
func (r *Result) DiagnosticStrings(stage string) []string {
	var out []string
	for _, d := range r.Diagnostics() {
		if stage == "" || d.Stage == stage {
			out = append(out, d.String())
		}
	}
	return out
}
