package resolve

import (
	"fmt"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/nalgeon/be"
	"github.com/you-not-fish/minic/internal/syntax"
	"github.com/you-not-fish/minic/internal/types"
)

func parse(t *testing.T, src string) *syntax.Program {
	t.Helper()
	toks := syntax.Scan("test.mc", strings.NewReader(src), func(line, col uint32, msg string) {
		t.Fatalf("%d:%d: scan error: %s", line, col, msg)
	})
	prog, err := syntax.ParseProgram("test.mc", toks)
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	return prog
}

func kinds(errs []*Error) []string {
	var out []string
	for _, e := range errs {
		out = append(out, fmt.Sprintf("%d %s", e.Pos.Line(), e.Kind))
	}
	return out
}

func TestAnalyse(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want []string
	}{
		{"empty", ``, nil},
		{"global redefinition", "int x;\nint x;", []string{"2 VariableRedefinition"}},
		{"undeclared", "fn int f() {\n  return y;\n}", []string{"2 UndeclaredVariableAccessed"}},
		{"forward call", "fn int a() { return b(); }\nfn int b() { return 1; }", nil},
		{"undefined function", "fn int a() {\n  return c(1);\n}", []string{"2 UndefinedFunctionCalled"}},
		{"call of variable", "int v;\nfn int a() { return v(); }", []string{"2 UndefinedFunctionCalled"}},
		{"undeclared argument", "fn int a(int x) { return a(y); }", []string{"1 UndeclaredVariableAccessed"}},
		{"prototype then definition", "fn int f(int a);\nfn int f(int b) { return b; }", nil},
		{"two prototypes", "fn int f(int a);\nfn int f(int);", nil},
		{"two definitions", "fn int f() { return 1; }\nfn int f() { return 2; }", []string{"2 FunctionPrototypeRedefinition"}},
		{"different arity", "fn int f(int a);\nfn int f() { return 1; }", []string{"2 FunctionRedeclarationWithDifferentSignature"}},
		{"different param type", "fn int f(int a);\nfn int f(float a) { return 1; }", []string{"2 FunctionRedeclarationWithDifferentSignature"}},
		{"different result type", "fn int f();\nfn bool f() { return true; }", []string{"2 FunctionRedeclarationWithDifferentSignature"}},
		{"function after variable", "int f;\nfn int f() { return 1; }", []string{"2 FunctionPrototypeRedefinition"}},
		{"variable after function", "fn int f() { return 1; }\nint f;", []string{"2 FunctionPrototypeRedefinition"}},
		{"parameter redefinition", "fn int f(int a, int a) { return a; }", []string{"1 ParameterRedefinition"}},
		{"parameter and local share a scope", "fn int f(int x) {\n  int x;\n  return x;\n}", []string{"2 VariableRedefinition"}},
		{"shadowing in nested block", "fn int f(int x) { { int x; x = 1; } return x; }", nil},
		{"block local not visible after block", "fn int f() {\n  { int y; }\n  return y;\n}", []string{"3 UndeclaredVariableAccessed"}},
		{"break outside loop", "fn int f() {\n  break;\n  return 1;\n}", []string{"2 BreakContinueOutsideLoop"}},
		{"break in nested block in while", "fn int f() { while (true) { { break; } } return 1; }", nil},
		{"break in if in for", "fn int f() { for (;;) { if (true) break; } return 1; }", nil},
		{"break in do-while", "fn int f() { do { break; } while (false); return 1; }", nil},
		{"break after loop", "fn int f() {\n  while (true) {}\n  break;\n  return 1;\n}", []string{"3 BreakContinueOutsideLoop"}},
		{"for init scope", "fn int f() {\n  for (int i = 0; i < 3; i++) { i; }\n  return i;\n}", []string{"3 UndeclaredVariableAccessed"}},
		{"own initializer", "fn int f() { int x = x; return x; }", nil},
		{"multi declaration", "fn int f() { int a = 1, b = a; return b; }", nil},
		{"multi declaration duplicate", "fn int f() {\n  int a, a;\n  return a;\n}", []string{"2 VariableRedefinition"}},
		{"global forward reference", "int a = b;\nint b = 1;", nil},
		{"global multi declaration", "int a, b;\nint b;", []string{"2 VariableRedefinition"}},
		{"several errors in order", "fn int f() {\n  x = 1;\n  g();\n  break;\n  return z;\n}", []string{
			"2 UndeclaredVariableAccessed",
			"3 UndefinedFunctionCalled",
			"4 BreakContinueOutsideLoop",
			"5 UndeclaredVariableAccessed",
		}},
		{"index and unary", "fn int f(int a) { return -a[b] + !c++; }", []string{
			"1 UndeclaredVariableAccessed",
			"1 UndeclaredVariableAccessed",
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := kinds(Analyse(parse(t, tt.src), nil))
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("diagnostics mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestErrorPosition(t *testing.T) {
	errs := Analyse(parse(t, "int x;\nint x;"), nil)
	be.Equal(t, len(errs), 1)
	be.Equal(t, errs[0].Pos.Line(), uint32(2))
	be.Equal(t, errs[0].Pos.Col(), uint32(5))
	be.Equal(t, errs[0].Error(), "test.mc:2:5: VariableRedefinition: global variable 'x' redefined")
}

// splice puts the first function of inner at the start of the body of the
// first function of outer, or of its leading while loop. The parser itself
// refuses local function definitions.
func splice(t *testing.T, outer, inner string) *syntax.Program {
	t.Helper()
	prog := parse(t, outer)
	g := parse(t, inner).Items[0].(*syntax.FuncDecl)
	f := prog.Items[0].(*syntax.FuncDecl)
	body := f.Body
	// Descend into a leading while loop if there is one.
	if w, ok := body.Stmts[0].(*syntax.WhileStmt); ok {
		body = w.Body.(*syntax.BlockStmt)
	}
	body.Stmts = append([]syntax.Stmt{g}, body.Stmts...)
	return prog
}

func TestLocalFunctionDefinition(t *testing.T) {
	prog := splice(t, "fn int f() { return 1; }", "fn int g() { return 2; }")
	got := kinds(Analyse(prog, nil))
	if diff := cmp.Diff([]string{"1 LocalFunctionDefinition"}, got); diff != "" {
		t.Errorf("diagnostics mismatch (-want +got):\n%s", diff)
	}
}

func TestReturnInFunctionInLoop(t *testing.T) {
	// The nested definition is flagged, but its return is legal and its
	// break is not, because loops do not extend across function bodies.
	prog := splice(t,
		"fn int f() { while (true) { break; } return 1; }",
		"fn int g() {\n  break;\n  return 2;\n}")
	got := kinds(Analyse(prog, nil))
	want := []string{"1 LocalFunctionDefinition", "2 BreakContinueOutsideLoop"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("diagnostics mismatch (-want +got):\n%s", diff)
	}
}

func TestReturnOutsideFunction(t *testing.T) {
	ret := new(syntax.ReturnStmt)
	ret.SetPos(syntax.NewPos("test.mc", 3, 1))
	prog := &syntax.Program{Items: []syntax.Decl{
		&syntax.BlockStmt{DeclList: true, Stmts: []syntax.Stmt{ret}},
	}}
	got := kinds(Analyse(prog, nil))
	if diff := cmp.Diff([]string{"3 ReturnOutsideFunction"}, got); diff != "" {
		t.Errorf("diagnostics mismatch (-want +got):\n%s", diff)
	}
}

func TestAnalyseIdempotent(t *testing.T) {
	prog := parse(t, "int x;\nint x;\nfn int f() {\n  break;\n  return y;\n}")
	c := NewChecker(nil)
	first := kinds(c.Analyse(prog))
	second := kinds(c.Analyse(prog))
	be.Equal(t, len(first), 3)
	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("second run differs (-first +second):\n%s", diff)
	}
}

func TestConfigErrorHandler(t *testing.T) {
	var seen []*Error
	conf := &Config{Error: func(err *Error) { seen = append(seen, err) }}
	errs := Analyse(parse(t, "fn int f() { return a + b; }"), conf)
	be.Equal(t, len(seen), 2)
	be.Equal(t, len(errs), 2)
	be.True(t, seen[0] == errs[0])
}

func TestGlobalScope(t *testing.T) {
	c := NewChecker(nil)
	c.Analyse(parse(t, "int g;\nfn int f(int a) { while (true) { int b; } return a; }"))
	out := c.Global().String()
	for _, want := range []string{
		"global scope program {",
		"  f: fn int(int)",
		"  g: int",
		"  function scope function f {",
		"    loop scope while {",
		"      block scope block {",
		"        b: int",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("scope tree missing %q:\n%s", want, out)
		}
	}
}

func TestDefinitionReplacesPrototype(t *testing.T) {
	c := NewChecker(nil)
	errs := c.Analyse(parse(t, "fn int f(int);\nfn int f(int n) { return n; }"))
	be.Equal(t, len(errs), 0)
	obj, ok := c.Global().Lookup("f").(*types.FuncObj)
	be.True(t, ok)
	be.True(t, obj.HasBody())
	be.Equal(t, obj.Pos().Line(), uint32(2))
	be.Equal(t, obj.Signature().Param(0).Name(), "n")
}

func TestErrorKindString(t *testing.T) {
	be.Equal(t, InvalidScopeExit.String(), "InvalidScopeExit")
	be.Equal(t, ErrorKind(99).String(), "ErrorKind(99)")
}
