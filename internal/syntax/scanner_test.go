package syntax

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/nalgeon/be"
)

func scan(t *testing.T, src string) ([]Token, []string) {
	t.Helper()
	var errs []string
	errh := func(line, col uint32, msg string) {
		errs = append(errs, NewPos("", line, col).String()+": "+msg)
	}
	return Scan("test.mini", strings.NewReader(src), errh), errs
}

func kinds(toks []Token) []Kind {
	out := make([]Kind, len(toks))
	for i, tok := range toks {
		out[i] = tok.Kind
	}
	return out
}

func TestScanPositions(t *testing.T) {
	toks, errs := scan(t, "int x = 42;\n  y++;")
	be.Equal(t, len(errs), 0)

	want := []Token{
		{IntKw, "int", 1, 1},
		{Ident, "x", 1, 5},
		{Assign, "=", 1, 7},
		{IntLit, "42", 1, 9},
		{Semi, ";", 1, 11},
		{Ident, "y", 2, 3},
		{Inc, "++", 2, 4},
		{Semi, ";", 2, 6},
		{EOF, "", 2, 7},
	}
	if diff := cmp.Diff(want, toks); diff != "" {
		t.Errorf("tokens mismatch (-want +got):\n%s", diff)
	}
}

func TestScanKinds(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want []Kind
	}{
		{"keywords", "fn int float string bool char if else while do for return break",
			[]Kind{Fn, IntKw, FloatKw, StringKw, BoolKw, CharKw, If, Else, While, Do, For, Return, Break, EOF}},
		{"assign ops", "= += -= ++ --", []Kind{Assign, AddAssign, SubAssign, Inc, Dec, EOF}},
		{"logic", "|| && ! == !=", []Kind{OrOr, AndAnd, Not, Eql, Neq, EOF}},
		{"relational", "< <= > >=", []Kind{Lss, Leq, Gtr, Geq, EOF}},
		{"bitwise", "| ^ & << >>", []Kind{Or, Xor, And, Shl, Shr, EOF}},
		{"arith", "+ - * / **", []Kind{Add, Sub, Mul, Div, Pow, EOF}},
		{"delims", "( ) [ ] { } , ;", []Kind{Lparen, Rparen, Lbrack, Rbrack, Lbrace, Rbrace, Comma, Semi, EOF}},
		{"no space", "a+=b**2", []Kind{Ident, AddAssign, Ident, Pow, IntLit, EOF}},
		{"bools", "true false", []Kind{BoolLit, BoolLit, EOF}},
		{"numbers", "0 12 3.5 1e10 2.5e-3 .5", []Kind{IntLit, IntLit, FloatLit, FloatLit, FloatLit, FloatLit, EOF}},
		{"comments", "a // c\n/* b */ b", []Kind{Ident, LineComment, BlockComment, Ident, EOF}},
		{"empty", "", []Kind{EOF}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			toks, errs := scan(t, tt.src)
			be.Equal(t, len(errs), 0)
			if diff := cmp.Diff(tt.want, kinds(toks)); diff != "" {
				t.Errorf("kinds mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestScanLiteralText(t *testing.T) {
	tests := []struct {
		name string
		src  string
		kind Kind
		text string
	}{
		{"string", `"hello"`, StringLit, "hello"},
		{"string escapes", `"a\tb\n\"q\""`, StringLit, "a\tb\n\"q\""},
		{"char", `'a'`, CharLit, "a"},
		{"char escape", `'\n'`, CharLit, "\n"},
		{"char quote", `'\''`, CharLit, "'"},
		{"float", "3.14", FloatLit, "3.14"},
		{"line comment", "// note", LineComment, "// note"},
		{"block comment", "/* a\nb */", BlockComment, "/* a\nb */"},
		{"unicode ident", "gr\u00f6\u00dfe", Ident, "gr\u00f6\u00dfe"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			toks, errs := scan(t, tt.src)
			be.Equal(t, len(errs), 0)
			be.Equal(t, toks[0].Kind, tt.kind)
			be.Equal(t, toks[0].Text, tt.text)
		})
	}
}

func TestScanNormalizesIdentifiers(t *testing.T) {
	// "e" followed by a combining acute accent, and the precomposed form.
	toks, errs := scan(t, "cafe\u0301 caf\u00e9")
	be.Equal(t, len(errs), 0)
	be.Equal(t, toks[0].Kind, Ident)
	be.Equal(t, toks[0].Text, toks[1].Text)
	be.Equal(t, toks[0].Text, "caf\u00e9")
}

func TestScanErrors(t *testing.T) {
	tests := []struct {
		name    string
		src     string
		wantErr string
	}{
		{"bad char", "a @ b", "1:3: unexpected character '@'"},
		{"unterminated string", "\"abc\nx", "1:5: string literal not terminated"},
		{"bad escape", `"\q"`, "unknown escape sequence"},
		{"empty char", "''", "empty character literal"},
		{"long char", "'ab'", "character literal not terminated"},
		{"exponent", "1e+", "exponent has no digits"},
		{"bad number", "12ab", "invalid character 'a' in numeric literal"},
		{"unterminated comment", "/* x", "1:1: comment not terminated"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			toks, errs := scan(t, tt.src)
			if len(errs) == 0 {
				t.Fatalf("expected error containing %q, got none", tt.wantErr)
			}
			if !strings.Contains(errs[0], tt.wantErr) {
				t.Errorf("error = %q, want substring %q", errs[0], tt.wantErr)
			}
			be.Equal(t, toks[len(toks)-1].Kind, EOF)
		})
	}
}

func TestScanIllegalToken(t *testing.T) {
	toks, _ := scan(t, "x $ y")
	if diff := cmp.Diff([]Kind{Ident, Illegal, Ident, EOF}, kinds(toks)); diff != "" {
		t.Errorf("kinds mismatch (-want +got):\n%s", diff)
	}
	be.Equal(t, toks[1].Text, "$")
}

func TestScanNilErrorHandler(t *testing.T) {
	toks := Scan("", strings.NewReader("\"open"), nil)
	if diff := cmp.Diff([]Kind{Illegal, EOF}, kinds(toks)); diff != "" {
		t.Errorf("kinds mismatch (-want +got):\n%s", diff)
	}
}
