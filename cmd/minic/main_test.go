package main

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const prog = `fn int add(int a, int b) {
	return a + b;
}

fn int main() {
	return add(1, 2);
}
`

func TestRunCompileEmitsIR(t *testing.T) {
	filename := writeTempMiniFile(t, prog)
	code, out, errOut := captureOutput(t, func() int {
		return runCompile(filename)
	})

	if code != 0 {
		t.Fatalf("runCompile exit=%d\nstderr:\n%s\nstdout:\n%s", code, errOut, out)
	}
	if errOut != "" {
		t.Fatalf("unexpected stderr:\n%s", errOut)
	}
	for _, want := range []string{"func_add:\n", "  t0 = a + b\n", "func_main:\n", "  t3 = call add\n"} {
		if !strings.Contains(out, want) {
			t.Fatalf("IR missing %q:\n%s", want, out)
		}
	}
}

func TestRunCompileTableToFile(t *testing.T) {
	filename := writeTempMiniFile(t, prog)
	outFile := filepath.Join(t.TempDir(), "out.ir")
	setFlag(t, irFormat, "table")
	setFlag(t, output, outFile)

	code, out, errOut := captureOutput(t, func() int {
		return runCompile(filename)
	})
	if code != 0 {
		t.Fatalf("runCompile exit=%d\nstderr:\n%s", code, errOut)
	}
	if out != "" {
		t.Fatalf("unexpected stdout:\n%s", out)
	}
	data, err := os.ReadFile(outFile)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "   2  ADD        t0           a            b\n") {
		t.Fatalf("table missing ADD row:\n%s", data)
	}
}

func TestRunCompileReportsDiagnostics(t *testing.T) {
	filename := writeTempMiniFile(t, "fn int main() {\n\treturn y;\n}\n")
	code, out, errOut := captureOutput(t, func() int {
		return runCompile(filename)
	})

	if code != 1 {
		t.Fatalf("runCompile exit=%d, want 1", code)
	}
	if out != "" {
		t.Fatalf("unexpected stdout:\n%s", out)
	}
	want := filename + ":2:9: UndeclaredVariableAccessed: variable 'y' used but not declared\n"
	if !strings.HasPrefix(errOut, want) {
		t.Fatalf("stderr = %q, want prefix %q", errOut, want)
	}
}

func TestRunCompileFatalParseError(t *testing.T) {
	filename := writeTempMiniFile(t, "fn int main() {\n")
	code, _, errOut := captureOutput(t, func() int {
		return runCompile(filename)
	})

	if code != 1 {
		t.Fatalf("runCompile exit=%d, want 1", code)
	}
	if strings.Count(errOut, "UnexpectedEOF") != 1 {
		t.Fatalf("fatal error should be reported once:\n%s", errOut)
	}
}

func TestRunCompileCheckOnly(t *testing.T) {
	filename := writeTempMiniFile(t, prog)
	setFlag(t, checkOnly, true)

	code, out, errOut := captureOutput(t, func() int {
		return runCompile(filename)
	})
	if code != 0 || out != "" || errOut != "" {
		t.Fatalf("exit=%d stdout=%q stderr=%q", code, out, errOut)
	}
}

func TestRunCompileEmitAST(t *testing.T) {
	filename := writeTempMiniFile(t, prog)
	setFlag(t, emitAST, true)

	code, out, errOut := captureOutput(t, func() int {
		return runCompile(filename)
	})
	if code != 0 {
		t.Fatalf("runCompile exit=%d\nstderr:\n%s", code, errOut)
	}
	if !strings.Contains(out, "FuncDecl int add "+filename+":1:1") {
		t.Fatalf("AST missing add:\n%s", out)
	}
	if strings.Contains(out, "func_add:") {
		t.Fatalf("IR printed without -emit-ir:\n%s", out)
	}

	setFlag(t, astFormat, "json")
	code, out, _ = captureOutput(t, func() int {
		return runCompile(filename)
	})
	if code != 0 || !strings.HasPrefix(strings.TrimSpace(out), "{") {
		t.Fatalf("exit=%d, JSON output:\n%s", code, out)
	}
}

func TestRunCompileEmitScopes(t *testing.T) {
	filename := writeTempMiniFile(t, prog)
	setFlag(t, emitScopes, true)
	setFlag(t, emitIR, true)

	code, out, _ := captureOutput(t, func() int {
		return runCompile(filename)
	})
	if code != 0 {
		t.Fatalf("runCompile exit=%d", code)
	}
	if !strings.Contains(out, "global scope program {") {
		t.Fatalf("scope tree missing:\n%s", out)
	}
	if !strings.Contains(out, "func_main:") {
		t.Fatalf("IR missing with -emit-ir:\n%s", out)
	}
}

func TestRunCompileVerbose(t *testing.T) {
	filename := writeTempMiniFile(t, prog)
	setFlag(t, verbose, true)
	setFlag(t, checkOnly, true)

	_, _, errOut := captureOutput(t, func() int {
		return runCompile(filename)
	})
	if !strings.Contains(errOut, "stage=typecheck") || !strings.Contains(errOut, `msg="stage skipped"`) {
		t.Fatalf("stage log missing:\n%s", errOut)
	}
}

func TestRunEmitTokens(t *testing.T) {
	filename := writeTempMiniFile(t, "string s = \"a\\tb\";")
	code, out, _ := captureOutput(t, func() int {
		return runEmitTokens(filename)
	})
	if code != 0 {
		t.Fatalf("runEmitTokens exit=%d\n%s", code, out)
	}
	if !strings.HasPrefix(out, "POSITION") {
		t.Fatalf("missing header:\n%s", out)
	}
	if !strings.Contains(out, `STRING       "a\tb"`) {
		t.Fatalf("string literal not escaped:\n%s", out)
	}

	filename = writeTempMiniFile(t, "int x = @;")
	code, out, _ = captureOutput(t, func() int {
		return runEmitTokens(filename)
	})
	if code != 1 || !strings.Contains(out, "Errors:") {
		t.Fatalf("exit=%d, output:\n%s", code, out)
	}
}

func TestMissingFile(t *testing.T) {
	code, _, errOut := captureOutput(t, func() int {
		return runCompile(filepath.Join(t.TempDir(), "nope.mc"))
	})
	if code != 1 || !strings.HasPrefix(errOut, "error: ") {
		t.Fatalf("exit=%d stderr=%q", code, errOut)
	}
}

func setFlag[T any](t *testing.T, p *T, v T) {
	t.Helper()
	old := *p
	*p = v
	t.Cleanup(func() { *p = old })
}

func writeTempMiniFile(t *testing.T, src string) string {
	t.Helper()
	dir := t.TempDir()
	filename := filepath.Join(dir, "input.mc")
	if err := os.WriteFile(filename, []byte(src), 0o600); err != nil {
		t.Fatalf("write temp file: %v", err)
	}
	return filename
}

func captureOutput(t *testing.T, fn func() int) (code int, stdout string, stderr string) {
	t.Helper()

	oldStdout := os.Stdout
	oldStderr := os.Stderr

	rOut, wOut, err := os.Pipe()
	if err != nil {
		t.Fatalf("pipe stdout: %v", err)
	}
	rErr, wErr, err := os.Pipe()
	if err != nil {
		t.Fatalf("pipe stderr: %v", err)
	}

	os.Stdout = wOut
	os.Stderr = wErr

	code = fn()

	_ = wOut.Close()
	_ = wErr.Close()
	os.Stdout = oldStdout
	os.Stderr = oldStderr

	outBytes, _ := io.ReadAll(rOut)
	errBytes, _ := io.ReadAll(rErr)
	_ = rOut.Close()
	_ = rErr.Close()

	return code, string(outBytes), string(errBytes)
}
