package e2e

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/you-not-fish/minic/internal/driver"
	"github.com/you-not-fish/minic/internal/ir"
)

// TestE2E runs end-to-end tests for all .mc files in testdata/.
// Each test:
//  1. Runs the full pipeline: scan → parse → resolve → typecheck → IR
//  2. Verifies the listing
//  3. Compares the printed listing against the .golden file
func TestE2E(t *testing.T) {
	testFiles, err := filepath.Glob("testdata/*.mc")
	if err != nil {
		t.Fatal(err)
	}
	if len(testFiles) == 0 {
		t.Fatal("no .mc test files found in testdata/")
	}

	for _, testFile := range testFiles {
		name := strings.TrimSuffix(filepath.Base(testFile), ".mc")
		t.Run(name, func(t *testing.T) {
			runE2ETest(t, testFile)
		})
	}
}

// runE2ETest runs a single end-to-end test.
func runE2ETest(t *testing.T, miniFile string) {
	t.Helper()

	goldenFile := strings.TrimSuffix(miniFile, ".mc") + ".golden"
	expected, err := os.ReadFile(goldenFile)
	if err != nil {
		t.Fatalf("reading golden file: %v", err)
	}

	instrs := compile(t, miniFile)
	if err := ir.Verify(instrs); err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	ir.Fprint(&buf, instrs)
	got := buf.String()
	want := string(expected)
	if got != want {
		t.Errorf("output mismatch:\ngot:\n%s\nwant:\n%s", got, want)
	}
}

// compile runs the pipeline in-process and returns the IR.
func compile(t *testing.T, miniFile string) []ir.Instr {
	t.Helper()

	src, err := os.ReadFile(miniFile)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	res, err := driver.Compile(miniFile, src, nil)
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	if diags := res.DiagnosticStrings(""); len(diags) > 0 {
		t.Fatalf("diagnostics:\n%s", strings.Join(diags, "\n"))
	}
	return res.IR
}
