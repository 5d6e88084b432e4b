// Package main implements the Mini compiler front end driver.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"runtime"
	"strings"

	"github.com/you-not-fish/minic/internal/driver"
	"github.com/you-not-fish/minic/internal/ir"
	"github.com/you-not-fish/minic/internal/syntax"
)

// Compiler flags
var (
	emitTokens = flag.Bool("emit-tokens", false, "Output token stream")
	emitAST    = flag.Bool("emit-ast", false, "Output AST")
	astFormat  = flag.String("ast-format", "text", "AST output format (text or json)")
	emitScopes = flag.Bool("emit-scopes", false, "Output the scope tree")
	emitIR     = flag.Bool("emit-ir", false, "Output IR (the default when nothing else is requested)")
	irFormat   = flag.String("ir-format", "text", "IR output format (text or table)")
	output     = flag.String("o", "", "Output file for IR")
	checkOnly  = flag.Bool("check-only", false, "Stop after type checking")
	maxErrors  = flag.Int("max-errors", syntax.DefaultMaxErrors, "Maximum parse errors to report (0 = unlimited)")
	traceParse = flag.Bool("trace-parse", false, "Trace parser productions to stderr")
	dumpAfter  = flag.String("dump-after", "", "Dump a stage's product to stderr (stage name or \"*\")")
	verbose    = flag.Bool("v", false, "Log pipeline stages to stderr")
	version    = flag.Bool("version", false, "Print version")
)

// Version information
const Version = "0.1.0-dev"

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Mini Compiler %s\n\n", Version)
		fmt.Fprintf(os.Stderr, "Usage: minic [options] <file.mc>\n\n")
		fmt.Fprintf(os.Stderr, "Stages: %s\n\n", strings.Join(driver.StageNames(), ", "))
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
	}

	flag.Parse()

	if *version {
		fmt.Printf("minic version %s\n", Version)
		fmt.Printf("go version %s\n", runtime.Version())
		os.Exit(0)
	}

	args := flag.Args()
	if len(args) == 0 {
		fmt.Fprintln(os.Stderr, "error: no input file")
		fmt.Fprintln(os.Stderr, "usage: minic [options] <file.mc>")
		os.Exit(1)
	}
	filename := args[0]

	if *emitTokens {
		os.Exit(runEmitTokens(filename))
	}
	os.Exit(runCompile(filename))
}

// config builds the driver configuration from the flags.
func config() *driver.Config {
	cfg := &driver.Config{
		CheckOnly: *checkOnly,
		MaxErrors: *maxErrors,
		DumpAfter: *dumpAfter,
		Dump:      os.Stderr,
	}
	if *verbose {
		cfg.Logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
	if *traceParse {
		cfg.ParseTrace = os.Stderr
	}
	return cfg
}

// compileFile reads and compiles filename, printing diagnostics to stderr.
// It returns nil if the file could not be read or a stage failed.
func compileFile(filename string) *driver.Result {
	src, err := os.ReadFile(filename)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return nil
	}

	res, err := driver.Compile(filename, src, config())
	for _, d := range res.Diagnostics() {
		fmt.Fprintln(os.Stderr, d)
	}
	if err != nil {
		// A fatal parse error is already among the diagnostics.
		var perr *syntax.ParseError
		if !errors.As(err, &perr) {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
		}
		return nil
	}
	return res
}

// runCompile runs the pipeline and writes the requested products.
func runCompile(filename string) int {
	res := compileFile(filename)
	if res == nil {
		return 1
	}

	if *emitAST {
		if err := printAST(os.Stdout, res.Program); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			return 1
		}
	}
	if *emitScopes && res.Global != nil {
		fmt.Print(res.Global)
	}

	if res.NumDiagnostics() > 0 {
		return 1
	}

	if *checkOnly || (!*emitIR && (*emitAST || *emitScopes)) {
		return 0
	}
	return writeIR(res.IR)
}

func printAST(w io.Writer, prog *syntax.Program) error {
	switch *astFormat {
	case "json":
		return syntax.FprintJSON(w, prog)
	case "text":
		syntax.Fprint(w, prog)
		return nil
	}
	return fmt.Errorf("unknown AST format %q", *astFormat)
}

// writeIR writes the listing to -o, or to stdout.
func writeIR(instrs []ir.Instr) int {
	w := io.Writer(os.Stdout)
	if *output != "" {
		f, err := os.Create(*output)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			return 1
		}
		defer f.Close()
		w = f
	}

	switch *irFormat {
	case "table":
		ir.FprintTable(w, instrs)
	case "text":
		ir.Fprint(w, instrs)
	default:
		fmt.Fprintf(os.Stderr, "error: unknown IR format %q\n", *irFormat)
		return 1
	}
	return 0
}

// runEmitTokens scans the input file and prints all tokens with positions.
func runEmitTokens(filename string) int {
	f, err := os.Open(filename)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 1
	}
	defer f.Close()

	var errs []string
	errh := func(line, col uint32, msg string) {
		errs = append(errs, fmt.Sprintf("%s:%d:%d: %s", filename, line, col, msg))
	}
	toks := syntax.Scan(filename, f, errh)

	fmt.Printf("%-20s %-12s %s\n", "POSITION", "TOKEN", "LITERAL")
	fmt.Printf("%-20s %-12s %s\n", strings.Repeat("-", 20), strings.Repeat("-", 12), strings.Repeat("-", 20))
	for _, tok := range toks {
		pos := syntax.TokenPos(filename, tok)
		fmt.Printf("%-20s %-12s %s\n", pos, tok.Kind, formatLiteral(tok.Text))
	}

	if len(errs) > 0 {
		fmt.Println()
		fmt.Println("Errors:")
		for _, e := range errs {
			fmt.Printf("  %s\n", e)
		}
		return 1
	}
	return 0
}

// formatLiteral formats a literal for display, escaping special characters.
func formatLiteral(lit string) string {
	if lit == "" {
		return "\"\""
	}

	var b strings.Builder
	b.WriteRune('"')
	for _, r := range lit {
		switch r {
		case '\n':
			b.WriteString("\\n")
		case '\t':
			b.WriteString("\\t")
		case '\r':
			b.WriteString("\\r")
		case '\\':
			b.WriteString("\\\\")
		case '"':
			b.WriteString("\\\"")
		case 0:
			b.WriteString("\\0")
		default:
			b.WriteRune(r)
		}
	}
	b.WriteRune('"')
	return b.String()
}
