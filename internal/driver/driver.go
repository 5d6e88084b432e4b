// Package driver runs the front end over one source file: scan, parse,
// scope check, type check and IR generation.
//
// The two checkers run only on a program that scanned and parsed without
// errors, and IR is generated only when both checkers are clean. Each
// stage logs through the configured slog.Logger and can dump its product.
package driver

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"

	"github.com/you-not-fish/minic/internal/ir"
	"github.com/you-not-fish/minic/internal/resolve"
	"github.com/you-not-fish/minic/internal/syntax"
	"github.com/you-not-fish/minic/internal/types"
	"github.com/you-not-fish/minic/internal/types2"
)

// Config controls a compilation. The zero value is usable.
type Config struct {
	// Logger receives one record per stage. Nil discards.
	Logger *slog.Logger

	// CheckOnly stops after the type checker.
	CheckOnly bool

	// MaxErrors caps the parse errors recorded; 0 means no limit.
	// Negative selects syntax.DefaultMaxErrors.
	MaxErrors int

	// ParseTrace, if set, receives the parser's production trace.
	ParseTrace io.Writer

	// DumpAfter names the stage whose product is written to Dump after
	// it runs ("*" for all stages).
	DumpAfter string
	Dump      io.Writer
}

// Result holds everything a compilation produced, including partial
// products of a failed run.
type Result struct {
	Filename string

	Tokens    []syntax.Token
	LexErrors []*LexError

	Program     *syntax.Program
	ParseErrors []*syntax.ParseError

	ScopeErrors []*resolve.Error
	Global      *types.Scope // scope tree built by the scope checker

	TypeErrors []*types2.Error
	Types      *types2.Info

	IR []ir.Instr
}

// LexError is a lexical error reported by the scanner.
type LexError struct {
	Pos syntax.Pos
	Msg string
}

func (e *LexError) Error() string {
	return fmt.Sprintf("%s: LexicalError: %s", e.Pos, e.Msg)
}

// compilation is the state threaded through the stages.
type compilation struct {
	cfg *Config
	log *slog.Logger
	src []byte
	res *Result
}

// Compile runs the pipeline over src. Diagnostics in the source are
// reported through the Result; the error is non-nil only when a stage
// could not finish, such as input ending inside a function body or a
// generated listing that fails verification.
func Compile(filename string, src []byte, cfg *Config) (*Result, error) {
	if cfg == nil {
		cfg = new(Config)
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	c := &compilation{
		cfg: cfg,
		log: logger.With("file", filename),
		src: src,
		res: &Result{Filename: filename},
	}
	if err := run(c, pipeline); err != nil {
		return c.res, fmt.Errorf("compile %s: %w", filename, err)
	}
	return c.res, nil
}

func scan(c *compilation) error {
	res := c.res
	errh := func(line, col uint32, msg string) {
		res.LexErrors = append(res.LexErrors, &LexError{
			Pos: syntax.NewPos(res.Filename, line, col),
			Msg: msg,
		})
	}
	res.Tokens = syntax.Scan(res.Filename, bytes.NewReader(c.src), errh)
	return nil
}

func parse(c *compilation) error {
	res := c.res
	p := syntax.NewParser(res.Filename, res.Tokens)
	if c.cfg.MaxErrors >= 0 {
		p.MaxErrors = c.cfg.MaxErrors
	}
	p.Trace = c.cfg.ParseTrace

	prog, fatal := p.Parse()
	res.Program = prog
	res.ParseErrors = p.Errors()
	if fatal != nil {
		res.ParseErrors = append(res.ParseErrors, fatal)
		return fatal
	}
	return nil
}

// syntaxOK reports whether the checkers may run.
func (c *compilation) syntaxOK() bool {
	return len(c.res.LexErrors) == 0 && len(c.res.ParseErrors) == 0
}

func resolveNames(c *compilation) error {
	if !c.syntaxOK() {
		return errSkipped
	}
	chk := resolve.NewChecker(nil)
	c.res.ScopeErrors = chk.Analyse(c.res.Program)
	c.res.Global = chk.Global()
	return nil
}

func typecheck(c *compilation) error {
	if !c.syntaxOK() {
		return errSkipped
	}
	c.res.Types = &types2.Info{Types: make(map[syntax.Expr]types.Type)}
	c.res.TypeErrors = types2.Check(c.res.Program, nil, c.res.Types)
	return nil
}

func generate(c *compilation) error {
	if c.cfg.CheckOnly || c.res.NumDiagnostics() > 0 {
		return errSkipped
	}
	instrs := ir.Generate(c.res.Program)
	if err := ir.Verify(instrs); err != nil {
		return err
	}
	c.res.IR = instrs
	return nil
}
