package driver

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/you-not-fish/minic/internal/ir"
	"github.com/you-not-fish/minic/internal/syntax"
)

// Stage is one step of the pipeline.
type Stage struct {
	Name string
	Run  func(c *compilation) error
	Dump func(w io.Writer, r *Result) // may be nil
}

// errSkipped is returned by a stage whose input is not in a state it can
// work on. It is logged, not reported.
var errSkipped = errors.New("skipped")

var pipeline = []Stage{
	{Name: "scan", Run: scan, Dump: dumpTokens},
	{Name: "parse", Run: parse, Dump: dumpAST},
	{Name: "resolve", Run: resolveNames, Dump: dumpScopes},
	{Name: "typecheck", Run: typecheck},
	{Name: "ir", Run: generate, Dump: dumpIR},
}

// StageNames lists the pipeline stages in order.
func StageNames() []string {
	names := make([]string, len(pipeline))
	for i, s := range pipeline {
		names[i] = s.Name
	}
	return names
}

// run executes stages in order, stopping at the first one that fails.
func run(c *compilation, stages []Stage) error {
	for _, s := range stages {
		start := time.Now()
		err := s.Run(c)
		log := c.log.With("stage", s.Name, "elapsed", time.Since(start))

		if errors.Is(err, errSkipped) {
			log.Debug("stage skipped")
			continue
		}
		if err != nil {
			log.Error("stage failed", "err", err)
			return fmt.Errorf("%s: %w", s.Name, err)
		}
		log.Debug("stage done", stageAttrs(s.Name, c.res)...)

		if s.Dump != nil && c.cfg.Dump != nil && shouldDump(c.cfg.DumpAfter, s.Name) {
			fmt.Fprintf(c.cfg.Dump, "--- after %s (%s) ---\n", s.Name, c.res.Filename)
			s.Dump(c.cfg.Dump, c.res)
			fmt.Fprintln(c.cfg.Dump)
		}
	}
	return nil
}

func shouldDump(pattern, name string) bool {
	return pattern == "*" || pattern == name
}

// stageAttrs returns the counts worth logging after a stage.
func stageAttrs(name string, r *Result) []any {
	switch name {
	case "scan":
		return []any{"tokens", len(r.Tokens), "errors", len(r.LexErrors)}
	case "parse":
		return []any{"items", len(r.Program.Items), "nodes", countNodes(r.Program), "errors", len(r.ParseErrors)}
	case "resolve":
		return []any{"errors", len(r.ScopeErrors)}
	case "typecheck":
		return []any{"exprs", len(r.Types.Types), "errors", len(r.TypeErrors)}
	case "ir":
		return []any{"instrs", len(r.IR)}
	}
	return nil
}

func countNodes(prog *syntax.Program) int {
	n := 0
	syntax.Inspect(prog, func(syntax.Node) bool {
		n++
		return true
	})
	return n
}

func dumpTokens(w io.Writer, r *Result) {
	for _, tok := range r.Tokens {
		fmt.Fprintf(w, "%-12s %-10s %s\n", syntax.TokenPos(r.Filename, tok), tok.Kind, tok.Text)
	}
}

func dumpAST(w io.Writer, r *Result) {
	syntax.Fprint(w, r.Program)
}

func dumpScopes(w io.Writer, r *Result) {
	io.WriteString(w, r.Global.String())
}

func dumpIR(w io.Writer, r *Result) {
	ir.Fprint(w, r.IR)
}
