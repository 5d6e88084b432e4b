// Package casetest reads golden test cases written in Markdown.
//
// A case starts at a heading "Test: <name>" and holds one ```mini fence
// with the program, followed by assertion fences:
//
//	ir             the expected IR listing, compared line by line
//	ast            the expected AST dump without positions
//	parse-errors   one pattern per expected parse diagnostic
//	scope-errors   one pattern per expected scope diagnostic
//	type-errors    one pattern per expected type diagnostic
//
// Error patterns are regular expressions in the .NET dialect accepted by
// regexp2, matched in order against "line:col: Kind: message" strings.
// An empty errors fence asserts that the stage reported nothing.
package casetest

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// InputFence is the language tag of the program fence.
const InputFence = "mini"

// Kind is the language tag of an assertion fence.
type Kind string

const (
	IR          Kind = "ir"
	AST         Kind = "ast"
	ParseErrors Kind = "parse-errors"
	ScopeErrors Kind = "scope-errors"
	TypeErrors  Kind = "type-errors"
)

var kinds = []Kind{IR, AST, ParseErrors, ScopeErrors, TypeErrors}

func isKind(lang string) bool {
	for _, k := range kinds {
		if string(k) == lang {
			return true
		}
	}
	return false
}

// Assertion is one assertion fence.
type Assertion struct {
	Kind    Kind
	Content string // fence body without the trailing newline
	Line    int    // line of the fence in the document
}

// Case is one test case.
type Case struct {
	Name       string
	Input      string
	Line       int // line of the input fence
	Assertions []Assertion
}

// Extract parses a Markdown document and returns its cases in order.
func Extract(src []byte) ([]Case, error) {
	doc := goldmark.New().Parser().Parse(text.NewReader(src))

	var cases []Case
	var cur *Case
	flush := func() error {
		if cur == nil {
			return nil
		}
		if err := validate(cur); err != nil {
			return err
		}
		cases = append(cases, *cur)
		return nil
	}

	err := ast.Walk(doc, func(node ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}

		switch n := node.(type) {
		case *ast.Heading:
			title := nodeText(n, src)
			if !strings.HasPrefix(title, "Test: ") {
				return ast.WalkContinue, nil
			}
			if err := flush(); err != nil {
				return ast.WalkStop, err
			}
			cur = &Case{Name: strings.TrimSpace(strings.TrimPrefix(title, "Test: "))}

		case *ast.FencedCodeBlock:
			lang := string(n.Language(src))
			line := lineOf(n, src)
			if lang == "" {
				return ast.WalkContinue, nil
			}
			if lang != InputFence && !isKind(lang) {
				return ast.WalkStop, fmt.Errorf("line %d: unknown fence language %q", line, lang)
			}
			if cur == nil {
				return ast.WalkStop, fmt.Errorf("line %d: %s fence outside of a test case", line, lang)
			}
			body := strings.TrimRight(fenceText(n, src), "\n")
			if lang == InputFence {
				if cur.Line != 0 {
					return ast.WalkStop, fmt.Errorf("line %d: multiple input fences in test %q", line, cur.Name)
				}
				cur.Input = body
				cur.Line = line
				return ast.WalkContinue, nil
			}
			cur.Assertions = append(cur.Assertions, Assertion{Kind: Kind(lang), Content: body, Line: line})
		}
		return ast.WalkContinue, nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking markdown: %w", err)
	}
	if err := flush(); err != nil {
		return nil, err
	}
	return cases, nil
}

func validate(c *Case) error {
	if c.Line == 0 {
		return fmt.Errorf("test %q has no %s fence", c.Name, InputFence)
	}
	if len(c.Assertions) == 0 {
		return fmt.Errorf("test %q has no assertion fences", c.Name)
	}
	return nil
}

func nodeText(node ast.Node, src []byte) string {
	var buf bytes.Buffer
	ast.Walk(node, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if t, ok := n.(*ast.Text); ok && entering {
			buf.Write(t.Segment.Value(src))
		}
		return ast.WalkContinue, nil
	})
	return buf.String()
}

func fenceText(n *ast.FencedCodeBlock, src []byte) string {
	var buf bytes.Buffer
	lines := n.Lines()
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		buf.Write(seg.Value(src))
	}
	return buf.String()
}

// lineOf returns the 1-based document line of the fence's opening marker.
func lineOf(n ast.Node, src []byte) int {
	if n.Lines().Len() == 0 {
		return 1
	}
	start := n.Lines().At(0).Start
	return bytes.Count(src[:start], []byte("\n"))
}
