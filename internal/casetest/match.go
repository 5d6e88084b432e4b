package casetest

import (
	"fmt"
	"strings"

	"github.com/dlclark/regexp2"
)

// Lines splits s into lines with surrounding blanks trimmed, dropping
// empty lines.
func Lines(s string) []string {
	var out []string
	for _, line := range strings.Split(s, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			out = append(out, line)
		}
	}
	return out
}

// MatchErrors checks got against the patterns in content, one per line,
// in order. Every diagnostic must be matched and every pattern used.
func MatchErrors(content string, got []string) error {
	patterns := Lines(content)
	var problems []string
	for i, pat := range patterns {
		re, err := regexp2.Compile(pat, regexp2.None)
		if err != nil {
			return fmt.Errorf("pattern %d %q: %w", i+1, pat, err)
		}
		if i >= len(got) {
			problems = append(problems, fmt.Sprintf("missing diagnostic for pattern %q", pat))
			continue
		}
		ok, err := re.MatchString(got[i])
		if err != nil {
			return fmt.Errorf("pattern %d %q: %w", i+1, pat, err)
		}
		if !ok {
			problems = append(problems, fmt.Sprintf("diagnostic %q does not match %q", got[i], pat))
		}
	}
	for _, extra := range got[min(len(patterns), len(got)):] {
		problems = append(problems, fmt.Sprintf("unexpected diagnostic %q", extra))
	}
	if len(problems) > 0 {
		return fmt.Errorf("%s", strings.Join(problems, "\n"))
	}
	return nil
}

// positionRE matches the "line:col" or "file:line:col" suffix the AST
// printer puts on each node.
var positionRE = regexp2.MustCompile(`[ \t]+(?:\S*:)?\d+:\d+[ \t]*$`, regexp2.Multiline)

// StripPositions removes node positions from an AST dump.
func StripPositions(dump string) string {
	out, err := positionRE.Replace(dump, "", -1, -1)
	if err != nil {
		panic(err)
	}
	return out
}
