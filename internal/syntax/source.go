package syntax

import (
	"io"
	"unicode"
	"unicode/utf8"
)

// source is a rune reader over an in-memory buffer that tracks line and column.
type source struct {
	buf      []byte
	filename string
	line     uint32 // line of ch, 1-based
	col      uint32 // column of ch, 1-based byte offset in line

	ch   rune // current character, -1 at EOF
	offs int  // byte offset just past ch

	errh func(line, col uint32, msg string)
}

// init reads all of src and positions the reader at the first character.
// Errors are passed to errh, which may be nil.
func (s *source) init(filename string, src io.Reader, errh func(line, col uint32, msg string)) {
	*s = source{filename: filename, line: 1, ch: -1, errh: errh}

	buf, err := io.ReadAll(src)
	if err != nil {
		s.error("error reading source: " + err.Error())
		return
	}
	s.buf = buf
	s.nextch()
}

// nextch advances to the next character. (line, col) always describes s.ch
// after nextch returns; the -1 sentinel in ch before the first call keeps
// the first character at column 1.
func (s *source) nextch() {
	if s.ch == '\n' {
		s.line++
		s.col = 1
	} else {
		s.col++
	}

	if s.offs >= len(s.buf) {
		s.ch = -1
		return
	}

	r, width := utf8.DecodeRune(s.buf[s.offs:])
	if r == utf8.RuneError && width == 1 {
		s.error("invalid UTF-8 encoding")
	}
	s.ch = r
	s.offs += width
}

// peek returns the character after ch without consuming anything.
func (s *source) peek() rune {
	if s.offs >= len(s.buf) {
		return -1
	}
	r, _ := utf8.DecodeRune(s.buf[s.offs:])
	return r
}

func (s *source) error(msg string) {
	s.errorAt(s.line, s.col, msg)
}

func (s *source) errorAt(line, col uint32, msg string) {
	if s.errh != nil {
		s.errh(line, col, msg)
	}
}

// isLetter accepts ASCII letters, underscore, and any Unicode letter so that
// identifiers may be written in non-Latin scripts.
func isLetter(r rune) bool {
	if r < utf8.RuneSelf {
		return 'a' <= r && r <= 'z' || 'A' <= r && r <= 'Z' || r == '_'
	}
	return unicode.IsLetter(r)
}

func isDigit(r rune) bool {
	return '0' <= r && r <= '9'
}

// isIdentPart accepts combining marks as well, so decomposed spellings
// survive until normalisation.
func isIdentPart(r rune) bool {
	return isLetter(r) || isDigit(r) || r >= utf8.RuneSelf && unicode.Is(unicode.Mn, r)
}

func lower(r rune) rune {
	return ('a' - 'A') | r
}

func isWhitespace(r rune) bool {
	return r == ' ' || r == '\t' || r == '\r' || r == '\n'
}
