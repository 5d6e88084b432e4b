package syntax

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Scanner turns Mini source text into tokens. It is the reference producer of
// the token sequence consumed by the parser; comments are returned as trivia
// tokens rather than discarded.
type Scanner struct {
	source

	tok    Token
	litBuf strings.Builder
}

// NewScanner returns a scanner reading src. Lexical errors are reported to
// errh, which may be nil.
func NewScanner(filename string, src io.Reader, errh func(line, col uint32, msg string)) *Scanner {
	s := new(Scanner)
	s.source.init(filename, src, errh)
	return s
}

// Scan reads all of src and returns its tokens, ending with a single EOF token.
func Scan(filename string, src io.Reader, errh func(line, col uint32, msg string)) []Token {
	s := NewScanner(filename, src, errh)
	var toks []Token
	for {
		tok := s.Next()
		toks = append(toks, tok)
		if tok.Kind == EOF {
			return toks
		}
	}
}

// Next scans and returns the next token. After the end of input it keeps
// returning EOF.
func (s *Scanner) Next() Token {
	for isWhitespace(s.ch) {
		s.nextch()
	}

	s.tok = Token{Line: s.line, Col: s.col}

	switch {
	case s.ch < 0:
		s.tok.Kind = EOF
	case isLetter(s.ch):
		s.scanIdent()
	case isDigit(s.ch) || s.ch == '.' && isDigit(s.peek()):
		s.scanNumber()
	case s.ch == '"':
		s.scanString()
	case s.ch == '\'':
		s.scanChar()
	default:
		s.scanOperator()
	}
	return s.tok
}

// Token returns the most recently scanned token.
func (s *Scanner) Token() Token {
	return s.tok
}

func (s *Scanner) scanIdent() {
	s.litBuf.Reset()
	for isIdentPart(s.ch) {
		s.litBuf.WriteRune(s.ch)
		s.nextch()
	}
	lit := s.litBuf.String()
	if !norm.NFC.IsNormalString(lit) {
		lit = norm.NFC.String(lit)
	}
	s.tok.Kind = LookupKeyword(lit)
	s.tok.Text = lit
}

// scanNumber scans a decimal integer or a float with optional fraction and exponent.
func (s *Scanner) scanNumber() {
	s.litBuf.Reset()
	s.tok.Kind = IntLit

	s.digits()
	if s.ch == '.' {
		s.tok.Kind = FloatLit
		s.litBuf.WriteRune(s.ch)
		s.nextch()
		s.digits()
	}
	if lower(s.ch) == 'e' {
		s.tok.Kind = FloatLit
		s.litBuf.WriteRune(s.ch)
		s.nextch()
		if s.ch == '+' || s.ch == '-' {
			s.litBuf.WriteRune(s.ch)
			s.nextch()
		}
		if !isDigit(s.ch) {
			s.error("exponent has no digits")
			s.tok.Kind = Illegal
		}
		s.digits()
	}
	if isLetter(s.ch) {
		s.error(fmt.Sprintf("invalid character %q in numeric literal", s.ch))
		for isIdentPart(s.ch) {
			s.litBuf.WriteRune(s.ch)
			s.nextch()
		}
		s.tok.Kind = Illegal
	}
	s.tok.Text = s.litBuf.String()
}

func (s *Scanner) digits() {
	for isDigit(s.ch) {
		s.litBuf.WriteRune(s.ch)
		s.nextch()
	}
}

// scanString scans a double-quoted string. Text holds the decoded content.
func (s *Scanner) scanString() {
	s.nextch() // opening "
	var b strings.Builder
	for {
		switch {
		case s.ch == '"':
			s.nextch()
			s.tok.Kind = StringLit
			s.tok.Text = b.String()
			return
		case s.ch == '\\':
			if r, ok := s.scanEscape('"'); ok {
				b.WriteRune(r)
			}
		case s.ch == '\n' || s.ch < 0:
			s.error("string literal not terminated")
			s.tok.Kind = Illegal
			s.tok.Text = b.String()
			return
		default:
			b.WriteRune(s.ch)
			s.nextch()
		}
	}
}

// scanChar scans a single-quoted character literal holding exactly one
// (possibly escaped) character.
func (s *Scanner) scanChar() {
	s.nextch() // opening '
	s.tok.Kind = CharLit

	var r rune
	switch {
	case s.ch == '\\':
		var ok bool
		if r, ok = s.scanEscape('\''); !ok {
			s.tok.Kind = Illegal
		}
	case s.ch == '\'' || s.ch == '\n' || s.ch < 0:
		s.error("empty character literal")
		s.tok.Kind = Illegal
		if s.ch == '\'' {
			s.nextch()
		}
		return
	default:
		r = s.ch
		s.nextch()
	}

	if s.ch != '\'' {
		s.error("character literal not terminated")
		s.tok.Kind = Illegal
		for s.ch != '\'' && s.ch != '\n' && s.ch >= 0 {
			s.nextch()
		}
		if s.ch == '\'' {
			s.nextch()
		}
		return
	}
	s.nextch()
	s.tok.Text = string(r)
}

// scanEscape decodes the escape sequence at s.ch == '\\'. quote is the
// delimiter of the enclosing literal, which may always be escaped.
func (s *Scanner) scanEscape(quote rune) (rune, bool) {
	s.nextch() // \
	var r rune
	switch s.ch {
	case 'n':
		r = '\n'
	case 't':
		r = '\t'
	case 'r':
		r = '\r'
	case '0':
		r = 0
	case '\\':
		r = '\\'
	case quote:
		r = quote
	default:
		if s.ch < 0 {
			s.error("escape sequence not terminated")
			return 0, false
		}
		s.error(fmt.Sprintf("unknown escape sequence: \\%c", s.ch))
		s.nextch()
		return 0, false
	}
	s.nextch()
	return r, true
}

// scanOperator scans an operator, a delimiter or a comment.
func (s *Scanner) scanOperator() {
	ch := s.ch
	s.nextch()

	// two reports whether the current character is next and consumes it.
	two := func(next rune) bool {
		if s.ch == next {
			s.nextch()
			return true
		}
		return false
	}

	var k Kind
	switch ch {
	case '+':
		switch {
		case two('+'):
			k = Inc
		case two('='):
			k = AddAssign
		default:
			k = Add
		}
	case '-':
		switch {
		case two('-'):
			k = Dec
		case two('='):
			k = SubAssign
		default:
			k = Sub
		}
	case '*':
		if two('*') {
			k = Pow
		} else {
			k = Mul
		}
	case '/':
		switch s.ch {
		case '/':
			s.lineComment()
			return
		case '*':
			s.blockComment()
			return
		}
		k = Div
	case '&':
		if two('&') {
			k = AndAnd
		} else {
			k = And
		}
	case '|':
		if two('|') {
			k = OrOr
		} else {
			k = Or
		}
	case '^':
		k = Xor
	case '<':
		switch {
		case two('='):
			k = Leq
		case two('<'):
			k = Shl
		default:
			k = Lss
		}
	case '>':
		switch {
		case two('='):
			k = Geq
		case two('>'):
			k = Shr
		default:
			k = Gtr
		}
	case '=':
		if two('=') {
			k = Eql
		} else {
			k = Assign
		}
	case '!':
		if two('=') {
			k = Neq
		} else {
			k = Not
		}
	case '(':
		k = Lparen
	case ')':
		k = Rparen
	case '[':
		k = Lbrack
	case ']':
		k = Rbrack
	case '{':
		k = Lbrace
	case '}':
		k = Rbrace
	case ',':
		k = Comma
	case ';':
		k = Semi
	default:
		s.errorAt(s.tok.Line, s.tok.Col, fmt.Sprintf("unexpected character %q", ch))
		s.tok.Kind = Illegal
		s.tok.Text = string(ch)
		return
	}
	s.tok.Kind = k
	s.tok.Text = k.String()
}

// lineComment scans from the second '/' to the end of the line.
func (s *Scanner) lineComment() {
	s.litBuf.Reset()
	s.litBuf.WriteByte('/')
	for s.ch != '\n' && s.ch >= 0 {
		s.litBuf.WriteRune(s.ch)
		s.nextch()
	}
	s.tok.Kind = LineComment
	s.tok.Text = s.litBuf.String()
}

// blockComment scans from the '*' after the opening '/' through "*/".
func (s *Scanner) blockComment() {
	s.litBuf.Reset()
	s.litBuf.WriteByte('/')
	s.litBuf.WriteRune(s.ch)
	s.nextch()
	for {
		if s.ch < 0 {
			s.errorAt(s.tok.Line, s.tok.Col, "comment not terminated")
			break
		}
		if s.ch == '*' && s.peek() == '/' {
			s.litBuf.WriteString("*/")
			s.nextch()
			s.nextch()
			break
		}
		s.litBuf.WriteRune(s.ch)
		s.nextch()
	}
	s.tok.Kind = BlockComment
	s.tok.Text = s.litBuf.String()
}
