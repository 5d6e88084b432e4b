package syntax

// TokenStream is a read cursor over a token sequence. Comment tokens are
// invisible to every method. A sequence lacking a trailing EOF behaves as if
// one followed its last token.
type TokenStream struct {
	toks []Token
	pos  int // index of the current significant token
	eof  Token
}

// NewTokenStream returns a cursor positioned at the first non-comment token.
func NewTokenStream(toks []Token) *TokenStream {
	ts := &TokenStream{toks: toks, eof: Token{Kind: EOF, Line: 1, Col: 1}}
	if n := len(toks); n > 0 {
		last := toks[n-1]
		ts.eof = Token{Kind: EOF, Line: last.Line, Col: last.Col + uint32(len(last.Text))}
		if last.Kind == EOF {
			ts.eof = last
		}
	}
	ts.pos = ts.skip(0)
	return ts
}

// skip returns the index of the first significant token at or after i.
func (ts *TokenStream) skip(i int) int {
	for i < len(ts.toks) && ts.toks[i].Kind.IsTrivia() {
		i++
	}
	return i
}

// Peek returns the current token without consuming it.
func (ts *TokenStream) Peek() Token {
	if ts.pos >= len(ts.toks) {
		return ts.eof
	}
	return ts.toks[ts.pos]
}

// PeekN returns the significant token n positions ahead of the current one;
// PeekN(0) is Peek.
func (ts *TokenStream) PeekN(n int) Token {
	i := ts.pos
	for ; n > 0 && i < len(ts.toks); n-- {
		i = ts.skip(i + 1)
	}
	if i >= len(ts.toks) {
		return ts.eof
	}
	return ts.toks[i]
}

// Advance consumes and returns the current token. At the end of input it
// returns EOF without moving.
func (ts *TokenStream) Advance() Token {
	tok := ts.Peek()
	if tok.Kind != EOF {
		ts.pos = ts.skip(ts.pos + 1)
	}
	return tok
}

// Match consumes the current token if it has kind k.
func (ts *TokenStream) Match(k Kind) bool {
	if ts.Peek().Kind == k {
		ts.Advance()
		return true
	}
	return false
}

// Check reports whether the current token has kind k.
func (ts *TokenStream) Check(k Kind) bool {
	return ts.Peek().Kind == k
}

// AtEnd reports whether only EOF remains.
func (ts *TokenStream) AtEnd() bool {
	return ts.Peek().Kind == EOF
}

// Offset returns the index of the current token in the underlying sequence.
// It only ever grows.
func (ts *TokenStream) Offset() int {
	return ts.pos
}
