package syntax

import (
	"fmt"
	"io"
	"strings"
)

// DefaultMaxErrors is the number of recovered errors a Parser records before
// it stops recording (it keeps parsing and recovering).
const DefaultMaxErrors = 50

// Parser builds a Program from a token sequence.
//
// Every production returns its node together with a *ParseError. The loops
// that read declarations and statements inspect that error and resynchronize
// the stream, so one malformed statement costs one diagnostic and parsing
// continues behind it.
type Parser struct {
	ts       *TokenStream
	filename string

	fnDepth int // > 0 while inside a function body

	errs  []*ParseError
	fatal *ParseError

	// MaxErrors caps the recorded errors; 0 means no limit.
	MaxErrors int

	// Trace, if set, receives one line per production entered.
	Trace  io.Writer
	indent int
}

// NewParser returns a parser over toks. filename is used in positions only.
func NewParser(filename string, toks []Token) *Parser {
	return &Parser{
		ts:        NewTokenStream(toks),
		filename:  filename,
		MaxErrors: DefaultMaxErrors,
	}
}

// ParseProgram parses toks. The returned Program holds every declaration that
// parsed, even when the error is non-nil; the error is an ErrorList.
func ParseProgram(filename string, toks []Token) (*Program, error) {
	p := NewParser(filename, toks)
	prog, fatal := p.Parse()
	errs := ErrorList(p.Errors())
	if fatal != nil {
		errs = append(errs, fatal)
	}
	return prog, errs.Err()
}

// Errors returns the recovered errors in the order they were found.
func (p *Parser) Errors() []*ParseError {
	return p.errs
}

// Parse reads the whole token sequence. The returned error is non-nil only if
// the input ended inside a function body, which no recovery can repair.
func (p *Parser) Parse() (*Program, *ParseError) {
	defer un(trace(p, "Program"))

	prog := new(Program)
	prog.pos = p.posOf(p.ts.Peek())

	for !p.ts.AtEnd() {
		if !p.atDeclStart() {
			tok := p.ts.Peek()
			switch {
			case tok.Kind == Return:
				p.report(p.errorf(UnexpectedToken, tok, "return outside of function"))
			default:
				p.report(p.errorf(UnexpectedToken, tok, "unexpected %s at top level", describe(tok)))
			}
			p.syncTopLevel()
			continue
		}
		d, err := p.topLevelDecl()
		if p.fatal != nil {
			return prog, p.fatal
		}
		if err != nil {
			p.report(err)
			p.syncTopLevel()
			continue
		}
		prog.Items = append(prog.Items, d)
	}
	return prog, nil
}

// ----------------------------------------------------------------------------
// Error handling and recovery

func (p *Parser) posOf(tok Token) Pos {
	return TokenPos(p.filename, tok)
}

func (p *Parser) errorf(kind ErrorKind, tok Token, format string, args ...interface{}) *ParseError {
	if tok.Kind == EOF && kind != UnexpectedEOF {
		kind = UnexpectedEOF
	}
	return &ParseError{Kind: kind, Token: tok, Pos: p.posOf(tok), Msg: fmt.Sprintf(format, args...)}
}

func (p *Parser) report(err *ParseError) {
	if p.Trace != nil {
		p.printTrace("error: " + err.Error())
	}
	if p.MaxErrors > 0 && len(p.errs) >= p.MaxErrors {
		return
	}
	p.errs = append(p.errs, err)
}

// want consumes a token of kind k or fails with UnexpectedToken.
func (p *Parser) want(k Kind, context string) (Token, *ParseError) {
	tok := p.ts.Peek()
	if tok.Kind != k {
		return tok, p.errorf(UnexpectedToken, tok, "expected '%s' %s, found %s", k, context, describe(tok))
	}
	return p.ts.Advance(), nil
}

func describe(tok Token) string {
	switch {
	case tok.Kind == EOF:
		return "end of input"
	case tok.Kind == Ident:
		return fmt.Sprintf("identifier %s", tok.Text)
	case tok.Kind.IsLiteral():
		return fmt.Sprintf("literal %s", tok.Text)
	case tok.Kind == Illegal:
		return fmt.Sprintf("invalid token %q", tok.Text)
	}
	return fmt.Sprintf("'%s'", tok.Kind)
}

func (p *Parser) atDeclStart() bool {
	k := p.ts.Peek().Kind
	return k == Fn || k.IsTypeKeyword()
}

// syncTopLevel skips to a declaration boundary: past a ';' or a '}' at
// brace depth zero, past the '}' that closes a skipped body, or up to a
// token that starts a declaration. It always consumes at least one token
// unless it is already at such a start.
func (p *Parser) syncTopLevel() {
	depth := 0
	for !p.ts.AtEnd() {
		switch p.ts.Peek().Kind {
		case Semi:
			p.ts.Advance()
			if depth == 0 {
				return
			}
			continue
		case Lbrace:
			depth++
		case Rbrace:
			p.ts.Advance()
			if depth <= 1 {
				return
			}
			depth--
			continue
		case Fn, IntKw, FloatKw, StringKw, BoolKw, CharKw:
			if depth == 0 {
				return
			}
		}
		p.ts.Advance()
	}
}

// syncInBlock skips the rest of a malformed statement inside a block. Nested
// braces are skipped as a unit. It stops after a ';' at depth zero, or before
// the '}' that closes the enclosing block so the caller can see it.
func (p *Parser) syncInBlock() {
	depth := 0
	for !p.ts.AtEnd() {
		switch p.ts.Peek().Kind {
		case Semi:
			p.ts.Advance()
			if depth == 0 {
				return
			}
		case Lbrace:
			p.ts.Advance()
			depth++
		case Rbrace:
			if depth == 0 {
				return
			}
			p.ts.Advance()
			depth--
		default:
			p.ts.Advance()
		}
	}
}

// ----------------------------------------------------------------------------
// Declarations

// topLevelDecl parses a function, a prototype or a variable declaration.
//
//	fn Type Name ( Params ) ( Block | ";" )
//	Type Name ( Params ) ( Block | ";" )
//	Type Name [ "=" Expr ] { "," Name [ "=" Expr ] } ";"
func (p *Parser) topLevelDecl() (Decl, *ParseError) {
	defer un(trace(p, "TopLevelDecl"))

	if p.ts.Check(Fn) {
		fnTok := p.ts.Advance()
		rt := p.ts.Peek()
		if rt.Kind == Ident && p.ts.PeekN(1).Kind == Lparen {
			return nil, p.errorf(ExpectedTypeToken, rt, "missing return type after 'fn' (e.g. 'fn int %s(...)')", rt.Text)
		}
		if !rt.Kind.IsTypeKeyword() {
			return nil, p.errorf(ExpectedTypeToken, rt, "expected return type after 'fn', found %s", describe(rt))
		}
		p.ts.Advance()
		name, err := p.name("function name after return type")
		if err != nil {
			return nil, err
		}
		if _, err := p.want(Lparen, "after function name"); err != nil {
			return nil, err
		}
		return p.funcDecl(fnTok, rt.Kind, name)
	}

	typ := p.ts.Peek()
	if !typ.Kind.IsTypeKeyword() {
		return nil, p.errorf(ExpectedTypeToken, typ, "expected type, found %s", describe(typ))
	}
	p.ts.Advance()
	name, err := p.name("after type")
	if err != nil {
		return nil, err
	}
	if p.ts.Match(Lparen) {
		return p.funcDecl(typ, typ.Kind, name)
	}
	return p.varDeclRest(typ, name)
}

// funcDecl parses the parameter list and the body or ';' of a function whose
// opening '(' has been consumed. start is the declaration's leading token.
func (p *Parser) funcDecl(start Token, result Kind, name *Name) (*FuncDecl, *ParseError) {
	defer un(trace(p, "FuncDecl"))

	d := new(FuncDecl)
	d.pos = p.posOf(start)
	d.Result = result
	d.Name = name

	params, err := p.paramList()
	if err != nil {
		return nil, err
	}
	d.Params = params

	if p.ts.Match(Semi) {
		return d, nil
	}
	lbrace, err := p.want(Lbrace, "to start function body")
	if err != nil {
		return nil, err
	}
	d.Body = p.funcBody(lbrace)
	return d, nil
}

// paramList parses Params ")" after the opening parenthesis.
func (p *Parser) paramList() ([]*Param, *ParseError) {
	var params []*Param
	if p.ts.Match(Rparen) {
		return params, nil
	}
	for {
		typ := p.ts.Peek()
		if !typ.Kind.IsTypeKeyword() {
			return nil, p.errorf(ExpectedTypeToken, typ, "expected parameter type, found %s", describe(typ))
		}
		p.ts.Advance()

		par := new(Param)
		par.pos = p.posOf(typ)
		par.Type = typ.Kind
		if tok := p.ts.Peek(); tok.Kind == Ident {
			par.Name = p.newName(p.ts.Advance())
		} else {
			// Unnamed parameter: keep the AST well formed with a placeholder.
			par.Name = new(Name)
			par.Name.pos = par.pos
			par.Name.Value = fmt.Sprintf("_p%d", len(params))
			par.Synthetic = true
		}
		params = append(params, par)

		if p.ts.Match(Comma) {
			continue
		}
		if p.ts.Match(Rparen) {
			return params, nil
		}
		return nil, p.errorf(UnexpectedToken, p.ts.Peek(), "expected ',' or ')' in parameter list, found %s", describe(p.ts.Peek()))
	}
}

// funcBody parses statements up to the closing '}' of a function body. If the
// input ends first, the failure is recorded as fatal.
func (p *Parser) funcBody(lbrace Token) *BlockStmt {
	p.fnDepth++
	defer func() { p.fnDepth-- }()

	body := p.blockBody(lbrace)
	if !p.ts.Match(Rbrace) {
		p.fatal = p.errorf(UnexpectedEOF, p.ts.Peek(), "expected '}' to end function body opened at %s", p.posOf(lbrace))
	}
	return body
}

// blockBody reads statements until '}' or end of input without consuming
// the '}'. Failed statements are reported and skipped with syncInBlock.
func (p *Parser) blockBody(lbrace Token) *BlockStmt {
	b := new(BlockStmt)
	b.pos = p.posOf(lbrace)
	for !p.ts.Check(Rbrace) && !p.ts.AtEnd() {
		start := p.ts.Offset()
		s, err := p.stmt()
		if err != nil {
			p.report(err)
			p.syncInBlock()
			if p.ts.Offset() == start && !p.ts.Check(Rbrace) {
				p.ts.Advance()
			}
			continue
		}
		b.Stmts = append(b.Stmts, s)
	}
	return b
}

// varDeclRest parses the remainder of a declaration after its type and first
// name. A single name yields a *VarDeclStmt; a comma list yields a
// declaration-list *BlockStmt.
func (p *Parser) varDeclRest(typ Token, first *Name) (Decl, *ParseError) {
	list, err := p.varSpecs(typ, first)
	if err != nil {
		return nil, err
	}
	if _, err := p.want(Semi, "after variable declaration"); err != nil {
		return nil, err
	}
	return p.declGroup(typ, list), nil
}

// varSpecs parses [= Expr] { , Name [= Expr] } for a declaration of type typ.
func (p *Parser) varSpecs(typ Token, first *Name) ([]*VarDeclStmt, *ParseError) {
	var list []*VarDeclStmt
	name := first
	for {
		d := new(VarDeclStmt)
		d.pos = p.posOf(typ)
		d.Type = typ.Kind
		d.Name = name
		if p.ts.Match(Assign) {
			init, err := p.expr()
			if err != nil {
				return nil, err
			}
			d.Init = init
		}
		list = append(list, d)

		if !p.ts.Match(Comma) {
			return list, nil
		}
		n, err := p.name("after ',' in declaration")
		if err != nil {
			return nil, err
		}
		name = n
	}
}

func (p *Parser) declGroup(typ Token, list []*VarDeclStmt) Decl {
	if len(list) == 1 {
		return list[0]
	}
	b := new(BlockStmt)
	b.pos = p.posOf(typ)
	b.DeclList = true
	for _, d := range list {
		b.Stmts = append(b.Stmts, d)
	}
	return b
}

func (p *Parser) name(context string) (*Name, *ParseError) {
	tok := p.ts.Peek()
	if tok.Kind != Ident {
		return nil, p.errorf(ExpectedIdentifier, tok, "expected identifier %s, found %s", context, describe(tok))
	}
	return p.newName(p.ts.Advance()), nil
}

func (p *Parser) newName(tok Token) *Name {
	n := new(Name)
	n.pos = p.posOf(tok)
	n.Value = tok.Text
	return n
}

// ----------------------------------------------------------------------------
// Statements

func (p *Parser) stmt() (Stmt, *ParseError) {
	defer un(trace(p, "Stmt"))

	tok := p.ts.Peek()
	switch tok.Kind {
	case Semi:
		p.ts.Advance()
		s := new(EmptyStmt)
		s.pos = p.posOf(tok)
		return s, nil

	case Fn:
		return nil, p.errorf(UnexpectedToken, tok, "nested function definitions are not allowed")

	case IntKw, FloatKw, StringKw, BoolKw, CharKw:
		p.ts.Advance()
		name, err := p.name("in variable declaration")
		if err != nil {
			return nil, err
		}
		d, err := p.varDeclRest(tok, name)
		if err != nil {
			return nil, err
		}
		return d.(Stmt), nil

	case Return:
		return p.returnStmt()

	case Break:
		p.ts.Advance()
		if _, err := p.want(Semi, "after 'break'"); err != nil {
			return nil, err
		}
		s := new(BreakStmt)
		s.pos = p.posOf(tok)
		return s, nil

	case If:
		return p.ifStmt()

	case While:
		return p.whileStmt()

	case Do:
		return p.doWhileStmt()

	case For:
		return p.forStmt()

	case Lbrace:
		return p.blockStmt()
	}

	x, err := p.expr()
	if err != nil {
		return nil, err
	}
	if _, err := p.want(Semi, "after expression"); err != nil {
		return nil, err
	}
	s := new(ExprStmt)
	s.pos = x.Pos()
	s.X = x
	return s, nil
}

// blockStmt parses a nested "{ ... }". Statements that fail inside it are
// recovered locally; only a missing '}' at end of input fails the block.
func (p *Parser) blockStmt() (*BlockStmt, *ParseError) {
	defer un(trace(p, "BlockStmt"))

	lbrace := p.ts.Advance()
	b := p.blockBody(lbrace)
	if !p.ts.Match(Rbrace) {
		return nil, p.errorf(UnexpectedEOF, p.ts.Peek(), "unterminated block opened at %s", p.posOf(lbrace))
	}
	return b, nil
}

func (p *Parser) returnStmt() (*ReturnStmt, *ParseError) {
	tok := p.ts.Peek()
	if p.fnDepth == 0 {
		return nil, p.errorf(UnexpectedToken, tok, "return outside of function")
	}
	p.ts.Advance()

	s := new(ReturnStmt)
	s.pos = p.posOf(tok)
	if !p.ts.Check(Semi) {
		x, err := p.expr()
		if err != nil {
			return nil, err
		}
		s.Result = x
	}
	if _, err := p.want(Semi, "after return"); err != nil {
		return nil, err
	}
	return s, nil
}

// header parses "( Expr )" after a control keyword.
func (p *Parser) header(keyword string) (Expr, *ParseError) {
	if _, err := p.want(Lparen, "after '"+keyword+"'"); err != nil {
		return nil, err
	}
	cond, err := p.expr()
	if err != nil {
		return nil, err
	}
	if _, err := p.want(Rparen, "after "+keyword+" condition"); err != nil {
		return nil, err
	}
	return cond, nil
}

// ifStmt parses if ( Expr ) Stmt [ else ( IfStmt | Stmt ) ].
func (p *Parser) ifStmt() (*IfStmt, *ParseError) {
	defer un(trace(p, "IfStmt"))

	s := new(IfStmt)
	s.pos = p.posOf(p.ts.Advance())

	cond, err := p.header("if")
	if err != nil {
		return nil, err
	}
	s.Cond = cond

	if s.Then, err = p.stmt(); err != nil {
		return nil, err
	}
	if p.ts.Match(Else) {
		if p.ts.Check(If) {
			s.Else, err = p.ifStmt()
		} else {
			s.Else, err = p.stmt()
		}
		if err != nil {
			return nil, err
		}
	}
	return s, nil
}

func (p *Parser) whileStmt() (*WhileStmt, *ParseError) {
	defer un(trace(p, "WhileStmt"))

	s := new(WhileStmt)
	s.pos = p.posOf(p.ts.Advance())

	cond, err := p.header("while")
	if err != nil {
		return nil, err
	}
	s.Cond = cond
	if s.Body, err = p.stmt(); err != nil {
		return nil, err
	}
	return s, nil
}

func (p *Parser) doWhileStmt() (*DoWhileStmt, *ParseError) {
	defer un(trace(p, "DoWhileStmt"))

	s := new(DoWhileStmt)
	s.pos = p.posOf(p.ts.Advance())

	body, err := p.stmt()
	if err != nil {
		return nil, err
	}
	s.Body = body
	if _, err := p.want(While, "after 'do' body"); err != nil {
		return nil, err
	}
	if s.Cond, err = p.header("while"); err != nil {
		return nil, err
	}
	if _, err := p.want(Semi, "after do-while"); err != nil {
		return nil, err
	}
	return s, nil
}

// forStmt parses for ( [Init] ; [Cond] ; [Post] ) Stmt where Init is a
// declaration or an expression.
func (p *Parser) forStmt() (*ForStmt, *ParseError) {
	defer un(trace(p, "ForStmt"))

	s := new(ForStmt)
	s.pos = p.posOf(p.ts.Advance())

	if _, err := p.want(Lparen, "after 'for'"); err != nil {
		return nil, err
	}

	switch tok := p.ts.Peek(); {
	case tok.Kind == Semi:
	case tok.Kind.IsTypeKeyword():
		p.ts.Advance()
		name, err := p.name("in for-init")
		if err != nil {
			return nil, err
		}
		list, err := p.varSpecs(tok, name)
		if err != nil {
			return nil, err
		}
		s.Init = p.declGroup(tok, list).(Stmt)
	default:
		x, err := p.expr()
		if err != nil {
			return nil, err
		}
		init := new(ExprStmt)
		init.pos = x.Pos()
		init.X = x
		s.Init = init
	}
	if _, err := p.want(Semi, "in for loop after init"); err != nil {
		return nil, err
	}

	if !p.ts.Check(Semi) {
		cond, err := p.expr()
		if err != nil {
			return nil, err
		}
		s.Cond = cond
	}
	if _, err := p.want(Semi, "in for loop after condition"); err != nil {
		return nil, err
	}

	if !p.ts.Check(Rparen) {
		post, err := p.expr()
		if err != nil {
			return nil, err
		}
		s.Post = post
	}
	if _, err := p.want(Rparen, "to close for loop header"); err != nil {
		return nil, err
	}

	body, err := p.stmt()
	if err != nil {
		return nil, err
	}
	s.Body = body
	return s, nil
}

// ----------------------------------------------------------------------------
// Expressions

func (p *Parser) expr() (Expr, *ParseError) {
	return p.binaryExpr(PrecAssign)
}

// binaryExpr parses an expression whose operators all bind at least as
// tightly as minPrec. Left-associative operators parse their right operand at
// prec+1, right-associative ones at prec.
func (p *Parser) binaryExpr(minPrec int) (Expr, *ParseError) {
	defer un(trace(p, "BinaryExpr"))

	// A parenthesized left operand starts at its '('.
	start := p.posOf(p.ts.Peek())
	x, err := p.unaryExpr()
	if err != nil {
		return nil, err
	}

	for {
		opTok := p.ts.Peek()
		info, ok := LookupOp(opTok.Kind)
		if !ok || info.Prec < minPrec {
			return x, nil
		}
		p.ts.Advance()

		if opTok.Kind.IsAssign() && !isAssignable(x) {
			return nil, p.errorf(UnexpectedToken, opTok, "left-hand side of '%s' is not assignable", info.Symbol)
		}

		next := info.Prec + 1
		if info.Assoc == Right {
			next = info.Prec
		}
		y, err := p.binaryExpr(next)
		if err != nil {
			return nil, err
		}

		switch opTok.Kind {
		case AddAssign:
			x = binary(start, Assign, x, binary(start, Add, x, y))
		case SubAssign:
			x = binary(start, Assign, x, binary(start, Sub, x, y))
		default:
			x = binary(start, opTok.Kind, x, y)
		}
	}
}

func binary(pos Pos, op Kind, x, y Expr) *BinaryExpr {
	b := new(BinaryExpr)
	b.pos = pos
	b.Op = op
	b.X = x
	b.Y = y
	return b
}

func isAssignable(x Expr) bool {
	switch x.(type) {
	case *Name, *IndexExpr:
		return true
	}
	return false
}

// unaryExpr parses a prefix operator applied to a unary expression, or a
// primary expression with its postfix trail.
func (p *Parser) unaryExpr() (Expr, *ParseError) {
	tok := p.ts.Peek()
	switch tok.Kind {
	case Not, Sub, Add, Inc, Dec:
		p.ts.Advance()
		x, err := p.binaryExpr(PrecUnary)
		if err != nil {
			if err.Kind == ExpectedExpr {
				err.Msg = fmt.Sprintf("expected expression after unary '%s', found %s", tok.Kind, describe(err.Token))
			}
			return nil, err
		}
		u := new(UnaryExpr)
		u.pos = p.posOf(tok)
		u.Op = tok.Kind
		u.X = x
		return u, nil
	}
	return p.primaryExpr()
}

func (p *Parser) primaryExpr() (Expr, *ParseError) {
	start := p.posOf(p.ts.Peek())
	x, err := p.operand()
	if err != nil {
		return nil, err
	}
	return p.postfixTrail(x, start)
}

// operand parses a literal, a name or a parenthesized expression. A type
// keyword is never an operand.
func (p *Parser) operand() (Expr, *ParseError) {
	tok := p.ts.Peek()
	switch tok.Kind {
	case IntLit, FloatLit, StringLit, CharLit, BoolLit:
		p.ts.Advance()
		lit := new(BasicLit)
		lit.pos = p.posOf(tok)
		lit.Kind = tok.Kind
		lit.Value = tok.Text
		return lit, nil

	case Ident:
		return p.newName(p.ts.Advance()), nil

	case Lparen:
		p.ts.Advance()
		x, err := p.expr()
		if err != nil {
			return nil, err
		}
		if _, err := p.want(Rparen, "to close parenthesized expression"); err != nil {
			return nil, err
		}
		return x, nil
	}
	return nil, p.errorf(ExpectedExpr, tok, "expected expression, found %s", describe(tok))
}

// postfixTrail applies any sequence of calls, index operations and
// postfix ++/-- to x, which starts at start.
func (p *Parser) postfixTrail(x Expr, start Pos) (Expr, *ParseError) {
	for {
		tok := p.ts.Peek()
		switch tok.Kind {
		case Lparen:
			fun, ok := x.(*Name)
			if !ok {
				return nil, p.errorf(UnexpectedToken, tok, "call of non-function expression")
			}
			p.ts.Advance()
			args, err := p.argList()
			if err != nil {
				return nil, err
			}
			call := new(CallExpr)
			call.pos = start
			call.Fun = fun
			call.Args = args
			x = call

		case Lbrack:
			p.ts.Advance()
			index, err := p.expr()
			if err != nil {
				return nil, err
			}
			if _, err := p.want(Rbrack, "after index expression"); err != nil {
				return nil, err
			}
			ix := new(IndexExpr)
			ix.pos = start
			ix.X = x
			ix.Index = index
			x = ix

		case Inc, Dec:
			p.ts.Advance()
			pf := new(PostfixExpr)
			pf.pos = start
			pf.Op = tok.Kind
			pf.X = x
			x = pf

		default:
			return x, nil
		}
	}
}

// argList parses Args ")" after the opening parenthesis of a call.
func (p *Parser) argList() ([]Expr, *ParseError) {
	var args []Expr
	if p.ts.Match(Rparen) {
		return args, nil
	}
	for {
		arg, err := p.expr()
		if err != nil {
			return nil, err
		}
		args = append(args, arg)
		if p.ts.Match(Comma) {
			continue
		}
		if p.ts.Match(Rparen) {
			return args, nil
		}
		return nil, p.errorf(UnexpectedToken, p.ts.Peek(), "expected ',' or ')' in argument list, found %s", describe(p.ts.Peek()))
	}
}

// ----------------------------------------------------------------------------
// Tracing

func (p *Parser) printTrace(msg string) {
	fmt.Fprintf(p.Trace, "%5d:%3d: %s%s\n", p.ts.Peek().Line, p.ts.Peek().Col, strings.Repeat(". ", p.indent), msg)
}

func trace(p *Parser, msg string) *Parser {
	if p.Trace != nil {
		p.printTrace(msg + " (")
		p.indent++
	}
	return p
}

func un(p *Parser) {
	if p.Trace != nil {
		p.indent--
		p.printTrace(")")
	}
}

// ----------------------------------------------------------------------------
// Error lists

// ErrorList is a list of parse errors in source order.
type ErrorList []*ParseError

func (l ErrorList) Error() string {
	switch len(l) {
	case 0:
		return "no errors"
	case 1:
		return l[0].Error()
	}
	return fmt.Sprintf("%s (and %d more errors)", l[0], len(l)-1)
}

// Err returns l as an error, or nil if l is empty.
func (l ErrorList) Err() error {
	if len(l) == 0 {
		return nil
	}
	return l
}
