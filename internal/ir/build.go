package ir

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/you-not-fish/minic/internal/rtabi"
	"github.com/you-not-fish/minic/internal/syntax"
)

// runtimeHelpers names the functions that implement operators without an
// opcode of their own. Each is called with both operands as parameters.
var runtimeHelpers = map[syntax.Kind]string{
	syntax.And: rtabi.FnBitAnd,
	syntax.Or:  rtabi.FnBitOr,
	syntax.Xor: rtabi.FnBitXor,
	syntax.Shl: rtabi.FnShl,
	syntax.Shr: rtabi.FnShr,
	syntax.Pow: rtabi.FnPow,
}

var binaryOps = map[syntax.Kind]Op{
	syntax.Add:    OpAdd,
	syntax.Sub:    OpSub,
	syntax.Mul:    OpMul,
	syntax.Div:    OpDiv,
	syntax.Eql:    OpEq,
	syntax.Neq:    OpNe,
	syntax.Lss:    OpLt,
	syntax.Leq:    OpLe,
	syntax.Gtr:    OpGt,
	syntax.Geq:    OpGe,
	syntax.AndAnd: OpLAnd,
	syntax.OrOr:   OpLOr,
}

// builder holds the state of one Generate call.
type builder struct {
	instrs []Instr

	ntemps  int // next temporary is "t<ntemps>"
	nlabels int // next label is "L<nlabels>"

	breakTargets []string // end label of each enclosing loop, innermost last
}

// Generate lowers a checked program to a flat instruction list.
// Global initializers and functions are emitted in source order;
// prototypes produce no code. Input that did not pass both checkers may
// produce a listing that does not Verify.
func Generate(prog *syntax.Program) []Instr {
	b := new(builder)
	for _, item := range prog.Items {
		switch d := item.(type) {
		case *syntax.FuncDecl:
			if d.Body != nil {
				b.funcDecl(d)
			}
		case *syntax.VarDeclStmt:
			b.varDecl(d)
		case *syntax.BlockStmt:
			b.stmt(d)
		}
	}
	return b.instrs
}

func (b *builder) newTemp() string {
	t := "t" + strconv.Itoa(b.ntemps)
	b.ntemps++
	return t
}

// varName returns the IR spelling of a program variable. Names that would
// read as a temporary, or as an already renamed one, gain a leading
// underscore: t1 becomes _t1 and _t1 becomes __t1.
func varName(name string) string {
	if isTemp(strings.TrimLeft(name, "_")) {
		return "_" + name
	}
	return name
}

func (b *builder) newLabel() string {
	l := "L" + strconv.Itoa(b.nlabels)
	b.nlabels++
	return l
}

func (b *builder) emit(op Op, result, arg1, arg2 string, pos syntax.Pos) {
	b.instrs = append(b.instrs, Instr{Op: op, Result: result, Arg1: arg1, Arg2: arg2, Line: pos.Line()})
}

func (b *builder) label(l string, pos syntax.Pos) {
	b.emit(OpLabel, l, "", "", pos)
}

func (b *builder) jump(op Op, target, cond string, pos syntax.Pos) {
	b.emit(op, target, cond, "", pos)
}

// funcDecl lowers a function definition.
func (b *builder) funcDecl(d *syntax.FuncDecl) {
	pos := d.Pos()
	b.label("func_"+d.Name.Value, pos)
	for _, p := range d.Params {
		b.emit(OpParam, varName(p.Name.Value), "", "", pos)
	}
	b.stmts(d.Body.Stmts)

	if n := len(b.instrs); n == 0 || b.instrs[n-1].Op != OpRet {
		if v, ok := zeroValue(d.Result); ok {
			b.emit(OpRet, v, "", "", pos)
		}
	}
}

// zeroValue returns the literal an implicit return yields for a result type.
func zeroValue(k syntax.Kind) (string, bool) {
	switch k {
	case syntax.IntKw:
		return "0", true
	case syntax.FloatKw:
		return "0.0", true
	case syntax.BoolKw:
		return "false", true
	case syntax.StringKw:
		return `""`, true
	case syntax.CharKw:
		return `'\x00'`, true
	}
	return "", false
}

func (b *builder) stmts(list []syntax.Stmt) {
	for _, s := range list {
		b.stmt(s)
	}
}

func (b *builder) stmt(s syntax.Stmt) {
	switch s := s.(type) {
	case *syntax.EmptyStmt:

	case *syntax.ExprStmt:
		b.expr(s.X)

	case *syntax.VarDeclStmt:
		b.varDecl(s)

	case *syntax.BlockStmt:
		b.stmts(s.Stmts)

	case *syntax.IfStmt:
		b.ifStmt(s)

	case *syntax.WhileStmt:
		b.whileStmt(s)

	case *syntax.DoWhileStmt:
		b.doWhileStmt(s)

	case *syntax.ForStmt:
		b.forStmt(s)

	case *syntax.BreakStmt:
		if n := len(b.breakTargets); n > 0 {
			b.jump(OpJump, b.breakTargets[n-1], "", s.Pos())
		}

	case *syntax.ReturnStmt:
		v := ""
		if s.Result != nil {
			v = b.expr(s.Result)
		}
		b.emit(OpRet, v, "", "", s.Pos())

	case *syntax.FuncDecl:
		// Local functions are rejected by the checkers.

	default:
		panic(fmt.Sprintf("ir: unexpected statement %T", s))
	}
}

func (b *builder) varDecl(d *syntax.VarDeclStmt) {
	if d.Init != nil {
		v := b.expr(d.Init)
		b.emit(OpAssign, varName(d.Name.Value), v, "", d.Pos())
	}
}

// ifStmt lowers
//
//	ifFalse cond goto Lfalse
//	goto Ltrue
//	Ltrue: then; [goto Lend]
//	Lfalse: [else; Lend:]
func (b *builder) ifStmt(s *syntax.IfStmt) {
	pos := s.Pos()
	cond := b.expr(s.Cond)
	trueLabel, falseLabel, endLabel := b.newLabel(), b.newLabel(), b.newLabel()

	b.jump(OpJumpFalse, falseLabel, cond, pos)
	b.jump(OpJump, trueLabel, "", pos)

	b.label(trueLabel, pos)
	b.stmt(s.Then)
	if s.Else != nil {
		b.jump(OpJump, endLabel, "", pos)
	}

	b.label(falseLabel, pos)
	if s.Else != nil {
		b.stmt(s.Else)
		b.label(endLabel, pos)
	}
}

func (b *builder) pushBreak(l string) { b.breakTargets = append(b.breakTargets, l) }
func (b *builder) popBreak()          { b.breakTargets = b.breakTargets[:len(b.breakTargets)-1] }

func (b *builder) whileStmt(s *syntax.WhileStmt) {
	pos := s.Pos()
	start, body, end := b.newLabel(), b.newLabel(), b.newLabel()
	b.pushBreak(end)
	defer b.popBreak()

	b.label(start, pos)
	cond := b.expr(s.Cond)
	b.jump(OpJumpFalse, end, cond, pos)
	b.jump(OpJump, body, "", pos)

	b.label(body, pos)
	b.stmt(s.Body)
	b.jump(OpJump, start, "", pos)

	b.label(end, pos)
}

// doWhileStmt runs the body once before the first test; the loop repeats
// while the condition holds.
func (b *builder) doWhileStmt(s *syntax.DoWhileStmt) {
	pos := s.Pos()
	body, test, end := b.newLabel(), b.newLabel(), b.newLabel()
	b.pushBreak(end)
	defer b.popBreak()

	b.label(body, pos)
	b.stmt(s.Body)

	b.label(test, pos)
	cond := b.expr(s.Cond)
	b.jump(OpJumpTrue, body, cond, pos)

	b.label(end, pos)
}

func (b *builder) forStmt(s *syntax.ForStmt) {
	pos := s.Pos()
	start, body, post, end := b.newLabel(), b.newLabel(), b.newLabel(), b.newLabel()
	b.pushBreak(end)
	defer b.popBreak()

	if s.Init != nil {
		b.stmt(s.Init)
	}

	b.label(start, pos)
	if s.Cond != nil {
		cond := b.expr(s.Cond)
		b.jump(OpJumpFalse, end, cond, pos)
	}
	b.jump(OpJump, body, "", pos)

	b.label(body, pos)
	b.stmt(s.Body)
	b.jump(OpJump, post, "", pos)

	b.label(post, pos)
	if s.Post != nil {
		b.expr(s.Post)
	}
	b.jump(OpJump, start, "", pos)

	b.label(end, pos)
}

// expr lowers x and returns the name holding its value: a temporary, or
// the variable itself for a name or the target of an assignment.
func (b *builder) expr(x syntax.Expr) string {
	pos := x.Pos()
	switch x := x.(type) {
	case *syntax.BasicLit:
		t := b.newTemp()
		b.emit(OpAssign, t, literal(x), "", pos)
		return t

	case *syntax.Name:
		return varName(x.Value)

	case *syntax.UnaryExpr:
		v := b.expr(x.X)
		t := b.newTemp()
		switch x.Op {
		case syntax.Not:
			b.emit(OpLNot, t, v, "", pos)
		case syntax.Sub:
			b.emit(OpSub, t, "0", v, pos)
		case syntax.Inc:
			b.emit(OpAdd, t, v, "1", pos)
			b.emit(OpAssign, v, t, "", pos)
		case syntax.Dec:
			b.emit(OpSub, t, v, "1", pos)
			b.emit(OpAssign, v, t, "", pos)
		default:
			b.emit(OpAssign, t, v, "", pos)
		}
		return t

	case *syntax.PostfixExpr:
		v := b.expr(x.X)
		old := b.newTemp()
		b.emit(OpAssign, old, v, "", pos)
		op := OpAdd
		if x.Op == syntax.Dec {
			op = OpSub
		}
		t := b.newTemp()
		b.emit(op, t, v, "1", pos)
		b.emit(OpAssign, v, t, "", pos)
		return old

	case *syntax.BinaryExpr:
		l := b.expr(x.X)
		r := b.expr(x.Y)
		if x.Op == syntax.Assign {
			b.emit(OpAssign, l, r, "", pos)
			return l
		}
		if helper, ok := runtimeHelpers[x.Op]; ok {
			return b.call(helper, []string{l, r}, pos)
		}
		op, ok := binaryOps[x.Op]
		if !ok {
			panic(fmt.Sprintf("ir: unexpected binary operator %s", x.Op))
		}
		t := b.newTemp()
		b.emit(op, t, l, r, pos)
		return t

	case *syntax.CallExpr:
		args := make([]string, len(x.Args))
		for i, a := range x.Args {
			args[i] = b.expr(a)
		}
		return b.call(x.Fun.Value, args, pos)

	case *syntax.IndexExpr:
		// Address arithmetic placeholder: there are no array types yet.
		base := b.expr(x.X)
		idx := b.expr(x.Index)
		t := b.newTemp()
		b.emit(OpAdd, t, base, idx, pos)
		return t

	default:
		panic(fmt.Sprintf("ir: unexpected expression %T", x))
	}
}

// call emits one PARAM per argument followed by the CALL.
func (b *builder) call(fn string, args []string, pos syntax.Pos) string {
	for _, a := range args {
		b.emit(OpParam, a, "", "", pos)
	}
	t := b.newTemp()
	b.emit(OpCall, t, fn, "", pos)
	return t
}

// literal renders a literal operand.
func literal(lit *syntax.BasicLit) string {
	switch lit.Kind {
	case syntax.StringLit:
		return strconv.Quote(lit.Value)
	case syntax.CharLit:
		r := []rune(lit.Value)
		if len(r) == 0 {
			return `'\x00'`
		}
		return strconv.QuoteRune(r[0])
	}
	return lit.Value
}
