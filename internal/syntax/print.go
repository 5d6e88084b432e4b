package syntax

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Fprint writes an indented, one-node-per-line dump of the AST to w.
func Fprint(w io.Writer, node Node) {
	p := &printer{w: w}
	p.print(node)
}

type printer struct {
	w      io.Writer
	indent int
}

func (p *printer) printf(format string, args ...interface{}) {
	fmt.Fprintf(p.w, "%s%s", strings.Repeat("  ", p.indent), fmt.Sprintf(format, args...))
}

// child prints n one level deeper under the given label.
func (p *printer) child(label string, n Node) {
	p.printf("%s:\n", label)
	p.indent++
	p.print(n)
	p.indent--
}

func (p *printer) print(node Node) {
	if node == nil {
		return
	}

	switch n := node.(type) {
	case *Program:
		p.printf("Program %s\n", n.pos)
		p.indent++
		for _, d := range n.Items {
			p.print(d)
		}
		p.indent--

	case *FuncDecl:
		kind := "FuncDecl"
		if n.IsProto() {
			kind = "FuncProto"
		}
		p.printf("%s %s %s %s\n", kind, n.Result, n.Name.Value, n.pos)
		p.indent++
		for _, par := range n.Params {
			p.print(par)
		}
		if n.Body != nil {
			p.print(n.Body)
		}
		p.indent--

	case *Param:
		if n.Synthetic {
			p.printf("Param %s %s (synthesized)\n", n.Type, n.Name.Value)
		} else {
			p.printf("Param %s %s\n", n.Type, n.Name.Value)
		}

	case *Name:
		p.printf("Name %s %s\n", n.Value, n.pos)

	case *BasicLit:
		p.printf("BasicLit %s %s %s\n", n.Kind, litString(n), n.pos)

	case *UnaryExpr:
		p.printf("UnaryExpr %s %s\n", n.Op, n.pos)
		p.indent++
		p.print(n.X)
		p.indent--

	case *PostfixExpr:
		p.printf("PostfixExpr %s %s\n", n.Op, n.pos)
		p.indent++
		p.print(n.X)
		p.indent--

	case *BinaryExpr:
		p.printf("BinaryExpr %s %s\n", n.Op, n.pos)
		p.indent++
		p.print(n.X)
		p.print(n.Y)
		p.indent--

	case *CallExpr:
		p.printf("CallExpr %s %s\n", n.Fun.Value, n.pos)
		p.indent++
		for _, a := range n.Args {
			p.print(a)
		}
		p.indent--

	case *IndexExpr:
		p.printf("IndexExpr %s\n", n.pos)
		p.indent++
		p.print(n.X)
		p.print(n.Index)
		p.indent--

	case *EmptyStmt:
		p.printf("EmptyStmt %s\n", n.pos)

	case *BreakStmt:
		p.printf("BreakStmt %s\n", n.pos)

	case *ExprStmt:
		p.printf("ExprStmt %s\n", n.pos)
		p.indent++
		p.print(n.X)
		p.indent--

	case *VarDeclStmt:
		p.printf("VarDecl %s %s %s\n", n.Type, n.Name.Value, n.pos)
		if n.Init != nil {
			p.indent++
			p.print(n.Init)
			p.indent--
		}

	case *BlockStmt:
		if n.DeclList {
			p.printf("DeclList %s\n", n.pos)
		} else {
			p.printf("BlockStmt %s\n", n.pos)
		}
		p.indent++
		for _, s := range n.Stmts {
			p.print(s)
		}
		p.indent--

	case *IfStmt:
		p.printf("IfStmt %s\n", n.pos)
		p.indent++
		p.child("Cond", n.Cond)
		p.child("Then", n.Then)
		if n.Else != nil {
			p.child("Else", n.Else)
		}
		p.indent--

	case *WhileStmt:
		p.printf("WhileStmt %s\n", n.pos)
		p.indent++
		p.child("Cond", n.Cond)
		p.child("Body", n.Body)
		p.indent--

	case *DoWhileStmt:
		p.printf("DoWhileStmt %s\n", n.pos)
		p.indent++
		p.child("Body", n.Body)
		p.child("Cond", n.Cond)
		p.indent--

	case *ForStmt:
		p.printf("ForStmt %s\n", n.pos)
		p.indent++
		if n.Init != nil {
			p.child("Init", n.Init)
		}
		if n.Cond != nil {
			p.child("Cond", n.Cond)
		}
		if n.Post != nil {
			p.child("Post", n.Post)
		}
		p.child("Body", n.Body)
		p.indent--

	case *ReturnStmt:
		p.printf("ReturnStmt %s\n", n.pos)
		if n.Result != nil {
			p.indent++
			p.print(n.Result)
			p.indent--
		}

	default:
		p.printf("<unknown node %T>\n", n)
	}
}

func litString(lit *BasicLit) string {
	switch lit.Kind {
	case StringLit:
		return strconv.Quote(lit.Value)
	case CharLit:
		return strconv.QuoteRune([]rune(lit.Value + "\x00")[0])
	}
	return lit.Value
}

// ExprString returns a compact, fully parenthesized rendering of x, for
// example "(a + (b * c))". Desugared compound assignments show as "=".
func ExprString(x Expr) string {
	var b strings.Builder
	writeExpr(&b, x)
	return b.String()
}

func writeExpr(b *strings.Builder, x Expr) {
	switch x := x.(type) {
	case nil:
		b.WriteString("<nil>")
	case *Name:
		b.WriteString(x.Value)
	case *BasicLit:
		b.WriteString(litString(x))
	case *UnaryExpr:
		b.WriteString(x.Op.String())
		writeExpr(b, x.X)
	case *PostfixExpr:
		writeExpr(b, x.X)
		b.WriteString(x.Op.String())
	case *BinaryExpr:
		b.WriteByte('(')
		writeExpr(b, x.X)
		b.WriteString(" " + x.Op.String() + " ")
		writeExpr(b, x.Y)
		b.WriteByte(')')
	case *CallExpr:
		b.WriteString(x.Fun.Value)
		b.WriteByte('(')
		for i, a := range x.Args {
			if i > 0 {
				b.WriteString(", ")
			}
			writeExpr(b, a)
		}
		b.WriteByte(')')
	case *IndexExpr:
		writeExpr(b, x.X)
		b.WriteByte('[')
		writeExpr(b, x.Index)
		b.WriteByte(']')
	default:
		fmt.Fprintf(b, "<%T>", x)
	}
}
