package ir

import (
	"fmt"
	"io"
	"strings"
)

// Instr is one three-address instruction. Line is the source line of the
// construct it was lowered from.
type Instr struct {
	Op     Op
	Result string
	Arg1   string
	Arg2   string
	Line   uint32
}

// String renders in as one line of three-address text, for example
// "t0 = a + b", "ifFalse t1 goto L2" or "L2:".
func (in Instr) String() string {
	switch in.Op {
	case OpAssign:
		return in.Result + " = " + in.Arg1
	case OpLNot:
		return in.Result + " = !" + in.Arg1
	case OpJump:
		return "goto " + in.Result
	case OpJumpTrue:
		return "if " + in.Arg1 + " goto " + in.Result
	case OpJumpFalse:
		return "ifFalse " + in.Arg1 + " goto " + in.Result
	case OpCall:
		return in.Result + " = call " + in.Arg1
	case OpRet:
		if in.Result == "" {
			return "return"
		}
		return "return " + in.Result
	case OpParam:
		return "param " + in.Result
	case OpLabel:
		return in.Result + ":"
	}
	if info := in.Op.Info(); info.Symbol != "" && info.NArgs == 2 {
		return in.Result + " = " + in.Arg1 + " " + info.Symbol + " " + in.Arg2
	}
	return fmt.Sprintf("%s %s, %s, %s", in.Op, in.Result, in.Arg1, in.Arg2)
}

// Fprint writes one instruction per line to w. Instructions other than
// labels are indented, so function and jump labels stand out.
func Fprint(w io.Writer, instrs []Instr) {
	for _, in := range instrs {
		if in.Op == OpLabel {
			fmt.Fprintf(w, "%s\n", in)
		} else {
			fmt.Fprintf(w, "  %s\n", in)
		}
	}
}

// Sprint returns the Fprint rendering of instrs as a string.
func Sprint(instrs []Instr) string {
	var sb strings.Builder
	Fprint(&sb, instrs)
	return sb.String()
}

// FprintTable writes instrs as aligned columns: line, opcode, result and
// operands.
func FprintTable(w io.Writer, instrs []Instr) {
	for _, in := range instrs {
		fmt.Fprintf(w, "%4d  %-10s %-12s %-12s %s\n", in.Line, in.Op, in.Result, in.Arg1, in.Arg2)
	}
}
