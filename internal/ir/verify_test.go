package ir

import (
	"strings"
	"testing"

	"github.com/nalgeon/be"
)

func TestVerify(t *testing.T) {
	tests := []struct {
		name   string
		instrs []Instr
		want   string // substring of the error, or "" for valid
	}{
		{"empty", nil, ""},
		{"valid", []Instr{
			{Op: OpLabel, Result: "func_f"},
			{Op: OpAssign, Result: "t0", Arg1: "1"},
			{Op: OpJumpFalse, Result: "L0", Arg1: "t0"},
			{Op: OpLabel, Result: "L0"},
			{Op: OpRet, Result: "t0"},
		}, ""},
		{"duplicate label", []Instr{
			{Op: OpLabel, Result: "L0"},
			{Op: OpLabel, Result: "L0"},
		}, "label L0 already defined at 0"},
		{"undefined target", []Instr{
			{Op: OpJump, Result: "L9"},
		}, "jump to undefined label L9"},
		{"backward jump", []Instr{
			{Op: OpLabel, Result: "L0"},
			{Op: OpJump, Result: "L0"},
		}, ""},
		{"temp before definition", []Instr{
			{Op: OpAdd, Result: "t1", Arg1: "t0", Arg2: "x"},
			{Op: OpAssign, Result: "t0", Arg1: "1"},
		}, "temporary t0 used before definition"},
		{"param of undefined temp", []Instr{
			{Op: OpParam, Result: "t3"},
		}, "temporary t3 used before definition"},
		{"missing result", []Instr{
			{Op: OpMul, Arg1: "a", Arg2: "b"},
		}, "MUL without a result"},
		{"missing operand", []Instr{
			{Op: OpSub, Result: "t0", Arg1: "a"},
		}, "missing operand"},
		{"call without callee", []Instr{
			{Op: OpCall, Result: "t0"},
		}, "call without a callee"},
		{"invalid opcode", []Instr{
			{Op: Op(99)},
		}, "invalid opcode 99"},
		{"function params are definitions", []Instr{
			{Op: OpLabel, Result: "func_f"},
			{Op: OpParam, Result: "t1"},
			{Op: OpParam, Result: "t2"},
			{Op: OpAdd, Result: "t3", Arg1: "t1", Arg2: "t2"},
			{Op: OpRet, Result: "t3"},
		}, ""},
		{"call params are uses", []Instr{
			{Op: OpLabel, Result: "func_f"},
			{Op: OpAssign, Result: "t0", Arg1: "1"},
			{Op: OpParam, Result: "t5"},
			{Op: OpCall, Result: "t6", Arg1: "g"},
		}, "temporary t5 used before definition"},
		{"loop label ends the header", []Instr{
			{Op: OpLabel, Result: "func_f"},
			{Op: OpLabel, Result: "L0"},
			{Op: OpParam, Result: "t4"},
		}, "temporary t4 used before definition"},
		{"variables are not temps", []Instr{
			{Op: OpAssign, Result: "x", Arg1: "tmp"},
			{Op: OpAssign, Result: "y", Arg1: "t"},
		}, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Verify(tt.instrs)
			if tt.want == "" {
				be.Err(t, err, nil)
				return
			}
			be.True(t, err != nil)
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("Verify() = %v, want error containing %q", err, tt.want)
			}
		})
	}
}

func TestOpNames(t *testing.T) {
	for op := OpAssign; op < opCount; op++ {
		got, ok := LookupOp(op.String())
		be.True(t, ok)
		be.Equal(t, got, op)
	}
	_, ok := LookupOp("NOPE")
	be.True(t, !ok)
	be.Equal(t, Op(-3).String(), "unknown")
	be.Equal(t, OpJumpFalse.String(), "JUMP_FALSE")
}

func TestInstrString(t *testing.T) {
	tests := []struct {
		in   Instr
		want string
	}{
		{Instr{Op: OpAssign, Result: "x", Arg1: "t0"}, "x = t0"},
		{Instr{Op: OpDiv, Result: "t1", Arg1: "a", Arg2: "b"}, "t1 = a / b"},
		{Instr{Op: OpGe, Result: "t1", Arg1: "a", Arg2: "b"}, "t1 = a >= b"},
		{Instr{Op: OpLOr, Result: "t1", Arg1: "a", Arg2: "b"}, "t1 = a || b"},
		{Instr{Op: OpLNot, Result: "t2", Arg1: "c"}, "t2 = !c"},
		{Instr{Op: OpJump, Result: "L3"}, "goto L3"},
		{Instr{Op: OpJumpTrue, Result: "L1", Arg1: "t0"}, "if t0 goto L1"},
		{Instr{Op: OpJumpFalse, Result: "L2", Arg1: "c"}, "ifFalse c goto L2"},
		{Instr{Op: OpCall, Result: "t5", Arg1: "g"}, "t5 = call g"},
		{Instr{Op: OpRet}, "return"},
		{Instr{Op: OpParam, Result: "t1"}, "param t1"},
		{Instr{Op: OpLabel, Result: "L4"}, "L4:"},
		{Instr{Op: OpInvalid, Result: "a", Arg1: "b", Arg2: "c"}, "INVALID a, b, c"},
	}
	for _, tt := range tests {
		be.Equal(t, tt.in.String(), tt.want)
	}
}

func TestFprintTable(t *testing.T) {
	var sb strings.Builder
	FprintTable(&sb, []Instr{{Op: OpAdd, Result: "t0", Arg1: "a", Arg2: "b", Line: 3}})
	be.Equal(t, sb.String(), "   3  ADD        t0           a            b\n")
}
