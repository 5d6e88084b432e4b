package ir

import (
	"fmt"
	"strings"
)

// Verify checks the structural integrity of an instruction list.
// It returns an error describing all violations found, or nil if valid.
//
// Names of the form t<N> are taken to be temporaries; Generate renames
// program variables so that none of them has that form. The PARAMs
// directly after a function label declare the function's parameters.
func Verify(instrs []Instr) error {
	var errs []string

	add := func(i int, format string, args ...interface{}) {
		errs = append(errs, fmt.Sprintf("%d (%s): %s", i, instrs[i], fmt.Sprintf(format, args...)))
	}

	// 1. Labels are defined at most once.
	labels := make(map[string]int)
	for i, in := range instrs {
		if in.Op != OpLabel {
			continue
		}
		if in.Result == "" {
			add(i, "label without a name")
			continue
		}
		if prev, dup := labels[in.Result]; dup {
			add(i, "label %s already defined at %d", in.Result, prev)
			continue
		}
		labels[in.Result] = i
	}

	defined := make(map[string]bool)
	header := false
	use := func(i int, name string) {
		if isTemp(name) && !defined[name] {
			add(i, "temporary %s used before definition", name)
		}
	}

	for i, in := range instrs {
		info := in.Op.Info()

		// 2. Opcode is known.
		if in.Op <= OpInvalid || in.Op >= opCount {
			add(i, "invalid opcode %d", int(in.Op))
			continue
		}

		// 3. Operands the opcode reads are present and defined.
		ops := []string{in.Arg1, in.Arg2}[:info.NArgs]
		if in.Op == OpCall {
			ops = nil
			if in.Arg1 == "" {
				add(i, "call without a callee")
			}
		}
		for _, a := range ops {
			if a == "" {
				add(i, "missing operand")
				continue
			}
			use(i, a)
		}
		if in.Op == OpParam && in.Result == "" {
			add(i, "param without a value")
		}
		switch {
		case in.Op == OpLabel:
			header = strings.HasPrefix(in.Result, "func_")
		case in.Op == OpParam && header:
			defined[in.Result] = true
		case in.Op == OpParam || in.Op == OpRet:
			header = false
			use(i, in.Result)
		default:
			header = false
		}

		// 4. Jump targets exist.
		if info.Jump {
			if in.Result == "" {
				add(i, "jump without a target")
			} else if _, ok := labels[in.Result]; !ok {
				add(i, "jump to undefined label %s", in.Result)
			}
		}

		// 5. Defining instructions name their result.
		if info.Defines {
			if in.Result == "" {
				add(i, "%s without a result", in.Op)
			}
			defined[in.Result] = true
		}
	}

	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("IR verification failed:\n  %s", strings.Join(errs, "\n  "))
}

// isTemp reports whether name has the form t<N>.
func isTemp(name string) bool {
	if len(name) < 2 || name[0] != 't' {
		return false
	}
	for _, c := range name[1:] {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}
