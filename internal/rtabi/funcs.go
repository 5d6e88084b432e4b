// Package rtabi names the runtime functions that generated IR calls.
// A back end or interpreter consuming the IR must provide each of them.
package rtabi

// Operator helpers. Each takes its two operands as PARAMs, left first,
// and returns the result of the operator.
const (
	FnBitAnd = "__bitand" // a & b
	FnBitOr  = "__bitor"  // a | b
	FnBitXor = "__bitxor" // a ^ b
	FnShl    = "__shl"    // a << b
	FnShr    = "__shr"    // a >> b
	FnPow    = "__pow"    // a ** b
)

// Helpers lists every runtime function, in a fixed order.
var Helpers = []string{FnBitAnd, FnBitOr, FnBitXor, FnShl, FnShr, FnPow}
