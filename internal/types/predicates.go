package types

// Identical reports whether x and y are identical types.
// Unknown is identical to nothing, not even to itself.
func Identical(x, y Type) bool {
	if x == nil || y == nil {
		return false
	}
	if IsUnknown(x) || IsUnknown(y) {
		return false
	}
	if x == y {
		return true
	}
	switch x := x.(type) {
	case *Basic:
		if y, ok := y.(*Basic); ok {
			return x.kind == y.kind
		}
	case *Func:
		if y, ok := y.(*Func); ok {
			return IdenticalSignatures(x, y)
		}
	}
	return false
}

// IdenticalSignatures reports whether two signatures have the same
// parameter types and result type. Parameter names are ignored.
func IdenticalSignatures(x, y *Func) bool {
	if len(x.params) != len(y.params) {
		return false
	}
	for i := range x.params {
		if !sameBasic(x.params[i].Type(), y.params[i].Type()) {
			return false
		}
	}
	return sameBasic(x.result, y.result)
}

// sameBasic compares kinds directly so that two Unknown parameter types,
// which come from the same parse failure, still count as equal.
func sameBasic(x, y Type) bool {
	xb, ok1 := x.(*Basic)
	yb, ok2 := y.(*Basic)
	return ok1 && ok2 && xb.kind == yb.kind
}

// IsUnknown reports whether T is the unresolved type.
func IsUnknown(T Type) bool {
	if T == nil {
		return true
	}
	b, ok := T.(*Basic)
	return ok && b.kind == Unknown
}

// IsBooleanType reports whether T is bool.
func IsBooleanType(T Type) bool {
	b, ok := T.(*Basic)
	return ok && b.info&IsBoolean != 0
}

// IsIntegerType reports whether T is int.
func IsIntegerType(T Type) bool {
	b, ok := T.(*Basic)
	return ok && b.info&IsInteger != 0
}

// IsNumericType reports whether T is int or float.
func IsNumericType(T Type) bool {
	b, ok := T.(*Basic)
	return ok && b.info&IsNumeric != 0
}
