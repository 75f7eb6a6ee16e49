package value

import "fmt"

// ValueType is a WebAssembly value type, encoded with its binary-format byte.
type ValueType byte

const (
	I32       ValueType = 0x7f
	I64       ValueType = 0x7e
	F32       ValueType = 0x7d
	F64       ValueType = 0x7c
	V128      ValueType = 0x7b
	FuncRef   ValueType = 0x70
	ExternRef ValueType = 0x6f
)

func (t ValueType) String() string {
	switch t {
	case I32:
		return "i32"
	case I64:
		return "i64"
	case F32:
		return "f32"
	case F64:
		return "f64"
	case V128:
		return "v128"
	case FuncRef:
		return "funcref"
	case ExternRef:
		return "externref"
	default:
		return fmt.Sprintf("type(0x%02x)", byte(t))
	}
}

// IsRef reports whether t is a reference type.
func (t ValueType) IsRef() bool {
	return t == FuncRef || t == ExternRef
}

// IsNumeric reports whether t is one of the four scalar number types.
func (t ValueType) IsNumeric() bool {
	switch t {
	case I32, I64, F32, F64:
		return true
	}
	return false
}

// Valid reports whether t is a known value type.
func (t ValueType) Valid() bool {
	switch t {
	case I32, I64, F32, F64, V128, FuncRef, ExternRef:
		return true
	}
	return false
}

// ParseType parses the textual name of a value type.
func ParseType(s string) (ValueType, error) {
	switch s {
	case "i32":
		return I32, nil
	case "i64":
		return I64, nil
	case "f32":
		return F32, nil
	case "f64":
		return F64, nil
	case "v128":
		return V128, nil
	case "funcref":
		return FuncRef, nil
	case "externref":
		return ExternRef, nil
	}
	return 0, fmt.Errorf("unknown value type %q", s)
}
