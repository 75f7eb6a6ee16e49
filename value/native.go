package value

import (
	"fmt"
	"math"
)

// Extern is an externref handle into a store's reference table. The zero
// value is the null reference.
type Extern uint32

// Func is a funcref handle into a store's reference table. The zero value is
// the null reference.
type Func uint32

// IsNull reports whether the handle is the null reference.
func (e Extern) IsNull() bool { return e == 0 }

// IsNull reports whether the handle is the null reference.
func (f Func) IsNull() bool { return f == 0 }

// Native is the set of Go types that map one-to-one onto a wasm value type.
// Unsigned integers share the slot of their signed counterpart.
type Native interface {
	int32 | uint32 | int64 | uint64 | float32 | float64 | Extern | Func
}

// TypeOf returns the wasm value type T is carried as.
func TypeOf[T Native]() ValueType {
	var zero T
	switch any(zero).(type) {
	case int32, uint32:
		return I32
	case int64, uint64:
		return I64
	case float32:
		return F32
	case float64:
		return F64
	case Extern:
		return ExternRef
	default:
		return FuncRef
	}
}

// ToRaw converts a native value to its slot bit-exactly.
func ToRaw[T Native](v T) RawValue {
	switch x := any(v).(type) {
	case int32:
		return RawI32(x)
	case uint32:
		return RawValue{lo: uint64(x)}
	case int64:
		return RawI64(x)
	case uint64:
		return RawValue{lo: x}
	case float32:
		return RawF32(x)
	case float64:
		return RawF64(x)
	case Extern:
		return RawRef(uint32(x))
	case Func:
		return RawRef(uint32(x))
	}
	panic("unreachable")
}

// FromRaw reinterprets a slot as T. It is the inverse of ToRaw.
func FromRaw[T Native](r RawValue) T {
	var out T
	switch p := any(&out).(type) {
	case *int32:
		*p = r.I32()
	case *uint32:
		*p = uint32(r.lo)
	case *int64:
		*p = r.I64()
	case *uint64:
		*p = r.lo
	case *float32:
		*p = r.F32()
	case *float64:
		*p = r.F64()
	case *Extern:
		*p = Extern(r.Ref())
	case *Func:
		*p = Func(r.Ref())
	}
	return out
}

// Assign stores r into ptr, which must point to a Native type matching t.
func Assign(ptr any, t ValueType, r RawValue) error {
	ok := false
	switch p := ptr.(type) {
	case *int32:
		*p, ok = r.I32(), t == I32
	case *uint32:
		*p, ok = uint32(r.lo), t == I32
	case *int64:
		*p, ok = r.I64(), t == I64
	case *uint64:
		*p, ok = r.lo, t == I64
	case *float32:
		*p, ok = r.F32(), t == F32
	case *float64:
		*p, ok = r.F64(), t == F64
	case *Extern:
		*p, ok = Extern(r.Ref()), t == ExternRef
	case *Func:
		*p, ok = Func(r.Ref()), t == FuncRef
	default:
		return fmt.Errorf("cannot assign %s to %T", t, ptr)
	}
	if !ok {
		return fmt.Errorf("cannot assign %s to %T", t, ptr)
	}
	return nil
}

// canonical NaN bit patterns
const (
	CanonicalNaN32 uint32 = 0x7fc00000
	CanonicalNaN64 uint64 = 0x7ff8000000000000
)

// IsNaN reports whether r holds a NaN of float type t.
func IsNaN(t ValueType, r RawValue) bool {
	switch t {
	case F32:
		return r.lo&0x7f800000 == 0x7f800000 && r.lo&0x007fffff != 0
	case F64:
		return r.lo&0x7ff0000000000000 == 0x7ff0000000000000 && r.lo&0x000fffffffffffff != 0
	}
	return false
}

// CanonicalNaN returns the canonical quiet NaN slot for float type t.
func CanonicalNaN(t ValueType) RawValue {
	if t == F32 {
		return RawValue{lo: uint64(CanonicalNaN32)}
	}
	return RawValue{lo: CanonicalNaN64}
}

// FromFloat64 builds a slot of numeric type t from a host number, applying
// wasm wrap-around for integers. Non-finite integers become 0.
func FromFloat64(t ValueType, f float64) RawValue {
	switch t {
	case I32:
		return RawI32(int32(truncInt64(f)))
	case I64:
		return RawI64(truncInt64(f))
	case F32:
		return RawF32(float32(f))
	default:
		return RawF64(f)
	}
}

func truncInt64(f float64) int64 {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	f = math.Trunc(f)
	if f >= -(1<<63) && f < 1<<63 {
		return int64(f)
	}
	// modulo 2^64 for out-of-range values
	m := math.Mod(f, 1<<64)
	if m < 0 {
		m += 1 << 64
	}
	if m >= 1<<63 {
		u := uint64(m-(1<<63)) | 1<<63
		return int64(u)
	}
	return int64(m)
}
