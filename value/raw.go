package value

import (
	"fmt"
	"math"
)

// RawValue is an untagged 128-bit value slot. Its interpretation depends on
// a ValueType known from context; scalars occupy the low word.
type RawValue struct {
	lo, hi uint64
}

// RawI32 stores v in two's complement, zero-extended to 64 bits.
func RawI32(v int32) RawValue { return RawValue{lo: uint64(uint32(v))} }

// RawI64 stores v in two's complement.
func RawI64(v int64) RawValue { return RawValue{lo: uint64(v)} }

// RawF32 stores the IEEE-754 bits of v.
func RawF32(v float32) RawValue { return RawValue{lo: uint64(math.Float32bits(v))} }

// RawF64 stores the IEEE-754 bits of v.
func RawF64(v float64) RawValue { return RawValue{lo: math.Float64bits(v)} }

// RawRef stores a reference handle. 0 is the null reference.
func RawRef(h uint32) RawValue { return RawValue{lo: uint64(h)} }

// RawV128 stores two 64-bit lanes.
func RawV128(lo, hi uint64) RawValue { return RawValue{lo: lo, hi: hi} }

// RawFromBits builds a slot from the bit pattern wazero keeps on its stack for t.
func RawFromBits(t ValueType, bits uint64) RawValue {
	switch t {
	case I32, F32, FuncRef, ExternRef:
		return RawValue{lo: bits & math.MaxUint32}
	default:
		return RawValue{lo: bits}
	}
}

func (r RawValue) I32() int32      { return int32(uint32(r.lo)) }
func (r RawValue) I64() int64      { return int64(r.lo) }
func (r RawValue) F32() float32    { return math.Float32frombits(uint32(r.lo)) }
func (r RawValue) F64() float64    { return math.Float64frombits(r.lo) }
func (r RawValue) Ref() uint32     { return uint32(r.lo) }
func (r RawValue) IsNull() bool    { return r.lo == 0 && r.hi == 0 }
func (r RawValue) Bits() uint64    { return r.lo }
func (r RawValue) V128() [2]uint64 { return [2]uint64{r.lo, r.hi} }

// Format renders r as a value of type t.
func (r RawValue) Format(t ValueType) string {
	switch t {
	case I32:
		return fmt.Sprint(r.I32())
	case I64:
		return fmt.Sprint(r.I64())
	case F32:
		f := r.F32()
		if f != f {
			return fmt.Sprintf("nan:0x%08x", uint32(r.lo))
		}
		return fmt.Sprint(f)
	case F64:
		f := r.F64()
		if f != f {
			return fmt.Sprintf("nan:0x%016x", r.lo)
		}
		return fmt.Sprint(f)
	case FuncRef, ExternRef:
		if r.Ref() == 0 {
			return "null"
		}
		return fmt.Sprintf("ref(%d)", r.Ref())
	case V128:
		return fmt.Sprintf("0x%016x%016x", r.hi, r.lo)
	default:
		return fmt.Sprintf("raw(0x%x)", r.lo)
	}
}
