package value

import (
	"strconv"
	"strings"

	"github.com/wippyai/wasm-bridge/errors"
)

// Value is a dynamically typed wasm value, used where the signature is only
// known at run time.
type Value struct {
	raw RawValue
	typ ValueType
}

// New pairs a raw slot with its type.
func New(t ValueType, r RawValue) Value {
	return Value{typ: t, raw: r}
}

// Of wraps a native Go value.
func Of[T Native](v T) Value {
	return Value{typ: TypeOf[T](), raw: ToRaw(v)}
}

func (v Value) Type() ValueType { return v.typ }
func (v Value) Raw() RawValue   { return v.raw }

func (v Value) String() string {
	return v.raw.Format(v.typ)
}

// Parse reads a value of type t from text. Integers accept signed and
// unsigned forms with an optional base prefix, floats accept "nan:0x<bits>"
// for NaN payloads, and references accept "null" or a handle number.
func Parse(t ValueType, text string) (Value, error) {
	text = strings.TrimSpace(text)
	switch t {
	case I32:
		n, err := parseInt(text, 32)
		if err != nil {
			return Value{}, errors.ParseFailed("i32 "+strconv.Quote(text), err)
		}
		return New(I32, RawI32(int32(n))), nil
	case I64:
		n, err := parseInt(text, 64)
		if err != nil {
			return Value{}, errors.ParseFailed("i64 "+strconv.Quote(text), err)
		}
		return New(I64, RawI64(n)), nil
	case F32, F64:
		bitSize := 64
		if t == F32 {
			bitSize = 32
		}
		if bits, ok := strings.CutPrefix(strings.ToLower(text), "nan:"); ok {
			b, err := strconv.ParseUint(bits, 0, bitSize)
			if err != nil {
				return Value{}, errors.ParseFailed(t.String()+" nan payload", err)
			}
			return New(t, RawValue{lo: b}), nil
		}
		f, err := strconv.ParseFloat(text, bitSize)
		if err != nil {
			return Value{}, errors.ParseFailed(t.String()+" "+strconv.Quote(text), err)
		}
		if t == F32 {
			return New(F32, RawF32(float32(f))), nil
		}
		return New(F64, RawF64(f)), nil
	case ExternRef, FuncRef:
		if text == "null" || text == "" {
			return New(t, RawRef(0)), nil
		}
		h, err := strconv.ParseUint(text, 0, 32)
		if err != nil {
			return Value{}, errors.ParseFailed(t.String()+" handle", err)
		}
		return New(t, RawRef(uint32(h))), nil
	}
	return Value{}, errors.Unsupported(errors.PhaseParse, "parse "+t.String())
}

func parseInt(text string, bitSize int) (int64, error) {
	n, err := strconv.ParseInt(text, 0, bitSize)
	if err == nil {
		return n, nil
	}
	u, uerr := strconv.ParseUint(text, 0, bitSize)
	if uerr != nil {
		return 0, err
	}
	return int64(u), nil
}
