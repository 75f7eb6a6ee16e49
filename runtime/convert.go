package runtime

import (
	"fmt"
	"math"
	"strconv"

	"github.com/dop251/goja"

	"github.com/wippyai/wasm-bridge/engine"
	"github.com/wippyai/wasm-bridge/errors"
	"github.com/wippyai/wasm-bridge/resource"
	"github.com/wippyai/wasm-bridge/value"
)

func argName(i int) string {
	return "arg" + strconv.Itoa(i)
}

func mismatch(t value.ValueType, arg any) error {
	return errors.TypeMismatch(errors.PhaseEncode, nil, fmt.Sprintf("%T", arg), t.String())
}

// toValue converts a Go argument to a value of type t. Integers wrap to the
// target width and strings for numeric types are parsed with value.Parse.
// Any other Go value passed for an externref is stored in the reference
// table.
func toValue(s *engine.Store, t value.ValueType, arg any) (value.Value, error) {
	switch x := arg.(type) {
	case value.Value:
		return x, nil
	case string:
		if t.IsNumeric() {
			return value.Parse(t, x)
		}
	}

	switch t {
	case value.I32:
		n, ok := toInt64(arg)
		if !ok {
			return value.Value{}, mismatch(t, arg)
		}
		return value.Of(int32(n)), nil
	case value.I64:
		if u, ok := arg.(uint64); ok {
			return value.Of(u), nil
		}
		n, ok := toInt64(arg)
		if !ok {
			return value.Value{}, mismatch(t, arg)
		}
		return value.Of(n), nil
	case value.F32:
		f, ok := toFloat64(arg)
		if !ok {
			return value.Value{}, mismatch(t, arg)
		}
		if f32, exact := arg.(float32); exact {
			return value.Of(f32), nil
		}
		return value.Of(float32(f)), nil
	case value.F64:
		f, ok := toFloat64(arg)
		if !ok {
			return value.Value{}, mismatch(t, arg)
		}
		return value.Of(f), nil
	case value.ExternRef:
		switch x := arg.(type) {
		case nil:
			return value.Of(value.Extern(0)), nil
		case value.Extern:
			return value.Of(x), nil
		}
		h := s.Refs().Intern(resource.KindExtern, arg)
		return value.Of(value.Extern(h)), nil
	case value.FuncRef:
		switch x := arg.(type) {
		case nil:
			return value.Of(value.Func(0)), nil
		case value.Func:
			return value.Of(x), nil
		}
		return value.Value{}, mismatch(t, arg)
	}
	return value.Value{}, mismatch(t, arg)
}

func toInt64(arg any) (int64, bool) {
	switch x := arg.(type) {
	case int:
		return int64(x), true
	case int8:
		return int64(x), true
	case int16:
		return int64(x), true
	case int32:
		return int64(x), true
	case int64:
		return x, true
	case uint:
		return int64(x), true
	case uint8:
		return int64(x), true
	case uint16:
		return int64(x), true
	case uint32:
		return int64(x), true
	case uint64:
		return int64(x), true
	case float64:
		if x == math.Trunc(x) && !math.IsInf(x, 0) {
			return int64(x), true
		}
	}
	return 0, false
}

func toFloat64(arg any) (float64, bool) {
	switch x := arg.(type) {
	case float32:
		return float64(x), true
	case float64:
		return x, true
	}
	if n, ok := toInt64(arg); ok {
		return float64(n), true
	}
	return 0, false
}

// fromValue converts a result to its Go value. References resolve to the
// value they were created from; JS values are exported.
func fromValue(s *engine.Store, v value.Value) any {
	r := v.Raw()
	switch v.Type() {
	case value.I32:
		return r.I32()
	case value.I64:
		return r.I64()
	case value.F32:
		return r.F32()
	case value.F64:
		return r.F64()
	case value.ExternRef, value.FuncRef:
		if r.IsNull() {
			return nil
		}
		ref, ok := s.Refs().Get(resource.Handle(r.Ref()))
		if !ok {
			return value.Extern(r.Ref())
		}
		if jv, isJS := ref.(goja.Value); isJS {
			return jv.Export()
		}
		return ref
	}
	return v
}
