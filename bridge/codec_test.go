package bridge

import (
	"math"
	"testing"

	"github.com/dop251/goja"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wippyai/wasm-bridge/errors"
	"github.com/wippyai/wasm-bridge/resource"
	"github.com/wippyai/wasm-bridge/value"
)

func newCodec(t *testing.T) (*Codec, *goja.Runtime, *resource.Table) {
	t.Helper()
	vm := goja.New()
	table := resource.NewTable()
	t.Cleanup(func() { _ = table.Close() })
	return NewCodec(vm, table), vm, table
}

func run(t *testing.T, vm *goja.Runtime, src string) goja.Value {
	t.Helper()
	v, err := vm.RunString(src)
	require.NoError(t, err)
	return v
}

func TestCodec_RoundTrip(t *testing.T) {
	c, _, _ := newCodec(t)

	cases := []struct {
		name string
		typ  value.ValueType
		raw  value.RawValue
	}{
		{"i32 zero", value.I32, value.RawI32(0)},
		{"i32 min", value.I32, value.RawI32(math.MinInt32)},
		{"i32 max", value.I32, value.RawI32(math.MaxInt32)},
		{"i32 minus one", value.I32, value.RawI32(-1)},
		{"i64 min", value.I64, value.RawI64(math.MinInt64)},
		{"i64 max", value.I64, value.RawI64(math.MaxInt64)},
		{"i64 above 2^53", value.I64, value.RawI64(1<<53 + 1)},
		{"f32", value.F32, value.RawF32(3.25)},
		{"f32 negative zero", value.F32, value.RawF32(float32(math.Copysign(0, -1)))},
		{"f32 inf", value.F32, value.RawF32(float32(math.Inf(-1)))},
		{"f32 max", value.F32, value.RawF32(math.MaxFloat32)},
		{"f32 nan payload", value.F32, value.RawFromBits(value.F32, 0x7fa00001)},
		{"f32 negative nan", value.F32, value.RawFromBits(value.F32, 0xffc00000)},
		{"f64", value.F64, value.RawF64(-1.5e300)},
		{"f64 smallest", value.F64, value.RawF64(math.SmallestNonzeroFloat64)},
		{"f64 negative zero", value.F64, value.RawF64(math.Copysign(0, -1))},
		{"f64 nan payload", value.F64, value.RawFromBits(value.F64, 0x7ff0000000000abc)},
		{"f64 canonical nan", value.F64, value.CanonicalNaN(value.F64)},
		{"externref null", value.ExternRef, value.RawRef(0)},
		{"funcref null", value.FuncRef, value.RawRef(0)},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := c.Decode(c.Encode(tc.raw, tc.typ), tc.typ)
			assert.Equal(t, tc.raw.Bits(), got.Bits())
		})
	}
}

func TestCodec_IntegersAreExact(t *testing.T) {
	c, _, _ := newCodec(t)

	for _, n := range []int64{math.MaxInt64, math.MinInt64, 1<<53 + 1, -(1<<53 + 1), 1<<53 - 1, 0, -1} {
		v := c.Encode(value.RawI64(n), value.I64)
		got, ok := Int64(v)
		require.True(t, ok, "%d", n)
		assert.Equal(t, n, got)
		assert.Equal(t, n, c.Decode(v, value.I64).I64())
	}

	v := c.Encode(value.RawI32(-5), value.I32)
	assert.Equal(t, int64(-5), v.Export())

	// safe integers stay plain JS numbers
	v = c.Encode(value.RawI64(1<<53-1), value.I64)
	assert.Equal(t, int64(1<<53-1), v.Export())
	_, boxed := Unbox(v)
	assert.False(t, boxed)
}

func TestCodec_ToValue(t *testing.T) {
	c, vm, _ := newCodec(t)

	big := c.ToValue(uint64(math.MaxUint64))
	assert.Equal(t, int64(-1), c.Decode(big, value.I64).I64())

	// a boxed i64 survives a trip through script code
	require.NoError(t, vm.Set("big", c.ToValue(int64(1<<53+1))))
	v := run(t, vm, "(function (x) { return x; })(big)")
	got, ok := Int64(v)
	require.True(t, ok)
	assert.Equal(t, int64(1<<53+1), got)

	assert.Equal(t, "abc", c.ToValue("abc").Export())
	assert.Equal(t, int64(3), c.ToValue(3).Export())
}

func TestCodec_EvictsDroppedRefs(t *testing.T) {
	c, _, table := newCodec(t)
	table.Subscribe(c)

	h := table.Insert(resource.KindExtern, "payload")
	first := c.Encode(value.RawRef(uint32(h)), value.ExternRef)
	assert.Same(t, first, c.Encode(value.RawRef(uint32(h)), value.ExternRef))
	require.Len(t, c.boxes, 1)

	table.Remove(h)
	assert.Empty(t, c.boxes)
}

func TestCodec_DecodeCoercion(t *testing.T) {
	c, vm, _ := newCodec(t)

	assert.Equal(t, int32(1), c.Decode(run(t, vm, "4294967297"), value.I32).I32())
	assert.Equal(t, int32(-1), c.Decode(run(t, vm, "4294967295"), value.I32).I32())
	assert.Equal(t, int32(3), c.Decode(run(t, vm, "3.75"), value.I32).I32())
	assert.Equal(t, int32(7), c.Decode(run(t, vm, "'7'"), value.I32).I32())
	assert.Equal(t, int32(1), c.Decode(run(t, vm, "true"), value.I32).I32())
	assert.Equal(t, int32(0), c.Decode(goja.Undefined(), value.I32).I32())
	assert.Equal(t, int64(0), c.Decode(run(t, vm, "Infinity"), value.I64).I64())
	assert.Equal(t, float64(2), c.Decode(run(t, vm, "2"), value.F64).F64())
	assert.Equal(t, float32(0.5), c.Decode(run(t, vm, "0.5"), value.F32).F32())
}

func TestCodec_PlainNaNIsCanonical(t *testing.T) {
	c, vm, _ := newCodec(t)

	nan := run(t, vm, "0/0")
	assert.Equal(t, uint64(value.CanonicalNaN64), c.Decode(nan, value.F64).Bits())
	assert.Equal(t, uint64(value.CanonicalNaN32), c.Decode(nan, value.F32).Bits())
	assert.Equal(t, int32(0), c.Decode(nan, value.I32).I32())
}

func TestCodec_NaNBoxIsVisibleAsObject(t *testing.T) {
	c, vm, _ := newCodec(t)

	boxed := c.Encode(value.RawFromBits(value.F64, 0x7ff0000000000001), value.F64)
	require.NoError(t, vm.GlobalObject().Set("boxed", boxed))
	assert.Equal(t, "object", run(t, vm, "typeof boxed").String())

	// a box of the other float width decodes as the canonical NaN
	assert.Equal(t, uint64(value.CanonicalNaN32), c.Decode(boxed, value.F32).Bits())
}

func TestCodec_References(t *testing.T) {
	c, vm, table := newCodec(t)

	t.Run("null", func(t *testing.T) {
		assert.True(t, goja.IsNull(c.Encode(value.RawRef(0), value.ExternRef)))
		assert.True(t, c.Decode(goja.Null(), value.ExternRef).IsNull())
		assert.True(t, c.Decode(goja.Undefined(), value.FuncRef).IsNull())
	})

	t.Run("js object keeps identity", func(t *testing.T) {
		obj := run(t, vm, "({name: 'conn'})")
		raw := c.Decode(obj, value.ExternRef)
		require.False(t, raw.IsNull())

		again := c.Decode(obj, value.ExternRef)
		assert.Equal(t, raw.Ref(), again.Ref())

		back := c.Encode(raw, value.ExternRef)
		assert.True(t, back.SameAs(obj))
	})

	t.Run("go value is boxed", func(t *testing.T) {
		type conn struct{ id int }
		h := table.Insert(resource.KindExtern, &conn{id: 3})

		v := c.Encode(value.RawRef(uint32(h)), value.ExternRef)
		obj, ok := v.(*goja.Object)
		require.True(t, ok)
		assert.True(t, obj.SameAs(c.Encode(value.RawRef(uint32(h)), value.ExternRef)))
		assert.Equal(t, uint32(h), c.Decode(v, value.ExternRef).Ref())
	})

	t.Run("js function as funcref", func(t *testing.T) {
		fn := run(t, vm, "(function() { return 1 })")
		raw := c.Decode(fn, value.FuncRef)
		got, ok := table.GetKind(resource.Handle(raw.Ref()), resource.KindFunc)
		require.True(t, ok)
		assert.True(t, got.(goja.Value).SameAs(fn))
	})
}

func TestCheckSignature(t *testing.T) {
	require.NoError(t, CheckSignature(value.Signature{
		Params:  []value.ValueType{value.I32, value.I64, value.F32, value.F64, value.ExternRef},
		Results: []value.ValueType{value.FuncRef},
	}))

	err := CheckSignature(value.Signature{Params: []value.ValueType{value.V128}})
	require.Error(t, err)
	assert.ErrorIs(t, err, &errors.Error{Phase: errors.PhaseBind, Kind: errors.KindUnsupported})
}

func TestCodec_EncodeV128Panics(t *testing.T) {
	c, _, _ := newCodec(t)
	assert.Panics(t, func() { c.Encode(value.RawV128(1, 2), value.V128) })
}
