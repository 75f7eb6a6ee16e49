package value

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTypeOf(t *testing.T) {
	assert.Equal(t, I32, TypeOf[int32]())
	assert.Equal(t, I32, TypeOf[uint32]())
	assert.Equal(t, I64, TypeOf[int64]())
	assert.Equal(t, I64, TypeOf[uint64]())
	assert.Equal(t, F32, TypeOf[float32]())
	assert.Equal(t, F64, TypeOf[float64]())
	assert.Equal(t, ExternRef, TypeOf[Extern]())
	assert.Equal(t, FuncRef, TypeOf[Func]())
}

func TestRawRoundTrip(t *testing.T) {
	t.Run("integers", func(t *testing.T) {
		for _, v := range []int32{0, 1, -1, math.MaxInt32, math.MinInt32} {
			assert.Equal(t, v, FromRaw[int32](ToRaw(v)))
		}
		for _, v := range []int64{0, -1, math.MaxInt64, math.MinInt64, 1 << 53, 1<<53 + 1} {
			assert.Equal(t, v, FromRaw[int64](ToRaw(v)))
		}
		for _, v := range []uint64{0, math.MaxUint64, 1 << 63} {
			assert.Equal(t, v, FromRaw[uint64](ToRaw(v)))
		}
		assert.Equal(t, uint32(math.MaxUint32), FromRaw[uint32](ToRaw(uint32(math.MaxUint32))))
	})

	t.Run("unsigned shares signed slot", func(t *testing.T) {
		assert.Equal(t, int32(-1), FromRaw[int32](ToRaw(uint32(math.MaxUint32))))
		assert.Equal(t, int64(math.MinInt64), FromRaw[int64](ToRaw(uint64(1<<63))))
	})

	t.Run("nan payloads", func(t *testing.T) {
		nan32 := math.Float32frombits(0x7fa00001)
		got32 := FromRaw[float32](ToRaw(nan32))
		assert.Equal(t, uint32(0x7fa00001), math.Float32bits(got32))

		nan64 := math.Float64frombits(0xfff0000000000123)
		got64 := FromRaw[float64](ToRaw(nan64))
		assert.Equal(t, uint64(0xfff0000000000123), math.Float64bits(got64))
	})

	t.Run("negative zero", func(t *testing.T) {
		got := FromRaw[float64](ToRaw(math.Copysign(0, -1)))
		assert.True(t, math.Signbit(got))
	})

	t.Run("references", func(t *testing.T) {
		assert.Equal(t, Extern(42), FromRaw[Extern](ToRaw(Extern(42))))
		assert.True(t, ToRaw(Func(0)).IsNull())
	})
}

func TestRawI32ZeroExtends(t *testing.T) {
	r := RawI32(-1)
	assert.Equal(t, uint64(0xffffffff), r.Bits())
	assert.Equal(t, RawI32(-1), RawFromBits(I32, 0xffffffffffffffff))
}

func TestAssign(t *testing.T) {
	var i int32
	require.NoError(t, Assign(&i, I32, RawI32(-7)))
	assert.Equal(t, int32(-7), i)

	var f float64
	require.NoError(t, Assign(&f, F64, RawF64(2.5)))
	assert.Equal(t, 2.5, f)

	var ref Extern
	require.NoError(t, Assign(&ref, ExternRef, RawRef(3)))
	assert.Equal(t, Extern(3), ref)

	assert.Error(t, Assign(&i, I64, RawI64(1)))
	assert.Error(t, Assign(&ref, FuncRef, RawRef(1)))
	var s string
	assert.Error(t, Assign(&s, I32, RawI32(1)))
}

func TestIsNaN(t *testing.T) {
	assert.True(t, IsNaN(F32, CanonicalNaN(F32)))
	assert.True(t, IsNaN(F64, CanonicalNaN(F64)))
	assert.True(t, IsNaN(F64, RawF64(math.Float64frombits(0x7ff0000000000001))))
	assert.False(t, IsNaN(F64, RawF64(math.Inf(1))))
	assert.False(t, IsNaN(F32, RawF32(1)))
	assert.False(t, IsNaN(I32, RawI32(-1)))
}

func TestFromFloat64(t *testing.T) {
	assert.Equal(t, int32(-1), FromFloat64(I32, 4294967295).I32())
	assert.Equal(t, int32(3), FromFloat64(I32, 3.9).I32())
	assert.Equal(t, int32(0), FromFloat64(I32, math.NaN()).I32())
	assert.Equal(t, int64(math.MinInt64), FromFloat64(I64, 9223372036854775808).I64())
	assert.Equal(t, int64(0), FromFloat64(I64, 18446744073709551616).I64())
	assert.Equal(t, float32(1.5), FromFloat64(F32, 1.5).F32())
}

func TestSignature(t *testing.T) {
	a := Signature{Params: []ValueType{I32, I64}, Results: []ValueType{F32}}
	b := Signature{Params: []ValueType{I32, I64}, Results: []ValueType{F32}}
	c := Signature{Params: []ValueType{I32}, Results: []ValueType{F32}}

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
	assert.Equal(t, "(i32, i64) -> (f32)", a.String())
	assert.Equal(t, "() -> ()", Signature{}.String())
	assert.True(t, a.Has(I64))
	assert.False(t, a.Has(V128))
}

func TestParse(t *testing.T) {
	tests := []struct {
		typ  ValueType
		text string
		want string
	}{
		{I32, "42", "42"},
		{I32, "-1", "-1"},
		{I32, "4294967295", "-1"},
		{I32, "0x10", "16"},
		{I64, "-9223372036854775808", "-9223372036854775808"},
		{I64, "18446744073709551615", "-1"},
		{F32, "1.5", "1.5"},
		{F32, "nan:0x7fc00001", "nan:0x7fc00001"},
		{F64, "-0.25", "-0.25"},
		{F64, "nan:0x7ff8000000000001", "nan:0x7ff8000000000001"},
		{ExternRef, "null", "null"},
		{FuncRef, "7", "ref(7)"},
	}

	for _, tt := range tests {
		t.Run(tt.typ.String()+"/"+tt.text, func(t *testing.T) {
			v, err := Parse(tt.typ, tt.text)
			require.NoError(t, err)
			assert.Equal(t, tt.typ, v.Type())
			assert.Equal(t, tt.want, v.String())
		})
	}

	_, err := Parse(I32, "4294967296")
	assert.Error(t, err)
	_, err = Parse(F64, "abc")
	assert.Error(t, err)
	_, err = Parse(V128, "0")
	assert.Error(t, err)
}

func TestParseType(t *testing.T) {
	for _, typ := range []ValueType{I32, I64, F32, F64, V128, FuncRef, ExternRef} {
		got, err := ParseType(typ.String())
		require.NoError(t, err)
		assert.Equal(t, typ, got)
		assert.True(t, typ.Valid())
	}
	_, err := ParseType("anyref")
	assert.Error(t, err)
	assert.False(t, ValueType(0x40).Valid())
}
