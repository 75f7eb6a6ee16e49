package wasmtest

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tetratelabs/wazero"
	"github.com/tetratelabs/wazero/api"
)

func TestWriterLEB128(t *testing.T) {
	tests := []struct {
		name string
		want []byte
		in   int64
	}{
		{"zero", []byte{0x00}, 0},
		{"small", []byte{0x07}, 7},
		{"sign bit", []byte{0xc0, 0x00}, 64},
		{"minus one", []byte{0x7f}, -1},
		{"minus 129", []byte{0xff, 0x7e}, -129},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := &writer{}
			w.WriteS64(tt.in)
			assert.Equal(t, tt.want, w.Bytes())
		})
	}

	w := &writer{}
	w.WriteU32(624485)
	assert.Equal(t, []byte{0xe5, 0x8e, 0x26}, w.Bytes())
}

func TestEncodeHeader(t *testing.T) {
	got := (&Module{}).Encode()
	assert.Equal(t, []byte{0x00, 0x61, 0x73, 0x6d, 0x01, 0x00, 0x00, 0x00}, got)
}

func TestFixturesCompile(t *testing.T) {
	ctx := context.Background()
	rt := wazero.NewRuntimeWithConfig(ctx, wazero.NewRuntimeConfigInterpreter())
	defer rt.Close(ctx)

	fixtures := map[string][]byte{
		"basic":    Basic(),
		"imports":  Imports(),
		"asyncify": Asyncify(),
	}
	for name, bin := range fixtures {
		t.Run(name, func(t *testing.T) {
			compiled, err := rt.CompileModule(ctx, bin)
			require.NoError(t, err)
			assert.NotEmpty(t, compiled.ExportedFunctions())
		})
	}
}

func TestBasicSignatures(t *testing.T) {
	ctx := context.Background()
	rt := wazero.NewRuntimeWithConfig(ctx, wazero.NewRuntimeConfigInterpreter())
	defer rt.Close(ctx)

	compiled, err := rt.CompileModule(ctx, Basic())
	require.NoError(t, err)

	swap := compiled.ExportedFunctions()["swap"]
	require.NotNil(t, swap)
	assert.Equal(t, []api.ValueType{api.ValueTypeI64, api.ValueTypeF64}, swap.ParamTypes())
	assert.Equal(t, []api.ValueType{api.ValueTypeF64, api.ValueTypeI64}, swap.ResultTypes())
	assert.Len(t, compiled.ExportedFunctions()["sum20"].ParamTypes(), 20)
}

func TestBasicRuns(t *testing.T) {
	ctx := context.Background()
	rt := wazero.NewRuntimeWithConfig(ctx, wazero.NewRuntimeConfigInterpreter())
	defer rt.Close(ctx)

	mod, err := rt.Instantiate(ctx, Basic())
	require.NoError(t, err)

	got, err := mod.ExportedFunction("digits").Call(ctx, 1, 2, 3)
	require.NoError(t, err)
	assert.Equal(t, uint64(123), got[0])

	_, err = mod.ExportedFunction("trap").Call(ctx)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unreachable")
}
