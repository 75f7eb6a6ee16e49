package main

import (
	"bytes"
	"context"
	"testing"

	"github.com/fatih/color"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wippyai/wasm-bridge/engine"
	"github.com/wippyai/wasm-bridge/errors"
	"github.com/wippyai/wasm-bridge/internal/wasmtest"
	"github.com/wippyai/wasm-bridge/runtime"
	"github.com/wippyai/wasm-bridge/value"
)

func init() {
	color.NoColor = true
}

func testFs(t *testing.T) afero.Fs {
	t.Helper()
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/mods/basic.wasm", wasmtest.Basic(), 0o644))
	return fs
}

var testConfig = engine.Config{DisableCache: true, Compiler: engine.CompilerInterpreter}

func TestRunList(t *testing.T) {
	var out bytes.Buffer
	err := run(context.Background(), testFs(t), &out, testConfig, true, "/mods/basic.wasm", nil)
	require.NoError(t, err)

	assert.Contains(t, out.String(), "add(i32, i32) -> (i32)")
	assert.Contains(t, out.String(), "swap(i64, f64) -> (f64, i64)")
	assert.NotContains(t, out.String(), "Calling")
}

func TestRunCall(t *testing.T) {
	fs := testFs(t)

	tests := []struct {
		args []string
		want string
	}{
		{[]string{"add", "40", "2"}, "Result: 42"},
		{[]string{"add", "0xffffffff", "1"}, "Result: 0"},
		{[]string{"swap", "-3", "2.5"}, "Result: (2.5, -3)"},
		{[]string{"id_f64", "nan:0x7ff8000000000001"}, "Result: nan:0x7ff8000000000001"},
		{[]string{"noop"}, "Result: ()"},
	}
	for _, tt := range tests {
		t.Run(tt.args[0], func(t *testing.T) {
			var out bytes.Buffer
			err := run(context.Background(), fs, &out, testConfig, false, "/mods/basic.wasm", tt.args)
			require.NoError(t, err)
			assert.Contains(t, out.String(), tt.want)
		})
	}
}

func TestRunErrors(t *testing.T) {
	ctx := context.Background()
	fs := testFs(t)
	var out bytes.Buffer

	err := run(ctx, fs, &out, testConfig, false, "/mods/missing.wasm", nil)
	assert.Error(t, err)

	err = run(ctx, fs, &out, testConfig, false, "/mods/basic.wasm", []string{"nope"})
	assert.ErrorIs(t, err, &errors.Error{Phase: errors.PhaseCall, Kind: errors.KindNotFound})

	err = run(ctx, fs, &out, testConfig, false, "/mods/basic.wasm", []string{"add", "1"})
	assert.ErrorIs(t, err, &errors.Error{Phase: errors.PhaseParse, Kind: errors.KindArityMismatch})

	err = run(ctx, fs, &out, testConfig, false, "/mods/basic.wasm", []string{"add", "one", "2"})
	assert.ErrorIs(t, err, &errors.Error{Phase: errors.PhaseParse, Kind: errors.KindInvalidData})

	err = run(ctx, fs, &out, testConfig, false, "/mods/basic.wasm", []string{"trap"})
	trap, ok := errors.AsTrap(err)
	require.True(t, ok, "expected a trap, got %v", err)
	assert.Equal(t, errors.OriginGuest, trap.Origin)

	var stderr bytes.Buffer
	printError(&stderr, err)
	assert.Contains(t, stderr.String(), "trap:")
}

func TestOptionsConfig(t *testing.T) {
	opts := &options{
		features: []string{"simd", "bulk-memory"},
		compiler: "interpreter",
		cacheDir: "/tmp/cache",
		noCache:  true,
	}
	cfg, err := opts.config()
	require.NoError(t, err)
	assert.Equal(t, engine.CompilerInterpreter, cfg.Compiler)
	assert.True(t, cfg.Features.SIMD)
	assert.True(t, cfg.Features.BulkMemory)
	assert.False(t, cfg.Features.Threads)
	assert.Equal(t, "/tmp/cache", cfg.CacheDir)
	assert.True(t, cfg.DisableCache)

	_, err = (&options{compiler: "jit"}).config()
	assert.ErrorIs(t, err, &errors.Error{Phase: errors.PhaseConfig, Kind: errors.KindInvalidInput})

	_, err = (&options{features: []string{"gc"}}).config()
	assert.Error(t, err)
}

func TestDefaultExport(t *testing.T) {
	exports := []runtime.Export{{Name: "helper"}, {Name: "run"}}
	assert.Equal(t, "run", defaultExport(exports))
	assert.Equal(t, "only", defaultExport([]runtime.Export{{Name: "only"}}))
	assert.Empty(t, defaultExport(exports[:0]))
	assert.Empty(t, defaultExport([]runtime.Export{{Name: "a"}, {Name: "b"}}))
}

func TestModuleName(t *testing.T) {
	assert.Equal(t, "basic", moduleName("/mods/basic.wasm"))
	assert.Equal(t, "app", moduleName(`C:\mods\app.wasm`))
	assert.Equal(t, "plain", moduleName("plain"))
}

func TestInteractiveSelect(t *testing.T) {
	m := newInteractiveModel(testFs(t), testConfig, "/mods/basic.wasm")
	msg := m.loadModule()
	loaded, ok := msg.(loadedMsg)
	require.True(t, ok)
	require.NoError(t, loaded.err)
	m.Update(loaded)
	defer m.close()

	for i, f := range m.funcs {
		if f.Name == "add" {
			m.selected = i
		}
	}
	m.prepareInputs()
	require.Len(t, m.inputs, 2)
	m.inputs[0].SetValue("20")
	m.inputs[1].SetValue("22")

	res, ok := m.callFunction().(callResultMsg)
	require.True(t, ok)
	require.NoError(t, res.err)
	assert.Equal(t, "42", res.result)

	assert.Contains(t, formatFunc(runtime.Export{
		Name:      "pair",
		Signature: value.Signature{Results: []value.ValueType{value.I32, value.I64}},
	}), "i32, i64")
}

func TestRootCmdFlags(t *testing.T) {
	cmd := newRootCmd(testFs(t))
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"--no_cache", "--compiler=interpreter", "-l", "/mods/basic.wasm"})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "sum20(")

	cmd = newRootCmd(testFs(t))
	cmd.SetArgs([]string{})
	assert.Error(t, cmd.Execute())
}
