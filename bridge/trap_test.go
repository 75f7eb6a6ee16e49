package bridge

import (
	stderrors "errors"
	"testing"

	"github.com/dop251/goja"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wippyai/wasm-bridge/errors"
)

func callErr(t *testing.T, vm *goja.Runtime, fn goja.Value) error {
	t.Helper()
	call, ok := goja.AssertFunction(fn)
	require.True(t, ok)
	_, err := call(goja.Undefined())
	require.Error(t, err)
	return err
}

func TestTrapFromError_Nil(t *testing.T) {
	assert.Nil(t, TrapFromError(nil))
}

func TestTrapFromError_GoErrorKeepsTrap(t *testing.T) {
	vm := goja.New()
	orig := errors.NewTrap(errors.OriginGuest, "unreachable")

	fn := vm.ToValue(func(goja.FunctionCall) goja.Value {
		panic(vm.NewGoError(orig))
	})
	err := callErr(t, vm, fn)

	got := TrapFromError(err)
	assert.Same(t, orig, got)
}

func TestTrapFromError_GoErrorOther(t *testing.T) {
	vm := goja.New()
	cause := stderrors.New("disk full")

	fn := vm.ToValue(func(goja.FunctionCall) goja.Value {
		panic(vm.NewGoError(cause))
	})
	got := TrapFromError(callErr(t, vm, fn))

	assert.Equal(t, errors.OriginGuest, got.Origin)
	assert.Equal(t, "disk full", got.Message)
	assert.ErrorIs(t, got, cause)
}

func TestTrapFromError_JSError(t *testing.T) {
	vm := goja.New()
	fn, err := vm.RunString(`(function() { throw new TypeError("bad argument") })`)
	require.NoError(t, err)

	got := TrapFromError(callErr(t, vm, fn))
	assert.Equal(t, errors.OriginGuest, got.Origin)
	assert.Equal(t, "TypeError: bad argument", got.Message)
	assert.NotNil(t, got.Payload)
}

func TestTrapFromError_ThrownPrimitive(t *testing.T) {
	vm := goja.New()
	fn, err := vm.RunString(`(function() { throw 42 })`)
	require.NoError(t, err)

	got := TrapFromError(callErr(t, vm, fn))
	assert.Equal(t, "42", got.Message)
	assert.Equal(t, int64(42), got.Payload)
}

func TestTrapFromError_ThrownObject(t *testing.T) {
	vm := goja.New()
	fn, err := vm.RunString(`(function() { throw {code: 7} })`)
	require.NoError(t, err)

	got := TrapFromError(callErr(t, vm, fn))
	payload, ok := got.Payload.(map[string]any)
	require.True(t, ok, "payload %T", got.Payload)
	assert.Equal(t, int64(7), payload["code"])
}

func TestTrapFromError_Interrupt(t *testing.T) {
	vm := goja.New()
	vm.Interrupt("deadline")
	_, err := vm.RunString(`for (;;) {}`)
	require.Error(t, err)

	got := TrapFromError(err)
	assert.Equal(t, errors.OriginHost, got.Origin)
	assert.Equal(t, "deadline", got.Payload)
	assert.Contains(t, got.Message, "deadline")
}

func TestTrapFromError_InterruptWithTrap(t *testing.T) {
	vm := goja.New()
	orig := errors.NewTrap(errors.OriginResume, "cancelled")
	vm.Interrupt(orig)
	_, err := vm.RunString(`for (;;) {}`)
	require.Error(t, err)

	assert.Same(t, orig, TrapFromError(err))
}

func TestTrapFromError_PlainError(t *testing.T) {
	cause := stderrors.New("engine closed")
	got := TrapFromError(cause)
	assert.Equal(t, errors.OriginHost, got.Origin)
	assert.ErrorIs(t, got, cause)

	orig := errors.NewTrap(errors.OriginResume, "x")
	assert.Same(t, orig, TrapFromError(orig))
}
