package runtime

import (
	"context"

	"github.com/dop251/goja"

	wasmbridge "github.com/wippyai/wasm-bridge"
	"github.com/wippyai/wasm-bridge/engine"
	"github.com/wippyai/wasm-bridge/errors"
	"github.com/wippyai/wasm-bridge/typed"
	"github.com/wippyai/wasm-bridge/value"
)

type Instance struct {
	module *Module
	inst   *engine.WazeroInstance
	store  *engine.Store
}

// Function returns an export paired with its signature, ready for
// typed.BindN. Bound functions are called with Store().
func (i *Instance) Function(name string) (*typed.Function, error) {
	return typed.FromExport(i.inst, name)
}

// Call invokes an exported function, converting args to the declared
// parameter types. No result returns nil, one result its Go value, several
// results a []any.
func (i *Instance) Call(ctx context.Context, name string, args ...any) (any, error) {
	if i.module == nil {
		return nil, errors.NotInitialized(errors.PhaseRuntime, "module")
	}
	fn, err := i.Function(name)
	if err != nil {
		return nil, err
	}

	params := fn.Signature().Params
	if len(args) != len(params) {
		return nil, errors.ArityMismatch(errors.PhaseCall, name, len(args), len(params))
	}
	vals := make([]value.Value, len(args))
	for k, arg := range args {
		v, err := toValue(i.store, params[k], arg)
		if err != nil {
			if e, ok := err.(*errors.Error); ok {
				e.Path = []string{name, argName(k)}
			}
			return nil, err
		}
		vals[k] = v
	}

	results, err := fn.Call(ctx, i.store, vals...)
	if err != nil {
		return nil, err
	}
	switch len(results) {
	case 0:
		return nil, nil
	case 1:
		return fromValue(i.store, results[0]), nil
	}
	out := make([]any, len(results))
	for k, r := range results {
		out[k] = fromValue(i.store, r)
	}
	return out, nil
}

// CallValues invokes an exported function with dynamically typed values.
func (i *Instance) CallValues(ctx context.Context, name string, args ...value.Value) ([]value.Value, error) {
	fn, err := i.Function(name)
	if err != nil {
		return nil, err
	}
	return fn.Call(ctx, i.store, args...)
}

func (i *Instance) Store() *engine.Store {
	return i.store
}

func (i *Instance) VM() *goja.Runtime {
	return i.store.VM()
}

// Exports returns the JS object holding the export callables.
func (i *Instance) Exports() *goja.Object {
	return i.inst.Exports()
}

func (i *Instance) Module() *Module {
	return i.module
}

// Memory returns the exported linear memory, or nil.
func (i *Instance) Memory() wasmbridge.Memory {
	if mem := i.inst.Memory(); mem != nil {
		return mem
	}
	return nil
}

func (i *Instance) MemorySize() uint32 {
	return i.inst.MemorySize()
}

// Close releases the instance and its store.
func (i *Instance) Close(ctx context.Context) error {
	return i.store.Close(ctx)
}

// EnableAsyncify initializes asyncify support.
// The module must have been compiled with wasm-opt --asyncify.
func (i *Instance) EnableAsyncify(config engine.AsyncifyConfig) error {
	return i.inst.EnableAsyncify(config)
}

func (i *Instance) Asyncify() *engine.Asyncify {
	return i.inst.Asyncify()
}
