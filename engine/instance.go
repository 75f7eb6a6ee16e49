package engine

import (
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"strings"

	"github.com/dop251/goja"
	"github.com/tetratelabs/wazero"
	"github.com/tetratelabs/wazero/api"
	"github.com/tetratelabs/wazero/sys"
	"go.uber.org/zap"

	"github.com/wippyai/wasm-bridge/bridge"
	"github.com/wippyai/wasm-bridge/errors"
	"github.com/wippyai/wasm-bridge/value"
)

// InstanceConfig holds configuration for module instantiation
type InstanceConfig struct {
	// Name overrides the module name inside the instance runtime.
	Name string

	// Stdout, Stderr and Args are handed to WASI when the module imports it
	// and the imports object does not provide it.
	Stdout io.Writer
	Stderr io.Writer
	Args   []string

	// Asyncify enables suspension through asyncify when non-nil.
	Asyncify *AsyncifyConfig
}

// WazeroInstance is a running WASM instance whose exports are goja
// callables bound to one store.
// It is NOT safe for concurrent use from multiple goroutines.
type WazeroInstance struct {
	module   *WazeroModule
	store    *Store
	rt       wazero.Runtime
	mod      api.Module
	exports  *goja.Object
	asyncify *Asyncify
	memory   *WazeroMemory
	resume   resumeSlot
	closed   bool
}

// Instantiate links the module against imports, an object of the form
// {namespace: {name: function}}, and surfaces its exports on the store's VM.
// imports may be nil for modules without imports.
func (m *WazeroModule) Instantiate(ctx context.Context, s *Store, imports *goja.Object, cfg InstanceConfig) (*WazeroInstance, error) {
	if s.Closed() {
		return nil, errors.Closed(errors.PhaseLinking, "store")
	}

	rt := m.engine.newRuntime(ctx)
	compiled, err := rt.CompileModule(ctx, m.bytes)
	if err != nil {
		_ = rt.Close(ctx)
		return nil, errors.Load("compile failed", err)
	}

	inst := &WazeroInstance{
		module: m,
		store:  s,
		rt:     rt,
	}

	if err := inst.link(ctx, imports); err != nil {
		_ = rt.Close(ctx)
		return nil, err
	}

	name := cfg.Name
	if name == "" {
		name = m.name
	}
	modConfig := wazero.NewModuleConfig().
		WithName(name).
		WithStartFunctions()
	if cfg.Stdout != nil {
		modConfig = modConfig.WithStdout(cfg.Stdout)
	}
	if cfg.Stderr != nil {
		modConfig = modConfig.WithStderr(cfg.Stderr)
	}
	if len(cfg.Args) > 0 {
		modConfig = modConfig.WithArgs(cfg.Args...)
	}

	mod, err := rt.InstantiateModule(ctx, compiled, modConfig)
	if err != nil {
		_ = rt.Close(ctx)
		return nil, errors.Instantiation(err)
	}
	inst.mod = mod
	if mem := moduleMemory(mod); mem != nil {
		inst.memory = &WazeroMemory{mem: mem}
	}

	if cfg.Asyncify != nil {
		if err := inst.EnableAsyncify(*cfg.Asyncify); err != nil {
			_ = rt.Close(ctx)
			return nil, err
		}
	}

	inst.exports = inst.surfaceExports()
	s.track(inst)

	s.logger.Debug("module instantiated",
		zap.String("module", m.name),
		zap.Uint64("store", s.id),
		zap.Bool("asyncify", inst.asyncify != nil))
	return inst, nil
}

func (i *WazeroInstance) surfaceExports() *goja.Object {
	vm := i.store.vm
	obj := vm.NewObject()
	for _, name := range i.module.exportNames {
		fn := i.mod.ExportedFunction(name)
		if fn == nil {
			continue
		}
		sig := i.module.exports[name]
		_ = obj.Set(name, i.exportFunc(name, fn, sig))
	}
	return obj
}

// checkHostSignature reports whether sig can be called across a wazero
// function boundary. funcref values are owned by wazero and never reach the
// bridge.
func checkHostSignature(phase errors.Phase, name string, sig value.Signature) error {
	if err := bridge.CheckSignature(sig); err != nil {
		return err
	}
	if sig.Has(value.FuncRef) {
		return errors.Unsupported(phase, fmt.Sprintf("funcref in signature of %s", name))
	}
	return nil
}

// exportFunc builds the goja callable standing for a guest export.
func (i *WazeroInstance) exportFunc(name string, fn api.Function, sig value.Signature) func(goja.FunctionCall) goja.Value {
	unsupported := checkHostSignature(errors.PhaseCall, name, sig)
	stackLen := max(len(sig.Params), len(sig.Results))
	busy := false

	return func(call goja.FunctionCall) goja.Value {
		s := i.store
		vm := s.vm
		if unsupported != nil {
			panic(vm.NewGoError(unsupported))
		}
		if i.closed {
			panic(vm.NewGoError(errors.Closed(errors.PhaseCall, "instance")))
		}

		codec := s.codec
		stack := make([]uint64, stackLen)
		for k, t := range sig.Params {
			stack[k] = codec.Decode(call.Argument(k), t).Bits()
		}

		// api.Function is not reentrant; a recursive call through an
		// import gets its own.
		callee := fn
		if busy {
			callee = i.mod.ExportedFunction(name)
		} else {
			busy = true
			defer func() { busy = false }()
		}

		s.depth++
		err := callee.CallWithStack(s.Context(), stack)
		s.depth--
		if err != nil {
			debugf("export %s failed: %v", name, err)
			panic(vm.NewGoError(guestTrap(err)))
		}

		if i.asyncify != nil && i.asyncify.IsUnwinding() {
			return goja.Undefined()
		}

		raws := make([]value.RawValue, len(sig.Results))
		for k, t := range sig.Results {
			raws[k] = value.RawFromBits(t, stack[k])
		}
		return codec.EncodeResults(raws, sig.Results)
	}
}

// guestTrap converts a failed guest call into a trap. Traps raised by
// imports cross wazero wrapped and are recovered unchanged.
func guestTrap(err error) *errors.Trap {
	if t, ok := errors.AsTrap(err); ok {
		return t
	}

	var exit *sys.ExitError
	if stderrors.As(err, &exit) {
		code := exit.ExitCode()
		switch code {
		case sys.ExitCodeContextCanceled:
			return &errors.Trap{Origin: errors.OriginHost, Message: "context canceled", Cause: err}
		case sys.ExitCodeDeadlineExceeded:
			return &errors.Trap{Origin: errors.OriginHost, Message: "deadline exceeded", Cause: err}
		}
		return &errors.Trap{Origin: errors.OriginGuest, Message: fmt.Sprintf("exit status %d", code), Payload: code, Cause: err}
	}

	var ex *goja.Exception
	if stderrors.As(err, &ex) {
		return bridge.TrapFromError(ex)
	}

	msg := err.Error()
	if idx := strings.IndexByte(msg, '\n'); idx >= 0 {
		msg = msg[:idx]
	}
	msg = strings.TrimSuffix(msg, " (recovered by wazero)")
	msg = strings.TrimPrefix(msg, "wasm error: ")
	return &errors.Trap{Origin: errors.OriginGuest, Message: msg, Cause: err}
}

// Exports returns the object holding one callable per exported function.
func (i *WazeroInstance) Exports() *goja.Object { return i.exports }

// Export returns the callable and declared signature of an exported
// function.
func (i *WazeroInstance) Export(name string) (goja.Callable, value.Signature, error) {
	sig, ok := i.module.exports[name]
	if !ok {
		return nil, value.Signature{}, errors.NotFound(errors.PhaseCall, "export", name)
	}
	fn, ok := goja.AssertFunction(i.exports.Get(name))
	if !ok {
		return nil, value.Signature{}, errors.NotFound(errors.PhaseCall, "export", name)
	}
	return fn, sig, nil
}

// Store returns the store the instance is bound to.
func (i *WazeroInstance) Store() *Store { return i.store }

// Module returns the compiled module the instance was created from.
func (i *WazeroInstance) Module() *WazeroModule { return i.module }

// Memory returns the instance's exported memory, or nil.
func (i *WazeroInstance) Memory() *WazeroMemory { return i.memory }

// MemorySize returns the current linear memory size in bytes, or 0 if no memory.
func (i *WazeroInstance) MemorySize() uint32 {
	if i.memory == nil {
		return 0
	}
	return i.memory.Size()
}

// EnableAsyncify initializes asyncify support for this instance.
// The module must have been compiled with asyncify (wasm-opt --asyncify).
func (i *WazeroInstance) EnableAsyncify(cfg AsyncifyConfig) error {
	a := NewAsyncify(cfg)
	if err := a.Init(i.mod); err != nil {
		return err
	}
	i.asyncify = a
	return nil
}

// Asyncify returns the asyncify controller if enabled.
func (i *WazeroInstance) Asyncify() *Asyncify {
	return i.asyncify
}

// Close releases the instance runtime and detaches it from its store.
func (i *WazeroInstance) Close(ctx context.Context) error {
	if i.closed {
		return nil
	}
	i.closed = true
	i.store.untrack(i)
	i.memory = nil
	i.resume = resumeSlot{}
	return i.rt.Close(ctx)
}
