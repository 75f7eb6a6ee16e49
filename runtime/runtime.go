package runtime

import (
	"bytes"
	"context"

	"github.com/wippyai/wasm-bridge/engine"
	"github.com/wippyai/wasm-bridge/errors"
)

type Runtime struct {
	engine *engine.WazeroEngine
	hosts  *HostRegistry
}

// New creates a runtime configured from WASM_BRIDGE_* environment variables.
func New(ctx context.Context) (*Runtime, error) {
	cfg, err := engine.ConfigFromEnv(engine.Config{}, nil)
	if err != nil {
		return nil, err
	}
	return NewWithConfig(ctx, cfg)
}

func NewWithConfig(ctx context.Context, cfg engine.Config) (*Runtime, error) {
	eng, err := engine.NewEngine(ctx, cfg)
	if err != nil {
		return nil, errors.Load("create engine", err)
	}

	return &Runtime{
		engine: eng,
		hosts:  NewHostRegistry(),
	}, nil
}

// Close releases all runtime resources.
// All instances must be closed before calling this.
func (r *Runtime) Close(ctx context.Context) error {
	return r.engine.Close(ctx)
}

func (r *Runtime) Engine() *engine.WazeroEngine {
	return r.engine
}

// RegisterHost registers all exported methods of h as host functions.
// Must be called BEFORE instantiating modules that import these functions.
// Method names are converted from PascalCase to snake_case (GetValue -> get_value).
func (r *Runtime) RegisterHost(h Host) error {
	return r.hosts.RegisterHost(h)
}

func (r *Runtime) RegisterFunc(namespace, name string, fn any) error {
	return r.hosts.RegisterFunc(namespace, name, fn)
}

// RegisterFuncAsync registers fn as an import that suspends the guest while
// it runs. The module must be instantiated with asyncify.
func (r *Runtime) RegisterFuncAsync(namespace, name string, fn any) error {
	return r.hosts.RegisterFuncAsync(namespace, name, fn)
}

func (r *Runtime) Hosts() *HostRegistry {
	return r.hosts
}

var (
	wasmMagic        = []byte{0x00, 'a', 's', 'm'}
	componentVersion = []byte{0x0d, 0x00, 0x01, 0x00}
)

// isComponent reports whether wasm carries a Component Model header.
func isComponent(wasm []byte) bool {
	return len(wasm) >= 8 && bytes.Equal(wasm[:4], wasmMagic) && bytes.Equal(wasm[4:8], componentVersion)
}

// LoadWASM compiles a core WebAssembly module. name labels the module in
// logs and instance names.
func (r *Runtime) LoadWASM(ctx context.Context, name string, wasm []byte) (*Module, error) {
	if isComponent(wasm) {
		return nil, errors.InvalidInput(errors.PhaseLoad, "component binaries are not supported; load a core module")
	}

	mod, err := r.engine.Compile(ctx, name, wasm)
	if err != nil {
		return nil, err
	}

	return &Module{
		runtime: r,
		module:  mod,
	}, nil
}
