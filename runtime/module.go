package runtime

import (
	"context"

	"github.com/dop251/goja"

	"github.com/wippyai/wasm-bridge/engine"
	"github.com/wippyai/wasm-bridge/value"
)

type Module struct {
	runtime *Runtime
	module  *engine.WazeroModule
}

// InstanceConfig holds per-instance settings.
type InstanceConfig struct {
	engine.InstanceConfig

	// VM hosts the instance's exports and imports. nil creates a fresh
	// goja runtime. A VM must not be shared between live instances.
	VM *goja.Runtime
}

func (m *Module) Name() string {
	return m.module.Name()
}

func (m *Module) Instantiate(ctx context.Context) (*Instance, error) {
	return m.InstantiateWithConfig(ctx, InstanceConfig{})
}

// InstantiateWithAsyncify creates an instance of a module processed with
// wasm-opt --asyncify, so async host functions can suspend it.
func (m *Module) InstantiateWithAsyncify(ctx context.Context) (*Instance, error) {
	return m.InstantiateWithConfig(ctx, InstanceConfig{
		InstanceConfig: engine.InstanceConfig{Asyncify: &engine.AsyncifyConfig{}},
	})
}

// InstantiateWithConfig creates an instance on its own store. Registered
// hosts are linked as the imports object.
func (m *Module) InstantiateWithConfig(ctx context.Context, cfg InstanceConfig) (*Instance, error) {
	store := m.runtime.engine.NewStore(cfg.VM)

	imports, err := m.runtime.hosts.Imports(store)
	if err != nil {
		_ = store.Close(ctx)
		return nil, err
	}

	inst, err := m.module.Instantiate(ctx, store, imports, cfg.InstanceConfig)
	if err != nil {
		_ = store.Close(ctx)
		return nil, err
	}

	return &Instance{
		module: m,
		inst:   inst,
		store:  store,
	}, nil
}

type Export struct {
	Name      string
	Signature value.Signature
}

// Exports lists exported functions sorted by name.
func (m *Module) Exports() []Export {
	names := m.module.Exports()
	if len(names) == 0 {
		return nil
	}
	exports := make([]Export, len(names))
	for i, name := range names {
		sig, _ := m.module.ExportSignature(name)
		exports[i] = Export{Name: name, Signature: sig}
	}
	return exports
}

// Imports lists the functions the module expects from its host.
func (m *Module) Imports() []engine.Import {
	return m.module.Imports()
}

// IsAsyncified reports whether the module was processed with
// wasm-opt --asyncify.
func (m *Module) IsAsyncified() bool {
	return m.module.IsAsyncified()
}
