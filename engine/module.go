package engine

import (
	"context"
	"sort"

	"github.com/tetratelabs/wazero"
	"github.com/tetratelabs/wazero/api"
	"go.uber.org/zap"

	"github.com/wippyai/wasm-bridge/errors"
	"github.com/wippyai/wasm-bridge/value"
)

// Import describes a function the module expects from its host.
type Import struct {
	Module    string
	Name      string
	Signature value.Signature
}

// Key returns the "module#name" form used in missing-import reports.
func (i Import) Key() string { return i.Module + "#" + i.Name }

// WazeroModule is a compiled WASM module. It is immutable and may be
// instantiated any number of times, from any store.
type WazeroModule struct {
	engine      *WazeroEngine
	rt          wazero.Runtime
	compiled    wazero.CompiledModule
	exports     map[string]value.Signature
	name        string
	bytes       []byte
	exportNames []string
	imports     []Import
}

// Compile validates and compiles wasm. name labels the module in logs and
// instance names.
func (e *WazeroEngine) Compile(ctx context.Context, name string, wasm []byte) (*WazeroModule, error) {
	e.mu.Lock()
	closed := e.closed
	e.mu.Unlock()
	if closed {
		return nil, errors.Closed(errors.PhaseLoad, "engine")
	}

	rt := e.newRuntime(ctx)
	compiled, err := rt.CompileModule(ctx, wasm)
	if err != nil {
		_ = rt.Close(ctx)
		return nil, errors.Load("compile failed", err)
	}

	m := &WazeroModule{
		engine:   e,
		rt:       rt,
		compiled: compiled,
		name:     name,
		bytes:    wasm,
		exports:  make(map[string]value.Signature),
	}
	for exportName, def := range compiled.ExportedFunctions() {
		m.exports[exportName] = signatureOf(def)
		m.exportNames = append(m.exportNames, exportName)
	}
	sort.Strings(m.exportNames)
	for _, def := range compiled.ImportedFunctions() {
		moduleName, importName, _ := def.Import()
		m.imports = append(m.imports, Import{
			Module:    moduleName,
			Name:      importName,
			Signature: signatureOf(def),
		})
	}

	e.mu.Lock()
	e.modules = append(e.modules, m)
	e.mu.Unlock()

	e.logger.Debug("module compiled",
		zap.String("module", name),
		zap.Int("exports", len(m.exportNames)),
		zap.Int("imports", len(m.imports)))
	return m, nil
}

func signatureOf(def api.FunctionDefinition) value.Signature {
	return value.Signature{
		Params:  valueTypes(def.ParamTypes()),
		Results: valueTypes(def.ResultTypes()),
	}
}

func valueTypes(types []api.ValueType) []value.ValueType {
	if len(types) == 0 {
		return nil
	}
	out := make([]value.ValueType, len(types))
	for i, t := range types {
		out[i] = value.ValueType(t)
	}
	return out
}

func apiTypes(types []value.ValueType) []api.ValueType {
	if len(types) == 0 {
		return nil
	}
	out := make([]api.ValueType, len(types))
	for i, t := range types {
		out[i] = api.ValueType(t)
	}
	return out
}

// Name returns the name given at compile time.
func (m *WazeroModule) Name() string { return m.name }

// Bytes returns the module binary.
func (m *WazeroModule) Bytes() []byte { return m.bytes }

// Exports returns the exported function names in sorted order.
func (m *WazeroModule) Exports() []string { return m.exportNames }

// ExportSignature returns the declared signature of an exported function.
func (m *WazeroModule) ExportSignature(name string) (value.Signature, bool) {
	sig, ok := m.exports[name]
	return sig, ok
}

// Imports returns the imported functions in declaration order.
func (m *WazeroModule) Imports() []Import { return m.imports }

// IsAsyncified reports whether the module exports the asyncify control
// functions.
func (m *WazeroModule) IsAsyncified() bool {
	for _, name := range AsyncifyExports {
		if _, ok := m.exports[name]; !ok {
			return false
		}
	}
	return true
}

func (m *WazeroModule) close(ctx context.Context) error {
	return m.rt.Close(ctx)
}
