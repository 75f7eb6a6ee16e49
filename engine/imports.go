package engine

import (
	"context"

	"github.com/dop251/goja"
	"github.com/tetratelabs/wazero/api"
	"github.com/tetratelabs/wazero/imports/wasi_snapshot_preview1"

	"github.com/wippyai/wasm-bridge/bridge"
	"github.com/wippyai/wasm-bridge/errors"
	"github.com/wippyai/wasm-bridge/value"
)

// link registers one host module per import namespace. Functions come from
// the JS imports object; WASI falls back to wazero's implementation when the
// object does not provide it.
func (i *WazeroInstance) link(ctx context.Context, imports *goja.Object) error {
	if len(i.module.imports) == 0 {
		return nil
	}

	var (
		order   []string
		groups  = make(map[string][]Import)
		missing []string
	)
	for _, imp := range i.module.imports {
		if _, seen := groups[imp.Module]; !seen {
			order = append(order, imp.Module)
		}
		groups[imp.Module] = append(groups[imp.Module], imp)
	}

	for _, ns := range order {
		nsObj := namespaceObject(imports, ns)
		if nsObj == nil && ns == wasi_snapshot_preview1.ModuleName {
			if err := i.linkWASI(ctx); err != nil {
				return err
			}
			continue
		}

		builder := i.rt.NewHostModuleBuilder(ns)
		complete := true
		for _, imp := range groups[ns] {
			var fn goja.Callable
			if nsObj != nil {
				fn, _ = goja.AssertFunction(nsObj.Get(imp.Name))
			}
			if fn == nil {
				missing = append(missing, imp.Key())
				complete = false
				continue
			}
			if err := checkHostSignature(errors.PhaseLinking, imp.Key(), imp.Signature); err != nil {
				return err
			}
			builder = builder.NewFunctionBuilder().
				WithGoModuleFunction(i.importFunc(imp, fn), apiTypes(imp.Signature.Params), apiTypes(imp.Signature.Results)).
				WithName(imp.Name).
				Export(imp.Name)
		}
		if !complete {
			continue
		}
		if _, err := builder.Instantiate(ctx); err != nil {
			return errors.Registration(errors.PhaseLinking, ns, "*", err)
		}
	}

	if len(missing) > 0 {
		return errors.NewMissingImportsError(missing)
	}
	return nil
}

func namespaceObject(imports *goja.Object, ns string) *goja.Object {
	if imports == nil {
		return nil
	}
	v := imports.Get(ns)
	if v == nil || goja.IsUndefined(v) || goja.IsNull(v) {
		return nil
	}
	obj, ok := v.(*goja.Object)
	if !ok {
		return nil
	}
	return obj
}

// linkWASI instantiates WASI preview1 in the instance runtime.
func (i *WazeroInstance) linkWASI(ctx context.Context) error {
	builder := i.rt.NewHostModuleBuilder(wasi_snapshot_preview1.ModuleName)
	wasi_snapshot_preview1.NewFunctionExporter().ExportFunctions(builder)
	if _, err := builder.Instantiate(ctx); err != nil {
		return errors.Registration(errors.PhaseLinking, wasi_snapshot_preview1.ModuleName, "*", err)
	}
	return nil
}

// importFunc builds the wazero host function forwarding a guest import to
// its JS implementation. Failures panic with *errors.Trap, which wazero
// hands back to the export call wrapped.
func (i *WazeroInstance) importFunc(imp Import, fn goja.Callable) api.GoModuleFunc {
	sig := imp.Signature
	key := imp.Key()

	return func(ctx context.Context, _ api.Module, stack []uint64) {
		s := ActiveStore(i.store.vm)
		if s == nil {
			s = i.store
		}

		if a := i.asyncify; a != nil && a.IsRewinding() {
			if err := a.StopRewind(ctx); err != nil {
				panic(errors.UserTrap(errors.OriginHost, err))
			}
			r, ok := i.takeResume()
			if !ok {
				panic(errors.NewTrap(errors.OriginHost, "%s: rewinding without a settled result", key))
			}
			storeResults(s, key, r.sig, r.value, stack)
			return
		}

		args := make([]goja.Value, len(sig.Params))
		for k, t := range sig.Params {
			args[k] = s.codec.Encode(value.RawFromBits(t, stack[k]), t)
		}

		ret, err := fn(goja.Undefined(), args...)
		if err != nil {
			panic(bridge.TrapFromError(err))
		}

		if op, ok := asPending(ret); ok {
			if i.asyncify == nil {
				panic(errors.NewTrap(errors.OriginHost, "%s returned a pending value but asyncify is not enabled", key))
			}
			if err := i.suspend(ctx, s, op, sig); err != nil {
				panic(errors.UserTrap(errors.OriginHost, err))
			}
			return
		}

		storeResults(s, key, sig, ret, stack)
	}
}

func storeResults(s *Store, key string, sig value.Signature, ret goja.Value, stack []uint64) {
	n := len(sig.Results)
	if n == 0 {
		return
	}
	if n >= 2 && !bridge.IsAggregate(ret) {
		panic(errors.NewTrap(errors.OriginHost, "%s must return an array of %d values", key, n))
	}

	raws := make([]value.RawValue, n)
	decodeGuarded(s, sig.Results, ret, raws)
	for k := range raws {
		stack[k] = raws[k].Bits()
	}
}

// decodeGuarded decodes results, turning exceptions thrown by coercions
// (valueOf, toString) into traps.
func decodeGuarded(s *Store, types []value.ValueType, ret goja.Value, dst []value.RawValue) {
	defer func() {
		if r := recover(); r != nil {
			if ex, ok := r.(*goja.Exception); ok {
				panic(bridge.TrapFromError(ex))
			}
			panic(r)
		}
	}()
	s.codec.DecodeResults(ret, types, dst)
}
