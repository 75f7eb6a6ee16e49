// Package engine runs WebAssembly modules behind a goja host engine.
//
// Guest exports are surfaced into a goja VM as JS callables, the way the JS
// WebAssembly API exposes instance.exports, while the wasm bodies run on
// wazero. Guest imports are satisfied by JS functions from an imports
// object. Every crossing goes through the bridge codec, so values keep their
// exact wasm semantics.
//
// # Architecture
//
// The engine package provides four main types:
//
//	WazeroEngine   - Configuration, compilation cache, store factory
//	WazeroModule   - A compiled module with its export and import signatures
//	WazeroInstance - A running module whose exports are goja callables
//	Store          - Per-VM call context: reference table, codec, on-called slot
//
// # Call Flow
//
//  1. WazeroEngine.Compile() compiles the binary and records signatures
//  2. WazeroModule.Instantiate() links JS imports and surfaces exports
//  3. Store.Invoke() calls a callable and drives the reentrant call loop
//  4. Failures come back as *errors.Trap
//
// # Reentrant Call Loop
//
// After every host call Store.Invoke takes the on-called slot. A callback
// found there decides whether the call is repeated (InvokeAgain), accepted
// (Finish) or turned into a trap (Abort). While a call is in flight the
// store id is published on the VM as the __store_ptr global so import
// trampolines can find their store.
//
// # Asyncify Support
//
// Modules compiled with wasm-opt --asyncify can suspend. When a JS import
// returns a Promise or an engine.PendingOp the guest unwinds, the call loop
// settles the operation, the guest rewinds and the import returns the
// settled value:
//
//	inst, err := mod.Instantiate(ctx, store, imports, engine.InstanceConfig{
//	    Asyncify: &engine.AsyncifyConfig{},
//	})
//	fn, _, _ := inst.Export("run")
//	result, err := store.Invoke(ctx, fn, nil)
//
// # Thread Safety
//
// WazeroEngine and WazeroModule are safe for concurrent use.
// Store and WazeroInstance are NOT thread-safe; a goja VM belongs to one
// goroutine at a time.
//
// Most users should use the runtime package for a simpler API.
package engine
