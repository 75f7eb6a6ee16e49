// Package runtime provides the high-level API for running core WebAssembly
// modules behind a goja VM.
//
// # Quick Start
//
//	ctx := context.Background()
//	rt, err := runtime.New(ctx)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer rt.Close(ctx)
//
//	// Load a module
//	mod, err := rt.LoadWASM(ctx, "math", wasmBytes)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// Create an instance
//	inst, err := mod.Instantiate(ctx)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer inst.Close(ctx)
//
//	// Call exported functions
//	result, err := inst.Call(ctx, "add", 40, 2)
//	fmt.Println(result) // 42
//
// # Typed Calls
//
// Instance.Call converts arguments on every call. For hot paths bind the
// export once with package typed:
//
//	fn, _ := inst.Function("add")
//	add, err := typed.Bind2[int32, int32, int32](fn)
//	sum, err := add.Call(ctx, inst.Store(), 40, 2)
//
// # Host Functions
//
// Register Go functions as module imports before instantiating:
//
//	// Register a typed function
//	rt.RegisterFunc("env", "log", func(ctx context.Context, v int32) {
//	    fmt.Println(v)
//	})
//
//	// Or implement the Host interface for a full namespace
//	rt.RegisterHost(myHost)
//
// A leading context.Context parameter receives the context of the call in
// flight. A trailing error result becomes a trap. Several results are
// returned to the guest in order.
//
// Method names of a Host are converted to snake_case:
//
//	Go Method        Import Name
//	───────────────────────────────
//	Add              add
//	ReadU32          read_u32
//	GetHTTPURL       get_httpurl
//
// Modules importing wasi_snapshot_preview1 get wazero's implementation
// unless a host registers that namespace.
//
// # Asyncify Support
//
// For modules compiled with wasm-opt --asyncify, async host functions
// suspend the guest while they run:
//
//	rt.RegisterFuncAsync("env", "fetch", func(ctx context.Context) (int32, error) {
//	    return fetchSomething(ctx)
//	})
//	inst, err := mod.InstantiateWithAsyncify(ctx)
//
// # Thread Safety
//
// Runtime and Module are safe for concurrent use. You can call
// Module.Instantiate() from multiple goroutines concurrently.
//
// Instance is NOT thread-safe. Each goroutine should have its own
// Instance, or access must be synchronized externally.
//
// # Resource Management
//
// Always close instances when done. Closing releases WASM memory, the
// instance's store and its reference table.
package runtime
