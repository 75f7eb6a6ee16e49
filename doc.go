// Package wasmbridge calls WebAssembly exports from Go through a goja VM.
//
// Guest functions are exposed by wazero as JS callables. The bridge pairs a
// callable with its declared signature and calls it with native Go values,
// converting them bit-exactly through 128-bit raw slots on the way in and
// out. Host callbacks may ask for a call to be repeated, finished early or
// aborted, and every failure comes back as a structured error or a trap.
//
// # Architecture Overview
//
//	wasmbridge/          Root package with the Memory interface and version
//	├── runtime/         High-level API for loading and running modules
//	├── typed/           Statically typed calls of arity 0 through 20
//	├── engine/          wazero integration, stores and the call loop
//	├── bridge/          Raw value to JS value codec and trap translation
//	├── value/           Value types, raw slots and signatures
//	├── resource/        Reference handle table for externref and funcref
//	├── errors/          Structured error types and traps
//	└── cmd/run/         Command line runner
//
// # Quick Start
//
//	rt, err := runtime.New(ctx)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer rt.Close(ctx)
//
//	mod, err := rt.LoadWASM(ctx, "math", wasmBytes)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	inst, err := mod.Instantiate(ctx)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer inst.Close(ctx)
//
//	fn, _ := inst.Function("add")
//	add, err := typed.Bind2[int32, int32, int32](fn)
//	sum, err := add.Call(ctx, inst.Store(), 40, 2)
//
// # Value Types
//
// The native types int32, uint32, int64, uint64, float32 and float64 map to
// the wasm numeric types. value.Extern and value.Func are handles into the
// store's reference table. Several results are returned through a struct
// whose fields are assigned in declaration order.
//
// # Thread Safety
//
// Runtime and Module are safe for concurrent use. A Store and the instance
// that owns it belong to one goroutine at a time.
//
// # Memory Model
//
// WASM linear memory can only grow, never shrink. When guest applications
// free memory, it remains allocated but available for reuse within the
// instance.
package wasmbridge
