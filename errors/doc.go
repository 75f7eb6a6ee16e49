// Package errors provides structured error types for the wasm bridge.
//
// Configuration, binding and marshaling failures are *Error values,
// categorized by Phase (where the error occurred) and Kind (error category),
// with a parameter path, Go/wasm type names and a cause chain:
//
//	err := errors.New(errors.PhaseBind, errors.KindTypeMismatch).
//		Path("add", "param[1]").
//		GoType("float32").
//		WasmType("i64").
//		Build()
//
// Failures of a running call are *Trap values. A trap carries a message
// and/or an opaque payload and records whether it came from the guest, the
// host engine, or an on-called callback:
//
//	if trap, ok := errors.AsTrap(err); ok {
//		log.Printf("%s trap: %v", trap.Origin, trap.Payload)
//	}
//
// All errors implement the standard error interface and support errors.Is/As.
package errors
