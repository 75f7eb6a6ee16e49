// Package bridge converts wasm values to and from the host engine.
//
// The host engine is a goja VM. Integers travel as exact JS integers, floats
// as JS numbers, and references as the JS value they were created from (or
// an opaque box when the referenced value lives on the Go side). NaN values
// travel boxed so their payload bits survive the engine.
//
// Results follow the engine calling convention: no result is undefined, one
// result is the bare value, and several results are an array.
// DecodeResults panics with *ProtocolViolation when an engine breaks that
// convention.
//
// TrapFromError turns any error returned by an engine call into an
// *errors.Trap without wrapping traps twice.
package bridge
