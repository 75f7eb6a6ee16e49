// Package value defines the WebAssembly value model shared by the bridge:
// value types, the untagged 128-bit RawValue slot, the Native constraint of
// Go types that map onto a slot, and dynamically typed Values.
//
// Conversions between native Go values and slots are bit-exact. Integers use
// two's complement, floats keep their IEEE-754 bits (including NaN
// payloads), and references are table handles where 0 is null.
package value
