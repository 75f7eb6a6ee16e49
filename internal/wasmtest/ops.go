package wasmtest

import "math"

const (
	opUnreachable byte = 0x00
	opIf          byte = 0x04
	opElse        byte = 0x05
	opEnd         byte = 0x0b
	opReturn      byte = 0x0f
	opCall        byte = 0x10
	opDrop        byte = 0x1a
	opLocalGet    byte = 0x20
	opLocalSet    byte = 0x21
	opGlobalGet   byte = 0x23
	opGlobalSet   byte = 0x24
	opI32Const    byte = 0x41
	opI64Const    byte = 0x42
	opF32Const    byte = 0x43
	opF64Const    byte = 0x44
	opI32Eq       byte = 0x46
	opI32Add      byte = 0x6a
	opI32Mul      byte = 0x6c
	opI64Add      byte = 0x7c

	blockEmpty byte = 0x40
)

// Code concatenates instruction sequences.
func Code(parts ...[]byte) []byte {
	var out []byte
	for _, p := range parts {
		out = append(out, p...)
	}
	return out
}

func withU32(op byte, idx uint32) []byte {
	w := &writer{}
	w.Byte(op)
	w.WriteU32(idx)
	return w.Bytes()
}

func Unreachable() []byte         { return []byte{opUnreachable} }
func Return() []byte              { return []byte{opReturn} }
func Drop() []byte                { return []byte{opDrop} }
func End() []byte                 { return []byte{opEnd} }
func Else() []byte                { return []byte{opElse} }
func If() []byte                  { return []byte{opIf, blockEmpty} }
func I32Eq() []byte               { return []byte{opI32Eq} }
func I32Add() []byte              { return []byte{opI32Add} }
func I32Mul() []byte              { return []byte{opI32Mul} }
func I64Add() []byte              { return []byte{opI64Add} }
func Call(fn uint32) []byte       { return withU32(opCall, fn) }
func LocalGet(idx uint32) []byte  { return withU32(opLocalGet, idx) }
func LocalSet(idx uint32) []byte  { return withU32(opLocalSet, idx) }
func GlobalGet(idx uint32) []byte { return withU32(opGlobalGet, idx) }
func GlobalSet(idx uint32) []byte { return withU32(opGlobalSet, idx) }

func I32Const(v int32) []byte {
	w := &writer{}
	w.Byte(opI32Const)
	w.WriteS64(int64(v))
	return w.Bytes()
}

func I64Const(v int64) []byte {
	w := &writer{}
	w.Byte(opI64Const)
	w.WriteS64(v)
	return w.Bytes()
}

func F32Const(v float32) []byte {
	w := &writer{}
	w.Byte(opF32Const)
	w.WriteU32LE(math.Float32bits(v))
	return w.Bytes()
}

func F64Const(v float64) []byte {
	w := &writer{}
	w.Byte(opF64Const)
	w.WriteU64LE(math.Float64bits(v))
	return w.Bytes()
}
