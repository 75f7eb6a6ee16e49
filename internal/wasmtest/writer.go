package wasmtest

import (
	"bytes"
	"encoding/binary"
)

// writer provides buffered writing utilities for WASM binary encoding.
type writer struct {
	buf bytes.Buffer
}

func (w *writer) Bytes() []byte          { return w.buf.Bytes() }
func (w *writer) Len() int               { return w.buf.Len() }
func (w *writer) Byte(b byte)            { w.buf.WriteByte(b) }
func (w *writer) WriteBytes(data []byte) { w.buf.Write(data) }

// WriteU32 writes an unsigned LEB128 encoded uint32.
func (w *writer) WriteU32(v uint32) {
	for {
		b := byte(v & 0x7f)
		v >>= 7
		if v != 0 {
			b |= 0x80
		}
		w.buf.WriteByte(b)
		if v == 0 {
			break
		}
	}
}

// WriteS64 writes a signed LEB128 encoded int64.
func (w *writer) WriteS64(v int64) {
	more := true
	for more {
		b := byte(v & 0x7f)
		v >>= 7
		if (v == 0 && (b&0x40) == 0) || (v == -1 && (b&0x40) != 0) {
			more = false
		} else {
			b |= 0x80
		}
		w.buf.WriteByte(b)
	}
}

// WriteName writes a UTF-8 encoded name (length-prefixed).
func (w *writer) WriteName(s string) {
	w.WriteU32(uint32(len(s)))
	w.buf.WriteString(s)
}

// WriteU32LE writes a little-endian uint32 (fixed 4 bytes).
func (w *writer) WriteU32LE(v uint32) {
	var buf [4]byte
	binary.LittleEndian.PutUint32(buf[:], v)
	w.buf.Write(buf[:])
}

// WriteU64LE writes a little-endian uint64 (fixed 8 bytes).
func (w *writer) WriteU64LE(v uint64) {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], v)
	w.buf.Write(buf[:])
}
