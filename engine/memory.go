package engine

import (
	"fmt"

	"github.com/tetratelabs/wazero/api"

	wasmbridge "github.com/wippyai/wasm-bridge"
	"github.com/wippyai/wasm-bridge/errors"
)

// WazeroMemory wraps wazero memory to implement wasmbridge.Memory
type WazeroMemory struct {
	mem api.Memory
}

func outOfBounds(op string, offset, length uint32) error {
	return errors.InvalidData(errors.PhaseRuntime, []string{"memory", op},
		fmt.Sprintf("out of bounds: offset=%d, length=%d", offset, length))
}

// moduleMemory returns the memory mod exports, or nil. wazero reports a
// missing memory as a typed nil, so presence is read from the definitions.
func moduleMemory(mod api.Module) api.Memory {
	if len(mod.ExportedMemoryDefinitions()) == 0 {
		return nil
	}
	return mod.Memory()
}

func (m *WazeroMemory) Read(offset uint32, length uint32) ([]byte, error) {
	data, ok := m.mem.Read(offset, length)
	if !ok {
		return nil, outOfBounds("read", offset, length)
	}
	return data, nil
}

func (m *WazeroMemory) Write(offset uint32, data []byte) error {
	if !m.mem.Write(offset, data) {
		return outOfBounds("write", offset, uint32(len(data)))
	}
	return nil
}

func (m *WazeroMemory) ReadU32(offset uint32) (uint32, error) {
	val, ok := m.mem.ReadUint32Le(offset)
	if !ok {
		return 0, outOfBounds("read", offset, 4)
	}
	return val, nil
}

func (m *WazeroMemory) ReadU64(offset uint32) (uint64, error) {
	val, ok := m.mem.ReadUint64Le(offset)
	if !ok {
		return 0, outOfBounds("read", offset, 8)
	}
	return val, nil
}

func (m *WazeroMemory) WriteU32(offset uint32, value uint32) error {
	if !m.mem.WriteUint32Le(offset, value) {
		return outOfBounds("write", offset, 4)
	}
	return nil
}

func (m *WazeroMemory) WriteU64(offset uint32, value uint64) error {
	if !m.mem.WriteUint64Le(offset, value) {
		return outOfBounds("write", offset, 8)
	}
	return nil
}

func (m *WazeroMemory) Size() uint32 {
	if m.mem == nil {
		return 0
	}
	return m.mem.Size()
}

// Compile-time check that WazeroMemory implements wasmbridge.Memory and MemorySizer
var _ wasmbridge.Memory = (*WazeroMemory)(nil)
var _ wasmbridge.MemorySizer = (*WazeroMemory)(nil)
