package wasmbridge

// Memory is the linear memory of an instance as seen from the host.
type Memory interface {
	Read(offset uint32, length uint32) ([]byte, error)
	Write(offset uint32, data []byte) error
	ReadU32(offset uint32) (uint32, error)
	ReadU64(offset uint32) (uint64, error)
	WriteU32(offset uint32, value uint32) error
	WriteU64(offset uint32, value uint64) error
}

// MemorySizer provides the current size of WASM linear memory in bytes.
type MemorySizer interface {
	Size() uint32
}
