package wasmtest

import (
	"github.com/wippyai/wasm-bridge/value"
)

const (
	magic   uint32 = 0x6D736100
	version uint32 = 0x01
)

const (
	sectionType     byte = 1
	sectionImport   byte = 2
	sectionFunction byte = 3
	sectionMemory   byte = 5
	sectionGlobal   byte = 6
	sectionExport   byte = 7
	sectionCode     byte = 10
)

const (
	kindFunc   byte = 0
	kindMemory byte = 2
	kindGlobal byte = 3
)

// Import is an imported function.
type Import struct {
	Module  string
	Name    string
	Params  []value.ValueType
	Results []value.ValueType
}

// Func is a defined function. Body holds the instructions without the
// final end opcode. Parameters occupy the first local indices.
type Func struct {
	Export  string
	Params  []value.ValueType
	Results []value.ValueType
	Locals  []value.ValueType
	Body    []byte
}

// Global is an i32 or i64 global initialized to Init.
type Global struct {
	Export  string
	Type    value.ValueType
	Init    int64
	Mutable bool
}

// Memory is a linear memory of Min pages.
type Memory struct {
	Export string
	Min    uint32
}

// Module describes a module to encode. Function indices number imports
// first, then Funcs in order.
type Module struct {
	Memory  *Memory
	Imports []Import
	Globals []Global
	Funcs   []Func
}

// FuncIndex returns the index of the defined function at position i.
func (m *Module) FuncIndex(i int) uint32 { return uint32(len(m.Imports) + i) }

// Encode encodes the module to WebAssembly binary format
func (m *Module) Encode() []byte {
	w := &writer{}
	w.WriteU32LE(magic)
	w.WriteU32LE(version)

	// One type per import and function; duplicates are valid.
	if n := len(m.Imports) + len(m.Funcs); n > 0 {
		sec := &writer{}
		sec.WriteU32(uint32(n))
		for _, imp := range m.Imports {
			writeFuncType(sec, imp.Params, imp.Results)
		}
		for _, fn := range m.Funcs {
			writeFuncType(sec, fn.Params, fn.Results)
		}
		writeSection(w, sectionType, sec.Bytes())
	}

	if len(m.Imports) > 0 {
		sec := &writer{}
		sec.WriteU32(uint32(len(m.Imports)))
		for i, imp := range m.Imports {
			sec.WriteName(imp.Module)
			sec.WriteName(imp.Name)
			sec.Byte(kindFunc)
			sec.WriteU32(uint32(i))
		}
		writeSection(w, sectionImport, sec.Bytes())
	}

	if len(m.Funcs) > 0 {
		sec := &writer{}
		sec.WriteU32(uint32(len(m.Funcs)))
		for i := range m.Funcs {
			sec.WriteU32(uint32(len(m.Imports) + i))
		}
		writeSection(w, sectionFunction, sec.Bytes())
	}

	if m.Memory != nil {
		sec := &writer{}
		sec.WriteU32(1)
		sec.Byte(0x00)
		sec.WriteU32(m.Memory.Min)
		writeSection(w, sectionMemory, sec.Bytes())
	}

	if len(m.Globals) > 0 {
		sec := &writer{}
		sec.WriteU32(uint32(len(m.Globals)))
		for _, g := range m.Globals {
			sec.Byte(byte(g.Type))
			if g.Mutable {
				sec.Byte(0x01)
			} else {
				sec.Byte(0x00)
			}
			if g.Type == value.I64 {
				sec.WriteBytes(I64Const(g.Init))
			} else {
				sec.WriteBytes(I32Const(int32(g.Init)))
			}
			sec.Byte(opEnd)
		}
		writeSection(w, sectionGlobal, sec.Bytes())
	}

	type export struct {
		name string
		kind byte
		idx  uint32
	}
	var exports []export
	for i, fn := range m.Funcs {
		if fn.Export != "" {
			exports = append(exports, export{fn.Export, kindFunc, m.FuncIndex(i)})
		}
	}
	if m.Memory != nil && m.Memory.Export != "" {
		exports = append(exports, export{m.Memory.Export, kindMemory, 0})
	}
	for i, g := range m.Globals {
		if g.Export != "" {
			exports = append(exports, export{g.Export, kindGlobal, uint32(i)})
		}
	}
	if len(exports) > 0 {
		sec := &writer{}
		sec.WriteU32(uint32(len(exports)))
		for _, e := range exports {
			sec.WriteName(e.name)
			sec.Byte(e.kind)
			sec.WriteU32(e.idx)
		}
		writeSection(w, sectionExport, sec.Bytes())
	}

	if len(m.Funcs) > 0 {
		sec := &writer{}
		sec.WriteU32(uint32(len(m.Funcs)))
		for _, fn := range m.Funcs {
			body := &writer{}
			body.WriteU32(uint32(len(fn.Locals)))
			for _, t := range fn.Locals {
				body.WriteU32(1)
				body.Byte(byte(t))
			}
			body.WriteBytes(fn.Body)
			body.Byte(opEnd)
			sec.WriteU32(uint32(body.Len()))
			sec.WriteBytes(body.Bytes())
		}
		writeSection(w, sectionCode, sec.Bytes())
	}

	return w.Bytes()
}

func writeSection(w *writer, id byte, data []byte) {
	w.Byte(id)
	w.WriteU32(uint32(len(data)))
	w.WriteBytes(data)
}

func writeFuncType(w *writer, params, results []value.ValueType) {
	w.Byte(0x60)
	writeValTypes(w, params)
	writeValTypes(w, results)
}

func writeValTypes(w *writer, types []value.ValueType) {
	w.WriteU32(uint32(len(types)))
	for _, t := range types {
		w.Byte(byte(t))
	}
}
