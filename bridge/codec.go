package bridge

import (
	"math"
	"reflect"

	"github.com/dop251/goja"

	"github.com/wippyai/wasm-bridge/errors"
	"github.com/wippyai/wasm-bridge/resource"
	"github.com/wippyai/wasm-bridge/value"
)

var reflectTypeInt64 = reflect.TypeOf(int64(0))

// RefTable resolves reference handles for the codec.
type RefTable interface {
	Intern(kind resource.Kind, v any) resource.Handle
	GetKind(h resource.Handle, kind resource.Kind) (any, bool)
}

// nanBox carries the exact bits of a NaN through the host engine, which
// would otherwise canonicalize it.
type nanBox struct {
	bits uint64
	typ  value.ValueType
}

// int64Box carries an i64 that a JS number cannot hold exactly.
type int64Box struct {
	v int64
}

// maxSafeInteger is the largest integer a float64 represents exactly
// together with all of its neighbours.
const maxSafeInteger = 1<<53 - 1

// refBox is the host-side stand-in for a reference whose value did not
// originate in the host engine.
type refBox struct {
	handle resource.Handle
	kind   resource.Kind
}

// Handle returns the table handle a boxed reference stands for.
func (b *refBox) Handle() resource.Handle { return b.handle }

// Codec converts between raw wasm slots and goja values. It is bound to one
// VM and one reference table and is not safe for concurrent use.
type Codec struct {
	vm    *goja.Runtime
	refs  RefTable
	boxes map[resource.Handle]*goja.Object
}

// NewCodec creates a codec for vm. refs may be nil when no reference types
// cross the bridge.
func NewCodec(vm *goja.Runtime, refs RefTable) *Codec {
	return &Codec{vm: vm, refs: refs}
}

// VM returns the runtime the codec encodes for.
func (c *Codec) VM() *goja.Runtime { return c.vm }

// CheckType reports whether t can cross the bridge.
func CheckType(t value.ValueType) error {
	switch t {
	case value.I32, value.I64, value.F32, value.F64, value.ExternRef, value.FuncRef:
		return nil
	case value.V128:
		return errors.New(errors.PhaseBind, errors.KindUnsupported).
			WasmType(t.String()).
			Detail("v128 values cannot be represented in the host engine").
			Build()
	}
	return errors.New(errors.PhaseBind, errors.KindUnsupported).
		WasmType(t.String()).
		Build()
}

// CheckSignature reports whether every type of sig can cross the bridge.
func CheckSignature(sig value.Signature) error {
	for _, t := range sig.Params {
		if err := CheckType(t); err != nil {
			return err
		}
	}
	for _, t := range sig.Results {
		if err := CheckType(t); err != nil {
			return err
		}
	}
	return nil
}

// Encode converts a slot of type t into a host value.
func (c *Codec) Encode(r value.RawValue, t value.ValueType) goja.Value {
	switch t {
	case value.I32:
		return c.vm.ToValue(int64(r.I32()))
	case value.I64:
		return c.encodeInt64(r.I64())
	case value.F32:
		if value.IsNaN(t, r) {
			return c.vm.ToValue(&nanBox{bits: r.Bits(), typ: t})
		}
		return c.vm.ToValue(float64(r.F32()))
	case value.F64:
		if value.IsNaN(t, r) {
			return c.vm.ToValue(&nanBox{bits: r.Bits(), typ: t})
		}
		return c.vm.ToValue(r.F64())
	case value.ExternRef:
		return c.encodeRef(resource.Handle(r.Ref()), resource.KindExtern)
	case value.FuncRef:
		return c.encodeRef(resource.Handle(r.Ref()), resource.KindFunc)
	}
	panic(CheckType(t))
}

func (c *Codec) encodeInt64(n int64) goja.Value {
	if n > maxSafeInteger || n < -maxSafeInteger {
		return c.vm.ToValue(&int64Box{v: n})
	}
	return c.vm.ToValue(n)
}

// ToValue converts a Go value for the VM. 64-bit integers outside the safe
// range are boxed so they decode back exactly.
func (c *Codec) ToValue(x any) goja.Value {
	switch n := x.(type) {
	case int64:
		return c.encodeInt64(n)
	case uint64:
		return c.encodeInt64(int64(n))
	case int:
		return c.encodeInt64(int64(n))
	case uint:
		return c.encodeInt64(int64(n))
	}
	return c.vm.ToValue(x)
}

// Unbox returns the Go number behind a boxed i64 or NaN. Other values
// report false.
func Unbox(v goja.Value) (any, bool) {
	obj, ok := v.(*goja.Object)
	if !ok {
		return nil, false
	}
	switch b := obj.Export().(type) {
	case *int64Box:
		return b.v, true
	case *nanBox:
		if b.typ == value.F32 {
			return math.Float32frombits(uint32(b.bits)), true
		}
		return math.Float64frombits(b.bits), true
	}
	return nil, false
}

// Int64 returns the exact integer held by v: a boxed i64 or an integral
// number.
func Int64(v goja.Value) (int64, bool) {
	if x, ok := Unbox(v); ok {
		n, isInt := x.(int64)
		return n, isInt
	}
	if v == nil || v.ExportType() != reflectTypeInt64 {
		return 0, false
	}
	return v.ToInteger(), true
}

// OnReferenceEvent drops the box of a released handle.
func (c *Codec) OnReferenceEvent(e resource.Event) {
	if e.Type == resource.EventDropped {
		delete(c.boxes, e.Handle)
	}
}

func (c *Codec) encodeRef(h resource.Handle, kind resource.Kind) goja.Value {
	if h == 0 {
		return goja.Null()
	}
	if c.refs != nil {
		if v, ok := c.refs.GetKind(h, kind); ok {
			if jv, isJS := v.(goja.Value); isJS {
				return jv
			}
		}
	}
	if obj, ok := c.boxes[h]; ok {
		if b, _ := obj.Export().(*refBox); b != nil && b.kind == kind {
			return obj
		}
	}
	obj := c.vm.ToValue(&refBox{handle: h, kind: kind}).(*goja.Object)
	if c.boxes == nil {
		c.boxes = make(map[resource.Handle]*goja.Object)
	}
	c.boxes[h] = obj
	return obj
}

// Decode converts a host value into a slot of type t. Numbers follow the JS
// ToNumber coercion with wasm wrap-around for integers.
func (c *Codec) Decode(v goja.Value, t value.ValueType) value.RawValue {
	switch t {
	case value.I32, value.I64, value.F32, value.F64:
		return c.decodeNumber(v, t)
	case value.ExternRef:
		return value.RawRef(uint32(c.decodeRef(v, resource.KindExtern)))
	case value.FuncRef:
		return value.RawRef(uint32(c.decodeRef(v, resource.KindFunc)))
	}
	panic(CheckType(t))
}

func (c *Codec) decodeNumber(v goja.Value, t value.ValueType) value.RawValue {
	if v == nil || goja.IsUndefined(v) || goja.IsNull(v) {
		return value.FromFloat64(t, 0)
	}
	if obj, ok := v.(*goja.Object); ok {
		switch b := obj.Export().(type) {
		case *nanBox:
			if b.typ == t {
				return value.RawFromBits(t, b.bits)
			}
			return value.CanonicalNaN(t)
		case *int64Box:
			return fromInt64(t, b.v)
		}
		v = v.ToNumber()
	}

	if v.ExportType() == reflectTypeInt64 {
		return fromInt64(t, v.ToInteger())
	}

	f := v.ToFloat()
	if math.IsNaN(f) {
		if t == value.F32 || t == value.F64 {
			return value.CanonicalNaN(t)
		}
		return value.FromFloat64(t, 0)
	}
	return value.FromFloat64(t, f)
}

func fromInt64(t value.ValueType, n int64) value.RawValue {
	switch t {
	case value.I32:
		return value.RawI32(int32(n))
	case value.I64:
		return value.RawI64(n)
	case value.F32:
		return value.RawF32(float32(n))
	default:
		return value.RawF64(float64(n))
	}
}

func (c *Codec) decodeRef(v goja.Value, kind resource.Kind) resource.Handle {
	if v == nil || goja.IsUndefined(v) || goja.IsNull(v) {
		return 0
	}
	if obj, ok := v.(*goja.Object); ok {
		if b, isBox := obj.Export().(*refBox); isBox && b.kind == kind {
			return b.handle
		}
	}
	if c.refs == nil {
		return 0
	}
	return c.refs.Intern(kind, v)
}
