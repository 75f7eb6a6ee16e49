package bridge

import (
	"fmt"
	"strconv"

	"github.com/dop251/goja"

	"github.com/wippyai/wasm-bridge/value"
)

// ProtocolViolation is the panic value raised when the host engine returns a
// result shape that contradicts the declared signature. It indicates an
// engine bug rather than a guest fault and is never returned as an error.
type ProtocolViolation struct {
	Got     string
	Results int
}

func (p *ProtocolViolation) Error() string {
	return fmt.Sprintf("host engine protocol violation: %d results expected in an array, got %s", p.Results, p.Got)
}

var indexNames [32]string

func init() {
	for i := range indexNames {
		indexNames[i] = strconv.Itoa(i)
	}
}

func indexName(i int) string {
	if i < len(indexNames) {
		return indexNames[i]
	}
	return strconv.Itoa(i)
}

// EncodeResults packs result slots the way a host function returns them:
// nothing is undefined, one result is the bare value, several are an array.
func (c *Codec) EncodeResults(raws []value.RawValue, types []value.ValueType) goja.Value {
	switch len(types) {
	case 0:
		return goja.Undefined()
	case 1:
		return c.Encode(raws[0], types[0])
	}
	items := make([]any, len(types))
	for i, t := range types {
		items[i] = c.Encode(raws[i], t)
	}
	return c.vm.NewArray(items...)
}

// IsAggregate reports whether v is a host array.
func IsAggregate(v goja.Value) bool {
	obj, ok := v.(*goja.Object)
	return ok && obj.ClassName() == "Array"
}

// DecodeResults unpacks a host return value into dst, which must have
// len(types) slots. With two or more results v must be an array, whose
// elements are read in ascending index order; anything else panics with
// *ProtocolViolation.
func (c *Codec) DecodeResults(v goja.Value, types []value.ValueType, dst []value.RawValue) {
	switch len(types) {
	case 0:
		return
	case 1:
		dst[0] = c.Decode(v, types[0])
		return
	}

	if !IsAggregate(v) {
		panic(&ProtocolViolation{Results: len(types), Got: describe(v)})
	}
	obj := v.(*goja.Object)
	for i, t := range types {
		dst[i] = c.Decode(obj.Get(indexName(i)), t)
	}
}

func describe(v goja.Value) string {
	switch {
	case v == nil:
		return "nothing"
	case goja.IsUndefined(v):
		return "undefined"
	case goja.IsNull(v):
		return "null"
	}
	if obj, ok := v.(*goja.Object); ok {
		return obj.ClassName()
	}
	return fmt.Sprintf("%T", v.Export())
}
