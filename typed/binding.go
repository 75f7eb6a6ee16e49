package typed

import (
	"context"
	"fmt"
	"reflect"

	"github.com/wippyai/wasm-bridge/bridge"
	"github.com/wippyai/wasm-bridge/engine"
	"github.com/wippyai/wasm-bridge/errors"
	"github.com/wippyai/wasm-bridge/value"
)

var nativeTypes = map[reflect.Type]value.ValueType{
	reflect.TypeOf((*int32)(nil)).Elem():        value.I32,
	reflect.TypeOf((*uint32)(nil)).Elem():       value.I32,
	reflect.TypeOf((*int64)(nil)).Elem():        value.I64,
	reflect.TypeOf((*uint64)(nil)).Elem():       value.I64,
	reflect.TypeOf((*float32)(nil)).Elem():      value.F32,
	reflect.TypeOf((*float64)(nil)).Elem():      value.F64,
	reflect.TypeOf((*value.Extern)(nil)).Elem(): value.ExternRef,
	reflect.TypeOf((*value.Func)(nil)).Elem():   value.FuncRef,
}

type resultShape uint8

const (
	shapeNone   resultShape = iota // struct{}
	shapeSingle                    // one Native type
	shapeFields                    // struct of Native fields
)

// results describes how a results witness R maps onto result slots.
type results struct {
	types []value.ValueType
	shape resultShape
}

// resultsOf derives the result types of witness R.
func resultsOf[R any]() (results, error) {
	rt := reflect.TypeOf((*R)(nil)).Elem()
	if t, ok := nativeTypes[rt]; ok {
		return results{shape: shapeSingle, types: []value.ValueType{t}}, nil
	}
	if rt.Kind() != reflect.Struct {
		return results{}, unsupportedWitness(rt, "not a native type or struct")
	}
	if rt.NumField() == 0 {
		return results{shape: shapeNone}, nil
	}

	types := make([]value.ValueType, rt.NumField())
	for i := range types {
		f := rt.Field(i)
		if !f.IsExported() {
			return results{}, unsupportedWitness(rt, fmt.Sprintf("field %s is unexported", f.Name))
		}
		t, ok := nativeTypes[f.Type]
		if !ok {
			return results{}, unsupportedWitness(rt, fmt.Sprintf("field %s has non-native type %s", f.Name, f.Type))
		}
		types[i] = t
	}
	return results{shape: shapeFields, types: types}, nil
}

func unsupportedWitness(rt reflect.Type, why string) error {
	return errors.New(errors.PhaseBind, errors.KindUnsupported).
		GoType(rt.String()).
		Detail("results type %s", why).
		Build()
}

// assign writes decoded slots into a fresh R.
func assign[R any](r results, raws []value.RawValue) (R, error) {
	var out R
	switch r.shape {
	case shapeNone:
		return out, nil
	case shapeSingle:
		return out, value.Assign(&out, r.types[0], raws[0])
	}
	rv := reflect.ValueOf(&out).Elem()
	for i, t := range r.types {
		if err := value.Assign(rv.Field(i).Addr().Interface(), t, raws[i]); err != nil {
			return out, err
		}
	}
	return out, nil
}

// binding is the state shared by every FuncN.
type binding struct {
	fn      *Function
	results results
}

// bind checks the requested native signature against the declared one.
func bind[R any](f *Function, params ...value.ValueType) (binding, error) {
	if err := bridge.CheckSignature(f.sig); err != nil {
		return binding{}, err
	}
	res, err := resultsOf[R]()
	if err != nil {
		return binding{}, err
	}
	requested := value.Signature{Params: params, Results: res.types}
	if !requested.Equal(f.sig) {
		return binding{}, errors.SignatureMismatch(f.name, requested.String(), f.sig.String())
	}
	return binding{fn: f, results: res}, nil
}

// Function returns the bound function.
func (b *binding) Function() *Function { return b.fn }

func call[R any](ctx context.Context, s *engine.Store, b *binding, raws ...value.RawValue) (R, error) {
	out, err := invoke(ctx, s, b.fn, raws)
	if err != nil {
		var zero R
		return zero, err
	}
	return assign[R](b.results, out)
}
