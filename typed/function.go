package typed

import (
	"context"
	"strconv"

	"github.com/dop251/goja"

	"github.com/wippyai/wasm-bridge/bridge"
	"github.com/wippyai/wasm-bridge/engine"
	"github.com/wippyai/wasm-bridge/errors"
	"github.com/wippyai/wasm-bridge/value"
)

// Function pairs a host callable with its declared signature. It does not
// own the callable and is immutable once created.
type Function struct {
	fn   goja.Callable
	name string
	sig  value.Signature
}

// NewFunction pairs fn with its declared signature.
func NewFunction(name string, fn goja.Callable, sig value.Signature) *Function {
	return &Function{name: name, fn: fn, sig: sig}
}

// FromExport returns the Function for an export of inst.
func FromExport(inst *engine.WazeroInstance, name string) (*Function, error) {
	fn, sig, err := inst.Export(name)
	if err != nil {
		return nil, err
	}
	return NewFunction(name, fn, sig), nil
}

func (f *Function) Name() string               { return f.name }
func (f *Function) Signature() value.Signature { return f.sig }
func (f *Function) Callable() goja.Callable    { return f.fn }

// Call invokes the function with dynamically typed arguments. Argument count
// and types are checked against the signature on every call.
func (f *Function) Call(ctx context.Context, s *engine.Store, args ...value.Value) ([]value.Value, error) {
	if err := bridge.CheckSignature(f.sig); err != nil {
		return nil, err
	}
	if len(args) != len(f.sig.Params) {
		return nil, errors.ArityMismatch(errors.PhaseCall, f.name, len(args), len(f.sig.Params))
	}

	raws := make([]value.RawValue, len(args))
	for i, a := range args {
		if want := f.sig.Params[i]; a.Type() != want {
			return nil, errors.TypeMismatch(errors.PhaseCall, []string{f.name, "arg" + strconv.Itoa(i)},
				a.Type().String(), want.String())
		}
		raws[i] = a.Raw()
	}

	out, err := invoke(ctx, s, f, raws)
	if err != nil {
		return nil, err
	}
	vals := make([]value.Value, len(out))
	for i, r := range out {
		vals[i] = value.New(f.sig.Results[i], r)
	}
	return vals, nil
}

// invoke encodes raws in order, runs the call loop and decodes the results.
// Decoding is skipped when the call ends in a trap.
func invoke(ctx context.Context, s *engine.Store, f *Function, raws []value.RawValue) ([]value.RawValue, error) {
	codec := s.Codec()
	args := make([]goja.Value, len(raws))
	for i, r := range raws {
		args[i] = codec.Encode(r, f.sig.Params[i])
	}

	ret, err := s.Invoke(ctx, f.fn, args)
	if err != nil {
		return nil, err
	}

	out := make([]value.RawValue, len(f.sig.Results))
	if err := decodeResults(codec, ret, f.sig.Results, out); err != nil {
		return nil, err
	}
	return out, nil
}

// decodeResults turns exceptions thrown by result coercions into traps.
// *bridge.ProtocolViolation is left to propagate.
func decodeResults(codec *bridge.Codec, ret goja.Value, types []value.ValueType, dst []value.RawValue) (err error) {
	defer func() {
		if r := recover(); r != nil {
			ex, ok := r.(*goja.Exception)
			if !ok {
				panic(r)
			}
			err = bridge.TrapFromError(ex)
		}
	}()
	codec.DecodeResults(ret, types, dst)
	return nil
}
