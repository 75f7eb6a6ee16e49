package runtime

import (
	"context"
	"reflect"
	"sort"
	"strings"
	"sync"
	"unicode"

	"github.com/dop251/goja"

	"github.com/wippyai/wasm-bridge/bridge"
	"github.com/wippyai/wasm-bridge/engine"
	"github.com/wippyai/wasm-bridge/errors"
)

// Host is the interface for struct-based host modules.
// All exported methods (except Namespace) are registered as host functions.
type Host interface {
	// Namespace returns the import module name (e.g., "env").
	Namespace() string
}

type HostRegistry struct {
	funcs map[string]map[string]*HostFunc
	mu    sync.RWMutex
}

type HostFunc struct {
	Handler any
	IsAsync bool
}

// AsyncHost extends Host with async function declarations.
// Functions listed by AsyncFunctions() suspend the guest while they run.
type AsyncHost interface {
	Host
	AsyncFunctions() []string
}

func NewHostRegistry() *HostRegistry {
	return &HostRegistry{
		funcs: make(map[string]map[string]*HostFunc),
	}
}

// ExplicitRegistrar allows hosts to provide exact import names when
// automatic PascalCase-to-snake_case conversion doesn't apply
// (e.g., "fd_write" implemented by a method named Write).
type ExplicitRegistrar interface {
	Register() map[string]any
}

var (
	contextType = reflect.TypeOf((*context.Context)(nil)).Elem()
	errorType   = reflect.TypeOf((*error)(nil)).Elem()
)

func checkHandler(namespace, name string, fn any) error {
	if fn == nil {
		return errors.InvalidInput(errors.PhaseHost, namespace+"#"+name+": handler is nil")
	}
	ft := reflect.TypeOf(fn)
	if ft.Kind() != reflect.Func {
		return errors.New(errors.PhaseHost, errors.KindTypeMismatch).
			Path(namespace, name).
			GoType(ft.String()).
			Detail("handler must be a function").
			Build()
	}
	if ft.IsVariadic() {
		return errors.New(errors.PhaseHost, errors.KindUnsupported).
			Path(namespace, name).
			GoType(ft.String()).
			Detail("variadic handlers are not supported").
			Build()
	}
	return nil
}

func (r *HostRegistry) RegisterHost(h Host) error {
	ns := h.Namespace()
	if ns == "" {
		return errors.InvalidInput(errors.PhaseHost, "namespace cannot be empty")
	}

	// Collect async function names if host declares them
	asyncFuncs := make(map[string]bool)
	if ah, ok := h.(AsyncHost); ok {
		for _, name := range ah.AsyncFunctions() {
			asyncFuncs[name] = true
		}
	}

	funcs := make(map[string]any)
	if er, ok := h.(ExplicitRegistrar); ok {
		funcs = er.Register()
	} else {
		rv := reflect.ValueOf(h)
		rt := rv.Type()
		for i := 0; i < rt.NumMethod(); i++ {
			method := rt.Method(i)
			if !method.IsExported() || method.Name == "Namespace" || method.Name == "AsyncFunctions" {
				continue
			}
			funcs[toSnakeCase(method.Name)] = rv.Method(i).Interface()
		}
	}

	for name, handler := range funcs {
		if err := checkHandler(ns, name, handler); err != nil {
			return err
		}
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.funcs[ns] == nil {
		r.funcs[ns] = make(map[string]*HostFunc)
	}
	for name, handler := range funcs {
		r.funcs[ns][name] = &HostFunc{
			Handler: handler,
			IsAsync: asyncFuncs[name],
		}
	}
	return nil
}

func (r *HostRegistry) RegisterFunc(namespace, name string, fn any) error {
	return r.register(namespace, name, fn, false)
}

// RegisterFuncAsync registers a single async function in the host registry.
func (r *HostRegistry) RegisterFuncAsync(namespace, name string, fn any) error {
	return r.register(namespace, name, fn, true)
}

func (r *HostRegistry) register(namespace, name string, fn any, async bool) error {
	if namespace == "" {
		return errors.InvalidInput(errors.PhaseHost, "namespace cannot be empty")
	}
	if name == "" {
		return errors.InvalidInput(errors.PhaseHost, "function name cannot be empty")
	}
	if err := checkHandler(namespace, name, fn); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.funcs[namespace] == nil {
		r.funcs[namespace] = make(map[string]*HostFunc)
	}

	r.funcs[namespace][name] = &HostFunc{
		Handler: fn,
		IsAsync: async,
	}

	return nil
}

// Lookup returns the function registered under namespace and name.
func (r *HostRegistry) Lookup(namespace, name string) (*HostFunc, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	hf, ok := r.funcs[namespace][name]
	return hf, ok
}

// Namespaces returns the registered namespaces in sorted order.
func (r *HostRegistry) Namespaces() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]string, 0, len(r.funcs))
	for ns := range r.funcs {
		out = append(out, ns)
	}
	sort.Strings(out)
	return out
}

// Imports builds the imports object ({namespace: {name: function}}) for
// the store's VM.
func (r *HostRegistry) Imports(s *engine.Store) (*goja.Object, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	vm := s.VM()
	imports := vm.NewObject()
	for namespace, funcs := range r.funcs {
		nsObj := vm.NewObject()
		for name, hf := range funcs {
			if err := nsObj.Set(name, hf.wrap(s, namespace, name)); err != nil {
				return nil, errors.Registration(errors.PhaseHost, namespace, name, err)
			}
		}
		if err := imports.Set(namespace, nsObj); err != nil {
			return nil, errors.Registration(errors.PhaseHost, namespace, "*", err)
		}
	}
	return imports, nil
}

// wrap adapts the handler to a JS function. A leading context.Context
// parameter receives the context of the call in flight, a trailing error
// result becomes an exception, and several results are returned as an
// array. Async handlers run after the guest has unwound.
func (hf *HostFunc) wrap(s *engine.Store, namespace, name string) func(goja.FunctionCall) goja.Value {
	fv := reflect.ValueOf(hf.Handler)
	ft := fv.Type()
	withCtx := ft.NumIn() > 0 && ft.In(0) == contextType
	withErr := ft.NumOut() > 0 && ft.Out(ft.NumOut()-1) == errorType
	vm := s.VM()
	codec := s.Codec()

	return func(call goja.FunctionCall) goja.Value {
		in := make([]reflect.Value, ft.NumIn())
		first := 0
		if withCtx {
			in[0] = reflect.ValueOf(s.Context())
			first = 1
		}
		for j := first; j < len(in); j++ {
			jv := call.Argument(j - first)
			if x, ok := bridge.Unbox(jv); ok && reflect.TypeOf(x).ConvertibleTo(ft.In(j)) {
				in[j] = reflect.ValueOf(x).Convert(ft.In(j))
				continue
			}
			arg := reflect.New(ft.In(j))
			if err := vm.ExportTo(jv, arg.Interface()); err != nil {
				panic(vm.NewTypeError("%s#%s: argument %d: %v", namespace, name, j-first, err))
			}
			in[j] = arg.Elem()
		}

		if hf.IsAsync {
			return vm.ToValue(engine.Pending(func(ctx context.Context) (any, error) {
				if withCtx {
					in[0] = reflect.ValueOf(ctx)
				}
				return hostResult(codec, fv.Call(in), withErr)
			}))
		}

		v, err := hostResult(codec, fv.Call(in), withErr)
		if err != nil {
			panic(vm.NewGoError(err))
		}
		return v
	}
}

// hostResult converts the handler results. 64-bit integers keep every bit.
func hostResult(codec *bridge.Codec, outs []reflect.Value, withErr bool) (goja.Value, error) {
	if withErr {
		last := outs[len(outs)-1]
		outs = outs[:len(outs)-1]
		if !last.IsNil() {
			return nil, last.Interface().(error)
		}
	}
	switch len(outs) {
	case 0:
		return goja.Undefined(), nil
	case 1:
		return codec.ToValue(outs[0].Interface()), nil
	}
	items := make([]any, len(outs))
	for i, out := range outs {
		items[i] = codec.ToValue(out.Interface())
	}
	return codec.VM().NewArray(items...), nil
}

// toSnakeCase converts PascalCase to snake_case.
// Adjacent acronyms merge: GetHTTPURL -> get_httpurl
func toSnakeCase(s string) string {
	if len(s) == 0 {
		return ""
	}

	runes := []rune(s)
	var result strings.Builder

	for i := 0; i < len(runes); i++ {
		r := runes[i]

		if unicode.IsUpper(r) {
			acronymEnd := i + 1
			for acronymEnd < len(runes) && unicode.IsUpper(runes[acronymEnd]) {
				acronymEnd++
			}

			if acronymEnd > i+1 {
				// Last uppercase before lowercase starts next word, not part of acronym
				if acronymEnd < len(runes) && unicode.IsLower(runes[acronymEnd]) {
					acronymEnd--
				}
			}

			if i > 0 {
				result.WriteByte('_')
			}

			for j := i; j < acronymEnd; j++ {
				result.WriteRune(unicode.ToLower(runes[j]))
			}
			i = acronymEnd - 1 // -1 because loop will increment
		} else {
			result.WriteRune(r)
		}
	}
	return result.String()
}
