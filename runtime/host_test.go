package runtime

import (
	"context"
	stderrors "errors"
	"testing"

	"github.com/wippyai/wasm-bridge/errors"
	"github.com/wippyai/wasm-bridge/internal/wasmtest"
)

type contextKey string

// envHost implements the imports of wasmtest.Imports.
type envHost struct {
	logged []int32
	ctxOK  bool
}

func (h *envHost) Namespace() string { return "env" }

func (h *envHost) Add(a, b int32) int32 { return a + b }

func (h *envHost) Pair() (int32, int64) { return 4, -5 }

func (h *envHost) Log(ctx context.Context, v int32) {
	h.ctxOK = ctx.Value(contextKey("request")) == "r-1"
	h.logged = append(h.logged, v)
}

func TestRegisterHost(t *testing.T) {
	ctx := context.WithValue(context.Background(), contextKey("request"), "r-1")
	rt := newRuntime(t)

	host := &envHost{}
	if err := rt.RegisterHost(host); err != nil {
		t.Fatalf("register host: %v", err)
	}
	for _, name := range []string{"add", "pair", "log"} {
		if _, ok := rt.Hosts().Lookup("env", name); !ok {
			t.Errorf("%s not registered", name)
		}
	}

	inst := instantiate(t, load(t, rt, wasmtest.Imports()))

	got, err := inst.Call(ctx, "call_add", 40, 2)
	if err != nil || got != int32(42) {
		t.Errorf("call_add = %v, %v", got, err)
	}

	got, err = inst.Call(ctx, "call_pair")
	if err != nil {
		t.Fatalf("call_pair: %v", err)
	}
	pair, ok := got.([]any)
	if !ok || len(pair) != 2 || pair[0] != int32(4) || pair[1] != int64(-5) {
		t.Errorf("call_pair = %#v", got)
	}

	if _, err := inst.Call(ctx, "call_log", 7); err != nil {
		t.Fatalf("call_log: %v", err)
	}
	if len(host.logged) != 1 || host.logged[0] != 7 {
		t.Errorf("logged = %v", host.logged)
	}
	if !host.ctxOK {
		t.Error("host did not receive the call context")
	}
}

func TestRegisterFunc_ErrorBecomesTrap(t *testing.T) {
	ctx := context.Background()
	rt := newRuntime(t)
	denied := stderrors.New("denied")

	if err := rt.RegisterFunc("env", "add", func(a, b int32) (int32, error) { return 0, denied }); err != nil {
		t.Fatal(err)
	}
	if err := rt.RegisterFunc("env", "pair", func() (int32, int64) { return 0, 0 }); err != nil {
		t.Fatal(err)
	}
	if err := rt.RegisterFunc("env", "log", func(int32) error { return nil }); err != nil {
		t.Fatal(err)
	}
	inst := instantiate(t, load(t, rt, wasmtest.Imports()))

	_, err := inst.Call(ctx, "call_add", 1, 2)
	if !stderrors.Is(err, denied) {
		t.Fatalf("expected denied, got %v", err)
	}
	if _, ok := errors.AsTrap(err); !ok {
		t.Errorf("expected a trap, got %T", err)
	}

	if _, err := inst.Call(ctx, "call_log", 1); err != nil {
		t.Errorf("call_log: %v", err)
	}
}

func TestRegisterFunc_Invalid(t *testing.T) {
	r := NewHostRegistry()

	tests := []struct {
		name      string
		namespace string
		fn        string
		handler   any
		kind      errors.Kind
	}{
		{"empty namespace", "", "f", func() {}, errors.KindInvalidInput},
		{"empty name", "env", "", func() {}, errors.KindInvalidInput},
		{"nil handler", "env", "f", nil, errors.KindInvalidInput},
		{"not a function", "env", "f", 42, errors.KindTypeMismatch},
		{"variadic", "env", "f", func(...int32) {}, errors.KindUnsupported},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := r.RegisterFunc(tt.namespace, tt.fn, tt.handler)
			if !stderrors.Is(err, &errors.Error{Phase: errors.PhaseHost, Kind: tt.kind}) {
				t.Errorf("got %v, want kind %s", err, tt.kind)
			}
		})
	}
	if len(r.Namespaces()) != 0 {
		t.Errorf("failed registrations left namespaces %v", r.Namespaces())
	}
}

func TestMissingImports(t *testing.T) {
	rt := newRuntime(t)
	if err := rt.RegisterFunc("env", "add", func(a, b int32) int32 { return a + b }); err != nil {
		t.Fatal(err)
	}
	mod := load(t, rt, wasmtest.Imports())

	_, err := mod.Instantiate(context.Background())
	var missing *errors.MissingImportsError
	if !stderrors.As(err, &missing) {
		t.Fatalf("expected missing imports, got %v", err)
	}
	if len(missing.Imports) != 2 {
		t.Errorf("missing = %v", missing.Imports)
	}
}

type explicitHost struct{}

func (explicitHost) Namespace() string { return "env" }

func (explicitHost) Register() map[string]any {
	return map[string]any{
		"add":  func(a, b int32) int32 { return a * b },
		"pair": func() (int32, int64) { return 1, 2 },
		"log":  func(int32) {},
	}
}

func TestRegisterHost_Explicit(t *testing.T) {
	ctx := context.Background()
	rt := newRuntime(t)
	if err := rt.RegisterHost(explicitHost{}); err != nil {
		t.Fatal(err)
	}
	if _, ok := rt.Hosts().Lookup("env", "register"); ok {
		t.Error("Register method itself was registered")
	}
	inst := instantiate(t, load(t, rt, wasmtest.Imports()))

	got, err := inst.Call(ctx, "call_add", 6, 7)
	if err != nil || got != int32(42) {
		t.Errorf("call_add = %v, %v", got, err)
	}
}

type fetchHost struct {
	calls int
}

func (h *fetchHost) Namespace() string        { return "env" }
func (h *fetchHost) AsyncFunctions() []string { return []string{"fetch"} }

func (h *fetchHost) Fetch(ctx context.Context) (int32, error) {
	h.calls++
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	return 40, nil
}

func TestAsyncHost(t *testing.T) {
	ctx := context.Background()
	rt := newRuntime(t)
	host := &fetchHost{}
	if err := rt.RegisterHost(host); err != nil {
		t.Fatal(err)
	}
	hf, ok := rt.Hosts().Lookup("env", "fetch")
	if !ok || !hf.IsAsync {
		t.Fatalf("fetch not registered as async: %+v", hf)
	}

	mod := load(t, rt, wasmtest.Asyncify())
	if !mod.IsAsyncified() {
		t.Fatal("asyncify fixture not detected")
	}
	inst, err := mod.InstantiateWithAsyncify(ctx)
	if err != nil {
		t.Fatalf("instantiate: %v", err)
	}
	defer inst.Close(ctx)

	got, err := inst.Call(ctx, "run", 2)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if got != int32(42) {
		t.Errorf("run(2) = %v", got)
	}
	if host.calls != 1 {
		t.Errorf("fetch ran %d times", host.calls)
	}
	if !inst.Asyncify().IsNormal() {
		t.Errorf("asyncify state %s after call", inst.Asyncify().State())
	}
}

func TestRegisterFuncAsync_WithoutAsyncify(t *testing.T) {
	rt := newRuntime(t)
	if err := rt.RegisterFuncAsync("env", "fetch", func() int32 { return 1 }); err != nil {
		t.Fatal(err)
	}
	inst := instantiate(t, load(t, rt, wasmtest.Asyncify()))

	_, err := inst.Call(context.Background(), "run", 1)
	trap, ok := errors.AsTrap(err)
	if !ok || trap.Origin != errors.OriginHost {
		t.Fatalf("expected host trap, got %v", err)
	}
}

func TestToSnakeCase(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"", ""},
		{"Add", "add"},
		{"GetValue", "get_value"},
		{"ReadU32", "read_u32"},
		{"GetHTTPURL", "get_httpurl"},
		{"HTTPServer", "http_server"},
		{"ID", "id"},
	}
	for _, tt := range tests {
		if got := toSnakeCase(tt.in); got != tt.want {
			t.Errorf("toSnakeCase(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestRegisterFunc_LargeInt64(t *testing.T) {
	ctx := context.Background()
	rt := newRuntime(t)
	const big = int64(1<<53 + 1)

	if err := rt.RegisterFunc("env", "add", func(a, b int32) int32 { return a + b }); err != nil {
		t.Fatal(err)
	}
	if err := rt.RegisterFunc("env", "pair", func() (int32, int64) { return 1, big }); err != nil {
		t.Fatal(err)
	}
	if err := rt.RegisterFunc("env", "log", func(int32) {}); err != nil {
		t.Fatal(err)
	}
	inst := instantiate(t, load(t, rt, wasmtest.Imports()))

	got, err := inst.Call(ctx, "call_pair")
	if err != nil {
		t.Fatalf("call_pair: %v", err)
	}
	pair, ok := got.([]any)
	if !ok || len(pair) != 2 || pair[1] != big {
		t.Errorf("call_pair = %#v, want second result %d", got, big)
	}
}
