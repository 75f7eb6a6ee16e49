package runtime

import (
	"context"
	stderrors "errors"
	"sync"
	"testing"

	"go.uber.org/goleak"

	"github.com/wippyai/wasm-bridge/engine"
	"github.com/wippyai/wasm-bridge/errors"
	"github.com/wippyai/wasm-bridge/internal/wasmtest"
	"github.com/wippyai/wasm-bridge/typed"
	"github.com/wippyai/wasm-bridge/value"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func newRuntime(t *testing.T) *Runtime {
	t.Helper()
	ctx := context.Background()
	rt, err := NewWithConfig(ctx, engine.Config{DisableCache: true, Compiler: engine.CompilerInterpreter})
	if err != nil {
		t.Fatalf("create runtime: %v", err)
	}
	t.Cleanup(func() { _ = rt.Close(ctx) })
	return rt
}

func load(t *testing.T, rt *Runtime, wasm []byte) *Module {
	t.Helper()
	mod, err := rt.LoadWASM(context.Background(), "test", wasm)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	return mod
}

func instantiate(t *testing.T, mod *Module) *Instance {
	t.Helper()
	ctx := context.Background()
	inst, err := mod.Instantiate(ctx)
	if err != nil {
		t.Fatalf("instantiate: %v", err)
	}
	t.Cleanup(func() { _ = inst.Close(ctx) })
	return inst
}

func TestLoadWASM_Exports(t *testing.T) {
	rt := newRuntime(t)
	mod := load(t, rt, wasmtest.Basic())

	if mod.Name() != "test" {
		t.Errorf("Name() = %q", mod.Name())
	}
	exports := mod.Exports()
	byName := make(map[string]value.Signature)
	for _, e := range exports {
		byName[e.Name] = e.Signature
	}
	want := value.Signature{Params: []value.ValueType{value.I64, value.F64}, Results: []value.ValueType{value.F64, value.I64}}
	if !byName["swap"].Equal(want) {
		t.Errorf("swap signature = %s, want %s", byName["swap"], want)
	}
	if len(mod.Imports()) != 0 {
		t.Errorf("unexpected imports: %v", mod.Imports())
	}
	if mod.IsAsyncified() {
		t.Error("basic module reported as asyncified")
	}
}

func TestLoadWASM_RejectsComponent(t *testing.T) {
	rt := newRuntime(t)
	component := []byte{0x00, 'a', 's', 'm', 0x0d, 0x00, 0x01, 0x00}

	_, err := rt.LoadWASM(context.Background(), "component", component)
	if !stderrors.Is(err, &errors.Error{Phase: errors.PhaseLoad, Kind: errors.KindInvalidInput}) {
		t.Fatalf("expected invalid input, got %v", err)
	}
}

func TestLoadWASM_Invalid(t *testing.T) {
	rt := newRuntime(t)

	_, err := rt.LoadWASM(context.Background(), "junk", []byte("not wasm"))
	if !stderrors.Is(err, &errors.Error{Phase: errors.PhaseLoad, Kind: errors.KindInvalidData}) {
		t.Fatalf("expected load error, got %v", err)
	}
}

func TestInstance_Call(t *testing.T) {
	ctx := context.Background()
	rt := newRuntime(t)
	inst := instantiate(t, load(t, rt, wasmtest.Basic()))

	got, err := inst.Call(ctx, "add", 40, 2)
	if err != nil {
		t.Fatalf("call add: %v", err)
	}
	if got != int32(42) {
		t.Errorf("add(40, 2) = %v (%T), want 42", got, got)
	}

	got, err = inst.Call(ctx, "add", "0x10", uint32(1))
	if err != nil {
		t.Fatalf("call add with text: %v", err)
	}
	if got != int32(17) {
		t.Errorf("add(0x10, 1) = %v, want 17", got)
	}

	got, err = inst.Call(ctx, "swap", int64(-9), 2.5)
	if err != nil {
		t.Fatalf("call swap: %v", err)
	}
	pair, ok := got.([]any)
	if !ok || len(pair) != 2 || pair[0] != 2.5 || pair[1] != int64(-9) {
		t.Errorf("swap(-9, 2.5) = %#v", got)
	}

	got, err = inst.Call(ctx, "noop")
	if err != nil || got != nil {
		t.Errorf("noop() = %v, %v", got, err)
	}

	got, err = inst.Call(ctx, "id_f32", float32(0.1))
	if err != nil {
		t.Fatalf("call id_f32: %v", err)
	}
	if got != float32(0.1) {
		t.Errorf("id_f32(0.1) = %v", got)
	}
}

func TestInstance_CallErrors(t *testing.T) {
	ctx := context.Background()
	rt := newRuntime(t)
	inst := instantiate(t, load(t, rt, wasmtest.Basic()))

	_, err := inst.Call(ctx, "add", 1)
	if !stderrors.Is(err, &errors.Error{Phase: errors.PhaseCall, Kind: errors.KindArityMismatch}) {
		t.Errorf("expected arity mismatch, got %v", err)
	}

	_, err = inst.Call(ctx, "add", true, 1)
	if !stderrors.Is(err, &errors.Error{Phase: errors.PhaseEncode, Kind: errors.KindTypeMismatch}) {
		t.Errorf("expected type mismatch, got %v", err)
	}

	_, err = inst.Call(ctx, "add", "forty", 1)
	if !stderrors.Is(err, &errors.Error{Phase: errors.PhaseParse, Kind: errors.KindInvalidData}) {
		t.Errorf("expected parse error, got %v", err)
	}

	_, err = inst.Call(ctx, "missing")
	if !stderrors.Is(err, &errors.Error{Phase: errors.PhaseCall, Kind: errors.KindNotFound}) {
		t.Errorf("expected not found, got %v", err)
	}

	_, err = inst.Call(ctx, "trap")
	trap, ok := errors.AsTrap(err)
	if !ok || trap.Origin != errors.OriginGuest {
		t.Fatalf("expected guest trap, got %v", err)
	}

	// the instance stays usable after a trap
	if got, err := inst.Call(ctx, "add", 1, 1); err != nil || got != int32(2) {
		t.Errorf("add after trap = %v, %v", got, err)
	}
}

type token struct{ name string }

func TestInstance_ExternRef(t *testing.T) {
	ctx := context.Background()
	rt := newRuntime(t)
	inst := instantiate(t, load(t, rt, wasmtest.Basic()))

	tok := &token{name: "session"}
	got, err := inst.Call(ctx, "id_ref", tok)
	if err != nil {
		t.Fatalf("call id_ref: %v", err)
	}
	if got != tok {
		t.Errorf("id_ref returned %v, want the same pointer", got)
	}

	got, err = inst.Call(ctx, "id_ref", nil)
	if err != nil || got != nil {
		t.Errorf("id_ref(nil) = %v, %v", got, err)
	}
}

func TestInstance_Typed(t *testing.T) {
	ctx := context.Background()
	rt := newRuntime(t)
	inst := instantiate(t, load(t, rt, wasmtest.Basic()))

	fn, err := inst.Function("digits")
	if err != nil {
		t.Fatalf("function: %v", err)
	}
	digits, err := typed.Bind3[int32, int32, int32, int32](fn)
	if err != nil {
		t.Fatalf("bind: %v", err)
	}
	got, err := digits.Call(ctx, inst.Store(), 4, 5, 6)
	if err != nil {
		t.Fatalf("call: %v", err)
	}
	if got != 456 {
		t.Errorf("digits(4, 5, 6) = %d", got)
	}

	vals, err := inst.CallValues(ctx, "add", value.Of[int32](2), value.Of[int32](3))
	if err != nil {
		t.Fatalf("call values: %v", err)
	}
	if len(vals) != 1 || vals[0].Raw().I32() != 5 {
		t.Errorf("add values = %v", vals)
	}
}

func TestInstance_Memory(t *testing.T) {
	rt := newRuntime(t)
	if err := rt.RegisterFunc("env", "fetch", func() int32 { return 0 }); err != nil {
		t.Fatalf("register: %v", err)
	}
	inst := instantiate(t, load(t, rt, wasmtest.Asyncify()))

	if inst.MemorySize() != 65536 {
		t.Fatalf("MemorySize() = %d", inst.MemorySize())
	}
	mem := inst.Memory()
	if mem == nil {
		t.Fatal("expected memory")
	}
	if err := mem.WriteU64(1024, 0x0102030405060708); err != nil {
		t.Fatalf("write: %v", err)
	}
	v, err := mem.ReadU32(1024)
	if err != nil || v != 0x05060708 {
		t.Errorf("ReadU32 = %#x, %v", v, err)
	}

	basic := instantiate(t, load(t, rt, wasmtest.Basic()))
	if basic.Memory() != nil {
		t.Error("module without memory returned one")
	}
}

func TestConcurrentInstances(t *testing.T) {
	ctx := context.Background()
	rt := newRuntime(t)
	mod := load(t, rt, wasmtest.Basic())

	const workers = 8
	var wg sync.WaitGroup
	errs := make(chan error, workers)
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			inst, err := mod.Instantiate(ctx)
			if err != nil {
				errs <- err
				return
			}
			defer inst.Close(ctx)
			for i := 0; i < 50; i++ {
				got, err := inst.Call(ctx, "add", w, i)
				if err != nil {
					errs <- err
					return
				}
				if got != int32(w+i) {
					errs <- stderrors.New("wrong sum")
					return
				}
			}
		}(w)
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		t.Error(err)
	}
}
