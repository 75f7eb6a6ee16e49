package engine

import (
	"context"
	"fmt"
	"sync/atomic"

	"github.com/dop251/goja"
	"github.com/tetratelabs/wazero/api"
	"go.uber.org/zap"

	"github.com/wippyai/wasm-bridge/errors"
	"github.com/wippyai/wasm-bridge/value"
)

// AsyncifyState mirrors the guest's asyncify state.
type AsyncifyState int32

const (
	StateNormal    AsyncifyState = 0
	StateUnwinding AsyncifyState = 1
	StateRewinding AsyncifyState = 2
)

func (s AsyncifyState) String() string {
	switch s {
	case StateNormal:
		return "normal"
	case StateUnwinding:
		return "unwinding"
	case StateRewinding:
		return "rewinding"
	default:
		return fmt.Sprintf("state(%d)", int32(s))
	}
}

// Asyncify drives the Binaryen asyncify protocol (wasm-opt --asyncify).
//
// Memory layout at dataAddr:
//   - [0:4] stack pointer (grows upward from dataAddr+8)
//   - [4:8] stack end
//   - [8:stackSize] stack data
type Asyncify struct {
	exports struct {
		getState    api.Function
		startUnwind api.Function
		stopUnwind  api.Function
		startRewind api.Function
		stopRewind  api.Function
	}
	memory    api.Memory
	state     atomic.Int32
	dataAddr  uint32
	stackSize uint32
}

const (
	AsyncifyDataAddr         uint32 = 16
	AsyncifyDefaultStackSize uint32 = 1024
)

// AsyncifyConfig places the asyncify data structure in guest memory. Zero
// fields take the defaults.
type AsyncifyConfig struct {
	StackSize uint32
	DataAddr  uint32
}

// AsyncifyExports are the functions an asyncified module exports.
var AsyncifyExports = []string{
	"asyncify_get_state",
	"asyncify_start_unwind",
	"asyncify_stop_unwind",
	"asyncify_start_rewind",
	"asyncify_stop_rewind",
}

func NewAsyncify(cfg AsyncifyConfig) *Asyncify {
	a := &Asyncify{
		dataAddr:  AsyncifyDataAddr,
		stackSize: AsyncifyDefaultStackSize,
	}
	if cfg.DataAddr != 0 {
		a.dataAddr = cfg.DataAddr
	}
	if cfg.StackSize != 0 {
		a.stackSize = cfg.StackSize
	}
	return a
}

// Init binds the asyncify exports of mod and writes the data structure.
func (a *Asyncify) Init(mod api.Module) error {
	a.memory = moduleMemory(mod)
	if a.memory == nil {
		return errors.New(errors.PhaseRuntime, errors.KindUnsupported).
			Detail("asyncify: module exports no memory").Build()
	}

	fns := []*api.Function{
		&a.exports.getState,
		&a.exports.startUnwind,
		&a.exports.stopUnwind,
		&a.exports.startRewind,
		&a.exports.stopRewind,
	}
	for i, name := range AsyncifyExports {
		fn := mod.ExportedFunction(name)
		if fn == nil {
			return errors.New(errors.PhaseRuntime, errors.KindNotFound).
				Detail("asyncify: module missing %s export (run wasm-opt --asyncify)", name).Build()
		}
		*fns[i] = fn
	}

	stackPtr := a.dataAddr + 8
	stackEnd := stackPtr + a.stackSize
	if !a.memory.WriteUint32Le(a.dataAddr, stackPtr) || !a.memory.WriteUint32Le(a.dataAddr+4, stackEnd) {
		return errors.New(errors.PhaseRuntime, errors.KindInvalidData).
			Detail("asyncify: data at %d does not fit in memory", a.dataAddr).Build()
	}
	a.state.Store(int32(StateNormal))
	return nil
}

func (a *Asyncify) State() AsyncifyState { return AsyncifyState(a.state.Load()) }
func (a *Asyncify) IsNormal() bool       { return a.State() == StateNormal }
func (a *Asyncify) IsUnwinding() bool    { return a.State() == StateUnwinding }
func (a *Asyncify) IsRewinding() bool    { return a.State() == StateRewinding }

// SyncState reads the state from the guest. Allocates; use only for debugging.
func (a *Asyncify) SyncState(ctx context.Context) AsyncifyState {
	results, err := a.exports.getState.Call(ctx)
	if err == nil && len(results) > 0 {
		a.state.Store(int32(results[0]))
	}
	return a.State()
}

func (a *Asyncify) transition(ctx context.Context, fn api.Function, next AsyncifyState, withData bool) error {
	var err error
	if withData {
		_, err = fn.Call(ctx, uint64(a.dataAddr))
	} else {
		_, err = fn.Call(ctx)
	}
	if err != nil {
		return fmt.Errorf("asyncify: enter %s: %w", next, err)
	}
	a.state.Store(int32(next))
	return nil
}

func (a *Asyncify) StartUnwind(ctx context.Context) error {
	return a.transition(ctx, a.exports.startUnwind, StateUnwinding, true)
}

func (a *Asyncify) StopUnwind(ctx context.Context) error {
	return a.transition(ctx, a.exports.stopUnwind, StateNormal, false)
}

func (a *Asyncify) StartRewind(ctx context.Context) error {
	return a.transition(ctx, a.exports.startRewind, StateRewinding, true)
}

func (a *Asyncify) StopRewind(ctx context.Context) error {
	return a.transition(ctx, a.exports.stopRewind, StateNormal, false)
}

// ResetStack resets the stack pointer. Call before each new suspension.
func (a *Asyncify) ResetStack() {
	if a.memory != nil {
		stackPtr := a.dataAddr + 8
		if !a.memory.WriteUint32Le(a.dataAddr, stackPtr) {
			Logger().Warn("ResetStack: failed to write stack pointer to asyncify data",
				zap.Uint32("dataAddr", a.dataAddr),
				zap.Uint32("stackPtr", stackPtr))
		}
	}
}

// PendingOp is an operation an import yields to suspend the guest. It is
// settled by the call loop after the guest has unwound; its value becomes
// the import's result when the guest rewinds.
type PendingOp interface {
	Settle(ctx context.Context, s *Store) (goja.Value, error)
}

type pendingFunc struct {
	fn func(ctx context.Context) (any, error)
}

func (p *pendingFunc) Settle(ctx context.Context, s *Store) (goja.Value, error) {
	v, err := p.fn(ctx)
	if err != nil {
		return nil, err
	}
	if jv, ok := v.(goja.Value); ok {
		return jv, nil
	}
	return s.Codec().ToValue(v), nil
}

// Pending wraps fn as an operation a JS import can return to suspend the
// guest. fn runs outside the guest, after it has unwound.
func Pending(fn func(ctx context.Context) (any, error)) PendingOp {
	return &pendingFunc{fn: fn}
}

type promiseOp struct {
	p *goja.Promise
}

func (o promiseOp) Settle(_ context.Context, _ *Store) (goja.Value, error) {
	switch o.p.State() {
	case goja.PromiseStateFulfilled:
		return o.p.Result(), nil
	case goja.PromiseStateRejected:
		reason := o.p.Result()
		t := &errors.Trap{Origin: errors.OriginGuest, Message: "promise rejected"}
		if reason != nil {
			t.Message += ": " + reason.String()
			t.Payload = reason.Export()
		}
		return nil, t
	default:
		return nil, errors.NewTrap(errors.OriginHost, "promise still pending after the job queue drained")
	}
}

// asPending recognises a suspending return value of a JS import.
func asPending(v goja.Value) (PendingOp, bool) {
	obj, ok := v.(*goja.Object)
	if !ok {
		return nil, false
	}
	switch x := obj.Export().(type) {
	case *goja.Promise:
		return promiseOp{p: x}, true
	case PendingOp:
		return x, true
	}
	return nil, false
}

// resumeSlot holds the settled result delivered to an import on rewind.
type resumeSlot struct {
	value goja.Value
	sig   value.Signature
	set   bool
}

// suspend starts unwinding the guest and installs the on-called callback
// that settles op, starts rewinding and asks the call loop to invoke again.
func (i *WazeroInstance) suspend(ctx context.Context, s *Store, op PendingOp, sig value.Signature) error {
	a := i.asyncify
	if s.depth > 1 {
		return errors.NewTrap(errors.OriginHost, "cannot suspend inside a nested export call")
	}
	if s.HasOnCalled() {
		return errors.NewTrap(errors.OriginHost, "a suspension is already pending")
	}

	a.ResetStack()
	if err := a.StartUnwind(ctx); err != nil {
		return err
	}
	s.logger.Debug("guest suspended", zap.String("module", i.module.name))

	s.SetOnCalled(func(s *Store) (OnCalledAction, error) {
		ctx := s.Context()
		if err := a.StopUnwind(ctx); err != nil {
			return OnCalledAction{}, err
		}
		v, err := op.Settle(ctx, s)
		if err != nil {
			return OnCalledAction{}, err
		}
		i.resume = resumeSlot{value: v, sig: sig, set: true}
		if err := a.StartRewind(ctx); err != nil {
			i.resume = resumeSlot{}
			return OnCalledAction{}, err
		}
		s.logger.Debug("guest resuming", zap.String("module", i.module.name))
		return InvokeAgain(), nil
	})
	return nil
}

// takeResume returns the settled value for a rewinding import.
func (i *WazeroInstance) takeResume() (resumeSlot, bool) {
	r := i.resume
	i.resume = resumeSlot{}
	return r, r.set
}
