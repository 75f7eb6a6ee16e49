package engine

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/dop251/goja"
	"go.uber.org/zap"

	"github.com/wippyai/wasm-bridge/bridge"
	"github.com/wippyai/wasm-bridge/resource"
)

// StoreGlobal is the VM global holding the id of the store whose call is
// in flight on that VM.
const StoreGlobal = "__store_ptr"

var (
	storeSeq atomic.Uint64
	stores   sync.Map // uint64 -> *Store
)

// StoreConfig holds per-store settings.
type StoreConfig struct {
	Logger *zap.Logger

	// MaxInvocations caps guest re-entries per call. 0 means unbounded.
	MaxInvocations int
}

// Store is the execution context of one goja VM: its reference table, the
// codec bound to both, the on-called slot and the context of the call in
// flight. A Store is not safe for concurrent use; a call holds it
// exclusively until it returns.
type Store struct {
	ctx            context.Context
	vm             *goja.Runtime
	refs           *resource.Table
	codec          *bridge.Codec
	onCalled       OnCalledFunc
	logger         *zap.Logger
	instances      []*WazeroInstance
	id             uint64
	maxInvocations int
	depth          int
	closed         bool
}

// NewStore creates a store over vm. The VM must not be shared with another
// store. The store stays registered process-wide until Close is called.
func NewStore(vm *goja.Runtime, cfg StoreConfig) *Store {
	if vm == nil {
		vm = goja.New()
	}
	l := cfg.Logger
	if l == nil {
		l = Logger()
	}
	refs := resource.NewTable()
	s := &Store{
		vm:             vm,
		refs:           refs,
		codec:          bridge.NewCodec(vm, refs),
		logger:         l,
		id:             storeSeq.Add(1),
		maxInvocations: cfg.MaxInvocations,
	}
	refs.Subscribe(s.codec)
	stores.Store(s.id, s)
	return s
}

// ActiveStore returns the store whose call is in flight on vm, if any.
func ActiveStore(vm *goja.Runtime) *Store {
	v := vm.Get(StoreGlobal)
	if v == nil || goja.IsUndefined(v) || goja.IsNull(v) {
		return nil
	}
	s, ok := stores.Load(uint64(v.ToInteger()))
	if !ok {
		return nil
	}
	return s.(*Store)
}

// ID returns the value written to StoreGlobal while the store is active.
func (s *Store) ID() uint64 { return s.id }

// VM returns the store's goja runtime.
func (s *Store) VM() *goja.Runtime { return s.vm }

// Codec returns the value codec bound to the store's VM and reference table.
func (s *Store) Codec() *bridge.Codec { return s.codec }

// Refs returns the reference table behind externref and funcref handles.
func (s *Store) Refs() *resource.Table { return s.refs }

// Logger returns the store's logger.
func (s *Store) Logger() *zap.Logger { return s.logger }

// Context returns the context of the call in flight, or Background.
func (s *Store) Context() context.Context {
	if s.ctx == nil {
		return context.Background()
	}
	return s.ctx
}

// Closed reports whether Close was called.
func (s *Store) Closed() bool { return s.closed }

func (s *Store) track(inst *WazeroInstance) {
	s.instances = append(s.instances, inst)
}

func (s *Store) untrack(inst *WazeroInstance) {
	for i, x := range s.instances {
		if x == inst {
			s.instances = append(s.instances[:i], s.instances[i+1:]...)
			return
		}
	}
}

func (s *Store) setActive(id uint64) {
	if id == 0 {
		_ = s.vm.GlobalObject().Delete(StoreGlobal)
		return
	}
	_ = s.vm.GlobalObject().DefineDataProperty(StoreGlobal, s.vm.ToValue(id),
		goja.FLAG_TRUE, goja.FLAG_TRUE, goja.FLAG_FALSE)
}

// Close releases the store's instances and reference table.
func (s *Store) Close(ctx context.Context) error {
	if s.closed {
		return nil
	}
	s.closed = true
	stores.Delete(s.id)

	var firstErr error
	for len(s.instances) > 0 {
		inst := s.instances[len(s.instances)-1]
		if err := inst.Close(ctx); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	s.onCalled = nil
	if err := s.refs.Close(); err != nil && firstErr == nil {
		firstErr = err
	}
	return firstErr
}
