package resource

import (
	"errors"
	"sync"
)

var ErrClosed = errors.New("reference table closed")

// LocalBackend is an in-memory backend with handle reuse.
type LocalBackend struct {
	entries  []entry
	freeList []Handle
	mu       sync.RWMutex
	closed   bool
}

type entry struct {
	value any
	kind  Kind
	valid bool
}

// NewLocalBackend creates a new in-memory backend.
func NewLocalBackend() *LocalBackend {
	return &LocalBackend{
		entries:  make([]entry, 0, 64),
		freeList: make([]Handle, 0, 16),
	}
}

// Create stores a value and returns a handle.
func (b *LocalBackend) Create(kind Kind, value any) (Handle, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return 0, ErrClosed
	}

	e := entry{
		kind:  kind,
		value: value,
		valid: true,
	}

	if len(b.freeList) > 0 {
		handle := b.freeList[len(b.freeList)-1]
		b.freeList = b.freeList[:len(b.freeList)-1]
		b.entries[handle-1] = e
		return handle, nil
	}

	b.entries = append(b.entries, e)
	return Handle(len(b.entries)), nil
}

func (b *LocalBackend) lookup(handle Handle) (entry, bool) {
	if handle == 0 {
		return entry{}, false
	}
	idx := int(handle - 1)
	if idx >= len(b.entries) {
		return entry{}, false
	}
	e := b.entries[idx]
	return e, e.valid
}

// Get retrieves a value by handle.
func (b *LocalBackend) Get(handle Handle) (any, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	e, ok := b.lookup(handle)
	return e.value, ok
}

// Kind returns the reference kind of a handle.
func (b *LocalBackend) Kind(handle Handle) (Kind, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	e, ok := b.lookup(handle)
	return e.kind, ok
}

// Drop removes a value and returns (value, true) if the handle was live.
func (b *LocalBackend) Drop(handle Handle) (any, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()

	e, ok := b.lookup(handle)
	if !ok {
		return nil, false
	}

	b.entries[handle-1] = entry{}
	b.freeList = append(b.freeList, handle)
	return e.value, true
}

// Close releases all values, calling Drop on those that implement Dropper.
func (b *LocalBackend) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return nil
	}
	b.closed = true

	for i := range b.entries {
		if b.entries[i].valid {
			if d, ok := b.entries[i].value.(Dropper); ok {
				d.Drop()
			}
		}
	}

	b.entries = nil
	b.freeList = nil
	return nil
}

// Len returns the number of live handles.
func (b *LocalBackend) Len() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.entries) - len(b.freeList)
}

// Each iterates over all live handles.
func (b *LocalBackend) Each(fn func(Handle, Kind, any) bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	for i, e := range b.entries {
		if e.valid {
			if !fn(Handle(i+1), e.kind, e.value) {
				break
			}
		}
	}
}
