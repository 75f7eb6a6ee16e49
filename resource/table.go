package resource

import (
	"reflect"
	"sync"
)

type indexKey struct {
	value any
	kind  Kind
}

// Table maps reference handles to host values. Comparable values are
// indexed in reverse, so interning the same value twice yields the same
// handle.
type Table struct {
	backend   Backend
	index     map[indexKey]Handle
	observers []Observer
	mu        sync.RWMutex
	closed    bool
}

// NewTable creates a table backed by a LocalBackend.
func NewTable() *Table {
	return NewTableWithBackend(NewLocalBackend())
}

// NewTableWithBackend creates a table over a custom backend.
func NewTableWithBackend(b Backend) *Table {
	return &Table{
		backend: b,
		index:   make(map[indexKey]Handle),
	}
}

// Insert adds a value and returns a fresh handle. Returns 0 when closed.
func (t *Table) Insert(kind Kind, value any) Handle {
	t.mu.Lock()
	h := t.insertLocked(kind, value)
	t.mu.Unlock()

	if h != 0 {
		t.notify(Event{Type: EventCreated, Handle: h, Kind: kind, Value: value})
	}
	return h
}

// Intern returns the existing handle for value, inserting it if absent.
func (t *Table) Intern(kind Kind, value any) Handle {
	key, indexable := keyOf(kind, value)

	t.mu.Lock()
	if indexable {
		if h, ok := t.index[key]; ok {
			t.mu.Unlock()
			return h
		}
	}
	h := t.insertLocked(kind, value)
	if h != 0 && indexable {
		t.index[key] = h
	}
	t.mu.Unlock()

	if h != 0 {
		t.notify(Event{Type: EventCreated, Handle: h, Kind: kind, Value: value})
	}
	return h
}

func (t *Table) insertLocked(kind Kind, value any) Handle {
	if t.closed {
		return 0
	}
	h, err := t.backend.Create(kind, value)
	if err != nil {
		return 0
	}
	return h
}

// Lookup returns the handle previously interned for value.
func (t *Table) Lookup(kind Kind, value any) (Handle, bool) {
	key, indexable := keyOf(kind, value)
	if !indexable {
		return 0, false
	}
	t.mu.RLock()
	defer t.mu.RUnlock()
	h, ok := t.index[key]
	return h, ok
}

// Get retrieves a value by handle.
func (t *Table) Get(handle Handle) (any, bool) {
	return t.backend.Get(handle)
}

// GetKind retrieves a value only if the handle was issued for kind.
func (t *Table) GetKind(handle Handle, kind Kind) (any, bool) {
	actual, ok := t.backend.Kind(handle)
	if !ok || actual != kind {
		return nil, false
	}
	return t.backend.Get(handle)
}

// Remove drops a handle and returns its value.
func (t *Table) Remove(handle Handle) (any, bool) {
	t.mu.Lock()
	kind, _ := t.backend.Kind(handle)
	value, ok := t.backend.Drop(handle)
	if ok {
		if key, indexable := keyOf(kind, value); indexable && t.index[key] == handle {
			delete(t.index, key)
		}
	}
	t.mu.Unlock()

	if !ok {
		return nil, false
	}
	if d, isDropper := value.(Dropper); isDropper {
		d.Drop()
	}
	t.notify(Event{Type: EventDropped, Handle: handle, Kind: kind, Value: value})
	return value, true
}

// Subscribe adds an observer for lifecycle events.
func (t *Table) Subscribe(o Observer) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.observers = append(t.observers, o)
}

// Len returns the number of live handles.
func (t *Table) Len() int {
	return t.backend.Len()
}

// Each iterates over all live handles.
func (t *Table) Each(fn func(Handle, Kind, any) bool) {
	t.backend.Each(fn)
}

// Clear drops all handles.
func (t *Table) Clear() {
	var handles []Handle
	t.backend.Each(func(h Handle, _ Kind, _ any) bool {
		handles = append(handles, h)
		return true
	})
	for _, h := range handles {
		t.Remove(h)
	}
}

// Close releases all values and stops accepting inserts.
func (t *Table) Close() error {
	t.mu.Lock()
	t.closed = true
	t.index = make(map[indexKey]Handle)
	t.observers = nil
	t.mu.Unlock()

	return t.backend.Close()
}

func (t *Table) notify(e Event) {
	t.mu.RLock()
	observers := t.observers
	t.mu.RUnlock()
	for _, o := range observers {
		o.OnReferenceEvent(e)
	}
}

func keyOf(kind Kind, value any) (indexKey, bool) {
	if value == nil {
		return indexKey{}, false
	}
	switch reflect.TypeOf(value).Kind() {
	case reflect.Pointer, reflect.Chan, reflect.UnsafePointer, reflect.String, reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return indexKey{kind: kind, value: value}, true
	}
	return indexKey{}, false
}
