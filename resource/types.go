package resource

// Handle is an opaque reference to a host value in a table.
// Handle 0 is reserved for the null reference.
type Handle uint32

// Kind is the reference type a handle was issued for.
type Kind uint8

const (
	KindExtern Kind = iota + 1
	KindFunc
)

func (k Kind) String() string {
	switch k {
	case KindExtern:
		return "externref"
	case KindFunc:
		return "funcref"
	default:
		return "unknown"
	}
}

// EventType enumerates reference lifecycle notifications.
type EventType uint8

const (
	EventCreated EventType = iota
	EventDropped
)

// Event represents a reference lifecycle event.
type Event struct {
	Value  any
	Handle Handle
	Kind   Kind
	Type   EventType
}

// Observer receives notifications about reference lifecycle events.
type Observer interface {
	OnReferenceEvent(Event)
}

// ObserverFunc adapts a function to the Observer interface.
type ObserverFunc func(Event)

func (f ObserverFunc) OnReferenceEvent(e Event) { f(e) }

// Backend provides the underlying storage for referenced values.
type Backend interface {
	// Create stores a value and returns a handle.
	Create(kind Kind, value any) (Handle, error)

	// Get retrieves a value by handle.
	Get(handle Handle) (any, bool)

	// Kind returns the reference kind a handle was issued for.
	Kind(handle Handle) (Kind, bool)

	// Drop removes a value and returns it.
	Drop(handle Handle) (any, bool)

	// Len returns the number of live handles.
	Len() int

	// Each iterates over live handles until fn returns false.
	Each(fn func(Handle, Kind, any) bool)

	// Close releases all values held by the backend.
	Close() error
}

// Dropper is optionally implemented by referenced values that need cleanup.
type Dropper interface {
	Drop()
}
