package errors

import (
	"errors"
	"fmt"
	"strings"
)

// TrapOrigin tells where a trap was raised.
type TrapOrigin uint8

const (
	// OriginGuest is a fault inside the guest function (unreachable,
	// out-of-bounds access, exit) or an exception thrown by host code it called.
	OriginGuest TrapOrigin = iota
	// OriginHost is a failure of the host engine itself, e.g. an interrupt.
	OriginHost
	// OriginResume is a trap requested by an on-called callback.
	OriginResume
)

func (o TrapOrigin) String() string {
	switch o {
	case OriginGuest:
		return "guest"
	case OriginHost:
		return "host"
	case OriginResume:
		return "resume"
	default:
		return fmt.Sprintf("origin(%d)", uint8(o))
	}
}

// Trap is the runtime error returned by a failed call. It carries a message
// and/or an opaque user payload.
type Trap struct {
	Payload any
	Cause   error
	Message string
	Origin  TrapOrigin
}

// NewTrap creates a trap with a message.
func NewTrap(origin TrapOrigin, format string, args ...any) *Trap {
	msg := format
	if len(args) > 0 {
		msg = fmt.Sprintf(format, args...)
	}
	return &Trap{Origin: origin, Message: msg}
}

// UserTrap wraps a user supplied payload. A payload that already is a trap is
// returned unchanged so that traps are never wrapped twice.
func UserTrap(origin TrapOrigin, payload any) *Trap {
	switch p := payload.(type) {
	case nil:
		return &Trap{Origin: origin, Message: "trap"}
	case *Trap:
		return p
	case error:
		var t *Trap
		if errors.As(p, &t) {
			return t
		}
		return &Trap{Origin: origin, Message: p.Error(), Cause: p, Payload: p}
	case string:
		return &Trap{Origin: origin, Message: p, Payload: p}
	default:
		return &Trap{Origin: origin, Message: fmt.Sprint(p), Payload: p}
	}
}

func (t *Trap) Error() string {
	var b strings.Builder
	b.WriteString("[trap] ")
	b.WriteString(t.Origin.String())
	if t.Message != "" {
		b.WriteString(": ")
		b.WriteString(t.Message)
	}
	if t.Cause != nil && t.Cause.Error() != t.Message {
		b.WriteString(" (caused by: ")
		b.WriteString(t.Cause.Error())
		b.WriteByte(')')
	}
	return b.String()
}

func (t *Trap) Unwrap() error {
	return t.Cause
}

// Is matches a *Trap target with the same origin. A non-empty target message
// must match as well.
func (t *Trap) Is(target error) bool {
	tt, ok := target.(*Trap)
	if !ok {
		return false
	}
	return t.Origin == tt.Origin && (tt.Message == "" || tt.Message == t.Message)
}

// AsTrap extracts a trap from an error chain.
func AsTrap(err error) (*Trap, bool) {
	var t *Trap
	if errors.As(err, &t) {
		return t, true
	}
	return nil, false
}
