package errors

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestUserTrap(t *testing.T) {
	t.Run("string payload", func(t *testing.T) {
		trap := UserTrap(OriginResume, "stop")
		if trap.Message != "stop" || trap.Payload != "stop" {
			t.Errorf("unexpected trap %+v", trap)
		}
		if trap.Origin != OriginResume {
			t.Errorf("Origin = %v, want resume", trap.Origin)
		}
	})

	t.Run("arbitrary payload", func(t *testing.T) {
		type code struct{ N int }
		trap := UserTrap(OriginGuest, code{N: 7})
		if trap.Payload != (code{N: 7}) {
			t.Errorf("Payload = %v", trap.Payload)
		}
	})

	t.Run("existing trap is not wrapped", func(t *testing.T) {
		orig := NewTrap(OriginGuest, "unreachable")
		if got := UserTrap(OriginResume, orig); got != orig {
			t.Errorf("trap was re-wrapped: %v", got)
		}
		wrapped := fmt.Errorf("call: %w", orig)
		if got := UserTrap(OriginResume, wrapped); got != orig {
			t.Errorf("wrapped trap was re-wrapped: %v", got)
		}
	})

	t.Run("error payload keeps cause", func(t *testing.T) {
		cause := errors.New("boom")
		trap := UserTrap(OriginHost, cause)
		if !errors.Is(trap, cause) {
			t.Error("trap should unwrap to cause")
		}
	})
}

func TestTrap_Error(t *testing.T) {
	trap := NewTrap(OriginGuest, "integer divide by %s", "zero")
	msg := trap.Error()
	if !strings.Contains(msg, "[trap] guest") || !strings.Contains(msg, "integer divide by zero") {
		t.Errorf("unexpected message %q", msg)
	}
}

func TestTrap_Is(t *testing.T) {
	trap := NewTrap(OriginResume, "aborted")
	if !errors.Is(trap, &Trap{Origin: OriginResume}) {
		t.Error("should match origin")
	}
	if errors.Is(trap, &Trap{Origin: OriginGuest}) {
		t.Error("should not match other origin")
	}
	if errors.Is(trap, &Trap{Origin: OriginResume, Message: "other"}) {
		t.Error("should not match other message")
	}

	got, ok := AsTrap(fmt.Errorf("outer: %w", trap))
	if !ok || got != trap {
		t.Error("AsTrap should find wrapped trap")
	}
}
