package engine

import (
	"context"

	"github.com/dop251/goja"
	"go.uber.org/zap"

	"github.com/wippyai/wasm-bridge/bridge"
	"github.com/wippyai/wasm-bridge/errors"
)

type actionKind uint8

const (
	actionInvokeAgain actionKind = iota + 1
	actionFinish
	actionAbort
)

// OnCalledAction tells the call loop how to proceed after an on-called
// callback ran.
type OnCalledAction struct {
	payload any
	kind    actionKind
}

// InvokeAgain repeats the host call with the same arguments.
func InvokeAgain() OnCalledAction { return OnCalledAction{kind: actionInvokeAgain} }

// Finish accepts the last host result as final.
func Finish() OnCalledAction { return OnCalledAction{kind: actionFinish} }

// Abort discards the last result and ends the call with a trap carrying
// payload.
func Abort(payload any) OnCalledAction { return OnCalledAction{kind: actionAbort, payload: payload} }

func (a OnCalledAction) String() string {
	switch a.kind {
	case actionInvokeAgain:
		return "invoke-again"
	case actionFinish:
		return "finish"
	case actionAbort:
		return "abort"
	default:
		return "none"
	}
}

// OnCalledFunc runs after a host call returns. It is installed by engine
// machinery (asyncify suspension) or by callers imposing their own limits.
type OnCalledFunc func(*Store) (OnCalledAction, error)

// SetOnCalled installs the callback consumed after the next host call
// returns, replacing any pending one.
func (s *Store) SetOnCalled(fn OnCalledFunc) {
	s.onCalled = fn
}

// TakeOnCalled reads and clears the on-called slot.
func (s *Store) TakeOnCalled() OnCalledFunc {
	fn := s.onCalled
	s.onCalled = nil
	return fn
}

// HasOnCalled reports whether a callback is pending.
func (s *Store) HasOnCalled() bool {
	return s.onCalled != nil
}

type callState uint8

const (
	stateCalling callState = iota
	stateDone
)

// Invoke calls fn with args on the store's VM and drives the reentrant call
// loop. After every call the on-called slot is taken; an empty slot ends the
// loop with the call's own outcome, otherwise the callback decides whether
// to call again, finish with the last result, or abort with a trap.
// Failures are returned as *errors.Trap. The slot is empty when Invoke
// returns.
func (s *Store) Invoke(ctx context.Context, fn goja.Callable, args []goja.Value) (goja.Value, error) {
	if s.closed {
		return nil, errors.Closed(errors.PhaseCall, "store")
	}
	if ctx == nil {
		ctx = context.Background()
	}

	prevCtx := s.ctx
	prevActive := ActiveStore(s.vm)
	s.ctx = ctx
	s.setActive(s.id)
	defer func() {
		s.onCalled = nil
		s.ctx = prevCtx
		if prevActive != nil {
			s.setActive(prevActive.id)
		} else {
			s.setActive(0)
		}
	}()

	var (
		result      goja.Value
		callErr     error
		invocations int
	)

	state := stateCalling
	for state == stateCalling {
		if s.maxInvocations > 0 && invocations >= s.maxInvocations {
			s.logger.Debug("invocation limit reached", zap.Int("limit", s.maxInvocations))
			return nil, errors.NewTrap(errors.OriginResume, "call re-entered the guest more than %d times", s.maxInvocations)
		}
		invocations++

		result, callErr = fn(goja.Undefined(), args...)

		cb := s.TakeOnCalled()
		if cb == nil {
			state = stateDone
			continue
		}

		action, err := cb(s)
		if err != nil {
			s.logger.Debug("on-called callback failed", zap.Error(err))
			return nil, errors.UserTrap(errors.OriginResume, err)
		}
		debugf("on-called action %s after invocation %d", action, invocations)

		switch action.kind {
		case actionInvokeAgain:
			// stay in stateCalling
		case actionFinish:
			state = stateDone
		case actionAbort:
			return nil, errors.UserTrap(errors.OriginResume, action.payload)
		default:
			return nil, errors.NewTrap(errors.OriginResume, "on-called callback returned no action")
		}
	}

	if callErr != nil {
		return nil, bridge.TrapFromError(callErr)
	}
	if result == nil {
		result = goja.Undefined()
	}
	return result, nil
}
