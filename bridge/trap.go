package bridge

import (
	stderrors "errors"
	"fmt"

	"github.com/dop251/goja"

	"github.com/wippyai/wasm-bridge/errors"
)

// TrapFromError converts a failure of a host engine call into a trap. A trap
// that crossed the engine as a Go error comes back unchanged.
func TrapFromError(err error) *errors.Trap {
	if err == nil {
		return nil
	}
	if t, ok := errors.AsTrap(err); ok {
		return t
	}

	var interrupted *goja.InterruptedError
	if stderrors.As(err, &interrupted) {
		payload := interrupted.Value()
		if t := trapFromPayload(payload); t != nil {
			return t
		}
		return &errors.Trap{
			Origin:  errors.OriginHost,
			Message: "interrupted: " + fmt.Sprint(payload),
			Payload: payload,
			Cause:   err,
		}
	}

	var ex *goja.Exception
	if stderrors.As(err, &ex) {
		return trapFromException(ex)
	}

	return &errors.Trap{
		Origin:  errors.OriginHost,
		Message: err.Error(),
		Cause:   err,
	}
}

func trapFromPayload(payload any) *errors.Trap {
	if e, ok := payload.(error); ok {
		if t, found := errors.AsTrap(e); found {
			return t
		}
	}
	return nil
}

func trapFromException(ex *goja.Exception) *errors.Trap {
	val := ex.Value()
	obj, ok := val.(*goja.Object)
	if !ok {
		var payload any
		msg := "exception"
		if val != nil {
			payload = val.Export()
			msg = val.String()
		}
		return &errors.Trap{Origin: errors.OriginGuest, Message: msg, Payload: payload, Cause: ex}
	}

	// GoError objects carry the original Go error in "value"
	if inner := obj.Get("value"); inner != nil && obj.ClassName() == "Error" {
		if goErr, isErr := inner.Export().(error); isErr {
			if t, found := errors.AsTrap(goErr); found {
				return t
			}
			return &errors.Trap{
				Origin:  errors.OriginGuest,
				Message: goErr.Error(),
				Payload: goErr,
				Cause:   goErr,
			}
		}
	}

	if obj.ClassName() == "Error" {
		msg := propString(obj, "message")
		if name := propString(obj, "name"); name != "" {
			if msg == "" {
				msg = name
			} else {
				msg = name + ": " + msg
			}
		}
		return &errors.Trap{Origin: errors.OriginGuest, Message: msg, Payload: obj, Cause: ex}
	}

	if b, isBox := obj.Export().(*refBox); isBox {
		return &errors.Trap{Origin: errors.OriginGuest, Message: "exception", Payload: b, Cause: ex}
	}
	return &errors.Trap{Origin: errors.OriginGuest, Message: obj.String(), Payload: obj.Export(), Cause: ex}
}

func propString(obj *goja.Object, name string) string {
	v := obj.Get(name)
	if v == nil || goja.IsUndefined(v) || goja.IsNull(v) {
		return ""
	}
	return v.String()
}
