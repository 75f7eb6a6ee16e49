package errors

import (
	"fmt"
	"strings"
)

// Phase indicates where in processing the error occurred
type Phase string

const (
	PhaseConfig  Phase = "config"  // engine configuration
	PhaseLoad    Phase = "load"    // module compilation
	PhaseLinking Phase = "linking" // import resolution
	PhaseBind    Phase = "bind"    // typed binding of an export
	PhaseEncode  Phase = "encode"  // Go to host value
	PhaseDecode  Phase = "decode"  // host value to Go
	PhaseCall    Phase = "call"    // invocation of a bound function
	PhaseRuntime Phase = "runtime" // runtime operations
	PhaseHost    Phase = "host"    // host function registration
	PhaseParse   Phase = "parse"   // textual value parsing
)

// Kind categorizes the error
type Kind string

const (
	KindTypeMismatch      Kind = "type_mismatch"
	KindSignatureMismatch Kind = "signature_mismatch"
	KindArityMismatch     Kind = "arity_mismatch"
	KindInvalidData       Kind = "invalid_data"
	KindUnsupported       Kind = "unsupported"
	KindMissingImport     Kind = "missing_import"
	KindNotFound          Kind = "not_found"
	KindNotInitialized    Kind = "not_initialized"
	KindInvalidInput      Kind = "invalid_input"
	KindRegistration      Kind = "registration"
	KindInstantiation     Kind = "instantiation"
	KindClosed            Kind = "closed"
)

// Error is the structured error type used throughout the bridge
type Error struct {
	Value    any
	Cause    error
	Phase    Phase
	Kind     Kind
	GoType   string
	WasmType string
	Detail   string
	Path     []string
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if len(e.Path) > 0 {
		b.WriteString(" at ")
		b.WriteString(strings.Join(e.Path, "."))
	}

	if e.GoType != "" || e.WasmType != "" {
		b.WriteString(": ")
		if e.GoType != "" && e.WasmType != "" {
			b.WriteString("Go type ")
			b.WriteString(e.GoType)
			b.WriteString(", wasm type ")
			b.WriteString(e.WasmType)
		} else if e.GoType != "" {
			b.WriteString("Go type ")
			b.WriteString(e.GoType)
		} else {
			b.WriteString("wasm type ")
			b.WriteString(e.WasmType)
		}
	}

	if e.Detail != "" {
		if e.GoType != "" || e.WasmType != "" {
			b.WriteString(" - ")
		} else {
			b.WriteString(": ")
		}
		b.WriteString(e.Detail)
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Phase == t.Phase && e.Kind == t.Kind
	}
	return false
}

// Builder provides structured error construction
type Builder struct {
	err Error
}

// New creates a new error builder
func New(phase Phase, kind Kind) *Builder {
	return &Builder{
		err: Error{
			Phase: phase,
			Kind:  kind,
		},
	}
}

// Path sets the parameter/result path
func (b *Builder) Path(path ...string) *Builder {
	b.err.Path = path
	return b
}

// GoType sets the Go type name
func (b *Builder) GoType(t string) *Builder {
	b.err.GoType = t
	return b
}

// WasmType sets the wasm value type name
func (b *Builder) WasmType(t string) *Builder {
	b.err.WasmType = t
	return b
}

// Value sets the offending value
func (b *Builder) Value(v any) *Builder {
	b.err.Value = v
	return b
}

// Cause sets the underlying error
func (b *Builder) Cause(err error) *Builder {
	b.err.Cause = err
	return b
}

// Detail sets the human-readable detail message
func (b *Builder) Detail(msg string, args ...any) *Builder {
	if len(args) > 0 {
		b.err.Detail = fmt.Sprintf(msg, args...)
	} else {
		b.err.Detail = msg
	}
	return b
}

// Build returns the constructed error
func (b *Builder) Build() *Error {
	return &b.err
}

// Convenience constructors for common error patterns

// TypeMismatch creates a type mismatch error
func TypeMismatch(phase Phase, path []string, goType, wasmType string) *Error {
	return &Error{
		Phase:    phase,
		Kind:     KindTypeMismatch,
		Path:     path,
		GoType:   goType,
		WasmType: wasmType,
	}
}

// SignatureMismatch reports a requested native signature that differs from
// the declared one.
func SignatureMismatch(name, requested, declared string) *Error {
	return &Error{
		Phase:  PhaseBind,
		Kind:   KindSignatureMismatch,
		Path:   []string{name},
		Detail: fmt.Sprintf("requested %s, function declares %s", requested, declared),
	}
}

// ArityMismatch creates an argument count error
func ArityMismatch(phase Phase, name string, got, want int) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindArityMismatch,
		Path:   []string{name},
		Detail: fmt.Sprintf("got %d arguments, want %d", got, want),
		Value:  got,
	}
}

// Unsupported creates an unsupported operation error
func Unsupported(phase Phase, what string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindUnsupported,
		Detail: what,
	}
}

// InvalidData creates an invalid data error
func InvalidData(phase Phase, path []string, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidData,
		Path:   path,
		Detail: detail,
	}
}

// Wrap wraps an existing error with additional context
func Wrap(phase Phase, kind Kind, cause error, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   kind,
		Detail: detail,
		Cause:  cause,
	}
}

// MissingImport represents a single unresolved import
type MissingImport struct {
	Module   string // e.g., "env"
	Function string // e.g., "log_i32"
}

// MissingImportsError is returned when instantiation fails because the
// imports object lacks functions the module needs
type MissingImportsError struct {
	Imports []MissingImport
}

// NewMissingImportsError creates an error from a list of "module#function" strings
func NewMissingImportsError(imports []string) *MissingImportsError {
	result := &MissingImportsError{
		Imports: make([]MissingImport, 0, len(imports)),
	}
	for _, imp := range imports {
		mod, fn := parseImportKey(imp)
		result.Imports = append(result.Imports, MissingImport{
			Module:   mod,
			Function: fn,
		})
	}
	return result
}

func parseImportKey(key string) (module, function string) {
	mod, fn, found := strings.Cut(key, "#")
	if found {
		return mod, fn
	}
	return key, ""
}

func (e *MissingImportsError) Error() string {
	if len(e.Imports) == 0 {
		return "[linking] missing_import: no imports specified"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "missing %d import(s):\n", len(e.Imports))

	byModule := make(map[string][]string)
	var order []string
	for _, imp := range e.Imports {
		if _, exists := byModule[imp.Module]; !exists {
			order = append(order, imp.Module)
		}
		byModule[imp.Module] = append(byModule[imp.Module], imp.Function)
	}

	for _, mod := range order {
		b.WriteString("\n  ")
		b.WriteString(mod)
		b.WriteString(":\n")
		for _, fn := range byModule[mod] {
			b.WriteString("    - ")
			b.WriteString(fn)
			b.WriteByte('\n')
		}
	}

	return strings.TrimSuffix(b.String(), "\n")
}

// Is reports whether target matches this error type
func (e *MissingImportsError) Is(target error) bool {
	_, ok := target.(*MissingImportsError)
	return ok
}

// NotInitialized creates a not-initialized error for missing module/instance
func NotInitialized(phase Phase, component string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindNotInitialized,
		Detail: fmt.Sprintf("%s not initialized", component),
	}
}

// NotFound creates a not-found error
func NotFound(phase Phase, what, name string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindNotFound,
		Detail: fmt.Sprintf("%s %q not found", what, name),
	}
}

// InvalidInput creates an invalid input error
func InvalidInput(phase Phase, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidInput,
		Detail: detail,
	}
}

// Registration creates a registration error
func Registration(phase Phase, module, name string, cause error) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindRegistration,
		Detail: fmt.Sprintf("register %s#%s", module, name),
		Cause:  cause,
	}
}

// Instantiation creates an instantiation error
func Instantiation(cause error) *Error {
	return &Error{
		Phase:  PhaseRuntime,
		Kind:   KindInstantiation,
		Detail: "instantiate module",
		Cause:  cause,
	}
}

// Load creates a module loading error
func Load(detail string, cause error) *Error {
	return &Error{
		Phase:  PhaseLoad,
		Kind:   KindInvalidData,
		Detail: detail,
		Cause:  cause,
	}
}

// ParseFailed creates a parsing error
func ParseFailed(what string, cause error) *Error {
	return &Error{
		Phase:  PhaseParse,
		Kind:   KindInvalidData,
		Detail: fmt.Sprintf("parse %s", what),
		Cause:  cause,
	}
}

// Closed reports use of a released store or instance
func Closed(phase Phase, what string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindClosed,
		Detail: fmt.Sprintf("%s is closed", what),
	}
}
