package errors

import (
	stderrors "errors"
	"strings"
)

// Phase indicates where in the bridge's single pass the error occurred
type Phase string

const (
	PhaseUsage   Phase = "usage"   // invocation shape
	PhaseSeed    Phase = "seed"    // seed decoding
	PhaseLoad    Phase = "load"    // module loading
	PhaseResolve Phase = "resolve" // symbol resolution
	PhaseInvoke  Phase = "invoke"  // the foreign call itself
)

// Kind categorizes the error
type Kind string

const (
	KindBadInvocation Kind = "bad_invocation"
	KindInvalidSeed   Kind = "invalid_seed"
	KindOpenFailed    Kind = "open_failed"
	KindNotFound      Kind = "not_found"
	KindTrapped       Kind = "trapped"
	KindUnsupported   Kind = "unsupported"
)

// Process exit statuses. Each failure phase maps to its own status so the
// parent process can branch without parsing stderr.
const (
	ExitOK      = 0
	ExitUsage   = 1 // wrong argument count or malformed seed
	ExitLoad    = 2 // module not found, wrong architecture, missing dependency
	ExitResolve = 3 // module loaded but lacks the expected export
	ExitInvoke  = 4 // the callee trapped (sandboxed backends only)
)

// Error is the structured error type used throughout keybridge
type Error struct {
	Cause  error
	Phase  Phase
	Kind   Kind
	Detail string
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if e.Detail != "" {
		b.WriteString(": ")
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

// ExitStatus maps an error to the process exit status for its phase.
// Errors that did not come from this package count as load failures, the
// most generic external fault.
func ExitStatus(err error) int {
	if err == nil {
		return ExitOK
	}

	var e *Error
	if !stderrors.As(err, &e) {
		return ExitLoad
	}

	switch e.Phase {
	case PhaseUsage, PhaseSeed:
		return ExitUsage
	case PhaseResolve:
		return ExitResolve
	case PhaseInvoke:
		return ExitInvoke
	default:
		return ExitLoad
	}
}

// Convenience constructors for the bridge's failure cases

// Usage creates a wrong-invocation error
func Usage(detail string) *Error {
	return &Error{
		Phase:  PhaseUsage,
		Kind:   KindBadInvocation,
		Detail: detail,
	}
}

// InvalidSeed creates a malformed-seed error
func InvalidSeed(cause error) *Error {
	return &Error{
		Phase: PhaseSeed,
		Kind:  KindInvalidSeed,
		Cause: cause,
	}
}

// Load creates a module loading error. The cause carries the platform
// diagnostic (dlerror text, win32 last-error, decoder message).
func Load(detail string, cause error) *Error {
	return &Error{
		Phase:  PhaseLoad,
		Kind:   KindOpenFailed,
		Detail: detail,
		Cause:  cause,
	}
}

// Resolve creates a symbol resolution error
func Resolve(symbol string, cause error) *Error {
	return &Error{
		Phase:  PhaseResolve,
		Kind:   KindNotFound,
		Detail: "export " + symbol,
		Cause:  cause,
	}
}

// Invoke creates a foreign-call error
func Invoke(detail string, cause error) *Error {
	return &Error{
		Phase:  PhaseInvoke,
		Kind:   KindTrapped,
		Detail: detail,
		Cause:  cause,
	}
}

// Unsupported creates an unsupported-platform error
func Unsupported(phase Phase, what string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindUnsupported,
		Detail: what,
	}
}
