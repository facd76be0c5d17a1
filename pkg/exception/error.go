package exception

import (
	"time"
)

// DefaultKind is used when an Error is created without a kind.
const DefaultKind = "Error"

// DataCarrier is implemented by errors that expose an auxiliary data bag.
type DataCarrier interface {
	Data() *Data
}

// Error is a diagnostic error with a kind, a data bag and a captured stack.
type Error struct {
	kind       string
	msg        string
	cause      error
	data       *Data
	stack      []uintptr
	capturedAt time.Time
}

// New creates an Error and captures the caller's stack.
func New(kind, msg string) *Error {
	return newError(kind, msg, nil)
}

// Wrap creates an Error caused by cause and captures the caller's stack.
// A nil cause produces the same result as New.
func Wrap(cause error, kind, msg string) *Error {
	return newError(kind, msg, cause)
}

func newError(kind, msg string, cause error) *Error {
	if kind == "" {
		kind = DefaultKind
	}
	return &Error{
		kind:       kind,
		msg:        msg,
		cause:      cause,
		data:       NewData(),
		stack:      callers(3),
		capturedAt: time.Now(),
	}
}

// Error returns the message followed by the cause, if any.
// All accessors are safe on a nil *Error.
func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.cause == nil {
		return e.msg
	}
	if e.msg == "" {
		return e.cause.Error()
	}
	return e.msg + ": " + e.cause.Error()
}

// Message returns the message without the cause.
func (e *Error) Message() string {
	if e == nil {
		return ""
	}
	return e.msg
}

// Kind returns the logical type of the error. A nil *Error reports DefaultKind.
func (e *Error) Kind() string {
	if e == nil {
		return DefaultKind
	}
	return e.kind
}

// TypeName implements the hook used by TypeName and Fingerprint.
func (e *Error) TypeName() string { return e.Kind() }

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.cause
}

// Data returns the error's data bag. It is nil only for a nil *Error.
func (e *Error) Data() *Data {
	if e == nil {
		return nil
	}
	return e.data
}

// With stores key/value in the data bag and returns e for chaining.
// It is a no-op on a nil *Error.
func (e *Error) With(key string, value any) *Error {
	if e == nil {
		return nil
	}
	if e.data == nil {
		e.data = NewData()
	}
	e.data.Set(key, value)
	return e
}

// CapturedAt returns the time the error was created.
func (e *Error) CapturedAt() time.Time {
	if e == nil {
		return time.Time{}
	}
	return e.capturedAt
}

// Is matches another *Error with the same kind and message, so sentinel-style
// values created with New can be used as errors.Is targets.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok || e == nil || t == nil {
		return false
	}
	return e.kind == t.kind && e.msg == t.msg
}
