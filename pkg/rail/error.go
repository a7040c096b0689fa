package rail

import "maps"

// Error codes used by the library itself. Domain codes are free-form strings
// chosen by the caller.
const (
	DefaultCode     = "error"
	CodeNilValue    = "NULL_VALUE"
	CodeHookFailure = "HOOK_FAILURE"
	CodeValidation  = "VALIDATION"
	CodeDataAccess  = "DATA_ACCESS"
	CodeCanceled    = "ContextCanceled"
	CodeDeadline    = "DeadlineExceeded"
)

// Error is an immutable structured failure record. The With* builders are
// copy-on-write: they return a new Error and never touch the receiver, so a
// shared Error value is safe without synchronization.
type Error struct {
	message string
	code    string
	source  string
	caller  string
	cause   error
	extra   map[string]any
}

func New(message string) *Error {
	return &Error{message: message, code: DefaultCode}
}

func NewCode(code, message string) *Error {
	if code == "" {
		code = DefaultCode
	}
	return &Error{message: message, code: code}
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	return e.message
}

// Unwrap exposes the captured cause to errors.Is/As traversal.
func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.cause
}

func (e *Error) Message() string {
	if e == nil {
		return ""
	}
	return e.message
}

func (e *Error) Code() string {
	if e == nil {
		return ""
	}
	return e.code
}

func (e *Error) Source() string {
	if e == nil {
		return ""
	}
	return e.source
}

func (e *Error) Caller() string {
	if e == nil {
		return ""
	}
	return e.caller
}

func (e *Error) Cause() error {
	if e == nil {
		return nil
	}
	return e.cause
}

// Extra returns a copy of the domain extension payload; mutating it does not
// affect the error.
func (e *Error) Extra() map[string]any {
	if e == nil || e.extra == nil {
		return map[string]any{}
	}
	return maps.Clone(e.extra)
}

// WithContext fills in source and caller only when not already set.
// Enrichment never overwrites context established closer to the failure site.
func (e *Error) WithContext(source, caller string) *Error {
	if e == nil {
		return nil
	}
	if (source == "" || e.source != "") && (caller == "" || e.caller != "") {
		return e
	}
	c := e.clone()
	if c.source == "" {
		c.source = source
	}
	if c.caller == "" {
		c.caller = caller
	}
	return c
}

// WithCode returns a copy with the code replaced.
func (e *Error) WithCode(code string) *Error {
	if e == nil || code == "" || e.code == code {
		return e
	}
	c := e.clone()
	c.code = code
	return c
}

// WithCause returns a copy with the captured cause replaced.
func (e *Error) WithCause(cause error) *Error {
	if e == nil {
		return nil
	}
	c := e.clone()
	c.cause = cause
	return c
}

// With returns a copy with a domain extension field added or overwritten.
func (e *Error) With(key string, value any) *Error {
	if e == nil {
		return nil
	}
	c := e.clone()
	if c.extra == nil {
		c.extra = map[string]any{}
	} else {
		c.extra = maps.Clone(c.extra)
	}
	c.extra[key] = value
	return c
}

func (e *Error) clone() *Error {
	c := *e
	return &c
}
