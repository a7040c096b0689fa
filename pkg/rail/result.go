package rail

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Result is a success-or-failure container. Exactly one of the value and the
// error is observable; combinators never mutate a Result, they build new ones.
type Result[T any] struct {
	id        uuid.UUID
	createdAt time.Time
	value     T
	err       *Error
	meta      *MetaInfo
	isSuccess bool
}

// Success wraps a value. A zero or nil value is still a valid success.
func Success[T any](value T) Result[T] {
	return Result[T]{
		value:     value,
		isSuccess: true,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

// SuccessMeta wraps a value together with attached metadata.
func SuccessMeta[T any](value T, meta *MetaInfo) Result[T] {
	r := Success(value)
	r.meta = meta
	return r
}

func Fail[T any](err *Error) Result[T] {
	if err == nil {
		err = New("rail: nil error")
	}
	return Result[T]{
		err:       err,
		isSuccess: false,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

// FailMsg wraps a bare message in a default-coded Error.
func FailMsg[T any](message string) Result[T] {
	return Fail[T](New(message))
}

// FailCause captures an ordinary error as the failure cause; the code
// defaults to the cause's runtime type name.
func FailCause[T any](cause error) Result[T] {
	return Fail[T](Capture(cause, "", CallerName(1)))
}

// From converts a standard (value, error) pair into a Result.
func From[T any](value T, err error) Result[T] {
	if err != nil {
		return Fail[T](Capture(err, "", CallerName(1)))
	}
	return Success(value)
}

// FailFrom carries the failure (and metadata) of from into a result of
// another type. Calling it with a success is a programming error.
func FailFrom[In, Out any](from Result[In]) Result[Out] {
	if from.isSuccess {
		panic("rail: FailFrom called on a success")
	}
	return Result[Out]{
		id:        from.id,
		createdAt: from.createdAt,
		err:       from.err,
		meta:      from.meta,
	}
}

func (r Result[T]) IsSuccess() bool {
	return r.isSuccess
}

func (r Result[T]) IsFailure() bool {
	return !r.isSuccess
}

// Value returns the payload of a success. Calling it on a failure is a
// contract violation and panics; check Get or IsSuccess first.
func (r Result[T]) Value() T {
	if !r.isSuccess {
		panic(fmt.Sprintf("rail: Value called on a failure: %v", r.err))
	}
	return r.value
}

// Get is the safe, total accessor: the payload plus a success flag. On a
// failure it returns the zero value of T.
func (r Result[T]) Get() (T, bool) {
	if !r.isSuccess {
		var zero T
		return zero, false
	}
	return r.value, true
}

// Err returns the failure's Error, or nil on a success.
func (r Result[T]) Err() *Error {
	return r.err
}

// Meta returns the attached metadata, or nil if none was attached.
func (r Result[T]) Meta() *MetaInfo {
	return r.meta
}

func (r Result[T]) Id() uuid.UUID {
	return r.id
}

func (r Result[T]) CreatedAt() time.Time {
	return r.createdAt
}

// WithMeta returns a copy of the result carrying meta.
func (r Result[T]) WithMeta(meta *MetaInfo) Result[T] {
	r.meta = meta
	return r
}

// WithContext fills in the failure's source/caller when absent
// (first-write-wins). On a success it is a no-op.
func (r Result[T]) WithContext(source, caller string) Result[T] {
	if r.isSuccess || r.err == nil {
		return r
	}
	r.err = r.err.WithContext(source, caller)
	return r
}
