package solo

import (
	"errors"

	"github.com/ib-77/rail/pkg/rail"
)

// FailIf converts a success into a failure when the predicate holds ("must
// not hold" guard). The predicate is never evaluated on a failure.
func FailIf[T any](input rail.Result[T], predicate func(T) bool, code, message string) rail.Result[T] {
	v, ok := input.Get()
	if !ok {
		return input.WithContext("", rail.CallerName(1))
	}
	if predicate(v) {
		return guardFail(input, predicate, code, message)
	}
	return input
}

// FailOn is FailIf with a precomputed condition instead of a predicate over
// the value.
func FailOn[T any](input rail.Result[T], condition bool, code, message string) rail.Result[T] {
	if input.IsFailure() {
		return input.WithContext("", rail.CallerName(1))
	}
	if condition {
		return rail.Fail[T](rail.NewCode(code, message).WithContext("", rail.CallerName(1))).WithMeta(input.Meta())
	}
	return input
}

// FailIfWith is FailIf with a caller-built error.
func FailIfWith[T any](input rail.Result[T], predicate func(T) bool, errFn func(T) *rail.Error) rail.Result[T] {
	v, ok := input.Get()
	if !ok {
		return input.WithContext("", rail.CallerName(1))
	}
	if predicate(v) {
		e := errFn(v).WithContext(rail.FuncName(predicate), rail.CallerName(1))
		return rail.Fail[T](e).WithMeta(input.Meta())
	}
	return input
}

// Ensure is the complement of FailIf: it fails when the predicate does NOT
// hold ("must hold" post-condition).
func Ensure[T any](input rail.Result[T], predicate func(T) bool, code, message string) rail.Result[T] {
	v, ok := input.Get()
	if !ok {
		return input.WithContext("", rail.CallerName(1))
	}
	if !predicate(v) {
		return guardFail(input, predicate, code, message)
	}
	return input
}

// EnsureAll runs every check and joins the errors of all that failed.
func EnsureAll[T any](input rail.Result[T], checks ...func(T) *rail.Error) rail.Result[T] {
	v, ok := input.Get()
	if !ok {
		return input.WithContext("", rail.CallerName(1))
	}

	var errs []error
	for _, check := range checks {
		if e := check(v); e != nil {
			errs = append(errs, e)
		}
	}

	switch len(errs) {
	case 0:
		return input
	case 1:
		return rail.Fail[T](errs[0].(*rail.Error).WithContext("", rail.CallerName(1))).WithMeta(input.Meta())
	}

	joined := errors.Join(errs...)
	e := rail.NewCode(rail.CodeValidation, joined.Error()).WithCause(joined).WithContext("", rail.CallerName(1))
	return rail.Fail[T](e).WithMeta(input.Meta())
}

// FailIfNil converts a nil pointer into a NULL_VALUE failure; a present
// value becomes a success.
func FailIfNil[T any](value *T, message string) rail.Result[T] {
	if value == nil {
		return nilFailure[T](message)
	}
	return rail.Success(*value)
}

// FailIfNilValue is FailIfNil for values whose nilness is only visible
// through reflection (interfaces, maps, slices, functions).
func FailIfNilValue[T any](value T, message string) rail.Result[T] {
	if rail.IsNil(value) {
		return nilFailure[T](message)
	}
	return rail.Success(value)
}

// NotNil unwraps a Result over a pointer, short-circuiting existing
// failures and converting a nil payload into a NULL_VALUE failure.
func NotNil[T any](input rail.Result[*T], message string) rail.Result[T] {
	v, ok := input.Get()
	if !ok {
		return rail.FailFrom[*T, T](input).WithContext("", rail.CallerName(1))
	}
	if v == nil {
		return nilFailure[T](message).WithMeta(input.Meta())
	}
	return rail.Success(*v).WithMeta(input.Meta())
}

func nilFailure[T any](message string) rail.Result[T] {
	return rail.Fail[T](rail.NewCode(rail.CodeNilValue, message).WithContext("", rail.CallerName(2)))
}

func guardFail[T any](input rail.Result[T], predicate func(T) bool, code, message string) rail.Result[T] {
	e := rail.NewCode(code, message).WithContext(rail.FuncName(predicate), rail.CallerName(2))
	return rail.Fail[T](e).WithMeta(input.Meta())
}
