package rail

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"runtime"
	"strings"
)

// Capture translates an ordinary error into a structured Error. An error that
// already is a *Error passes through with first-write-wins context
// enrichment; anything else becomes a new Error whose code is the fault's
// runtime type name and whose cause retains the original fault.
func Capture(cause error, source, caller string) *Error {
	if cause == nil {
		return nil
	}
	if e, ok := cause.(*Error); ok {
		return e.WithContext(source, caller)
	}
	return &Error{
		message: cause.Error(),
		code:    FaultCode(cause),
		source:  source,
		caller:  caller,
		cause:   cause,
	}
}

// CapturePanic normalizes a recover() value into an error.
func CapturePanic(rec any) error {
	if err, ok := rec.(error); ok {
		return err
	}
	return fmt.Errorf("panic: %v", rec)
}

// FaultCode derives an error code from a fault. Cancellation faults map to
// stable codes; everything else uses the runtime type name.
func FaultCode(err error) string {
	if IsCancellation(err) {
		if errors.Is(err, context.DeadlineExceeded) {
			return CodeDeadline
		}
		return CodeCanceled
	}
	return TypeName(err)
}

// TypeName returns the bare runtime type name of v, dereferencing pointers.
func TypeName(v any) string {
	if v == nil {
		return DefaultCode
	}
	t := reflect.TypeOf(v)
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t.Name() != "" {
		return t.Name()
	}
	return t.String()
}

func IsCancellation(err error) bool {
	return errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled)
}

func IsNil(i interface{}) bool {
	if i == nil {
		return true
	}
	v := reflect.ValueOf(i)
	switch v.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func:
		return v.IsNil()
	}
	return false
}

func GetErrors(err error) []error {
	if IsNil(err) {
		return []error{}
	}

	e, ok := err.(interface{ Unwrap() []error })
	if ok {
		return e.Unwrap()
	}

	return []error{err}
}

// FuncName returns a short identifier for f, used as the default failure
// source for captured faults.
func FuncName(f any) string {
	if IsNil(f) {
		return ""
	}
	v := reflect.ValueOf(f)
	if v.Kind() != reflect.Func {
		return ""
	}
	fn := runtime.FuncForPC(v.Pointer())
	if fn == nil {
		return ""
	}
	return shortName(fn.Name())
}

// CallerName returns a short identifier for the function skip frames above
// the caller, used to auto-populate Error.Caller.
func CallerName(skip int) string {
	pc, _, _, ok := runtime.Caller(skip + 1)
	if !ok {
		return ""
	}
	fn := runtime.FuncForPC(pc)
	if fn == nil {
		return ""
	}
	return shortName(fn.Name())
}

func shortName(qualified string) string {
	if i := strings.LastIndex(qualified, "/"); i >= 0 {
		qualified = qualified[i+1:]
	}
	return qualified
}
