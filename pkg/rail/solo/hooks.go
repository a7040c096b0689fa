package solo

import "github.com/ib-77/rail/pkg/rail"

// OnSuccess runs handler only on a success; the handler may keep the result
// successful or fail it. A fault raised inside the handler is captured into
// a failure with the HOOK_FAILURE sentinel code, distinguishing "the hook
// itself failed" from a business failure.
func OnSuccess[T any](input rail.Result[T], handler func(T) rail.Result[T]) (res rail.Result[T]) {
	v, ok := input.Get()
	if !ok {
		return input
	}

	defer hookRecover(&res, handler)

	return handler(v)
}

// OnSuccessDo is OnSuccess for side-effect-only handlers.
func OnSuccessDo[T any](input rail.Result[T], action func(T)) (res rail.Result[T]) {
	v, ok := input.Get()
	if !ok {
		return input
	}

	defer hookRecover(&res, action)

	action(v)
	return input
}

// OnFailure runs handler only on a failure; the handler may recover by
// returning a success, or re-wrap the error. Unlike OnSuccess the handler is
// NOT guarded: a panic inside it propagates, since failure hooks are
// terminal logging/recovery points where a fault is a programming defect.
func OnFailure[T any](input rail.Result[T], handler func(*rail.Error) rail.Result[T]) rail.Result[T] {
	if input.IsSuccess() {
		return input
	}
	return handler(input.Err())
}

// OnFailureDo is OnFailure for side-effect-only handlers.
func OnFailureDo[T any](input rail.Result[T], action func(*rail.Error)) rail.Result[T] {
	if input.IsSuccess() {
		return input
	}
	action(input.Err())
	return input
}

// OnFinally always runs handler, regardless of outcome; the handler's return
// value is the final result. Like OnFailure it is not guarded.
func OnFinally[T any](input rail.Result[T], handler func(rail.Result[T]) rail.Result[T]) rail.Result[T] {
	return handler(input)
}

// OnFinallyDo always runs action and returns the input unchanged.
func OnFinallyDo[T any](input rail.Result[T], action func(rail.Result[T])) rail.Result[T] {
	action(input)
	return input
}

func hookRecover[T any](res *rail.Result[T], hook any) {
	if rec := recover(); rec != nil {
		cause := rail.CapturePanic(rec)
		e := rail.NewCode(rail.CodeHookFailure, cause.Error()).
			WithCause(cause).
			WithContext(rail.FuncName(hook), "")
		*res = rail.Fail[T](e)
	}
}
