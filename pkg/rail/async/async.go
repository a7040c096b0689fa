package async

import (
	"context"

	"github.com/ib-77/rail/pkg/rail"
)

// Then is the asynchronous form of solo.Then: the step receives a context
// and may suspend on host I/O. Cancellation observed before the step runs is
// captured as an ordinary fault.
func Then[In, Out any](ctx context.Context, input rail.Result[In], onSuccess func(context.Context, In) rail.Result[Out]) rail.Result[Out] {
	if r, ok := canceled[In, Out](ctx, input); ok {
		return r
	}
	if v, ok := input.Get(); ok {
		return onSuccess(ctx, v)
	}
	return rail.FailFrom[In, Out](input).WithContext(rail.FuncName(onSuccess), rail.CallerName(1))
}

// Map is the asynchronous form of solo.Map.
func Map[In, Out any](ctx context.Context, input rail.Result[In], onSuccess func(context.Context, In) Out) rail.Result[Out] {
	if r, ok := canceled[In, Out](ctx, input); ok {
		return r
	}
	if v, ok := input.Get(); ok {
		return rail.Success(onSuccess(ctx, v)).WithMeta(input.Meta())
	}
	return rail.FailFrom[In, Out](input).WithContext(rail.FuncName(onSuccess), rail.CallerName(1))
}

// ThenTry is the asynchronous form of solo.ThenTry: a returned error or a
// panic raised by try becomes a captured failure.
func ThenTry[In, Out any](ctx context.Context, input rail.Result[In], try func(context.Context, In) (Out, error)) (res rail.Result[Out]) {
	source, caller := rail.FuncName(try), rail.CallerName(1)

	if r, ok := canceled[In, Out](ctx, input); ok {
		return r
	}
	v, ok := input.Get()
	if !ok {
		return rail.FailFrom[In, Out](input).WithContext(source, caller)
	}

	defer func() {
		if rec := recover(); rec != nil {
			res = rail.Fail[Out](rail.Capture(rail.CapturePanic(rec), source, caller))
		}
	}()

	out, err := try(ctx, v)
	if err != nil {
		return rail.Fail[Out](rail.Capture(err, source, caller))
	}
	return rail.Success(out).WithMeta(input.Meta())
}

// Try executes f under ctx and captures any fault, including cancellation.
func Try[T any](ctx context.Context, f func(context.Context) (T, error)) (res rail.Result[T]) {
	source, caller := rail.FuncName(f), rail.CallerName(1)

	if err := ctx.Err(); err != nil {
		return rail.Fail[T](rail.Capture(err, source, caller))
	}

	defer func() {
		if rec := recover(); rec != nil {
			res = rail.Fail[T](rail.Capture(rail.CapturePanic(rec), source, caller))
		}
	}()

	v, err := f(ctx)
	if err != nil {
		return rail.Fail[T](rail.Capture(err, source, caller))
	}
	return rail.Success(v)
}

// TryUnit is Try for operations with no value on success.
func TryUnit(ctx context.Context, f func(context.Context) error) rail.Result[rail.Unit] {
	return Try(ctx, func(ctx context.Context) (rail.Unit, error) {
		return rail.Unit{}, f(ctx)
	})
}

// FailIf evaluates an asynchronous predicate on a success and fails with the
// given code/message when it holds. A fault raised while evaluating the
// predicate is captured rather than escaping.
func FailIf[T any](ctx context.Context, input rail.Result[T], predicate func(context.Context, T) (bool, error), code, message string) rail.Result[T] {
	return guard(ctx, input, predicate, code, message, true, rail.CallerName(1))
}

// Ensure is the complement of FailIf: it fails when the asynchronous
// predicate does NOT hold.
func Ensure[T any](ctx context.Context, input rail.Result[T], predicate func(context.Context, T) (bool, error), code, message string) rail.Result[T] {
	return guard(ctx, input, predicate, code, message, false, rail.CallerName(1))
}

// Tap runs an asynchronous side effect on a success; a fault in the action
// is captured, a failure passes through untouched.
func Tap[T any](ctx context.Context, input rail.Result[T], action func(context.Context, T) error) (res rail.Result[T]) {
	source, caller := rail.FuncName(action), rail.CallerName(1)

	if r, ok := canceled[T, T](ctx, input); ok {
		return r
	}
	v, ok := input.Get()
	if !ok {
		return input.WithContext("", caller)
	}

	defer func() {
		if rec := recover(); rec != nil {
			res = rail.Fail[T](rail.Capture(rail.CapturePanic(rec), source, caller)).WithMeta(input.Meta())
		}
	}()

	if err := action(ctx, v); err != nil {
		return rail.Fail[T](rail.Capture(err, source, caller)).WithMeta(input.Meta())
	}
	return input
}

// OnSuccess runs handler only on a success; a fault inside the handler is
// converted to a HOOK_FAILURE failure, mirroring solo.OnSuccess.
func OnSuccess[T any](ctx context.Context, input rail.Result[T], handler func(context.Context, T) rail.Result[T]) (res rail.Result[T]) {
	v, ok := input.Get()
	if !ok {
		return input
	}

	defer func() {
		if rec := recover(); rec != nil {
			cause := rail.CapturePanic(rec)
			e := rail.NewCode(rail.CodeHookFailure, cause.Error()).
				WithCause(cause).
				WithContext(rail.FuncName(handler), "")
			res = rail.Fail[T](e)
		}
	}()

	return handler(ctx, v)
}

// OnFailure runs handler only on a failure; like its synchronous form it is
// not guarded.
func OnFailure[T any](ctx context.Context, input rail.Result[T], handler func(context.Context, *rail.Error) rail.Result[T]) rail.Result[T] {
	if input.IsSuccess() {
		return input
	}
	return handler(ctx, input.Err())
}

// OnFinally always runs handler; its return value is the final result. Not
// guarded.
func OnFinally[T any](ctx context.Context, input rail.Result[T], handler func(context.Context, rail.Result[T]) rail.Result[T]) rail.Result[T] {
	return handler(ctx, input)
}

func guard[T any](ctx context.Context, input rail.Result[T], predicate func(context.Context, T) (bool, error), code, message string, failWhen bool, caller string) (res rail.Result[T]) {
	source := rail.FuncName(predicate)

	if r, ok := canceled[T, T](ctx, input); ok {
		return r
	}
	v, ok := input.Get()
	if !ok {
		return input.WithContext("", caller)
	}

	defer func() {
		if rec := recover(); rec != nil {
			res = rail.Fail[T](rail.Capture(rail.CapturePanic(rec), source, caller)).WithMeta(input.Meta())
		}
	}()

	holds, err := predicate(ctx, v)
	if err != nil {
		return rail.Fail[T](rail.Capture(err, source, caller)).WithMeta(input.Meta())
	}
	if holds == failWhen {
		e := rail.NewCode(code, message).WithContext(source, caller)
		return rail.Fail[T](e).WithMeta(input.Meta())
	}
	return input
}

// canceled translates context cancellation into a failed result before a
// step is evaluated. The failure keeps the input's metadata.
func canceled[In, Out any](ctx context.Context, input rail.Result[In]) (rail.Result[Out], bool) {
	err := ctx.Err()
	if err == nil {
		return rail.Result[Out]{}, false
	}
	return rail.Fail[Out](rail.Capture(err, "", rail.CallerName(2))).WithMeta(input.Meta()), true
}
