package solo

import "github.com/ib-77/rail/pkg/rail"

// Then chains a function that itself returns a result; the returned result
// (success or failure) becomes the new result directly, which is also how
// nested results are flattened. onSuccess is assumed non-failing; use
// ThenTry for fallible steps.
func Then[In, Out any](input rail.Result[In], onSuccess func(In) rail.Result[Out]) rail.Result[Out] {
	if v, ok := input.Get(); ok {
		return onSuccess(v)
	}
	return propagate[In, Out](input, rail.FuncName(onSuccess), rail.CallerName(1))
}

// Map transforms the successful value with a pure function.
func Map[In, Out any](input rail.Result[In], onSuccess func(In) Out) rail.Result[Out] {
	if v, ok := input.Get(); ok {
		return rail.Success(onSuccess(v)).WithMeta(input.Meta())
	}
	return propagate[In, Out](input, rail.FuncName(onSuccess), rail.CallerName(1))
}

// ThenTry transforms the successful value with a fallible function. A
// returned error or a panic raised by try is captured into a failure whose
// code is the fault's runtime type name.
func ThenTry[In, Out any](input rail.Result[In], try func(In) (Out, error)) (res rail.Result[Out]) {
	source, caller := rail.FuncName(try), rail.CallerName(1)

	v, ok := input.Get()
	if !ok {
		return propagate[In, Out](input, source, caller)
	}

	defer func() {
		if rec := recover(); rec != nil {
			res = rail.Fail[Out](rail.Capture(rail.CapturePanic(rec), source, caller))
		}
	}()

	out, err := try(v)
	if err != nil {
		return rail.Fail[Out](rail.Capture(err, source, caller))
	}
	return rail.Success(out).WithMeta(input.Meta())
}

// Finally collapses a result into a plain value.
func Finally[In, Out any](input rail.Result[In], onSuccess func(In) Out, onFailure func(*rail.Error) Out) Out {
	if v, ok := input.Get(); ok {
		return onSuccess(v)
	}
	return onFailure(input.Err())
}

func propagate[In, Out any](input rail.Result[In], source, caller string) rail.Result[Out] {
	return rail.FailFrom[In, Out](input).WithContext(source, caller)
}
