package solo

import "github.com/ib-77/rail/pkg/rail"

// Tap runs action for its side effect on a success and returns the input
// unchanged, unless the action faults: a returned error or a panic is
// captured into a failure. On a failure the action is skipped.
func Tap[T any](input rail.Result[T], action func(T) error) (res rail.Result[T]) {
	source, caller := rail.FuncName(action), rail.CallerName(1)

	v, ok := input.Get()
	if !ok {
		return input.WithContext("", caller)
	}

	defer func() {
		if rec := recover(); rec != nil {
			res = rail.Fail[T](rail.Capture(rail.CapturePanic(rec), source, caller)).WithMeta(input.Meta())
		}
	}()

	if err := action(v); err != nil {
		return rail.Fail[T](rail.Capture(err, source, caller)).WithMeta(input.Meta())
	}
	return input
}

// TapInto stores the intermediate result into captured without altering
// control flow; a semantic no-op transform.
func TapInto[T any](input rail.Result[T], captured *rail.Result[T]) rail.Result[T] {
	if captured != nil {
		*captured = input
	}
	return input
}
