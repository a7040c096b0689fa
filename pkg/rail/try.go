package rail

// Try executes f and wraps its outcome: a normal return becomes a Success, a
// returned error or a panic becomes a Failure whose code is the fault's
// runtime type name and whose cause retains the original fault. Faults never
// escape.
func Try[T any](f func() (T, error)) (res Result[T]) {
	source, caller := FuncName(f), CallerName(1)
	defer func() {
		if rec := recover(); rec != nil {
			res = Fail[T](Capture(CapturePanic(rec), source, caller))
		}
	}()

	v, err := f()
	if err != nil {
		return Fail[T](Capture(err, source, caller))
	}
	return Success(v)
}

// TryUnit is Try for operations with no value on success.
func TryUnit(f func() error) (res Result[Unit]) {
	source, caller := FuncName(f), CallerName(1)
	defer func() {
		if rec := recover(); rec != nil {
			res = Fail[Unit](Capture(CapturePanic(rec), source, caller))
		}
	}()

	if err := f(); err != nil {
		return Fail[Unit](Capture(err, source, caller))
	}
	return Done()
}
