package stream

import (
	"context"
	"sync"

	"github.com/ib-77/rail/pkg/rail"
	"github.com/ib-77/rail/pkg/rail/async"
	"github.com/ib-77/rail/pkg/rail/solo"
)

// Stage is one pipeline step lifted over a channel element.
type Stage[In, Out any] func(ctx context.Context, input rail.Result[In]) rail.Result[Out]

// Pump emits every value as a successful result until the slice is
// exhausted or the context is canceled.
func Pump[T any](ctx context.Context, values []T) <-chan rail.Result[T] {
	return Emit(ctx, values...)
}

// Emit is Pump over variadic values.
func Emit[T any](ctx context.Context, values ...T) <-chan rail.Result[T] {
	in := make(chan rail.Result[T])

	go func() {
		defer close(in)

		for _, v := range values {
			if ctx.Err() != nil {
				return
			}

			select {
			case in <- rail.Success(v):
			case <-ctx.Done():
				return
			}
		}
	}()

	return in
}

// Run executes a same-type stage over the input channel on the given number
// of worker lines.
func Run[T any](ctx context.Context, in <-chan rail.Result[T], stage Stage[T, T], lines int) <-chan rail.Result[T] {
	return Turnout(ctx, in, stage, lines)
}

// Turnout executes a type-changing stage over the input channel on the given
// number of worker lines. Output order is not guaranteed when lines > 1.
func Turnout[In, Out any](ctx context.Context, in <-chan rail.Result[In], stage Stage[In, Out], lines int) <-chan rail.Result[Out] {
	if lines < 1 {
		lines = 1
	}

	out := make(chan rail.Result[Out])
	wg := &sync.WaitGroup{}

	for i := 0; i < lines; i++ {
		wg.Add(1)
		go work(ctx, in, out, stage, wg)
	}

	go func() {
		wg.Wait()
		close(out)
	}()

	return out
}

func work[In, Out any](ctx context.Context, in <-chan rail.Result[In], out chan<- rail.Result[Out],
	stage Stage[In, Out], wg *sync.WaitGroup) {
	defer wg.Done()

	for {
		select {
		case <-ctx.Done():
			return
		case r, ok := <-in:
			if !ok {
				return
			}

			select {
			case out <- stage(ctx, r):
			case <-ctx.Done():
				return
			}
		}
	}
}

// Collect drains the channel into a slice until it closes or the context is
// canceled.
func Collect[T any](ctx context.Context, in <-chan rail.Result[T]) []rail.Result[T] {
	res := make([]rail.Result[T], 0)
	for {
		select {
		case r, ok := <-in:
			if !ok {
				return res
			}
			res = append(res, r)
		case <-ctx.Done():
			return res
		}
	}
}

// Finalize collapses each result into a plain value as it arrives.
func Finalize[In, Out any](ctx context.Context, in <-chan rail.Result[In],
	onSuccess func(In) Out, onFailure func(*rail.Error) Out) <-chan Out {

	out := make(chan Out)

	go func() {
		defer close(out)

		for {
			select {
			case <-ctx.Done():
				return
			case r, ok := <-in:
				if !ok {
					return
				}

				select {
				case out <- solo.Finally(r, onSuccess, onFailure):
				case <-ctx.Done():
					return
				}
			}
		}
	}()

	return out
}

// Then lifts async.Then into a stage.
func Then[In, Out any](onSuccess func(context.Context, In) rail.Result[Out]) Stage[In, Out] {
	return func(ctx context.Context, input rail.Result[In]) rail.Result[Out] {
		return async.Then(ctx, input, onSuccess)
	}
}

// Map lifts async.Map into a stage.
func Map[In, Out any](onSuccess func(context.Context, In) Out) Stage[In, Out] {
	return func(ctx context.Context, input rail.Result[In]) rail.Result[Out] {
		return async.Map(ctx, input, onSuccess)
	}
}

// ThenTry lifts async.ThenTry into a stage.
func ThenTry[In, Out any](try func(context.Context, In) (Out, error)) Stage[In, Out] {
	return func(ctx context.Context, input rail.Result[In]) rail.Result[Out] {
		return async.ThenTry(ctx, input, try)
	}
}

// FailIf lifts async.FailIf into a stage.
func FailIf[T any](predicate func(context.Context, T) (bool, error), code, message string) Stage[T, T] {
	return func(ctx context.Context, input rail.Result[T]) rail.Result[T] {
		return async.FailIf(ctx, input, predicate, code, message)
	}
}

// Ensure lifts async.Ensure into a stage.
func Ensure[T any](predicate func(context.Context, T) (bool, error), code, message string) Stage[T, T] {
	return func(ctx context.Context, input rail.Result[T]) rail.Result[T] {
		return async.Ensure(ctx, input, predicate, code, message)
	}
}

// Tap lifts async.Tap into a stage.
func Tap[T any](action func(context.Context, T) error) Stage[T, T] {
	return func(ctx context.Context, input rail.Result[T]) rail.Result[T] {
		return async.Tap(ctx, input, action)
	}
}
