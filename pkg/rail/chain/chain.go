package chain

import (
	"github.com/ib-77/rail/pkg/rail"
	"github.com/ib-77/rail/pkg/rail/solo"
)

// Chain wraps a rail.Result to enable fluent chaining. Methods cover
// same-type steps; the package-level Then/Map/ThenTry free functions cover
// type-changing steps (methods cannot introduce new type parameters).
type Chain[T any] struct {
	result rail.Result[T]
}

// Start creates a new chain from a rail.Result.
func Start[T any](result rail.Result[T]) *Chain[T] {
	return &Chain[T]{result: result}
}

// From creates a new chain from a successful value.
func From[T any](value T) *Chain[T] {
	return &Chain[T]{result: rail.Success(value)}
}

// Result returns the underlying rail.Result.
func (c *Chain[T]) Result() rail.Result[T] {
	return c.result
}

// Then chains a function that returns rail.Result[U].
func Then[T, U any](c *Chain[T], onSuccess func(T) rail.Result[U]) *Chain[U] {
	return &Chain[U]{result: solo.Then(c.result, onSuccess)}
}

// Map chains a pure type-changing transformation.
func Map[T, U any](c *Chain[T], onSuccess func(T) U) *Chain[U] {
	return &Chain[U]{result: solo.Map(c.result, onSuccess)}
}

// ThenTry chains a fallible function that returns (U, error).
func ThenTry[T, U any](c *Chain[T], try func(T) (U, error)) *Chain[U] {
	return &Chain[U]{result: solo.ThenTry(c.result, try)}
}

func (c *Chain[T]) Then(onSuccess func(T) rail.Result[T]) *Chain[T] {
	return &Chain[T]{result: solo.Then(c.result, onSuccess)}
}

func (c *Chain[T]) Map(onSuccess func(T) T) *Chain[T] {
	return &Chain[T]{result: solo.Map(c.result, onSuccess)}
}

func (c *Chain[T]) ThenTry(try func(T) (T, error)) *Chain[T] {
	return &Chain[T]{result: solo.ThenTry(c.result, try)}
}

func (c *Chain[T]) Tap(action func(T) error) *Chain[T] {
	return &Chain[T]{result: solo.Tap(c.result, action)}
}

// TapInto captures the intermediate result into a named slot mid-chain
// without altering control flow.
func (c *Chain[T]) TapInto(captured *rail.Result[T]) *Chain[T] {
	return &Chain[T]{result: solo.TapInto(c.result, captured)}
}

func (c *Chain[T]) FailIf(predicate func(T) bool, code, message string) *Chain[T] {
	return &Chain[T]{result: solo.FailIf(c.result, predicate, code, message)}
}

func (c *Chain[T]) FailOn(condition bool, code, message string) *Chain[T] {
	return &Chain[T]{result: solo.FailOn(c.result, condition, code, message)}
}

func (c *Chain[T]) Ensure(predicate func(T) bool, code, message string) *Chain[T] {
	return &Chain[T]{result: solo.Ensure(c.result, predicate, code, message)}
}

func (c *Chain[T]) OnSuccess(handler func(T) rail.Result[T]) *Chain[T] {
	return &Chain[T]{result: solo.OnSuccess(c.result, handler)}
}

func (c *Chain[T]) OnFailure(handler func(*rail.Error) rail.Result[T]) *Chain[T] {
	return &Chain[T]{result: solo.OnFailure(c.result, handler)}
}

func (c *Chain[T]) OnFinally(handler func(rail.Result[T]) rail.Result[T]) *Chain[T] {
	return &Chain[T]{result: solo.OnFinally(c.result, handler)}
}

func (c *Chain[T]) OnFinallyDo(action func(rail.Result[T])) *Chain[T] {
	return &Chain[T]{result: solo.OnFinallyDo(c.result, action)}
}

// Finally collapses the chain into a final value using solo.Finally.
func Finally[T, U any](c *Chain[T], onSuccess func(T) U, onFailure func(*rail.Error) U) U {
	return solo.Finally(c.result, onSuccess, onFailure)
}
