// Package solo provides the synchronous combinators over rail.Result:
// transformation (Then, Map, ThenTry), guards (FailIf, FailOn, FailIfNil,
// Ensure), side effects (Tap, TapInto) and outcome hooks (OnSuccess,
// OnFailure, OnFinally, Finally).
//
// All combinators short-circuit: once a result is a failure, transforms,
// guards and taps are skipped and the failure flows through unchanged except
// for first-write-wins source/caller enrichment.
//
// For asynchronous steps see package async; for fluent call sites see
// package chain.
package solo
