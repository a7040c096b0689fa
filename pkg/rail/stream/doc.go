// Package stream lifts the railway combinators over channels for concurrent
// fan-out/fan-in pipelines.
//
// Common usage:
//   - Pump/Emit: feed values into a pipeline as successful results
//   - Run/Turnout: execute a stage over a channel with a fixed number of lines
//   - Then/Map/ThenTry/FailIf/Ensure/Tap: lift async combinators into stages
//   - Collect/Finalize: drain results, or collapse them to plain values
//
// The stages themselves perform no coordination; every result is an
// independently owned immutable value, so lines only share the channels.
package stream
