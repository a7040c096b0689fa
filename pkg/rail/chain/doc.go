// Package chain provides a fluent wrapper over rail.Result for readable
// multi-step pipelines:
//
//	res := chain.From(5).
//		Map(double).
//		FailIf(tooBig, "BLOCK", "Stop").
//		Result()
//
// Same-type steps are methods; type-changing steps are the package-level
// Then, Map and ThenTry functions.
package chain
