// Package async provides the context-aware forms of the solo combinators.
// They behave identically to their synchronous counterparts with respect to
// short-circuiting and error propagation; the only differences are that a
// step receives a context and may suspend, and that cancellation observed at
// a combinator boundary is captured as an ordinary fault instead of
// escaping.
package async
