// Package rail defines the core railway value types: Result, Error, Unit,
// MetaInfo and the fault-capture helpers they share. Combinators over these
// types live in the solo (synchronous), async (context-aware), chain
// (fluent) and stream (channel-lifted) subpackages.
package rail
