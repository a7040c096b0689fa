// Package respond projects terminal results into public response shapes:
// ErrorResponse preserves the failure's causal chain as details, and
// Response wraps a result as data-or-error plus metadata. The projection is
// a pure, stateless mapping over the core's public surface.
package respond
