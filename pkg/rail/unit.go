package rail

// Unit is the success payload for operations that conceptually return
// nothing, so Result[Unit] can still distinguish "succeeded with no data"
// from a failure.
type Unit struct{}

// Done is a successful Result[Unit].
func Done() Result[Unit] {
	return Success(Unit{})
}
