package expr

// Resolver is implemented by every deferred computation in this module.
// Resolution is the only point at which composed work runs.
type Resolver[T any] interface {
	// Unwrap invokes the wrapped computation and returns its outcome
	Unwrap() (T, error)
}
