package expr

// Thunk is a zero-argument computation evaluated only when Unwrap is called.
// Building or combining thunks never invokes them.
type Thunk[T any] func() (T, error)

// Pure returns a thunk that always succeeds with v.
func Pure[T any](v T) Thunk[T] {
	return func() (T, error) {
		return v, nil
	}
}

// Fail returns a thunk that always fails with err.
func Fail[T any](err error) Thunk[T] {
	return func() (T, error) {
		var zero T
		return zero, err
	}
}

// Defer lifts an infallible producer into a thunk.
func Defer[T any](produce func() T) Thunk[T] {
	return func() (T, error) {
		return produce(), nil
	}
}

// Unwrap invokes the computation. Each call re-invokes the underlying
// function; errors are returned unchanged.
func (t Thunk[T]) Unwrap() (T, error) {
	return t()
}
