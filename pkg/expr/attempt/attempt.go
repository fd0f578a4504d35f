package attempt

import (
	"time"

	"github.com/google/uuid"
	"github.com/mv-44/exprflow/pkg/expr"
)

// Attempt wraps a single zero-argument computation behind a stable identity.
// Combinators never invoke the computation; they wrap it.
type Attempt[T any] struct {
	id        uuid.UUID
	createdAt time.Time
	fn        expr.Thunk[T]
}

// New wraps a fallible computation.
func New[T any](fn func() (T, error)) Attempt[T] {
	return Attempt[T]{
		id:        uuid.New(),
		createdAt: time.Now().UTC(),
		fn:        fn,
	}
}

// Of wraps an infallible producer.
func Of[T any](produce func() T) Attempt[T] {
	return New(expr.Defer(produce))
}

// Value wraps an already-computed value.
func Value[T any](v T) Attempt[T] {
	return New(expr.Pure(v))
}

// Throw wraps a computation that always fails with err.
func Throw[T any](err error) Attempt[T] {
	return New(expr.Fail[T](err))
}

// Unwrap invokes the wrapped computation once per call. Errors propagate
// unchanged; repeated calls re-invoke the computation.
func (a Attempt[T]) Unwrap() (T, error) {
	return a.fn()
}

func (a Attempt[T]) Id() uuid.UUID {
	return a.id
}

func (a Attempt[T]) CreatedAt() time.Time {
	return a.createdAt
}

// Map transforms the eventual value. The transform never runs when the
// wrapped computation fails.
func (a Attempt[T]) Map(f func(T) T) Attempt[T] {
	fn := a.fn
	return a.derive(func() (T, error) {
		v, err := fn()
		if err != nil {
			var zero T
			return zero, err
		}
		return f(v), nil
	})
}

// Catch fixes the set of error kinds eligible for catching by the catcher
// combinators. Kinds are matched with errors.Is at resolution time.
func (a Attempt[T]) Catch(kinds ...error) Catcher[T] {
	ks := make([]error, len(kinds))
	copy(ks, kinds)

	return Catcher[T]{
		id:        a.id,
		createdAt: a.createdAt,
		fn:        a.fn,
		kinds:     ks,
	}
}

// derived attempts keep the origin id and timestamp
func (a Attempt[T]) derive(fn expr.Thunk[T]) Attempt[T] {
	return Attempt[T]{id: a.id, createdAt: a.createdAt, fn: fn}
}

// Map transforms the eventual value to a new type.
func Map[T, U any](a Attempt[T], f func(T) U) Attempt[U] {
	fn := a.fn
	return Attempt[U]{
		id:        a.id,
		createdAt: a.createdAt,
		fn: func() (U, error) {
			v, err := fn()
			if err != nil {
				var zero U
				return zero, err
			}
			return f(v), nil
		},
	}
}

// Then composes a fallible transform, like repo calls returning (U, error).
func Then[T, U any](a Attempt[T], f func(T) (U, error)) Attempt[U] {
	fn := a.fn
	return Attempt[U]{
		id:        a.id,
		createdAt: a.createdAt,
		fn: func() (U, error) {
			v, err := fn()
			if err != nil {
				var zero U
				return zero, err
			}
			return f(v)
		},
	}
}
