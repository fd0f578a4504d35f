package attempt

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/mv-44/exprflow/pkg/expr"
)

// Catcher augments an Attempt with a fixed, ordered set of error kinds that
// Fallback may substitute for. Each combinator wraps the previous function,
// so on Unwrap the innermost function runs first.
type Catcher[T any] struct {
	id        uuid.UUID
	createdAt time.Time
	fn        expr.Thunk[T]
	kinds     []error
}

// Fallback substitutes v when the computation fails with an error in the
// tracked kind set. Errors outside the set propagate unchanged.
func (c Catcher[T]) Fallback(v T) Catcher[T] {
	fn := c.fn
	kinds := c.kinds
	return c.derive(func() (T, error) {
		res, err := fn()
		if err != nil && expr.Matches(err, kinds) {
			return v, nil
		}
		return res, err
	})
}

// FallbackFunc is the lazy variant of Fallback: produce runs only when a
// tracked error actually occurs.
func (c Catcher[T]) FallbackFunc(produce func() T) Catcher[T] {
	fn := c.fn
	kinds := c.kinds
	return c.derive(func() (T, error) {
		res, err := fn()
		if err != nil && expr.Matches(err, kinds) {
			return produce(), nil
		}
		return res, err
	})
}

// Recover handles one specific kind, independent of the tracked set. The
// handler's value becomes the result; other errors propagate unchanged.
func (c Catcher[T]) Recover(kind error, handler func(error) T) Catcher[T] {
	fn := c.fn
	return c.derive(func() (T, error) {
		res, err := fn()
		if err != nil && !expr.IsNil(kind) && errors.Is(err, kind) {
			return handler(err), nil
		}
		return res, err
	})
}

// Cleanup runs action after the computation on success and failure alike,
// before the outcome reaches the caller. An error from action supersedes
// the pending outcome.
func (c Catcher[T]) Cleanup(action func() error) Catcher[T] {
	fn := c.fn
	return c.derive(func() (T, error) {
		res, err := fn()
		if cleanupErr := action(); cleanupErr != nil {
			var zero T
			return zero, cleanupErr
		}
		return res, err
	})
}

// Unwrap invokes the composed computation once per call. Errors not caught
// by a matching combinator propagate unchanged.
func (c Catcher[T]) Unwrap() (T, error) {
	return c.fn()
}

func (c Catcher[T]) Id() uuid.UUID {
	return c.id
}

func (c Catcher[T]) CreatedAt() time.Time {
	return c.createdAt
}

// Kinds returns a copy of the tracked kind set.
func (c Catcher[T]) Kinds() []error {
	ks := make([]error, len(c.kinds))
	copy(ks, c.kinds)
	return ks
}

// derived catchers keep the origin id, timestamp and kind set
func (c Catcher[T]) derive(fn expr.Thunk[T]) Catcher[T] {
	return Catcher[T]{id: c.id, createdAt: c.createdAt, fn: fn, kinds: c.kinds}
}
