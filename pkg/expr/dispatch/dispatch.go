package dispatch

import (
	"errors"
	"fmt"
)

// ErrUnexpectedCase marks strict evaluation that found no matching branch.
var ErrUnexpectedCase = errors.New("unexpected case")

// UnexpectedCaseError carries the inspected subject for diagnostics.
type UnexpectedCaseError struct {
	Subject any
}

func (e *UnexpectedCaseError) Error() string {
	return fmt.Sprintf("no matching case found for value: %v", e.Subject)
}

// Is makes errors.Is report every UnexpectedCaseError as ErrUnexpectedCase.
func (e *UnexpectedCaseError) Is(target error) bool {
	return target == ErrUnexpectedCase
}

// Branch pairs a condition, captured at construction time, with a lazy
// producer for its result.
type Branch[T any] struct {
	cond    bool
	produce func() T
}

// Case builds a branch. The condition is evaluated here, once; the producer
// runs only if this branch is selected.
func Case[T any](cond bool, produce func() T) Branch[T] {
	return Branch[T]{cond: cond, produce: produce}
}

// CaseValue builds a constant branch.
func CaseValue[T any](cond bool, v T) Branch[T] {
	return Branch[T]{cond: cond, produce: func() T { return v }}
}

// Strict returns the result of the first branch whose condition holds.
// With no match it fails with an UnexpectedCaseError describing subject.
// The subject plays no role in matching, only in the diagnostic.
func Strict[T any](subject any, branches ...Branch[T]) (T, error) {
	for _, b := range branches {
		if b.cond {
			return b.produce(), nil
		}
	}
	var zero T
	return zero, &UnexpectedCaseError{Subject: subject}
}

// First returns the result of the first matching branch, reporting absence
// through the second return value.
func First[T any](branches ...Branch[T]) (T, bool) {
	for _, b := range branches {
		if b.cond {
			return b.produce(), true
		}
	}
	var zero T
	return zero, false
}

// FirstOr falls back to def when no branch matches. def counts as supplied
// whatever its value, zero values included.
func FirstOr[T any](def T, branches ...Branch[T]) T {
	if v, ok := First(branches...); ok {
		return v
	}
	return def
}

// FirstOrElse invokes produce, exactly once, when no branch matches.
func FirstOrElse[T any](produce func() T, branches ...Branch[T]) T {
	if v, ok := First(branches...); ok {
		return v
	}
	return produce()
}
