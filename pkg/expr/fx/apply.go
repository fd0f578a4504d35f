package fx

// Apply wraps a function so it can be slotted into producer pipelines:
// the producer runs once, its result is fed to the function, and the caller
// gets back a constant producer replaying that same result.
type Apply[T any] struct {
	fn func(T)
}

// To builds an Apply around fn.
func To[T any](fn func(T)) Apply[T] {
	return Apply[T]{fn: fn}
}

// Call invokes produce once, applies the wrapped function to the result and
// returns a producer that replays the result without recomputing it.
func (a Apply[T]) Call(produce func() T) func() T {
	result := produce()
	a.fn(result)
	return func() T { return result }
}

// ForEach applies the wrapped function to every element of the produced
// slice and returns a producer of the unchanged slice.
func (a Apply[T]) ForEach(produce func() []T) func() []T {
	results := produce()
	for _, r := range results {
		a.fn(r)
	}
	return func() []T { return results }
}

// Pair and Triple model the tuple shapes accepted by the Unpack variants.
type Pair[A, B any] struct {
	First  A
	Second B
}

type Triple[A, B, C any] struct {
	First  A
	Second B
	Third  C
}

// Unpack2 spreads a Pair-shaped result over a two-argument function.
func Unpack2[A, B any](fn func(A, B)) Apply[Pair[A, B]] {
	return To(func(p Pair[A, B]) { fn(p.First, p.Second) })
}

// Unpack3 spreads a Triple-shaped result over a three-argument function.
func Unpack3[A, B, C any](fn func(A, B, C)) Apply[Triple[A, B, C]] {
	return To(func(t Triple[A, B, C]) { fn(t.First, t.Second, t.Third) })
}
