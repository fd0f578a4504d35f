package fx

// Tap returns ret after its side-effect arguments have been evaluated.
// Go evaluates call operands left to right, so ret is computed first and
// then each effect in order, all before Tap itself runs. The ordering
// guarantee is the language's, not this function's.
func Tap[T any](ret T, sideEffects ...any) T {
	return ret
}

// Do sequences side effects without producing a value.
func Do(sideEffects ...any) {}
