// Package attempt wraps zero-argument computations for safe composition
// without eager execution. Nothing runs until Unwrap.
//
// Key operations:
// - New/Of/Value/Throw: create an Attempt
// - Map/Then: transform the eventual value (package-level when the type changes)
// - Catch: fix the error kinds eligible for catching, moving to a Catcher
// - Fallback/FallbackFunc/Recover: substitute a value for a caught error
// - Cleanup: guarantee an action on success and failure alike
// - Unwrap: resolve the chain, returning the value or the first uncaught error
//
// Every combinator returns a new value wrapping the previous function, so a
// partially built chain can be forked and resolved independently.
package attempt
