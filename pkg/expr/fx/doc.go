// Package fx holds the side-effect collaborators: Tap/Do for sequencing
// effects inside a single expression, and Apply for feeding a producer's
// result to a function while passing the result through unchanged.
package fx
