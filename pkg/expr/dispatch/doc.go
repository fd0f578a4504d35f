// Package dispatch selects one producer from an ordered list of branches,
// first match wins. Conditions are captured when a branch is built; only the
// selected producer ever runs.
//
// Two resolution policies:
// - Strict: every value must be covered, no match fails with UnexpectedCaseError
// - First/FirstOr/FirstOrElse: no match yields absence, a default value, or
//   a default producer's result
//
// Which permissive function is called decides whether a default was supplied,
// so a zero-valued default is still a default.
package dispatch
