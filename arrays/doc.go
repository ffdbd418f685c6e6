// Package arrays provides the slice primitives the gridmat engine is built
// on: bounded copy, range fill, in-place reversal, value repetition,
// arithmetic sequence generation and bulk pseudo-random generation.
//
// The package is deliberately matrix-agnostic. Higher layers (matrix,
// parallel) call these primitives for all bulk data movement instead of
// re-implementing the loops inline, so the movement semantics live in
// exactly one place.
//
// All functions are deterministic except Random, none retain references to
// their arguments, and none panic on user-triggered conditions: invalid
// ranges and lengths surface as the package sentinel errors, matched with
// errors.Is.
package arrays
