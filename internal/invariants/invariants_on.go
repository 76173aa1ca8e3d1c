//go:build invariants || race

// Package invariants gates expensive correctness checks behind a build tag.
// Checks run in builds tagged "invariants" and under the race detector, and
// compile away everywhere else.
package invariants

// Enabled is true when invariant checks are compiled in.
const Enabled = true
