// Package ordered provides sequence decorators that validate sort order.
// They exist to surface caller-contract violations close to their source:
// consumers that require sorted input wrap it in Assert and misordered
// producers fail fast instead of yielding silently wrong results.
package ordered

import (
	"fmt"
	"iter"

	"github.com/mineichen/imagemask/internal/invariants"
)

// Checked returns seq with order validation: every element must compare
// greater than or equal to its predecessor under cmp. A violation panics,
// naming the two out-of-order elements. Order violations are contract
// breaches, not recoverable conditions.
func Checked[E any](seq iter.Seq[E], cmp func(a, b E) int) iter.Seq[E] {
	return func(yield func(E) bool) {
		var (
			prev     E
			havePrev bool
		)
		for v := range seq {
			if havePrev && cmp(prev, v) > 0 {
				panic(fmt.Sprintf("ordered: %v yielded after %v", v, prev))
			}
			prev, havePrev = v, true
			if !yield(v) {
				return
			}
		}
	}
}

// Assert returns Checked(seq, cmp) in invariant-enabled builds and seq
// unchanged otherwise. It is the zero-cost form for hot paths whose input
// order is a documented caller contract.
func Assert[E any](seq iter.Seq[E], cmp func(a, b E) int) iter.Seq[E] {
	if !invariants.Enabled {
		return seq
	}
	return Checked(seq, cmp)
}
