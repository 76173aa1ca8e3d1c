// Package spanset collects prioritized spans in arbitrary order and
// drains them sorted, ready for flattening. It decouples producers from
// the sort contract of the overlay package: producers add spans as they
// discover them, the set hands them on in the required order.
package spanset

import (
	"iter"

	"github.com/google/btree"

	"github.com/mineichen/imagemask/interval"
	"github.com/mineichen/imagemask/overlay"
)

// Set is a multiset of spans ordered by overlay.Span.Compare. Spans with
// equal sort keys are all kept and drain in insertion order, so the first
// added span wins ties during flattening. The zero value is not usable,
// construct with New. A Set is not safe for concurrent use.
type Set[T interval.Integer, M any] struct {
	tree *btree.BTreeG[entry[T, M]]
	seq  uint64
}

// entry extends the span sort key with the arrival sequence, which keeps
// equal spans distinct inside the tree.
type entry[T interval.Integer, M any] struct {
	span overlay.Span[T, M]
	seq  uint64
}

func less[T interval.Integer, M any](a, b entry[T, M]) bool {
	if c := a.span.Compare(b.span); c != 0 {
		return c < 0
	}
	return a.seq < b.seq
}

// New returns an empty set.
func New[T interval.Integer, M any]() *Set[T, M] {
	return &Set[T, M]{
		tree: btree.NewG(2, less[T, M]),
	}
}

// Add inserts a span. Duplicate spans are kept.
func (s *Set[T, M]) Add(span overlay.Span[T, M]) {
	s.tree.ReplaceOrInsert(entry[T, M]{span: span, seq: s.seq})
	s.seq++
}

// Len returns the number of spans in the set.
func (s *Set[T, M]) Len() int {
	return s.tree.Len()
}

// All yields the spans sorted by overlay.Span.Compare, equal keys in
// insertion order. Each call starts a fresh pass. Adding spans while
// iterating is undefined.
func (s *Set[T, M]) All() iter.Seq[overlay.Span[T, M]] {
	return func(yield func(overlay.Span[T, M]) bool) {
		s.tree.Ascend(func(e entry[T, M]) bool {
			return yield(e.span)
		})
	}
}
