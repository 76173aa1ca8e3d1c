// Package imagemask resolves competing labeled regions over a linear
// coordinate space into one authoritative, non-overlapping sequence.
//
// Sub-packages carry the moving parts: interval the coordinate ranges,
// overlay the priority resolution, spanset the unsorted collection,
// runlength the compact storage format. Mask ties the common path
// together.
package imagemask

import (
	"iter"

	"github.com/mineichen/imagemask/interval"
	"github.com/mineichen/imagemask/overlay"
	"github.com/mineichen/imagemask/spanset"
)

// Mask accumulates prioritized region assertions in any order and
// resolves them on demand. Where assertions overlap the higher priority
// wins; on equal priority the earlier assertion wins.
type Mask[T interval.Integer, M any] struct {
	set *spanset.Set[T, M]
}

// New creates an empty mask.
func New[T interval.Integer, M any]() *Mask[T, M] {
	return &Mask[T, M]{set: spanset.New[T, M]()}
}

// Add asserts that r carries meta with the given priority.
func (m *Mask[T, M]) Add(priority uint32, r interval.Interval[T], meta M) {
	m.set.Add(overlay.Span[T, M]{Priority: priority, Range: r, Meta: meta})
}

// Len returns the number of assertions added, before overlap resolution.
func (m *Mask[T, M]) Len() int {
	return m.set.Len()
}

// All yields the resolved regions: non-overlapping, ascending by start,
// covering every asserted coordinate. Each call resolves afresh.
func (m *Mask[T, M]) All() iter.Seq[overlay.Span[T, M]] {
	return overlay.Flatten(m.set.All())
}
