package overlay

import (
	"cmp"
	"iter"
	"slices"

	"github.com/mineichen/imagemask/interval"
)

// Span is a prioritized, labeled interval: one assertion that the half-open
// range carries Meta. Higher priorities win where spans overlap. Meta is
// copied by value when a span is split during flattening.
type Span[T interval.Integer, M any] struct {
	Priority uint32
	Range    interval.Interval[T]
	Meta     M
}

// Compare orders spans ascending by range start and, for equal starts,
// descending by priority. This is the input order Flatten requires.
func (s Span[T, M]) Compare(other Span[T, M]) int {
	if c := cmp.Compare(s.Range.Start(), other.Range.Start()); c != 0 {
		return c
	}
	return cmp.Compare(other.Priority, s.Priority)
}

// Sort sorts spans in place into the order Flatten requires. The sort is
// stable: spans equal under Compare keep their relative order, which is
// what breaks ties during flattening (the earlier span wins).
func Sort[T interval.Integer, M any](spans []Span[T, M]) {
	slices.SortStableFunc(spans, Span[T, M].Compare)
}

// Pairs drops priorities from a flattened sequence, yielding range/meta
// pairs in the shape the runlength encoder consumes.
func Pairs[T interval.Integer, M any](seq iter.Seq[Span[T, M]]) iter.Seq2[interval.Interval[T], M] {
	return func(yield func(interval.Interval[T], M) bool) {
		for s := range seq {
			if !yield(s.Range, s.Meta) {
				return
			}
		}
	}
}
