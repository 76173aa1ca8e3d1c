package overlay

import (
	"iter"
	"slices"

	"github.com/mineichen/imagemask/interval"
	"github.com/mineichen/imagemask/ordered"
)

// Flatten resolves overlaps in a stream of prioritized spans, producing a
// non-overlapping stream covering the same union. Where spans overlap the
// higher priority wins; on equal priority the earlier span wins and later
// spans only extend into otherwise uncovered coordinates.
//
// The input must be sorted by Compare; this is a caller contract, checked
// only in invariant-enabled builds. The result is lazy: each production
// step pulls as much input as needed to prove that the oldest buffered
// span can no longer change. It restarts iff the input restarts, and
// dropping it mid-iteration is always safe.
func Flatten[T interval.Integer, M any](seq iter.Seq[Span[T, M]]) iter.Seq[Span[T, M]] {
	return func(yield func(Span[T, M]) bool) {
		next, stop := iter.Pull(ordered.Assert(seq, Span[T, M].Compare))
		defer stop()

		f := flattener[T, M]{pull: next}
		for {
			s, ok := f.next()
			if !ok || !yield(s) {
				return
			}
		}
	}
}

// flattener holds the merge state: remainders is an ordered buffer of
// provisional output spans, mutually non-overlapping and sorted by start.
// maxStart is the start of the most recently pulled input span; by the
// sort contract no future input can start before it, so any remainder
// ending before maxStart is final.
type flattener[T interval.Integer, M any] struct {
	pull       func() (Span[T, M], bool)
	remainders []Span[T, M]
	maxStart   T
}

// next emits the oldest remainder once no pending or future input span can
// still truncate or split it, pulling input until that is proven or the
// input is exhausted.
func (f *flattener[T, M]) next() (Span[T, M], bool) {
	var (
		firstEnd T
		haveEnd  bool
	)
	if len(f.remainders) > 0 {
		front := f.remainders[0]
		if front.Range.End() < f.maxStart {
			return f.popFront(), true
		}
		firstEnd, haveEnd = front.Range.End(), true
	}

	for {
		s, ok := f.pull()
		if !ok {
			break
		}
		f.maxStart = s.Range.Start()
		end := s.Range.End()
		f.insert(s)
		if !haveEnd {
			firstEnd, haveEnd = end, true
		}
		if firstEnd < f.maxStart {
			break
		}
	}

	if len(f.remainders) == 0 {
		var zero Span[T, M]
		return zero, false
	}
	return f.popFront(), true
}

func (f *flattener[T, M]) popFront() Span[T, M] {
	front := f.remainders[0]
	f.remainders = f.remainders[1:]
	return front
}

// insert places s into the remainder buffer, resolving any overlap with
// buffered spans by priority. Scanning runs backward from the highest
// start; the first remainder ending at or before s ends the scan. The
// buffer stays sorted by start and mutually non-overlapping.
func (f *flattener[T, M]) insert(s Span[T, M]) {
	for idx := len(f.remainders) - 1; idx >= 0; idx-- {
		existing := &f.remainders[idx]

		if existing.Range.End() <= s.Range.Start() {
			f.remainders = slices.Insert(f.remainders, idx+1, s)
			return
		}
		if s.Range.End() <= existing.Range.Start() {
			// A remainder whose start was truncated forward can sit
			// entirely past s. It stays untouched; s belongs further
			// down the buffer.
			continue
		}

		if existing.Priority >= s.Priority {
			// The buffered span wins the overlap. Keep whatever part of s
			// reaches beyond it; a fully shadowed s disappears.
			if existing.Range.End() < s.Range.End() {
				s.Range = interval.Unchecked(existing.Range.End(), s.Range.End())
				f.remainders = slices.Insert(f.remainders, idx+1, s)
			}
			return
		}

		// s wins the overlap: carve the buffered span around it.
		hasBefore := existing.Range.Start() < s.Range.Start()
		hasAfter := s.Range.End() < existing.Range.End()
		switch {
		case hasBefore && hasAfter:
			after := *existing
			after.Range = interval.Unchecked(s.Range.End(), existing.Range.End())
			existing.Range = interval.Unchecked(existing.Range.Start(), s.Range.Start())
			f.remainders = slices.Insert(f.remainders, idx+1, s, after)
			return
		case hasBefore:
			existing.Range = interval.Unchecked(existing.Range.Start(), s.Range.Start())
			f.remainders = slices.Insert(f.remainders, idx+1, s)
			return
		case hasAfter:
			// Only the head of the buffered span is covered; s may still
			// overlap earlier remainders, keep scanning.
			existing.Range = interval.Unchecked(s.Range.End(), existing.Range.End())
		default:
			f.remainders = slices.Delete(f.remainders, idx, idx+1)
		}
	}
	f.remainders = slices.Insert(f.remainders, 0, s)
}
