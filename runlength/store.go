package runlength

import (
	"errors"
	"fmt"
	"iter"
	"math"
	"slices"

	"github.com/mineichen/imagemask/interval"
)

// Common errors.
var (
	ErrEmptySequence  = errors.New("runlength: empty sequence")
	ErrEmptyInterval  = errors.New("runlength: interval is empty")
	ErrNoGap          = errors.New("runlength: intervals must be separated by a gap")
	ErrOverflow       = errors.New("runlength: length does not fit the storage type")
	ErrLengthMismatch = errors.New("runlength: parallel array lengths do not line up")
)

// Unsigned is the constraint for the narrow length storage types.
type Unsigned interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Store is a run-length encoded interval sequence. I holds interval
// lengths, E holds gap lengths; both are strictly positive. The store
// exclusively owns its arrays.
//
// Entry n covers [offset_n, offset_n+included_n) where offset_0 is the
// initial offset and each later offset advances by the preceding interval
// and gap lengths.
type Store[I, E Unsigned, M any] struct {
	initialOffset uint64
	included      []I
	excluded      []E
	meta          []M
}

// Encode builds a store from an ordered sequence of interval/metadata
// pairs. The intervals must be non-empty, ascending and separated by at
// least one coordinate.
//
// Encoding fails with ErrEmptySequence, ErrEmptyInterval, ErrNoGap or
// ErrOverflow; the returned error names the offending interval. Failures
// signal that an upstream invariant did not hold and should be propagated,
// not retried.
func Encode[I, E Unsigned, M any](seq iter.Seq2[interval.Interval[uint64], M]) (*Store[I, E, M], error) {
	s := &Store[I, E, M]{}
	first := true
	var prevEnd uint64

	for r, m := range seq {
		if r.End() <= r.Start() {
			return nil, fmt.Errorf("encode %v: %w", r, ErrEmptyInterval)
		}
		if first {
			s.initialOffset = r.Start()
			first = false
		} else {
			if r.Start() <= prevEnd {
				return nil, fmt.Errorf("encode %v after end %d: %w", r, prevEnd, ErrNoGap)
			}
			gap, ok := narrow[E](r.Start() - prevEnd)
			if !ok {
				return nil, fmt.Errorf("encode gap %d before %v: %w", r.Start()-prevEnd, r, ErrOverflow)
			}
			s.excluded = append(s.excluded, gap)
		}

		length, ok := narrow[I](r.Len())
		if !ok {
			return nil, fmt.Errorf("encode length %d of %v: %w", r.Len(), r, ErrOverflow)
		}
		s.included = append(s.included, length)
		s.meta = append(s.meta, m)
		prevEnd = r.End()
	}

	if first {
		return nil, ErrEmptySequence
	}
	return s, nil
}

// FromParts builds a store from an already encoded representation, e.g.
// read back from an external serialization. The arrays are copied.
//
// It fails with ErrLengthMismatch unless len(meta) == len(included) and
// len(excluded) == len(included)-1, with ErrEmptyInterval or ErrNoGap on a
// zero length, and with ErrOverflow when the cumulative offsets leave the
// uint64 coordinate space.
func FromParts[I, E Unsigned, M any](initialOffset uint64, included []I, excluded []E, meta []M) (*Store[I, E, M], error) {
	if len(included) == 0 {
		return nil, ErrEmptySequence
	}
	if len(meta) != len(included) || len(excluded) != len(included)-1 {
		return nil, fmt.Errorf("included %d, excluded %d, meta %d: %w",
			len(included), len(excluded), len(meta), ErrLengthMismatch)
	}

	offset := initialOffset
	for i, length := range included {
		if length == 0 {
			return nil, fmt.Errorf("included[%d]: %w", i, ErrEmptyInterval)
		}
		if uint64(length) > math.MaxUint64-offset {
			return nil, fmt.Errorf("included[%d] passes the end of the coordinate space: %w", i, ErrOverflow)
		}
		offset += uint64(length)

		if i >= len(excluded) {
			break
		}
		gap := excluded[i]
		if gap == 0 {
			return nil, fmt.Errorf("excluded[%d]: %w", i, ErrNoGap)
		}
		if uint64(gap) > math.MaxUint64-offset {
			return nil, fmt.Errorf("excluded[%d] passes the end of the coordinate space: %w", i, ErrOverflow)
		}
		offset += uint64(gap)
	}

	return &Store[I, E, M]{
		initialOffset: initialOffset,
		included:      slices.Clone(included),
		excluded:      slices.Clone(excluded),
		meta:          slices.Clone(meta),
	}, nil
}

// InitialOffset returns the start coordinate of the first interval.
func (s *Store[I, E, M]) InitialOffset() uint64 { return s.initialOffset }

// Included returns the interval lengths. The slice is a read-only view
// into the store.
func (s *Store[I, E, M]) Included() []I { return s.included }

// Excluded returns the gap lengths between consecutive intervals, one
// fewer than Included. The slice is a read-only view into the store.
func (s *Store[I, E, M]) Excluded() []E { return s.excluded }

// Meta returns the per-interval metadata. The slice is a read-only view
// into the store.
func (s *Store[I, E, M]) Meta() []M { return s.meta }

// Len returns the number of stored intervals.
func (s *Store[I, E, M]) Len() int { return len(s.included) }

// All reconstructs the interval sequence. Each call starts a fresh pass.
func (s *Store[I, E, M]) All() iter.Seq2[interval.Interval[uint64], M] {
	return func(yield func(interval.Interval[uint64], M) bool) {
		offset := s.initialOffset
		for i, length := range s.included {
			end := offset + uint64(length)
			if !yield(interval.Unchecked(offset, end), s.meta[i]) {
				return
			}
			offset = end
			if i < len(s.excluded) {
				offset += uint64(s.excluded[i])
			}
		}
	}
}

// At returns the metadata of the interval containing pos, or false when
// pos falls into a gap or outside the stored span. Lookup walks the runs
// front to back.
func (s *Store[I, E, M]) At(pos uint64) (M, bool) {
	offset := s.initialOffset
	for i, length := range s.included {
		if pos < offset {
			break
		}
		if pos < offset+uint64(length) {
			return s.meta[i], true
		}
		offset += uint64(length)
		if i < len(s.excluded) {
			offset += uint64(s.excluded[i])
		}
	}
	var zero M
	return zero, false
}

// narrow converts v into the storage type, reporting whether the value
// survives the roundtrip.
func narrow[U Unsigned](v uint64) (U, bool) {
	u := U(v)
	if uint64(u) != v {
		return 0, false
	}
	return u, true
}
