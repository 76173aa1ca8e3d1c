// Package interval provides a half-open interval [start, end) over an
// integer coordinate domain, guaranteed to contain at least one element.
// The invariant start < end is established on construction; all higher
// layers of the module build on it and never re-validate.
package interval

import (
	"fmt"

	"github.com/mineichen/imagemask/internal/invariants"
)

// Integer is the constraint for interval coordinate domains: totally
// ordered, subtractable integer types.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Interval is a non-empty half-open interval [start, end). The zero value
// is empty and therefore invalid; construct values with New, MustNew or
// Unchecked. Interval has value semantics and is comparable.
type Interval[T Integer] struct {
	start, end T
}

// ZeroLengthError is returned by New when start >= end. It carries the
// offending pair.
type ZeroLengthError[T Integer] struct {
	Start, End T
}

func (e *ZeroLengthError[T]) Error() string {
	return fmt.Sprintf("interval: %d..%d is empty", e.Start, e.End)
}

// New returns the interval [start, end), or a *ZeroLengthError when the
// interval would be empty.
func New[T Integer](start, end T) (Interval[T], error) {
	if start >= end {
		return Interval[T]{}, &ZeroLengthError[T]{Start: start, End: end}
	}
	return Interval[T]{start: start, end: end}, nil
}

// MustNew is like New but panics on an empty interval. It is intended for
// literals and tests.
func MustNew[T Integer](start, end T) Interval[T] {
	r, err := New(start, end)
	if err != nil {
		panic(err)
	}
	return r
}

// Unchecked returns the interval [start, end) without validating it.
// The caller guarantees start < end; the guarantee is checked only in
// invariant-enabled builds and violations go undetected otherwise.
func Unchecked[T Integer](start, end T) Interval[T] {
	if invariants.Enabled && start >= end {
		panic(fmt.Sprintf("interval: %d..%d is empty", start, end))
	}
	return Interval[T]{start: start, end: end}
}

// Start returns the inclusive lower bound.
func (r Interval[T]) Start() T { return r.start }

// End returns the exclusive upper bound.
func (r Interval[T]) End() T { return r.end }

// Len returns the number of elements in the interval.
func (r Interval[T]) Len() T { return r.end - r.start }

// IsEmpty reports whether the interval contains no elements. It is always
// false for intervals built by the constructors and is retained for
// defensive checks on zero values.
func (r Interval[T]) IsEmpty() bool { return r.start == r.end }

// Overlaps reports whether r and other share at least one element.
// Touching endpoints do not overlap.
func (r Interval[T]) Overlaps(other Interval[T]) bool {
	return r.start < other.end && other.start < r.end
}

// Add returns the interval translated up by offset.
func (r Interval[T]) Add(offset T) Interval[T] {
	return Interval[T]{start: r.start + offset, end: r.end + offset}
}

// Sub returns the interval translated down by offset.
func (r Interval[T]) Sub(offset T) Interval[T] {
	return Interval[T]{start: r.start - offset, end: r.end - offset}
}

func (r Interval[T]) String() string {
	return fmt.Sprintf("%d..%d", r.start, r.end)
}
