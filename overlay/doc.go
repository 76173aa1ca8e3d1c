// Package overlay resolves overlapping prioritized spans into a flat,
// non-overlapping sequence.
//
// A Span pairs a half-open interval with a priority and an arbitrary
// metadata value. Where spans overlap, the span with the higher priority
// covers the contested positions; among spans of equal priority the one
// that started first (or, at equal starts, arrived first) wins. Losing
// spans are not dropped outright: any part of a loser that extends past
// the winner is kept and resolved against later spans.
//
// Key features:
//
//   - Streaming resolution: Flatten consumes and produces lazy sequences
//     and buffers only the spans still contested, so memory use is
//     bounded by overlap depth, not input length.
//   - Deterministic tie-breaks: priority first, then start order, then
//     arrival order.
//   - K-way merging: Merge combines independently sorted producers into
//     one sorted stream for Flatten.
//
// Basic usage:
//
//	spans := []overlay.Span[uint32, string]{
//		{Priority: 1, Range: interval.MustNew[uint32](0, 10), Meta: "sky"},
//		{Priority: 0, Range: interval.MustNew[uint32](5, 15), Meta: "sea"},
//	}
//	overlay.Sort(spans)
//	for s := range overlay.Flatten(slices.Values(spans)) {
//		fmt.Println(s.Range, s.Meta)
//	}
//
// Flatten requires its input sorted by Span.Compare: ascending start,
// descending priority within a start. Sort arranges a slice that way;
// Merge preserves it across multiple inputs. When the invariants build
// tag is set, Flatten verifies the ordering as it reads and panics on
// the first violation.
package overlay
