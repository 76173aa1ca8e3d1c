// Package runlength stores a sorted, gap-separated interval sequence with
// per-interval metadata as three parallel run-length arrays.
//
// The representation is an initial offset plus alternating lengths: how
// many coordinates the first interval covers, how many the following gap
// skips, how many the next interval covers, and so on. Lengths live in
// caller-chosen narrow unsigned types, so a sequence whose intervals and
// gaps are all short packs into single bytes regardless of how far into
// the coordinate space it starts.
//
// Key features:
//
//   - Narrowing-checked encoding: every length and gap is range-checked
//     into the chosen storage type and encoding fails rather than
//     truncates.
//   - Strict separation: consecutive intervals must leave a gap of at
//     least one coordinate. Adjacent or overlapping intervals are an
//     encoding error, keeping every stored gap informative.
//   - Restartable decoding: All reconstructs the interval sequence by
//     cumulative offsets, yielding a fresh pass per call.
//   - Stable boundary: InitialOffset, Included, Excluded and Meta expose
//     the exact tuple an external byte-level serialization needs.
//
// Basic usage:
//
//	store, err := runlength.Encode[uint8, uint8](pairs)
//	if err != nil {
//		return err
//	}
//	for r, meta := range store.All() {
//		fmt.Println(r, meta)
//	}
//
// pairs is any iter.Seq2 of non-empty uint64 intervals with their
// metadata, ascending and strictly separated.
package runlength
