package overlay

import (
	"iter"

	"github.com/mineichen/imagemask/interval"
)

// Merge combines sorted span sequences into one sequence sorted by
// Compare, suitable as Flatten input. Each input must itself be sorted by
// Compare. Spans equal under Compare are yielded in sequence order, so an
// earlier producer keeps the first-wins tie-break during flattening.
//
// The merge is a tournament tree: leaves hold the head of each sequence
// and every internal node remembers the loser of its contest, so
// advancing costs one comparison per tree level. The result is lazy and
// single-use.
func Merge[T interval.Integer, M any](seqs ...iter.Seq[Span[T, M]]) iter.Seq[Span[T, M]] {
	switch len(seqs) {
	case 0:
		return func(func(Span[T, M]) bool) {}
	case 1:
		return seqs[0]
	}

	return func(yield func(Span[T, M]) bool) {
		// Nodes m..2m-1 are leaves; 1..m-1 hold contest losers; node 0
		// holds the overall winner.
		m := len(seqs)
		t := mergeTree[T, M]{nodes: make([]mergeNode[T, M], 2*m)}
		for i, seq := range seqs {
			next, stop := iter.Pull(seq)
			defer stop()
			leaf := &t.nodes[m+i]
			leaf.index = m + i
			leaf.next = next
			leaf.value, leaf.ok = next()
		}

		t.nodes[0] = t.contest(1)
		for t.nodes[0].ok {
			if !yield(t.nodes[0].value) {
				return
			}
			leaf := t.nodes[0].index
			t.nodes[leaf].value, t.nodes[leaf].ok = t.nodes[leaf].next()
			t.replay(leaf)
		}
	}
}

type mergeTree[T interval.Integer, M any] struct {
	nodes []mergeNode[T, M]
}

// mergeNode is a leaf (index is its own position, next pulls the source)
// or an internal node (index, value and ok describe the loser of the
// contest below it; node 0 describes the winner).
type mergeNode[T interval.Integer, M any] struct {
	index int
	value Span[T, M]
	ok    bool
	next  func() (Span[T, M], bool)
}

// beats reports whether a wins the contest against b. Exhausted entrants
// always lose; equal spans go to the lower leaf index, i.e. the earlier
// sequence.
func beats[T interval.Integer, M any](a, b *mergeNode[T, M]) bool {
	switch {
	case !a.ok:
		return false
	case !b.ok:
		return true
	}
	if c := a.value.Compare(b.value); c != 0 {
		return c < 0
	}
	return a.index < b.index
}

// contest plays the subtree at pos, storing each loser on the internal
// node where it lost and returning a copy of the subtree winner.
func (t *mergeTree[T, M]) contest(pos int) mergeNode[T, M] {
	if pos >= len(t.nodes)/2 {
		n := t.nodes[pos]
		n.next = nil
		return n
	}
	left := t.contest(2 * pos)
	right := t.contest(2*pos + 1)
	winner, loser := left, right
	if beats(&right, &left) {
		winner, loser = right, left
	}
	t.nodes[pos] = loser
	return winner
}

// replay re-runs the contests on the path from leaf up to the root after
// the leaf advanced, leaving the new overall winner in node 0.
func (t *mergeTree[T, M]) replay(leaf int) {
	cur := t.nodes[leaf]
	cur.next = nil
	for pos := leaf / 2; pos != 0; pos /= 2 {
		n := &t.nodes[pos]
		if beats(n, &cur) {
			*n, cur = cur, *n
		}
	}
	t.nodes[0] = cur
}
