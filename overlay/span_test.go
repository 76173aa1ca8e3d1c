package overlay_test

import (
	"slices"
	"testing"

	"github.com/mineichen/imagemask/interval"
	"github.com/mineichen/imagemask/overlay"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func span(priority uint32, start, end uint32, meta int) overlay.Span[uint32, int] {
	return overlay.Span[uint32, int]{
		Priority: priority,
		Range:    interval.MustNew(start, end),
		Meta:     meta,
	}
}

func TestSpanCompare(t *testing.T) {
	tests := []struct {
		name string
		a    overlay.Span[uint32, int]
		b    overlay.Span[uint32, int]
		want int
	}{
		{
			name: "earlier start sorts first",
			a:    span(0, 1, 5, 0),
			b:    span(9, 2, 3, 0),
			want: -1,
		},
		{
			name: "later start sorts last",
			a:    span(9, 7, 9, 0),
			b:    span(0, 2, 9, 0),
			want: 1,
		},
		{
			name: "same start higher priority sorts first",
			a:    span(3, 4, 8, 0),
			b:    span(1, 4, 6, 0),
			want: -1,
		},
		{
			name: "same start lower priority sorts last",
			a:    span(1, 4, 8, 0),
			b:    span(3, 4, 6, 0),
			want: 1,
		},
		{
			name: "end and meta do not participate",
			a:    span(2, 4, 8, 1),
			b:    span(2, 4, 6, 2),
			want: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.a.Compare(tt.b))
		})
	}
}

func TestSort(t *testing.T) {
	spans := []overlay.Span[uint32, int]{
		span(0, 5, 9, 1),
		span(2, 0, 4, 2),
		span(7, 0, 2, 3),
		span(2, 0, 9, 4),
		span(1, 5, 6, 5),
	}

	overlay.Sort(spans)

	want := []overlay.Span[uint32, int]{
		span(7, 0, 2, 3),
		span(2, 0, 4, 2),
		// Equal sort key keeps input order.
		span(2, 0, 9, 4),
		span(1, 5, 6, 5),
		span(0, 5, 9, 1),
	}
	require.Equal(t, want, spans)
}

func TestPairs(t *testing.T) {
	spans := []overlay.Span[uint32, int]{
		span(3, 0, 4, 7),
		span(0, 6, 9, 8),
	}

	var ranges []interval.Interval[uint32]
	var metas []int
	for r, m := range overlay.Pairs(slices.Values(spans)) {
		ranges = append(ranges, r)
		metas = append(metas, m)
	}

	require.Equal(t, []interval.Interval[uint32]{
		interval.MustNew[uint32](0, 4),
		interval.MustNew[uint32](6, 9),
	}, ranges)
	require.Equal(t, []int{7, 8}, metas)
}

func TestPairsStopsWithConsumer(t *testing.T) {
	spans := []overlay.Span[uint32, int]{
		span(0, 0, 2, 1),
		span(0, 4, 6, 2),
	}

	var metas []int
	for _, m := range overlay.Pairs(slices.Values(spans)) {
		metas = append(metas, m)
		break
	}
	require.Equal(t, []int{1}, metas)
}
