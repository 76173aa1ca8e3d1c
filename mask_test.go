package imagemask_test

import (
	"slices"
	"testing"

	"github.com/mineichen/imagemask"
	"github.com/mineichen/imagemask/interval"
	"github.com/mineichen/imagemask/overlay"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMaskResolvesOverlaps(t *testing.T) {
	mask := imagemask.New[uint32, string]()
	mask.Add(0, interval.MustNew[uint32](5, 15), "sea")
	mask.Add(1, interval.MustNew[uint32](0, 10), "sky")

	got := slices.Collect(mask.All())

	want := []overlay.Span[uint32, string]{
		{Priority: 1, Range: interval.MustNew[uint32](0, 10), Meta: "sky"},
		{Priority: 0, Range: interval.MustNew[uint32](10, 15), Meta: "sea"},
	}
	require.Equal(t, want, got)
	assert.Equal(t, 2, mask.Len())
}

func TestMaskEqualPriorityFirstAddedWins(t *testing.T) {
	mask := imagemask.New[uint32, string]()
	mask.Add(2, interval.MustNew[uint32](0, 10), "first")
	mask.Add(2, interval.MustNew[uint32](0, 10), "second")

	got := slices.Collect(mask.All())

	want := []overlay.Span[uint32, string]{
		{Priority: 2, Range: interval.MustNew[uint32](0, 10), Meta: "first"},
	}
	require.Equal(t, want, got)
}

func TestMaskEmpty(t *testing.T) {
	mask := imagemask.New[uint32, string]()
	require.Empty(t, slices.Collect(mask.All()))
	require.Zero(t, mask.Len())
}

func TestMaskResolvesAfresh(t *testing.T) {
	mask := imagemask.New[uint32, string]()
	mask.Add(0, interval.MustNew[uint32](0, 20), "base")

	require.Len(t, slices.Collect(mask.All()), 1)

	mask.Add(5, interval.MustNew[uint32](5, 10), "patch")

	got := slices.Collect(mask.All())
	want := []overlay.Span[uint32, string]{
		{Priority: 0, Range: interval.MustNew[uint32](0, 5), Meta: "base"},
		{Priority: 5, Range: interval.MustNew[uint32](5, 10), Meta: "patch"},
		{Priority: 0, Range: interval.MustNew[uint32](10, 20), Meta: "base"},
	}
	require.Equal(t, want, got)
}

func TestMaskManyLayers(t *testing.T) {
	mask := imagemask.New[uint8, int]()
	mask.Add(0, interval.MustNew[uint8](0, 100), 1)
	mask.Add(1, interval.MustNew[uint8](90, 120), 2)
	mask.Add(2, interval.MustNew[uint8](10, 20), 3)
	mask.Add(2, interval.MustNew[uint8](40, 50), 4)

	got := slices.Collect(mask.All())

	want := []overlay.Span[uint8, int]{
		{Priority: 0, Range: interval.MustNew[uint8](0, 10), Meta: 1},
		{Priority: 2, Range: interval.MustNew[uint8](10, 20), Meta: 3},
		{Priority: 0, Range: interval.MustNew[uint8](20, 40), Meta: 1},
		{Priority: 2, Range: interval.MustNew[uint8](40, 50), Meta: 4},
		{Priority: 0, Range: interval.MustNew[uint8](50, 90), Meta: 1},
		{Priority: 1, Range: interval.MustNew[uint8](90, 120), Meta: 2},
	}
	require.Equal(t, want, got)
}
