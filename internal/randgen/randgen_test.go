package randgen_test

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/trimerge/internal/randgen"
)

func TestSortedPair_HalvesAreSorted(t *testing.T) {
	t.Parallel()
	s, mid := randgen.SortedPair(37, 53, -100, 100, 12345)
	require.Len(t, s, 90)
	require.Equal(t, 37, mid)
	require.True(t, sort.IntsAreSorted(s[:mid]))
	require.True(t, sort.IntsAreSorted(s[mid:]))
}

func TestSortedPair_Deterministic(t *testing.T) {
	t.Parallel()
	a, _ := randgen.SortedPair(20, 20, 0, 1000, 99)
	b, _ := randgen.SortedPair(20, 20, 0, 1000, 99)
	require.Equal(t, a, b)
}

func TestSortedPair_DifferentSeedsUsuallyDiffer(t *testing.T) {
	t.Parallel()
	a, _ := randgen.SortedPair(50, 50, 0, 1_000_000, 1)
	b, _ := randgen.SortedPair(50, 50, 0, 1_000_000, 2)
	require.NotEqual(t, a, b)
}

func TestSortedPairRatio_SplitAndSpan(t *testing.T) {
	t.Parallel()
	s, mid := randgen.SortedPairRatio(100, 0.3, 0.5, 7)
	require.Len(t, s, 100)
	require.InDelta(t, 30, mid, 1)
	for _, v := range s {
		require.GreaterOrEqual(t, v, 0)
		require.LessOrEqual(t, v, 50)
	}
}
