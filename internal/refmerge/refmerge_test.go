package refmerge_test

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/trimerge/internal/randgen"
	"github.com/katalvlaran/trimerge/internal/refmerge"
)

func less(a, b int) bool { return a < b }

func TestMerge_ConcreteScenarios(t *testing.T) {
	t.Parallel()
	cases := []struct {
		name string
		s    []int
		mid  int
		want []int
	}{
		{"interleaved", []int{1, 3, 5, 2, 4, 6}, 3, []int{1, 2, 3, 4, 5, 6}},
		{"already sorted", []int{1, 2, 3, 4, 5, 6}, 3, []int{1, 2, 3, 4, 5, 6}},
		{"reversed halves", []int{4, 5, 6, 1, 2, 3}, 3, []int{1, 2, 3, 4, 5, 6}},
		{"single left", []int{3}, 1, []int{3}},
		{"single right", []int{1, 2, 3}, 0, []int{1, 2, 3}},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			s := append([]int(nil), tc.s...)
			refmerge.Merge(s, tc.mid, less)
			require.Equal(t, tc.want, s)
		})
	}
}

func TestMerge_SortedAndMultisetPreserving(t *testing.T) {
	t.Parallel()
	for n := 1; n <= 200; n += 7 {
		s, mid := randgen.SortedPair(n/2, n-n/2, 0, n/3+1, uint64(n))
		before := append([]int(nil), s...)
		refmerge.Merge(s, mid, less)
		require.True(t, sort.IntsAreSorted(s), "n=%d", n)

		sort.Ints(before)
		got := append([]int(nil), s...)
		sort.Ints(got)
		require.Equal(t, before, got, "n=%d", n)
	}
}
