package merge_test

import (
	"container/list"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/trimerge/merge"
)

func buildList(values ...int) *list.List {
	l := list.New()
	for _, v := range values {
		l.PushBack(v)
	}
	return l
}

func listValues(l *list.List) []int {
	out := make([]int, 0, l.Len())
	for e := l.Front(); e != nil; e = e.Next() {
		out = append(out, e.Value.(int))
	}
	return out
}

// TestMergeList_ConcreteScenarios mirrors TestMerge_ConcreteScenarios but
// over the bidirectional (container/list) entry point.
func TestMergeList_ConcreteScenarios(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name  string
		left  []int
		right []int
		want  []int
	}{
		{"interleaved", []int{1, 3, 5}, []int{2, 4, 6}, []int{1, 2, 3, 4, 5, 6}},
		{"already sorted", []int{1, 2, 3}, []int{4, 5, 6}, []int{1, 2, 3, 4, 5, 6}},
		{"reversed halves", []int{4, 5, 6}, []int{1, 2, 3}, []int{1, 2, 3, 4, 5, 6}},
		{"all equal", []int{2, 2, 2}, []int{2, 2, 2}, []int{2, 2, 2, 2, 2, 2}},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			l := buildList(append(append([]int(nil), tc.left...), tc.right...)...)
			mid := advance(l.Front(), len(tc.left))
			merge.MergeList(l, mid, lessInt)
			require.Equal(t, tc.want, listValues(l))
		})
	}
}

func advance(e *list.Element, n int) *list.Element {
	for i := 0; i < n && e != nil; i++ {
		e = e.Next()
	}
	return e
}

// TestMergeList_NilAndEmpty covers the no-op contract: mid == nil or
// mid == l.Front().
func TestMergeList_NilAndEmpty(t *testing.T) {
	t.Parallel()
	l := buildList(1, 2, 3)
	merge.MergeList(l, nil, lessInt)
	require.Equal(t, []int{1, 2, 3}, listValues(l))

	merge.MergeList(l, l.Front(), lessInt)
	require.Equal(t, []int{1, 2, 3}, listValues(l))
}

// TestMergeList_Stability mirrors TestMerge_Stability over a list.
func TestMergeList_Stability(t *testing.T) {
	t.Parallel()
	left := []int{1, 3, 3, 5}
	right := []int{3, 3, 4}

	type pair struct {
		value int
		idx   int
	}
	l := list.New()
	idx := 0
	for _, v := range left {
		l.PushBack(pair{value: v, idx: idx})
		idx++
	}
	firstRight := idx
	for _, v := range right {
		l.PushBack(pair{value: v, idx: idx})
		idx++
	}
	midElem := advance(l.Front(), len(left))
	less := func(a, b pair) bool { return a.value < b.value }
	merge.MergeList(l, midElem, less)

	gotValues := make([]int, 0, l.Len())
	gotIdx := make([]int, 0, l.Len())
	for e := l.Front(); e != nil; e = e.Next() {
		p := e.Value.(pair)
		gotValues = append(gotValues, p.value)
		gotIdx = append(gotIdx, p.idx)
	}
	require.Equal(t, []int{1, 3, 3, 3, 3, 4, 5}, gotValues)
	require.Equal(t, []int{0, 1, 2, firstRight, firstRight + 1, firstRight + 2, 3}, gotIdx)
}

// TestMergeList_LargeReversedHalves exercises the reversed-halves path at
// a larger size over the bidirectional specialisation. With equal-length
// halves trim reaches the equal-endpoints resolver, which does a plain
// rotate.
func TestMergeList_LargeReversedHalves(t *testing.T) {
	t.Parallel()
	const n = 500
	values := make([]int, n)
	for i := range values {
		values[i] = (i + n/2) % n
	}
	l := buildList(values...)
	mid := advance(l.Front(), n/2)
	merge.MergeList(l, mid, lessInt)

	want := make([]int, n)
	for i := range want {
		want[i] = i
	}
	require.Equal(t, want, listValues(l))
}
