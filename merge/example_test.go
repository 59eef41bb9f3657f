package merge_test

import (
	"container/list"
	"fmt"

	"github.com/katalvlaran/trimerge/merge"
)

// ExampleMerge demonstrates merging two adjacent sorted int runs in place.
func ExampleMerge() {
	s := []int{1, 3, 5, 2, 4, 6}
	merge.Merge(s, 3, func(a, b int) bool { return a < b })
	fmt.Println(s)
	// Output:
	// [1 2 3 4 5 6]
}

// ExampleMerge_reversedHalves shows the degenerate case where the right
// run sorts entirely before the left run.
func ExampleMerge_reversedHalves() {
	s := []int{4, 5, 6, 1, 2, 3}
	merge.Merge(s, 3, func(a, b int) bool { return a < b })
	fmt.Println(s)
	// Output:
	// [1 2 3 4 5 6]
}

// ExampleMergeFunc adapts a three-way comparator, the slices.SortFunc
// convention, onto Merge.
func ExampleMergeFunc() {
	type priceLevel struct {
		price int
		size  int
	}
	levels := []priceLevel{{1, 10}, {3, 5}, {5, 2}, {2, 7}, {4, 1}}
	merge.MergeFunc(levels, 3, func(a, b priceLevel) int { return a.price - b.price })
	for _, l := range levels {
		fmt.Printf("%d@%d ", l.price, l.size)
	}
	fmt.Println()
	// Output:
	// 1@10 2@7 3@5 4@1 5@2
}

// ExampleMergeList merges two adjacent sorted runs held in a
// container/list.List, for callers whose cursors cannot do constant-time
// distance/advance.
func ExampleMergeList() {
	l := list.New()
	for _, v := range []int{1, 3, 5, 2, 4, 6} {
		l.PushBack(v)
	}
	mid := l.Front().Next().Next().Next() // first element of the right run

	merge.MergeList(l, mid, func(a, b int) bool { return a < b })

	for e := l.Front(); e != nil; e = e.Next() {
		fmt.Print(e.Value, " ")
	}
	fmt.Println()
	// Output:
	// 1 2 3 4 5 6
}
