package merge

import "container/list"

// Merge combines the two adjacent sorted runs s[:mid] and s[mid:] into a
// single sorted run over s, in place, using O(1) auxiliary storage.
//
// Precondition: s[:mid] and s[mid:] are each sorted under less (strict
// weak order: less(a,b) true iff a strictly precedes b).
//
// Postcondition: s is sorted under less; the multiset of elements is
// unchanged; the merge is stable — for equivalent elements, an element
// originally in s[:mid] precedes one originally in s[mid:].
//
// Complexity: O(N log N) comparisons and element moves, O(log N)
// call-stack depth, O(1) heap allocation.
//
// A comparator that panics propagates; s is left in some permutation of
// its original elements (no element is duplicated or lost) but is not
// guaranteed sorted.
func Merge[T any](s []T, mid int, less func(a, b T) bool, opts ...Option) {
	if mid <= 0 || mid >= len(s) {
		return
	}
	mergeSlice(s, 0, mid, len(s), less, hintSet{}, DefaultOptions(opts...))
}

// MergeFunc adapts a three-way comparator (the slices.SortFunc convention:
// cmp(a,b) < 0 means a precedes b) onto Merge.
func MergeFunc[T any](s []T, mid int, cmp func(a, b T) int, opts ...Option) {
	Merge(s, mid, func(a, b T) bool { return cmp(a, b) < 0 }, opts...)
}

// MergeList is the bidirectional-iterator counterpart of Merge: it merges
// the two adjacent sorted runs of l, split at mid, in place. mid is the
// first element of the right run; mid == nil or mid == l.Front() means the
// right (respectively left) run is empty, and MergeList is a no-op.
//
// Use MergeList when the caller's cursors cannot do constant-time
// distance/advance — e.g. a container/list.List. Same pre/postcondition
// and stability contract as Merge.
func MergeList[T any](l *list.List, mid *list.Element, less func(a, b T) bool, opts ...Option) {
	if l == nil || mid == nil || mid == l.Front() {
		return
	}
	sl := l.Front()
	ll := 0
	for e := sl; e != mid; e = e.Next() {
		ll++
	}
	lr := l.Len() - ll
	if ll == 0 || lr == 0 {
		return
	}
	er := l.Back()
	mergeList[T](l, sl, mid, er, ll, lr, less, hintSet{}, DefaultOptions(opts...))
}
