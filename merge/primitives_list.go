package merge

import "container/list"

// valOf type-asserts a list.Element's boxed Value back to T.
func valOf[T any](e *list.Element) T {
	return e.Value.(T)
}

func lessEqualList[T any](less func(a, b T) bool, a, b T) bool {
	return !less(b, a)
}

// advanceN steps e forward n times. Unlike a slice index, this costs O(n):
// container/list has no constant-time arbitrary-offset advance.
func advanceN(e *list.Element, n int) *list.Element {
	for i := 0; i < n; i++ {
		e = e.Next()
	}
	return e
}

// retreatN steps e backward n times.
func retreatN(e *list.Element, n int) *list.Element {
	for i := 0; i < n; i++ {
		e = e.Prev()
	}
	return e
}

// largestLessList returns the rightmost node in the length-node run
// starting at lo (hi is that run's last node) such that less(value, v) is
// true, along with the count of nodes from lo through that node
// inclusive. The caller guarantees such a node exists.
func largestLessList[T any](lo, hi *list.Element, length int, v T, less func(a, b T) bool) (*list.Element, int) {
	if less(valOf[T](hi), v) {
		return hi, length
	}
	a, b := 0, length-1
	for a < b {
		mid := a + (b-a)/2
		if less(valOf[T](advanceN(lo, mid)), v) {
			a = mid + 1
		} else {
			b = mid
		}
	}
	return retreatN(advanceN(lo, a), 1), a
}

// smallestGreaterList returns the leftmost node in the length-node run
// starting at lo such that less(v, value) is true, along with its
// distance from lo. Known to exist.
func smallestGreaterList[T any](lo *list.Element, length int, v T, less func(a, b T) bool) (*list.Element, int) {
	if less(v, valOf[T](lo)) {
		return lo, 0
	}
	a, b := 0, length
	for a < b {
		mid := a + (b-a)/2
		if less(v, valOf[T](advanceN(lo, mid))) {
			b = mid
		} else {
			a = mid + 1
		}
	}
	return advanceN(lo, a), a
}

// displacementList finds the smallest d in [0, length) such that
// lessEqual(value-at(el retreated d), value-at(sr advanced d)) holds, with
// both cursors stepping in lockstep per the design notes for bidirectional
// iterators.
func displacementList[T any](el, sr *list.Element, length int, less func(a, b T) bool) int {
	a, b := 0, length
	for a < b {
		mid := a + (b-a)/2
		leftNode := retreatN(el, mid)
		rightNode := advanceN(sr, mid)
		if lessEqualList(less, valOf[T](leftNode), valOf[T](rightNode)) {
			b = mid
		} else {
			a = mid + 1
		}
	}
	return a
}

// rotateLeftBy1List moves lo to just before hiExclusive (nil meaning the
// true back of the list), shifting the nodes between them back by one.
// Relinking is O(1): unlike the slice variant this needs no element moves.
func rotateLeftBy1List(l *list.List, lo, hiExclusive *list.Element) {
	if hiExclusive == nil {
		l.MoveToBack(lo)
		return
	}
	l.MoveBefore(lo, hiExclusive)
}

// rotateRightBy1List moves hiLast (the last node of the affected range) to
// just before loInclusive, shifting the nodes between them forward by one.
func rotateRightBy1List(l *list.List, loInclusive, hiLast *list.Element) {
	l.MoveBefore(hiLast, loInclusive)
}

// swapRangeList exchanges the n values starting at a with the n values
// starting at b. The two ranges must not overlap.
func swapRangeList(a, b *list.Element, n int) {
	for k := 0; k < n; k++ {
		a.Value, b.Value = b.Value, a.Value
		a = a.Next()
		b = b.Next()
	}
}

// reverseList reverses the values (not the links) of the length-node run
// from lo to hi inclusive.
func reverseList(lo, hi *list.Element, length int) {
	i, j := lo, hi
	for k := 0; k < length/2; k++ {
		i.Value, j.Value = j.Value, i.Value
		i = i.Next()
		j = j.Prev()
	}
}

// rotateList left-rotates the combined loLen+midLen run so the block
// starting at mid (length midLen) comes before the block starting at lo
// (length loLen), via the classic three-reversal rotate expressed as value
// swaps (O(1) auxiliary storage; no relinking needed for value-level
// rotation of unequal-length blocks).
func rotateList(lo *list.Element, loLen int, mid *list.Element, midLen int) {
	hiLast := advanceN(mid, midLen-1)
	reverseList(lo, retreatN(mid, 1), loLen)
	reverseList(mid, hiLast, midLen)
	reverseList(lo, hiLast, loLen+midLen)
}
