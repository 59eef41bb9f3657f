package merge

import "container/list"

// firstGreaterOrNoneList returns the leftmost node in the length-node run
// starting at lo with less(v, value) true, and its offset from lo. found
// is false if no such node exists (the whole run is <= v).
func firstGreaterOrNoneList[T any](lo *list.Element, length int, v T, less func(a, b T) bool) (node *list.Element, found bool, offset int) {
	if length == 0 {
		return nil, false, 0
	}
	hi := advanceN(lo, length-1)
	if !less(v, valOf[T](hi)) {
		return nil, false, 0
	}
	a, b := 0, length-1
	for a < b {
		mid := a + (b-a)/2
		if less(v, valOf[T](advanceN(lo, mid))) {
			b = mid
		} else {
			a = mid + 1
		}
	}
	return advanceN(lo, a), true, a
}

// lastLessOrNoneList returns the rightmost node in the length-node run
// starting at lo with less(value, v) true, and the count of nodes from lo
// through that node inclusive. found is false if no such node exists (the
// whole run is >= v).
func lastLessOrNoneList[T any](lo *list.Element, length int, v T, less func(a, b T) bool) (node *list.Element, found bool, count int) {
	if length == 0 || !less(valOf[T](lo), v) {
		return nil, false, 0
	}
	hi := advanceN(lo, length-1)
	if less(valOf[T](hi), v) {
		return hi, true, length
	}
	a, b := 0, length-1
	for a < b {
		mid := a + (b-a+1)/2
		if less(valOf[T](advanceN(lo, mid)), v) {
			a = mid
		} else {
			b = mid - 1
		}
	}
	return advanceN(lo, a), true, a + 1
}

// equalEndsList is the bidirectional counterpart of equalEndsSlice: the
// equal-endpoints stability repair, driven by node pointers and explicit
// lengths.
func equalEndsList[T any](l *list.List, sl, sr, er *list.Element, ll, lr int, less func(a, b T) bool) {
	if less(valOf[T](er), valOf[T](sl)) {
		rotateList(sl, ll, sr, lr)
		return
	}

	// firstGreaterOrNoneList searches the length-(ll-1) run starting at
	// sl.Next(), so its returned offset is relative to sl.Next(); the true
	// distance from sl (what kL means) is one more than that.
	kL := ll
	if _, found, offset := firstGreaterOrNoneList(sl.Next(), ll-1, valOf[T](sl), less); found {
		kL = offset + 1
	}
	// lastLessOrNoneList returns the count of nodes from sr through the
	// last non-equivalent node inclusive; the equivalent suffix length kR
	// is what remains of the run after that.
	kR := lr
	if _, found, count := lastLessOrNoneList(sr, lr-1, valOf[T](er), less); found {
		kR = lr - count
	}

	rotateList(sl, ll, sr, lr)

	junction := advanceN(sl, lr)
	rotateList(retreatN(junction, kR), kR, junction, kL)
}
