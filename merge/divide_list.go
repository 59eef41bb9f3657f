package merge

import "container/list"

// mergeList is the recursive trim-then-divide driver over a list range,
// the bidirectional counterpart of mergeSlice. sl/sr/er are the first node
// of the left run, the first node of the right run, and the last node of
// the right run; ll/lr are their lengths (no constant-time distance is
// available for container/list, so lengths are threaded explicitly).
func mergeList[T any](l *list.List, sl, sr, er *list.Element, ll, lr int, less func(a, b T) bool, hs hintSet, opts Options) {
	for {
		if ll <= 0 || lr <= 0 {
			return
		}
		el := sr.Prev()
		if lessEqualList(less, valOf[T](el), valOf[T](sr)) {
			return // already merged
		}

		resolved, nsl, nsr, ner, nll, nlr := trimList[T](l, sl, sr, er, ll, lr, less, hs)
		if resolved {
			return
		}
		sl, sr, er, ll, lr = nsl, nsr, ner, nll, nlr

		minLen := ll
		if lr < minLen {
			minLen = lr
		}
		if minLen <= opts.InsertionThreshold {
			insertionMergeList[T](l, sl, sr, ll, lr, less)
			return
		}

		nel := sr.Prev()
		d := displacementList[T](nel, sr, minLen, less)
		leftSuffix := retreatN(sr, d)
		if d > 0 {
			swapRangeList(leftSuffix, sr, d)
		}

		// Quarters: [sl,leftSuffix) len ll-d, [leftSuffix,sr) len d,
		// [sr,sr+d) len d, [sr+d,er] len lr-d. Recurse on the first pair,
		// then loop (tail call) on the second to bound call-stack depth.
		mergeList[T](l, sl, leftSuffix, retreatN(sr, 1), ll-d, d, less, hintSet{}, opts)
		sl, sr, ll, lr = sr, advanceN(sr, d), d, lr-d
		hs = hintSet{}
	}
}

// insertionMergeList merges two small sorted runs by walking the left run
// and splicing any right-run element that belongs
// ahead of the current left position. Unlike the slice variant, which must
// shift elements to make room, container/list's MoveBefore relinks a node
// in O(1), so this runs in O(ll+lr) pointer operations rather than the
// O(shorter*longer) comparison pattern the slice base case uses — the
// iterator-category distinction pays off even in the base case.
func insertionMergeList[T any](l *list.List, sl, sr *list.Element, ll, lr int, less func(a, b T) bool) {
	left, right := sl, sr
	for ll > 0 && lr > 0 {
		if lessEqualList(less, valOf[T](left), valOf[T](right)) {
			left = left.Next()
			ll--
			continue
		}
		next := right.Next()
		l.MoveBefore(right, left)
		right = next
		lr--
	}
}
