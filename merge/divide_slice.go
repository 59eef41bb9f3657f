package merge

// mergeSlice is the recursive trim-then-divide driver over a slice range.
// sl, sr, oe delimit [sl,sr) (left run) and [sr,oe) (right run).
func mergeSlice[T any](s []T, sl, sr, oe int, less func(a, b T) bool, hs hintSet, opts Options) {
	for {
		if sl >= sr || sr >= oe {
			return
		}
		if lessEqualSlice(less, s[sr-1], s[sr]) {
			return // already merged
		}

		resolved, nsl, nsr, noe := trimSlice(s, sl, sr, oe, less, hs)
		if resolved {
			return
		}
		sl, sr, oe = nsl, nsr, noe

		ll := sr - sl
		lr := oe - sr
		minLen := ll
		if lr < minLen {
			minLen = lr
		}
		if minLen <= opts.InsertionThreshold {
			insertionMergeSlice(s, sl, sr, oe, less)
			return
		}

		d := displacementSlice(s, sr-1, sr, minLen, less)
		if d > 0 {
			swapRangeSlice(s, sr-d, sr, d)
		}

		// Quarters: [sl,sr-d), [sr-d,sr), [sr,sr+d), [sr+d,oe). Recurse on
		// the first pair, then loop (tail call) on the second to bound
		// call-stack depth at O(log N).
		mergeSlice(s, sl, sr-d, sr, less, hintSet{}, opts)
		sl, sr, oe = sr, sr+d, oe
		hs = hintSet{}
	}
}

// insertionMergeSlice merges two small sorted runs by repeatedly rotating
// the shorter run's frontier element into its sorted position in the
// other run. Bounded to O(shorter*longer) work.
func insertionMergeSlice[T any](s []T, sl, sr, oe int, less func(a, b T) bool) {
	if sr-sl <= oe-sr {
		for sl < sr {
			if lessEqualSlice(less, s[sr-1], s[sr]) {
				return
			}
			idx := largestLessSlice(s, sr, oe-1, s[sr-1], less)
			rotateLeftBy1Slice(s, sr-1, idx+1)
			sr--
		}
		return
	}
	for sr < oe {
		if lessEqualSlice(less, s[sr-1], s[sr]) {
			return
		}
		idx := smallestGreaterSlice(s, sl, sr-1, s[sr], less)
		rotateRightBy1Slice(s, idx, sr+1)
		sr++
	}
}
