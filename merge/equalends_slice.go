package merge

// firstGreaterOrNoneSlice returns the leftmost index in [lo, hi] with
// less(v, s[idx]) true, or hi+1 if no such index exists. Unlike
// smallestGreaterSlice it does not assume existence.
func firstGreaterOrNoneSlice[T any](s []T, lo, hi int, v T, less func(a, b T) bool) int {
	if hi < lo || !less(v, s[hi]) {
		return hi + 1
	}
	a, b := lo, hi
	for a < b {
		mid := a + (b-a)/2
		if less(v, s[mid]) {
			b = mid
		} else {
			a = mid + 1
		}
	}
	return a
}

// lastLessOrNoneSlice returns the rightmost index in [lo, hi] with
// less(s[idx], v) true, or lo-1 if no such index exists.
func lastLessOrNoneSlice[T any](s []T, lo, hi int, v T, less func(a, b T) bool) int {
	if hi < lo || !less(s[lo], v) {
		return lo - 1
	}
	a, b := lo, hi
	for a < b {
		mid := a + (b-a+1)/2
		if less(s[mid], v) {
			a = mid
		} else {
			b = mid - 1
		}
	}
	return a
}

// equalEndsSlice resolves the trim phase's equal-endpoints trivial case:
// comp_le(*endRight, *startLeft) is known true on entry. If the two
// extremes are strictly ordered (not equivalent), a plain rotate
// suffices — this is the "reversed halves" scenario. If they are
// equivalent, a naive rotate would move right-run elements ahead of
// equivalent left-run elements, so a second local rotation restores
// original relative order among the k_L + k_R equivalent elements at the
// new junction.
func equalEndsSlice[T any](s []T, sl, sr, oe int, less func(a, b T) bool) {
	el := sr - 1
	er := oe - 1

	if less(s[er], s[sl]) {
		rotateSlice(s, sl, sr, oe)
		return
	}

	kL := firstGreaterOrNoneSlice(s, sl+1, el, s[sl], less) - sl
	kR := er - lastLessOrNoneSlice(s, sr, er-1, s[er], less)

	rotateSlice(s, sl, sr, oe)

	junction := sl + (oe - sr)
	rotateSlice(s, junction-kR, junction, junction+kL)
}
