package refmerge

// Merge combines s[:mid] and s[mid:] into a single sorted run in place,
// using O(1) auxiliary storage, via the classic halve-and-rotate merge
// (no trim pass). Same contract as merge.Merge: less is a strict weak
// order, both halves must already be sorted under it, and the result is
// stable.
func Merge[T any](s []T, mid int, less func(a, b T) bool) {
	if mid <= 0 || mid >= len(s) {
		return
	}
	mergeWithoutBuffer(s, 0, mid, len(s), less)
}

// mergeWithoutBuffer merges s[first:middle) and s[middle:last) in place.
func mergeWithoutBuffer[T any](s []T, first, middle, last int, less func(a, b T) bool) {
	len1 := middle - first
	len2 := last - middle
	if len1 == 0 || len2 == 0 {
		return
	}
	if len1+len2 == 2 {
		if less(s[middle], s[first]) {
			s[first], s[middle] = s[middle], s[first]
		}
		return
	}
	if len1 == 1 {
		insertOne(s, first, middle, last, less)
		return
	}
	if len2 == 1 {
		insertOneFromRight(s, first, middle, last, less)
		return
	}

	var firstCut, secondCut, len22 int
	if len1 > len2 {
		firstCut = first + len1/2
		secondCut = lowerBound(s, middle, last, s[firstCut], less)
		len22 = secondCut - middle
	} else {
		len22 = len2 / 2
		secondCut = middle + len22
		firstCut = upperBound(s, first, middle, s[secondCut], less)
	}

	rotate(s, firstCut, middle, secondCut)

	newMiddle := firstCut + len22
	mergeWithoutBuffer(s, first, firstCut, newMiddle, less)
	mergeWithoutBuffer(s, newMiddle, secondCut, last, less)
}

// insertOne rotates the single element s[first] into its sorted position
// within s[first+1:last).
func insertOne[T any](s []T, first, middle, last int, less func(a, b T) bool) {
	pos := lowerBound(s, middle, last, s[first], less)
	rotate(s, first, middle, pos)
}

// insertOneFromRight rotates the single element s[last-1] into its sorted
// position within s[first:last-1).
func insertOneFromRight[T any](s []T, first, middle, last int, less func(a, b T) bool) {
	pos := upperBound(s, first, middle, s[last-1], less)
	rotate(s, pos, middle, last)
}

// lowerBound returns the leftmost index in [lo, hi] with !less(s[idx], v),
// i.e. the first position v could be inserted at without violating order.
func lowerBound[T any](s []T, lo, hi int, v T, less func(a, b T) bool) int {
	for lo < hi {
		mid := lo + (hi-lo)/2
		if less(s[mid], v) {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	return lo
}

// upperBound returns the leftmost index in [lo, hi] with less(v, s[idx]),
// i.e. the last position v could be inserted at without violating order.
func upperBound[T any](s []T, lo, hi int, v T, less func(a, b T) bool) int {
	for lo < hi {
		mid := lo + (hi-lo)/2
		if less(v, s[mid]) {
			hi = mid
		} else {
			lo = mid + 1
		}
	}
	return lo
}

// rotate left-rotates s[lo:hi) so that s[mid:hi) comes before s[lo:mid),
// via the classic three-reversal rotate. This baseline is not claiming
// move-optimality (unlike merge's tuned rotate-by-one primitives): three
// reversals cost more writes than a move-based shift, but it is the
// textbook shape of the algorithm being ported.
func rotate[T any](s []T, lo, mid, hi int) {
	reverse(s, lo, mid)
	reverse(s, mid, hi)
	reverse(s, lo, hi)
}

func reverse[T any](s []T, lo, hi int) {
	for i, j := lo, hi-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}
