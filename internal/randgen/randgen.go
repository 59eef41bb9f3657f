package randgen

import (
	"math/rand/v2"
	"sort"

	"github.com/leanovate/gopter"
)

// SortedPair builds two independently-sorted adjacent runs of lengths n1
// and n2 by sampling n1+n2 values uniformly from [lo, hi], sorting each
// half, and concatenating them. It returns the combined slice and the
// index of the boundary (mid == n1), ready to pass straight to
// merge.Merge. Seeded via math/rand/v2's PCG source so repeated calls with
// the same seed reproduce the same pair — required for deterministic
// benchmark runs and reproducible property tests.
func SortedPair(n1, n2, lo, hi int, seed uint64) ([]int, int) {
	if n1 < 0 {
		n1 = 0
	}
	if n2 < 0 {
		n2 = 0
	}
	span := hi - lo + 1
	if span < 1 {
		span = 1
	}
	r := rand.New(rand.NewPCG(seed, seed^0x9E3779B97F4A7C15))

	left := make([]int, n1)
	for i := range left {
		left[i] = lo + r.IntN(span)
	}
	right := make([]int, n2)
	for i := range right {
		right[i] = lo + r.IntN(span)
	}
	sort.Ints(left)
	sort.Ints(right)

	out := make([]int, 0, n1+n2)
	out = append(out, left...)
	out = append(out, right...)
	return out, n1
}

// SortedPairRatio mirrors the original benchmark's
// const_to_scale_vec_size_by knob: total is the combined run length, ratio
// in (0,1) controls the left/right split, and valueSpan scales the value
// range relative to total — a wider span yields fewer distinct-but-equal
// values, which starves trim's block-swap and equal-endpoints phases of
// opportunities to fire, while a narrow span (valueSpan close to 0)
// produces many ties.
func SortedPairRatio(total int, ratio float64, valueSpan float64, seed uint64) ([]int, int) {
	if total < 2 {
		total = 2
	}
	n1 := int(float64(total) * ratio)
	if n1 < 1 {
		n1 = 1
	}
	if n1 > total-1 {
		n1 = total - 1
	}
	n2 := total - n1

	span := int(float64(total) * valueSpan)
	if span < 1 {
		span = 1
	}
	return SortedPair(n1, n2, 0, span, seed)
}

// Pair is the value produced by SortedPairGen: a combined slice ready for
// merge.Merge(S, Mid, less) and the boundary index.
type Pair struct {
	S   []int
	Mid int
}

// SortedPairGen is a gopter generator producing SortedPair results with
// both run lengths in [1, maxLen], for use as a gopter/prop.ForAll input
// when property-testing the merge engine's universal properties.
func SortedPairGen(maxLen int) gopter.Gen {
	if maxLen < 1 {
		maxLen = 1
	}
	return func(genParams *gopter.GenParameters) *gopter.GenResult {
		n1 := genParams.Rng.Intn(maxLen) + 1
		n2 := genParams.Rng.Intn(maxLen) + 1
		seed := uint64(genParams.Rng.Int63())
		s, mid := SortedPair(n1, n2, -1000, 1000, seed)
		return gopter.NewGenResult(Pair{S: s, Mid: mid}, gopter.NoShrinker)
	}
}
