package merge_test

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/prop"

	"github.com/katalvlaran/trimerge/internal/randgen"
	"github.com/katalvlaran/trimerge/merge"
)

// TestMerge_Properties checks the engine's universal properties
// (sortedness, multiset preservation, stability, and idempotence) against
// randomly-generated sorted pairs via gopter, rather than a handful of
// literal cases.
func TestMerge_Properties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	properties.Property("sortedness", prop.ForAll(
		func(p randgen.Pair) bool {
			s := append([]int(nil), p.S...)
			merge.Merge(s, p.Mid, lessInt)
			return isSorted(s)
		},
		randgen.SortedPairGen(60),
	))

	properties.Property("multiset preservation", prop.ForAll(
		func(p randgen.Pair) bool {
			s := append([]int(nil), p.S...)
			before := counts(s)
			merge.Merge(s, p.Mid, lessInt)
			return mapsEqual(before, counts(s))
		},
		randgen.SortedPairGen(60),
	))

	properties.Property("idempotence on already-sorted input", prop.ForAll(
		func(p randgen.Pair) bool {
			// Sort the combined range up front, then re-split at the same
			// mid: both runs are then individually sorted *and* the whole
			// range is already merged, so the output must equal the input.
			s := sortedCopy(p.S)
			want := append([]int(nil), s...)
			merge.Merge(s, p.Mid, lessInt)
			return equalInts(s, want)
		},
		randgen.SortedPairGen(60),
	))

	properties.Property("stability of equivalent elements", prop.ForAll(
		func(p randgen.Pair) bool {
			type pair struct {
				value int
				idx   int
			}
			s := make([]pair, len(p.S))
			for i, v := range p.S {
				s[i] = pair{value: v, idx: i}
			}
			less := func(a, b pair) bool { return a.value < b.value }
			merge.Merge(s, p.Mid, less)
			for i := 0; i < len(s); i++ {
				for j := i + 1; j < len(s); j++ {
					if s[i].value == s[j].value && s[i].idx > s[j].idx {
						return false
					}
				}
			}
			return true
		},
		randgen.SortedPairGen(40),
	))

	properties.TestingRun(t)
}

func mapsEqual(a, b map[int]int) bool {
	if len(a) != len(b) {
		return false
	}
	for k, v := range a {
		if b[k] != v {
			return false
		}
	}
	return true
}
