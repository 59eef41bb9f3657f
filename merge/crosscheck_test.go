package merge_test

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/trimerge/internal/randgen"
	"github.com/katalvlaran/trimerge/internal/refmerge"
	"github.com/katalvlaran/trimerge/merge"
)

// TestMerge_AgreesWithBaseline checks that the tuned trim-and-divide
// engine and the non-trimming refmerge baseline agree on output for the
// same random input, since both implement the same total-order contract.
func TestMerge_AgreesWithBaseline(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	properties.Property("trimerge and refmerge agree", prop.ForAll(
		func(p randgen.Pair) bool {
			got := append([]int(nil), p.S...)
			merge.Merge(got, p.Mid, lessInt)

			want := append([]int(nil), p.S...)
			refmerge.Merge(want, p.Mid, lessInt)

			return equalInts(got, want)
		},
		randgen.SortedPairGen(80),
	))

	properties.TestingRun(t)
}

// TestMerge_AgreesWithBaseline_LargeSparse covers a large, sparsely-valued
// input (many ties) specifically, to exercise the equal-endpoints repair
// and block-swap phases that short random cases rarely reach.
func TestMerge_AgreesWithBaseline_LargeSparse(t *testing.T) {
	t.Parallel()
	src, mid := randgen.SortedPairRatio(5000, 0.37, 0.02, 42)

	got := append([]int(nil), src...)
	merge.Merge(got, mid, lessInt)

	want := append([]int(nil), src...)
	refmerge.Merge(want, mid, lessInt)

	require.Equal(t, want, got)
	require.True(t, isSorted(got))
}
