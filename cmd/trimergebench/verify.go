package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/trimerge/internal/randgen"
	"github.com/katalvlaran/trimerge/internal/refmerge"
	"github.com/katalvlaran/trimerge/merge"
)

func newVerifyCmd(log *zap.SugaredLogger) *cobra.Command {
	var minSize, maxSize, trials int
	var seed int64

	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Run randomized sortedness and baseline-agreement checks against the merge engine",
		RunE: func(cmd *cobra.Command, args []string) error {
			if minSize <= 0 || minSize > maxSize {
				return ErrInvalidSizeRange
			}
			if trials <= 0 {
				return ErrInvalidTrials
			}

			failures := verifySweep(minSize, maxSize, trials, seed, log)
			if failures > 0 {
				return fmt.Errorf("trimergebench: %d verification failures", failures)
			}
			log.Infow("verification passed", "min_size", minSize, "max_size", maxSize, "trials", trials)
			return nil
		},
	}

	cmd.Flags().IntVar(&minSize, "min-size", 1, "smallest combined run length to verify")
	cmd.Flags().IntVar(&maxSize, "max-size", 512, "largest combined run length to verify")
	cmd.Flags().IntVar(&trials, "trials", 20, "random trials per size")
	cmd.Flags().Int64Var(&seed, "seed", 1, "base RNG seed")

	return cmd
}

// verifySweep checks, for every size in [minSize, maxSize] and trials
// random inputs per size (each split at n/2), that merge.Merge produces a
// sorted output
// agreeing with the refmerge baseline on the same input, mirroring
// main.cpp's TestCorrectnessOfMerge sweep over
// vec_size_start..vec_size_end.
func verifySweep(minSize, maxSize, trials int, seed int64, log *zap.SugaredLogger) int {
	less := func(a, b int) bool { return a < b }
	failures := 0

	for n := minSize; n <= maxSize; n++ {
		for t := 0; t < trials; t++ {
			seedVal := uint64(seed) + uint64(n)*1000003 + uint64(t)
			src, mid := randgen.SortedPair(n/2, n-n/2, 0, n, seedVal)

			got := append([]int(nil), src...)
			merge.Merge(got, mid, less)

			want := append([]int(nil), src...)
			refmerge.Merge(want, mid, less)

			if !sortedAsc(got) {
				failures++
				log.Errorw("output not sorted", "size", n, "trial", t)
				continue
			}
			if !equalInts(got, want) {
				failures++
				log.Errorw("disagreement with baseline", "size", n, "trial", t)
			}
		}
	}
	return failures
}

func sortedAsc(s []int) bool {
	for i := 1; i < len(s); i++ {
		if s[i] < s[i-1] {
			return false
		}
	}
	return true
}

func equalInts(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
