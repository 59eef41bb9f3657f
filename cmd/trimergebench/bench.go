package main

import (
	"errors"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/trimerge/internal/benchharness"
	"github.com/katalvlaran/trimerge/internal/randgen"
	"github.com/katalvlaran/trimerge/internal/refmerge"
	"github.com/katalvlaran/trimerge/merge"
)

// Sentinel errors for invalid bench/verify flag combinations: the only
// place user-supplied configuration can be wrong, since merge's own
// public functions are infallible by contract.
var (
	ErrInvalidSizeRange = errors.New("trimergebench: min-size must be positive and <= max-size")
	ErrInvalidRatio     = errors.New("trimergebench: ratio must be in (0, 1)")
	ErrInvalidRepeats   = errors.New("trimergebench: repeats must be positive")
	ErrInvalidTrials    = errors.New("trimergebench: trials must be positive")
)

func newBenchCmd(log *zap.SugaredLogger) *cobra.Command {
	var minSize, maxSize, repeats int
	var ratio float64
	var seed int64

	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Compare the trimerge engine against the vendored baseline across a size sweep",
		RunE: func(cmd *cobra.Command, args []string) error {
			if minSize <= 0 || minSize > maxSize {
				return ErrInvalidSizeRange
			}
			if ratio <= 0 || ratio >= 1 {
				return ErrInvalidRatio
			}
			if repeats <= 0 {
				return ErrInvalidRepeats
			}

			results := sweep(minSize, maxSize, ratio, repeats, seed)
			for _, r := range results {
				log.Infow("size complete", "size", r.Size, "trimerge_ns", r.TrimergeNanos, "baseline_ns", r.BaselineNanos)
			}
			benchharness.Report(os.Stdout, results)
			return nil
		},
	}

	cmd.Flags().IntVar(&minSize, "min-size", 1024, "smallest combined run length to benchmark")
	cmd.Flags().IntVar(&maxSize, "max-size", 1<<20, "largest combined run length to benchmark")
	cmd.Flags().Float64Var(&ratio, "ratio", 0.5, "left/right run length split, in (0,1)")
	cmd.Flags().IntVar(&repeats, "repeats", 5, "repetitions averaged per size")
	cmd.Flags().Int64Var(&seed, "seed", 1, "base RNG seed")

	return cmd
}

// sweep times merge.Merge against refmerge.Merge for minSize and each
// doubling of it up to maxSize, averaged over repeats trials.
func sweep(minSize, maxSize int, ratio float64, repeats int, seed int64) []benchharness.Result {
	less := func(a, b int) bool { return a < b }
	var results []benchharness.Result

	for n := minSize; n <= maxSize; n *= 2 {
		var trimergeTotal, baselineTotal int64
		for rep := 0; rep < repeats; rep++ {
			seedVal := uint64(seed) + uint64(n)*1000003 + uint64(rep)
			src, mid := randgen.SortedPairRatio(n, ratio, 1.0, seedVal)

			work := append([]int(nil), src...)
			start := time.Now()
			merge.Merge(work, mid, less)
			trimergeTotal += time.Since(start).Nanoseconds()

			baseline := append([]int(nil), src...)
			start = time.Now()
			refmerge.Merge(baseline, mid, less)
			baselineTotal += time.Since(start).Nanoseconds()
		}
		results = append(results, benchharness.Result{
			Size:          n,
			TrimergeNanos: trimergeTotal / int64(repeats),
			BaselineNanos: baselineTotal / int64(repeats),
		})
	}
	return results
}
