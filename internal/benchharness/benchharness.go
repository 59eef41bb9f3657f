package benchharness

import (
	"fmt"
	"io"
	"strconv"
	"testing"

	"github.com/olekukonko/tablewriter"

	"github.com/katalvlaran/trimerge/internal/randgen"
	"github.com/katalvlaran/trimerge/merge"
)

// Run drives merge.Merge across sizes, one testing.B sub-benchmark per
// size, on sorted pairs generated with the given left/right split ratio
// and a value span equal to the size (see randgen.SortedPairRatio). The
// per-iteration copy is excluded
// from the timed region since merge.Merge mutates its input in place.
func Run(b *testing.B, sizes []int, ratio float64) {
	less := func(a, bb int) bool { return a < bb }
	for _, n := range sizes {
		n := n
		b.Run(fmt.Sprintf("N=%d", n), func(b *testing.B) {
			src, mid := randgen.SortedPairRatio(n, ratio, 1.0, uint64(n)+1)
			work := make([]int, len(src))

			b.ReportAllocs()
			b.SetBytes(int64(len(src)))
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				b.StopTimer()
				copy(work, src)
				b.StartTimer()
				merge.Merge(work, mid, less)
			}
		})
	}
}

// Result is one row of a trimerge-vs-baseline comparison: the input size
// and the measured nanoseconds-per-op for each algorithm.
type Result struct {
	Size          int
	TrimergeNanos int64
	BaselineNanos int64
}

// Report renders results as a speed-ratio table to w, the Go shape of
// merge_time.h's comparison table: one row per size, a BaselineNanos /
// TrimergeNanos speedup column.
func Report(w io.Writer, results []Result) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Size", "Trimerge ns/op", "Baseline ns/op", "Speedup"})
	table.SetAutoFormatHeaders(false)

	for _, r := range results {
		speedup := "-"
		if r.TrimergeNanos > 0 {
			speedup = fmt.Sprintf("%.2fx", float64(r.BaselineNanos)/float64(r.TrimergeNanos))
		}
		table.Append([]string{
			strconv.Itoa(r.Size),
			strconv.FormatInt(r.TrimergeNanos, 10),
			strconv.FormatInt(r.BaselineNanos, 10),
			speedup,
		})
	}
	table.Render()
}
