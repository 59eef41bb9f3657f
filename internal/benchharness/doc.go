// Package benchharness supplies the timing loops and ratio-table reports
// that compare the tuned merge engine against its non-trimming baseline,
// ported from merge_time.h's per-size timing loop and
// print_total_averages ratio output. It has two halves: Run drives
// merge.Merge across a size sweep inside a standard Go benchmark (for
// "go test -bench" from merge/bench_test.go); Report renders a
// tablewriter.Table of trimerge-vs-baseline timings and speed ratios, the
// Go analogue of merge_time.h's hand-formatted std::setw columns.
package benchharness
