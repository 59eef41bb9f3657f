// Package trimerge implements and benchmarks an in-place, stable merge of
// two adjacent sorted runs using O(1) auxiliary storage and O(N log N)
// comparisons.
//
// 🚀 What is trimerge?
//
//	A focused, dependency-light core that brings together:
//
//	  • merge:            the trim-and-divide engine itself (Merge, MergeList)
//	  • internal/refmerge: a non-trimming baseline used only for comparison
//	  • internal/randgen:  seeded random sorted-pair generators for tests
//	  • internal/benchharness: timing loops and ratio-table reports
//	  • cmd/trimergebench: a CLI that drives the above
//
// ✨ Why trimerge?
//
//   - No allocation       — the engine never allocates a scratch buffer
//   - Stable               — equivalent elements keep their original order
//   - Two iterator shapes  — a random-access (slice) and a bidirectional
//     (container/list) specialisation share one algorithm
//
// Under the hood, the hard part — the trim pre-processing pass that
// retires correctly-ordered elements before any recursion happens — lives
// entirely in the merge package; see merge's own doc.go for the layering.
package trimerge
