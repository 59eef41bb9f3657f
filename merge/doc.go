// Package merge implements in-place, stable merging of two adjacent sorted
// runs using O(1) auxiliary storage and O(N log N) comparisons.
//
// What
//
//   - Merge combines [s[:mid], s[mid:]) into a single sorted slice in place.
//   - MergeList does the same over a container/list.List, for callers whose
//     cursors cannot do constant-time distance/advance.
//   - MergeFunc adapts a three-way cmp function (the slices.SortFunc
//     convention) onto Merge.
//
// Why
//
//   - Buffered merges (allocate len(right) scratch space, copy, merge back)
//     cost O(N) extra memory. This engine trades a more intricate algorithm
//     for O(1) auxiliary storage: useful when merging very large runs
//     in-place, or in allocation-constrained contexts.
//
// How
//
// The engine decomposes into three cooperating layers, leaves first:
//
//  1. Primitives: binary-search helpers (largest-less, smallest-greater),
//     bounded rotate-by-one, and a symmetric-median displacement search.
//  2. Trim: a ~10-phase state machine that opportunistically retires
//     correctly-ordered elements at both ends of the combined range before
//     any recursion happens — this is where most engineering subtlety
//     lives, and where an equal-endpoints stability repair corrects a
//     degenerate case that would otherwise violate stability.
//  3. Divide: once trim establishes strengthened post-conditions, find the
//     symmetric displacement d, swap the final d elements of the left run
//     with the first d of the right run, and recurse into the two
//     resulting sorted quarters. Recursion depth is O(log N).
//
// Complexity
//
//	– Time:  O(N log N) comparisons and element moves
//	– Space: O(log N) call stack, O(1) heap
//
// Thread-safety
//
// Merge and MergeList are pure functions over caller-owned memory: no
// locks, no shared state, no background work. Two disjoint ranges may be
// merged concurrently from different goroutines without synchronization;
// concurrent access to the *same* range during a call is undefined.
//
// See also
//
// internal/refmerge for a simpler, non-trimming baseline used only for
// benchmark and cross-check comparison.
package merge
