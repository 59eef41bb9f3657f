// Package refmerge is a vendored baseline in-place merge, ported from the
// classic Hewlett-Packard/SGI STL "merge without buffer" algorithm (the
// same lineage as libstdc++'s __merge_without_buffer, which backs
// std::inplace_merge when no temporary buffer is available).
//
// It exists for exactly one reason, named in the core engine's design
// scope: a reference routine to benchmark the tuned trim-and-divide engine
// against and to cross-check output agreement in tests. It performs no
// trim pass — every call halves the longer run, locates the matching cut
// in the shorter run by binary search, rotates, and recurses on the two
// resulting halves. This is the textbook O(N log N) in-place stable merge
// without trimming's early-exit fast paths.
//
// Package-internal: nothing outside this module should depend on it, and
// it is never part of any public API surface.
package refmerge
