// Package randgen synthesises input pairs for the merge engine: two
// independently sorted, adjacent runs with controllable size and
// value-range ratio.
//
// It ports the random_helpers.h / misc_helpers.h generators
// (FillWithRandomNumbers, PickRandom) as seeded, reproducible Go functions
// built on math/rand/v2, and exposes gopter generators so the same shapes
// can drive merge's property tests.
package randgen
