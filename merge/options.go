package merge

// Options holds the tunable knobs of the merge engine. The zero value is
// not valid on its own; construct one with DefaultOptions.
type Options struct {
	// InsertionThreshold is the base-case cutoff for divide: once
	// min(lengthLeft, lengthRight) <= InsertionThreshold, the engine falls
	// through to an insertion-merge of the shorter run into the longer one
	// instead of recursing further. Valid range [1, 5].
	InsertionThreshold int
}

// Option configures an Options value.
type Option func(*Options)

// DefaultOptions returns the engine's default tuning, then applies opts.
func DefaultOptions(opts ...Option) Options {
	o := Options{InsertionThreshold: 1}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithInsertionThreshold sets the divide base-case cutoff. Values outside
// [1, 5] are clamped; the upper bound matches the unrolled-variant ceiling
// noted in the engine's design notes — unrolling past 5 showed diminishing
// returns in the reference sources and is not implemented here.
func WithInsertionThreshold(n int) Option {
	return func(o *Options) {
		if n < 1 {
			n = 1
		}
		if n > 5 {
			n = 5
		}
		o.InsertionThreshold = n
	}
}
