package skiplist

import (
	"math/rand"

	"github.com/iotaledger/hive.go/runtime/options"
)

// DefaultMaxLevel is the maximum height of the nodes if it is not configured otherwise via WithMaxLevel.
const DefaultMaxLevel = 32

// Options bundles the configurable parameters of a SkipList.
type Options struct {
	// The maximum number of levels a node can take part in.
	maxLevel int
	// The source of randomness for the height of new nodes.
	randSource rand.Source
}

// Option is a function setting an Options option.
type Option = options.Option[Options]

// WithMaxLevel sets the maximum height of the nodes. The default of 32 levels keeps operations logarithmic for
// billions of elements, smaller lists can reduce it to save memory.
func WithMaxLevel(maxLevel int) Option {
	return func(opts *Options) {
		opts.maxLevel = maxLevel
	}
}

// WithRandSource sets the source of randomness that is used to determine the height of new nodes (i.e. to make the
// shape of the list reproducible in tests).
func WithRandSource(source rand.Source) Option {
	return func(opts *Options) {
		opts.randSource = source
	}
}
