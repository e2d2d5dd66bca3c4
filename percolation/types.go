package percolation

import "errors"

// Sentinel errors for percolation operations.
var (
	// ErrInvalidDimension indicates a grid dimension n ≤ 0.
	ErrInvalidDimension = errors.New("percolation: grid dimension must be positive")

	// ErrOutOfRange indicates a row or column outside [1, n].
	ErrOutOfRange = errors.New("percolation: site out of range")
)

// top is the forest index of the virtual TOP anchor in both forests.
const top = 0

// Option configures optional behavior of a Percolation.
// Use with New(n, opts...).
type Option func(*Options)

// Options holds configurable parameters for a Percolation.
type Options struct {
	// UnionBySize links the root of the smaller tree under the root of the
	// larger one, breaking ties toward the smaller index. When false, the
	// larger root index is always linked under the smaller one.
	UnionBySize bool
}

// DefaultOptions returns Options with index-ordered unions.
func DefaultOptions() Options {
	return Options{
		UnionBySize: false,
	}
}

// WithUnionBySize returns an Option that enables union-by-size.
func WithUnionBySize() Option {
	return func(o *Options) {
		o.UnionBySize = true
	}
}
