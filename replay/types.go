package replay

import (
	"errors"

	"github.com/katalvlaran/percolate/percolation"
)

// Sentinel errors for replay operations.
var (
	// ErrEmptyInput indicates the trace has no grid dimension.
	ErrEmptyInput = errors.New("replay: empty input")

	// ErrMalformed indicates a non-integer token or an unpaired row.
	ErrMalformed = errors.New("replay: malformed trace")

	// ErrNilTrace is returned when Run is given a nil *Trace.
	ErrNilTrace = errors.New("replay: trace is nil")
)

// Site is a 1-based (row, col) pair as read from a trace.
type Site struct {
	Row, Col int
}

// Trace is a parsed input: a grid dimension and the sites to open, in order.
type Trace struct {
	N     int
	Sites []Site
}

// Option configures optional behavior of Run.
type Option func(*Options)

// Options holds configurable parameters for Run.
type Options struct {
	// SkipInvalid skips out-of-range sites and counts them in
	// Report.Skipped. When false, the first such site aborts Run.
	SkipInvalid bool

	// StopOnPercolation stops replaying after the first step at which the
	// grid percolates.
	StopOnPercolation bool

	// Grid is forwarded to percolation.New.
	Grid []percolation.Option
}

// DefaultOptions returns Options that abort on invalid sites and replay the
// whole trace.
func DefaultOptions() Options {
	return Options{
		SkipInvalid:       false,
		StopOnPercolation: false,
		Grid:              nil,
	}
}

// WithSkipInvalid returns an Option that skips out-of-range sites.
func WithSkipInvalid() Option {
	return func(o *Options) {
		o.SkipInvalid = true
	}
}

// WithStopOnPercolation returns an Option that stops at the first
// percolating step.
func WithStopOnPercolation() Option {
	return func(o *Options) {
		o.StopOnPercolation = true
	}
}

// WithGridOptions returns an Option that forwards opts to percolation.New.
func WithGridOptions(opts ...percolation.Option) Option {
	return func(o *Options) {
		o.Grid = append(o.Grid, opts...)
	}
}
