package replay

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/percolate/percolation"
)

// Run replays t into a new percolation.Percolation of dimension t.N.
//
// Behavior:
//  1. Build the grid; a non-positive t.N fails with
//     percolation.ErrInvalidDimension.
//  2. Open each site in order. ctx is checked before every step.
//  3. An out-of-range site aborts with percolation.ErrOutOfRange, or is
//     counted in Report.Skipped under WithSkipInvalid.
//  4. Record the first step after which the grid percolates; stop there
//     under WithStopOnPercolation.
//
// Complexity: O(N² + S) for S sites, up to near-constant factors.
func Run(ctx context.Context, t *Trace, opts ...Option) (*Report, error) {
	if t == nil {
		return nil, ErrNilTrace
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	p, err := percolation.New(t.N, o.Grid...)
	if err != nil {
		return nil, fmt.Errorf("replay: %w", err)
	}
	rep := &Report{N: t.N, Grid: p}

	for i, s := range t.Sites {
		if err = ctx.Err(); err != nil {
			return nil, fmt.Errorf("replay: step %d: %w", i+1, err)
		}
		if err = p.Open(s.Row, s.Col); err != nil {
			if o.SkipInvalid && errors.Is(err, percolation.ErrOutOfRange) {
				rep.Skipped++
				continue
			}
			return nil, fmt.Errorf("replay: step %d: %w", i+1, err)
		}
		rep.Steps++
		if rep.PercolatedAt == 0 && p.Percolates() {
			rep.PercolatedAt = i + 1
			if o.StopOnPercolation {
				break
			}
		}
	}
	rep.OpenSites = p.NumberOfOpenSites()
	rep.Percolates = p.Percolates()

	return rep, nil
}
