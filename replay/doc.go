// Package replay drives a percolation.Percolation from a recorded trace.
//
// Trace format (whitespace separated integers):
//
//	n
//	row col
//	row col
//	...
//
// The first integer is the grid dimension; every following pair names a
// site to open, 1-based, in order.
//
// What:
//
//   - Parse reads a trace from any io.Reader.
//   - Run replays it into a fresh grid and returns a Report with the open
//     count, whether and when the grid percolated, and the final grid.
//   - Report.JSON renders the report as a JSON object.
//
// Options:
//
//   - WithSkipInvalid: skip out-of-range pairs instead of failing.
//   - WithStopOnPercolation: stop at the first step that percolates.
//   - WithGridOptions: forward percolation.Option values to percolation.New.
//
// Errors:
//
//   - ErrEmptyInput: the trace holds no dimension.
//   - ErrMalformed: a token is not an integer or a row has no column.
//   - ErrNilTrace: Run was given a nil *Trace.
//   - percolation.ErrInvalidDimension / percolation.ErrOutOfRange are
//     passed through wrapped, so errors.Is works on them.
package replay
