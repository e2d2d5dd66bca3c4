// Package percolation implements the classic percolation model on an n×n
// grid backed by a disjoint-set (union-find) forest.
//
// What:
//
//   - Sites are addressed 1-based as (row, col) and mapped row-major to
//     index (row-1)*n + col in [1, n²].
//   - Two virtual anchors sit outside that range: TOP at index 0 and BOTTOM
//     at index n²+1. Opening a row-1 site links it to TOP; opening a row-n
//     site links it to BOTTOM.
//   - IsFull compares a site's root with TOP's root. Percolates compares
//     TOP's root with BOTTOM's root.
//
// Backwash:
//
//	With a single forest holding both anchors, once the system percolates
//	every open bottom-row site shares TOP's root through BOTTOM and would be
//	reported full. Percolation keeps two forests: "flow" (TOP, sites,
//	BOTTOM) answers Percolates, "fill" (TOP, sites) answers IsFull.
//
// Complexity:
//
//   - New:               O(n²) time and memory.
//   - Open:              amortized near O(1) (≤ 4 neighbour unions per forest).
//   - IsOpen:            O(1).
//   - IsFull/Percolates: amortized near O(1) (root lookups with path halving).
//   - NumberOfOpenSites: O(1).
//
// Options:
//
//   - WithUnionBySize: link smaller trees under larger ones instead of the
//     default "larger root index under smaller" rule. Answers are identical.
//
// Errors:
//
//   - ErrInvalidDimension: New called with n ≤ 0.
//   - ErrOutOfRange: row or col outside [1, n]; the grid is left unchanged.
//
// Percolation is not safe for concurrent use: even read queries compress
// paths. Callers sharing an instance must serialize access themselves.
package percolation
