// Package percolate models percolation on an n×n grid of open and blocked
// sites and answers two questions in near-constant time: is a site "full"
// (hydraulically connected to the top row), and does the system percolate
// (is the top row connected to the bottom row).
//
// What lives where:
//
//	percolation/  — the Percolation type: site state + disjoint-set forests
//	                with virtual TOP and BOTTOM anchors
//	replay/       — parse "n, then row col pairs" traces and replay them
//	cmd/percolate — command-line driver over replay
//
// Quick ASCII example (n = 3, '#' blocked, 'o' open, '*' full):
//
//	* # #
//	* # #
//	* # o
//
// The left column path reaches row 3, so the system percolates; (3,3) is
// open but not full, since nothing connects it to the top.
//
//	go get github.com/katalvlaran/percolate
package percolate
