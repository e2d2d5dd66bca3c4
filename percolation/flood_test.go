package percolation_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/percolate/percolation"
)

// floodFull returns, for an n×n open mask (open[row][col], 0-based), the set
// of open cells reachable from any open top-row cell by 4-directional moves.
// It is a breadth-first flood used as a reference answer.
//
// Time:   O(n²).
// Memory: O(n²) for seen flags and the queue.
func floodFull(open [][]bool) [][]bool {
	n := len(open)
	seen := make([][]bool, n)
	for y := range seen {
		seen[y] = make([]bool, n)
	}
	queue := make([][2]int, 0, n*n)
	for x := 0; x < n; x++ {
		if open[0][x] {
			seen[0][x] = true
			queue = append(queue, [2]int{0, x})
		}
	}
	offsets := [][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
	for qi := 0; qi < len(queue); qi++ {
		u := queue[qi]
		for _, d := range offsets {
			vy, vx := u[0]+d[0], u[1]+d[1]
			if vy < 0 || vy >= n || vx < 0 || vx >= n || !open[vy][vx] || seen[vy][vx] {
				continue
			}
			seen[vy][vx] = true
			queue = append(queue, [2]int{vy, vx})
		}
	}

	return seen
}

// TestAgainstFlood opens sites in random order and, after every open,
// compares IsFull and Percolates with a fresh breadth-first flood.
func TestAgainstFlood(t *testing.T) {
	cases := []struct {
		name string
		n    int
		seed int64
		opts []percolation.Option
	}{
		{"n=1", 1, 1, nil},
		{"n=2", 2, 2, nil},
		{"n=5", 5, 5, nil},
		{"n=8", 8, 8, nil},
		{"n=8/BySize", 8, 8, []percolation.Option{percolation.WithUnionBySize()}},
		{"n=12/BySize", 12, 42, []percolation.Option{percolation.WithUnionBySize()}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p, err := percolation.New(tc.n, tc.opts...)
			require.NoError(t, err)

			open := make([][]bool, tc.n)
			for y := range open {
				open[y] = make([]bool, tc.n)
			}
			rng := rand.New(rand.NewSource(tc.seed))
			for step, cell := range rng.Perm(tc.n * tc.n) {
				y, x := cell/tc.n, cell%tc.n
				require.NoError(t, p.Open(y+1, x+1))
				open[y][x] = true

				full := floodFull(open)
				percolates := false
				for c := 0; c < tc.n; c++ {
					percolates = percolates || full[tc.n-1][c]
				}
				require.Equal(t, percolates, p.Percolates(), "step %d", step)
				require.Equal(t, step+1, p.NumberOfOpenSites())
				for row := 1; row <= tc.n; row++ {
					for col := 1; col <= tc.n; col++ {
						got, err := p.IsFull(row, col)
						require.NoError(t, err)
						require.Equal(t, full[row-1][col-1], got, "step %d site (%d,%d)", step, row, col)
					}
				}
			}
			require.True(t, p.Percolates())
		})
	}
}

// TestUnionPoliciesAgree checks both union policies give identical answers
// for the same open sequence.
func TestUnionPoliciesAgree(t *testing.T) {
	const n = 10
	a, err := percolation.New(n)
	require.NoError(t, err)
	b, err := percolation.New(n, percolation.WithUnionBySize())
	require.NoError(t, err)

	rng := rand.New(rand.NewSource(7))
	for _, cell := range rng.Perm(n * n)[:n*n/2] {
		row, col := cell/n+1, cell%n+1
		require.NoError(t, a.Open(row, col))
		require.NoError(t, b.Open(row, col))
		require.Equal(t, a.Percolates(), b.Percolates())
		require.Equal(t, a.String(), b.String())
	}
}
