package percolation

import (
	"fmt"
	"math"
	"strings"
)

// neighborOffsets lists (row, col) deltas of the four grid-adjacent sites:
// left, right, up, down.
var neighborOffsets = [4][2]int{{0, -1}, {0, 1}, {-1, 0}, {1, 0}}

// Percolation is an n×n grid of sites, each blocked or open, with
// union-find backed connectivity queries. Sites only ever go from blocked
// to open. The zero value is not usable; construct with New.
type Percolation struct {
	n       int
	bottom  int    // forest index of the BOTTOM anchor in flow: n²+1
	open    []bool // open[index(row, col)]; anchors are never marked
	numOpen int

	flow forest // TOP, sites, BOTTOM: answers Percolates
	fill forest // TOP, sites: answers IsFull without backwash
}

// New returns an n×n grid with every site blocked.
// Returns ErrInvalidDimension if n ≤ 0 or n²+2 overflows int.
// Complexity: O(n²) time and memory.
func New(n int, opts ...Option) (*Percolation, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidDimension, n)
	}
	// n²+2 forest slots must fit in an int.
	if n > (math.MaxInt-2)/n {
		return nil, fmt.Errorf("%w: %d×%d grid is too large", ErrInvalidDimension, n, n)
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	size := n * n
	p := &Percolation{
		n:      n,
		bottom: size + 1,
		open:   make([]bool, size+1),
		flow:   newForest(size+2, o.UnionBySize),
		fill:   newForest(size+1, o.UnionBySize),
	}

	return p, nil
}

// Size returns the grid dimension n.
func (p *Percolation) Size() int {
	return p.n
}

// Open opens site (row, col) if it is not open already and connects it to
// its open neighbours, to TOP when row is 1 and to BOTTOM when row is n.
// Opening an open site is a no-op. Returns ErrOutOfRange, with no state
// change, if row or col lies outside [1, n].
func (p *Percolation) Open(row, col int) error {
	if err := p.validate(row, col); err != nil {
		return err
	}
	idx := p.index(row, col)
	if p.open[idx] {
		return nil
	}
	p.open[idx] = true
	p.numOpen++

	if row == 1 {
		p.flow.union(idx, top)
		p.fill.union(idx, top)
	}
	if row == p.n {
		p.flow.union(idx, p.bottom)
	}
	for _, d := range neighborOffsets {
		r, c := row+d[0], col+d[1]
		if !p.inBounds(r, c) {
			continue
		}
		adj := p.index(r, c)
		if !p.open[adj] {
			continue
		}
		p.flow.union(idx, adj)
		p.fill.union(idx, adj)
	}

	return nil
}

// IsOpen reports whether site (row, col) is open.
// Returns ErrOutOfRange if row or col lies outside [1, n].
// Complexity: O(1).
func (p *Percolation) IsOpen(row, col int) (bool, error) {
	if err := p.validate(row, col); err != nil {
		return false, err
	}

	return p.open[p.index(row, col)], nil
}

// IsFull reports whether site (row, col) is open and connected to the top
// row through a chain of open neighbours.
// Returns ErrOutOfRange if row or col lies outside [1, n].
func (p *Percolation) IsFull(row, col int) (bool, error) {
	if err := p.validate(row, col); err != nil {
		return false, err
	}

	return p.isFull(p.index(row, col)), nil
}

// NumberOfOpenSites returns how many sites have been opened.
// Complexity: O(1).
func (p *Percolation) NumberOfOpenSites() int {
	return p.numOpen
}

// Percolates reports whether some path of open sites joins the top row to
// the bottom row.
func (p *Percolation) Percolates() bool {
	return p.flow.connected(top, p.bottom)
}

// String renders the grid one row per line: '#' blocked, 'o' open,
// '*' full. Cells are separated by a single space.
func (p *Percolation) String() string {
	var sb strings.Builder
	for row := 1; row <= p.n; row++ {
		for col := 1; col <= p.n; col++ {
			if col > 1 {
				sb.WriteByte(' ')
			}
			idx := p.index(row, col)
			switch {
			case p.isFull(idx):
				sb.WriteByte('*')
			case p.open[idx]:
				sb.WriteByte('o')
			default:
				sb.WriteByte('#')
			}
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}

func (p *Percolation) isFull(idx int) bool {
	return p.open[idx] && p.fill.connected(idx, top)
}

// index maps 1-based (row, col) to (row-1)*n + col.
func (p *Percolation) index(row, col int) int {
	return (row-1)*p.n + col
}

func (p *Percolation) inBounds(row, col int) bool {
	return row >= 1 && row <= p.n && col >= 1 && col <= p.n
}

func (p *Percolation) validate(row, col int) error {
	if !p.inBounds(row, col) {
		return fmt.Errorf("%w: (%d, %d) not within [1, %d]", ErrOutOfRange, row, col, p.n)
	}

	return nil
}
