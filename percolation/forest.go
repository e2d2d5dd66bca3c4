package percolation

// forest is a fixed-size disjoint-set forest over indices [0, len(parent)).
// Every index starts as its own root; a blocked site is never linked, so it
// stays its own root until opened.
type forest struct {
	parent []int
	size   []int // nil unless union-by-size is enabled
}

func newForest(n int, bySize bool) forest {
	f := forest{parent: make([]int, n)}
	for i := range f.parent {
		f.parent[i] = i
	}
	if bySize {
		f.size = make([]int, n)
		for i := range f.size {
			f.size[i] = 1
		}
	}

	return f
}

// root returns the representative of i, pointing every visited node at its
// grandparent on the way up.
func (f *forest) root(i int) int {
	for i != f.parent[i] {
		f.parent[i] = f.parent[f.parent[i]]
		i = f.parent[i]
	}

	return i
}

// union merges the sets of i and j. Roots are re-derived on every call.
func (f *forest) union(i, j int) {
	ri, rj := f.root(i), f.root(j)
	if ri == rj {
		return
	}
	if f.size != nil {
		// ri becomes the surviving root: larger tree, or smaller index on a tie.
		if f.size[ri] < f.size[rj] || (f.size[ri] == f.size[rj] && rj < ri) {
			ri, rj = rj, ri
		}
		f.parent[rj] = ri
		f.size[ri] += f.size[rj]
		return
	}
	if rj < ri {
		ri, rj = rj, ri
	}
	f.parent[rj] = ri
}

func (f *forest) connected(i, j int) bool {
	return f.root(i) == f.root(j)
}
