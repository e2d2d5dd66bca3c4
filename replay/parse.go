package replay

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
)

// Parse reads a trace from r: a grid dimension followed by row/col pairs.
// Parse does not range-check anything; Run reports invalid dimensions and
// sites.
// Returns ErrEmptyInput if r holds no tokens, ErrMalformed if a token is not
// an integer or the last row has no column.
func Parse(r io.Reader) (*Trace, error) {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)

	var nums []int
	for pos := 1; sc.Scan(); pos++ {
		v, err := strconv.Atoi(sc.Text())
		if err != nil {
			return nil, fmt.Errorf("%w: token %d %q is not an integer", ErrMalformed, pos, sc.Text())
		}
		nums = append(nums, v)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("replay: read trace: %w", err)
	}
	if len(nums) == 0 {
		return nil, ErrEmptyInput
	}

	pairs := nums[1:]
	if len(pairs)%2 != 0 {
		return nil, fmt.Errorf("%w: token %d is a row with no column", ErrMalformed, len(nums))
	}
	t := &Trace{N: nums[0], Sites: make([]Site, 0, len(pairs)/2)}
	for i := 0; i < len(pairs); i += 2 {
		t.Sites = append(t.Sites, Site{Row: pairs[i], Col: pairs[i+1]})
	}

	return t, nil
}
