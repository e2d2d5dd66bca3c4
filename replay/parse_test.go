package replay_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/percolate/replay"
)

//----------------------------------------------------------------------------//
// Parse Tests
//----------------------------------------------------------------------------//

// TestParse verifies dimension and pairs are read regardless of layout.
func TestParse(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  *replay.Trace
	}{
		{"DimensionOnly", "3\n", &replay.Trace{N: 3, Sites: []replay.Site{}}},
		{"OnePerLine", "2\n1 1\n2 1\n", &replay.Trace{N: 2, Sites: []replay.Site{{1, 1}, {2, 1}}}},
		{"FreeForm", "  4 1\t2\n\n3   4 ", &replay.Trace{N: 4, Sites: []replay.Site{{1, 2}, {3, 4}}}},
		{"NoRangeCheck", "-1 0 9", &replay.Trace{N: -1, Sites: []replay.Site{{0, 9}}}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := replay.Parse(strings.NewReader(tc.input))
			require.NoError(t, err)
			require.Equal(t, tc.want, got)
		})
	}
}

// TestParse_Errors verifies empty and malformed traces are rejected.
func TestParse_Errors(t *testing.T) {
	cases := []struct {
		name  string
		input string
		err   error
	}{
		{"Empty", "", replay.ErrEmptyInput},
		{"Blank", " \n\t\n", replay.ErrEmptyInput},
		{"BadDimension", "three\n", replay.ErrMalformed},
		{"BadToken", "3\n1 x\n", replay.ErrMalformed},
		{"UnpairedRow", "3\n1 1\n2\n", replay.ErrMalformed},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tr, err := replay.Parse(strings.NewReader(tc.input))
			if !errors.Is(err, tc.err) {
				t.Errorf("Parse(%q) error = %v; want %v", tc.input, err, tc.err)
			}
			require.Nil(t, tr)
		})
	}
}

// TestParse_ErrorPosition verifies malformed traces name the 1-based
// position of the offending token, counting the dimension as token 1.
func TestParse_ErrorPosition(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  string
	}{
		{"BadToken", "3\n1 x\n", "token 3 "},
		{"UnpairedRow", "3\n1 1\n2\n", "token 4 "},
		{"UnpairedRowOnly", "5 7", "token 2 "},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := replay.Parse(strings.NewReader(tc.input))
			require.ErrorIs(t, err, replay.ErrMalformed)
			require.Contains(t, err.Error(), tc.want)
		})
	}
}
