package replay

import (
	"strings"

	"github.com/tidwall/sjson"

	"github.com/katalvlaran/percolate/percolation"
)

// Report summarizes a replay.
type Report struct {
	// N is the grid dimension.
	N int
	// Steps counts sites passed to Open successfully, repeats included.
	Steps int
	// Skipped counts out-of-range sites ignored under WithSkipInvalid.
	Skipped int
	// OpenSites is the final NumberOfOpenSites.
	OpenSites int
	// Percolates is the final Percolates answer.
	Percolates bool
	// PercolatedAt is the 1-based trace position of the first site after
	// which the grid percolated, or 0 if it never did.
	PercolatedAt int
	// Grid is the grid after replay.
	Grid *percolation.Percolation
}

// Fraction returns the share of open sites, OpenSites / N², or 0 for an
// empty report.
func (r *Report) Fraction() float64 {
	if r.N == 0 {
		return 0
	}

	return float64(r.OpenSites) / float64(r.N*r.N)
}

// JSON renders r as a JSON object. Grid is rendered as an array of row
// strings when withGrid is true.
func (r *Report) JSON(withGrid bool) (string, error) {
	doc := "{}"
	fields := []struct {
		path  string
		value interface{}
	}{
		{"n", r.N},
		{"steps", r.Steps},
		{"skipped", r.Skipped},
		{"open_sites", r.OpenSites},
		{"fraction", r.Fraction()},
		{"percolates", r.Percolates},
		{"percolated_at", r.PercolatedAt},
	}
	var err error
	for _, f := range fields {
		if doc, err = sjson.Set(doc, f.path, f.value); err != nil {
			return "", err
		}
	}
	if withGrid && r.Grid != nil {
		if doc, err = sjson.Set(doc, "grid", gridRows(r.Grid.String())); err != nil {
			return "", err
		}
	}

	return doc, nil
}

// gridRows splits a Percolation.String dump into its rows.
func gridRows(s string) []string {
	return strings.Split(strings.TrimSuffix(s, "\n"), "\n")
}
