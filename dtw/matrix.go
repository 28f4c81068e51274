package dtw

import (
	"slices"

	"github.com/katalvlaran/warp/metric"
)

// CostMatrix returns the full accumulated cost table: len(y) rows of len(x)
// cells, where cell [r][c] is the cheapest warping cost aligning x[:c+1]
// with y[:r+1]. The bottom-right cell equals OneToOne(x, y).
//
// Memory: O(len(x)·len(y)); prefer OneToOne when only the distance is needed.
func (d *DTW[T, U]) CostMatrix(x, y []T) ([][]U, error) {
	if err := d.validate(x, y); err != nil {
		return nil, err
	}

	// one backing array keeps the rows contiguous
	cells := make([]U, len(x)*len(y))
	table := make([][]U, len(y))
	for r := range table {
		table[r] = cells[r*len(x) : (r+1)*len(x) : (r+1)*len(x)]
	}

	var prev []U
	for r := range y {
		if err := d.fillRow(x, y[r], r, prev, table[r]); err != nil {
			return nil, err
		}
		prev = table[r]
	}

	return table, nil
}

// Align returns the DTW distance together with the warping path.
//
// The path starts at {0 0} and ends at {len(x)-1 len(y)-1}; each step moves
// by one in x, in y, or in both. It is recovered by walking back from the
// last cell to the cheapest neighbour, preferring the diagonal, then the top
// (advance y only), then the left (advance x only). The pointwise distances
// along the path sum to the returned distance.
//
// Example:
//
//	dist, path, _ := d.Align([]float64{1, 2, 3}, []float64{1, 2, 2, 3})
//	// dist == 0, path == [{0 0} {1 1} {1 2} {2 3}]
func (d *DTW[T, U]) Align(x, y []T) (U, []Coord, error) {
	table, err := d.CostMatrix(x, y)
	if err != nil {
		return 0, nil, err
	}

	return table[len(y)-1][len(x)-1], backtrack(table), nil
}

// backtrack walks the filled table from the bottom-right cell to the origin.
func backtrack[U metric.Number](table [][]U) []Coord {
	r, c := len(table)-1, len(table[0])-1
	path := make([]Coord, 0, r+c+1)
	path = append(path, Coord{X: c, Y: r})
	for r > 0 || c > 0 {
		switch {
		case r == 0:
			c--
		case c == 0:
			r--
		default:
			diag, top, left := table[r-1][c-1], table[r-1][c], table[r][c-1]
			switch {
			case diag <= top && diag <= left:
				r, c = r-1, c-1
			case top <= left:
				r--
			default:
				c--
			}
		}
		path = append(path, Coord{X: c, Y: r})
	}
	slices.Reverse(path)

	return path
}
