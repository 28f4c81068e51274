package dtw

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/warp/metric"
)

// DTW: Dynamic Time Warping
//
// Description:
//
//	DTW measures similarity between two sequences that may vary
//	in time or speed by finding an optimal “warping path” through
//	a cost table indexed by y (rows) and x (columns).
//
// Algorithm Outline:
//  1. Let n = len(x), m = len(y). The table C has m rows and n columns.
//  2. For r = 0..m-1, for c = 0..n-1:
//     dist    = metric.Distance(x[c], y[r])
//     top     = C[r-1][c]    (if r > 0)
//     left    = C[r][c-1]    (if c > 0)
//     topLeft = C[r-1][c-1]  (if r > 0 and c > 0)
//     C[r][c] = dist + min(available neighbours), or dist at (0,0)
//  3. distance = C[m-1][n-1].
//
// Missing neighbours are skipped, never treated as 0 or +∞. Row r reads only
// row r-1 and earlier cells of row r, so OneToOne keeps just two rows.
//
// Complexity:
//
//	Time   = O(n·m) metric calls
//	Memory = O(n) (OneToOne) or O(n·m) (CostMatrix, Align)
//
// Errors:
//   - ErrNilMetric       - the engine has no pointwise metric.
//   - ErrEmptyInput      - x or y has no elements.
//   - metric.ErrOverflow - an accumulated cost no longer fits U.
//   - any error from the pointwise metric, returned as is; the first one
//     aborts the computation and no partial distance is produced.
var (
	// ErrEmptyInput indicates one or both inputs are empty.
	ErrEmptyInput = errors.New("dtw: input sequences must be non-empty")

	// ErrNilMetric indicates the engine was built without a pointwise metric.
	ErrNilMetric = errors.New("dtw: pointwise metric is nil")
)

// OneToOne returns the DTW distance between x and y.
//
// x indexes the columns and y the rows of the cost table; with an asymmetric
// pointwise metric the argument order therefore matters.
//
// Example:
//
//	d := New[float64, float64](metric.Manhattan[float64, float64]{})
//	dist, err := d.OneToOne([]float64{1, 3, 9, 2, 1}, []float64{2, 0, 0, 8, 7, 2})
//	// dist == 9
func (d *DTW[T, U]) OneToOne(x, y []T) (U, error) {
	if err := d.validate(x, y); err != nil {
		return 0, err
	}

	prev := make([]U, len(x))
	curr := make([]U, len(x))
	for r := range y {
		if err := d.fillRow(x, y[r], r, prev, curr); err != nil {
			return 0, err
		}
		prev, curr = curr, prev
	}

	// after the final swap the last row lives in prev
	return prev[len(x)-1], nil
}

// validate checks the preconditions shared by every entry point.
func (d *DTW[T, U]) validate(x, y []T) error {
	if d == nil || d.metric == nil {
		return ErrNilMetric
	}
	if len(x) == 0 {
		return fmt.Errorf("x: %w", ErrEmptyInput)
	}
	if len(y) == 0 {
		return fmt.Errorf("y: %w", ErrEmptyInput)
	}

	return nil
}

// fillRow computes row r of the cost table into curr, reading row r-1 from
// prev. prev is not read when r == 0.
func (d *DTW[T, U]) fillRow(x []T, yr T, r int, prev, curr []U) error {
	for c := range x {
		dist, err := d.metric.Distance(x[c], yr)
		if err != nil {
			return err
		}
		nb := minNeighbor(prev, curr, r, c)
		s := dist + nb
		if overflowed(dist, nb, s) {
			return fmt.Errorf("dtw: cell (%d,%d): %w", c, r, metric.ErrOverflow)
		}
		curr[c] = s
	}

	return nil
}

// overflowed reports whether s = dist + nb left the range of U. Integer sums
// wrap, float sums saturate to ±Inf from finite operands.
func overflowed[U metric.Number](dist, nb, s U) bool {
	half := 0.5
	if U(half) != 0 {
		f := float64(s)
		return math.IsInf(f, 0) && !math.IsInf(float64(dist), 0) && !math.IsInf(float64(nb), 0)
	}

	return (dist > 0 && s < nb) || (dist < 0 && s > nb)
}

// minNeighbor returns the cheapest of the already computed neighbours of
// (r, c): top prev[c], left curr[c-1], top-left prev[c-1]. Only the origin
// has none, and gets the zero value.
func minNeighbor[U metric.Number](prev, curr []U, r, c int) U {
	switch {
	case r == 0 && c == 0:
		return 0
	case r == 0:
		return curr[c-1]
	case c == 0:
		return prev[c]
	}

	return min(prev[c], curr[c-1], prev[c-1])
}
