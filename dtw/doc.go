// Package dtw computes Dynamic Time Warping (DTW) distances between numeric
// sequences on top of any pointwise metric from package metric.
//
// 🚀 What is DTW?
//
//	DTW finds the best match between two sequences by warping the time
//	axis to minimize cumulative distance.  It’s widely used in:
//	  • Speech recognition & audio alignment
//	  • Radio-signal and sensor trace comparison
//	  • Gesture / motion matching
//	  • Time-series clustering & nearest-neighbour search
//
// ✨ Key features:
//   - generic: DTW[T, U] compares []T and returns U (e.g. int16 → uint8)
//   - pluggable unit cost: any metric.Metric[T, U] (manhattan, sqeuclidean, yours)
//   - OneToOne keeps two rows only: O(len(x)) memory
//   - CostMatrix / Align keep the full table and recover the warping path
//   - stateless: one engine may be shared by many goroutines
//
// ⚙️ Usage:
//
//	import (
//	  "github.com/katalvlaran/warp/dtw"
//	  "github.com/katalvlaran/warp/metric"
//	)
//
//	d := dtw.New[float64, float64](metric.Manhattan[float64, float64]{})
//	dist, err := d.OneToOne(x, y)
//	if errors.Is(err, dtw.ErrEmptyInput) {
//	  // one of the sequences had no elements
//	}
//
// Performance:
//
//   - Time:   O(N·M) pointwise-metric calls
//   - Memory: O(N) for OneToOne, O(N·M) for CostMatrix and Align
//
// The engine has no window constraint, slope penalty or early abandoning:
// every cell of the table is computed.
package dtw
