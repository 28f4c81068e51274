// Package metric defines the pointwise distance capability that elastic
// sequence distances are built on, plus a handful of ready-made metrics.
//
// Two contracts live here:
//
//   - Metric[T, U] compares two single elements of type T and returns a
//     distance of type U. It is called once per cell of a cost table, so
//     implementations must be cheap and allocation-free on the happy path.
//   - SequenceMetric[T, U] compares two whole sequences. dtw.DTW is one.
//
// Both expose Name and IsExpensive so that an outer search or clustering
// framework can register and schedule them uniformly.
//
// Built-in metrics take the difference of integer elements exactly in
// uint64 and of floating elements in float64, then convert to U, so narrow
// or unsigned element types (int16, uint8, …) never wrap around and 64-bit
// integers keep full precision:
//
//	manhattan   |a−b|          (aliases: l1, cityblock)
//	euclidean   sqrt((a−b)²)   (alias: l2)
//	sqeuclidean (a−b)²
//	chebyshev   |a−b|          (alias: linf)
//	hamming     0 if a == b, else 1
//
// Lookup by name mirrors the usual registry pattern:
//
//	m, err := metric.FromName[int16, uint8]("euclidean", false)
//
// Errors:
//   - ErrUnknownMetric - FromName got a name that is not registered.
//   - ErrNaNInf        - a floating element is NaN or ±Inf.
//   - ErrOverflow      - the distance does not fit the result type U.
package metric
