// SPDX-License-Identifier: MIT

package metric

import "errors"

// Every message is prefixed with "metric:". Implementations wrap these with
// the metric name via %w; callers match with errors.Is.
var (
	// ErrUnknownMetric is returned by FromName for an unregistered name.
	ErrUnknownMetric = errors.New("metric: unknown metric name")

	// ErrNaNInf indicates a NaN or ±Inf element where a finite value is required.
	ErrNaNInf = errors.New("metric: NaN or Inf element")

	// ErrOverflow indicates a distance that cannot be represented in the result type.
	ErrOverflow = errors.New("metric: distance overflows result type")
)
