package dtw

import "github.com/katalvlaran/warp/metric"

// Name is the identifier DTW reports through Name.
const Name = "dtw"

// DTW is the alignment distance engine.
//
// It wraps exactly one pointwise metric and is immutable after New.
// Every call builds its own cost table, so a *DTW is safe for concurrent
// use whenever the wrapped metric is.
type DTW[T, U metric.Number] struct {
	metric metric.Metric[T, U]
}

// Coord is one step of a warping path: x[X] is aligned with y[Y].
type Coord struct {
	X int
	Y int
}

var _ metric.SequenceMetric[float64, float64] = (*DTW[float64, float64])(nil)

// New returns an engine that uses m as its unit cost.
func New[T, U metric.Number](m metric.Metric[T, U]) *DTW[T, U] {
	return &DTW[T, U]{metric: m}
}

// Name returns "dtw".
func (d *DTW[T, U]) Name() string { return Name }

// IsExpensive always reports true: cost is quadratic in sequence length.
func (d *DTW[T, U]) IsExpensive() bool { return true }

// Metric returns the wrapped pointwise metric.
func (d *DTW[T, U]) Metric() metric.Metric[T, U] { return d.metric }
