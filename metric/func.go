// SPDX-License-Identifier: MIT

package metric

// funcMetric adapts a plain function to Metric.
type funcMetric[T, U Number] struct {
	name      string
	expensive bool
	fn        func(a, b T) (U, error)
}

// NewFunc wraps fn as a Metric named name.
// Panics if fn is nil: that is a programming error, not a runtime condition.
func NewFunc[T, U Number](name string, expensive bool, fn func(a, b T) (U, error)) Metric[T, U] {
	if fn == nil {
		panic("metric: NewFunc called with nil fn")
	}

	return funcMetric[T, U]{name: name, expensive: expensive, fn: fn}
}

func (f funcMetric[T, U]) Name() string               { return f.name }
func (f funcMetric[T, U]) IsExpensive() bool          { return f.expensive }
func (f funcMetric[T, U]) Distance(a, b T) (U, error) { return f.fn(a, b) }
