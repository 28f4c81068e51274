// SPDX-License-Identifier: MIT

package metric

import "golang.org/x/exp/constraints"

// Number is the set of element and result types a metric may work with.
type Number interface {
	constraints.Integer | constraints.Float
}

// Metric compares two single elements.
//
// Distance must be deterministic and return a non-negative value for every
// pair it will be called with. Symmetry is not required.
type Metric[T, U Number] interface {
	// Name returns a short identifier, e.g. "manhattan".
	Name() string

	// Distance returns the distance between a and b.
	Distance(a, b T) (U, error)

	// IsExpensive reports whether a single call is costly. Informational only.
	IsExpensive() bool
}

// SequenceMetric compares two whole sequences. This is the surface exposed
// to nearest-neighbour and clustering frameworks that dispatch many pairs.
type SequenceMetric[T, U Number] interface {
	Name() string
	OneToOne(x, y []T) (U, error)
	IsExpensive() bool
}
