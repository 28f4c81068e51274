// SPDX-License-Identifier: MIT

package metric

import (
	"fmt"
	"strings"
)

// aliases maps every accepted spelling to its canonical name.
var aliases = map[string]string{
	NameManhattan:   NameManhattan,
	"l1":            NameManhattan,
	"cityblock":     NameManhattan,
	NameEuclidean:   NameEuclidean,
	"l2":            NameEuclidean,
	NameSqEuclidean: NameSqEuclidean,
	NameChebyshev:   NameChebyshev,
	"linf":          NameChebyshev,
	NameHamming:     NameHamming,
}

// Names returns the canonical names of the built-in metrics, sorted.
func Names() []string {
	return []string{NameChebyshev, NameEuclidean, NameHamming, NameManhattan, NameSqEuclidean}
}

// FromName returns the built-in metric registered under name.
// Lookup is case-insensitive and accepts aliases ("l1", "l2", "linf", …).
// expensive is reported back by IsExpensive and has no other effect.
func FromName[T, U Number](name string, expensive bool) (Metric[T, U], error) {
	switch aliases[strings.ToLower(strings.TrimSpace(name))] {
	case NameManhattan:
		return Manhattan[T, U]{Expensive: expensive}, nil
	case NameEuclidean:
		return Euclidean[T, U]{Expensive: expensive}, nil
	case NameSqEuclidean:
		return SqEuclidean[T, U]{Expensive: expensive}, nil
	case NameChebyshev:
		return Chebyshev[T, U]{Expensive: expensive}, nil
	case NameHamming:
		return Hamming[T, U]{Expensive: expensive}, nil
	}

	return nil, fmt.Errorf("%q: %w", name, ErrUnknownMetric)
}
