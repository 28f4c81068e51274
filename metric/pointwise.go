// SPDX-License-Identifier: MIT

package metric

import (
	"fmt"
	"math"
	"math/bits"
)

// Canonical names of the built-in metrics.
const (
	NameManhattan   = "manhattan"
	NameEuclidean   = "euclidean"
	NameSqEuclidean = "sqeuclidean"
	NameChebyshev   = "chebyshev"
	NameHamming     = "hamming"
)

// Manhattan is the L1 distance |a−b|.
// The zero value is ready to use; Expensive only changes IsExpensive.
type Manhattan[T, U Number] struct {
	Expensive bool
}

func (Manhattan[T, U]) Name() string        { return NameManhattan }
func (m Manhattan[T, U]) IsExpensive() bool { return m.Expensive }

// Distance returns |a−b| converted to U.
func (Manhattan[T, U]) Distance(a, b T) (U, error) {
	return absDelta[T, U](NameManhattan, a, b)
}

// Euclidean is the L2 distance. On single elements sqrt((a−b)²) is |a−b|, so
// no square is formed and large or tiny differences keep their magnitude.
type Euclidean[T, U Number] struct {
	Expensive bool
}

func (Euclidean[T, U]) Name() string        { return NameEuclidean }
func (m Euclidean[T, U]) IsExpensive() bool { return m.Expensive }

// Distance returns sqrt((a−b)²) = |a−b| converted to U.
func (Euclidean[T, U]) Distance(a, b T) (U, error) {
	return absDelta[T, U](NameEuclidean, a, b)
}

// SqEuclidean is the squared L2 distance (a−b)².
type SqEuclidean[T, U Number] struct {
	Expensive bool
}

func (SqEuclidean[T, U]) Name() string        { return NameSqEuclidean }
func (m SqEuclidean[T, U]) IsExpensive() bool { return m.Expensive }

// Distance returns (a−b)² converted to U.
func (SqEuclidean[T, U]) Distance(a, b T) (U, error) {
	if isFloat[T]() {
		d, err := delta(NameSqEuclidean, a, b)
		if err != nil {
			return 0, err
		}

		return toResult[U](NameSqEuclidean, d*d)
	}

	m := magnitude(a, b)
	hi, lo := bits.Mul64(m, m)
	if hi != 0 {
		return 0, fmt.Errorf("%s: %w", NameSqEuclidean, ErrOverflow)
	}

	return fromUint[U](NameSqEuclidean, lo)
}

// Chebyshev is the L∞ distance; on single elements it is |a−b|.
type Chebyshev[T, U Number] struct {
	Expensive bool
}

func (Chebyshev[T, U]) Name() string        { return NameChebyshev }
func (m Chebyshev[T, U]) IsExpensive() bool { return m.Expensive }

func (Chebyshev[T, U]) Distance(a, b T) (U, error) {
	return absDelta[T, U](NameChebyshev, a, b)
}

// Hamming is 0 for equal elements and 1 otherwise.
type Hamming[T, U Number] struct {
	Expensive bool
}

func (Hamming[T, U]) Name() string        { return NameHamming }
func (m Hamming[T, U]) IsExpensive() bool { return m.Expensive }

func (Hamming[T, U]) Distance(a, b T) (U, error) {
	if isFloat[T]() {
		if _, err := delta(NameHamming, a, b); err != nil {
			return 0, err
		}
	}
	if a == b {
		return 0, nil
	}

	return 1, nil
}

// absDelta returns |a−b| as U. Integer elements take an exact path, floats
// are checked for NaN/Inf and computed in float64.
func absDelta[T, U Number](name string, a, b T) (U, error) {
	if !isFloat[T]() {
		return fromUint[U](name, magnitude(a, b))
	}
	d, err := delta(name, a, b)
	if err != nil {
		return 0, err
	}

	return toResult[U](name, math.Abs(d))
}

// delta returns a−b in float64, rejecting NaN/Inf inputs.
func delta[T Number](name string, a, b T) (float64, error) {
	fa, fb := float64(a), float64(b)
	if math.IsNaN(fa) || math.IsInf(fa, 0) || math.IsNaN(fb) || math.IsInf(fb, 0) {
		return 0, fmt.Errorf("%s: %w", name, ErrNaNInf)
	}

	return fa - fb, nil
}

// magnitude returns |a−b| for integer T without rounding or wrapping.
// Any two 64-bit integers differ by less than 2⁶⁴, so the unsigned
// difference of the larger minus the smaller is exact.
func magnitude[T Number](a, b T) uint64 {
	if a < b {
		a, b = b, a
	}
	if isSigned[T]() {
		return uint64(int64(a)) - uint64(int64(b))
	}

	return uint64(a) - uint64(b)
}

// fromUint converts an exact unsigned distance into U.
func fromUint[U Number](name string, m uint64) (U, error) {
	if isFloat[U]() {
		return toResult[U](name, float64(m))
	}
	r := U(m)
	if r < 0 || uint64(r) != m {
		return 0, fmt.Errorf("%s: %w", name, ErrOverflow)
	}

	return r, nil
}

// toResult converts a non-negative float64 distance into U.
//
// Integer U: the value must survive the round trip after truncation.
// Float U:   a finite value must stay finite (float32 can overflow to +Inf).
func toResult[U Number](name string, v float64) (U, error) {
	r := U(v)
	back := float64(r)
	if isFloat[U]() {
		if math.IsInf(back, 0) {
			return 0, fmt.Errorf("%s: %w", name, ErrOverflow)
		}

		return r, nil
	}
	if back != math.Trunc(v) {
		return 0, fmt.Errorf("%s: %w", name, ErrOverflow)
	}

	return r, nil
}

// isFloat reports whether U is a floating-point type.
func isFloat[U Number]() bool {
	half := 0.5

	return U(half) != 0
}

// isSigned reports whether an integer type T is signed.
func isSigned[T Number]() bool {
	var zero T

	return zero-1 < zero
}
