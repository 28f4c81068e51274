// SPDX-License-Identifier: MIT

package dataset

import "errors"

var (
	// ErrDecode indicates the input is not a valid sequence document.
	ErrDecode = errors.New("dataset: cannot decode sequences")

	// ErrEmptySet indicates a document without any sequence.
	ErrEmptySet = errors.New("dataset: no sequences")

	// ErrEmptySequence indicates a sequence without values.
	ErrEmptySequence = errors.New("dataset: sequence has no values")

	// ErrBadSampleSize indicates Sample was asked for n <= 0 or more than Len.
	ErrBadSampleSize = errors.New("dataset: invalid sample size")

	// ErrBadValue indicates a value that cannot be parsed as a number.
	ErrBadValue = errors.New("dataset: invalid value")
)
