// Package dataset delivers labelled one-dimensional sequences to sequence
// metrics such as dtw.DTW.
//
// Sequences are read from YAML:
//
//	sequences:
//	  - label: qpsk-0
//	    values: [0.12, -0.40, 0.33]
//	  - label: ook-3
//	    values: [1, 0, 0, 1]
//
// Sets can be subsampled reproducibly: the same seed always selects the same
// sequences, in their original order.
package dataset
