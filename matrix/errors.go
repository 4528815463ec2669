// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// Every algorithm returns these sentinels (optionally wrapped with %w) and tests
// check them via errors.Is. No public function panics on user input.

package matrix

import "errors"

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrNilMatrix indicates that a nil Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrRaggedRows signals that a [][]float64 source has rows of different length.
	ErrRaggedRows = errors.New("matrix: ragged rows")

	// ErrAsymmetry signals that a matrix expected to be symmetric violated symmetry
	// within the given tolerance.
	ErrAsymmetry = errors.New("matrix: matrix is not symmetric within tolerance")

	// ErrNonZeroDiagonal signals a diagonal entry that is not ~0.
	ErrNonZeroDiagonal = errors.New("matrix: diagonal not zero within tolerance")

	// ErrNegativeEntry signals a negative value where only non-negative ones are allowed.
	ErrNegativeEntry = errors.New("matrix: negative entry")

	// ErrNaNInf signals a NaN or ±Inf value where finite values are required.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")
)

// ErrIndexOutOfBounds is the historical name of ErrOutOfRange.
var ErrIndexOutOfBounds = ErrOutOfRange // Deprecated: use ErrOutOfRange.
