// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Provide a single, canonical source of truth for common validation checks.
//   - Return sentinel errors tagged with the validator name; callers use errors.Is.
//
// Determinism & Performance:
//   - All checks are pure, deterministic and allocate nothing.
//   - Symmetry checks run O(n²) on the upper triangle only.

package matrix

import (
	"fmt"
	"math"
)

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil.
//
// Complexity: O(1).
func ValidateNotNil(m Matrix) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}
	if d, ok := m.(*Dense); ok && d == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSquare checks that m is non-nil, non-empty and square (Rows == Cols).
//
// Complexity: O(1).
func ValidateSquare(m Matrix) error {
	if err := ValidateNotNil(m); err != nil {
		return err
	}
	if m.Rows() <= 0 {
		return validatorErrorf("ValidateSquare", ErrInvalidDimensions)
	}
	if m.Rows() != m.Cols() {
		return validatorErrorf("ValidateSquare", ErrNonSquare)
	}

	return nil
}

// ValidateSymmetric checks |A[i,j] − A[j,i]| ≤ tol for all i<j.
// A negative tol is used by absolute value; NaN/Inf tol yields ErrNaNInf.
//
// Complexity: O(n²) time, O(1) space.
func ValidateSymmetric(m Matrix, tol float64) error {
	if err := ValidateSquare(m); err != nil {
		return err
	}
	if math.IsNaN(tol) || math.IsInf(tol, 0) {
		return validatorErrorf("ValidateSymmetric", ErrNaNInf)
	}
	tol = math.Abs(tol)

	var (
		n        = m.Rows()
		i, j     int
		aij, aji float64
	)
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			aij, _ = m.At(i, j) // At is O(1); errors are not expected after shape validation
			aji, _ = m.At(j, i)
			if math.Abs(aij-aji) > tol {
				return validatorErrorf(fmt.Sprintf("ValidateSymmetric(%d,%d)", i, j), ErrAsymmetry)
			}
		}
	}

	return nil
}

// ValidateDistance enforces the symmetric distance-matrix contract and returns its order n:
//   - square, n ≥ 1;
//   - every entry finite (NaN/±Inf rejected);
//   - diagonal |a_ii| ≤ tol;
//   - no negative entries;
//   - symmetric within tol.
//
// Complexity: O(n²).
func ValidateDistance(m Matrix, tol float64) (int, error) {
	if err := ValidateSquare(m); err != nil {
		return 0, err
	}

	var (
		n    = m.Rows()
		i, j int
		v    float64
		err  error
	)
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if v, err = m.At(i, j); err != nil {
				return 0, err
			}
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return 0, validatorErrorf(fmt.Sprintf("ValidateDistance(%d,%d)", i, j), ErrNaNInf)
			}
			if i == j && math.Abs(v) > tol {
				return 0, validatorErrorf(fmt.Sprintf("ValidateDistance(%d,%d)", i, j), ErrNonZeroDiagonal)
			}
			if i != j && v < 0 {
				return 0, validatorErrorf(fmt.Sprintf("ValidateDistance(%d,%d)", i, j), ErrNegativeEntry)
			}
		}
	}
	if err = ValidateSymmetric(m, tol); err != nil {
		return 0, err
	}

	return n, nil
}
