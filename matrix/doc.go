// SPDX-License-Identifier: MIT

// Package matrix provides the frozen-shape numeric storage used by the solvers.
//
// The package offers:
//
//   - Matrix, a minimal interface (Rows/Cols/At/Set/Clone) accepted by every
//     solver entry point so callers can plug their own storage.
//   - Dense, a row-major implementation with in-place Fill, Scale, AddAt and Do.
//   - Validators (ValidateSquare, ValidateSymmetric, ValidateDistance) that encode
//     the distance-matrix contract in one place.
//
// Errors are package-level sentinels (see errors.go); public accessors never panic.
//
// Complexity quicksheet:
//   - NewDense: O(r*c); At/Set/AddAt: O(1); Clone/Fill/Scale/Do: O(r*c).
package matrix
