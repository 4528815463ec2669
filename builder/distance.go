// SPDX-License-Identifier: MIT
// Package: builder
//
// distance.go - DistanceMatrix constructor.
//
// Contract:
//   • len(points) ≥ 1 (else ErrTooFewPoints).
//   • Coordinates must be finite (else ErrInvalidPoint).
//   • The metric is evaluated once per unordered pair {i,j}, i<j, and mirrored,
//     so the result is exactly symmetric with a zero diagonal.
//
// Complexity:
//   • Time: O(n²) metric evaluations / 2.
//   • Space: O(n²) for the matrix.

package builder

import (
	"math"

	"github.com/katalvlaran/antsys/matrix"
)

const methodDistanceMatrix = "DistanceMatrix"

// DistanceMatrix builds the symmetric n×n matrix of metric(points[i], points[j]).
// A nil metric selects Euclidean.
func DistanceMatrix(points []Point, metric Metric) (*matrix.Dense, error) {
	n := len(points)
	if n < minPoints {
		return nil, builderErrorf(methodDistanceMatrix, ErrTooFewPoints, "n=%d < min=%d", n, minPoints)
	}
	if metric == nil {
		metric = Euclidean
	}

	var i, j int
	for i = 0; i < n; i++ {
		if !finite(points[i].X) || !finite(points[i].Y) {
			return nil, builderErrorf(methodDistanceMatrix, ErrInvalidPoint, "point %d = (%g,%g)", i, points[i].X, points[i].Y)
		}
	}

	m, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, err
	}

	var d float64
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			d = metric(points[i], points[j])
			_ = m.Set(i, j, d) // indices are in range by construction
			_ = m.Set(j, i, d)
		}
	}

	return m, nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
