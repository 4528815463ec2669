// SPDX-License-Identifier: MIT

// Package builder turns point sets into symmetric distance matrices for the solvers.
//
// The package offers the following key components:
//
//   - Point generators:
//     – RandomUniform:  n points sampled uniformly inside the configured bounds.
//     – Circle:         n points evenly spaced on a circle (known optimal tour).
//     – Grid:           rows×cols lattice points.
//   - Metrics (Metric implementations):
//     – Euclidean:        plain √(dx²+dy²).
//     – RoundedEuclidean: TSPLIB EUC_2D, nearest integer.
//     – CeilEuclidean:    TSPLIB CEIL_2D, rounded up.
//     – PseudoEuclidean:  TSPLIB ATT, the metric of the att48 instance.
//     – Manhattan:        |dx|+|dy|.
//   - DistanceMatrix: builds a *matrix.Dense (zero diagonal, symmetric) from points.
//   - Functional options: WithSeed, WithRand, WithBounds, WithRadius, WithSpacing.
//
// Guarantees:
//
//   - Determinism: identical options and seed ⇒ identical points.
//   - Option constructors panic on meaningless inputs; constructors return sentinels.
//   - Documented complexity per constructor.
//
// Example:
//
//	pts, _ := builder.Circle(12, builder.WithRadius(10))
//	dist, _ := builder.DistanceMatrix(pts, builder.Euclidean)
package builder
