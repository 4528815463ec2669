// SPDX-License-Identifier: MIT
// Package: builder
//
// points.go - point-set constructors.
//
// Determinism:
//   • Circle and Grid are pure functions of their parameters.
//   • RandomUniform draws x then y per point from the configured RNG.

package builder

import "math"

const (
	methodRandomUniform = "RandomUniform"
	methodCircle        = "Circle"
	methodGrid          = "Grid"

	minPoints  = 1
	minGridDim = 1
)

// Point is a location in the plane.
type Point struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
}

// RandomUniform samples n points uniformly inside the configured bounds.
// Requires an RNG (WithSeed or WithRand); returns ErrNeedRandSource otherwise.
//
// Complexity: O(n).
func RandomUniform(n int, opts ...BuilderOption) ([]Point, error) {
	if n < minPoints {
		return nil, builderErrorf(methodRandomUniform, ErrTooFewPoints, "n=%d < min=%d", n, minPoints)
	}
	cfg := newBuilderConfig(opts...)
	if cfg.rng == nil {
		return nil, builderErrorf(methodRandomUniform, ErrNeedRandSource, "n=%d", n)
	}

	var (
		pts = make([]Point, n)
		w   = cfg.maxX - cfg.minX
		h   = cfg.maxY - cfg.minY
		i   int
	)
	for i = 0; i < n; i++ {
		pts[i].X = cfg.minX + cfg.rng.Float64()*w
		pts[i].Y = cfg.minY + cfg.rng.Float64()*h
	}

	return pts, nil
}

// Circle places n points evenly on a circle of the configured radius, centred at
// the origin, in counter-clockwise order starting at angle 0.
// For n≥3 the optimal tour is the polygon boundary with length 2·n·r·sin(π/n).
//
// Complexity: O(n).
func Circle(n int, opts ...BuilderOption) ([]Point, error) {
	if n < minPoints {
		return nil, builderErrorf(methodCircle, ErrTooFewPoints, "n=%d < min=%d", n, minPoints)
	}
	cfg := newBuilderConfig(opts...)

	var (
		pts  = make([]Point, n)
		step = 2 * math.Pi / float64(n)
		i    int
	)
	for i = 0; i < n; i++ {
		pts[i].X = cfg.radius * math.Cos(step*float64(i))
		pts[i].Y = cfg.radius * math.Sin(step*float64(i))
	}

	return pts, nil
}

// Grid returns a rows×cols lattice in row-major order with the configured spacing.
//
// Complexity: O(rows*cols).
func Grid(rows, cols int, opts ...BuilderOption) ([]Point, error) {
	if rows < minGridDim || cols < minGridDim {
		return nil, builderErrorf(methodGrid, ErrTooFewPoints, "rows=%d cols=%d", rows, cols)
	}
	cfg := newBuilderConfig(opts...)

	var (
		pts  = make([]Point, 0, rows*cols)
		r, c int
	)
	for r = 0; r < rows; r++ {
		for c = 0; c < cols; c++ {
			pts = append(pts, Point{X: float64(c) * cfg.spacing, Y: float64(r) * cfg.spacing})
		}
	}

	return pts, nil
}
