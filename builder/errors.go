// SPDX-License-Identifier: MIT
// Package: builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables (package-level) are exposed.
//   • Callers use errors.Is(err, ErrX) to branch on semantics.
//   • Implementations attach context with %w via builderErrorf.

package builder

import (
	"errors"
	"fmt"
)

// ErrTooFewPoints indicates that a size parameter (n, rows, cols) is below the minimum.
var ErrTooFewPoints = errors.New("builder: parameter too small")

// ErrNeedRandSource indicates that a stochastic constructor requires a *rand.Rand
// (set WithSeed or WithRand).
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrUnknownMetric indicates that a metric name could not be resolved.
var ErrUnknownMetric = errors.New("builder: unknown metric")

// ErrInvalidPoint indicates a point with NaN or infinite coordinates.
var ErrInvalidPoint = errors.New("builder: invalid point coordinates")

// builderErrorf prefixes a sentinel with the constructor name, preserving errors.Is.
func builderErrorf(method string, err error, format string, args ...any) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), err)
}
