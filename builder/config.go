// SPDX-License-Identifier: MIT
// Package: builder
//
// config.go - internal configuration and deterministic defaults.
//
// Design:
//   • builderConfig is the single source of truth for all builder knobs.
//   • newBuilderConfig applies options in-order (later overrides earlier).
//
// Deterministic defaults:
//   • rng     = nil           (RandomUniform requires WithSeed/WithRand)
//   • bounds  = [0,100]×[0,100]
//   • radius  = 1.0
//   • spacing = 1.0

package builder

import "math/rand"

// builderConfig aggregates all knobs used by constructors.
type builderConfig struct {
	rng *rand.Rand

	// Bounding box for RandomUniform.
	minX, minY, maxX, maxY float64

	radius  float64 // Circle radius
	spacing float64 // Grid spacing
}

const (
	defaultMin     = 0.0
	defaultMax     = 100.0
	defaultRadius  = 1.0
	defaultSpacing = 1.0
)

// newBuilderConfig returns defaults with opts applied in order.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		minX:    defaultMin,
		minY:    defaultMin,
		maxX:    defaultMax,
		maxY:    defaultMax,
		radius:  defaultRadius,
		spacing: defaultSpacing,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return cfg
}
