// SPDX-License-Identifier: MIT
// Package: builder
//
// options.go - functional options for the builder package.
//
// Contract:
//   • Options are functional (type BuilderOption func(*builderConfig)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Constructors themselves never panic.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.

package builder

import (
	"fmt"
	"math"
	"math/rand"
)

// BuilderOption customizes a constructor by mutating builderConfig before use.
type BuilderOption func(*builderConfig)

// WithRand provides an explicit RNG for stochastic constructors.
// Panics on nil; prefer WithSeed for reproducible runs.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed (deterministic).
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithBounds sets the sampling box [minX,maxX)×[minY,maxY) for RandomUniform.
// Panics when the box is empty or not finite.
func WithBounds(minX, minY, maxX, maxY float64) BuilderOption {
	for _, v := range []float64{minX, minY, maxX, maxY} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			panic("builder: WithBounds requires finite coordinates")
		}
	}
	if maxX <= minX || maxY <= minY {
		panic(fmt.Sprintf("builder: WithBounds empty box [%g,%g)x[%g,%g)", minX, maxX, minY, maxY))
	}
	return func(c *builderConfig) {
		c.minX, c.minY, c.maxX, c.maxY = minX, minY, maxX, maxY
	}
}

// WithRadius sets the Circle radius. Panics unless r > 0 and finite.
func WithRadius(r float64) BuilderOption {
	if !(r > 0) || math.IsInf(r, 0) {
		panic(fmt.Sprintf("builder: WithRadius(%g) must be > 0", r))
	}
	return func(c *builderConfig) {
		c.radius = r
	}
}

// WithSpacing sets the Grid spacing. Panics unless s > 0 and finite.
func WithSpacing(s float64) BuilderOption {
	if !(s > 0) || math.IsInf(s, 0) {
		panic(fmt.Sprintf("builder: WithSpacing(%g) must be > 0", s))
	}
	return func(c *builderConfig) {
		c.spacing = s
	}
}
