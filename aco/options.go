package aco

import (
	"fmt"
	"math"
)

// Defaults of the reference configuration (att48-scale instances).
const (
	DefaultAnts       = 48
	DefaultIterations = 50
	DefaultAlpha      = 1.0
	DefaultBeta       = 3.0
	DefaultRho        = 0.5
)

// Options configures a Colony.
type Options struct {
	// Ants is the population size N (> 0). It also scales τ₀ = N / C_nn.
	Ants int

	// Iterations is the number of construct/update rounds I (>= 0).
	Iterations int

	// Alpha is the pheromone exponent (>= 0).
	Alpha float64

	// Beta is the heuristic exponent, heuristic = 1/distance (>= 0).
	Beta float64

	// Rho is the evaporation rate in [0,1).
	Rho float64

	// Seed drives every random draw; 0 selects a fixed default seed.
	Seed int64

	// Workers bounds how many ants build tours concurrently within one iteration.
	// 0 or 1 runs them sequentially.
	Workers int

	// OnIteration, when non-nil, is called after each iteration's pheromone update.
	OnIteration func(IterationStats)
}

// DefaultOptions returns the reference configuration:
// 48 ants, 50 iterations, α=1, β=3, ρ=0.5, seed 0, sequential.
func DefaultOptions() Options {
	return Options{
		Ants:       DefaultAnts,
		Iterations: DefaultIterations,
		Alpha:      DefaultAlpha,
		Beta:       DefaultBeta,
		Rho:        DefaultRho,
		Workers:    1,
	}
}

// Validate checks every field and returns the first violation, wrapped so that
// errors.Is(err, ErrInvalidConfiguration) holds.
//
// Complexity: O(1).
func (o Options) Validate() error {
	if err := validatePopulation(o.Ants); err != nil {
		return err
	}
	if o.Iterations < 0 {
		return fmt.Errorf("iterations=%d: %w", o.Iterations, ErrBadIterations)
	}
	if err := validateExponent("alpha", o.Alpha); err != nil {
		return err
	}
	if err := validateExponent("beta", o.Beta); err != nil {
		return err
	}
	if err := validateRho(o.Rho); err != nil {
		return err
	}
	if o.Workers < 0 {
		return fmt.Errorf("workers=%d: %w", o.Workers, ErrBadWorkers)
	}

	return nil
}

func validatePopulation(ants int) error {
	if ants < 1 {
		return fmt.Errorf("ants=%d: %w", ants, ErrBadPopulation)
	}
	return nil
}

func validateRho(rho float64) error {
	// NaN fails both comparisons, so it is rejected here as well.
	if !(rho >= 0 && rho < 1) {
		return fmt.Errorf("rho=%g: %w", rho, ErrBadRho)
	}
	return nil
}

func validateExponent(name string, v float64) error {
	if !(v >= 0) || math.IsInf(v, 1) {
		return fmt.Errorf("%s=%g: %w", name, v, ErrNegativeExponent)
	}
	return nil
}
