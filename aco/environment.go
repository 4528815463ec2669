package aco

import (
	"fmt"
	"math"

	"github.com/katalvlaran/antsys/matrix"
)

// Environment owns the frozen distance matrix and the mutable pheromone matrix
// over nodes {0..n-1}. Pheromone entries change only in UpdatePheromones and stay
// ≥ 0 for all time, since every update multiplies by (1−ρ) ∈ (0,1] and adds
// non-negative deposits.
//
// Reads (Distance, Pheromone) are safe from many goroutines as long as no
// UpdatePheromones call runs concurrently.
type Environment struct {
	n          int
	rho        float64
	population int

	dist *matrix.Dense // symmetric, zero diagonal, immutable after construction
	tau  *matrix.Dense // symmetric, zero diagonal

	tau0     float64
	nnTour   []int
	nnLength float64
}

// NewEnvironment validates dist, rho and population, copies dist into private
// storage and initialises every edge's pheromone to τ₀ = population / C_nn.
//
// Contracts:
//   - dist is square with n ≥ 1, finite, non-negative, zero diagonal and symmetric
//     within 1e-12; otherwise the error wraps ErrMalformedMatrix and the matrix sentinel.
//   - rho ∈ [0,1) (ErrBadRho); population ≥ 1 (ErrBadPopulation).
//
// Complexity: O(n²) time and memory.
func NewEnvironment(dist matrix.Matrix, rho float64, population int) (*Environment, error) {
	if err := validateRho(rho); err != nil {
		return nil, fmt.Errorf("NewEnvironment: %w", err)
	}
	if err := validatePopulation(population); err != nil {
		return nil, fmt.Errorf("NewEnvironment: %w", err)
	}

	n, err := matrix.ValidateDistance(dist, symTol)
	if err != nil {
		return nil, fmt.Errorf("NewEnvironment: %w: %w", ErrMalformedMatrix, err)
	}
	d, err := matrix.DenseOf(dist)
	if err != nil {
		return nil, fmt.Errorf("NewEnvironment: %w: %w", ErrMalformedMatrix, err)
	}
	tau, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, fmt.Errorf("NewEnvironment: %w", err)
	}

	e := &Environment{
		n:          n,
		rho:        rho,
		population: population,
		dist:       d,
		tau:        tau,
	}
	e.initializePheromones()

	return e, nil
}

// initializePheromones computes C_nn once and sets every off-diagonal entry to τ₀.
// When C_nn is 0 (single node or all-zero distances) it is treated as 1.
func (e *Environment) initializePheromones() {
	e.nnTour, e.nnLength = e.nearestNeighborTour(0)

	c := e.nnLength
	if c <= 0 {
		c = 1
	}
	e.tau0 = float64(e.population) / c

	var i, j int
	for i = 0; i < e.n; i++ {
		for j = 0; j < e.n; j++ {
			if i != j {
				_ = e.tau.Set(i, j, e.tau0) // in range by construction
			}
		}
	}
}

// nearestNeighborTour walks greedily from start to the closest unvisited node,
// breaking ties by the lowest index, and closes the loop.
//
// Complexity: O(n²).
func (e *Environment) nearestNeighborTour(start int) ([]int, float64) {
	var (
		visited = make([]bool, e.n)
		tour    = make([]int, 0, e.n+1)
		current = start
		length  float64
		best    int
		bestD   float64
		d       float64
		step, j int
	)
	visited[start] = true
	tour = append(tour, start)

	for step = 1; step < e.n; step++ {
		best, bestD = -1, math.Inf(1)
		for j = 0; j < e.n; j++ {
			if visited[j] {
				continue
			}
			// Strict < keeps the lowest index among equal distances.
			if d = e.Distance(current, j); d < bestD {
				best, bestD = j, d
			}
		}
		visited[best] = true
		tour = append(tour, best)
		length += bestD
		current = best
	}
	length += e.Distance(current, start)
	tour = append(tour, start)

	return tour, length
}

// Len returns the number of nodes n.
func (e *Environment) Len() int { return e.n }

// Rho returns the evaporation rate.
func (e *Environment) Rho() float64 { return e.rho }

// Population returns the ant population the pheromone scale was calibrated for.
func (e *Environment) Population() int { return e.population }

// Tau0 returns the initial pheromone level population / C_nn.
func (e *Environment) Tau0() float64 { return e.tau0 }

// NearestNeighborLength returns C_nn.
func (e *Environment) NearestNeighborLength() float64 { return e.nnLength }

// NearestNeighborTour returns a copy of the greedy tour used to compute C_nn.
func (e *Environment) NearestNeighborTour() []int { return CopyTour(e.nnTour) }

// Distance returns the distance between a and b; 0 when a == b.
// a and b must be in [0, n).
//
// Complexity: O(1).
func (e *Environment) Distance(a, b int) float64 {
	if a == b {
		return 0
	}
	v, _ := e.dist.At(a, b) // nodes are valid by construction
	return v
}

// Pheromone returns the pheromone on the edge {a, b}.
//
// Complexity: O(1).
func (e *Environment) Pheromone(a, b int) float64 {
	v, _ := e.tau.At(a, b)
	return v
}

// PheromoneMatrix returns an independent snapshot of the pheromone matrix.
//
// Complexity: O(n²).
func (e *Environment) PheromoneMatrix() *matrix.Dense {
	snap, _ := matrix.DenseOf(e.tau)
	return snap
}

// TourLength returns the sum of consecutive edge distances of tour. For a closed
// tour this includes the edge back to the start.
//
// Complexity: O(len(tour)).
func (e *Environment) TourLength(tour []int) float64 {
	var (
		sum float64
		i   int
	)
	for i = 0; i+1 < len(tour); i++ {
		sum += e.Distance(tour[i], tour[i+1])
	}
	return sum
}

// UpdatePheromones applies the Ant System global update for one iteration:
//
//  1. Evaporation: τ ← (1−ρ)·τ on every edge.
//  2. Deposit: every tour of length L > 0 adds 1/L to each edge it traverses,
//     closing edge included. Contributions of different tours add up.
//
// Evaporation always precedes deposit. Every tour is validated before any entry
// changes; an invalid tour yields ErrInvalidTour and leaves the matrix untouched.
// An empty batch only evaporates.
//
// Complexity: O(n² + Σ|tour|).
func (e *Environment) UpdatePheromones(tours [][]int) error {
	var (
		k   int
		err error
	)
	for k = range tours {
		if err = ValidateTour(tours[k], e.n); err != nil {
			return fmt.Errorf("UpdatePheromones: tour %d: %w", k, err)
		}
	}

	e.tau.Scale(1 - e.rho)

	var (
		length float64
		delta  float64
		a, b   int
		i      int
	)
	for k = range tours {
		length = e.TourLength(tours[k])
		if !(length > 0) {
			continue
		}
		delta = 1 / length
		for i = 0; i+1 < len(tours[k]); i++ {
			a, b = tours[k][i], tours[k][i+1]
			if a == b {
				continue
			}
			_ = e.tau.AddAt(a, b, delta)
			_ = e.tau.AddAt(b, a, delta)
		}
	}

	return nil
}
