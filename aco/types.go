package aco

import (
	"errors"
	"fmt"
	"math"
)

// symTol is the structural tolerance for symmetry/diagonal checks of distance matrices.
const symTol = 1e-12

// ErrInvalidConfiguration is the parent of every construction-time validation error.
var ErrInvalidConfiguration = errors.New("aco: invalid configuration")

// Specific configuration errors; each satisfies errors.Is(err, ErrInvalidConfiguration).
var (
	// ErrBadRho signals an evaporation rate outside [0,1).
	ErrBadRho = fmt.Errorf("%w: rho must be in [0,1)", ErrInvalidConfiguration)

	// ErrNegativeExponent signals alpha or beta that is negative or not finite.
	ErrNegativeExponent = fmt.Errorf("%w: alpha and beta must be finite and >= 0", ErrInvalidConfiguration)

	// ErrBadPopulation signals an ant population below 1.
	ErrBadPopulation = fmt.Errorf("%w: ant population must be > 0", ErrInvalidConfiguration)

	// ErrBadIterations signals a negative iteration count.
	ErrBadIterations = fmt.Errorf("%w: iterations must be >= 0", ErrInvalidConfiguration)

	// ErrBadWorkers signals a negative worker count.
	ErrBadWorkers = fmt.Errorf("%w: workers must be >= 0", ErrInvalidConfiguration)

	// ErrMalformedMatrix signals a distance matrix that is nil, non-square, asymmetric,
	// negative, non-finite or has a non-zero diagonal. The matrix sentinel is wrapped too.
	ErrMalformedMatrix = fmt.Errorf("%w: malformed distance matrix", ErrInvalidConfiguration)

	// ErrColonyMismatch signals Options that disagree with the Environment they drive
	// (ant population or rho), or a nil Environment.
	ErrColonyMismatch = fmt.Errorf("%w: options do not match environment", ErrInvalidConfiguration)
)

var (
	// ErrStartOutOfRange is returned when a start node is not in [0, n).
	ErrStartOutOfRange = errors.New("aco: start node out of range")

	// ErrInvalidTour is returned when a tour is not a closed Hamiltonian cycle over [0, n).
	ErrInvalidTour = errors.New("aco: invalid tour")

	// ErrPrematureTermination is returned when tour construction ran out of candidates
	// before every node was visited. It signals an internal invariant violation.
	ErrPrematureTermination = errors.New("aco: tour construction terminated before visiting all nodes")
)

// Result holds the outcome of a colony run.
type Result struct {
	// Tour is the best closed tour found: len(Tour) == n+1 and Tour[0] == Tour[n].
	// It is nil when no tour was produced (zero iterations).
	Tour []int

	// Distance is the total length of Tour, +Inf when Tour is nil.
	Distance float64
}

// Found reports whether the result carries an actual tour.
func (r Result) Found() bool {
	return r.Tour != nil && !math.IsInf(r.Distance, 1)
}

// noResult is the (none, +Inf) running best before any tour was produced.
func noResult() Result {
	return Result{Tour: nil, Distance: math.Inf(1)}
}

// IterationStats is passed to Options.OnIteration after every completed iteration.
type IterationStats struct {
	// Iteration is the 1-based index of the iteration that just finished.
	Iteration int
	// Iterations is the total number of iterations of the current Solve call.
	Iterations int
	// IterationBest is the shortest tour length produced in this iteration.
	IterationBest float64
	// BestDistance is the running best after this iteration.
	BestDistance float64
	// Improved reports whether this iteration replaced the running best.
	Improved bool
}
