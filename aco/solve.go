// solve.go: one-call entry points.
//
// Solve and SolveContext validate Options, build the Environment (calibrated
// for opts.Ants and opts.Rho) and a Colony, then run it to completion.

package aco

import (
	"context"
	"fmt"

	"github.com/katalvlaran/antsys/matrix"
)

// Solve runs Ant System on dist with opts.
//
// Errors: ErrInvalidConfiguration family for bad options or matrices,
// ErrPrematureTermination for internal construction failures.
//
// Complexity: O(n²) setup + O(I · N · n²).
func Solve(dist matrix.Matrix, opts Options) (Result, error) {
	return SolveContext(context.Background(), dist, opts)
}

// SolveContext is Solve with cancellation checked between iterations.
func SolveContext(ctx context.Context, dist matrix.Matrix, opts Options) (Result, error) {
	if err := opts.Validate(); err != nil {
		return noResult(), fmt.Errorf("Solve: %w", err)
	}
	env, err := NewEnvironment(dist, opts.Rho, opts.Ants)
	if err != nil {
		return noResult(), err
	}
	colony, err := NewColony(env, opts)
	if err != nil {
		return noResult(), err
	}

	return colony.SolveContext(ctx)
}
