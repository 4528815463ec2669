// Package aco_test provides lightweight helpers shared across *_test.go files.
package aco_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/antsys/aco"
	"github.com/katalvlaran/antsys/builder"
	"github.com/katalvlaran/antsys/matrix"
)

const (
	// epsTiny is the tolerance for exact arithmetic checks on pheromone updates.
	epsTiny = 1e-12

	// seedDet is a deterministic seed for RNG-based components.
	seedDet = int64(42)
)

// unitSquare returns the 4-node unit square (0,0),(1,0),(1,1),(0,1).
func unitSquare(t testing.TB) *matrix.Dense {
	t.Helper()
	pts := []builder.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}}
	m, err := builder.DistanceMatrix(pts, builder.Euclidean)
	require.NoError(t, err)
	return m
}

// randomInstance returns n uniform points in [0,100)² under the Euclidean metric.
func randomInstance(t testing.TB, n int, seed int64) *matrix.Dense {
	t.Helper()
	pts, err := builder.RandomUniform(n, builder.WithSeed(seed))
	require.NoError(t, err)
	m, err := builder.DistanceMatrix(pts, builder.Euclidean)
	require.NoError(t, err)
	return m
}

// circleInstance returns n points on a circle of radius r.
func circleInstance(t testing.TB, n int, r float64) *matrix.Dense {
	t.Helper()
	pts, err := builder.Circle(n, builder.WithRadius(r))
	require.NoError(t, err)
	m, err := builder.DistanceMatrix(pts, builder.Euclidean)
	require.NoError(t, err)
	return m
}

// newEnv builds an Environment or fails the test.
func newEnv(t testing.TB, dist matrix.Matrix, rho float64, population int) *aco.Environment {
	t.Helper()
	env, err := aco.NewEnvironment(dist, rho, population)
	require.NoError(t, err)
	return env
}

// options returns Options with the given core parameters and seedDet.
func options(ants, iterations int, alpha, beta, rho float64) aco.Options {
	opts := aco.DefaultOptions()
	opts.Ants = ants
	opts.Iterations = iterations
	opts.Alpha = alpha
	opts.Beta = beta
	opts.Rho = rho
	opts.Seed = seedDet
	return opts
}

// pheromones reads the full pheromone matrix as [][]float64.
func pheromones(env *aco.Environment) [][]float64 {
	n := env.Len()
	out := make([][]float64, n)
	for i := 0; i < n; i++ {
		out[i] = make([]float64, n)
		for j := 0; j < n; j++ {
			out[i][j] = env.Pheromone(i, j)
		}
	}
	return out
}

// requireHamiltonian asserts tour is a closed cycle over all n nodes.
func requireHamiltonian(t testing.TB, tour []int, n int) {
	t.Helper()
	require.Len(t, tour, n+1)
	require.Equal(t, tour[0], tour[n], "tour must return to its start")
	seen := make(map[int]bool, n)
	for _, v := range tour[:n] {
		require.GreaterOrEqual(t, v, 0)
		require.Less(t, v, n)
		require.False(t, seen[v], "node %d visited twice in %v", v, tour)
		seen[v] = true
	}
	require.Len(t, seen, n)
}
