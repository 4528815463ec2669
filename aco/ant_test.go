package aco_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/antsys/aco"
	"github.com/katalvlaran/antsys/matrix"
)

// denseOf is a short-hand for literal distance matrices in tests.
func denseOf(t *testing.T, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFrom(rows)
	require.NoError(t, err)
	return m
}

// uniformMatrix returns an n×n distance matrix with every off-diagonal entry equal to d.
func uniformMatrix(t *testing.T, n int, d float64) *matrix.Dense {
	t.Helper()
	rows := make([][]float64, n)
	for i := range rows {
		rows[i] = make([]float64, n)
		for j := range rows[i] {
			if i != j {
				rows[i][j] = d
			}
		}
	}
	return denseOf(t, rows)
}

func TestAnt_RunTourIsHamiltonian(t *testing.T) {
	for _, n := range []int{2, 3, 7, 20} {
		env := newEnv(t, randomInstance(t, n, int64(n)), 0.5, 3)
		ant := aco.NewAnt(1, 3, 0, rand.New(rand.NewSource(seedDet)))

		for start := 0; start < n; start++ {
			tour, dist, err := ant.RunTour(env, start)
			require.NoError(t, err)
			requireHamiltonian(t, tour, n)
			require.Equal(t, start, tour[0])
			require.InDelta(t, env.TourLength(tour), dist, 1e-9)
			require.InDelta(t, dist, ant.Traveled(), 1e-9)
			require.Equal(t, start, ant.Current(), "ant ends back at its start")
		}
	}
}

func TestAnt_RunTourSingleNode(t *testing.T) {
	env := newEnv(t, denseOf(t, [][]float64{{0}}), 0.5, 1)
	ant := aco.NewAnt(1, 2, 0, nil)

	tour, dist, err := ant.RunTour(env, 0)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 0}, tour)
	assert.Zero(t, dist)
}

func TestAnt_RunTourStartOutOfRange(t *testing.T) {
	env := newEnv(t, unitSquare(t), 0.5, 4)
	ant := aco.NewAnt(1, 2, 0, nil)

	for _, start := range []int{-1, 4} {
		tour, dist, err := ant.RunTour(env, start)
		require.ErrorIs(t, err, aco.ErrStartOutOfRange)
		require.Nil(t, tour)
		require.Zero(t, dist)
	}
}

func TestAnt_ResetAndAccessors(t *testing.T) {
	env := newEnv(t, unitSquare(t), 0.5, 4)
	ant := aco.NewAnt(1.5, 2.5, 3, rand.New(rand.NewSource(1)))

	assert.Equal(t, 1.5, ant.Alpha())
	assert.Equal(t, 2.5, ant.Beta())
	assert.Equal(t, 3, ant.Start())
	assert.Equal(t, []int{3}, ant.Tour())

	tour, _, err := ant.RunTour(env, 1)
	require.NoError(t, err)
	tour[1] = 99
	assert.NotEqual(t, 99, ant.Tour()[1], "RunTour must return a copy")

	require.NoError(t, ant.Reset(env, 2))
	assert.Equal(t, 2, ant.Start())
	assert.Equal(t, 2, ant.Current())
	assert.Equal(t, []int{2}, ant.Tour())
	assert.Zero(t, ant.Traveled())

	require.ErrorIs(t, ant.Reset(env, 17), aco.ErrStartOutOfRange)
}

func TestAnt_SameSeedSameTour(t *testing.T) {
	env := newEnv(t, randomInstance(t, 15, 2), 0.5, 2)
	a := aco.NewAnt(1, 3, 0, rand.New(rand.NewSource(9)))
	b := aco.NewAnt(1, 3, 0, rand.New(rand.NewSource(9)))

	for start := 0; start < 5; start++ {
		ta, da, err := a.RunTour(env, start)
		require.NoError(t, err)
		tb, db, err := b.RunTour(env, start)
		require.NoError(t, err)
		require.Equal(t, ta, tb)
		require.Equal(t, da, db)
	}
}

func TestSelectNext_NoCandidates(t *testing.T) {
	env := newEnv(t, unitSquare(t), 0.5, 4)
	ant := aco.NewAnt(1, 2, 0, nil)

	next, ok := ant.SelectNext(env, 0, []bool{true, true, true, true})
	assert.False(t, ok)
	assert.Equal(t, -1, next)

	// current is never a candidate even if unmarked.
	next, ok = ant.SelectNext(env, 2, []bool{true, true, false, true})
	assert.False(t, ok)
	assert.Equal(t, -1, next)
}

func TestSelectNext_ZeroDistanceWinsImmediately(t *testing.T) {
	env := newEnv(t, denseOf(t, [][]float64{
		{0, 1, 0},
		{1, 0, 1},
		{0, 1, 0},
	}), 0.5, 2)
	ant := aco.NewAnt(1, 2, 0, rand.New(rand.NewSource(3)))

	for i := 0; i < 100; i++ {
		next, ok := ant.SelectNext(env, 0, []bool{true, false, false})
		require.True(t, ok)
		require.Equal(t, 2, next)
	}
}

func TestSelectNext_InfiniteScoreWinsImmediately(t *testing.T) {
	// (1/1e-200)^2 overflows to +Inf.
	env := newEnv(t, uniformMatrix(t, 3, 1e-200), 0.5, 2)
	ant := aco.NewAnt(0, 2, 0, rand.New(rand.NewSource(3)))

	for i := 0; i < 100; i++ {
		next, ok := ant.SelectNext(env, 0, []bool{true, false, false})
		require.True(t, ok)
		require.Equal(t, 1, next, "lowest-index infinite candidate")
	}
}

// frequencies draws SelectNext from node 0 (visited = {0}) and returns per-node shares.
func frequencies(t *testing.T, env *aco.Environment, ant *aco.Ant, draws int) []float64 {
	t.Helper()
	n := env.Len()
	visited := make([]bool, n)
	visited[0] = true

	counts := make([]float64, n)
	for i := 0; i < draws; i++ {
		next, ok := ant.SelectNext(env, 0, visited)
		require.True(t, ok)
		require.NotEqual(t, 0, next)
		counts[next]++
	}
	for i := range counts {
		counts[i] /= float64(draws)
	}
	return counts
}

func TestSelectNext_ProportionalToScore(t *testing.T) {
	// alpha = 0, beta = 1: scores are 1/d = 1 and 0.5.
	env := newEnv(t, denseOf(t, [][]float64{
		{0, 1, 2},
		{1, 0, 2},
		{2, 2, 0},
	}), 0.5, 3)
	ant := aco.NewAnt(0, 1, 0, rand.New(rand.NewSource(seedDet)))

	freq := frequencies(t, env, ant, 30000)
	assert.InDelta(t, 2.0/3, freq[1], 0.02)
	assert.InDelta(t, 1.0/3, freq[2], 0.02)
}

func TestSelectNext_ZeroExponentsAreUniform(t *testing.T) {
	env := newEnv(t, randomInstance(t, 5, 8), 0.5, 3)
	ant := aco.NewAnt(0, 0, 0, rand.New(rand.NewSource(seedDet)))

	freq := frequencies(t, env, ant, 40000)
	for j := 1; j < 5; j++ {
		assert.InDelta(t, 0.25, freq[j], 0.02, "node %d", j)
	}
}

func TestSelectNext_AllScoresUnderflowIsUniform(t *testing.T) {
	// (1/1e10)^100 underflows to 0 for every candidate.
	env := newEnv(t, uniformMatrix(t, 4, 1e10), 0.5, 1)
	ant := aco.NewAnt(1, 100, 0, rand.New(rand.NewSource(seedDet)))

	freq := frequencies(t, env, ant, 30000)
	for j := 1; j < 4; j++ {
		assert.InDelta(t, 1.0/3, freq[j], 0.03, "node %d", j)
	}
}

func TestSelectNext_OverflowingTotalIsRescaled(t *testing.T) {
	// Each score is about 1e308, their sum overflows to +Inf.
	env := newEnv(t, uniformMatrix(t, 4, 1e-154), 0.5, 1)
	ant := aco.NewAnt(0, 2, 0, rand.New(rand.NewSource(seedDet)))

	freq := frequencies(t, env, ant, 30000)
	for j := 1; j < 4; j++ {
		assert.InDelta(t, 1.0/3, freq[j], 0.03, "node %d", j)
	}
}
