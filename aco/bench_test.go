package aco_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/katalvlaran/antsys/aco"
)

func BenchmarkRunTour(b *testing.B) {
	for _, n := range []int{16, 48, 128} {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			env := newEnv(b, randomInstance(b, n, 1), 0.5, 48)
			ant := aco.NewAnt(1, 3, 0, rand.New(rand.NewSource(1)))
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				if _, _, err := ant.RunTour(env, i%n); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkUpdatePheromones(b *testing.B) {
	const n = 48
	env := newEnv(b, randomInstance(b, n, 1), 0.5, 48)
	rng := rand.New(rand.NewSource(1))
	batch := make([][]int, 48)
	for k := range batch {
		perm := rng.Perm(n)
		batch[k] = append(perm, perm[0])
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := env.UpdatePheromones(batch); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkSolve(b *testing.B) {
	dist := randomInstance(b, 48, 1)
	for _, workers := range []int{1, 4} {
		b.Run(fmt.Sprintf("workers=%d", workers), func(b *testing.B) {
			opts := aco.DefaultOptions()
			opts.Iterations = 5
			opts.Workers = workers
			for i := 0; i < b.N; i++ {
				if _, err := aco.Solve(dist, opts); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
