// Package aco solves the symmetric Travelling Salesman Problem approximately
// with Ant System.
//
// The solver is three components composed in a fixed per-iteration pipeline:
//
//   - Environment - owns the distance matrix and the pheromone matrix over the
//     same node set {0..n-1}. Pheromones start at τ₀ = ants / C_nn, where C_nn is
//     the length of a deterministic nearest-neighbour tour from node 0.
//     UpdatePheromones evaporates every edge by (1−ρ), then every tour of the batch
//     deposits 1/L on each edge it uses.
//
//   - Ant - a policy parameterised by (α, β). SelectNext draws the next node by
//     roulette wheel over τ^α·(1/d)^β; RunTour builds a closed tour of length n+1.
//
//   - Colony - runs N ants for I iterations. Every iteration each ant is re-homed
//     to a fresh random start, all tours are collected, the best tour so far is
//     replaced on strict improvement, and the Environment is updated once with the
//     whole batch.
//
// Quick start:
//
//	opts := aco.DefaultOptions()
//	opts.Seed = 42
//	res, err := aco.Solve(dist, opts) // dist is any matrix.Matrix
//	if err == nil && res.Found() {
//		fmt.Println(res.Tour, res.Distance)
//	}
//
// Determinism: the colony RNG is seeded from Options.Seed (0 selects a fixed
// default) and every ant owns an independent stream derived from it, so results
// are reproducible and do not depend on Options.Workers.
//
// Concurrency: with Options.Workers > 1 the ants of one iteration build their
// tours in parallel; the pheromone update runs only after all of them finished.
// A Colony itself is not safe for concurrent use.
//
// Errors are sentinels declared in types.go; use errors.Is.
package aco
