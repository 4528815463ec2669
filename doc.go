// Package antsys solves the symmetric travelling salesman problem with
// Ant System, a population-based metaheuristic.
//
// What is inside:
//
//	matrix/          dense float64 matrices and distance-matrix validators
//	builder/         point sets (random, circle, grid) and metrics (EUC_2D, ATT, ...)
//	aco/             the solver: Environment, Ant, Colony, Solve
//	internal/        config files, instance loaders (YAML, JSON, TSPLIB), HTTP server
//	cmd/antsys/      command-line front end: solve, serve, version
//
// Quick start:
//
//	pts, _ := builder.RandomUniform(30, builder.WithSeed(1))
//	dist, _ := builder.DistanceMatrix(pts, builder.Euclidean)
//	res, err := aco.Solve(dist, aco.DefaultOptions())
//
// Algorithms never log and never read global randomness; every run is
// reproducible from Options.Seed, for any Options.Workers.
package antsys
