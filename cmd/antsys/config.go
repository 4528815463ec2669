package main

import (
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/katalvlaran/antsys/aco"
	"github.com/katalvlaran/antsys/internal/config"
)

// addSolverFlags registers the solver parameters shared by solve and serve.
// Defaults are the reference configuration; explicitly set flags win over the
// config file.
func addSolverFlags(fs *pflag.FlagSet) {
	fs.Int("ants", aco.DefaultAnts, "Number of ants")
	fs.Int("iterations", aco.DefaultIterations, "Number of iterations")
	fs.Float64("alpha", aco.DefaultAlpha, "Pheromone influence")
	fs.Float64("beta", aco.DefaultBeta, "Distance influence")
	fs.Float64("rho", aco.DefaultRho, "Evaporation rate in [0,1)")
	fs.Int64("seed", 0, "Colony RNG seed (0 selects the default stream)")
	fs.Int("workers", 1, "Ants building tours concurrently (1 is sequential)")
}

// loadConfig reads --config and overlays the solver flags the user set.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}

	fs := cmd.Flags()
	if fs.Changed("ants") {
		cfg.Solver.Ants, _ = fs.GetInt("ants")
	}
	if fs.Changed("iterations") {
		cfg.Solver.Iterations, _ = fs.GetInt("iterations")
	}
	if fs.Changed("alpha") {
		cfg.Solver.Alpha, _ = fs.GetFloat64("alpha")
	}
	if fs.Changed("beta") {
		cfg.Solver.Beta, _ = fs.GetFloat64("beta")
	}
	if fs.Changed("rho") {
		cfg.Solver.Rho, _ = fs.GetFloat64("rho")
	}
	if fs.Changed("seed") {
		cfg.Solver.Seed, _ = fs.GetInt64("seed")
	}
	if fs.Changed("workers") {
		cfg.Solver.Workers, _ = fs.GetInt("workers")
	}

	if err = cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid configuration")
	}
	return cfg, nil
}
