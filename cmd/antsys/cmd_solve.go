package main

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"k8s.io/klog/v2"

	"github.com/katalvlaran/antsys/aco"
	"github.com/katalvlaran/antsys/internal/instance"
)

func newSolveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "solve [instance-file]",
		Short: "Solve a TSP instance with Ant System",
		Long: `Solve a TSP instance read from a YAML, JSON or TSPLIB (.tsp) file,
or a random uniform instance with --random N.

Examples:
  antsys solve att48.tsp
  antsys solve --random 30 --metric manhattan --iterations 200
  antsys solve square.yaml --ants 10 --beta 5 --workers 4 --json`,
		Args: cobra.MaximumNArgs(1),
		RunE: runSolve,
	}

	addSolverFlags(cmd.Flags())
	cmd.Flags().Int("random", 0, "Solve n uniform random points in [0,100)² instead of a file")
	cmd.Flags().Int64("instance-seed", 1, "Seed for --random point sampling")
	cmd.Flags().String("metric", "", "Metric for --random: euclidean, euc_2d, ceil_2d, att, manhattan")
	cmd.Flags().Bool("progress", false, "Print the best distance after every iteration")

	return cmd
}

func runSolve(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	in, err := loadInstance(cmd, args)
	if err != nil {
		return err
	}
	dist, err := in.Distances()
	if err != nil {
		return err
	}

	opts := cfg.Options()
	progress, _ := cmd.Flags().GetBool("progress")
	opts.OnIteration = func(s aco.IterationStats) {
		klog.V(1).Infof("Iteration %d/%d: iteration best %g, best so far %g", s.Iteration, s.Iterations, s.IterationBest, s.BestDistance)
		if progress {
			fmt.Fprintf(cmd.ErrOrStderr(), "Iteration %d/%d: best distance so far %g\n", s.Iteration, s.Iterations, s.BestDistance)
		}
	}

	env, err := aco.NewEnvironment(dist, opts.Rho, opts.Ants)
	if err != nil {
		return errors.Wrapf(err, "instance %q", in.Name)
	}
	colony, err := aco.NewColony(env, opts)
	if err != nil {
		return err
	}
	klog.Infof("Solving %q: n=%d ants=%d iterations=%d alpha=%g beta=%g rho=%g",
		in.Name, env.Len(), opts.Ants, opts.Iterations, opts.Alpha, opts.Beta, opts.Rho)

	started := time.Now()
	best, solveErr := colony.SolveContext(cmd.Context())
	elapsed := time.Since(started)
	if solveErr != nil && !best.Found() {
		return errors.Wrap(solveErr, "solve")
	}
	if solveErr != nil {
		klog.Warningf("Stopped early: %v", solveErr)
	}

	sum := newSummary(in.Name, env, opts, best, colony.History(), elapsed)
	jsonOut, _ := cmd.Flags().GetBool("json")
	if jsonOut {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		if err = enc.Encode(sum); err != nil {
			return err
		}
	} else {
		fmt.Fprintln(cmd.OutOrStdout(), sum.Render())
	}
	return solveErr
}

// loadInstance resolves the instance from the positional file or --random.
func loadInstance(cmd *cobra.Command, args []string) (*instance.Instance, error) {
	n, _ := cmd.Flags().GetInt("random")
	switch {
	case n > 0 && len(args) > 0:
		return nil, errors.New("give either an instance file or --random, not both")
	case n > 0:
		seed, _ := cmd.Flags().GetInt64("instance-seed")
		metric, _ := cmd.Flags().GetString("metric")
		return instance.Random(n, seed, metric)
	case len(args) == 1:
		if cmd.Flags().Changed("metric") {
			return nil, errors.New("--metric applies to --random only; set metric in the instance file")
		}
		return instance.Load(args[0])
	default:
		return nil, errors.New("no instance: give a file or --random N")
	}
}
