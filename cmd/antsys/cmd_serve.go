package main

import (
	"github.com/spf13/cobra"
	"k8s.io/klog/v2"

	"github.com/katalvlaran/antsys/internal/config"
	"github.com/katalvlaran/antsys/internal/server"
)

func newServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the solver over HTTP",
		Long: `Serve the solver over HTTP until interrupted.

Routes:
  POST /api/solve   {"instance": {...}, "options": {...}} -> tour and distance
  GET  /api/health  liveness probe

Solver flags set the defaults for requests that omit options. Requests over
--max-nodes, --max-ants or --max-iterations are refused with 413.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("addr") {
				cfg.Server.Addr, _ = cmd.Flags().GetString("addr")
			}
			if cmd.Flags().Changed("max-nodes") {
				cfg.Server.MaxNodes, _ = cmd.Flags().GetInt("max-nodes")
			}
			if cmd.Flags().Changed("max-ants") {
				cfg.Server.MaxAnts, _ = cmd.Flags().GetInt("max-ants")
			}
			if cmd.Flags().Changed("max-iterations") {
				cfg.Server.MaxIterations, _ = cmd.Flags().GetInt("max-iterations")
			}
			if err = cfg.Validate(); err != nil {
				return err
			}

			klog.Infof("Solver defaults: ants=%d iterations=%d alpha=%g beta=%g rho=%g workers=%d",
				cfg.Solver.Ants, cfg.Solver.Iterations, cfg.Solver.Alpha, cfg.Solver.Beta, cfg.Solver.Rho, cfg.Solver.Workers)
			router := server.NewRouter(server.NewSolveHandler(cfg))
			return server.ListenAndServe(cmd.Context(), cfg.Server.Addr, router)
		},
	}

	addSolverFlags(cmd.Flags())
	cmd.Flags().String("addr", config.DefaultAddr, "Listen address")
	cmd.Flags().Int("max-nodes", config.DefaultMaxNodes, "Largest instance accepted (0 disables the limit)")
	cmd.Flags().Int("max-ants", config.DefaultMaxAnts, "Largest ant population a request may ask for (0 disables the limit)")
	cmd.Flags().Int("max-iterations", config.DefaultMaxIterations, "Most iterations a request may ask for (0 disables the limit)")

	return cmd
}
