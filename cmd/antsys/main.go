package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"k8s.io/klog/v2"
)

// Set by -ldflags at release time.
var (
	version = "0.1.0-dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := newRootCmd().ExecuteContext(ctx)
	stop()
	klog.Flush()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "antsys",
		Short: "Ant System solver for the symmetric travelling salesman problem",
		Long: `antsys solves symmetric TSP instances with the Ant System metaheuristic.

Instances come from YAML, JSON or TSPLIB files, or are sampled at random.
Solver parameters come from flags, optionally layered over a YAML config file.`,
		SilenceUsage: true,
	}

	// Global flags
	rootCmd.PersistentFlags().String("config", "", "Path to a YAML configuration file")
	rootCmd.PersistentFlags().Bool("json", false, "Output as JSON")

	// klog flags (-v, --logtostderr, ...) live next to ours.
	klogFlags := flag.NewFlagSet("klog", flag.ContinueOnError)
	klog.InitFlags(klogFlags)
	rootCmd.PersistentFlags().AddGoFlagSet(klogFlags)

	rootCmd.AddCommand(
		newSolveCmd(),
		newServeCmd(),
		newVersionCmd(),
	)
	return rootCmd
}
