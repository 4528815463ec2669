package aco

import (
	"context"
	"fmt"
	"math"
	"math/rand"

	"golang.org/x/sync/errgroup"
)

// Colony runs a population of ants over an Environment for a fixed number of
// iterations and keeps the best tour found.
//
// The running best starts as (nil, +Inf) and is replaced only when a tour is
// strictly shorter, so BestDistance never increases. Ants are created once and
// reset in place each iteration.
type Colony struct {
	env  *Environment
	opts Options
	rng  *rand.Rand
	ants []*Ant

	best    Result
	history []float64

	// per-iteration batch buffers, reused across iterations
	starts []int
	tours  [][]int
	dists  []float64
}

// NewColony creates opts.Ants ants with independent random starts and RNG streams.
//
// Contracts:
//   - env is non-nil and was built for the same population and rho as opts
//     (ErrColonyMismatch otherwise).
//   - opts passes Options.Validate.
//
// Complexity: O(N) plus O(n) per ant on the first tour.
func NewColony(env *Environment, opts Options) (*Colony, error) {
	if env == nil {
		return nil, fmt.Errorf("NewColony: nil environment: %w", ErrColonyMismatch)
	}
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("NewColony: %w", err)
	}
	if opts.Ants != env.Population() {
		return nil, fmt.Errorf("NewColony: ants=%d, environment population=%d: %w", opts.Ants, env.Population(), ErrColonyMismatch)
	}
	if opts.Rho != env.Rho() {
		return nil, fmt.Errorf("NewColony: rho=%g, environment rho=%g: %w", opts.Rho, env.Rho(), ErrColonyMismatch)
	}

	c := &Colony{
		env:    env,
		opts:   opts,
		rng:    newRand(opts.Seed),
		ants:   make([]*Ant, opts.Ants),
		best:   noResult(),
		starts: make([]int, opts.Ants),
		tours:  make([][]int, opts.Ants),
		dists:  make([]float64, opts.Ants),
	}

	var i int
	for i = range c.ants {
		c.ants[i] = NewAnt(opts.Alpha, opts.Beta, c.rng.Intn(env.Len()), antRand(c.rng, i))
	}

	return c, nil
}

// Environment returns the environment driven by the colony.
func (c *Colony) Environment() *Environment { return c.env }

// Ants returns the colony's ants. They are owned by the colony.
func (c *Colony) Ants() []*Ant { return c.ants }

// Best returns the running best; Tour is a copy.
func (c *Colony) Best() Result {
	return Result{Tour: CopyTour(c.best.Tour), Distance: c.best.Distance}
}

// History returns the running best distance after each completed iteration.
func (c *Colony) History() []float64 {
	return append([]float64(nil), c.history...)
}

// Solve runs opts.Iterations iterations and returns the best tour found so far.
// With zero iterations (and no earlier run) it returns (nil, +Inf) and no error;
// check Result.Found.
func (c *Colony) Solve() (Result, error) {
	return c.SolveContext(context.Background())
}

// SolveContext is Solve with cancellation checked between iterations. On
// cancellation it returns the best result so far together with ctx.Err().
//
// Each iteration:
//
//  1. draws a uniform start per ant from the colony RNG and runs RunTour;
//  2. collects the full batch of tours;
//  3. replaces the running best on strictly shorter tours, in ant order;
//  4. calls Environment.UpdatePheromones once with the whole batch.
//
// Repeated calls continue from the current pheromones and running best.
//
// Complexity: O(I · N · n²).
func (c *Colony) SolveContext(ctx context.Context) (Result, error) {
	var (
		it       int
		k        int
		iterBest float64
		improved bool
		err      error
	)
	for it = 0; it < c.opts.Iterations; it++ {
		if err = ctx.Err(); err != nil {
			return c.Best(), err
		}

		for k = range c.starts {
			c.starts[k] = c.rng.Intn(c.env.Len())
		}
		if err = c.runAnts(); err != nil {
			return c.Best(), err
		}

		iterBest, improved = math.Inf(1), false
		for k = range c.tours {
			if c.dists[k] < iterBest {
				iterBest = c.dists[k]
			}
			if c.dists[k] < c.best.Distance {
				c.best = Result{Tour: CopyTour(c.tours[k]), Distance: c.dists[k]}
				improved = true
			}
		}

		if err = c.env.UpdatePheromones(c.tours); err != nil {
			return c.Best(), err
		}
		c.history = append(c.history, c.best.Distance)

		if c.opts.OnIteration != nil {
			c.opts.OnIteration(IterationStats{
				Iteration:     it + 1,
				Iterations:    c.opts.Iterations,
				IterationBest: iterBest,
				BestDistance:  c.best.Distance,
				Improved:      improved,
			})
		}
	}

	return c.Best(), nil
}

// runAnts builds one tour per ant into c.tours/c.dists. With Workers > 1 the
// tours are built on a bounded errgroup; Wait is the barrier that keeps the
// following pheromone update out of any concurrent read.
func (c *Colony) runAnts() error {
	if c.opts.Workers <= 1 {
		var (
			k   int
			err error
		)
		for k = range c.ants {
			if c.tours[k], c.dists[k], err = c.ants[k].RunTour(c.env, c.starts[k]); err != nil {
				return fmt.Errorf("ant %d: %w", k, err)
			}
		}
		return nil
	}

	var wg errgroup.Group
	wg.SetLimit(c.opts.Workers)
	for k := range c.ants {
		wg.Go(func() error {
			tour, dist, err := c.ants[k].RunTour(c.env, c.starts[k])
			if err != nil {
				return fmt.Errorf("ant %d: %w", k, err)
			}
			c.tours[k], c.dists[k] = tour, dist
			return nil
		})
	}
	return wg.Wait()
}
