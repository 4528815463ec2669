package aco

import (
	"fmt"
	"math"
	"math/rand"
)

// Ant is a tour-construction policy parameterised by (alpha, beta).
// It keeps private, reusable state (visited set, tour buffer, scratch slices)
// that is reset in place at the start of every tour. An Ant never mutates the
// Environment.
//
// An Ant is not safe for concurrent use; distinct ants may run concurrently.
type Ant struct {
	alpha, beta float64
	rng         *rand.Rand

	start    int
	current  int
	visited  []bool
	tour     []int
	traveled float64

	// scratch buffers reused by SelectNext
	cand   []int
	weight []float64
}

// NewAnt returns an ant located at start. A nil rng selects the default
// deterministic stream.
func NewAnt(alpha, beta float64, start int, rng *rand.Rand) *Ant {
	if rng == nil {
		rng = newRand(0)
	}
	return &Ant{
		alpha:   alpha,
		beta:    beta,
		rng:     rng,
		start:   start,
		current: start,
		tour:    []int{start},
	}
}

// Alpha returns the pheromone exponent.
func (a *Ant) Alpha() float64 { return a.alpha }

// Beta returns the heuristic exponent.
func (a *Ant) Beta() float64 { return a.beta }

// Start returns the node the current tour started from.
func (a *Ant) Start() int { return a.start }

// Current returns the node the ant is located at.
func (a *Ant) Current() int { return a.current }

// Traveled returns the distance accumulated by the current tour.
func (a *Ant) Traveled() float64 { return a.traveled }

// Tour returns a copy of the in-progress (or last completed) tour.
func (a *Ant) Tour() []int { return CopyTour(a.tour) }

// Reset relocates the ant to start for a fresh tour over env:
// visited = {start}, tour = [start], traveled = 0, current = start.
//
// Complexity: O(n).
func (a *Ant) Reset(env *Environment, start int) error {
	n := env.Len()
	if start < 0 || start >= n {
		return fmt.Errorf("Reset: start=%d, n=%d: %w", start, n, ErrStartOutOfRange)
	}

	if cap(a.visited) < n {
		a.visited = make([]bool, n)
	} else {
		a.visited = a.visited[:n]
		clear(a.visited)
	}
	if cap(a.tour) < n+1 {
		a.tour = make([]int, 0, n+1)
	}
	a.tour = append(a.tour[:0], start)
	a.visited[start] = true
	a.start = start
	a.current = start
	a.traveled = 0

	return nil
}

// SelectNext picks the node to move to from current by the random proportional rule.
//
// Candidates are the nodes j (ascending) with !visited[j] and j != current; when
// there are none it returns (-1, false). Each candidate scores
// τ(current,j)^alpha · (1/d(current,j))^beta:
//   - a zero distance means an infinite heuristic, so the first such candidate
//     is returned at once; an infinite score is handled the same way;
//   - NaN scores count as 0;
//   - if every score is 0 the choice is uniform among the candidates.
//
// Otherwise a single draw r ∈ [0,1) walks the cumulative distribution and returns
// the first positive-score candidate whose cumulative probability reaches r; if
// rounding leaves r uncovered the last positive-score candidate is returned.
//
// Complexity: O(n).
func (a *Ant) SelectNext(env *Environment, current int, visited []bool) (int, bool) {
	var (
		n     = env.Len()
		total float64
		d, w  float64
		j     int
	)
	a.cand = a.cand[:0]
	a.weight = a.weight[:0]

	for j = 0; j < n; j++ {
		if j == current || (j < len(visited) && visited[j]) {
			continue
		}
		d = env.Distance(current, j)
		if d <= 0 {
			return j, true
		}
		w = math.Pow(env.Pheromone(current, j), a.alpha) * math.Pow(1/d, a.beta)
		if math.IsInf(w, 1) {
			return j, true
		}
		if math.IsNaN(w) {
			w = 0
		}
		a.cand = append(a.cand, j)
		a.weight = append(a.weight, w)
		total += w
	}

	if len(a.cand) == 0 {
		return -1, false
	}
	if math.IsInf(total, 1) {
		total = a.rescaleWeights()
	}
	if !(total > 0) {
		return a.cand[a.rng.Intn(len(a.cand))], true
	}

	var (
		r    = a.rng.Float64()
		cum  float64
		last = -1
		k    int
	)
	for k = range a.cand {
		if a.weight[k] <= 0 {
			continue
		}
		last = a.cand[k]
		cum += a.weight[k] / total
		if cum >= r {
			return last, true
		}
	}

	return last, true
}

// rescaleWeights divides the scratch weights by their maximum and returns the new
// total. Used only when the raw sum overflowed to +Inf.
func (a *Ant) rescaleWeights() float64 {
	var (
		hi, total float64
		k         int
	)
	for k = range a.weight {
		if a.weight[k] > hi {
			hi = a.weight[k]
		}
	}
	for k = range a.weight {
		a.weight[k] /= hi
		total += a.weight[k]
	}
	return total
}

// moveTo appends next to the tour and accounts for the traveled edge.
func (a *Ant) moveTo(env *Environment, next int) {
	a.traveled += env.Distance(a.current, next)
	a.visited[next] = true
	a.tour = append(a.tour, next)
	a.current = next
}

// RunTour resets the ant to start and builds a complete closed tour over env.
// It returns a fresh copy of the tour (len n+1, tour[0] == tour[n] == start)
// and its total distance, closing edge included. For n == 1 the tour is
// [start, start] with distance 0.
//
// If no candidate remains before every node was visited, RunTour returns
// ErrPrematureTermination instead of a truncated tour.
//
// Complexity: O(n²).
func (a *Ant) RunTour(env *Environment, start int) ([]int, float64, error) {
	if err := a.Reset(env, start); err != nil {
		return nil, 0, fmt.Errorf("RunTour: %w", err)
	}

	var (
		n    = env.Len()
		next int
		ok   bool
	)
	for len(a.tour) < n {
		next, ok = a.SelectNext(env, a.current, a.visited)
		if !ok {
			return nil, 0, fmt.Errorf("RunTour: %d of %d nodes visited: %w", len(a.tour), n, ErrPrematureTermination)
		}
		a.moveTo(env, next)
	}

	a.traveled += env.Distance(a.current, a.start)
	a.tour = append(a.tour, a.start)
	a.current = a.start

	return CopyTour(a.tour), a.traveled, nil
}
