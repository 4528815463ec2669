// tour.go: closed-tour utilities.
//
// A tour over n nodes is a closed sequence of length n+1:
//
//	tour[0] == tour[n], and tour[0..n-1] is a permutation of {0..n-1}.
//
// Helpers here operate on tour structure only; lengths are computed by
// Environment.TourLength.

package aco

import (
	"fmt"
	"strconv"
	"strings"
)

// ValidateTour enforces the closed Hamiltonian-cycle invariants over n nodes.
// Returns an error wrapping ErrInvalidTour, or nil.
//
// Complexity: O(n) time, O(n) space.
func ValidateTour(tour []int, n int) error {
	if n <= 0 {
		return fmt.Errorf("n=%d: %w", n, ErrInvalidTour)
	}
	if len(tour) != n+1 {
		return fmt.Errorf("len=%d, want %d: %w", len(tour), n+1, ErrInvalidTour)
	}
	if tour[0] != tour[n] {
		return fmt.Errorf("not closed (%d != %d): %w", tour[0], tour[n], ErrInvalidTour)
	}

	seen := make([]bool, n)

	var (
		i int
		v int
	)
	for i = 0; i < n; i++ {
		v = tour[i]
		if v < 0 || v >= n {
			return fmt.Errorf("node %d at %d out of range: %w", v, i, ErrInvalidTour)
		}
		if seen[v] {
			return fmt.Errorf("node %d repeated at %d: %w", v, i, ErrInvalidTour)
		}
		seen[v] = true
	}

	return nil
}

// CopyTour returns an independent copy of the input tour slice.
//
// Complexity: O(n).
func CopyTour(tour []int) []int {
	if tour == nil {
		return nil
	}
	out := make([]int, len(tour))
	copy(out, tour)
	return out
}

// RotateTourToStart returns a fresh closed tour with the same cyclic order that
// starts and ends at start. The input must be a closed tour.
//
// Complexity: O(n).
func RotateTourToStart(tour []int, start int) ([]int, error) {
	if len(tour) < 2 || tour[0] != tour[len(tour)-1] {
		return nil, fmt.Errorf("RotateTourToStart: %w", ErrInvalidTour)
	}
	var (
		n     = len(tour) - 1
		pivot = -1
		i     int
	)
	for i = 0; i < n; i++ {
		if tour[i] == start {
			pivot = i
			break
		}
	}
	if pivot == -1 {
		return nil, fmt.Errorf("RotateTourToStart: start=%d: %w", start, ErrStartOutOfRange)
	}

	out := make([]int, n+1)
	for i = 0; i < n; i++ {
		out[i] = tour[(pivot+i)%n]
	}
	out[n] = start

	return out, nil
}

// TourString returns a compact printable form, e.g. "0 → 3 → 1 → 2 → 0".
func TourString(tour []int) string {
	parts := make([]string, len(tour))
	for i, v := range tour {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, " → ")
}
