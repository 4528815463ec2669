// SPDX-License-Identifier: MIT
// Package: builder
//
// metric.go - point-to-point distance functions.
//
// All metrics are symmetric and return 0 for identical points.
// Rounded metrics follow the TSPLIB conventions (nint(x) = int(x+0.5)).

package builder

import (
	"math"
	"strings"
)

// Metric computes the distance between two points.
type Metric func(a, b Point) float64

// Euclidean returns √(dx²+dy²).
func Euclidean(a, b Point) float64 {
	return math.Hypot(a.X-b.X, a.Y-b.Y)
}

// RoundedEuclidean is TSPLIB EUC_2D: Euclidean rounded to the nearest integer.
func RoundedEuclidean(a, b Point) float64 {
	return nint(Euclidean(a, b))
}

// CeilEuclidean is TSPLIB CEIL_2D: Euclidean rounded up.
func CeilEuclidean(a, b Point) float64 {
	return math.Ceil(Euclidean(a, b))
}

// PseudoEuclidean is TSPLIB ATT: r = √((dx²+dy²)/10), rounded up when nint(r) < r.
func PseudoEuclidean(a, b Point) float64 {
	var (
		dx = a.X - b.X
		dy = a.Y - b.Y
		r  = math.Sqrt((dx*dx + dy*dy) / 10.0)
		t  = nint(r)
	)
	if t < r {
		return t + 1
	}

	return t
}

// Manhattan returns |dx|+|dy|.
func Manhattan(a, b Point) float64 {
	return math.Abs(a.X-b.X) + math.Abs(a.Y-b.Y)
}

func nint(x float64) float64 {
	return math.Floor(x + 0.5)
}

// metricNames maps accepted names (case-insensitive) to metrics.
var metricNames = map[string]Metric{
	"euclidean": Euclidean,
	"euc_2d":    RoundedEuclidean,
	"ceil_2d":   CeilEuclidean,
	"att":       PseudoEuclidean,
	"manhattan": Manhattan,
	"man_2d":    Manhattan,
}

// ParseMetric resolves a metric by name. The empty name selects Euclidean.
// Returns ErrUnknownMetric for unknown names.
func ParseMetric(name string) (Metric, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	if key == "" {
		return Euclidean, nil
	}
	m, ok := metricNames[key]
	if !ok {
		return nil, builderErrorf("ParseMetric", ErrUnknownMetric, "%q", name)
	}

	return m, nil
}
