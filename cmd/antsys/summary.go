package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/katalvlaran/antsys/aco"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Background(lipgloss.Color("13")).
			Foreground(lipgloss.Color("0")).
			Padding(0, 1)
	labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Width(14)
	valueStyle = lipgloss.NewStyle().Bold(true)
	boxStyle   = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("13")).
			Padding(0, 1)
)

// summary is the result report of `antsys solve`, printed as text or JSON.
type summary struct {
	Name            string    `json:"name"`
	Nodes           int       `json:"nodes"`
	Ants            int       `json:"ants"`
	Iterations      int       `json:"iterations"`
	Alpha           float64   `json:"alpha"`
	Beta            float64   `json:"beta"`
	Rho             float64   `json:"rho"`
	Seed            int64     `json:"seed"`
	Found           bool      `json:"found"`
	Tour            []int     `json:"tour"`
	Distance        *float64  `json:"distance"`
	NearestNeighbor float64   `json:"nearest_neighbor"`
	History         []float64 `json:"history"`
	ElapsedMS       int64     `json:"elapsed_ms"`
}

// newSummary reports best with the tour rotated to start at node 0.
func newSummary(name string, env *aco.Environment, opts aco.Options, best aco.Result, history []float64, elapsed time.Duration) summary {
	s := summary{
		Name:            name,
		Nodes:           env.Len(),
		Ants:            opts.Ants,
		Iterations:      opts.Iterations,
		Alpha:           opts.Alpha,
		Beta:            opts.Beta,
		Rho:             opts.Rho,
		Seed:            opts.Seed,
		Found:           best.Found(),
		NearestNeighbor: env.NearestNeighborLength(),
		History:         history,
		ElapsedMS:       elapsed.Milliseconds(),
	}
	if best.Found() {
		s.Tour = best.Tour
		if rotated, err := aco.RotateTourToStart(best.Tour, 0); err == nil {
			s.Tour = rotated
		}
		d := best.Distance
		s.Distance = &d
	}
	return s
}

// Render formats the summary for a terminal.
func (s summary) Render() string {
	row := func(label, value string) string {
		return lipgloss.JoinHorizontal(lipgloss.Top, labelStyle.Render(label), valueStyle.Render(value))
	}

	rows := []string{
		titleStyle.Render(fmt.Sprintf("Ant System: %s", s.Name)),
		"",
		row("Nodes", fmt.Sprintf("%d", s.Nodes)),
		row("Parameters", fmt.Sprintf("ants=%d iterations=%d α=%g β=%g ρ=%g seed=%d",
			s.Ants, s.Iterations, s.Alpha, s.Beta, s.Rho, s.Seed)),
	}
	if !s.Found {
		rows = append(rows, row("Result", "no tour (zero iterations)"))
		return boxStyle.Render(strings.Join(rows, "\n"))
	}

	gap := ""
	if s.NearestNeighbor > 0 {
		gap = fmt.Sprintf(" (%+.2f%% vs nearest neighbour %g)", 100*(*s.Distance-s.NearestNeighbor)/s.NearestNeighbor, s.NearestNeighbor)
	}
	rows = append(rows,
		row("Distance", fmt.Sprintf("%g%s", *s.Distance, gap)),
		row("Elapsed", (time.Duration(s.ElapsedMS)*time.Millisecond).String()),
		row("Tour", aco.TourString(s.Tour)),
	)
	return boxStyle.Render(strings.Join(rows, "\n"))
}
