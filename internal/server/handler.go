// Package server exposes the solver over HTTP:
//
//	POST /api/solve   solve an instance, JSON in and out
//	GET  /api/health  liveness probe
package server

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/pkg/errors"
	"k8s.io/klog/v2"

	"github.com/katalvlaran/antsys/aco"
	"github.com/katalvlaran/antsys/internal/config"
	"github.com/katalvlaran/antsys/internal/instance"
)

// maxBodyBytes caps request bodies.
const maxBodyBytes = 8 << 20

// SolveRequest is the body of POST /api/solve. Options fields left out keep
// the server's configured defaults.
type SolveRequest struct {
	Instance instance.Instance `json:"instance"`
	Options  *SolveOptions     `json:"options,omitempty"`
}

// SolveOptions overrides solver parameters per request.
type SolveOptions struct {
	Ants       *int     `json:"ants,omitempty"`
	Iterations *int     `json:"iterations,omitempty"`
	Alpha      *float64 `json:"alpha,omitempty"`
	Beta       *float64 `json:"beta,omitempty"`
	Rho        *float64 `json:"rho,omitempty"`
	Seed       *int64   `json:"seed,omitempty"`
	Workers    *int     `json:"workers,omitempty"`
}

// apply overlays the set fields on opts.
func (o *SolveOptions) apply(opts *aco.Options) {
	if o == nil {
		return
	}
	if o.Ants != nil {
		opts.Ants = *o.Ants
	}
	if o.Iterations != nil {
		opts.Iterations = *o.Iterations
	}
	if o.Alpha != nil {
		opts.Alpha = *o.Alpha
	}
	if o.Beta != nil {
		opts.Beta = *o.Beta
	}
	if o.Rho != nil {
		opts.Rho = *o.Rho
	}
	if o.Seed != nil {
		opts.Seed = *o.Seed
	}
	if o.Workers != nil {
		opts.Workers = *o.Workers
	}
}

// SolveResponse is the body of a successful POST /api/solve.
// Distance is null when no tour was built (zero iterations).
type SolveResponse struct {
	Name      string      `json:"name,omitempty"`
	Nodes     int         `json:"nodes"`
	Found     bool        `json:"found"`
	Tour      []int       `json:"tour"`
	Distance  *float64    `json:"distance"`
	History   []float64   `json:"history"`
	Options   optionsView `json:"options"`
	ElapsedMS int64       `json:"elapsed_ms"`
}

type optionsView struct {
	Ants       int     `json:"ants"`
	Iterations int     `json:"iterations"`
	Alpha      float64 `json:"alpha"`
	Beta       float64 `json:"beta"`
	Rho        float64 `json:"rho"`
	Seed       int64   `json:"seed"`
	Workers    int     `json:"workers"`
}

// errorResponse is the body of every non-2xx reply.
type errorResponse struct {
	Error string `json:"error"`
}

// SolveHandler serves the solver routes.
type SolveHandler struct {
	defaults aco.Options
	limits   config.ServerConfig
}

// NewSolveHandler creates a handler whose requests start from cfg's solver section.
func NewSolveHandler(cfg *config.Config) *SolveHandler {
	return &SolveHandler{
		defaults: cfg.Options(),
		limits:   cfg.Server,
	}
}

// RegisterRoutes mounts the handler on router.
func (h *SolveHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/api/solve", h.Solve).Methods(http.MethodPost)
	router.HandleFunc("/api/health", h.Health).Methods(http.MethodGet)
}

// NewRouter returns a router with h's routes registered.
func NewRouter(h *SolveHandler) *mux.Router {
	router := mux.NewRouter()
	h.RegisterRoutes(router)
	return router
}

// Health reports liveness.
func (h *SolveHandler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// Solve decodes a SolveRequest, runs the colony under the request context and
// writes a SolveResponse.
func (h *SolveHandler) Solve(w http.ResponseWriter, r *http.Request) {
	var req SolveRequest
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, errors.Wrap(err, "invalid request body"))
		return
	}

	opts := h.defaults
	req.Options.apply(&opts)

	resp, err := h.solve(r.Context(), &req.Instance, opts)
	if err != nil {
		status := statusOf(err)
		if status >= http.StatusInternalServerError {
			klog.Errorf("solve %q: %+v", req.Instance.Name, err)
		}
		writeError(w, status, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *SolveHandler) solve(ctx context.Context, in *instance.Instance, opts aco.Options) (SolveResponse, error) {
	if err := in.Validate(); err != nil {
		return SolveResponse{}, errBadInstance{err}
	}
	if err := h.checkLimits(in.Len(), opts); err != nil {
		return SolveResponse{}, err
	}
	dist, err := in.Distances()
	if err != nil {
		return SolveResponse{}, errBadInstance{err}
	}
	if err = opts.Validate(); err != nil {
		return SolveResponse{}, err
	}
	env, err := aco.NewEnvironment(dist, opts.Rho, opts.Ants)
	if err != nil {
		return SolveResponse{}, err
	}
	colony, err := aco.NewColony(env, opts)
	if err != nil {
		return SolveResponse{}, err
	}

	started := time.Now()
	best, err := colony.SolveContext(ctx)
	if err != nil {
		return SolveResponse{}, errors.Wrap(err, "solve")
	}
	elapsed := time.Since(started)
	klog.V(1).Infof("Solved %q: n=%d ants=%d iterations=%d distance=%g in %s",
		in.Name, env.Len(), opts.Ants, opts.Iterations, best.Distance, elapsed)

	resp := SolveResponse{
		Name:  in.Name,
		Nodes: env.Len(),
		Found: best.Found(),
		Tour:  best.Tour,
		Options: optionsView{
			Ants:       opts.Ants,
			Iterations: opts.Iterations,
			Alpha:      opts.Alpha,
			Beta:       opts.Beta,
			Rho:        opts.Rho,
			Seed:       opts.Seed,
			Workers:    opts.Workers,
		},
		History:   colony.History(),
		ElapsedMS: elapsed.Milliseconds(),
	}
	if best.Found() {
		d := best.Distance
		resp.Distance = &d
	}
	return resp, nil
}

// checkLimits refuses requests whose size exceeds the configured caps. It runs
// before anything proportional to the request is allocated.
func (h *SolveHandler) checkLimits(nodes int, opts aco.Options) error {
	switch l := h.limits; {
	case l.MaxNodes > 0 && nodes > l.MaxNodes:
		return errTooLarge{errors.Errorf("instance has %d nodes, limit is %d", nodes, l.MaxNodes)}
	case l.MaxAnts > 0 && opts.Ants > l.MaxAnts:
		return errTooLarge{errors.Errorf("%d ants requested, limit is %d", opts.Ants, l.MaxAnts)}
	case l.MaxIterations > 0 && opts.Iterations > l.MaxIterations:
		return errTooLarge{errors.Errorf("%d iterations requested, limit is %d", opts.Iterations, l.MaxIterations)}
	}
	return nil
}

type errBadInstance struct{ error }

func (e errBadInstance) Unwrap() error { return e.error }

type errTooLarge struct{ error }

func (e errTooLarge) Unwrap() error { return e.error }

// statusOf maps solver errors to HTTP status codes.
func statusOf(err error) int {
	var (
		bad   errBadInstance
		large errTooLarge
	)
	switch {
	case errors.As(err, &large):
		return http.StatusRequestEntityTooLarge
	case errors.As(err, &bad), errors.Is(err, aco.ErrInvalidConfiguration):
		return http.StatusBadRequest
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		klog.Errorf("encoding response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, errorResponse{Error: err.Error()})
}
