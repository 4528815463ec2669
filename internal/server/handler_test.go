package server

import (
	"bytes"
	"context"
	"encoding/json"
	"net"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/antsys/aco"
	"github.com/katalvlaran/antsys/internal/config"
)

func newTestRouter(t *testing.T, mutate func(*config.Config)) http.Handler {
	t.Helper()
	cfg := config.Default()
	cfg.Solver.Ants = 8
	cfg.Solver.Iterations = 10
	cfg.Solver.Seed = 1
	if mutate != nil {
		mutate(cfg)
	}
	require.NoError(t, cfg.Validate())
	return NewRouter(NewSolveHandler(cfg))
}

func post(t *testing.T, h http.Handler, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/solve", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

const squareBody = `{
  "instance": {
    "name": "square",
    "points": [{"x":0,"y":0},{"x":1,"y":0},{"x":1,"y":1},{"x":0,"y":1}]
  },
  "options": {"ants": 4, "iterations": 20, "beta": 2}
}`

func TestHealth(t *testing.T) {
	h := newTestRouter(t, nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/health", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestSolve_Square(t *testing.T) {
	rec := post(t, newTestRouter(t, nil), squareBody)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var resp SolveResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "square", resp.Name)
	assert.Equal(t, 4, resp.Nodes)
	assert.True(t, resp.Found)
	require.NoError(t, aco.ValidateTour(resp.Tour, 4))
	require.NotNil(t, resp.Distance)
	assert.InDelta(t, 4.0, *resp.Distance, 1e-9)
	assert.Len(t, resp.History, 20)

	// Request options override, the rest keep the configured defaults.
	assert.Equal(t, 4, resp.Options.Ants)
	assert.Equal(t, 2.0, resp.Options.Beta)
	assert.Equal(t, 1.0, resp.Options.Alpha)
	assert.Equal(t, int64(1), resp.Options.Seed)
}

func TestSolve_ExplicitMatrixUsesDefaults(t *testing.T) {
	body := `{"instance":{"matrix":[[0,2,9,10],[2,0,6,4],[9,6,0,3],[10,4,3,0]]}}`
	rec := post(t, newTestRouter(t, nil), body)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp SolveResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 8, resp.Options.Ants)
	assert.Equal(t, 10, resp.Options.Iterations)
	require.NotNil(t, resp.Distance)
	assert.InDelta(t, 2+4+3+9, *resp.Distance, 1e-9) // 0-1-3-2-0 is optimal
}

func TestSolve_ZeroIterations(t *testing.T) {
	body := `{"instance":{"matrix":[[0,1],[1,0]]},"options":{"iterations":0}}`
	rec := post(t, newTestRouter(t, nil), body)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var raw map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &raw))
	assert.Equal(t, false, raw["found"])
	assert.Nil(t, raw["distance"], "+Inf is reported as null")
	assert.Nil(t, raw["tour"])
}

func TestSolve_Errors(t *testing.T) {
	cases := []struct {
		name   string
		body   string
		status int
	}{
		{"malformed json", `{"instance":`, http.StatusBadRequest},
		{"unknown field", `{"instance":{"matrix":[[0]]},"extra":1}`, http.StatusBadRequest},
		{"empty instance", `{"instance":{}}`, http.StatusBadRequest},
		{"unknown metric", `{"instance":{"metric":"geo","points":[{"x":0,"y":0}]}}`, http.StatusBadRequest},
		{"asymmetric", `{"instance":{"matrix":[[0,1],[2,0]]}}`, http.StatusBadRequest},
		{"ragged", `{"instance":{"matrix":[[0,1],[1]]}}`, http.StatusBadRequest},
		{"bad rho", `{"instance":{"matrix":[[0,1],[1,0]]},"options":{"rho":1}}`, http.StatusBadRequest},
		{"bad ants", `{"instance":{"matrix":[[0,1],[1,0]]},"options":{"ants":0}}`, http.StatusBadRequest},
		{"too large", `{"instance":{"matrix":[[0,1,1],[1,0,1],[1,1,0]]}}`, http.StatusRequestEntityTooLarge},
		{"too many ants", `{"instance":{"matrix":[[0,1],[1,0]]},"options":{"ants":5000000,"iterations":0}}`, http.StatusRequestEntityTooLarge},
		{"too many iterations", `{"instance":{"matrix":[[0,1],[1,0]]},"options":{"iterations":1000000000}}`, http.StatusRequestEntityTooLarge},
	}
	h := newTestRouter(t, func(c *config.Config) {
		c.Server.MaxNodes = 2
		c.Server.MaxAnts = 100
		c.Server.MaxIterations = 1000
	})
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := post(t, h, tc.body)
			require.Equal(t, tc.status, rec.Code, rec.Body.String())

			var resp errorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.NotEmpty(t, resp.Error)
		})
	}
}

func TestSolve_LimitsApplyToDefaults(t *testing.T) {
	h := newTestRouter(t, func(c *config.Config) { c.Server.MaxAnts = 4 })

	rec := post(t, h, `{"instance":{"matrix":[[0,1],[1,0]]}}`)
	require.Equal(t, http.StatusRequestEntityTooLarge, rec.Code, "configured 8 ants exceed the cap")

	rec = post(t, h, `{"instance":{"matrix":[[0,1],[1,0]]},"options":{"ants":4}}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
}

func TestSolve_MethodNotAllowed(t *testing.T) {
	rec := httptest.NewRecorder()
	newTestRouter(t, nil).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/solve", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestStatusOf(t *testing.T) {
	assert.Equal(t, http.StatusServiceUnavailable, statusOf(context.Canceled))
	assert.Equal(t, http.StatusBadRequest, statusOf(aco.ErrBadRho))
	assert.Equal(t, http.StatusInternalServerError, statusOf(aco.ErrPrematureTermination))
}

func TestServe_GracefulShutdown(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	base := "http://" + ln.Addr().String()

	// The solve route blocks until release, so shutdown starts while it is in flight.
	started, release := make(chan struct{}), make(chan struct{})
	router := newTestRouter(t, nil)
	h := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/api/solve" {
			close(started)
			<-release
		}
		router.ServeHTTP(w, r)
	})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- Serve(ctx, ln, h) }()

	resp, err := http.Get(base + "/api/health")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.NoError(t, resp.Body.Close())

	type result struct {
		status int
		body   SolveResponse
		err    error
	}
	results := make(chan result, 1)
	go func() {
		resp, err := http.Post(base+"/api/solve", "application/json", bytes.NewBufferString(squareBody))
		if err != nil {
			results <- result{err: err}
			return
		}
		defer resp.Body.Close()
		var body SolveResponse
		err = json.NewDecoder(resp.Body).Decode(&body)
		results <- result{status: resp.StatusCode, body: body, err: err}
	}()

	<-started
	cancel()
	select {
	case err := <-done:
		t.Fatalf("server returned before the in-flight solve finished: %v", err)
	case <-time.After(100 * time.Millisecond):
	}
	close(release)

	res := <-results
	require.NoError(t, res.err)
	assert.Equal(t, http.StatusOK, res.status, "in-flight solve is drained, not cancelled")
	assert.Len(t, res.body.History, 20)

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}
}
