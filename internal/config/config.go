// Package config provides configuration loading for antsys.
// Solver parameters and server settings are read from a YAML file layered
// over Default().
package config

import (
	"bytes"
	"io"
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/antsys/aco"
)

// Defaults for `antsys serve`.
const (
	DefaultAddr          = ":8080"
	DefaultMaxNodes      = 1000
	DefaultMaxAnts       = 10000
	DefaultMaxIterations = 100000
)

// Config contains all antsys configuration settings.
type Config struct {
	// Solver contains the Ant System parameters.
	Solver SolverConfig `json:"solver" yaml:"solver"`

	// Server contains settings for the HTTP surface.
	Server ServerConfig `json:"server" yaml:"server"`
}

// SolverConfig mirrors aco.Options without the progress hook.
type SolverConfig struct {
	// Ants is the colony population, also used to calibrate the initial pheromone.
	Ants int `json:"ants" yaml:"ants"`

	// Iterations is the number of construct/update rounds.
	Iterations int `json:"iterations" yaml:"iterations"`

	// Alpha weights pheromone in the transition rule.
	Alpha float64 `json:"alpha" yaml:"alpha"`

	// Beta weights the inverse distance in the transition rule.
	Beta float64 `json:"beta" yaml:"beta"`

	// Rho is the evaporation rate, in [0,1).
	Rho float64 `json:"rho" yaml:"rho"`

	// Seed drives the colony RNG. 0 selects the fixed default stream.
	Seed int64 `json:"seed" yaml:"seed"`

	// Workers bounds concurrent tour construction. 1 is sequential.
	Workers int `json:"workers" yaml:"workers"`
}

// ServerConfig configures `antsys serve`.
type ServerConfig struct {
	// Addr is the TCP listen address, e.g. ":8080".
	Addr string `json:"addr" yaml:"addr"`

	// MaxNodes caps the instance size accepted by POST /api/solve. 0 disables the cap.
	MaxNodes int `json:"max_nodes" yaml:"max_nodes"`

	// MaxAnts caps the colony population a request may ask for. 0 disables the cap.
	MaxAnts int `json:"max_ants" yaml:"max_ants"`

	// MaxIterations caps the iterations a request may ask for. 0 disables the cap.
	MaxIterations int `json:"max_iterations" yaml:"max_iterations"`
}

// Default returns a Config with the reference solver parameters.
func Default() *Config {
	opts := aco.DefaultOptions()
	return &Config{
		Solver: SolverConfig{
			Ants:       opts.Ants,
			Iterations: opts.Iterations,
			Alpha:      opts.Alpha,
			Beta:       opts.Beta,
			Rho:        opts.Rho,
			Seed:       opts.Seed,
			Workers:    opts.Workers,
		},
		Server: ServerConfig{
			Addr:          DefaultAddr,
			MaxNodes:      DefaultMaxNodes,
			MaxAnts:       DefaultMaxAnts,
			MaxIterations: DefaultMaxIterations,
		},
	}
}

// Load reads the YAML file at path over Default(). An empty path returns Default().
func Load(path string) (*Config, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading config file %q", path)
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, errors.Wrapf(err, "config file %q", path)
	}
	return cfg, nil
}

// Parse decodes YAML over Default(). Unknown keys are rejected.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && err != io.EOF {
		return nil, errors.Wrap(err, "parsing config")
	}
	return cfg, nil
}

// Validate checks that the configuration is valid. Solver errors keep the
// aco sentinels, so errors.Is(err, aco.ErrInvalidConfiguration) holds.
func (c *Config) Validate() error {
	if err := c.Options().Validate(); err != nil {
		return errors.Wrap(err, "solver")
	}
	if c.Server.Addr == "" {
		return errors.New("server: addr must not be empty")
	}
	if c.Server.MaxNodes < 0 {
		return errors.Errorf("server: max_nodes must be non-negative, got %d", c.Server.MaxNodes)
	}
	if c.Server.MaxAnts < 0 {
		return errors.Errorf("server: max_ants must be non-negative, got %d", c.Server.MaxAnts)
	}
	if c.Server.MaxIterations < 0 {
		return errors.Errorf("server: max_iterations must be non-negative, got %d", c.Server.MaxIterations)
	}
	return nil
}

// Options converts the solver section to aco.Options.
func (c *Config) Options() aco.Options {
	return aco.Options{
		Ants:       c.Solver.Ants,
		Iterations: c.Solver.Iterations,
		Alpha:      c.Solver.Alpha,
		Beta:       c.Solver.Beta,
		Rho:        c.Solver.Rho,
		Seed:       c.Solver.Seed,
		Workers:    c.Solver.Workers,
	}
}
