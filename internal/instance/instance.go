// Package instance loads TSP problem instances for the CLI and the HTTP server.
//
// An instance is either a point set with a metric name, or an explicit
// distance matrix. It can be read from YAML, JSON or TSPLIB (.tsp) files.
package instance

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/antsys/builder"
	"github.com/katalvlaran/antsys/matrix"
)

var (
	// ErrEmpty is returned for instances with neither points nor a matrix.
	ErrEmpty = errors.New("instance: no points or matrix")

	// ErrAmbiguous is returned when both points and a matrix are given.
	ErrAmbiguous = errors.New("instance: both points and matrix given")

	// ErrUnsupportedFormat is returned for unknown file formats or TSPLIB features.
	ErrUnsupportedFormat = errors.New("instance: unsupported format")
)

// Format identifies an instance encoding.
type Format string

const (
	FormatYAML   Format = "yaml"
	FormatJSON   Format = "json"
	FormatTSPLIB Format = "tsplib"
)

// Instance is a TSP problem description.
type Instance struct {
	Name string `json:"name,omitempty" yaml:"name,omitempty"`

	// Metric names a builder metric for Points (see builder.ParseMetric).
	Metric string `json:"metric,omitempty" yaml:"metric,omitempty"`

	Points []builder.Point `json:"points,omitempty" yaml:"points,omitempty"`
	Matrix [][]float64     `json:"matrix,omitempty" yaml:"matrix,omitempty"`
}

// Len returns the number of nodes.
func (in *Instance) Len() int {
	if len(in.Matrix) > 0 {
		return len(in.Matrix)
	}
	return len(in.Points)
}

// Validate checks that exactly one of Points and Matrix is set and that the
// metric name resolves.
func (in *Instance) Validate() error {
	switch {
	case len(in.Points) == 0 && len(in.Matrix) == 0:
		return ErrEmpty
	case len(in.Points) > 0 && len(in.Matrix) > 0:
		return ErrAmbiguous
	}
	if len(in.Points) > 0 {
		if _, err := builder.ParseMetric(in.Metric); err != nil {
			return errors.Wrapf(err, "instance %q", in.Name)
		}
	}
	return nil
}

// Distances builds the distance matrix. It does not check the matrix
// shape or symmetry; aco.NewEnvironment does.
func (in *Instance) Distances() (*matrix.Dense, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	if len(in.Matrix) > 0 {
		m, err := matrix.NewDenseFrom(in.Matrix)
		if err != nil {
			return nil, errors.Wrapf(err, "instance %q matrix", in.Name)
		}
		return m, nil
	}

	metric, _ := builder.ParseMetric(in.Metric)
	m, err := builder.DistanceMatrix(in.Points, metric)
	if err != nil {
		return nil, errors.Wrapf(err, "instance %q points", in.Name)
	}
	return m, nil
}

// Random returns n uniform points in [0,100)² named after the seed.
func Random(n int, seed int64, metric string) (*Instance, error) {
	pts, err := builder.RandomUniform(n, builder.WithSeed(seed))
	if err != nil {
		return nil, errors.Wrap(err, "random instance")
	}
	in := &Instance{
		Name:   "random-" + strconv.FormatInt(seed, 10),
		Metric: metric,
		Points: pts,
	}
	if err = in.Validate(); err != nil {
		return nil, err
	}
	return in, nil
}

// FormatOf guesses the format from a file extension; YAML is the fallback.
func FormatOf(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON
	case ".tsp":
		return FormatTSPLIB
	default:
		return FormatYAML
	}
}

// Load reads and validates the instance at path.
func Load(path string) (*Instance, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading instance %q", path)
	}
	in, err := Parse(data, FormatOf(path))
	if err != nil {
		return nil, errors.Wrapf(err, "instance %q", path)
	}
	if in.Name == "" {
		in.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return in, nil
}

// Parse decodes data in the given format and validates the result.
func Parse(data []byte, format Format) (*Instance, error) {
	var (
		in  *Instance
		err error
	)
	switch format {
	case FormatYAML:
		in = &Instance{}
		err = yaml.Unmarshal(data, in)
	case FormatJSON:
		in = &Instance{}
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		err = dec.Decode(in)
	case FormatTSPLIB:
		in, err = ParseTSPLIB(bytes.NewReader(data))
	default:
		return nil, errors.Wrapf(ErrUnsupportedFormat, "format %q", format)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "decoding %s", format)
	}
	if err = in.Validate(); err != nil {
		return nil, err
	}
	return in, nil
}
