package instance

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/katalvlaran/antsys/builder"
)

// edgeWeightMetrics maps TSPLIB EDGE_WEIGHT_TYPE values to builder metric names.
var edgeWeightMetrics = map[string]string{
	"EUC_2D":  "euc_2d",
	"CEIL_2D": "ceil_2d",
	"ATT":     "att",
	"MAN_2D":  "man_2d",
}

// tsplibHeader collects the keyword part of a TSPLIB file.
type tsplibHeader struct {
	name, kind   string
	dimension    int
	weightType   string
	weightFormat string
}

// ParseTSPLIB reads a symmetric TSPLIB instance. Supported are
// NODE_COORD_SECTION with EUC_2D, CEIL_2D, ATT or MAN_2D weights, and
// EXPLICIT weights in FULL_MATRIX, UPPER_ROW or LOWER_DIAG_ROW format.
// Node ids in NODE_COORD_SECTION are ignored; nodes are taken in file order.
func ParseTSPLIB(r io.Reader) (*Instance, error) {
	var (
		hdr     tsplibHeader
		section string
		coords  []builder.Point
		weights []float64
		lineNo  int
	)

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), 16*1024*1024)
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		if line == "EOF" {
			break
		}

		if key, value, ok := splitKeyword(line); ok {
			section = ""
			if err := hdr.set(key, value); err != nil {
				return nil, errors.Wrapf(err, "line %d", lineNo)
			}
			continue
		}

		switch strings.ToUpper(line) {
		case "NODE_COORD_SECTION", "EDGE_WEIGHT_SECTION":
			section = strings.ToUpper(line)
			continue
		case "DISPLAY_DATA_SECTION", "TOUR_SECTION", "FIXED_EDGES_SECTION":
			section = "skip"
			continue
		}

		fields := strings.Fields(line)
		switch section {
		case "NODE_COORD_SECTION":
			if len(fields) < 3 {
				return nil, errors.Errorf("line %d: want \"id x y\", got %q", lineNo, line)
			}
			x, errX := strconv.ParseFloat(fields[1], 64)
			y, errY := strconv.ParseFloat(fields[2], 64)
			if errX != nil || errY != nil {
				return nil, errors.Errorf("line %d: bad coordinates %q", lineNo, line)
			}
			coords = append(coords, builder.Point{X: x, Y: y})
		case "EDGE_WEIGHT_SECTION":
			for _, f := range fields {
				w, err := strconv.ParseFloat(f, 64)
				if err != nil {
					return nil, errors.Errorf("line %d: bad edge weight %q", lineNo, f)
				}
				weights = append(weights, w)
			}
		case "skip":
		default:
			return nil, errors.Errorf("line %d: unexpected data %q", lineNo, line)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, errors.Wrap(err, "reading tsplib")
	}

	return hdr.build(coords, weights)
}

// splitKeyword splits "KEY : VALUE" and "KEY: VALUE" lines.
func splitKeyword(line string) (key, value string, ok bool) {
	i := strings.IndexByte(line, ':')
	if i < 0 {
		return "", "", false
	}
	return strings.ToUpper(strings.TrimSpace(line[:i])), strings.TrimSpace(line[i+1:]), true
}

func (h *tsplibHeader) set(key, value string) error {
	switch key {
	case "NAME":
		h.name = value
	case "TYPE":
		h.kind = strings.ToUpper(value)
	case "DIMENSION":
		n, err := strconv.Atoi(value)
		if err != nil || n < 1 {
			return errors.Errorf("bad DIMENSION %q", value)
		}
		h.dimension = n
	case "EDGE_WEIGHT_TYPE":
		h.weightType = strings.ToUpper(value)
	case "EDGE_WEIGHT_FORMAT":
		h.weightFormat = strings.ToUpper(value)
	}
	// COMMENT, NODE_COORD_TYPE, DISPLAY_DATA_TYPE and friends carry nothing we use.
	return nil
}

func (h *tsplibHeader) build(coords []builder.Point, weights []float64) (*Instance, error) {
	if h.kind != "" && h.kind != "TSP" {
		return nil, errors.Wrapf(ErrUnsupportedFormat, "TYPE %s", h.kind)
	}
	if h.dimension == 0 {
		return nil, errors.New("missing DIMENSION")
	}

	if h.weightType == "EXPLICIT" {
		m, err := explicitMatrix(h.dimension, h.weightFormat, weights)
		if err != nil {
			return nil, err
		}
		return &Instance{Name: h.name, Matrix: m}, nil
	}

	metric, ok := edgeWeightMetrics[h.weightType]
	if !ok {
		return nil, errors.Wrapf(ErrUnsupportedFormat, "EDGE_WEIGHT_TYPE %q", h.weightType)
	}
	if len(coords) != h.dimension {
		return nil, errors.Errorf("DIMENSION %d but %d coordinates", h.dimension, len(coords))
	}
	return &Instance{Name: h.name, Metric: metric, Points: coords}, nil
}

// explicitMatrix expands a TSPLIB weight list into a full symmetric matrix.
// The weight count is checked before the matrix is allocated.
func explicitMatrix(n int, format string, w []float64) ([][]float64, error) {
	want, err := explicitWeightCount(n, format, len(w))
	if err != nil {
		return nil, err
	}
	if len(w) != want {
		return nil, errors.Errorf("%s with DIMENSION %d needs %d weights, got %d", format, n, want, len(w))
	}

	m := make([][]float64, n)
	for i := range m {
		m[i] = make([]float64, n)
	}

	k := 0
	switch format {
	case "FULL_MATRIX":
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				m[i][j] = w[k]
				k++
			}
		}
	case "UPPER_ROW":
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				m[i][j], m[j][i] = w[k], w[k]
				k++
			}
		}
	case "LOWER_DIAG_ROW":
		for i := 0; i < n; i++ {
			for j := 0; j <= i; j++ {
				m[i][j], m[j][i] = w[k], w[k]
				k++
			}
		}
	}
	return m, nil
}

// explicitWeightCount returns how many weights format needs for n nodes.
// Every format needs at least n-1 weights, so a DIMENSION beyond got+1 is
// rejected before n*n is computed.
func explicitWeightCount(n int, format string, got int) (int, error) {
	switch format {
	case "FULL_MATRIX", "UPPER_ROW", "LOWER_DIAG_ROW":
	default:
		return 0, errors.Wrapf(ErrUnsupportedFormat, "EDGE_WEIGHT_FORMAT %q", format)
	}
	if n-1 > got {
		return 0, errors.Errorf("%s with DIMENSION %d needs at least %d weights, got %d", format, n, n-1, got)
	}

	switch format {
	case "FULL_MATRIX":
		return n * n, nil
	case "UPPER_ROW":
		return n * (n - 1) / 2, nil
	default:
		return n * (n + 1) / 2, nil
	}
}
