// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set/AddAt return errors instead of panicking.
//   - Keep determinism: every bulk operation walks rows then columns.
//
// Complexity quicksheet:
//   - NewDense: O(r*c) zero-init; At/Set/AddAt: O(1); Clone/Fill/Scale/Do: O(r*c).

package matrix

import (
	"fmt"
	"math"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt    = "At"
	ctxSet   = "Set"
	ctxAddAt = "AddAt"
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete row-major matrix.
//   - r,c hold dimensions (rows, cols).
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
type Dense struct {
	r, c int       // row and column counts (>0)
	data []float64 // contiguous row-major storage (len == r*c)
}

// Compile-time assertions for interface & fmt.Stringer conformance.
var (
	_ Matrix       = (*Dense)(nil)
	_ fmt.Stringer = (*Dense)(nil)
)

// NewDense creates an r×c zero matrix using row-major storage.
// Returns ErrInvalidDimensions when rows<=0 or cols<=0.
//
// Complexity: O(r*c) time and memory.
func NewDense(rows, cols int) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}

	return &Dense{r: rows, c: cols, data: make([]float64, rows*cols)}, nil
}

// NewDenseFrom copies a rectangular [][]float64 into a new Dense.
// Returns ErrInvalidDimensions for an empty source and ErrRaggedRows when rows differ in length.
//
// Complexity: O(r*c).
func NewDenseFrom(rows [][]float64) (*Dense, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrInvalidDimensions
	}
	var (
		r = len(rows)
		c = len(rows[0])
		i int
	)
	m := &Dense{r: r, c: c, data: make([]float64, r*c)}
	for i = 0; i < r; i++ {
		if len(rows[i]) != c {
			return nil, fmt.Errorf("NewDenseFrom: row %d has %d cols, want %d: %w", i, len(rows[i]), c, ErrRaggedRows)
		}
		copy(m.data[i*c:(i+1)*c], rows[i])
	}

	return m, nil
}

// DenseOf returns a *Dense holding the same values as m.
// A *Dense input is deep-copied; any other implementation is read through At.
//
// Complexity: O(r*c).
func DenseOf(m Matrix) (*Dense, error) {
	if m == nil {
		return nil, ErrNilMatrix
	}
	if d, ok := m.(*Dense); ok {
		if d == nil {
			return nil, ErrNilMatrix
		}
		return d.clone(), nil
	}
	out, err := NewDense(m.Rows(), m.Cols())
	if err != nil {
		return nil, err
	}

	var (
		i, j int
		v    float64
	)
	for i = 0; i < out.r; i++ {
		for j = 0; j < out.c; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, err
			}
			out.data[i*out.c+j] = v
		}
	}

	return out, nil
}

// Rows returns the number of rows in the matrix.
func (m *Dense) Rows() int { return m.r }

// Cols returns the number of columns in the matrix.
func (m *Dense) Cols() int { return m.c }

// Shape returns (rows, cols).
func (m *Dense) Shape() (rows, cols int) { return m.r, m.c }

// indexOf computes the flat index for (row, col) or returns ErrOutOfRange.
func (m *Dense) indexOf(method string, row, col int) (int, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, denseErrorf(method, row, col, ErrOutOfRange)
	}

	return row*m.c + col, nil
}

// At retrieves the element at (row, col).
//
// Complexity: O(1).
func (m *Dense) At(row, col int) (float64, error) {
	idx, err := m.indexOf(ctxAt, row, col)
	if err != nil {
		return 0, err
	}

	return m.data[idx], nil
}

// Set assigns value v at (row, col).
//
// Complexity: O(1).
func (m *Dense) Set(row, col int, v float64) error {
	idx, err := m.indexOf(ctxSet, row, col)
	if err != nil {
		return err
	}
	m.data[idx] = v

	return nil
}

// AddAt adds delta to the element at (row, col).
//
// Complexity: O(1).
func (m *Dense) AddAt(row, col int, delta float64) error {
	idx, err := m.indexOf(ctxAddAt, row, col)
	if err != nil {
		return err
	}
	m.data[idx] += delta

	return nil
}

// Clone returns a deep copy of the Dense matrix.
//
// Complexity: O(r*c).
func (m *Dense) Clone() Matrix { return m.clone() }

func (m *Dense) clone() *Dense {
	cp := make([]float64, len(m.data))
	copy(cp, m.data)

	return &Dense{r: m.r, c: m.c, data: cp}
}

// Fill sets every element to v.
//
// Complexity: O(r*c).
func (m *Dense) Fill(v float64) {
	var k int
	for k = range m.data {
		m.data[k] = v
	}
}

// Scale multiplies every element by f in place.
//
// Complexity: O(r*c).
func (m *Dense) Scale(f float64) {
	var k int
	for k = range m.data {
		m.data[k] *= f
	}
}

// Do calls f for each element in row-major order; iteration stops when f returns false.
//
// Complexity: O(r*c).
func (m *Dense) Do(f func(i, j int, v float64) bool) {
	var i, j, base int
	for i = 0; i < m.r; i++ {
		base = i * m.c
		for j = 0; j < m.c; j++ {
			if !f(i, j, m.data[base+j]) {
				return
			}
		}
	}
}

// Min returns the smallest element.
//
// Complexity: O(r*c).
func (m *Dense) Min() float64 {
	var (
		lo = math.Inf(1)
		v  float64
	)
	for _, v = range m.data {
		if v < lo {
			lo = v
		}
	}

	return lo
}

// String implements fmt.Stringer for easy debugging.
func (m *Dense) String() string {
	var (
		sb   strings.Builder
		i, j int
	)
	for i = 0; i < m.r; i++ {
		sb.WriteString("[")
		for j = 0; j < m.c; j++ {
			if j > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(fmt.Sprintf("%g", m.data[i*m.c+j]))
		}
		sb.WriteString("]\n")
	}

	return sb.String()
}
