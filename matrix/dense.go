// SPDX-License-Identifier: MIT
// Package matrix: Dense is the single concrete matrix representation of this
// module — row-major float64 storage in one flat slice for cache friendliness.

package matrix

import (
	"fmt"
	"strings"
)

// denseErrorf wraps an underlying error with Dense method context.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a row-major matrix of float64 values.
// r is rows, c is columns, and data holds r*c elements in row-major order.
type Dense struct {
	r, c int       // number of rows and columns
	data []float64 // flat backing storage, length == r*c
}

// NewDense creates an r×c Dense matrix initialized to zeros.
// Stage 1 (Validate): ensure rows and cols > 0.
// Stage 2 (Prepare): allocate flat backing slice.
// Stage 3 (Finalize): return new Dense or ErrInvalidDimensions.
// Complexity: O(r*c) time and memory.
func NewDense(rows, cols int) (*Dense, error) {
	// Validate dimensions
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}
	// Allocate flat slice
	data := make([]float64, rows*cols)

	// Return initialized Dense
	return &Dense{r: rows, c: cols, data: data}, nil
}

// NewDenseFrom creates an r×c Dense matrix from row-major vals.
// The slice is copied; the caller keeps ownership of vals.
// Stage 1 (Validate): dimensions positive, len(vals) == rows*cols, all finite.
// Stage 2 (Prepare): copy into fresh backing storage.
// Complexity: O(r*c) time and memory.
func NewDenseFrom(rows, cols int, vals []float64) (*Dense, error) {
	// Validate dimensions
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}
	// Validate element count matches the requested shape
	if len(vals) != rows*cols {
		return nil, ErrDimensionMismatch
	}
	// Reject NaN/Inf at ingestion — downstream pivot searches rely on
	// well-ordered absolute values.
	if err := ValidateFinite(vals); err != nil {
		return nil, err
	}

	// Copy into fresh storage (no aliasing with caller data)
	data := make([]float64, len(vals))
	copy(data, vals)

	return &Dense{r: rows, c: cols, data: data}, nil
}

// Rows returns the number of rows in the matrix.
// Complexity: O(1).
func (m *Dense) Rows() int {
	return m.r // return stored row count
}

// Cols returns the number of columns in the matrix.
// Complexity: O(1).
func (m *Dense) Cols() int {
	return m.c // return stored column count
}

// indexOf computes the flat index for (row, col) or returns ErrOutOfRange.
// Stage 1 (Validate): check 0 ≤ row < r and 0 ≤ col < c.
// Stage 2 (Execute): compute and return linear index.
// Complexity: O(1).
func (m *Dense) indexOf(method string, row, col int) (int, error) {
	// Validate row index
	if row < 0 || row >= m.r {
		return 0, denseErrorf(method, row, col, ErrOutOfRange)
	}
	// Validate column index
	if col < 0 || col >= m.c {
		return 0, denseErrorf(method, row, col, ErrOutOfRange)
	}

	// Compute flat offset
	return row*m.c + col, nil
}

// At retrieves the element at (row, col).
// Stage 1 (Validate): bounds check via indexOf.
// Stage 2 (Execute): read from data slice.
// Complexity: O(1).
func (m *Dense) At(row, col int) (float64, error) {
	// Compute flat index or error
	idx, err := m.indexOf("At", row, col)
	if err != nil {
		return 0, err
	}

	// Return stored value
	return m.data[idx], nil
}

// Set assigns value v at (row, col).
// Stage 1 (Validate): bounds check via indexOf.
// Stage 2 (Execute): write into data slice.
// Complexity: O(1).
func (m *Dense) Set(row, col int, v float64) error {
	// Compute flat index or error
	idx, err := m.indexOf("Set", row, col)
	if err != nil {
		return err
	}
	// Assign value
	m.data[idx] = v

	return nil
}

// Row returns the row at index i as a slice view into the backing storage.
// Mutating the returned slice mutates the matrix; callers needing isolation
// must copy. Returns ErrOutOfRange for an invalid index.
// Complexity: O(1).
func (m *Dense) Row(i int) ([]float64, error) {
	// Validate row index
	if i < 0 || i >= m.r {
		return nil, denseErrorf("Row", i, 0, ErrOutOfRange)
	}

	// Slice out the row window [i*c, (i+1)*c)
	return m.data[i*m.c : (i+1)*m.c], nil
}

// Clone returns a deep copy of the Dense matrix.
// Complexity: O(r*c) time and memory for copy.
func (m *Dense) Clone() *Dense {
	// Allocate new slice for data copy
	copyData := make([]float64, len(m.data))
	// Copy all elements into new slice
	copy(copyData, m.data)

	return &Dense{r: m.r, c: m.c, data: copyData}
}

// String implements fmt.Stringer for easy debugging.
// Complexity: O(r*c) for string construction.
func (m *Dense) String() string {
	var b strings.Builder
	var i, j int
	for i = 0; i < m.r; i++ { // iterate over rows
		b.WriteByte('[')          // open row
		for j = 0; j < m.c; j++ { // iterate over columns
			// compute flat index directly for performance
			fmt.Fprintf(&b, "%g", m.data[i*m.c+j])
			if j < m.c-1 {
				b.WriteString(", ") // separate values with comma
			}
		}
		b.WriteString("]\n") // close row
	}

	return b.String()
}

// swapRows exchanges rows i1 and i2 in place.
// Callers guarantee valid indices; this is an internal elimination helper.
// Complexity: O(c).
func (m *Dense) swapRows(i1, i2 int) {
	if i1 == i2 {
		return // nothing to do
	}
	o1, o2 := i1*m.c, i2*m.c // flat row offsets
	for j := 0; j < m.c; j++ {
		m.data[o1+j], m.data[o2+j] = m.data[o2+j], m.data[o1+j]
	}
}

// swapCols exchanges columns j1 and j2 across every row in place.
// Callers guarantee valid indices; this is an internal elimination helper.
// Complexity: O(r).
func (m *Dense) swapCols(j1, j2 int) {
	if j1 == j2 {
		return // nothing to do
	}
	for i := 0; i < m.r; i++ {
		base := i * m.c // flat row offset
		m.data[base+j1], m.data[base+j2] = m.data[base+j2], m.data[base+j1]
	}
}
