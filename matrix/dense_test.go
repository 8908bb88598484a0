package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/interpol/matrix"
)

// TestNewDense_InvalidDimensions verifies that non-positive shapes are
// rejected with ErrInvalidDimensions.
func TestNewDense_InvalidDimensions(t *testing.T) {
	_, err := matrix.NewDense(0, 3)
	assert.ErrorIs(t, err, matrix.ErrInvalidDimensions, "zero rows must error")

	_, err = matrix.NewDense(3, -1)
	assert.ErrorIs(t, err, matrix.ErrInvalidDimensions, "negative cols must error")
}

// TestNewDenseFrom_Validation covers the shape, element-count and finiteness
// guards of the copying constructor.
func TestNewDenseFrom_Validation(t *testing.T) {
	// Element count must match rows*cols.
	_, err := matrix.NewDenseFrom(2, 2, []float64{1, 2, 3})
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch, "short slice must error")

	// NaN entries are rejected at ingestion.
	_, err = matrix.NewDenseFrom(1, 2, []float64{1, math.NaN()})
	assert.ErrorIs(t, err, matrix.ErrNaNInf, "NaN must error")

	// +Inf entries are rejected at ingestion.
	_, err = matrix.NewDenseFrom(1, 2, []float64{math.Inf(1), 0})
	assert.ErrorIs(t, err, matrix.ErrNaNInf, "Inf must error")
}

// TestNewDenseFrom_CopiesInput ensures the constructor does not alias the
// caller's slice.
func TestNewDenseFrom_CopiesInput(t *testing.T) {
	vals := []float64{1, 2, 3, 4}
	m, err := matrix.NewDenseFrom(2, 2, vals)
	require.NoError(t, err)

	// Mutate the caller slice; the matrix must be unaffected.
	vals[0] = 99
	got, err := m.At(0, 0)
	require.NoError(t, err)
	assert.Equal(t, 1.0, got, "constructor must copy, not alias")
}

// TestDense_AtSetBounds verifies indexer bounds checks return ErrOutOfRange.
func TestDense_AtSetBounds(t *testing.T) {
	m, err := matrix.NewDense(2, 3)
	require.NoError(t, err)

	_, err = m.At(2, 0)
	assert.ErrorIs(t, err, matrix.ErrOutOfRange, "row out of range on At")

	err = m.Set(0, 3, 1)
	assert.ErrorIs(t, err, matrix.ErrOutOfRange, "col out of range on Set")

	_, err = m.Row(-1)
	assert.ErrorIs(t, err, matrix.ErrOutOfRange, "negative row on Row")
}

// TestDense_RowIsView verifies Row returns a live view into the storage.
func TestDense_RowIsView(t *testing.T) {
	m, err := matrix.NewDense(2, 2)
	require.NoError(t, err)

	row, err := m.Row(1)
	require.NoError(t, err)
	row[0] = 7 // write through the view

	got, err := m.At(1, 0)
	require.NoError(t, err)
	assert.Equal(t, 7.0, got, "Row must be a view, not a copy")
}

// TestDense_CloneIsDeep verifies Clone produces independent storage.
func TestDense_CloneIsDeep(t *testing.T) {
	m, err := matrix.NewDenseFrom(2, 2, []float64{1, 2, 3, 4})
	require.NoError(t, err)

	c := m.Clone()
	require.NoError(t, c.Set(0, 0, 42))

	orig, err := m.At(0, 0)
	require.NoError(t, err)
	assert.Equal(t, 1.0, orig, "mutating a clone must not touch the original")
	assert.Equal(t, m.Rows(), c.Rows())
	assert.Equal(t, m.Cols(), c.Cols())
}

// TestDense_String smoke-checks the debug representation.
func TestDense_String(t *testing.T) {
	m, err := matrix.NewDenseFrom(2, 2, []float64{1, 2, 3, 4})
	require.NoError(t, err)
	assert.Equal(t, "[1, 2]\n[3, 4]\n", m.String())
}
