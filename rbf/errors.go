package rbf

import (
	"errors"

	"github.com/katalvlaran/interpol/matrix"
)

var (
	// ErrEmptyInput indicates that Build received zero samples. It is the
	// explicit "no interpolant" marker: not a corrupted state, simply nothing
	// to interpolate. Callers must check it with errors.Is.
	ErrEmptyInput = errors.New("rbf: no samples provided")

	// ErrDimensionMismatch indicates inconsistent construction input:
	// len(points) != len(values), value vectors of differing lengths, or an
	// empty value vector. Detected fail-fast at Build time — a mismatched
	// system would otherwise be silently corrupted.
	ErrDimensionMismatch = errors.New("rbf: points/values dimension mismatch")

	// ErrNilKernel indicates that Build received a nil kernel function.
	ErrNilKernel = errors.New("rbf: kernel must be non-nil")
)

// ErrSingular aliases matrix.ErrSingular so that rbf callers can match the
// singular-system failure without importing the matrix package. Duplicate
// sample points are the usual cause. errors.Is matches either name.
var ErrSingular = matrix.ErrSingular
