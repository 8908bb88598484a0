// SPDX-License-Identifier: MIT
// Package matrix: elementary operations and the deterministic Doolittle path.
//
// Purpose:
//   - Mul/MatVec — plain products, used by verification pipelines to recompute
//     M·X after a solve.
//   - LU/Inverse — Doolittle factorization without pivoting; deterministic and
//     wholly independent of SolveFullPivot, which makes it the natural
//     cross-check for permutation bookkeeping.
//
// Notes:
//   - All kernels use central validators and return sentinels wrapped via
//     matrixErrorf at the facade.

package matrix

import "fmt"

// ZeroSum is the initial accumulator value for substitution and dot products.
const ZeroSum = 0.0

// ZeroPivot is the sentinel for detecting a zero pivot in LU/Inverse routines.
const ZeroPivot = 0.0

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opMul     = "Mul"
	opMatVec  = "MatVec"
	opLU      = "LU"
	opInverse = "Inverse"
	opSolve   = "SolveFullPivot"
)

// matrixErrorf wraps err with an operation tag, preserving the original error
// via %w. The wrapper keeps a stable "Op: underlying" shape for uniform
// reporting across facades. Use only when err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Mul performs standard matrix multiplication C = A × B (no aliasing).
//
// Implementation:
//   - Stage 1: Validate A, B non-nil and inner dimensions (A.Cols == B.Rows).
//   - Stage 2: i→k→j loop with row-major strides, skipping zero A[i,k].
//
// Inputs:
//   - a: left matrix with shape (r × n).
//   - b: right matrix with shape (n × c).
//
// Returns:
//   - *Dense: new C with shape (r × c).
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (inner mismatch).
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c).
func Mul(a, b *Dense) (*Dense, error) {
	// Validate inputs
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	if err := ValidateNotNil(b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	if a.c != b.r {
		return nil, matrixErrorf(opMul, ErrDimensionMismatch)
	}

	// Allocate result Dense
	res, err := NewDense(a.r, b.c)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	// Row-major multiplication into res.data:
	// a.data layout i*a.c + k, b.data layout k*b.c + j.
	var (
		i, j, k                            int
		av                                 float64
		rowOffsetA, rowOffsetB, rowOffsetR int
	)
	for i = 0; i < a.r; i++ {
		rowOffsetA = i * a.c
		rowOffsetR = i * b.c
		for k = 0; k < a.c; k++ {
			av = a.data[rowOffsetA+k]
			if av == 0 {
				continue // skip zero for performance
			}
			rowOffsetB = k * b.c
			for j = 0; j < b.c; j++ {
				res.data[rowOffsetR+j] += av * b.data[rowOffsetB+j]
			}
		}
	}

	return res, nil
}

// MatVec computes y = m * x for a column vector x.
//
// Contract: m non-nil; x non-nil; len(x) == m.Cols().
// Determinism: fixed i→j loop order.
// Complexity: Time O(r*c), Space O(r) for y.
func MatVec(m *Dense, x []float64) ([]float64, error) {
	// Validate m is not nil.
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	// Validate x is not nil and matches the number of columns.
	if err := ValidateVecLen(x, m.c); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}

	// One pass per row with flat indexing.
	y := make([]float64, m.r)
	var (
		i, j, base int
		acc, xv    float64
	)
	for i = 0; i < m.r; i++ {
		acc = ZeroSum
		base = i * m.c
		for j = 0; j < m.c; j++ {
			xv = x[j]
			if xv != 0 { // skip zero multiplications
				acc += m.data[base+j] * xv
			}
		}
		y[i] = acc
	}

	return y, nil
}

// LU computes the Doolittle factorization A = L*U with unit diagonal on L
// (no pivoting).
//
// Implementation:
//   - Stage 1: Validate m (not nil, square); allocate Dense L, U; diag(L)=1.
//   - Stage 2: For i=0..n-1, build row i of U and column i of L in fixed order.
//
// Returns:
//   - *Dense: L (unit lower triangular).
//   - *Dense: U (upper triangular).
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrSingular (if U[i,i]==0 during
//     factorization).
//
// Determinism:
//   - Fixed i→{j≥i} for U, then {j>i}→i for L; no pivoting by design, so the
//     factorization is bit-for-bit reproducible and independent of the
//     full-pivot solver's permutation bookkeeping.
//
// Complexity:
//   - Time O(n³), Space O(n²).
func LU(m *Dense) (*Dense, *Dense, error) {
	// Validate input non-nil and square
	if err := ValidateNotNil(m); err != nil {
		return nil, nil, matrixErrorf(opLU, err)
	}
	if err := ValidateSquare(m); err != nil {
		return nil, nil, matrixErrorf(opLU, err)
	}

	// Allocate L and U
	n := m.r
	l, err := NewDense(n, n)
	if err != nil {
		return nil, nil, matrixErrorf(opLU, err)
	}
	u, err := NewDense(n, n)
	if err != nil {
		return nil, nil, matrixErrorf(opLU, err)
	}

	// Initialize L diagonal to 1 (unit lower triangular)
	for i := 0; i < n; i++ {
		l.data[i*n+i] = 1.0
	}

	// Doolittle decomposition on flat slices.
	var (
		i, j, k      int
		sum, pivot   float64
		baseI, baseJ int
	)
	for i = 0; i < n; i++ {
		// Compute U[i][j] for j >= i
		baseI = i * n
		for j = i; j < n; j++ {
			sum = ZeroSum
			for k = 0; k < i; k++ {
				sum += l.data[baseI+k] * u.data[k*n+j]
			}
			u.data[baseI+j] = m.data[baseI+j] - sum
		}

		// Zero-pivot guard (deterministic singularity detection)
		if u.data[baseI+i] == ZeroPivot {
			return nil, nil, matrixErrorf(opLU, ErrSingular)
		}

		// Compute L[j][i] for j > i
		pivot = u.data[baseI+i]
		for j = i + 1; j < n; j++ {
			sum = ZeroSum
			baseJ = j * n
			for k = 0; k < i; k++ {
				sum += l.data[baseJ+k] * u.data[k*n+i]
			}
			l.data[baseJ+i] = (m.data[baseJ+i] - sum) / pivot
		}
	}

	return l, u, nil
}

// Inverse computes A⁻¹ via the Doolittle LU factorization (no pivoting).
// The input must be non-nil and square. Returns ErrSingular if a zero pivot
// is detected. Produces a new Dense; does not mutate the input.
//
// Implementation:
//   - Stage 1: Validate; factorize via LU(m) → L, U.
//   - Stage 2: For each canonical basis column e_col:
//     forward solve L*y = e_col (top-down), backward solve U*x = y
//     (bottom-up with nonzero-pivot checks), write x into column col.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrSingular, propagated LU errors.
//
// Complexity:
//   - Time O(n³), Space O(n²).
//
// Notes:
//   - No pivoting: upstream callers should avoid ill-conditioned inputs.
//     This package's own tests use Inverse as an independent cross-check for
//     SolveFullPivot precisely because the two share no permutation logic.
func Inverse(m *Dense) (*Dense, error) {
	// Validate input non-nil and square
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opInverse, err)
	}

	// LU decomposition (Doolittle)
	l, u, err := LU(m)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}

	// Prepare result container and scratch arrays
	n := m.r
	inv, err := NewDense(n, n)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}

	var (
		col, i, k      int
		sum, pivot     float64
		baseLi, baseUi int
		y              = make([]float64, n) // forward substitution workspace
		x              = make([]float64, n) // backward substitution workspace
	)
	for col = 0; col < n; col++ {
		// Forward substitution: L*y = e_col
		for i = 0; i < n; i++ {
			sum = ZeroSum
			baseLi = i * n
			for k = 0; k < i; k++ {
				sum += l.data[baseLi+k] * y[k]
			}
			if i == col {
				y[i] = 1.0 - sum
			} else {
				y[i] = -sum
			}
		}
		// Backward substitution: U*x = y
		for i = n - 1; i >= 0; i-- {
			sum = ZeroSum
			baseUi = i * n
			for k = i + 1; k < n; k++ {
				sum += u.data[baseUi+k] * x[k]
			}
			pivot = u.data[baseUi+i]
			if pivot == ZeroPivot {
				return nil, matrixErrorf(opInverse, ErrSingular)
			}
			x[i] = (y[i] - sum) / pivot
		}
		// Write x into column col of inv
		for i = 0; i < n; i++ {
			inv.data[i*n+col] = x[i]
		}
	}

	return inv, nil
}
