// SPDX-License-Identifier: MIT
// Package matrix: full-pivot Gauss–Jordan elimination.
//
// Purpose:
//   - Solve M·X = B in place for a square system M and a multi-column
//     right-hand side B, reducing M to the identity and leaving X in B.
//   - Full (row + column) pivoting: each step selects the largest-magnitude
//     entry of the remaining submatrix across ALL columns, trading an O(n²)
//     scan per step for robustness on dense, near-singular systems.
//
// Notes:
//   - Column swaps permute the unknowns; the pivot trail records them and a
//     reverse-order row fix-up on B restores the original unknown order.
//   - A step with no pivot above tol means the remaining submatrix is
//     singular: the routine stops and returns ErrSingular rather than
//     leaving silently unresolved rows behind.

package matrix

import "math"

// SolveFullPivot solves m·X = b in place using Gauss–Jordan elimination with
// full pivoting. On success m has been reduced to a permuted identity and b
// holds the solution X, rows ordered to match the original unknowns. The
// columns of b are independent right-hand sides and are never column-swapped.
//
// tol is the magnitude below which a prospective pivot is treated as zero;
// pass 0 for exact-zero detection.
//
// Implementation:
//   - Stage 1 (Validate): m, b non-nil; m square; b.Rows == m.Rows; tol ≥ 0.
//   - Stage 2 (Eliminate): for each step dag = 0..n-1:
//     pivot search → row swap (m and b) → column swap (m only, recorded)
//     → pivot-row normalization → elimination of every other row.
//   - Stage 3 (Un-permute): replay the pivot trail in reverse, swapping the
//     corresponding rows of b to undo the column permutations.
//
// Behavior highlights:
//   - Both m and b are mutated; callers needing the originals must Clone.
//   - On ErrSingular the contents of m and b are unspecified (partially
//     eliminated); no partial solution is ever reported as success.
//
// Inputs:
//   - m:   square system matrix (n×n), mutated toward the identity.
//   - b:   right-hand side (n×d), mutated into the solution.
//   - tol: non-negative pivot threshold (0 = exact).
//
// Returns:
//   - error: nil on success, otherwise a wrapped sentinel.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrDimensionMismatch (validation),
//   - ErrSingular (no pivot with |entry| > tol in the remaining submatrix).
//
// Determinism:
//   - Fixed row-major pivot scan; ties resolve to the first (lowest row,
//     then lowest column) maximal entry. Identical inputs give identical
//     results.
//
// Complexity:
//   - Time O(n³ + n²·d), Space O(n) for the pivot trail.
func SolveFullPivot(m, b *Dense, tol float64) error {
	// Validate operands
	if err := ValidateNotNil(m); err != nil {
		return matrixErrorf(opSolve, err)
	}
	if err := ValidateNotNil(b); err != nil {
		return matrixErrorf(opSolve, err)
	}
	if err := ValidateSquare(m); err != nil {
		return matrixErrorf(opSolve, err)
	}
	if err := ValidateSameRows(m, b); err != nil {
		return matrixErrorf(opSolve, err)
	}
	if tol < 0 || math.IsNaN(tol) {
		return matrixErrorf(opSolve, ErrNaNInf)
	}

	n := m.r // system size
	d := b.c // number of independent right-hand sides

	// pivotCol[dag] records which column was swapped into position dag;
	// replayed in reverse afterwards to restore unknown order in b.
	pivotCol := make([]int, n)

	var (
		dag, r, c        int     // elimination step and scan indices
		pr, pc           int     // pivot row/column for the current step
		best, abs        float64 // pivot search accumulators
		piv, inv, factor float64 // pivot value, its reciprocal, row factor
		base, pivBase    int     // flat row offsets into m.data
		bBase, bPivBase  int     // flat row offsets into b.data
		k                int     // inner elimination index
	)

	for dag = 0; dag < n; dag++ {
		// Pivot search: largest |entry| over rows dag..n-1 and ALL columns.
		// Columns left of dag are already reduced to zero in these rows, so
		// scanning them is harmless; the full scan mirrors the column-swap
		// bookkeeping exactly.
		best, pr, pc = 0, -1, -1
		for r = dag; r < n; r++ {
			base = r * n
			for c = 0; c < n; c++ {
				abs = math.Abs(m.data[base+c])
				if abs > best {
					best, pr, pc = abs, r, c
				}
			}
		}
		// No pivot above tol → the remaining submatrix is singular.
		if pr < 0 || best <= tol {
			return matrixErrorf(opSolve, ErrSingular)
		}

		// Row swap: bring the pivot row into position dag in both m and b.
		m.swapRows(dag, pr)
		b.swapRows(dag, pr)

		// Column swap: bring the pivot column into position dag in m only
		// (b's columns are independent components, not unknowns) and record
		// it for the final un-permutation.
		m.swapCols(dag, pc)
		pivotCol[dag] = pc

		// Normalize: scale the pivot row so m[dag][dag] becomes exactly 1.
		pivBase = dag * n
		piv = m.data[pivBase+dag]
		inv = 1 / piv
		for c = dag; c < n; c++ {
			m.data[pivBase+c] *= inv
		}
		bPivBase = dag * d
		for k = 0; k < d; k++ {
			b.data[bPivBase+k] *= inv
		}
		m.data[pivBase+dag] = 1 // clamp away residual rounding

		// Eliminate: zero column dag in every other row.
		for r = 0; r < n; r++ {
			if r == dag {
				continue
			}
			base = r * n
			factor = m.data[base+dag]
			if factor == 0 {
				continue // already clear
			}
			for c = dag; c < n; c++ {
				m.data[base+c] -= factor * m.data[pivBase+c]
			}
			m.data[base+dag] = 0 // clamp away residual rounding
			bBase = r * d
			for k = 0; k < d; k++ {
				b.data[bBase+k] -= factor * b.data[bPivBase+k]
			}
		}
	}

	// Un-permute: a column swap at step dag moved unknown pivotCol[dag] into
	// slot dag; reversing the trail swaps the solution rows back so row i of
	// b belongs to original unknown i.
	for dag = n - 1; dag >= 0; dag-- {
		if pivotCol[dag] != dag {
			b.swapRows(dag, pivotCol[dag])
		}
	}

	return nil
}
