// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for common validation checks.
//  - Keep solver/operation code minimal by delegating shape/nil checks here.
//  - Return plain sentinel errors (no wrapping) so call sites can wrap uniformly.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate nothing.
//  - ValidateFinite runs a single O(n) pass.

package matrix

import (
	"fmt"
	"math"
)

// validatorErrorf wraps an underlying error with the given validator tag.
// Used internally to maintain consistent labeling of sentinel violations.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil.
//
// Inputs: *Dense value.
// Returns ErrNilMatrix if m == nil.
// Complexity: O(1).
func ValidateNotNil(m *Dense) error {
	// If the matrix is nil, fail with the unified sentinel.
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix) // single source of truth for "nil argument"
	}

	return nil
}

// ValidateSquare checks that m is square (Rows == Cols).
//
// Inputs: non-nil *Dense (caller must ensure).
// Errors: ErrNonSquare if rows != cols.
// Complexity: O(1).
func ValidateSquare(m *Dense) error {
	// Check the square condition explicitly.
	if m.r != m.c {
		return validatorErrorf("ValidateSquare", ErrNonSquare)
	}

	return nil
}

// ValidateSameRows ensures a and b have the same number of rows.
// Used to pair a square system with its right-hand side.
//
// Inputs: two non-nil *Dense values (caller must ensure).
// Errors: ErrDimensionMismatch on row count disagreement.
// Complexity: O(1).
func ValidateSameRows(a, b *Dense) error {
	if a.r != b.r {
		return validatorErrorf("ValidateSameRows", ErrDimensionMismatch)
	}

	return nil
}

// ValidateVecLen ensures the vector length matches the required size n.
//
// Errors: ErrNilMatrix for nil input, ErrDimensionMismatch on length mismatch.
// Complexity: O(1).
func ValidateVecLen(x []float64, n int) error {
	// Disallow nil vectors to avoid subtle bugs in MatVec-like routines.
	if x == nil {
		return validatorErrorf("ValidateVecLen", ErrNilMatrix) // reuse the existing sentinel for "nil argument"
	}
	// Check the exact expected length.
	if len(x) != n {
		return validatorErrorf("ValidateVecLen", ErrDimensionMismatch)
	}

	return nil
}

// ValidateFinite rejects NaN and ±Inf entries.
// Pivot selection orders entries by absolute value, which is meaningless in
// the presence of NaN; fail fast at ingestion instead.
//
// Errors: ErrNaNInf on the first offending entry.
// Complexity: O(n).
func ValidateFinite(vals []float64) error {
	for i, v := range vals {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return validatorErrorf(fmt.Sprintf("ValidateFinite[%d]", i), ErrNaNInf)
		}
	}

	return nil
}
