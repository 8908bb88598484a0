// SPDX-License-Identifier: MIT

// Package matrix provides dense float64 linear algebra for small systems:
// a row-major Dense type, elementary operations (Mul, MatVec, Transpose-free
// helpers), Doolittle LU factorization with inversion, and the package's
// centerpiece — SolveFullPivot, an in-place Gauss–Jordan elimination with
// full (row + column) pivoting.
//
// 🚀 Why full pivoting?
//
//	At every elimination step the largest-magnitude entry of the remaining
//	submatrix is searched across rows AND columns and swapped into the pivot
//	position. This costs an extra O(n²) scan per step but is markedly more
//	robust than partial pivoting on the dense, nearly-singular systems that
//	radial-basis interpolation produces. Target problem sizes are tens to
//	low hundreds of unknowns, where the scan is cheap.
//
// ✨ Key entry points:
//   - NewDense / NewDenseFrom — allocate or wrap row-major storage
//   - SolveFullPivot          — M·X = B, solved in place for many RHS columns
//   - LU / Inverse            — deterministic Doolittle path (no pivoting),
//     useful as an independent cross-check
//   - Mul / MatVec            — plain products for verification pipelines
//
// All functions perform strict fail-fast validation and return the package
// sentinel errors; nothing panics on user input. Tests must match errors
// via errors.Is.
//
// Complexity: SolveFullPivot is O(n³ + n²·d) time, O(n) extra memory for
// the pivot trail; LU/Inverse are O(n³).
package matrix
