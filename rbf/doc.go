// Package rbf builds smooth interpolating functions over scattered samples
// using a Radial Basis Function expansion with an affine (constant) term.
//
// 🚀 What is RBF interpolation?
//
//	Given n samples (point → value-vector) and a symmetric kernel phi, the
//	interpolant is
//
//	  f(q) = w[n] + Σ_{i<n} phi(q, p_i) · w[i]
//
//	where the weights solve the augmented (n+1)×(n+1) linear system: an n×n
//	block of pairwise kernel distances phi(p_i, p_j), bordered by a row and
//	column of 1s (zero corner) that pins the affine term and forces the
//	sample weights to sum to zero. The system is solved by Gauss–Jordan
//	elimination with full pivoting (see matrix.SolveFullPivot).
//
// ✨ Key features:
//   - exact at the samples: f(p_i) reproduces value_i (nonsingular systems)
//   - any point type: Build is generic over P; the kernel defines geometry
//   - value-vectors of any fixed dimension d, solved in one elimination pass
//   - optional parallel kernel-block fill (Options.Workers)
//   - singular systems surface as ErrSingular — never a silently wrong result
//
// ⚙️ Usage:
//
//	import (
//	  "github.com/katalvlaran/interpol/kernel"
//	  "github.com/katalvlaran/interpol/rbf"
//	)
//
//	points := [][]float64{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}, {1, 1, 0}}
//	values := [][]float64{{1}, {2}, {3}, {4}}
//
//	ip, err := rbf.Build(kernel.EuclideanCubic, points, values, nil)
//	if err != nil {
//	  // handle ErrEmptyInput / ErrDimensionMismatch / ErrSingular
//	}
//	mid := ip.Evaluate([]float64{0.5, 0.5, 0}) // ≈ [2.5]
//
// Kernel contract: phi must be symmetric in its arguments and must not be an
// even power of a Euclidean-style distance (odd powers, such as the cubic
// presets in the kernel package, are the supported family). The builder
// exploits symmetry — each unordered pair is evaluated exactly once.
//
// Concurrency: a built Interpolator is immutable; Evaluate is pure and safe
// to call concurrently from many goroutines. Build itself is synchronous.
//
// Performance: Build is O(n²) kernel calls + O(n³ + n²·d) solve;
// Evaluate is O(n·d) plus n kernel calls.
//
// See examples in example_test.go.
package rbf
