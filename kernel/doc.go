// Package kernel ships ready-made radial basis kernels for the rbf package:
// symmetric distance functions phi(a, b) suitable for interpolation with an
// affine term.
//
// 🚀 Which kernel do I pick?
//
//   - AbsCubic       — scalar samples on the real line
//   - EuclideanCubic — point samples in R^k (any fixed k)
//   - AngularCubic   — direction samples (unit-ish vectors), distance by angle
//
// All three are odd (cubic) powers of a metric distance. That is not an
// accident: the augmented RBF system with an affine row is only guaranteed
// solvable for conditionally positive-definite kernels, and even powers of a
// Euclidean-style distance break that guarantee. A custom phi must be
// symmetric in its arguments and must NOT be an even power of such a
// distance — this is a caller obligation, the builder does not (and cannot)
// validate it.
//
// ⚙️ Usage:
//
//	import (
//	  "github.com/katalvlaran/interpol/kernel"
//	  "github.com/katalvlaran/interpol/rbf"
//	)
//
//	ip, err := rbf.Build(kernel.EuclideanCubic, points, values, nil)
//
// Performance: every preset is a pure O(k) function of its two arguments
// with no allocations.
package kernel
