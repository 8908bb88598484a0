// Package interpol reconstructs smooth functions from scattered samples —
// Radial Basis Function (RBF) interpolation with an affine term, backed by
// a full-pivot dense linear solver.
//
// 🚀 What is interpol?
//
//	A small, focused library that turns n scattered (point → value-vector)
//	samples into a callable interpolant:
//	  • rbf/    — build an Interpolator from samples + a kernel, evaluate anywhere
//	  • kernel/ — ready-made radial kernels (cubic scalar / Euclidean / angular)
//	  • matrix/ — dense float64 matrices with a full-pivot Gauss–Jordan solver
//
// ✨ Why choose interpol?
//
//   - Exact at the samples – the interpolant reproduces every input value
//   - Any point type – the kernel decides what a "point" is (generics)
//   - Full pivoting – row+column pivot search for numerical robustness
//   - Pure Go – no cgo, tiny dependency surface
//
// Quick sketch:
//
//	phi := kernel.EuclideanCubic
//	ip, err := rbf.Build(phi, points, values, nil)
//	if err != nil { ... }
//	v := ip.Evaluate([]float64{0.5, 0.5, 0})
//
// Dive into rbf/doc.go for the algorithm walkthrough and matrix/doc.go for
// the solver details.
//
//	go get github.com/katalvlaran/interpol
package interpol
