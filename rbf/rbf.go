package rbf

import (
	"fmt"

	"github.com/katalvlaran/interpol/matrix"
)

// Interpolator is an immutable RBF interpolant: a kernel, the original
// sample points, and the solved weight rows (n sample weights plus one
// affine row). Construction happens exclusively through Build; after that
// the instance is read-only and Evaluate is safe for concurrent use.
type Interpolator[P any] struct {
	phi     Kernel[P]   // caller-supplied radial basis function
	points  []P         // sample points, original order
	weights [][]float64 // n+1 solved rows of length dim; weights[n] = affine term
	dim     int         // value-vector dimension d
}

// Build constructs an Interpolator from n sample points and their n
// value-vectors of common dimension d, solving the augmented kernel system
// with full-pivot Gauss–Jordan elimination.
//
// opts may be nil, which means DefaultOptions(); see Options for the
// parallel-fill and pivot-tolerance knobs.
//
// Implementation:
//   - Stage 1 (Validate): non-nil kernel; len(points) == len(values);
//     at least one sample; value vectors of one common length d ≥ 1.
//   - Stage 2 (Assemble): buildSystem — symmetric kernel block (one call per
//     unordered pair), affine border, copied weight rows.
//   - Stage 3 (Solve): matrix.SolveFullPivot reduces the system in place;
//     the weight matrix becomes the solution, rows back in sample order.
//   - Stage 4 (Freeze): points are copied and the solved rows captured; the
//     returned Interpolator owns all of its state.
//
// Behavior highlights:
//   - Caller data is never aliased: points and value vectors are copied
//     before the solver mutates anything.
//   - A singular system (duplicate points, or a kernel that cannot span the
//     samples) fails with ErrSingular; no partially-solved interpolant is
//     ever returned.
//
// Inputs:
//   - phi:    symmetric radial basis function (see Kernel contract).
//   - points: n sample points (n ≥ 1 for a usable interpolant).
//   - values: n value-vectors, all of one length d ≥ 1.
//   - opts:   nil or a pointer to caller options.
//
// Returns:
//   - *Interpolator[P]: the immutable interpolant.
//
// Errors:
//   - ErrEmptyInput         — zero samples (the explicit "no interpolant" case).
//   - ErrDimensionMismatch  — length mismatch, ragged values, or d == 0.
//   - ErrNilKernel          — phi == nil.
//   - ErrSingular           — elimination found no usable pivot.
//
// Complexity: O(n²) kernel calls + O(n³ + n²·d) solve.
func Build[P any](phi Kernel[P], points []P, values [][]float64, opts *Options) (*Interpolator[P], error) {
	// Apply options or defaults.
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}

	// Validate the kernel.
	if phi == nil {
		return nil, ErrNilKernel
	}
	// Validate sample-set shape before touching any matrix memory.
	if len(points) != len(values) {
		return nil, ErrDimensionMismatch
	}
	// Zero samples: the explicit empty case, distinct from corruption.
	if len(values) == 0 {
		return nil, ErrEmptyInput
	}
	// All value vectors must share one positive dimension d.
	d := len(values[0])
	if d == 0 {
		return nil, ErrDimensionMismatch
	}
	for i := 1; i < len(values); i++ {
		if len(values[i]) != d {
			return nil, ErrDimensionMismatch
		}
	}

	// Assemble the augmented system and the right-hand side.
	m, w, err := buildSystem(phi, points, values, o.Workers)
	if err != nil {
		return nil, fmt.Errorf("rbf: Build: %w", err)
	}

	// Solve in place: m → identity (permuted), w → weights in sample order.
	if err = matrix.SolveFullPivot(m, w, o.PivotTolerance); err != nil {
		return nil, fmt.Errorf("rbf: Build: %w", err)
	}

	// Freeze state: copy points, capture the solved rows. The weight matrix
	// is owned solely by the interpolator from here on and never mutated.
	n := len(points)
	pts := make([]P, n)
	copy(pts, points)
	rows := make([][]float64, n+1)
	for i := 0; i <= n; i++ {
		if rows[i], err = w.Row(i); err != nil {
			return nil, fmt.Errorf("rbf: Build: %w", err)
		}
	}

	return &Interpolator[P]{phi: phi, points: pts, weights: rows, dim: d}, nil
}

// Evaluate computes the interpolated value-vector at query point q:
//
//	f(q) = w[n] + Σ_{i<n} phi(q, p_i) · w[i]
//
// Pure and read-only: safe to call concurrently for different (or identical)
// query points. Allocates the d-length result; use EvaluateInto to reuse a
// buffer in hot loops.
// Complexity: n kernel calls + O(n·d).
func (ip *Interpolator[P]) Evaluate(q P) []float64 {
	out := make([]float64, ip.dim)
	_ = ip.EvaluateInto(q, out) // length is correct by construction

	return out
}

// EvaluateInto computes the interpolated value-vector at q into out, which
// must have length Dim(). Returns ErrDimensionMismatch otherwise.
// Complexity: n kernel calls + O(n·d).
func (ip *Interpolator[P]) EvaluateInto(q P, out []float64) error {
	// Validate the output buffer.
	if len(out) != ip.dim {
		return ErrDimensionMismatch
	}

	// Start from the affine term.
	copy(out, ip.weights[len(ip.points)])

	// Accumulate the kernel expansion, one fixed argument order throughout.
	var r float64
	var k int
	for i, p := range ip.points {
		r = ip.phi(q, p)
		if r == 0 {
			continue // query coincides with the sample; nothing to add
		}
		for k = 0; k < ip.dim; k++ {
			out[k] += r * ip.weights[i][k]
		}
	}

	return nil
}

// Len returns the number of sample points n.
func (ip *Interpolator[P]) Len() int {
	return len(ip.points)
}

// Dim returns the value-vector dimension d.
func (ip *Interpolator[P]) Dim() int {
	return ip.dim
}

// Weight returns a copy of solved weight row i: rows 0..Len()-1 are the
// per-sample kernel weights, row Len() is the affine offset term.
// Returns matrix.ErrOutOfRange for an invalid index.
func (ip *Interpolator[P]) Weight(i int) ([]float64, error) {
	if i < 0 || i > len(ip.points) {
		return nil, fmt.Errorf("Interpolator.Weight(%d): %w", i, matrix.ErrOutOfRange)
	}
	row := make([]float64, ip.dim)
	copy(row, ip.weights[i])

	return row, nil
}
