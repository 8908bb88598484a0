// Package rbf: augmented-system assembly (the "builder" stage).
//
// The system couples the n×n pairwise kernel block with one extra affine
// row/column of 1s (zero corner):
//
//	⎡ phi(p_0,p_0) … phi(p_0,p_{n-1})  1 ⎤   ⎡ w_0   ⎤   ⎡ v_0   ⎤
//	⎢      ⋮        ⋱        ⋮         ⋮ ⎥ · ⎢  ⋮    ⎥ = ⎢  ⋮    ⎥
//	⎢ phi(p_{n-1},p_0) …               1 ⎥   ⎢ w_n-1 ⎥   ⎢ v_n-1 ⎥
//	⎣      1        …        1         0 ⎦   ⎣ w_n   ⎦   ⎣  0    ⎦
//
// The last equation forces Σ w_i = 0 and the last unknown w_n becomes the
// affine offset of the interpolant.
package rbf

import (
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/interpol/matrix"
)

// buildSystem assembles the (n+1)×(n+1) augmented matrix and the (n+1)×d
// initial weight matrix for n points with value-vectors of dimension d.
//
// Stage 1 (Allocate): zeroed Dense system and weight matrices.
// Stage 2 (Kernel block): phi(p_i, p_j) computed once per unordered pair
// (i ≤ j, one fixed argument order) and mirrored — sequentially, or across
// workers goroutines when workers ≥ 2 (pair targets are disjoint, so the
// writes need no synchronization, and fill order is not observable because
// every entry is written exactly once).
// Stage 3 (Affine border): row/column n set to 1 with a zero corner.
// Stage 4 (Weights): rows 0..n-1 copy the caller's value vectors (no
// aliasing — the solver mutates them in place), row n stays zero.
//
// Inputs are pre-validated by Build: n ≥ 1, len(values) == n, all value
// vectors of common length d ≥ 1.
// Complexity: O(n²) kernel calls + O(n·d) copies, O(n² + n·d) memory.
func buildSystem[P any](phi Kernel[P], points []P, values [][]float64, workers int) (*matrix.Dense, *matrix.Dense, error) {
	n := len(points)
	d := len(values[0])

	// Allocate the augmented system and the weight matrix.
	m, err := matrix.NewDense(n+1, n+1)
	if err != nil {
		return nil, nil, err
	}
	w, err := matrix.NewDense(n+1, d)
	if err != nil {
		return nil, nil, err
	}

	// Symmetric kernel block: each unordered pair evaluated exactly once.
	if workers >= 2 {
		fillParallel(m, phi, points, workers)
	} else {
		fillSequential(m, phi, points)
	}

	// Affine border: 1s along row/column n, zero corner.
	for i := 0; i < n; i++ {
		if err = m.Set(i, n, 1); err != nil {
			return nil, nil, err
		}
		if err = m.Set(n, i, 1); err != nil {
			return nil, nil, err
		}
	}

	// Weight rows: copies of the value vectors; the affine row stays zero.
	var row []float64
	for i := 0; i < n; i++ {
		if row, err = w.Row(i); err != nil {
			return nil, nil, err
		}
		copy(row, values[i])
	}

	return m, w, nil
}

// fillSequential writes the pairwise kernel block in a fixed i ≤ j order.
func fillSequential[P any](m *matrix.Dense, phi Kernel[P], points []P) {
	n := len(points)
	var v float64
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			v = phi(points[i], points[j]) // one call per unordered pair
			_ = m.Set(i, j, v)            // indices valid by construction
			_ = m.Set(j, i, v)
		}
	}
}

// fillParallel distributes kernel-block rows across workers goroutines.
// Row task i owns pairs (i, j) for j ≥ i, so the write targets (i,j) and
// (j,i) of distinct tasks never overlap.
func fillParallel[P any](m *matrix.Dense, phi Kernel[P], points []P, workers int) {
	n := len(points)

	var g errgroup.Group
	g.SetLimit(workers)
	for i := 0; i < n; i++ {
		i := i
		g.Go(func() error {
			var v float64
			for j := i; j < n; j++ {
				v = phi(points[i], points[j])
				_ = m.Set(i, j, v)
				_ = m.Set(j, i, v)
			}

			return nil
		})
	}
	// Kernel functions cannot fail; Wait only synchronizes completion.
	_ = g.Wait()
}
