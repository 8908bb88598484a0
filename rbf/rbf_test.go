package rbf_test

import (
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/interpol/kernel"
	"github.com/katalvlaran/interpol/rbf"
)

const evalTol = 1e-8 // numeric tolerance for interpolation assertions

// unitSquare is the canonical fixture: four corners of the unit square in
// the z=0 plane with scalar values 1..4.
func unitSquare() (points [][]float64, values [][]float64) {
	points = [][]float64{
		{0, 0, 0},
		{1, 0, 0},
		{0, 1, 0},
		{1, 1, 0},
	}
	values = [][]float64{{1}, {2}, {3}, {4}}

	return points, values
}

// TestBuild_EmptyInput verifies that zero samples yield the explicit
// "no interpolant" sentinel, not a crash and not a usable result.
func TestBuild_EmptyInput(t *testing.T) {
	ip, err := rbf.Build(kernel.EuclideanCubic, nil, nil, nil)
	assert.ErrorIs(t, err, rbf.ErrEmptyInput, "zero samples must yield ErrEmptyInput")
	assert.Nil(t, ip, "no interpolator on empty input")
}

// TestBuild_NilKernel verifies the nil-kernel guard.
func TestBuild_NilKernel(t *testing.T) {
	points, values := unitSquare()
	_, err := rbf.Build[[]float64](nil, points, values, nil)
	assert.ErrorIs(t, err, rbf.ErrNilKernel)
}

// TestBuild_DimensionMismatch covers every fail-fast shape guard.
func TestBuild_DimensionMismatch(t *testing.T) {
	points, values := unitSquare()

	// Point/value list length mismatch.
	_, err := rbf.Build(kernel.EuclideanCubic, points[:3], values, nil)
	assert.ErrorIs(t, err, rbf.ErrDimensionMismatch, "length mismatch must error")

	// Ragged value vectors.
	ragged := [][]float64{{1}, {2, 9}, {3}, {4}}
	_, err = rbf.Build(kernel.EuclideanCubic, points, ragged, nil)
	assert.ErrorIs(t, err, rbf.ErrDimensionMismatch, "ragged values must error")

	// Zero-dimensional value vectors.
	empty := [][]float64{{}, {}, {}, {}}
	_, err = rbf.Build(kernel.EuclideanCubic, points, empty, nil)
	assert.ErrorIs(t, err, rbf.ErrDimensionMismatch, "d == 0 must error")
}

// TestBuild_DuplicatePointsSingular verifies that two identical sample
// points with different values surface as a singular system instead of a
// silently wrong interpolant.
func TestBuild_DuplicatePointsSingular(t *testing.T) {
	points := [][]float64{{0, 0}, {0, 0}, {1, 1}}
	values := [][]float64{{1}, {2}, {3}}

	_, err := rbf.Build(kernel.EuclideanCubic, points, values, nil)
	assert.ErrorIs(t, err, rbf.ErrSingular, "duplicate points must be singular")
}

// TestBuild_UnitSquareScenario pins the concrete reference scenario:
// corners reproduce their values and the center interpolates to 2.5.
func TestBuild_UnitSquareScenario(t *testing.T) {
	points, values := unitSquare()

	ip, err := rbf.Build(kernel.EuclideanCubic, points, values, nil)
	require.NoError(t, err)
	require.Equal(t, 4, ip.Len())
	require.Equal(t, 1, ip.Dim())

	assert.InDelta(t, 1.0, ip.Evaluate([]float64{0, 0, 0})[0], evalTol, "corner (0,0,0)")
	assert.InDelta(t, 2.0, ip.Evaluate([]float64{1, 0, 0})[0], evalTol, "corner (1,0,0)")
	assert.InDelta(t, 3.0, ip.Evaluate([]float64{0, 1, 0})[0], evalTol, "corner (0,1,0)")
	assert.InDelta(t, 4.0, ip.Evaluate([]float64{1, 1, 0})[0], evalTol, "corner (1,1,0)")
	assert.InDelta(t, 2.5, ip.Evaluate([]float64{0.5, 0.5, 0})[0], evalTol, "center")
}

// TestBuild_ExactAtSamples checks the exactness property on scattered 3-D
// points with 2-D value vectors.
func TestBuild_ExactAtSamples(t *testing.T) {
	points := [][]float64{
		{0.1, 0.9, 0.3},
		{0.7, 0.2, 0.8},
		{0.4, 0.4, 0.1},
		{0.9, 0.6, 0.5},
		{0.2, 0.1, 0.9},
		{0.6, 0.8, 0.7},
	}
	values := [][]float64{
		{1.5, -2.0},
		{0.3, 4.1},
		{-1.2, 0.7},
		{2.8, -0.4},
		{0.0, 1.1},
		{-3.3, 2.2},
	}

	ip, err := rbf.Build(kernel.EuclideanCubic, points, values, nil)
	require.NoError(t, err)

	for i, p := range points {
		got := ip.Evaluate(p)
		require.Len(t, got, 2)
		assert.InDelta(t, values[i][0], got[0], evalTol, "sample %d component 0", i)
		assert.InDelta(t, values[i][1], got[1], evalTol, "sample %d component 1", i)
	}
}

// TestBuild_ScalarPoints exercises the generic point type with plain float64
// samples and the AbsCubic preset.
func TestBuild_ScalarPoints(t *testing.T) {
	points := []float64{0, 1, 2, 3.5}
	values := [][]float64{{0}, {1}, {4}, {12.25}}

	ip, err := rbf.Build(kernel.AbsCubic, points, values, nil)
	require.NoError(t, err)

	for i, p := range points {
		assert.InDelta(t, values[i][0], ip.Evaluate(p)[0], evalTol, "scalar sample %d", i)
	}
}

// TestBuild_AffineConsistency asserts the structural invariant enforced by
// the affine constraint row: the per-sample weights sum to the zero vector.
func TestBuild_AffineConsistency(t *testing.T) {
	points, values := unitSquare()

	ip, err := rbf.Build(kernel.EuclideanCubic, points, values, nil)
	require.NoError(t, err)

	sum := make([]float64, ip.Dim())
	for i := 0; i < ip.Len(); i++ {
		row, werr := ip.Weight(i)
		require.NoError(t, werr)
		for k, v := range row {
			sum[k] += v
		}
	}
	for k, v := range sum {
		assert.InDelta(t, 0.0, v, evalTol, "weight sum component %d", k)
	}
}

// TestBuild_KernelOncePerPair verifies the symmetry optimization: phi runs
// exactly once per unordered pair (i ≤ j, self-pairs included).
func TestBuild_KernelOncePerPair(t *testing.T) {
	points := []float64{0, 1, 2, 3, 4}
	values := [][]float64{{0}, {1}, {8}, {27}, {64}}

	var calls int64
	counting := func(a, b float64) float64 {
		atomic.AddInt64(&calls, 1)

		return kernel.AbsCubic(a, b)
	}

	_, err := rbf.Build(counting, points, values, nil)
	require.NoError(t, err)

	n := int64(len(points))
	assert.Equal(t, n*(n+1)/2, atomic.LoadInt64(&calls), "one call per unordered pair")
}

// TestBuild_ParallelMatchesSequential verifies that the parallel kernel fill
// produces bit-identical weights: the elimination consumes the exact same
// system either way.
func TestBuild_ParallelMatchesSequential(t *testing.T) {
	points := [][]float64{
		{0, 0}, {1, 0}, {0, 1}, {1, 1}, {0.5, 0.25}, {0.25, 0.75},
	}
	values := [][]float64{{1, 0}, {2, 1}, {3, -1}, {4, 2}, {2.5, 0.5}, {1.75, -0.5}}

	seq, err := rbf.Build(kernel.EuclideanCubic, points, values, nil)
	require.NoError(t, err)

	opts := rbf.DefaultOptions()
	opts.Workers = 4
	par, err := rbf.Build(kernel.EuclideanCubic, points, values, &opts)
	require.NoError(t, err)

	for i := 0; i <= seq.Len(); i++ {
		sw, serr := seq.Weight(i)
		require.NoError(t, serr)
		pw, perr := par.Weight(i)
		require.NoError(t, perr)
		assert.Equal(t, sw, pw, "weight row %d", i)
	}
}

// TestBuild_CopiesCallerData mutates the caller's slices after Build and
// checks the interpolator is unaffected.
func TestBuild_CopiesCallerData(t *testing.T) {
	points := []float64{0, 1, 2}
	values := [][]float64{{0}, {10}, {40}}

	ip, err := rbf.Build(kernel.AbsCubic, points, values, nil)
	require.NoError(t, err)

	before := ip.Evaluate(1.5)[0]
	points[1] = 99
	values[1][0] = -500
	after := ip.Evaluate(1.5)[0]

	assert.Equal(t, before, after, "interpolator must own copies of its inputs")
}

// TestEvaluateInto covers the buffer-reuse path and its length guard.
func TestEvaluateInto(t *testing.T) {
	points, values := unitSquare()

	ip, err := rbf.Build(kernel.EuclideanCubic, points, values, nil)
	require.NoError(t, err)

	// Wrong buffer length errors.
	err = ip.EvaluateInto([]float64{0.5, 0.5, 0}, make([]float64, 2))
	assert.ErrorIs(t, err, rbf.ErrDimensionMismatch)

	// Correct buffer matches Evaluate.
	out := make([]float64, 1)
	require.NoError(t, ip.EvaluateInto([]float64{0.5, 0.5, 0}, out))
	assert.Equal(t, ip.Evaluate([]float64{0.5, 0.5, 0}), out)
}

// TestWeight_Bounds verifies the accessor's index guard.
func TestWeight_Bounds(t *testing.T) {
	points, values := unitSquare()

	ip, err := rbf.Build(kernel.EuclideanCubic, points, values, nil)
	require.NoError(t, err)

	_, err = ip.Weight(-1)
	assert.Error(t, err, "negative index must error")
	_, err = ip.Weight(ip.Len() + 1)
	assert.Error(t, err, "index past the affine row must error")

	affine, err := ip.Weight(ip.Len())
	require.NoError(t, err)
	assert.Len(t, affine, ip.Dim(), "affine row has dimension d")
}

// TestEvaluate_Concurrent hammers one interpolator from many goroutines and
// checks every result against a serially computed reference.
func TestEvaluate_Concurrent(t *testing.T) {
	points, values := unitSquare()

	ip, err := rbf.Build(kernel.EuclideanCubic, points, values, nil)
	require.NoError(t, err)

	queries := [][]float64{
		{0, 0, 0}, {1, 0, 0}, {0, 1, 0}, {1, 1, 0},
		{0.5, 0.5, 0}, {0.25, 0.75, 0}, {0.9, 0.1, 0},
	}
	want := make([][]float64, len(queries))
	for i, q := range queries {
		want[i] = ip.Evaluate(q)
	}

	const goroutines = 8
	var wg sync.WaitGroup
	for g := 0; g < goroutines; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i, q := range queries {
				got := ip.Evaluate(q)
				for k := range got {
					if got[k] != want[i][k] {
						t.Errorf("concurrent evaluate diverged at query %d", i)

						return
					}
				}
			}
		}()
	}
	wg.Wait()
}
