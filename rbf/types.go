// Package rbf: kernel contract and build options.
package rbf

// Kernel is a caller-supplied radial basis function: a symmetric scalar
// distance phi(a, b) between two points of an arbitrary type P.
//
// Contract (caller obligation, not validated by Build):
//   - symmetric: phi(a, b) == phi(b, a);
//   - never an even power of a Euclidean-style distance (odd powers such as
//     the cubic presets in the kernel package are the supported family).
//
// The builder relies on symmetry and evaluates each unordered point pair
// exactly once, in one fixed argument order.
type Kernel[P any] func(a, b P) float64

// Options configures Build.
//
// Fields:
//   - Workers        — number of goroutines filling the pairwise kernel
//     block. Entries are disjoint, so the fill parallelizes safely; the
//     elimination itself is inherently sequential and always runs on the
//     calling goroutine. Values < 2 mean sequential fill.
//   - PivotTolerance — magnitude below which an elimination pivot is treated
//     as zero, turning near-singular systems into ErrSingular instead of
//     amplified rounding noise. 0 (the default) detects exact zeros only.
//
// Example:
//
//	opts := rbf.DefaultOptions()
//	opts.Workers = runtime.NumCPU() // large n: parallel kernel fill
//	ip, err := rbf.Build(phi, points, values, &opts)
type Options struct {
	Workers        int
	PivotTolerance float64
}

// DefaultOptions returns the canonical defaults: sequential fill and
// exact-zero pivot detection.
func DefaultOptions() Options {
	return Options{
		Workers:        1,
		PivotTolerance: 0,
	}
}
