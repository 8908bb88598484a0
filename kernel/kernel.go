package kernel

import "math"

// AbsCubic returns |a-b|³ for scalar samples.
// Symmetric by construction; an odd power of the 1-D Euclidean distance.
// Complexity: O(1), no allocations.
func AbsCubic(a, b float64) float64 {
	d := math.Abs(a - b)

	return d * d * d
}

// EuclideanCubic returns ‖a-b‖³ for vector samples in R^k.
// Both arguments must have the same length; the shorter length is used if
// they differ, which callers should treat as a programming error upstream
// (the rbf builder always passes points of one common shape).
// Complexity: O(k), no allocations.
func EuclideanCubic(a, b []float64) float64 {
	// Accumulate squared distance componentwise.
	var sum, d float64
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	for i := 0; i < n; i++ {
		d = a[i] - b[i]
		sum += d * d
	}
	r := math.Sqrt(sum)

	return r * r * r
}

// AngularCubic returns θ³ where θ ∈ [0, π] is the angle between a and b.
// Intended for direction samples; magnitudes are divided out, so the inputs
// need not be normalized. Degenerate zero-length inputs yield 0.
// Complexity: O(k), no allocations.
func AngularCubic(a, b []float64) float64 {
	// Single fused pass: dot product and both squared norms.
	var dot, na, nb float64
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	for i := 0; i < n; i++ {
		dot += a[i] * b[i]
		na += a[i] * a[i]
		nb += b[i] * b[i]
	}
	if na == 0 || nb == 0 {
		return 0 // no direction to compare
	}

	// Clamp the cosine into [-1, 1]: rounding may push it just outside,
	// and math.Acos returns NaN beyond that interval.
	cos := dot / math.Sqrt(na*nb)
	if cos > 1 {
		cos = 1
	} else if cos < -1 {
		cos = -1
	}
	theta := math.Acos(cos)

	return theta * theta * theta
}
