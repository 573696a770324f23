package core

import (
	"math"
	"unsafe"
)

// Float is the element type constraint for sample buffers.
type Float interface {
	~float32 | ~float64
}

const defaultEpsilon = 1e-12

// NearlyEqual reports whether a and b are equal within eps.
func NearlyEqual(a, b, eps float64) bool {
	if eps <= 0 {
		eps = defaultEpsilon
	}

	diff := math.Abs(a - b)
	if diff <= eps {
		return true
	}

	largest := math.Max(math.Abs(a), math.Abs(b))
	if largest == 0 {
		return diff <= eps
	}

	return diff/largest <= eps
}

// Epsilon returns the machine epsilon of the element type F.
func Epsilon[F Float]() float64 {
	var zero F
	if unsafe.Sizeof(zero) == 4 {
		return 0x1p-23
	}
	return 0x1p-52
}

// LinearToDB converts linear amplitude to dB (20*log10 convention).
// Returns -Inf for zero and NaN for negative values.
func LinearToDB(linear float64) float64 {
	if linear < 0 {
		return math.NaN()
	}

	if linear == 0 {
		return math.Inf(-1)
	}

	return 20 * math.Log10(linear)
}
