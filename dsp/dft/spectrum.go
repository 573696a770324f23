package dft

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-dft/dsp/core"
)

func harmonicsOf(n int) (int, error) {
	if n <= 0 || n%2 != 0 {
		return 0, fmt.Errorf("%w: %d", ErrInvalidLength, n)
	}
	return n / 2, nil
}

// ToComplex converts a packed spectrum into H+1 bins X[k]/H, k = 0..H, using
// the textbook sign convention X[k] = Σ x[j]·e^{-i2πjk/N}.
//
// With LayoutPacked the Nyquist bin is not stored and dst[H] is set to 0.
func ToComplex[F core.Float](dst []complex128, packed []F, layout Layout) error {
	h, err := harmonicsOf(len(packed))
	if err != nil {
		return err
	}
	if !layout.valid() {
		return fmt.Errorf("%w: %d", ErrInvalidLayout, int(layout))
	}
	if len(dst) != h+1 {
		return fmt.Errorf("%w: bins %d, want %d", ErrLengthMismatch, len(dst), h+1)
	}

	for k := range h {
		dst[k] = complex(-float64(packed[h+k]), -float64(packed[k]))
	}
	dst[h] = 0

	if layout == LayoutFolded {
		dst[0] = complex(-float64(packed[h]), 0)
		dst[h] = complex(-float64(packed[0]), 0)
	}
	return nil
}

// FromComplex is the inverse of [ToComplex]. bins holds X[k]/H for k = 0..H.
// Imaginary parts of the DC and Nyquist bins are not representable and are
// dropped, as is the Nyquist bin itself with LayoutPacked.
func FromComplex[F core.Float](dst []F, bins []complex128, layout Layout) error {
	h, err := harmonicsOf(len(dst))
	if err != nil {
		return err
	}
	if !layout.valid() {
		return fmt.Errorf("%w: %d", ErrInvalidLayout, int(layout))
	}
	if len(bins) != h+1 {
		return fmt.Errorf("%w: bins %d, want %d", ErrLengthMismatch, len(bins), h+1)
	}

	for k := range h {
		dst[k] = F(-imag(bins[k]))
		dst[h+k] = F(-real(bins[k]))
	}

	if layout == LayoutFolded {
		dst[0] = F(-real(bins[h]))
	}
	return nil
}

// Magnitude writes the magnitude of each of the H packed harmonics into dst.
// For a sinusoid of amplitude A at harmonic k > 0 this is A.
func Magnitude(dst, packed []float64, layout Layout) error {
	h, err := checkHalves(dst, packed, layout)
	if err != nil {
		return err
	}

	vecmath.Magnitude(dst, packed[h:], packed[:h])
	if layout == LayoutFolded {
		dst[0] = math.Abs(packed[h])
	}
	return nil
}

// Power writes the squared magnitude of each of the H packed harmonics into dst.
func Power(dst, packed []float64, layout Layout) error {
	h, err := checkHalves(dst, packed, layout)
	if err != nil {
		return err
	}

	vecmath.Power(dst, packed[h:], packed[:h])
	if layout == LayoutFolded {
		dst[0] = packed[h] * packed[h]
	}
	return nil
}

func checkHalves(dst, packed []float64, layout Layout) (int, error) {
	h, err := harmonicsOf(len(packed))
	if err != nil {
		return 0, err
	}
	if !layout.valid() {
		return 0, fmt.Errorf("%w: %d", ErrInvalidLayout, int(layout))
	}
	if len(dst) != h {
		return 0, fmt.Errorf("%w: dst %d, want %d", ErrLengthMismatch, len(dst), h)
	}
	return h, nil
}

// BinFrequency returns the frequency in Hz of harmonic k for a transform of
// length n at the given sample rate.
func BinFrequency(k, n int, sampleRate float64) float64 {
	if n <= 0 {
		return 0
	}
	return float64(k) * sampleRate / float64(n)
}
