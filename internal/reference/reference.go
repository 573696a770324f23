// Package reference computes spectra of real signals with independent
// implementations, for validating the direct transform.
//
// All functions return the H+1 non-redundant bins X[k]/H, k = 0..N/2, with
// X[k] = Σ x[j]·e^{-i2πjk/N}.
package reference

import (
	"errors"
	"fmt"
	"math"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/mjibson/go-dsp/fft"
	"gonum.org/v1/gonum/dsp/fourier"
)

// ErrInvalidLength is returned for empty or odd-length signals.
var ErrInvalidLength = errors.New("reference: length must be positive and even")

func harmonics(n int) (int, error) {
	if n <= 0 || n%2 != 0 {
		return 0, fmt.Errorf("%w: %d", ErrInvalidLength, n)
	}
	return n / 2, nil
}

// AlgoFFT computes the bins with an algo-fft complex plan.
func AlgoFFT(x []float64) ([]complex128, error) {
	h, err := harmonics(len(x))
	if err != nil {
		return nil, err
	}

	plan, err := algofft.NewPlan64(len(x))
	if err != nil {
		return nil, fmt.Errorf("reference: failed to create FFT plan: %w", err)
	}

	src := make([]complex128, len(x))
	for i, v := range x {
		src[i] = complex(v, 0)
	}
	dst := make([]complex128, len(x))
	if err := plan.Forward(dst, src); err != nil {
		return nil, fmt.Errorf("reference: forward FFT failed: %w", err)
	}

	return scaled(dst[:h+1], h), nil
}

// Gonum computes the bins with gonum's real FFT.
func Gonum(x []float64) ([]complex128, error) {
	h, err := harmonics(len(x))
	if err != nil {
		return nil, err
	}

	coeffs := fourier.NewFFT(len(x)).Coefficients(nil, x)
	return scaled(coeffs[:h+1], h), nil
}

// GoDSP computes the bins with go-dsp's real FFT.
func GoDSP(x []float64) ([]complex128, error) {
	h, err := harmonics(len(x))
	if err != nil {
		return nil, err
	}

	return scaled(fft.FFTReal(x)[:h+1], h), nil
}

// Direct computes the bins by explicit textbook summation.
func Direct(x []float64) ([]complex128, error) {
	h, err := harmonics(len(x))
	if err != nil {
		return nil, err
	}

	n := len(x)
	out := make([]complex128, h+1)
	for k := range out {
		var re, im float64
		for j, v := range x {
			arg := 2 * math.Pi * float64((j*k)%n) / float64(n)
			re += v * math.Cos(arg)
			im -= v * math.Sin(arg)
		}
		out[k] = complex(re, im)
	}
	return scaled(out, h), nil
}

func scaled(bins []complex128, h int) []complex128 {
	out := make([]complex128, len(bins))
	s := complex(1/float64(h), 0)
	for i, b := range bins {
		out[i] = b * s
	}
	return out
}

// MaxAbsDiff returns max |a[k] - b[k]| over the shorter of the two slices.
func MaxAbsDiff(a, b []complex128) float64 {
	n := min(len(a), len(b))
	worst := 0.0
	for i := range n {
		d := a[i] - b[i]
		worst = math.Max(worst, math.Hypot(real(d), imag(d)))
	}
	return worst
}
