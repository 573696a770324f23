package testutil

import (
	"math"
	"math/rand"

	"github.com/cwbudde/algo-dft/dsp/core"
)

// DeterministicSine generates a deterministic sine wave.
func DeterministicSine(freqHz, sampleRate, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	step := 2 * math.Pi * freqHz / sampleRate
	for i := range out {
		out[i] = amplitude * math.Sin(step*float64(i))
	}
	return out
}

// HarmonicCosine generates amplitude·cos(2π·k·i/length + phase), a sinusoid
// that completes exactly k cycles over the buffer.
func HarmonicCosine(k int, amplitude, phase float64, length int) []float64 {
	out := make([]float64, length)
	step := 2 * math.Pi * float64(k) / float64(length)
	for i := range out {
		out[i] = amplitude * math.Cos(step*float64(i)+phase)
	}
	return out
}

// DeterministicNoise generates white noise with a fixed seed for reproducibility.
func DeterministicNoise(seed int64, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}
	return out
}

// Impulse generates a unit impulse at the given position.
func Impulse(length, pos int) []float64 {
	out := make([]float64, length)
	if pos >= 0 && pos < length {
		out[pos] = 1
	}
	return out
}

// DC generates a constant-valued signal.
func DC(value float64, length int) []float64 {
	out := make([]float64, length)
	for i := range out {
		out[i] = value
	}
	return out
}

// RemoveDCAndNyquist returns a copy of x (even length) with its mean and its
// alternating (-1)^i component removed.
func RemoveDCAndNyquist(x []float64) []float64 {
	n := float64(len(x))
	var mean, alt float64
	for i, v := range x {
		mean += v
		if i%2 == 0 {
			alt += v
		} else {
			alt -= v
		}
	}
	mean /= n
	alt /= n

	out := make([]float64, len(x))
	for i, v := range x {
		sign := 1.0
		if i%2 != 0 {
			sign = -1
		}
		out[i] = v - mean - alt*sign
	}
	return out
}

// Convert converts x to element type F.
func Convert[F core.Float](x []float64) []F {
	out := make([]F, len(x))
	for i, v := range x {
		out[i] = F(v)
	}
	return out
}
