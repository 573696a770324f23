// Package dft provides a direct (O(N²)) real-valued discrete Fourier transform
// pair operating on a packed half-spectrum.
//
// A real signal of even length N is transformed into a packed spectrum of the
// same length. With H = N/2 harmonics, the first H values hold the kernel's
// real outputs and the next H values its imaginary outputs for harmonics
// 0..H-1. The upper half of the full complex spectrum is redundant for real
// input and is not stored.
//
// Both directions share one complex kernel. The kernel rotates the roles of
// its real and imaginary parts relative to the textbook definition:
//
//	re[i] = s · Σ im[j]·cos(θ) + re[j]·sin(θ)
//	im[i] = s · Σ im[j]·sin(θ) − re[j]·cos(θ),  θ = 2π·i·j/N
//
// Forward feeds the samples as the real input with scale 1/H. Inverse feeds
// the packed imaginary half as the real input and the packed real half as the
// imaginary input, zero-pads the upper half, uses scale 1, and its imaginary
// output is the reconstructed signal. In textbook terms (X[k] = Σ x[j]·e^{-iθ})
// the packed layout stores
//
//	packed[k]   = -Im X[k] / H
//	packed[H+k] = -Re X[k] / H
//
// so a sinusoid of amplitude A at harmonic k has packed magnitude A.
//
// # Layouts
//
// [LayoutPacked] is the layout above. Its inverse reconstructs
//
//	x[i] + (X[0] - (-1)^i·X[H]) / N
//
// which equals x exactly when the signal carries no DC and no Nyquist
// content. [LayoutFolded] stores the Nyquist term in packed[0] (a slot that is
// always zero for real input) and halves the DC term on the way back, which
// makes Inverse(Forward(x)) reproduce every real x.
//
// # Usage
//
// For repeated transforms of one size, create a plan:
//
//	p, err := dft.NewPlan(1024)
//	err = p.Forward(spectrum, samples)
//	err = p.Inverse(samples, spectrum)
//
// Plans are safe for concurrent use. [WithWorkers] spreads the kernel rows over
// several goroutines for large sizes.
package dft
