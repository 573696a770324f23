package dft

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-dft/internal/testutil"
)

// naiveKernel evaluates the kernel formula term by term without the twiddle table.
func naiveKernel(inRe, inIm []float64, scale float64) (outRe, outIm []float64) {
	n := len(inRe)
	outRe = make([]float64, n)
	outIm = make([]float64, n)
	for i := range n {
		var sumRe, sumIm float64
		for j := range n {
			angle := 2 * math.Pi * float64(j) * float64(i) / float64(n)
			sumRe += inIm[j]*math.Cos(angle) + inRe[j]*math.Sin(angle)
			sumIm += inIm[j]*math.Sin(angle) - inRe[j]*math.Cos(angle)
		}
		outRe[i] = sumRe * scale
		outIm[i] = sumIm * scale
	}
	return outRe, outIm
}

func TestTwiddles(t *testing.T) {
	const n = 12
	tw := newTwiddles(n)
	for k := range n {
		angle := 2 * math.Pi * float64(k) / n
		if math.Abs(tw.sin[k]-math.Sin(angle)) > 1e-15 || math.Abs(tw.cos[k]-math.Cos(angle)) > 1e-15 {
			t.Fatalf("twiddle %d = (%v, %v), want (%v, %v)", k, tw.sin[k], tw.cos[k], math.Sin(angle), math.Cos(angle))
		}
	}
}

func TestKernelMatchesFormula(t *testing.T) {
	for _, n := range []int{2, 4, 10, 64} {
		inRe := testutil.DeterministicNoise(1, 1, n)
		inIm := testutil.DeterministicNoise(2, 1, n)
		outRe := make([]float64, n)
		outIm := make([]float64, n)

		performComplex(newTwiddles(n), inRe, inIm, outRe, outIm, 0.5, 1)

		wantRe, wantIm := naiveKernel(inRe, inIm, 0.5)
		tol := testutil.DirectTolerance[float64](n, 1)
		testutil.RequireSliceNearlyEqual(t, outRe, wantRe, tol)
		testutil.RequireSliceNearlyEqual(t, outIm, wantIm, tol)
	}
}

func TestKernelScaleIsLinear(t *testing.T) {
	const n = 16
	tw := newTwiddles(n)
	inRe := testutil.Convert[float32](testutil.DeterministicNoise(3, 1, n))
	inIm := testutil.Convert[float32](testutil.DeterministicNoise(4, 1, n))

	re1, im1 := make([]float32, n), make([]float32, n)
	re2, im2 := make([]float32, n), make([]float32, n)
	performComplex(tw, inRe, inIm, re1, im1, 0.375, 1)
	performComplex(tw, inRe, inIm, re2, im2, 0.75, 1)

	// doubling the scale is exact in binary floating point
	for i := range n {
		if re2[i] != 2*re1[i] || im2[i] != 2*im1[i] {
			t.Fatalf("row %d: (%v, %v) is not twice (%v, %v)", i, re2[i], im2[i], re1[i], im1[i])
		}
	}
}

func TestKernelParallelMatchesSerial(t *testing.T) {
	for _, n := range []int{64, 130, 256} {
		tw := newTwiddles(n)
		inRe := testutil.DeterministicNoise(5, 1, n)
		inIm := testutil.DeterministicNoise(6, 1, n)

		serRe, serIm := make([]float64, n), make([]float64, n)
		parRe, parIm := make([]float64, n), make([]float64, n)
		performComplex(tw, inRe, inIm, serRe, serIm, 1, 1)
		performComplex(tw, inRe, inIm, parRe, parIm, 1, 7)

		for i := range n {
			if serRe[i] != parRe[i] || serIm[i] != parIm[i] {
				t.Fatalf("n=%d row %d: parallel (%v, %v) != serial (%v, %v)", n, i, parRe[i], parIm[i], serRe[i], serIm[i])
			}
		}
	}
}

func TestKernelPropagatesNaN(t *testing.T) {
	const n = 8
	inRe := make([]float64, n)
	inIm := make([]float64, n)
	inRe[3] = math.NaN()
	outRe, outIm := make([]float64, n), make([]float64, n)

	performComplex(newTwiddles(n), inRe, inIm, outRe, outIm, 1, 1)

	for i := range n {
		if !math.IsNaN(outRe[i]) || !math.IsNaN(outIm[i]) {
			t.Fatalf("row %d = (%v, %v), want NaN", i, outRe[i], outIm[i])
		}
	}
}
