package dft

import (
	"math"

	"golang.org/x/sync/errgroup"

	"github.com/cwbudde/algo-dft/dsp/core"
)

// minParallelSize is the smallest size for which rows are split across workers.
const minParallelSize = 64

// twiddles holds sin/cos of 2π·k/N for k in [0, N).
type twiddles struct {
	sin []float64
	cos []float64
}

func newTwiddles(n int) twiddles {
	tw := twiddles{
		sin: make([]float64, n),
		cos: make([]float64, n),
	}
	step := 2 * math.Pi / float64(n)
	for k := range n {
		tw.sin[k], tw.cos[k] = math.Sincos(step * float64(k))
	}
	return tw
}

// performComplex runs the shared complex kernel over all N output rows:
//
//	outRe[i] = F(Σ inIm[j]·cos(θ) + inRe[j]·sin(θ)) · scale
//	outIm[i] = F(Σ inIm[j]·sin(θ) − inRe[j]·cos(θ)) · scale
//
// with θ = 2π·((i·j) mod N)/N. All buffers have length N.
func performComplex[F core.Float](tw twiddles, inRe, inIm, outRe, outIm []F, scale F, workers int) {
	n := len(inRe)
	if workers <= 1 || n < minParallelSize {
		performRows(tw, inRe, inIm, outRe, outIm, scale, 0, n)
		return
	}

	chunk := (n + workers - 1) / workers

	var g errgroup.Group
	g.SetLimit(workers)
	for lo := 0; lo < n; lo += chunk {
		hi := min(lo+chunk, n)
		g.Go(func() error {
			performRows(tw, inRe, inIm, outRe, outIm, scale, lo, hi)
			return nil
		})
	}
	_ = g.Wait()
}

// performRows computes output rows [lo, hi). Sums are accumulated in float64
// and narrowed to F before scaling.
func performRows[F core.Float](tw twiddles, inRe, inIm, outRe, outIm []F, scale F, lo, hi int) {
	n := len(inRe)
	for i := lo; i < hi; i++ {
		var sumRe, sumIm float64
		k := 0
		for j := 0; j < n; j++ {
			sin, cos := tw.sin[k], tw.cos[k]
			re := float64(inRe[j])
			im := float64(inIm[j])
			sumRe += im*cos + re*sin
			sumIm += im*sin - re*cos

			k += i
			if k >= n {
				k -= n
			}
		}
		outRe[i] = F(sumRe) * scale
		outIm[i] = F(sumIm) * scale
	}
}
