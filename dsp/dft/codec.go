package dft

import "github.com/cwbudde/algo-dft/dsp/core"

// encode packs the first H kernel outputs into dst. Rows [H, N) of outRe
// are computed by the kernel but not stored.
func encode[F core.Float](dst, outRe, outIm []F, h int, layout Layout) {
	copy(dst[:h], outRe[:h])
	copy(dst[h:2*h], outIm[:h])

	if layout == LayoutFolded {
		dst[0] = outIm[h]
	}
}

// decode unpacks src into the kernel inputs. The packed imaginary half feeds
// the real input and the packed real half the imaginary input. The upper half
// of both inputs must be zero for the kernel to produce a real signal.
func decode[F core.Float](inRe, inIm, src []F, h int, layout Layout) {
	copy(inRe[:h], src[h:2*h])
	copy(inIm[:h], src[:h])
	core.Zero(inRe[h:])
	core.Zero(inIm[h:])

	if layout == LayoutFolded {
		inRe[0] = src[h] / 2
		inRe[h] = src[0] / 2
		inIm[0] = 0
	}
}
