package dft

import "testing"

func TestEncodePacked(t *testing.T) {
	outRe := []float64{1, 2, 3, 4}
	outIm := []float64{5, 6, 7, 8}
	dst := make([]float64, 4)

	encode(dst, outRe, outIm, 2, LayoutPacked)

	want := []float64{1, 2, 5, 6}
	for i := range want {
		if dst[i] != want[i] {
			t.Fatalf("dst = %v, want %v", dst, want)
		}
	}
}

func TestEncodeFolded(t *testing.T) {
	outRe := []float64{0, 2, 3, 4}
	outIm := []float64{5, 6, 7, 8}
	dst := make([]float64, 4)

	encode(dst, outRe, outIm, 2, LayoutFolded)

	want := []float64{7, 2, 5, 6}
	for i := range want {
		if dst[i] != want[i] {
			t.Fatalf("dst = %v, want %v", dst, want)
		}
	}
}

func TestDecodePackedSwapsHalvesAndZeroPads(t *testing.T) {
	src := []float32{1, 2, 3, 4, 5, 6}
	inRe := []float32{9, 9, 9, 9, 9, 9}
	inIm := []float32{9, 9, 9, 9, 9, 9}

	decode(inRe, inIm, src, 3, LayoutPacked)

	wantRe := []float32{4, 5, 6, 0, 0, 0}
	wantIm := []float32{1, 2, 3, 0, 0, 0}
	for i := range wantRe {
		if inRe[i] != wantRe[i] || inIm[i] != wantIm[i] {
			t.Fatalf("inRe = %v, inIm = %v, want %v, %v", inRe, inIm, wantRe, wantIm)
		}
	}
}

func TestDecodeFolded(t *testing.T) {
	src := []float64{8, 2, 3, 4, 5, 6}
	inRe := make([]float64, 6)
	inIm := make([]float64, 6)

	decode(inRe, inIm, src, 3, LayoutFolded)

	wantRe := []float64{2, 5, 6, 4, 0, 0}
	wantIm := []float64{0, 2, 3, 0, 0, 0}
	for i := range wantRe {
		if inRe[i] != wantRe[i] || inIm[i] != wantIm[i] {
			t.Fatalf("inRe = %v, inIm = %v, want %v, %v", inRe, inIm, wantRe, wantIm)
		}
	}
}
