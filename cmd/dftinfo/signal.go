package main

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-dft/internal/testutil"
	"github.com/cwbudde/algo-dft/toolchain/link"
)

// inputName is the external constant the input signal is resolved through.
const inputName = "dftinfo::input"

type generator func(cfg config, n int) []float64

var signals = map[string]generator{
	"impulse": func(cfg config, n int) []float64 {
		x := testutil.Impulse(n, cfg.bin)
		for i := range x {
			x[i] *= cfg.amplitude
		}
		return x
	},
	"dc": func(cfg config, n int) []float64 {
		return testutil.DC(cfg.amplitude, n)
	},
	"cosine": func(cfg config, n int) []float64 {
		return testutil.HarmonicCosine(cfg.bin, cfg.amplitude, 0, n)
	},
	"sine": func(cfg config, n int) []float64 {
		return testutil.HarmonicCosine(cfg.bin, cfg.amplitude, -math.Pi/2, n)
	},
	"noise": func(cfg config, n int) []float64 {
		return testutil.DeterministicNoise(cfg.seed, cfg.amplitude, n)
	},
	"noise-ac": func(cfg config, n int) []float64 {
		return testutil.RemoveDCAndNyquist(testutil.DeterministicNoise(cfg.seed, cfg.amplitude, n))
	},
}

// signalProvider resolves inputName to the configured test signal.
func signalProvider(cfg config) link.ExternalValueProvider {
	return func(ext link.External) (link.Value, error) {
		if ext.Name != inputName {
			return link.Value{}, nil
		}
		gen, ok := signals[cfg.signal]
		if !ok {
			return link.Value{}, fmt.Errorf("unknown signal %q (use -list to see available)", cfg.signal)
		}
		return link.Float64ArrayValue(gen(cfg, ext.Type.Size)), nil
	}
}

func resolveInput(opts link.Options, n int) ([]float64, error) {
	v, err := opts.ResolveExternal(link.External{
		Name:       inputName,
		Type:       link.Array(link.KindFloat64, n),
		Annotation: map[string]string{"unit": "linear"},
	})
	if err != nil {
		return nil, err
	}
	x, _ := v.Float64s()
	return x, nil
}
