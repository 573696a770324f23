package main

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"text/tabwriter"

	"k8s.io/klog/v2"

	"github.com/cwbudde/algo-dft/dsp/core"
	"github.com/cwbudde/algo-dft/dsp/dft"
	"github.com/cwbudde/algo-dft/internal/reference"
	"github.com/cwbudde/algo-dft/internal/testutil"
	"github.com/cwbudde/algo-dft/toolchain/cache"
	"github.com/cwbudde/algo-dft/toolchain/link"
)

// maxDirectCheck bounds the O(N²) textbook reference used by -check.
const maxDirectCheck = 4096

type report struct {
	n          int
	layout     dft.Layout
	precision  int
	sampleRate float64
	packed     []float64
	roundTrip  float64
	cached     bool
	references []deviation
}

type deviation struct {
	name string
	max  float64
}

func run(w io.Writer, cfg config) error {
	opts, err := loadOptions(cfg)
	if err != nil {
		return err
	}

	n := int(opts.Rate.BlockSize)
	if cfg.size < 0 || n <= 0 || n%2 != 0 {
		return fmt.Errorf("%w: %d", dft.ErrInvalidLength, min(cfg.size, n))
	}

	layout, err := dft.ParseLayout(cfg.layout)
	if err != nil {
		return err
	}

	input, err := resolveInput(opts, n)
	if err != nil {
		return err
	}

	c, closeCache, err := openCache(cfg)
	if err != nil {
		return err
	}
	defer closeCache()

	key := cache.Key(float64Bytes(input), []byte(layout.String()), []byte(strconv.Itoa(cfg.precision)))
	packed, err := loadSpectrum(c, key, n)
	if err != nil {
		return err
	}

	r := report{
		n:          n,
		layout:     layout,
		precision:  cfg.precision,
		sampleRate: opts.Rate.SampleRate,
		cached:     packed != nil,
	}

	planOpts := []dft.PlanOption{dft.WithLayout(layout), dft.WithWorkers(cfg.workers)}
	var restored []float64
	switch cfg.precision {
	case 64:
		r.packed, restored, err = transform[float64](input, packed, planOpts)
	case 32:
		r.packed, restored, err = transform[float32](input, packed, planOpts)
	default:
		return fmt.Errorf("unsupported precision %d (want 32 or 64)", cfg.precision)
	}
	if err != nil {
		return err
	}

	if r.roundTrip, err = testutil.MaxAbsDiff(restored, input); err != nil {
		return err
	}

	if c != nil && !r.cached {
		if err := c.Store(key, float64Bytes(r.packed)); err != nil {
			return err
		}
	}

	if cfg.check {
		if r.references, err = checkReferences(input, r.packed, layout); err != nil {
			return err
		}
	}

	return printReport(w, r, cfg.rows)
}

func loadOptions(cfg config) (link.Options, error) {
	var opts link.Options
	if cfg.configPath != "" {
		var err error
		if opts, err = link.LoadFile(cfg.configPath); err != nil {
			return link.Options{}, err
		}
	} else {
		rate := core.ApplyRateOptions()
		opts = link.New(rate.SampleRate, rate.BlockSize)
	}
	if cfg.size > 0 {
		opts.SetBlockSize(uint32(cfg.size))
	}
	opts.ExternalValueProvider = signalProvider(cfg)
	return opts, nil
}

// transform runs the forward transform (unless packed is already known) and
// the inverse in precision F.
func transform[F core.Float](input, packed []float64, opts []dft.PlanOption) ([]float64, []float64, error) {
	plan, err := dft.NewPlanT[F](len(input), opts...)
	if err != nil {
		return nil, nil, err
	}

	spectrum := make([]F, len(input))
	if packed == nil {
		if err := plan.Forward(spectrum, testutil.Convert[F](input)); err != nil {
			return nil, nil, err
		}
		packed = toFloat64(nil, spectrum)
	} else {
		core.CopyInto(spectrum, testutil.Convert[F](packed))
	}

	back := make([]F, len(input))
	if err := plan.Inverse(back, spectrum); err != nil {
		return nil, nil, err
	}
	return packed, toFloat64(nil, back), nil
}

func toFloat64[F core.Float](dst []float64, x []F) []float64 {
	out := core.EnsureLen(dst, len(x))
	for i, v := range x {
		out[i] = float64(v)
	}
	return out
}

func openCache(cfg config) (cache.Cache, func(), error) {
	noop := func() {}
	switch {
	case cfg.cacheDir != "" && cfg.cacheDB != "":
		return nil, noop, errors.New("-cache-dir and -cache-db are mutually exclusive")
	case cfg.cacheDir != "":
		if err := os.MkdirAll(cfg.cacheDir, 0o755); err != nil {
			return nil, noop, err
		}
		f, err := cache.NewFolder(cfg.cacheDir, cfg.cacheFiles)
		if err != nil {
			return nil, noop, err
		}
		return f, noop, nil
	case cfg.cacheDB != "":
		db, err := cache.OpenBolt(cfg.cacheDB)
		if err != nil {
			return nil, noop, err
		}
		return db, func() {
			if err := db.Close(); err != nil {
				klog.ErrorS(err, "Failed to close spectrum cache", "path", cfg.cacheDB)
			}
		}, nil
	default:
		return nil, noop, nil
	}
}

// loadSpectrum returns the cached packed spectrum for key, or nil on a miss.
func loadSpectrum(c cache.Cache, key string, n int) ([]float64, error) {
	if c == nil {
		return nil, nil
	}

	size, err := c.Read(key, nil)
	if err != nil || size == 0 {
		return nil, err
	}
	if size != uint64(8*n) {
		klog.InfoS("Ignoring cached spectrum of unexpected size", "key", key, "bytes", size, "want", 8*n)
		return nil, nil
	}

	buf := make([]byte, size)
	if _, err := c.Read(key, buf); err != nil {
		return nil, err
	}
	klog.V(1).InfoS("Spectrum cache hit", "key", key)

	out := make([]float64, n)
	for i := range out {
		out[i] = math.Float64frombits(binary.LittleEndian.Uint64(buf[8*i:]))
	}
	return out, nil
}

func float64Bytes(x []float64) []byte {
	buf := make([]byte, 0, 8*len(x))
	for _, v := range x {
		buf = binary.LittleEndian.AppendUint64(buf, math.Float64bits(v))
	}
	return buf
}

func checkReferences(input, packed []float64, layout dft.Layout) ([]deviation, error) {
	n := len(input)
	h := n / 2

	got := make([]complex128, h+1)
	if err := dft.ToComplex(got, packed, layout); err != nil {
		return nil, err
	}
	// The packed layout does not carry the Nyquist bin.
	bins := h + 1
	if layout == dft.LayoutPacked {
		bins = h
	}

	type ref struct {
		name string
		fn   func([]float64) ([]complex128, error)
		ok   bool
	}
	refs := []ref{
		{"algo-fft", reference.AlgoFFT, n >= 8 && n&(n-1) == 0},
		{"gonum", reference.Gonum, true},
		{"go-dsp", reference.GoDSP, n >= 8 && n&(n-1) == 0},
		{"direct", reference.Direct, n <= maxDirectCheck},
	}

	var out []deviation
	for _, r := range refs {
		if !r.ok {
			continue
		}
		want, err := r.fn(input)
		if err != nil {
			return nil, err
		}
		out = append(out, deviation{r.name, reference.MaxAbsDiff(got[:bins], want[:bins])})
	}
	return out, nil
}

func printReport(w io.Writer, r report, rows int) error {
	h := r.n / 2
	bins := make([]complex128, h+1)
	if err := dft.ToComplex(bins, r.packed, r.layout); err != nil {
		return err
	}
	mag := make([]float64, h)
	if err := dft.Magnitude(mag, r.packed, r.layout); err != nil {
		return err
	}

	source := "computed"
	if r.cached {
		source = "cached"
	}
	if _, err := fmt.Fprintf(w, "Length %d, %d harmonics, %s layout, float%d, %g Hz (%s)\n\n",
		r.n, h, r.layout, r.precision, r.sampleRate, source); err != nil {
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Harmonic\tFreq [Hz]\tRe\tIm\tMagnitude\tLevel [dB]\n")
	fmt.Fprintf(tw, "--------\t---------\t--\t--\t---------\t----------\n")

	limit := h
	if rows > 0 && rows < limit {
		limit = rows
	}
	for k := range limit {
		fmt.Fprintf(tw, "%d\t%.2f\t%.6f\t%.6f\t%.6f\t%.2f\n",
			k,
			dft.BinFrequency(k, r.n, r.sampleRate),
			real(bins[k]),
			imag(bins[k]),
			mag[k],
			core.LinearToDB(mag[k]),
		)
	}
	if r.layout == dft.LayoutFolded && (rows <= 0 || rows > h) {
		fmt.Fprintf(tw, "%d\t%.2f\t%.6f\t%.6f\t%.6f\t%.2f\n",
			h,
			dft.BinFrequency(h, r.n, r.sampleRate),
			real(bins[h]),
			imag(bins[h]),
			math.Abs(real(bins[h])),
			core.LinearToDB(math.Abs(real(bins[h]))),
		)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	if _, err := fmt.Fprintf(w, "\nRound-trip max error: %.3g\n", r.roundTrip); err != nil {
		return err
	}
	for _, d := range r.references {
		if _, err := fmt.Fprintf(w, "Deviation from %s: %.3g\n", d.name, d.max); err != nil {
			return err
		}
	}
	return nil
}
