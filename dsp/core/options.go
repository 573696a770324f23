package core

// RateAndBlockSize pairs a processing sample rate with a block size.
type RateAndBlockSize struct {
	SampleRate float64
	BlockSize  uint32
}

// RateOption mutates a RateAndBlockSize.
type RateOption func(*RateAndBlockSize)

// DefaultRateAndBlockSize returns sensible defaults for offline and streaming use.
func DefaultRateAndBlockSize() RateAndBlockSize {
	return RateAndBlockSize{
		SampleRate: 48000,
		BlockSize:  1024,
	}
}

// WithSampleRate sets the processing sample rate. Non-positive rates are ignored.
func WithSampleRate(sampleRate float64) RateOption {
	return func(cfg *RateAndBlockSize) {
		if sampleRate > 0 {
			cfg.SampleRate = sampleRate
		}
	}
}

// WithBlockSize sets the processing block size. Zero is ignored.
func WithBlockSize(blockSize uint32) RateOption {
	return func(cfg *RateAndBlockSize) {
		if blockSize > 0 {
			cfg.BlockSize = blockSize
		}
	}
}

// ApplyRateOptions applies zero or more options to the default config.
func ApplyRateOptions(opts ...RateOption) RateAndBlockSize {
	cfg := DefaultRateAndBlockSize()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

// Valid reports whether both the sample rate and the block size are set.
func (r RateAndBlockSize) Valid() bool {
	return r.SampleRate > 0 && r.BlockSize > 0
}
