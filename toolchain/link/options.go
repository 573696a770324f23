package link

import (
	"fmt"

	"github.com/cwbudde/algo-dft/dsp/core"
)

// Option names in key/value form.
const (
	KeyOptimisationLevel = "optimisation_level"
	KeyMaxStateSize      = "max_state_size"
	KeyMainProcessor     = "main_processor"
	KeyPlatform          = "platform"
	KeySessionID         = "sessionID"
	KeyBlockSize         = "blockSize"
	KeySampleRate        = "sample_rate"
)

const (
	// DefaultMaxStateSize is the default limit on a performer's state, in bytes.
	DefaultMaxStateSize uint64 = 20 * 1024 * 1024

	// OptimisationLevelUnset leaves the optimisation level to the backend.
	OptimisationLevelUnset = -1
)

// Options is the set of properties passed into the linker and performers.
type Options struct {
	// OptimisationLevel is backend specific; OptimisationLevelUnset means default.
	OptimisationLevel int

	// MaxStateSize is the maximum runtime state size in bytes.
	MaxStateSize uint64

	// MainProcessor names the processor used as the program entry point.
	MainProcessor string

	// Platform identifies the target platform.
	Platform string

	// Rate holds the sample rate and block size the program will run at.
	Rate core.RateAndBlockSize

	// ExternalValueProvider supplies values for external constants. See
	// [Options.ResolveExternal].
	ExternalValueProvider ExternalValueProvider

	sessionID    int32
	hasSessionID bool
}

// Option mutates Options.
type Option func(*Options)

// New returns options for the given sample rate and block size with all other
// properties at their defaults.
func New(sampleRate float64, blockSize uint32, opts ...Option) Options {
	o := Options{
		OptimisationLevel: OptimisationLevelUnset,
		MaxStateSize:      DefaultMaxStateSize,
	}
	o.SetRateAndBlockSize(core.RateAndBlockSize{SampleRate: sampleRate, BlockSize: blockSize})

	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}

// WithOptimisationLevel sets the optimisation level.
func WithOptimisationLevel(level int) Option {
	return func(o *Options) { o.OptimisationLevel = level }
}

// WithMaxStateSize sets the state size limit. Zero is ignored.
func WithMaxStateSize(size uint64) Option {
	return func(o *Options) { o.SetMaxStateSize(size) }
}

// WithMainProcessor sets the entry processor name.
func WithMainProcessor(name string) Option {
	return func(o *Options) { o.MainProcessor = name }
}

// WithPlatform sets the target platform.
func WithPlatform(name string) Option {
	return func(o *Options) { o.Platform = name }
}

// WithSessionID sets the session ID.
func WithSessionID(id int32) Option {
	return func(o *Options) { o.SetSessionID(id) }
}

// WithExternalValueProvider sets the external value provider.
func WithExternalValueProvider(fn ExternalValueProvider) Option {
	return func(o *Options) { o.ExternalValueProvider = fn }
}

// SetMaxStateSize sets the state size limit. Zero is ignored.
func (o *Options) SetMaxStateSize(size uint64) {
	if size > 0 {
		o.MaxStateSize = size
	}
}

// SetSampleRate sets the sample rate. Non-positive rates are ignored.
func (o *Options) SetSampleRate(sampleRate float64) {
	if sampleRate > 0 {
		o.Rate.SampleRate = sampleRate
	}
}

// SetBlockSize sets the block size.
func (o *Options) SetBlockSize(blockSize uint32) {
	o.Rate.BlockSize = blockSize
}

// SetRateAndBlockSize sets sample rate and block size together.
func (o *Options) SetRateAndBlockSize(r core.RateAndBlockSize) {
	o.SetSampleRate(r.SampleRate)
	o.SetBlockSize(r.BlockSize)
}

// SetSessionID sets the session ID.
func (o *Options) SetSessionID(id int32) {
	o.sessionID = id
	o.hasSessionID = true
}

// ClearSessionID removes the session ID.
func (o *Options) ClearSessionID() {
	o.sessionID = 0
	o.hasSessionID = false
}

// SessionID returns the session ID and whether one is set.
func (o Options) SessionID() (int32, bool) {
	return o.sessionID, o.hasSessionID
}

// HasSessionID reports whether a session ID is set.
func (o Options) HasSessionID() bool {
	return o.hasSessionID
}

// Validate checks that the options can be handed to a linker.
func (o Options) Validate() error {
	if !(o.Rate.SampleRate > 0) {
		return fmt.Errorf("%w: %s must be > 0: %v", ErrInvalidOption, KeySampleRate, o.Rate.SampleRate)
	}
	if o.Rate.BlockSize == 0 {
		return fmt.Errorf("%w: %s must be > 0", ErrInvalidOption, KeyBlockSize)
	}
	if o.OptimisationLevel < OptimisationLevelUnset {
		return fmt.Errorf("%w: %s must be >= %d: %d", ErrInvalidOption, KeyOptimisationLevel, OptimisationLevelUnset, o.OptimisationLevel)
	}
	if o.MaxStateSize == 0 {
		return fmt.Errorf("%w: %s must be > 0", ErrInvalidOption, KeyMaxStateSize)
	}
	return nil
}
