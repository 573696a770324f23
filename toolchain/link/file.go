package link

import (
	"fmt"
	"os"

	"sigs.k8s.io/yaml"

	"github.com/cwbudde/algo-dft/dsp/core"
)

// file is the on-disk form of Options. Absent fields keep their defaults.
type file struct {
	OptimisationLevel *int     `json:"optimisation_level,omitempty"`
	MaxStateSize      *uint64  `json:"max_state_size,omitempty"`
	MainProcessor     string   `json:"main_processor,omitempty"`
	Platform          string   `json:"platform,omitempty"`
	SessionID         *int32   `json:"sessionID,omitempty"`
	BlockSize         *uint32  `json:"blockSize,omitempty"`
	SampleRate        *float64 `json:"sample_rate,omitempty"`
}

// Load parses options from YAML or JSON. Sample rate and block size default
// to [core.DefaultRateAndBlockSize] when absent. The result is validated.
func Load(data []byte) (Options, error) {
	var f file
	if err := yaml.UnmarshalStrict(data, &f); err != nil {
		return Options{}, fmt.Errorf("%w: %v", ErrInvalidOption, err)
	}

	def := core.DefaultRateAndBlockSize()
	o := New(def.SampleRate, def.BlockSize)

	if f.SampleRate != nil {
		if !(*f.SampleRate > 0) {
			return Options{}, fmt.Errorf("%w: %s must be > 0: %v", ErrInvalidOption, KeySampleRate, *f.SampleRate)
		}
		o.SetSampleRate(*f.SampleRate)
	}
	if f.BlockSize != nil {
		o.SetBlockSize(*f.BlockSize)
	}
	if f.OptimisationLevel != nil {
		o.OptimisationLevel = *f.OptimisationLevel
	}
	if f.MaxStateSize != nil {
		if *f.MaxStateSize == 0 {
			return Options{}, fmt.Errorf("%w: %s must be > 0", ErrInvalidOption, KeyMaxStateSize)
		}
		o.SetMaxStateSize(*f.MaxStateSize)
	}
	if f.SessionID != nil {
		o.SetSessionID(*f.SessionID)
	}
	o.MainProcessor = f.MainProcessor
	o.Platform = f.Platform

	if err := o.Validate(); err != nil {
		return Options{}, err
	}
	return o, nil
}

// LoadFile reads and parses an options file.
func LoadFile(path string) (Options, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Options{}, fmt.Errorf("link: reading options: %w", err)
	}
	return Load(data)
}

// Marshal encodes o as YAML. The external value provider is not encoded.
func (o Options) Marshal() ([]byte, error) {
	f := file{
		OptimisationLevel: &o.OptimisationLevel,
		MaxStateSize:      &o.MaxStateSize,
		MainProcessor:     o.MainProcessor,
		Platform:          o.Platform,
		BlockSize:         &o.Rate.BlockSize,
		SampleRate:        &o.Rate.SampleRate,
	}
	if id, ok := o.SessionID(); ok {
		f.SessionID = &id
	}
	return yaml.Marshal(f)
}
