package core

import "testing"

func TestApplyRateOptions(t *testing.T) {
	cfg := ApplyRateOptions(WithSampleRate(96000), WithBlockSize(2048))
	if cfg.SampleRate != 96000 {
		t.Fatalf("sample rate = %v, want 96000", cfg.SampleRate)
	}
	if cfg.BlockSize != 2048 {
		t.Fatalf("block size = %d, want 2048", cfg.BlockSize)
	}
	if !cfg.Valid() {
		t.Fatal("expected valid config")
	}
}

func TestInvalidRateOptionsIgnored(t *testing.T) {
	cfg := ApplyRateOptions(WithSampleRate(0), WithSampleRate(-1), WithBlockSize(0), nil)
	def := DefaultRateAndBlockSize()
	if cfg != def {
		t.Fatalf("cfg = %#v, want %#v", cfg, def)
	}
}

func TestZeroRateAndBlockSizeInvalid(t *testing.T) {
	if (RateAndBlockSize{}).Valid() {
		t.Fatal("zero value must be invalid")
	}
}
