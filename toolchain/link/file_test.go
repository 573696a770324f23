package link

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoad(t *testing.T) {
	data := []byte(`
optimisation_level: 2
max_state_size: 4096
main_processor: Main
platform: linux-amd64
sessionID: 99
blockSize: 128
sample_rate: 44100
`)

	o, err := Load(data)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if o.OptimisationLevel != 2 || o.MaxStateSize != 4096 || o.MainProcessor != "Main" || o.Platform != "linux-amd64" {
		t.Fatalf("unexpected options %#v", o)
	}
	if id, ok := o.SessionID(); !ok || id != 99 {
		t.Fatalf("SessionID = %d, %v", id, ok)
	}
	if o.Rate.SampleRate != 44100 || o.Rate.BlockSize != 128 {
		t.Fatalf("rate = %#v", o.Rate)
	}
}

func TestLoadDefaults(t *testing.T) {
	o, err := Load([]byte("{}"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if o.OptimisationLevel != OptimisationLevelUnset || o.MaxStateSize != DefaultMaxStateSize || o.HasSessionID() {
		t.Fatalf("unexpected defaults %#v", o)
	}
	if o.Rate.SampleRate != 48000 || o.Rate.BlockSize != 1024 {
		t.Fatalf("rate = %#v", o.Rate)
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []string{
		"sample_rate: -1",
		"sample_rate: 0",
		"blockSize: 0",
		"max_state_size: 0",
		"optimisation_level: -3",
		"unknown_key: 1",
		"sample_rate: [",
	}
	for _, in := range tests {
		if _, err := Load([]byte(in)); !errors.Is(err, ErrInvalidOption) {
			t.Fatalf("Load(%q) err = %v, want ErrInvalidOption", in, err)
		}
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	o := New(96000, 32, WithOptimisationLevel(1), WithPlatform("wasm"), WithSessionID(5))

	data, err := o.Marshal()
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if !strings.Contains(string(data), KeySampleRate+": 96000") {
		t.Fatalf("missing sample rate in %s", data)
	}

	back, err := Load(data)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !sameOptions(back, o) {
		t.Fatalf("round trip = %#v, want %#v", back, o)
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "link.yaml")
	if err := os.WriteFile(path, []byte("sample_rate: 22050\nblockSize: 16\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	o, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if o.Rate.SampleRate != 22050 || o.Rate.BlockSize != 16 {
		t.Fatalf("rate = %#v", o.Rate)
	}

	if _, err := LoadFile(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func sameOptions(a, b Options) bool {
	aID, aOK := a.SessionID()
	bID, bOK := b.SessionID()
	return a.OptimisationLevel == b.OptimisationLevel &&
		a.MaxStateSize == b.MaxStateSize &&
		a.MainProcessor == b.MainProcessor &&
		a.Platform == b.Platform &&
		a.Rate == b.Rate &&
		aID == bID && aOK == bOK
}
