// Command dftinfo prints the packed real DFT of a test signal.
//
// Usage:
//
//	dftinfo [flags]
//
// The transform length defaults to the block size of the link options
// (-config) and the bin frequencies use their sample rate.
//
// Examples:
//
//	dftinfo -size 16 -signal cosine -bin 3
//	dftinfo -size 64 -signal noise -layout folded -check
//	dftinfo -config link.yaml -signal impulse -precision 32
//	dftinfo -size 1024 -signal noise -cache-dir /tmp/dftcache -v 2
//	dftinfo -list
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"sort"

	"k8s.io/klog/v2"
)

type config struct {
	size       int
	signal     string
	bin        int
	amplitude  float64
	seed       int64
	layout     string
	precision  int
	workers    int
	rows       int
	configPath string
	check      bool
	cacheDir   string
	cacheDB    string
	cacheFiles int
}

func main() {
	klog.InitFlags(nil)

	var cfg config
	flag.IntVar(&cfg.size, "size", 0, "transform length (even); 0 uses the configured block size")
	flag.StringVar(&cfg.signal, "signal", "cosine", "input signal (use -list to see available)")
	flag.IntVar(&cfg.bin, "bin", 1, "harmonic of the cosine/sine signals, position of the impulse")
	flag.Float64Var(&cfg.amplitude, "amplitude", 1, "signal amplitude")
	flag.Int64Var(&cfg.seed, "seed", 1, "seed of the noise signal")
	flag.StringVar(&cfg.layout, "layout", "packed", "spectrum layout: packed or folded")
	flag.IntVar(&cfg.precision, "precision", 64, "sample precision in bits: 32 or 64")
	flag.IntVar(&cfg.workers, "workers", 1, "kernel goroutines; 0 uses GOMAXPROCS")
	flag.IntVar(&cfg.rows, "rows", 32, "maximum harmonics to print; 0 prints all")
	flag.StringVar(&cfg.configPath, "config", "", "link options file (YAML or JSON)")
	flag.BoolVar(&cfg.check, "check", false, "compare against reference FFTs")
	flag.StringVar(&cfg.cacheDir, "cache-dir", "", "cache spectra in this directory")
	flag.StringVar(&cfg.cacheDB, "cache-db", "", "cache spectra in this bbolt database")
	flag.IntVar(&cfg.cacheFiles, "cache-files", 64, "maximum files kept in -cache-dir")
	list := flag.Bool("list", false, "list available signal names")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: dftinfo [flags]\n\n")
		fmt.Fprintf(os.Stderr, "Prints the packed real DFT of a test signal, its round-trip error\n")
		fmt.Fprintf(os.Stderr, "and optionally its deviation from reference FFTs.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  dftinfo -size 16 -signal cosine -bin 3\n")
		fmt.Fprintf(os.Stderr, "  dftinfo -size 64 -signal noise -layout folded -check\n")
		fmt.Fprintf(os.Stderr, "  dftinfo -list\n")
	}
	flag.Parse()
	defer klog.Flush()

	if *list {
		printList(os.Stdout)
		return
	}

	if err := run(os.Stdout, cfg); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		klog.Flush()
		os.Exit(1)
	}
}

func printList(w io.Writer) {
	names := make([]string, 0, len(signals))
	for name := range signals {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, n := range names {
		fmt.Fprintln(w, n)
	}
}
