package dft

import (
	"fmt"
	"runtime"
	"strings"
)

// Layout selects how the half spectrum is packed into N values.
type Layout int

const (
	// LayoutPacked stores H real then H imaginary kernel outputs.
	LayoutPacked Layout = iota
	// LayoutFolded is LayoutPacked with the Nyquist term folded into packed[0].
	LayoutFolded
)

// String returns the layout name.
func (l Layout) String() string {
	switch l {
	case LayoutPacked:
		return "packed"
	case LayoutFolded:
		return "folded"
	default:
		return fmt.Sprintf("Layout(%d)", int(l))
	}
}

func (l Layout) valid() bool {
	return l == LayoutPacked || l == LayoutFolded
}

// ParseLayout returns the layout with the given name.
func ParseLayout(name string) (Layout, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "packed", "":
		return LayoutPacked, nil
	case "folded":
		return LayoutFolded, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidLayout, name)
	}
}

type planConfig struct {
	layout  Layout
	workers int
}

// PlanOption configures a plan.
type PlanOption func(*planConfig)

func defaultPlanConfig() planConfig {
	return planConfig{
		layout:  LayoutPacked,
		workers: 1,
	}
}

// WithLayout selects the packed spectrum layout.
func WithLayout(layout Layout) PlanOption {
	return func(cfg *planConfig) {
		cfg.layout = layout
	}
}

// WithWorkers sets the number of goroutines used for the kernel rows.
// n <= 0 selects runtime.GOMAXPROCS(0).
func WithWorkers(n int) PlanOption {
	return func(cfg *planConfig) {
		if n <= 0 {
			n = runtime.GOMAXPROCS(0)
		}
		cfg.workers = n
	}
}

func applyPlanOptions(opts []PlanOption) planConfig {
	cfg := defaultPlanConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}
