package dft

import (
	"fmt"
	"sync"

	"github.com/cwbudde/algo-dft/dsp/core"
)

// scratch holds the kernel operands that are not caller buffers.
type scratch[F core.Float] struct {
	a, b, c []F
}

// PlanT is a reusable real DFT of fixed even length N.
//
// A plan is immutable after construction and safe for concurrent use. Kernel
// scratch is pooled, so transforms do not allocate in steady state.
type PlanT[F core.Float] struct {
	n         int
	harmonics int
	layout    Layout
	workers   int
	tw        twiddles
	pool      sync.Pool
}

// Plan is the float64 specialization.
type Plan = PlanT[float64]

// Plan32 is the float32 specialization.
type Plan32 = PlanT[float32]

// NewPlanT creates a plan for buffers of length n. n must be positive and even.
func NewPlanT[F core.Float](n int, opts ...PlanOption) (*PlanT[F], error) {
	if n <= 0 || n%2 != 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidLength, n)
	}

	cfg := applyPlanOptions(opts)
	if !cfg.layout.valid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidLayout, int(cfg.layout))
	}

	p := &PlanT[F]{
		n:         n,
		harmonics: n / 2,
		layout:    cfg.layout,
		workers:   cfg.workers,
		tw:        newTwiddles(n),
	}
	p.pool.New = func() any {
		return &scratch[F]{
			a: make([]F, n),
			b: make([]F, n),
			c: make([]F, n),
		}
	}
	return p, nil
}

// NewPlan creates a float64 plan.
func NewPlan(n int, opts ...PlanOption) (*Plan, error) {
	return NewPlanT[float64](n, opts...)
}

// NewPlan32 creates a float32 plan.
func NewPlan32(n int, opts ...PlanOption) (*Plan32, error) {
	return NewPlanT[float32](n, opts...)
}

// Len returns the buffer length N.
func (p *PlanT[F]) Len() int { return p.n }

// Harmonics returns H = N/2.
func (p *PlanT[F]) Harmonics() int { return p.harmonics }

// Layout returns the packed spectrum layout.
func (p *PlanT[F]) Layout() Layout { return p.layout }

// Forward transforms the real signal src into the packed spectrum dst.
// dst may alias src.
func (p *PlanT[F]) Forward(dst, src []F) error {
	if err := p.check(dst, src); err != nil {
		return err
	}

	s := p.pool.Get().(*scratch[F])
	defer p.pool.Put(s)

	inIm, outRe, outIm := s.a, s.b, s.c
	core.Zero(inIm)

	performComplex(p.tw, src, inIm, outRe, outIm, 1/F(p.harmonics), p.workers)
	encode(dst, outRe, outIm, p.harmonics, p.layout)
	return nil
}

// Inverse transforms the packed spectrum src back into the real signal dst.
// dst may alias src.
func (p *PlanT[F]) Inverse(dst, src []F) error {
	if err := p.check(dst, src); err != nil {
		return err
	}

	s := p.pool.Get().(*scratch[F])
	defer p.pool.Put(s)

	inRe, inIm, outRe := s.a, s.b, s.c
	decode(inRe, inIm, src, p.harmonics, p.layout)

	performComplex(p.tw, inRe, inIm, outRe, dst, 1, p.workers)
	return nil
}

func (p *PlanT[F]) check(dst, src []F) error {
	if dst == nil || src == nil {
		return ErrNilSlice
	}
	if !core.SameLen(p.n, dst, src) {
		return fmt.Errorf("%w: plan %d, dst %d, src %d", ErrLengthMismatch, p.n, len(dst), len(src))
	}
	return nil
}

// Forward transforms src into dst with a one-off plan of length len(src).
// Use a [PlanT] for repeated transforms.
func Forward[F core.Float](dst, src []F, opts ...PlanOption) error {
	p, err := oneShot[F](dst, src, opts)
	if err != nil {
		return err
	}
	return p.Forward(dst, src)
}

// Inverse transforms the packed spectrum src into dst with a one-off plan.
func Inverse[F core.Float](dst, src []F, opts ...PlanOption) error {
	p, err := oneShot[F](dst, src, opts)
	if err != nil {
		return err
	}
	return p.Inverse(dst, src)
}

func oneShot[F core.Float](dst, src []F, opts []PlanOption) (*PlanT[F], error) {
	if dst == nil || src == nil {
		return nil, ErrNilSlice
	}
	if len(dst) != len(src) {
		return nil, fmt.Errorf("%w: dst %d, src %d", ErrLengthMismatch, len(dst), len(src))
	}
	return NewPlanT[F](len(src), opts...)
}
