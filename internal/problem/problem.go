package problem

import (
	"math"
	"math/rand"
)

// Problem is a scalar unimodal objective of the form scale * |1/(x - offset)|.
// It is immutable after construction and safe to share across concurrent
// searches.
type Problem struct {
	offset float64
	scale  float64
}

// Eval returns scale * |1/(x - offset)|.
// At x == offset the result is +Inf (or NaN for scale == 0) per IEEE-754;
// the singularity is not trapped.
func (p *Problem) Eval(x float64) float64 {
	return p.scale * math.Abs(1/(x-p.offset))
}

// Offset returns the x position of the singularity, which is where the
// function attains its minimum on either side.
func (p *Problem) Offset() float64 {
	return p.offset
}

// Scale returns the vertical scale factor.
func (p *Problem) Scale() float64 {
	return p.scale
}

// Builder constructs Problem instances with fluent configuration.
// The zero configuration (offset 0, scale 0) is degenerate; set or randomize
// the parameters before building.
type Builder struct {
	offset float64
	scale  float64
	rng    *rand.Rand
}

// NewBuilder returns a builder with offset 0 and scale 0.
func NewBuilder() *Builder {
	return &Builder{}
}

// Seed fixes the random source used by Randomize for reproducible runs.
func (b *Builder) Seed(seed int64) *Builder {
	b.rng = rand.New(rand.NewSource(seed))
	return b
}

// WithOffset sets the singularity position.
func (b *Builder) WithOffset(offset float64) *Builder {
	b.offset = offset
	return b
}

// WithScale sets the vertical scale factor.
func (b *Builder) WithScale(scale float64) *Builder {
	b.scale = scale
	return b
}

// Randomize draws offset uniformly from [-50, 50] and scale uniformly from
// [-10, 10], then returns the builder for chaining.
func (b *Builder) Randomize() *Builder {
	next := rand.Float64
	if b.rng != nil {
		next = b.rng.Float64
	}
	b.offset = (next() - 0.5) * 100
	b.scale = (next() - 0.5) * 20
	return b
}

// Build snapshots the current configuration into an immutable Problem.
// The builder may be reused or discarded afterwards.
func (b *Builder) Build() *Problem {
	return &Problem{
		offset: b.offset,
		scale:  b.scale,
	}
}
