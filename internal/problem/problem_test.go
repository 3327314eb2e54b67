package problem

import (
	"math"
	"testing"
)

func TestEval(t *testing.T) {
	p := NewBuilder().WithOffset(5).WithScale(2).Build()

	cases := []struct {
		x    float64
		want float64
	}{
		{6, 2},    // 2 * |1/1|
		{4, 2},    // symmetric around the offset
		{7, 1},    // 2 * |1/2|
		{3, 1},
		{105, 0.02},
	}

	for _, c := range cases {
		got := p.Eval(c.x)
		if math.Abs(got-c.want) > 1e-12 {
			t.Errorf("Eval(%g) = %g, want %g", c.x, got, c.want)
		}
	}
}

func TestEvalNegativeScale(t *testing.T) {
	// A negative scale flips the shape; the magnitude is unchanged.
	p := NewBuilder().WithOffset(0).WithScale(-3).Build()

	if got := p.Eval(1); got != -3 {
		t.Errorf("Eval(1) = %g, want -3", got)
	}
}

func TestEvalSingularity(t *testing.T) {
	p := NewBuilder().WithOffset(5).WithScale(2).Build()

	got := p.Eval(5)
	if !math.IsInf(got, 1) {
		t.Errorf("Eval at the singularity = %g, want +Inf", got)
	}

	// Inf never wins a strict < against a finite value, which is what
	// lets a bracketing search steer away from the pole.
	if got < p.Eval(6) {
		t.Error("Inf compared as less than a finite value")
	}
}

func TestBuilderDefaults(t *testing.T) {
	p := NewBuilder().Build()

	if p.Offset() != 0 || p.Scale() != 0 {
		t.Errorf("default problem = (offset %g, scale %g), want (0, 0)", p.Offset(), p.Scale())
	}
}

func TestRandomizeRanges(t *testing.T) {
	b := NewBuilder().Seed(1)

	for i := 0; i < 1000; i++ {
		p := b.Randomize().Build()
		if p.Offset() < -50 || p.Offset() > 50 {
			t.Fatalf("offset %g outside [-50, 50]", p.Offset())
		}
		if p.Scale() < -10 || p.Scale() > 10 {
			t.Fatalf("scale %g outside [-10, 10]", p.Scale())
		}
	}
}

func TestRandomizeDeterministicWithSeed(t *testing.T) {
	p1 := NewBuilder().Seed(42).Randomize().Build()
	p2 := NewBuilder().Seed(42).Randomize().Build()

	if p1.Offset() != p2.Offset() || p1.Scale() != p2.Scale() {
		t.Errorf("same seed produced different problems: (%g, %g) vs (%g, %g)",
			p1.Offset(), p1.Scale(), p2.Offset(), p2.Scale())
	}
}

func TestBuilderReuse(t *testing.T) {
	b := NewBuilder().WithOffset(1).WithScale(2)
	p1 := b.Build()

	// Mutating the builder afterwards must not affect the built snapshot.
	b.WithOffset(9).WithScale(8)
	p2 := b.Build()

	if p1.Offset() != 1 || p1.Scale() != 2 {
		t.Errorf("first snapshot changed after builder reuse: (%g, %g)", p1.Offset(), p1.Scale())
	}
	if p2.Offset() != 9 || p2.Scale() != 8 {
		t.Errorf("second snapshot = (%g, %g), want (9, 8)", p2.Offset(), p2.Scale())
	}
}
