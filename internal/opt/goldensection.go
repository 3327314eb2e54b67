package opt

import (
	"fmt"
	"math"
)

// resphi is the golden-section fraction 2 - phi = 1/phi^2, the portion of the
// bracket between a bound and its near probe.
const resphi = 2 - math.Phi

// Progress is a per-iteration snapshot of the shrinking bracket.
type Progress struct {
	Iteration int
	Lower     float64
	Upper     float64
	Width     float64
}

// ProgressFunc observes the bracket after each iteration. Diagnostic only;
// it must not mutate search state.
type ProgressFunc func(p Progress)

// BracketError reports a bracket whose bounds are not strictly increasing
// finite numbers.
type BracketError struct {
	Lower float64
	Upper float64
}

func (e *BracketError) Error() string {
	return fmt.Sprintf("invalid bracket [%g, %g]: lower bound must be finite and strictly below upper bound", e.Lower, e.Upper)
}

// ToleranceError reports a tolerance that cannot terminate the search.
type ToleranceError struct {
	XTol float64
}

func (e *ToleranceError) Error() string {
	return fmt.Sprintf("invalid tolerance %g: must be strictly positive", e.XTol)
}

// GoldenSection minimizes a unimodal scalar function by golden-section
// bracketing. Each iteration shrinks the bracket to phi-1 (~0.618) of its
// width and costs exactly one objective evaluation, because one interior
// probe is reused from the previous iteration.
//
// Unimodality on the bracket is a precondition, not something the search
// checks; on a multimodal objective it converges to some local minimum.
// Infinite objective values participate normally in comparisons (Inf never
// beats a finite value), so a singular objective steers the bracket away
// from its pole without special handling.
type GoldenSection struct {
	// Progress, if non-nil, is called with the bracket after every
	// iteration.
	Progress ProgressFunc
}

// NewGoldenSection returns a search with no progress observer.
func NewGoldenSection() *GoldenSection {
	return &GoldenSection{}
}

// Minimize runs the search on [lower, upper] until the bracket width is at
// most xtol, then returns the midpoint of the final bracket and the objective
// value there.
//
// The bracket must satisfy lower < upper and xtol must be strictly positive;
// violations fail fast with *BracketError or *ToleranceError. xtol should
// also be meaningfully larger than machine epsilon relative to the bracket
// scale, which Minimize cannot check for the caller.
func (g *GoldenSection) Minimize(f Objective, lower, upper, xtol float64) (Result, error) {
	if math.IsNaN(lower) || math.IsNaN(upper) || math.IsInf(lower, 0) || math.IsInf(upper, 0) || lower >= upper {
		return Result{}, &BracketError{Lower: lower, Upper: upper}
	}
	if math.IsNaN(xtol) || xtol <= 0 {
		return Result{}, &ToleranceError{XTol: xtol}
	}

	// Bracket already within tolerance: midpoint with a single evaluation.
	if upper-lower <= xtol {
		mid := (lower + upper) / 2
		return Result{X: mid, Value: f.Eval(mid), Evaluations: 1}, nil
	}

	lowerProbe := lower + resphi*(upper-lower)
	lowerVal := f.Eval(lowerProbe)

	upperProbe := upper - resphi*(upper-lower)
	upperVal := f.Eval(upperProbe)

	iterations := 0
	evaluations := 2

	for math.Abs(upper-lower) > xtol {
		if lowerVal < upperVal {
			// Minimum is in [lower, upperProbe]; the old lower probe
			// becomes the new upper probe.
			upper = upperProbe
			upperProbe = lowerProbe
			upperVal = lowerVal

			lowerProbe = lower + resphi*(upper-lower)
			lowerVal = f.Eval(lowerProbe)
		} else {
			lower = lowerProbe
			lowerProbe = upperProbe
			lowerVal = upperVal

			upperProbe = upper - resphi*(upper-lower)
			upperVal = f.Eval(upperProbe)
		}
		iterations++
		evaluations++

		if g.Progress != nil {
			g.Progress(Progress{
				Iteration: iterations,
				Lower:     lower,
				Upper:     upper,
				Width:     math.Abs(upper - lower),
			})
		}
	}

	x := (lower + upper) / 2
	return Result{
		X:           x,
		Value:       f.Eval(x),
		Iterations:  iterations,
		Evaluations: evaluations + 1,
	}, nil
}
