package opt

import (
	"fmt"
	"math/rand"

	"github.com/cwbudde/mayfly"
)

// MayflyAdapter wraps the external Mayfly swarm optimizer behind the
// Minimizer interface, bridging the scalar objective to mayfly's
// []float64 objective with one dimension.
//
// It does not bracket: the population samples [lower, upper] directly and
// xtol is ignored, so the result is a stochastic estimate controlled by the
// iteration budget and seed. Used as an independent cross-check of the
// golden-section result, not as the primary search.
type MayflyAdapter struct {
	maxIters int
	popSize  int
	seed     int64
}

// NewMayfly creates a Mayfly adapter with the given iteration budget,
// population size and random seed.
func NewMayfly(maxIters, popSize int, seed int64) *MayflyAdapter {
	return &MayflyAdapter{
		maxIters: maxIters,
		popSize:  popSize,
		seed:     seed,
	}
}

// Minimize runs the swarm over [lower, upper] and returns its global best.
func (m *MayflyAdapter) Minimize(f Objective, lower, upper, xtol float64) (Result, error) {
	if lower >= upper {
		return Result{}, &BracketError{Lower: lower, Upper: upper}
	}

	config := mayfly.NewDefaultConfig()
	config.ObjectiveFunc = func(x []float64) float64 { return f.Eval(x[0]) }
	config.ProblemSize = 1
	config.MaxIterations = m.maxIters
	config.NPop = m.popSize
	config.LowerBound = lower
	config.UpperBound = upper

	// Seeded for reproducibility.
	config.Rand = rand.New(rand.NewSource(m.seed))

	result, err := mayfly.Optimize(config)
	if err != nil {
		return Result{}, fmt.Errorf("mayfly optimization failed: %w", err)
	}

	return Result{
		X:           result.GlobalBest.Position[0],
		Value:       result.GlobalBest.Cost,
		Iterations:  m.maxIters,
		Evaluations: m.maxIters * m.popSize,
	}, nil
}
