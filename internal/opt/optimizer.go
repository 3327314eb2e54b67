package opt

// Objective is a scalar function of one real variable.
type Objective interface {
	// Eval returns the objective value at x.
	Eval(x float64) float64
}

// ObjectiveFunc adapts a plain function to the Objective interface.
type ObjectiveFunc func(x float64) float64

// Eval calls f(x).
func (f ObjectiveFunc) Eval(x float64) float64 {
	return f(x)
}

// Result holds the outcome of a minimization run.
type Result struct {
	// X is the estimated minimizer.
	X float64

	// Value is the objective value at X.
	Value float64

	// Iterations is the number of bracket-shrinking iterations performed.
	Iterations int

	// Evaluations is the total number of objective evaluations.
	Evaluations int
}

// Minimizer defines a derivative-free scalar minimization algorithm.
type Minimizer interface {
	// Minimize searches [lower, upper] for the minimum of f, stopping when
	// the bracket width is at most xtol.
	// Returns the estimated minimizer and the objective value there.
	Minimize(f Objective, lower, upper, xtol float64) (Result, error)
}
