package main

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/cwbudde/goldenmin/internal/config"
	"github.com/cwbudde/goldenmin/internal/opt"
	"github.com/cwbudde/goldenmin/internal/problem"
	"github.com/cwbudde/goldenmin/internal/store"
	"github.com/spf13/cobra"
)

var (
	cfgPath   string
	lower     float64
	upper     float64
	xtol      float64
	offset    float64
	scale     float64
	randomize bool
	seed      int64
	tracePath string
)

var solveCmd = &cobra.Command{
	Use:   "solve",
	Short: "Run a golden-section search",
	Long: `Builds a unimodal objective (fixed or randomized) and narrows the given
bracket until its width is within the tolerance, then reports the estimated
minimizer and minimum value.`,
	RunE: runSolve,
}

func init() {
	solveCmd.Flags().StringVar(&cfgPath, "config", "", "YAML run configuration file")
	solveCmd.Flags().Float64Var(&lower, "lower", -200, "Lower bound of the search bracket")
	solveCmd.Flags().Float64Var(&upper, "upper", 200, "Upper bound of the search bracket")
	solveCmd.Flags().Float64VarP(&xtol, "tolerance", "t", 2.0, "Bracket width at which the search stops")
	solveCmd.Flags().Float64Var(&offset, "offset", 0, "Objective singularity position (disables randomization)")
	solveCmd.Flags().Float64Var(&scale, "scale", 1, "Objective scale factor (disables randomization)")
	solveCmd.Flags().BoolVar(&randomize, "randomize", true, "Draw offset and scale at random")
	solveCmd.Flags().Int64Var(&seed, "seed", 42, "Random seed for problem generation")
	solveCmd.Flags().StringVar(&tracePath, "trace", "", "Write a JSONL convergence trace to this path")
	rootCmd.AddCommand(solveCmd)
}

// loadRunConfig merges the optional config file with explicitly set flags.
// Flags win over the file, which wins over defaults.
func loadRunConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if cfgPath != "" {
		var err error
		cfg, err = config.Load(cfgPath)
		if err != nil {
			return nil, err
		}
	}

	f := cmd.Flags()
	if f.Changed("lower") {
		cfg.Search.Lower = lower
	}
	if f.Changed("upper") {
		cfg.Search.Upper = upper
	}
	if f.Changed("tolerance") {
		cfg.Search.XTol = xtol
	}
	if f.Changed("trace") {
		cfg.Search.TracePath = tracePath
	}
	if f.Changed("seed") {
		cfg.Problem.Seed = seed
	}
	if f.Changed("randomize") {
		cfg.Problem.Randomize = randomize
	}
	if f.Changed("offset") {
		cfg.Problem.Offset = offset
		cfg.Problem.Randomize = false
	}
	if f.Changed("scale") {
		cfg.Problem.Scale = scale
		cfg.Problem.Randomize = false
	}

	return cfg, nil
}

// buildProblem constructs the objective described by the problem section.
func buildProblem(pc config.ProblemConfig) *problem.Problem {
	builder := problem.NewBuilder().Seed(pc.Seed)
	if pc.Randomize {
		return builder.Randomize().Build()
	}
	return builder.WithOffset(pc.Offset).WithScale(pc.Scale).Build()
}

func runSolve(cmd *cobra.Command, args []string) error {
	cfg, err := loadRunConfig(cmd)
	if err != nil {
		return err
	}

	prob := buildProblem(cfg.Problem)
	slog.Info("Starting search",
		"lower", cfg.Search.Lower,
		"upper", cfg.Search.Upper,
		"xtol", cfg.Search.XTol,
		"offset", prob.Offset(),
		"scale", prob.Scale(),
	)

	var tw *store.TraceWriter
	if cfg.Search.TracePath != "" {
		tw, err = store.NewTraceWriter(cfg.Search.TracePath)
		if err != nil {
			return fmt.Errorf("failed to open trace: %w", err)
		}
		defer tw.Close()
	}

	search := opt.NewGoldenSection()
	search.Progress = func(p opt.Progress) {
		slog.Debug("Bracket narrowed",
			"iteration", p.Iteration,
			"lower", p.Lower,
			"upper", p.Upper,
			"width", p.Width,
		)
		if tw != nil {
			if err := tw.Write(store.Entry{
				Iteration: p.Iteration,
				Lower:     p.Lower,
				Upper:     p.Upper,
				Width:     p.Width,
				Timestamp: time.Now(),
			}); err != nil {
				slog.Warn("Failed to write trace entry", "error", err)
			}
		}
	}

	start := time.Now()
	result, err := search.Minimize(prob, cfg.Search.Lower, cfg.Search.Upper, cfg.Search.XTol)
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}
	elapsed := time.Since(start)

	slog.Info("Search complete",
		"elapsed", elapsed,
		"iterations", result.Iterations,
		"evaluations", result.Evaluations,
		"minimizer", result.X,
		"value", result.Value,
	)

	fmt.Printf("Offset: %g  Estimate: %g  Minimum value: %g  (%d iterations, %d evaluations)\n",
		prob.Offset(), result.X, result.Value, result.Iterations, result.Evaluations)

	return nil
}
