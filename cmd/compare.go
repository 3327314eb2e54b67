package main

import (
	"fmt"
	"log/slog"

	"github.com/cwbudde/goldenmin/internal/opt"
	"github.com/spf13/cobra"
)

var (
	mayflyIters int
	mayflyPop   int
)

var compareCmd = &cobra.Command{
	Use:   "compare",
	Short: "Cross-check golden-section against the mayfly swarm optimizer",
	Long: `Runs golden-section search and the mayfly swarm optimizer on the same
problem and bracket, reporting both estimates. The two methods are
independent, so agreement on the minimizer is a strong sanity check.`,
	RunE: runCompare,
}

func init() {
	compareCmd.Flags().StringVar(&cfgPath, "config", "", "YAML run configuration file")
	compareCmd.Flags().Float64Var(&lower, "lower", -200, "Lower bound of the search bracket")
	compareCmd.Flags().Float64Var(&upper, "upper", 200, "Upper bound of the search bracket")
	compareCmd.Flags().Float64VarP(&xtol, "tolerance", "t", 2.0, "Bracket width at which golden-section stops")
	compareCmd.Flags().Float64Var(&offset, "offset", 0, "Objective singularity position (disables randomization)")
	compareCmd.Flags().Float64Var(&scale, "scale", 1, "Objective scale factor (disables randomization)")
	compareCmd.Flags().BoolVar(&randomize, "randomize", true, "Draw offset and scale at random")
	compareCmd.Flags().Int64Var(&seed, "seed", 42, "Random seed for problem generation and the swarm")
	compareCmd.Flags().IntVar(&mayflyIters, "mayfly-iters", 100, "Mayfly iteration budget")
	compareCmd.Flags().IntVar(&mayflyPop, "mayfly-pop", 20, "Mayfly population size")
	rootCmd.AddCommand(compareCmd)
}

func runCompare(cmd *cobra.Command, args []string) error {
	cfg, err := loadRunConfig(cmd)
	if err != nil {
		return err
	}

	prob := buildProblem(cfg.Problem)
	slog.Info("Cross-checking minimizers",
		"lower", cfg.Search.Lower,
		"upper", cfg.Search.Upper,
		"offset", prob.Offset(),
	)

	minimizers := []struct {
		name string
		m    opt.Minimizer
	}{
		{"golden-section", opt.NewGoldenSection()},
		{"mayfly", opt.NewMayfly(mayflyIters, mayflyPop, cfg.Problem.Seed)},
	}

	for _, entry := range minimizers {
		result, err := entry.m.Minimize(prob, cfg.Search.Lower, cfg.Search.Upper, cfg.Search.XTol)
		if err != nil {
			return fmt.Errorf("%s failed: %w", entry.name, err)
		}
		fmt.Printf("%-15s estimate: %-12g value: %-12g evaluations: %d\n",
			entry.name, result.X, result.Value, result.Evaluations)
	}

	fmt.Printf("%-15s offset:   %g\n", "actual", prob.Offset())
	return nil
}
