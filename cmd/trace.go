package main

import (
	"fmt"

	"github.com/cwbudde/goldenmin/internal/store"
	"github.com/spf13/cobra"
)

var traceCmd = &cobra.Command{
	Use:   "trace <file>",
	Short: "Inspect a JSONL convergence trace",
	Long: `Reads a convergence trace written by solve --trace and prints the bracket
per iteration along with the per-iteration shrink factor. Golden-section
retains about 61.8% of the bracket each iteration, so the worst shrink
factor should stay near 0.618.`,
	Args: cobra.ExactArgs(1),
	RunE: runTrace,
}

func init() {
	rootCmd.AddCommand(traceCmd)
}

func runTrace(cmd *cobra.Command, args []string) error {
	reader, err := store.NewTraceReader(args[0])
	if err != nil {
		return err
	}
	defer reader.Close()

	entries, err := reader.ReadAll()
	if err != nil {
		return fmt.Errorf("failed to read trace: %w", err)
	}
	if len(entries) == 0 {
		fmt.Println("Trace is empty (bracket was within tolerance before the first iteration)")
		return nil
	}

	worstShrink := 0.0
	prevWidth := 0.0
	for i, entry := range entries {
		shrink := 0.0
		if i > 0 && prevWidth > 0 {
			shrink = entry.Width / prevWidth
			if shrink > worstShrink {
				worstShrink = shrink
			}
		}
		fmt.Printf("iter %3d  bracket [%12.5f, %12.5f]  width %12.5f", entry.Iteration, entry.Lower, entry.Upper, entry.Width)
		if i > 0 {
			fmt.Printf("  shrink %.4f", shrink)
		}
		fmt.Println()
		prevWidth = entry.Width
	}

	fmt.Printf("%d iterations, worst shrink factor %.4f\n", len(entries), worstShrink)
	return nil
}
