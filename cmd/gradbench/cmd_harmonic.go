package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/pierreablin/gradbench/harmonic"
	"github.com/pierreablin/gradbench/timeit"
)

var (
	harmonicN     int
	harmonicRuns  int
	harmonicLoops int
)

var harmonicCmd = &cobra.Command{
	Use:   "harmonic",
	Short: "Time the harmonic-square sum Σ 1/i² under both strategies",
	RunE: func(cmd *cobra.Command, args []string) error {
		labels, stats, err := runHarmonic()
		if err != nil {
			return err
		}

		return maybePlot("harmonic-square sum", labels, stats)
	},
}

func init() {
	harmonicCmd.Flags().IntVar(&harmonicN, "n", 1000000, "number of series terms")
	harmonicCmd.Flags().IntVar(&harmonicRuns, "runs", 0, "timed runs (0 = default)")
	harmonicCmd.Flags().IntVar(&harmonicLoops, "loops", 0, "loops per run (0 = auto-calibrate)")
}

// runHarmonic times both sum variants and prints one stats line each.
func runHarmonic() ([]string, []timeit.Stats, error) {
	logger.Debug("harmonic demo", zap.Int("n", harmonicN))

	opts := timeit.DefaultOptions()
	if harmonicRuns > 0 {
		opts.Runs = harmonicRuns
	}
	if harmonicLoops > 0 {
		opts.Loops = harmonicLoops
	}

	variants := []struct {
		name string
		fn   func(int) (float64, error)
	}{
		{"loop", harmonic.Sum},
		{"vectorized", harmonic.SumVectorized},
	}

	labels := make([]string, 0, len(variants))
	stats := make([]timeit.Stats, 0, len(variants))
	for _, v := range variants {
		// Evaluate once up front so input errors surface before timing.
		sum, err := v.fn(harmonicN)
		if err != nil {
			return nil, nil, err
		}

		st, err := timeit.Measure(func() { _, _ = v.fn(harmonicN) }, opts)
		if err != nil {
			return nil, nil, err
		}

		fmt.Printf("harmonic %-10s n=%d sum=%.12f\n", v.name, harmonicN, sum)
		fmt.Printf("  %s\n", st)

		labels = append(labels, "Σ1/i² "+v.name)
		stats = append(stats, st)
	}

	return labels, stats, nil
}
