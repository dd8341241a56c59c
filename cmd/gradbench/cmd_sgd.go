package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/pierreablin/gradbench/dataset"
	"github.com/pierreablin/gradbench/ridge"
	"github.com/pierreablin/gradbench/timeit"
)

var (
	sgdN      int
	sgdP      int
	sgdLambda float64
	sgdStep   float64
	sgdIters  int
	sgdSeed   uint64
	sgdNoise  float64
	sgdRuns   int
	sgdLoops  int
)

var sgdCmd = &cobra.Command{
	Use:   "sgd",
	Short: "Time ridge-regression SGD with scalar and vectorized kernels",
	RunE: func(cmd *cobra.Command, args []string) error {
		labels, stats, err := runSGD()
		if err != nil {
			return err
		}

		return maybePlot("ridge SGD", labels, stats)
	},
}

func init() {
	sgdCmd.Flags().IntVar(&sgdN, "n", 100, "observations")
	sgdCmd.Flags().IntVar(&sgdP, "p", 100, "features")
	sgdCmd.Flags().Float64Var(&sgdLambda, "lambda", ridge.DefaultLambda, "ridge regularization λ")
	sgdCmd.Flags().Float64Var(&sgdStep, "step", ridge.DefaultStep, "step size")
	sgdCmd.Flags().IntVar(&sgdIters, "iters", ridge.DefaultMaxIter, "SGD iterations")
	sgdCmd.Flags().Uint64Var(&sgdSeed, "seed", 0, "dataset seed (0 = fixed default)")
	sgdCmd.Flags().Float64Var(&sgdNoise, "noise", dataset.DefaultNoise, "target noise level")
	sgdCmd.Flags().IntVar(&sgdRuns, "runs", 0, "timed runs (0 = default)")
	sgdCmd.Flags().IntVar(&sgdLoops, "loops", 0, "loops per run (0 = auto-calibrate)")
}

// runSGD builds one seeded problem, then times the full SGD loop once per
// kernel, printing stats and the final objective value for each.
func runSGD() ([]string, []timeit.Stats, error) {
	logger.Debug("sgd demo",
		zap.Int("n", sgdN), zap.Int("p", sgdP),
		zap.Float64("lambda", sgdLambda), zap.Float64("step", sgdStep),
		zap.Int("iters", sgdIters), zap.Uint64("seed", sgdSeed))

	a, b, err := dataset.Ridge(sgdN, sgdP, dataset.Options{Seed: sgdSeed, Noise: sgdNoise})
	if err != nil {
		return nil, nil, err
	}

	topts := timeit.DefaultOptions()
	if sgdRuns > 0 {
		topts.Runs = sgdRuns
	}
	if sgdLoops > 0 {
		topts.Loops = sgdLoops
	}

	kernels := []struct {
		name   string
		kernel ridge.Kernel
	}{
		{"scalar", ridge.Scalar},
		{"vectorized", ridge.Vectorized},
	}

	labels := make([]string, 0, len(kernels))
	stats := make([]timeit.Stats, 0, len(kernels))
	for _, k := range kernels {
		opts := ridge.Options{
			Step:    sgdStep,
			Lambda:  sgdLambda,
			MaxIter: sgdIters,
			Kernel:  k.kernel,
		}

		// One checked run before timing: surfaces validation errors and
		// yields the final parameters for the objective report.
		x := make([]float64, sgdP)
		if _, err = ridge.SGD(x, a, b, opts); err != nil {
			return nil, nil, err
		}
		obj := ridge.Objective(x, a, b, sgdLambda)

		scratch := make([]float64, sgdP)
		st, err := timeit.Measure(func() {
			for j := range scratch {
				scratch[j] = 0
			}
			_, _ = ridge.SGD(scratch, a, b, opts)
		}, topts)
		if err != nil {
			return nil, nil, err
		}

		fmt.Printf("sgd %-10s n=%d p=%d iters=%d objective=%.6f\n",
			k.name, sgdN, sgdP, sgdIters, obj)
		fmt.Printf("  %s\n", st)

		labels = append(labels, "SGD "+k.name)
		stats = append(stats, st)
	}

	return labels, stats, nil
}
