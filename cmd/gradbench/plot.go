package main

import (
	"fmt"
	"time"

	"go.uber.org/zap"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/pierreablin/gradbench/timeit"
)

// maybePlot renders the mean per-loop timings as a bar chart when --plot
// was given; with no --plot it is a no-op.
func maybePlot(title string, labels []string, stats []timeit.Stats) error {
	if plotPath == "" {
		return nil
	}

	vals := make(plotter.Values, len(stats))
	for i, st := range stats {
		vals[i] = float64(st.Mean) / float64(time.Millisecond)
	}

	p := plot.New()
	p.Title.Text = title
	p.Y.Label.Text = "mean time per loop (ms)"

	bars, err := plotter.NewBarChart(vals, vg.Points(40))
	if err != nil {
		return fmt.Errorf("build bar chart: %w", err)
	}
	p.Add(bars)
	p.NominalX(labels...)

	if err := p.Save(6*vg.Inch, 4*vg.Inch, plotPath); err != nil {
		return fmt.Errorf("save plot: %w", err)
	}
	logger.Info("plot written", zap.String("path", plotPath))

	return nil
}
