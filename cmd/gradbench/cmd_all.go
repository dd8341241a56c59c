package main

import (
	"github.com/spf13/cobra"

	"github.com/pierreablin/gradbench/timeit"
)

var allCmd = &cobra.Command{
	Use:   "all",
	Short: "Run every demo back to back",
	RunE: func(cmd *cobra.Command, args []string) error {
		var (
			labels []string
			stats  []timeit.Stats
		)

		l, s, err := runHarmonic()
		if err != nil {
			return err
		}
		labels = append(labels, l...)
		stats = append(stats, s...)

		l, s, err = runSGD()
		if err != nil {
			return err
		}
		labels = append(labels, l...)
		stats = append(stats, s...)

		return maybePlot("gradbench", labels, stats)
	},
}
