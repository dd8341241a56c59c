// Package timeit defines options and the result type for Measure.
package timeit

import (
	"fmt"
	"time"
)

// Default option values, the single source of truth for DefaultOptions.
const (
	// DefaultRuns mirrors the classic 7-run console default.
	DefaultRuns = 7

	// DefaultLoops of 0 requests auto-calibration of the per-run loop count.
	DefaultLoops = 0

	// DefaultWarmup is a single untimed call before measurement starts.
	DefaultWarmup = 1

	// calibrationTarget is the minimum duration one run should take after
	// auto-calibration; short runs make the per-loop samples too noisy.
	calibrationTarget = 200 * time.Millisecond

	// maxCalibratedLoops caps auto-calibration for extremely cheap functions.
	maxCalibratedLoops = 10_000_000
)

// Options configures Measure.
//
// Fields:
//   - Runs   — number of timed runs; each contributes one per-loop sample.
//   - Loops  — calls per run; 0 means auto-calibrate (powers of ten until a
//     run takes at least ~200ms).
//   - Warmup — untimed calls before measurement.
type Options struct {
	Runs   int
	Loops  int
	Warmup int
}

// DefaultOptions returns the documented defaults: 7 runs, auto-calibrated
// loops, one warm-up call.
func DefaultOptions() Options {
	return Options{
		Runs:   DefaultRuns,
		Loops:  DefaultLoops,
		Warmup: DefaultWarmup,
	}
}

// Stats summarizes one measurement. All durations are per loop, i.e. per
// single call of the measured function.
type Stats struct {
	Mean   time.Duration
	StdDev time.Duration
	Best   time.Duration
	Worst  time.Duration
	Runs   int
	Loops  int
}

// String renders the stats in the familiar console format:
//
//	1.234ms ± 56µs per loop (mean ± std. dev. of 7 runs, 100 loops each)
func (s Stats) String() string {
	return fmt.Sprintf("%v ± %v per loop (mean ± std. dev. of %d runs, %d loops each)",
		s.Mean, s.StdDev, s.Runs, s.Loops)
}
