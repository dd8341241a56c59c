// Package timeit measures how long a function takes per call and reports
// mean ± standard deviation, in the style of an interactive timing cell.
//
// Algorithm Outline:
//  1. Call fn opts.Warmup times untimed, so one-off costs (cache warm-up,
//     lazy initialization, first-call JIT effects in wrapped code) do not
//     pollute the measurement.
//  2. If opts.Loops == 0, auto-calibrate: grow the per-run loop count by
//     powers of ten until one run takes at least calibrationTarget.
//  3. Time opts.Runs runs of `loops` calls each; the sample for run r is
//     elapsed(r) / loops, the per-loop duration.
//  4. Reduce the samples with gonum stat.Mean / stat.StdDev and record the
//     best and worst run.
//
// Everything is single-threaded and synchronous: each run completes before
// the next begins, and fn is never invoked concurrently.
//
// Stats.String follows the familiar console format:
//
//	1.234ms ± 56µs per loop (mean ± std. dev. of 7 runs, 100 loops each)
//
// These printed lines are illustrative output for humans, not a stable
// machine-readable surface.
//
// Errors:
//   - ErrNilFunc   — fn is nil.
//   - ErrBadRuns   — Runs < 1.
//   - ErrBadLoops  — Loops < 0.
//   - ErrBadWarmup — Warmup < 0.
package timeit
