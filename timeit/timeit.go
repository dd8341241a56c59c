package timeit

import (
	"errors"
	"time"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

var (
	// ErrNilFunc indicates a nil function was passed to Measure.
	ErrNilFunc = errors.New("timeit: function is nil")

	// ErrBadRuns indicates Runs < 1.
	ErrBadRuns = errors.New("timeit: runs must be ≥ 1")

	// ErrBadLoops indicates a negative Loops value.
	ErrBadLoops = errors.New("timeit: loops must be ≥ 0")

	// ErrBadWarmup indicates a negative Warmup value.
	ErrBadWarmup = errors.New("timeit: warmup must be ≥ 0")
)

// Measure times fn and returns per-loop statistics. See the package
// documentation for the warm-up and calibration policy.
//
// fn is invoked Warmup + Runs·Loops times in total (plus calibration calls
// when Loops is 0), always sequentially on the calling goroutine.
func Measure(fn func(), opts Options) (Stats, error) {
	if fn == nil {
		return Stats{}, ErrNilFunc
	}
	if opts.Runs < 1 {
		return Stats{}, ErrBadRuns
	}
	if opts.Loops < 0 {
		return Stats{}, ErrBadLoops
	}
	if opts.Warmup < 0 {
		return Stats{}, ErrBadWarmup
	}

	for i := 0; i < opts.Warmup; i++ {
		fn()
	}

	loops := opts.Loops
	if loops == 0 {
		loops = calibrate(fn)
	}

	// One sample per run: elapsed / loops.
	samples := make([]float64, opts.Runs)
	for r := range samples {
		start := time.Now()
		for l := 0; l < loops; l++ {
			fn()
		}
		samples[r] = float64(time.Since(start)) / float64(loops)
	}

	st := Stats{
		Mean:  time.Duration(stat.Mean(samples, nil)),
		Best:  time.Duration(floats.Min(samples)),
		Worst: time.Duration(floats.Max(samples)),
		Runs:  opts.Runs,
		Loops: loops,
	}
	if opts.Runs > 1 {
		st.StdDev = time.Duration(stat.StdDev(samples, nil))
	}

	return st, nil
}

// calibrate grows the loop count by powers of ten until one run lasts at
// least calibrationTarget, mirroring interactive timing cells.
func calibrate(fn func()) int {
	loops := 1
	for {
		start := time.Now()
		for l := 0; l < loops; l++ {
			fn()
		}
		if time.Since(start) >= calibrationTarget || loops >= maxCalibratedLoops {
			return loops
		}
		loops *= 10
	}
}
