package timeit_test

import (
	"testing"
	"time"

	"github.com/pierreablin/gradbench/timeit"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestMeasure_Validation exercises every sentinel.
func TestMeasure_Validation(t *testing.T) {
	noop := func() {}

	_, err := timeit.Measure(nil, timeit.DefaultOptions())
	assert.ErrorIs(t, err, timeit.ErrNilFunc)

	opts := timeit.DefaultOptions()
	opts.Runs = 0
	_, err = timeit.Measure(noop, opts)
	assert.ErrorIs(t, err, timeit.ErrBadRuns)

	opts = timeit.DefaultOptions()
	opts.Loops = -1
	_, err = timeit.Measure(noop, opts)
	assert.ErrorIs(t, err, timeit.ErrBadLoops)

	opts = timeit.DefaultOptions()
	opts.Warmup = -1
	_, err = timeit.Measure(noop, opts)
	assert.ErrorIs(t, err, timeit.ErrBadWarmup)
}

// TestMeasure_CallCount verifies warm-up and run·loop invocations with a
// fixed loop count (no calibration calls involved).
func TestMeasure_CallCount(t *testing.T) {
	calls := 0
	opts := timeit.Options{Runs: 3, Loops: 5, Warmup: 2}

	st, err := timeit.Measure(func() { calls++ }, opts)
	require.NoError(t, err)
	assert.Equal(t, 2+3*5, calls, "warmup + runs·loops invocations")
	assert.Equal(t, 3, st.Runs)
	assert.Equal(t, 5, st.Loops)
}

// TestMeasure_StatsShape checks the per-loop statistics are ordered and
// roughly track a known sleep duration.
func TestMeasure_StatsShape(t *testing.T) {
	const pause = 2 * time.Millisecond
	opts := timeit.Options{Runs: 3, Loops: 2, Warmup: 0}

	st, err := timeit.Measure(func() { time.Sleep(pause) }, opts)
	require.NoError(t, err)

	assert.GreaterOrEqual(t, st.Mean, pause, "mean per loop includes the sleep")
	assert.LessOrEqual(t, st.Best, st.Mean, "best ≤ mean")
	assert.GreaterOrEqual(t, st.Worst, st.Mean, "worst ≥ mean")
	assert.GreaterOrEqual(t, st.StdDev, time.Duration(0))
}

// TestMeasure_SingleRunZeroStdDev verifies one run yields zero spread
// rather than NaN.
func TestMeasure_SingleRunZeroStdDev(t *testing.T) {
	opts := timeit.Options{Runs: 1, Loops: 3, Warmup: 0}

	st, err := timeit.Measure(func() {}, opts)
	require.NoError(t, err)
	assert.Equal(t, time.Duration(0), st.StdDev)
	assert.Equal(t, st.Best, st.Worst, "single run is both best and worst")
}

// TestStats_String checks the console rendering of a fixed Stats value.
func TestStats_String(t *testing.T) {
	st := timeit.Stats{
		Mean:   1234 * time.Microsecond,
		StdDev: 56 * time.Microsecond,
		Runs:   7,
		Loops:  100,
	}
	assert.Equal(t,
		"1.234ms ± 56µs per loop (mean ± std. dev. of 7 runs, 100 loops each)",
		st.String())
}
