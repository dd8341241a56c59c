package dataset

import (
	"errors"
	"math"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/mat"
)

var (
	// ErrBadShape indicates non-positive requested dimensions.
	ErrBadShape = errors.New("dataset: n and p must be ≥ 1")

	// ErrBadNoise indicates a negative or non-finite noise level.
	ErrBadNoise = errors.New("dataset: noise must be non-negative and finite")
)

// defaultSeed is the fixed seed used when callers pass Seed == 0. The value
// is arbitrary but stable to keep reproducible defaults.
const defaultSeed uint64 = 1

// DefaultNoise is the target noise level used by DefaultOptions.
const DefaultNoise = 0.1

// Options configures Ridge.
//
// Fields:
//   - Seed  — RNG seed; 0 selects the fixed default seed.
//   - Noise — standard deviation of the additive target noise; 0 gives an
//     exactly consistent linear system b = A·w*.
type Options struct {
	Seed  uint64
	Noise float64
}

// DefaultOptions returns the documented defaults: Seed=0 (fixed stream),
// Noise=0.1.
func DefaultOptions() Options {
	return Options{Seed: 0, Noise: DefaultNoise}
}

// Ridge returns a deterministic n×p standard-normal design matrix and the
// matching length-n target vector b = A·w* + Noise·ε.
//
// Complexity: O(n·p) time and memory.
func Ridge(n, p int, opts Options) (*mat.Dense, []float64, error) {
	if n < 1 || p < 1 {
		return nil, nil, ErrBadShape
	}
	if opts.Noise < 0 || math.IsInf(opts.Noise, 0) || math.IsNaN(opts.Noise) {
		return nil, nil, ErrBadNoise
	}

	seed := opts.Seed
	if seed == 0 {
		seed = defaultSeed
	}
	rng := rand.New(rand.NewSource(seed))

	data := make([]float64, n*p)
	for i := range data {
		data[i] = rng.NormFloat64()
	}
	a := mat.NewDense(n, p, data)

	wStar := mat.NewVecDense(p, nil)
	for j := 0; j < p; j++ {
		wStar.SetVec(j, rng.NormFloat64())
	}

	var clean mat.VecDense
	clean.MulVec(a, wStar)

	b := make([]float64, n)
	for i := range b {
		b[i] = clean.AtVec(i) + opts.Noise*rng.NormFloat64()
	}

	return a, b, nil
}
