package ridge

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// SGD runs stochastic gradient descent on the ridge objective, cycling
// deterministically through the observations of a (index t mod n — despite
// the "stochastic" label there is no random sampling).
//
// x0 is mutated in place once per iteration and also returned; pass a copy
// if the starting point must survive. The loop runs exactly opts.MaxIter
// iterations with no convergence check; MaxIter = 0 returns x0 untouched.
//
// All arithmetic is plain float64 with no overflow or NaN handling: a step
// size too large for the data simply diverges, as it would on paper.
//
// Complexity: O(MaxIter · p) time, O(p) scratch memory.
func SGD(x0 []float64, a *mat.Dense, b []float64, opts Options) ([]float64, error) {
	if a == nil {
		return nil, ErrNilMatrix
	}
	n, p := a.Dims()
	if n == 0 || p == 0 {
		return nil, ErrEmptyData
	}
	if len(b) != n || len(x0) != p {
		return nil, ErrDimensionMismatch
	}
	if opts.Step <= 0 || math.IsInf(opts.Step, 0) || math.IsNaN(opts.Step) {
		return nil, ErrBadStep
	}
	if opts.Lambda < 0 || math.IsInf(opts.Lambda, 0) || math.IsNaN(opts.Lambda) {
		return nil, ErrBadLambda
	}
	if opts.MaxIter < 0 {
		return nil, ErrBadMaxIter
	}

	var grad func(dst, x, row []float64, b, lambda float64)
	switch opts.Kernel {
	case Scalar:
		grad = gradScalar
	case Vectorized:
		grad = gradVectorized
	default:
		return nil, ErrBadKernel
	}

	g := make([]float64, p)
	for t := 0; t < opts.MaxIter; t++ {
		i := t % n
		grad(g, x0, a.RawRowView(i), b[i], opts.Lambda)

		if opts.Kernel == Vectorized {
			floats.AddScaled(x0, -opts.Step, g)
			continue
		}
		for j := range x0 {
			x0[j] -= opts.Step * g[j]
		}
	}

	return x0, nil
}
