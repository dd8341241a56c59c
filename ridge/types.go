// Package ridge defines options for the stochastic gradient descent loop.
package ridge

// Kernel selects the execution strategy for the inner per-sample arithmetic.
//
//   - Scalar     — plain range loops; one multiply-add per element.
//   - Vectorized — gonum floats routines over the raw row view; identical
//     arithmetic evaluated in BLAS order.
type Kernel int

const (
	// Scalar kernel: direct element loops, the baseline strategy.
	Scalar Kernel = iota

	// Vectorized kernel: floats.Dot / floats.AddScaled / floats.ScaleTo.
	Vectorized
)

// Default option values, the single source of truth for DefaultOptions.
const (
	// DefaultStep is a conservative step size that keeps the demo scenarios
	// (n, p ≈ 100, standard-normal rows) well inside the stable region.
	DefaultStep = 1e-4

	// DefaultLambda is a mild regularization strength.
	DefaultLambda = 0.1

	// DefaultMaxIter bounds the demo loop length.
	DefaultMaxIter = 1000
)

// Options configures SGD.
//
// Fields:
//   - Step    — update magnitude per iteration; must be > 0 and finite.
//   - Lambda  — ridge regularization coefficient λ; must be ≥ 0 and finite.
//   - MaxIter — exact number of iterations to run; 0 means "touch nothing".
//   - Kernel  — Scalar or Vectorized inner arithmetic.
//
// Example:
//
//	opts := ridge.DefaultOptions()
//	opts.MaxIter = 5000
//	x, err := ridge.SGD(make([]float64, p), a, b, opts)
type Options struct {
	Step    float64
	Lambda  float64
	MaxIter int
	Kernel  Kernel
}

// DefaultOptions returns the documented defaults: Step=1e-4, Lambda=0.1,
// MaxIter=1000, Kernel=Scalar.
func DefaultOptions() Options {
	return Options{
		Step:    DefaultStep,
		Lambda:  DefaultLambda,
		MaxIter: DefaultMaxIter,
		Kernel:  Scalar,
	}
}
