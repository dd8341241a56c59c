// Package ridge implements per-sample gradients for the ridge-regression
// objective and a deterministic stochastic gradient descent loop over them.
//
// Objective:
//
//	f(x) = ½·Σ_i (aᵢ·x − bᵢ)² + ½·λ·‖x‖²
//
// where A is the n×p design matrix (rows aᵢ), b the length-n target vector,
// x the length-p parameter vector and λ ≥ 0 the regularization coefficient.
//
// Algorithm Outline (SGD):
//  1. Validate shapes and options once at the entry point.
//  2. For t = 0 .. MaxIter-1:
//     i    = t mod n               (deterministic round-robin, not sampling)
//     g    = (aᵢ·x − bᵢ)·aᵢ + λ·x  (per-sample gradient, see Gradient)
//     x    = x − Step·g            (in-place update)
//  3. Return x (the same slice that was passed in).
//
// There is no convergence check and no early stopping: the loop always runs
// exactly MaxIter iterations, and MaxIter = 0 returns x unchanged. Identical
// inputs produce bit-identical outputs for a fixed Kernel.
//
// Kernels:
//   - Scalar     — plain range loops over the row; the baseline strategy.
//   - Vectorized — gonum floats.Dot / floats.AddScaled over the raw row view.
//     Same arithmetic, BLAS-style evaluation order; results may
//     differ from Scalar by floating-point reordering only.
//
// Complexity:
//
//	Time   = O(MaxIter · p)
//	Memory = O(p) for one gradient scratch buffer
//
// Errors:
//   - ErrNilMatrix         — nil design matrix.
//   - ErrEmptyData         — zero rows or zero columns.
//   - ErrDimensionMismatch — len(b) ≠ n or len(x0) ≠ p.
//   - ErrBadStep           — Step ≤ 0 or non-finite.
//   - ErrBadLambda         — Lambda < 0 or non-finite.
//   - ErrBadMaxIter        — MaxIter < 0.
//   - ErrBadKernel         — Kernel outside the declared enum.
//
// Gradient itself is a pure numerical kernel and, by contract, does not
// validate shapes; keeping inputs consistent is the caller's responsibility.
package ridge
