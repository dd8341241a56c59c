// Package ridge: sentinel error set. All entry points return these
// sentinels and tests match them via errors.Is; kernels never panic on
// user-triggered conditions.
package ridge

import "errors"

var (
	// ErrNilMatrix indicates a nil design matrix was passed in.
	ErrNilMatrix = errors.New("ridge: design matrix is nil")

	// ErrEmptyData indicates the design matrix has zero rows or columns.
	ErrEmptyData = errors.New("ridge: design matrix is empty")

	// ErrDimensionMismatch indicates incompatible operand lengths,
	// e.g. len(b) ≠ rows(A) or len(x0) ≠ cols(A).
	ErrDimensionMismatch = errors.New("ridge: dimension mismatch")

	// ErrBadStep indicates a non-positive or non-finite step size.
	ErrBadStep = errors.New("ridge: step size must be positive and finite")

	// ErrBadLambda indicates a negative or non-finite regularization coefficient.
	ErrBadLambda = errors.New("ridge: lambda must be non-negative and finite")

	// ErrBadMaxIter indicates a negative iteration budget.
	ErrBadMaxIter = errors.New("ridge: max iterations must be ≥ 0")

	// ErrBadKernel indicates a Kernel value outside the declared constants.
	ErrBadKernel = errors.New("ridge: unknown kernel")
)
