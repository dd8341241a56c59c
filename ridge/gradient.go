package ridge

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Gradient computes the per-sample stochastic gradient of the ridge
// objective at observation i:
//
//	g = (aᵢ·x − bᵢ)·aᵢ + λ·x
//
// The result is written into dst and returned; when dst is nil a fresh
// slice of len(x) is allocated. Gradient is pure apart from dst and uses
// the Scalar evaluation order.
//
// By contract this is an unchecked numerical kernel: i must be in [0, n),
// len(x) must equal cols(A) and len(b) must equal rows(A). Violations
// surface as ordinary index panics, not sentinel errors.
//
// Complexity: O(p) time, O(1) extra memory.
func Gradient(dst, x []float64, i int, a *mat.Dense, b []float64, lambda float64) []float64 {
	if dst == nil {
		dst = make([]float64, len(x))
	}
	gradScalar(dst, x, a.RawRowView(i), b[i], lambda)

	return dst
}

// gradScalar evaluates (row·x − b)·row + λ·x element by element.
func gradScalar(dst, x, row []float64, b, lambda float64) {
	r := -b
	for j := range row {
		r += row[j] * x[j]
	}
	for j := range row {
		dst[j] = r*row[j] + lambda*x[j]
	}
}

// gradVectorized evaluates the same expression through gonum floats:
// dst = λ·x, then dst += (row·x − b)·row.
func gradVectorized(dst, x, row []float64, b, lambda float64) {
	r := floats.Dot(row, x) - b
	floats.ScaleTo(dst, lambda, x)
	floats.AddScaled(dst, r, row)
}

// Objective returns the full ridge loss ½‖Ax−b‖² + ½λ‖x‖². The per-sample
// gradient above is the derivative of the i-th summand of this function.
//
// Complexity: O(n·p) time.
func Objective(x []float64, a *mat.Dense, b []float64, lambda float64) float64 {
	n, _ := a.Dims()

	var loss float64
	for i := 0; i < n; i++ {
		r := floats.Dot(a.RawRowView(i), x) - b[i]
		loss += r * r
	}

	return 0.5*loss + 0.5*lambda*floats.Dot(x, x)
}
