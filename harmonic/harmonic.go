package harmonic

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/floats"
)

// Limit is the value the harmonic-square series converges to: π²/6.
const Limit = math.Pi * math.Pi / 6

// ErrNonPositiveN indicates the requested term count is below one.
var ErrNonPositiveN = errors.New("harmonic: n must be ≥ 1")

// Sum returns Σ_{i=1..n} 1/i² using a direct scalar loop.
//
// Sum(1) is exactly 1.0; larger n approach Limit from below.
//
// Complexity: O(n) time, O(1) memory.
func Sum(n int) (float64, error) {
	if n < 1 {
		return 0, ErrNonPositiveN
	}

	var s float64
	for i := 1; i <= n; i++ {
		x := float64(i)
		s += 1 / (x * x)
	}

	return s, nil
}

// SumVectorized returns Σ_{i=1..n} 1/i² by materializing all n terms and
// reducing them with floats.Sum.
//
// The result may differ from Sum by floating-point reordering only.
//
// Complexity: O(n) time, O(n) memory.
func SumVectorized(n int) (float64, error) {
	if n < 1 {
		return 0, ErrNonPositiveN
	}

	terms := make([]float64, n)
	for i := range terms {
		x := float64(i + 1)
		terms[i] = 1 / (x * x)
	}

	return floats.Sum(terms), nil
}
