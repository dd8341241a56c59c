package harmonic_test

import (
	"fmt"

	"github.com/pierreablin/gradbench/harmonic"
)

// ExampleSum demonstrates the first few partial sums of Σ 1/i².
func ExampleSum() {
	for _, n := range []int{1, 2, 4} {
		s, err := harmonic.Sum(n)
		if err != nil {
			fmt.Println("error:", err)

			return
		}
		fmt.Printf("n=%d sum=%.6f\n", n, s)
	}
	// Output:
	// n=1 sum=1.000000
	// n=2 sum=1.250000
	// n=4 sum=1.423611
}

// ExampleSumVectorized shows the vectorized variant approaching π²/6.
func ExampleSumVectorized() {
	s, err := harmonic.SumVectorized(100000)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("gap to π²/6 = %.1e\n", harmonic.Limit-s)
	// Output:
	// gap to π²/6 = 1.0e-05
}
