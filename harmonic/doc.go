// Package harmonic computes partial sums of the harmonic-square series
// Σ_{i=1..n} 1/i², the classic warm-up kernel for comparing execution
// strategies on a tight numerical loop.
//
// Two variants are provided:
//
//   - Sum           — direct scalar loop, one division and one addition per term.
//   - SumVectorized — materializes the term slice and reduces it with
//     gonum's floats.Sum, trading O(n) extra memory for a
//     vectorized reduction.
//
// Both variants are deterministic and agree to within ordinary
// floating-point reordering tolerance (≤ 1e-9 relative for any n ≥ 1).
// As n → ∞ the sum approaches Limit = π²/6 (the Basel constant), which is
// handy as a sanity bound in tests and demos.
//
// Complexity:
//
//	Time   = O(n) for both variants
//	Memory = O(1) for Sum, O(n) for SumVectorized
//
// Errors:
//   - ErrNonPositiveN — if n < 1.
package harmonic
