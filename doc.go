// Package gradbench is a small numeric playground for timing the same
// computation under different execution strategies — plain scalar loops
// versus vectorized (BLAS-style) array operations — with Go's native
// compilation standing in for the "compiled" variant.
//
// 🚀 What is gradbench?
//
//	A compact, deterministic benchmark suite that brings together:
//		• harmonic/ — the harmonic-square sum Σ 1/i² as a loop and as a reduction
//		• ridge/    — per-sample ridge-regression gradients and a round-robin SGD loop
//		• timeit/   — a %timeit-style harness reporting mean ± std. dev. per loop
//		• dataset/  — seeded synthetic regression data for reproducible demos
//
// ✨ Why gradbench?
//
//   - Deterministic – fixed seeds and round-robin sampling; same inputs, same outputs
//   - Minimal API – Options structs with documented defaults, sentinel errors
//   - Honest timing – warm-up, auto-calibrated loop counts, gonum statistics
//
// The cmd/gradbench binary runs the whole demonstration and prints the
// timing lines; pass --plot to render the comparison as a bar chart.
//
//	go get github.com/pierreablin/gradbench
package gradbench
