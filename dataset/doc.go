// Package dataset generates seeded synthetic regression problems for the
// benchmark demos, so every timing run sees byte-identical inputs.
//
// Ridge builds an n×p design matrix with independent standard-normal
// entries, plants a fixed standard-normal coefficient vector w*, and emits
// targets b = A·w* + Noise·ε with ε standard normal. All draws come from a
// single golang.org/x/exp/rand stream, so one seed fully determines the
// problem.
//
// Determinism policy (same as elsewhere in this module): Seed == 0 selects
// a fixed default seed rather than a time-based source; same seed ⇒
// identical matrix and targets across platforms and runs.
//
// Errors:
//   - ErrBadShape — n < 1 or p < 1.
//   - ErrBadNoise — Noise < 0 or non-finite.
package dataset
