// Package builder generates triangles for tests, benchmarks and the
// `mintrianglepath generate` command.
//
// The package offers:
//
//   - Random:   values drawn uniformly from [lo, hi] with a seeded RNG.
//   - Constant: every cell holds the same value.
//   - Options:  WithSeed / WithRand select the random source.
//
// Guarantees:
//
//   - Deterministic: the same seed always yields the same triangle. When no
//     option is given a fixed default seed is used; nothing reads the clock.
//   - Fast-fail on invalid option parameters via panics in option
//     constructors (WithRand(nil)).
//   - Runtime parameter problems are returned as sentinel errors wrapped with
//     the constructor name ("Random: rows=0 < min=1: builder: invalid size").
//
// Complexity: O(n²) time and memory for an n-row triangle.
package builder
