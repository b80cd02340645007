// Package rng centralizes deterministic random-stream derivation for the
// search core.
//
// Goals:
//   - Determinism: same master seed ⇒ identical trial streams across runs.
//   - No shared mutable RNG: each round/trial gets its own independent
//     *rand.Rand, derived by mixing the master seed with the caller's
//     coordinates (round, trial index) through a SplitMix64-style
//     avalanche finalizer. This replaces a single mutex-guarded shared
//     generator, so parallel trials never contend on a lock for
//     randomness.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe; never share one *rand.Rand
//     across goroutines. Derive returns an independent instance per call,
//     safe to hand to one goroutine each.
package rng
