// Package stabilizer - RNG utilities for nondeterministic measurement.
//
// This file centralizes deterministic random generation for the simulator.
//
// Goals:
//   - Determinism: same seed ⇒ identical measurement outcomes across platforms.
//   - Encapsulation: a single RNG factory; no time-based sources hidden anywhere.
//   - Single consumer: only the nondeterministic-measurement coin flip draws
//     from the source.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe, and neither is Simulator.
//     Clone the whole simulator before diverging; deriveSeed gives each
//     clone an independent stream.
package stabilizer

import "math/rand"

// rngFromSeed returns a deterministic *rand.Rand for the given seed.
// The seed is used verbatim: Seeded() pins seed 0 as the reproducible
// default, so no zero-seed remapping is applied.
//
// Complexity: O(1).
func rngFromSeed(seed uint64) *rand.Rand {
	return rand.New(rand.NewSource(int64(seed)))
}

// deriveSeed mixes a parent seed and a stream identifier into a new
// 64-bit seed using a SplitMix64-style finalizer (Vigna 2014), so that
// clone streams are decorrelated from the parent and from each other.
//
// Complexity: O(1).
func deriveSeed(parent int64, stream uint64) int64 {
	x := uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31
	return int64(x)
}
