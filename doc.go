// Package qstab is an efficient classical simulator for stabilizer
// quantum circuits — Clifford gates (H, S, CNOT) and Z-basis
// measurement over N qubits in polynomial space.
//
// 🚀 What is qstab?
//
//	A pure-Go implementation of the Gottesman–Knill / CHP tableau
//	algorithm, organized as two small packages:
//		• stabilizer — the core: generator-row tableau, per-gate
//		  conjugation rules, the rowsum phase primitive, and
//		  deterministic/nondeterministic measurement
//		• circuit    — composable gate sequences: derived Pauli gates
//		  (X, Y, Z, S†) and named fragments (Bell, GHZ, …) replayed
//		  onto a simulator
//
// ✨ Why choose qstab?
//
//   - Polynomial, not exponential – 2N generator rows instead of 2^N
//     amplitudes; O(N) per gate, O(N²) per measurement
//   - Deterministic by seed – the single coin flip in nondeterministic
//     measurement draws from an explicitly seeded source, so every run
//     is reproducible
//   - Rock-solid guarantees – sentinel errors, no hidden state, full
//     in-code docs
//   - Pure Go – no cgo, no hidden deps
//
// Quick ASCII example (a Bell pair):
//
//	q0: ──H──●──
//	         │
//	q1: ─────X──
//
//	measuring q0 collapses q1 to the same outcome.
//
// Scope: the Clifford group only. Non-Clifford gates (T, Toffoli,
// arbitrary rotations) are outside the stabilizer formalism and out of
// scope by design.
//
//	go get github.com/katalvlaran/qstab
package qstab
