// SPDX-License-Identifier: MIT
// Package: qstab/circuit
//
// Package circuit composes Clifford gate sequences and replays them
// onto a stabilizer.Simulator.
//
// What:
//
//   - Circuit records an ordered gate list, validated against a fixed
//     qubit count at append time, so replay never fails mid-stream.
//   - Derived gates — X, Y, Z, S† — are expanded into the H/S/CNOT
//     primitives the simulator supports (global phases drop out of
//     conjugation, so the compositions are exact on the tableau).
//   - Fragment closures name reusable preparations (BitFlip, PlusState,
//     Bell, GHZ); Build assembles them in order.
//
// Why:
//
//   - Test fixtures and protocols are written in terms of Pauli gates
//     and named states, not raw H/S/CNOT spellings.
//   - Validating at construction keeps Apply total: a built circuit
//     can be replayed onto any simulator with at least as many qubits.
//
// Errors:
//
//   - ErrTooFewQubits: constructor or fragment given too few qubits.
//   - ErrSameQubit: a two-qubit gate with control == target.
//   - ErrNilSimulator: Apply called with a nil simulator.
//   - stabilizer.ErrIndexOutOfRange (wrapped): a gate index outside
//     the circuit's qubit range, or a simulator smaller than the
//     circuit.
//
// Scope: the Clifford group only — no T, no Toffoli, no rotations.
package circuit
