// SPDX-License-Identifier: MIT
// Package: qstab/circuit
//
// errors.go — sentinel errors for the circuit package.
//
// Error policy (explicit and strict):
//   • Only sentinel variables (package-level) are exposed.
//   • Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   • Sentinels are NEVER wrapped with formatted strings at definition site.
//   • Implementations attach context using `%w`.
//   • Index violations reuse stabilizer.ErrIndexOutOfRange so one
//     sentinel covers the whole module.

package circuit

import "errors"

// ErrTooFewQubits indicates a qubit-count parameter below the minimum
// for the requested constructor or fragment (e.g. New with n < 1, GHZ
// with fewer than two qubits).
// Usage: if errors.Is(err, ErrTooFewQubits) { /* report invalid size */ }.
var ErrTooFewQubits = errors.New("circuit: too few qubits")

// ErrSameQubit indicates a two-qubit gate whose control and target
// coincide, which is degenerate for CNOT and always a caller mistake.
// Usage: if errors.Is(err, ErrSameQubit) { /* fix the wiring */ }.
var ErrSameQubit = errors.New("circuit: control and target must differ")

// ErrNilSimulator indicates Apply was called with a nil simulator.
var ErrNilSimulator = errors.New("circuit: nil simulator")
