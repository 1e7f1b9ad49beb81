// SPDX-License-Identifier: MIT
// Package: qstab/circuit
//
// fragments.go - named preparation fragments and the Build orchestrator.
//
// Design contract (strict):
//   - One orchestrator: Build(qubits, frags...). Creates the circuit and
//     applies fragments in order; the first error aborts with context.
//   - Fragments validate their parameters through the Circuit append
//     methods and return only sentinel errors (no panics).
//   - Determinism: same qubit count and fragment order ⇒ identical
//     primitive gate sequences.

package circuit

import "fmt"

// Fragment applies one named preparation to a circuit under
// construction. Fragments MUST validate through the Circuit append
// methods and MUST NOT touch a simulator directly.
type Fragment func(c *Circuit) error

// Build creates a circuit over the given qubit count and applies all
// fragments in order. The first fragment error is wrapped with
// "Build: " context and returned; no partial rollback is attempted.
func Build(qubits int, frags ...Fragment) (*Circuit, error) {
	c, err := New(qubits)
	if err != nil {
		return nil, fmt.Errorf("Build: %w", err)
	}
	for i, f := range frags {
		if err = f(c); err != nil {
			return nil, fmt.Errorf("Build: fragment %d: %w", i, err)
		}
	}
	return c, nil
}

// BitFlip prepares qubit q in |1⟩ from the all-zero state (a Pauli X).
func BitFlip(q int) Fragment {
	return func(c *Circuit) error { return c.X(q) }
}

// PlusState prepares qubit q in |+⟩ from the all-zero state (a Hadamard).
func PlusState(q int) Fragment {
	return func(c *Circuit) error { return c.H(q) }
}

// Bell entangles qubits a and b into (|00⟩+|11⟩)/√2 from the all-zero
// state: H on a, then CNOT a→b.
func Bell(a, b int) Fragment {
	return func(c *Circuit) error {
		if err := c.H(a); err != nil {
			return fmt.Errorf("Bell: %w", err)
		}
		if err := c.CNOT(a, b); err != nil {
			return fmt.Errorf("Bell: %w", err)
		}
		return nil
	}
}

// GHZ entangles the listed qubits into (|0…0⟩+|1…1⟩)/√2 from the
// all-zero state: H on the first, then a CNOT fan-out to each of the
// rest. At least two distinct qubits are required; a repeated qubit
// returns ErrSameQubit (a duplicate CNOT would silently undo the
// entanglement).
func GHZ(qubits ...int) Fragment {
	return func(c *Circuit) error {
		if len(qubits) < 2 {
			return fmt.Errorf("GHZ: need at least 2 qubits, got %d: %w", len(qubits), ErrTooFewQubits)
		}
		seen := make(map[int]struct{}, len(qubits))
		for _, q := range qubits {
			if _, dup := seen[q]; dup {
				return fmt.Errorf("GHZ: qubit %d repeated: %w", q, ErrSameQubit)
			}
			seen[q] = struct{}{}
		}
		if err := c.H(qubits[0]); err != nil {
			return fmt.Errorf("GHZ: %w", err)
		}
		for _, q := range qubits[1:] {
			if err := c.CNOT(qubits[0], q); err != nil {
				return fmt.Errorf("GHZ: %w", err)
			}
		}
		return nil
	}
}
