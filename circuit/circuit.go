// SPDX-License-Identifier: MIT
// Package: qstab/circuit
//
// circuit.go - the Circuit recorder and its gate-append operations.
//
// Contract:
//   - Every append validates indices against the circuit's fixed qubit
//     count and returns sentinel errors; nothing is recorded on failure.
//   - Derived gates expand to primitive H/S/CNOT sequences atomically:
//     either the whole expansion is appended or none of it.
//   - Apply never panics: a built circuit is replayable onto any
//     simulator with at least Qubits() qubits.
//
// Determinism:
//   - Gates replay in append order; given the same simulator seed the
//     full run is reproducible.

package circuit

import (
	"fmt"

	"github.com/katalvlaran/qstab/stabilizer"
)

// Circuit is an ordered, validated Clifford gate sequence over a fixed
// number of qubits. The zero value is not usable; construct with New
// or Build.
type Circuit struct {
	qubits int
	gates  []stabilizer.Gate
}

// New returns an empty circuit over the given qubit count.
// Returns ErrTooFewQubits for qubits < 1.
func New(qubits int) (*Circuit, error) {
	if qubits < 1 {
		return nil, fmt.Errorf("New(%d): %w", qubits, ErrTooFewQubits)
	}
	return &Circuit{qubits: qubits}, nil
}

// Qubits returns the qubit count the circuit was built for.
func (c *Circuit) Qubits() int { return c.qubits }

// Len returns the number of primitive gates recorded so far.
func (c *Circuit) Len() int { return len(c.gates) }

// Gates returns a copy of the recorded primitive gate sequence.
func (c *Circuit) Gates() []stabilizer.Gate {
	out := make([]stabilizer.Gate, len(c.gates))
	copy(out, c.gates)
	return out
}

// checkQubit validates one index against the circuit's range.
func (c *Circuit) checkQubit(op string, q int) error {
	if q < 0 || q >= c.qubits {
		return fmt.Errorf("%s(%d): qubit outside 0..%d: %w", op, q, c.qubits-1, stabilizer.ErrIndexOutOfRange)
	}
	return nil
}

// H appends a Hadamard gate on q.
func (c *Circuit) H(q int) error {
	if err := c.checkQubit("H", q); err != nil {
		return err
	}
	c.gates = append(c.gates, stabilizer.H(q))
	return nil
}

// S appends a phase gate on q.
func (c *Circuit) S(q int) error {
	if err := c.checkQubit("S", q); err != nil {
		return err
	}
	c.gates = append(c.gates, stabilizer.S(q))
	return nil
}

// CNOT appends a controlled-NOT gate.
// Returns ErrSameQubit when control == target.
func (c *Circuit) CNOT(control, target int) error {
	if err := c.checkQubit("CNOT", control); err != nil {
		return err
	}
	if err := c.checkQubit("CNOT", target); err != nil {
		return err
	}
	if control == target {
		return fmt.Errorf("CNOT(%d,%d): %w", control, target, ErrSameQubit)
	}
	c.gates = append(c.gates, stabilizer.CNOT(control, target))
	return nil
}

// X appends a Pauli X on q as the composition H·S·S·H.
func (c *Circuit) X(q int) error {
	if err := c.checkQubit("X", q); err != nil {
		return err
	}
	c.gates = append(c.gates,
		stabilizer.H(q), stabilizer.S(q), stabilizer.S(q), stabilizer.H(q))
	return nil
}

// Z appends a Pauli Z on q as S·S.
func (c *Circuit) Z(q int) error {
	if err := c.checkQubit("Z", q); err != nil {
		return err
	}
	c.gates = append(c.gates, stabilizer.S(q), stabilizer.S(q))
	return nil
}

// Y appends a Pauli Y on q as Z followed by X. Y = iXZ, and the
// global i cancels under conjugation, so the tableau action is exact.
func (c *Circuit) Y(q int) error {
	if err := c.checkQubit("Y", q); err != nil {
		return err
	}
	c.gates = append(c.gates,
		stabilizer.S(q), stabilizer.S(q),
		stabilizer.H(q), stabilizer.S(q), stabilizer.S(q), stabilizer.H(q))
	return nil
}

// Sdg appends the inverse phase gate (S†) on q as S·S·S.
func (c *Circuit) Sdg(q int) error {
	if err := c.checkQubit("Sdg", q); err != nil {
		return err
	}
	c.gates = append(c.gates,
		stabilizer.S(q), stabilizer.S(q), stabilizer.S(q))
	return nil
}

// Apply replays the recorded gates onto sim in order. The simulator
// must cover at least Qubits() qubits; indices were validated at
// append time, so replay cannot panic.
// Returns ErrNilSimulator or a wrapped stabilizer.ErrIndexOutOfRange.
// Complexity: O(Len()·N).
func (c *Circuit) Apply(sim *stabilizer.Simulator) error {
	if sim == nil {
		return fmt.Errorf("Apply: %w", ErrNilSimulator)
	}
	if sim.Qubits() < c.qubits {
		return fmt.Errorf("Apply: simulator has %d qubits, circuit needs %d: %w",
			sim.Qubits(), c.qubits, stabilizer.ErrIndexOutOfRange)
	}
	for _, g := range c.gates {
		sim.ApplyGate(g)
	}
	return nil
}
