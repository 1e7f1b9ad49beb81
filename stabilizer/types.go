// Package stabilizer defines core types and sentinel errors for the
// tableau simulator of github.com/katalvlaran/qstab.
package stabilizer

import (
	"errors"
	"fmt"
)

// Sentinel errors for stabilizer operations.
var (
	// ErrQubitCount indicates a constructor was asked for fewer than one qubit.
	ErrQubitCount = errors.New("stabilizer: qubit count must be at least one")
	// ErrIndexOutOfRange indicates a qubit or row index outside 0..N-1.
	ErrIndexOutOfRange = errors.New("stabilizer: index out of range")
	// ErrInvariantViolation indicates a rowsum resolved to an imaginary
	// overall phase, which is impossible while the tableau's commutation
	// invariants hold. It signals a defect in the engine, not caller
	// misuse; the simulator must be treated as unusable afterwards.
	ErrInvariantViolation = errors.New("stabilizer: tableau invariant violation")
)

// gateKind discriminates the closed set of supported Clifford gates.
type gateKind uint8

const (
	gateH gateKind = iota
	gateS
	gateCNOT
)

// Gate is an immutable description of one Clifford operation and its
// target qubit(s). Construct values with H, S or CNOT; the zero Gate
// is H on qubit 0. The set is closed: H and S generate the single-qubit
// Clifford group, CNOT extends it to the full Clifford group, and the
// engine dispatches on the kind exhaustively.
type Gate struct {
	kind gateKind
	// a is the target qubit for H and S, the control qubit for CNOT.
	a int
	// b is the target qubit for CNOT; unused otherwise.
	b int
}

// H returns a Hadamard gate on the given qubit.
func H(qubit int) Gate { return Gate{kind: gateH, a: qubit} }

// S returns a phase gate (√Z) on the given qubit.
func S(qubit int) Gate { return Gate{kind: gateS, a: qubit} }

// CNOT returns a controlled-NOT gate with the given control and target.
func CNOT(control, target int) Gate {
	return Gate{kind: gateCNOT, a: control, b: target}
}

// String renders the gate in circuit notation, e.g. "H(0)" or "CNOT(0,1)".
func (g Gate) String() string {
	switch g.kind {
	case gateH:
		return fmt.Sprintf("H(%d)", g.a)
	case gateS:
		return fmt.Sprintf("S(%d)", g.a)
	case gateCNOT:
		return fmt.Sprintf("CNOT(%d,%d)", g.a, g.b)
	default:
		return fmt.Sprintf("unknown(%d)", g.kind)
	}
}
