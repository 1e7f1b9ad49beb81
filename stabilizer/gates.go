package stabilizer

import "fmt"

// ApplyGate conjugates every stabilizer and destabilizer row by the
// gate, in place. Conjugation is a group homomorphism on the generator
// set, so the same per-row rule applies identically and independently
// to all 2N rows, and every tableau invariant is preserved.
//
// ApplyGate is infallible on valid input and has no return value. An
// out-of-range qubit index — or a CNOT whose control equals its target
// — is a caller programming error and panics with an error wrapping
// ErrIndexOutOfRange rather than silently corrupting the tableau.
// Complexity: O(N).
func (s *Simulator) ApplyGate(g Gate) {
	switch g.kind {
	case gateH:
		s.mustQubit(g.a, "H")
		for i := 0; i < s.n; i++ {
			hadamardRow(&s.stabilizers[i], g.a)
			hadamardRow(&s.destabilizers[i], g.a)
		}
	case gateS:
		s.mustQubit(g.a, "S")
		for i := 0; i < s.n; i++ {
			phaseRow(&s.stabilizers[i], g.a)
			phaseRow(&s.destabilizers[i], g.a)
		}
	case gateCNOT:
		s.mustQubit(g.a, "CNOT")
		s.mustQubit(g.b, "CNOT")
		if g.a == g.b {
			panic(fmt.Errorf("stabilizer: CNOT(%d,%d): control equals target: %w", g.a, g.b, ErrIndexOutOfRange))
		}
		for i := 0; i < s.n; i++ {
			cnotRow(&s.stabilizers[i], g.a, g.b)
			cnotRow(&s.destabilizers[i], g.a, g.b)
		}
	}
}

// mustQubit panics when q lies outside 0..N-1.
func (s *Simulator) mustQubit(q int, gate string) {
	if q < 0 || q >= s.n {
		panic(fmt.Errorf("stabilizer: %s: qubit %d outside 0..%d: %w", gate, q, s.n-1, ErrIndexOutOfRange))
	}
}

// hadamardRow conjugates one generator row by H on qubit q.
//
// H exchanges the X and Z components at q. Only a Y factor picks up a
// sign: Y = iXZ is mapped to iZX = -Y, so the row's phase flips iff
// both components were set before the swap.
func hadamardRow(r *row, q int) {
	r.phaseNegated = r.phaseNegated != (r.x[q] && r.z[q])
	r.x[q], r.z[q] = r.z[q], r.x[q]
}

// phaseRow conjugates one generator row by S on qubit q.
//
// S walks the equatorial cycle X → Y → -X → -Y → X. A Y factor
// (both bits set, pre-update) flips the sign; then the Z bit absorbs
// the X bit to advance X→Y and Y→X.
func phaseRow(r *row, q int) {
	r.phaseNegated = r.phaseNegated != (r.x[q] && r.z[q])
	r.z[q] = r.z[q] != r.x[q]
}

// cnotRow conjugates one generator row by CNOT with the given control
// and target qubits.
//
// The bit action follows from the conjugation table
//
//	X⊗I → X⊗X    I⊗X → I⊗X
//	Z⊗I → Z⊗I    I⊗Z → Z⊗Z
//
// i.e. X propagates control→target and Z propagates target→control.
// Reading all four bits before writing avoids any ordering hazard
// (CNOT never writes x[control] or z[target]).
//
// The sign flips exactly when an X-on-control factor combines with a
// Z-on-target factor into an odd net Y-parity: (X⊗X)(Z⊗Z) = ±iY⊗±iY
// = -(Y⊗Y), except that an odd balance of pre-existing X/Y factors
// cancels the flip (e.g. Y⊗X → Y⊗I keeps its sign).
func cnotRow(r *row, control, target int) {
	xc, zc := r.x[control], r.z[control]
	xt, zt := r.x[target], r.z[target]
	r.x[target] = xt != xc
	r.z[control] = zc != zt
	r.phaseNegated = r.phaseNegated != (xc && zt && (zc == xt))
}
