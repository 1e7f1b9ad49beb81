package stabilizer

import "strings"

// row is one Pauli-string generator over N qubits: a sign bit plus
// per-qubit x/z component bits. The pair (x[q], z[q]) encodes the
// Pauli factor at qubit q:
//
//	(0,0)=I  (1,0)=X  (0,1)=Z  (1,1)=Y
//
// where Y carries an implicit -i·X·Z factor that the rowsum phase
// arithmetic accounts for. No imaginary coefficient ever persists at
// rest: phaseNegated distinguishes only +1 from -1.
type row struct {
	phaseNegated bool
	x            []bool
	z            []bool
}

// newRow returns the identity generator (+I⊗…⊗I) over n qubits.
// Rows are always built through this full default value; there is no
// partially-initialized row state.
func newRow(n int) row {
	return row{x: make([]bool, n), z: make([]bool, n)}
}

// clone returns an independent deep copy of r.
// Complexity: O(N) time and memory.
func (r *row) clone() row {
	c := newRow(len(r.x))
	c.phaseNegated = r.phaseNegated
	copy(c.x, r.x)
	copy(c.z, r.z)
	return c
}

// pauliString renders the row as a sign rune followed by one Pauli
// letter per qubit, e.g. "+ZI" or "-YX".
func (r *row) pauliString() string {
	var sb strings.Builder
	sb.Grow(len(r.x) + 1)
	if r.phaseNegated {
		sb.WriteByte('-')
	} else {
		sb.WriteByte('+')
	}
	for q := range r.x {
		switch {
		case r.x[q] && r.z[q]:
			sb.WriteByte('Y')
		case r.x[q]:
			sb.WriteByte('X')
		case r.z[q]:
			sb.WriteByte('Z')
		default:
			sb.WriteByte('I')
		}
	}
	return sb.String()
}

// pauliPhaseExp returns the exponent of i produced when the single-qubit
// Pauli factor encoded by (x1,z1) is multiplied onto the factor encoded
// by (x2,z2). E.g. X·X = I (0), X·Z = -iY (-1), Z·X = +iY (+1).
// The four-case table follows Aaronson & Gottesman.
func pauliPhaseExp(x1, z1, x2, z2 bool) int {
	switch {
	case !x1 && !z1: // I·P = P
		return 0
	case x1 && z1: // Y·P
		return b2i(z2) - b2i(x2)
	case x1: // X·P
		return b2i(z2) * (2*b2i(x2) - 1)
	default: // Z·P
		return (1 - 2*b2i(z2)) * b2i(x2)
	}
}

// rowsum multiplies the Pauli operator of src into dst in place
// (dst ← src·dst), recomputing dst's sign and XOR-combining the bit
// vectors. The summed i-exponents plus both sign bits (each ±1 sign
// contributing an exponent of 2) must reduce to 0 or 2 modulo 4; any
// odd residue means the product carries an imaginary coefficient,
// which cannot happen while the tableau invariants hold, and is
// reported as ErrInvariantViolation with dst left unchanged.
// Complexity: O(N).
func rowsum(dst, src *row) error {
	exp := 0
	for j := range dst.x {
		exp += pauliPhaseExp(src.x[j], src.z[j], dst.x[j], dst.z[j])
	}
	exp += 2*b2i(dst.phaseNegated) + 2*b2i(src.phaseNegated)
	// exp may be negative; reduce to the canonical residue 0..3.
	switch ((exp % 4) + 4) % 4 {
	case 0:
		dst.phaseNegated = false
	case 2:
		dst.phaseNegated = true
	default:
		return ErrInvariantViolation
	}
	for j := range dst.x {
		dst.x[j] = dst.x[j] != src.x[j]
		dst.z[j] = dst.z[j] != src.z[j]
	}
	return nil
}

// b2i maps a bool to 0/1 for the phase-exponent arithmetic.
func b2i(b bool) int {
	if b {
		return 1
	}
	return 0
}
