package stabilizer

import (
	"fmt"
	"math/rand"
)

// Simulator is an N-qubit stabilizer tableau: N stabilizer generator
// rows and N destabilizer generator rows, plus the seeded random
// source consumed by nondeterministic measurement.
//
// The rows maintain three invariants that every operation preserves:
// stabilizers pairwise commute, destabilizers pairwise commute, and
// destabilizer i anticommutes with stabilizer i while commuting with
// every other stabilizer. They are never checked at run time; the
// measurement algorithm's correctness relies on them.
//
// A Simulator exclusively owns its rows and is not safe for concurrent
// use. For parallel what-if exploration, Clone the whole value first.
type Simulator struct {
	n             int
	stabilizers   []row
	destabilizers []row
	rng           *rand.Rand
	cloneStream   uint64
}

// New constructs a simulator for the given number of qubits in the
// all-zero computational basis state |0…0⟩: stabilizer i is +Z on
// qubit i, destabilizer i is +X on qubit i. The seed fixes the random
// stream used by nondeterministic measurements.
// Returns ErrQubitCount if qubits < 1.
// Complexity: O(N²) time and memory (2N rows of N bits each).
func New(qubits int, seed uint64) (*Simulator, error) {
	if qubits < 1 {
		return nil, fmt.Errorf("New(%d): %w", qubits, ErrQubitCount)
	}
	s := &Simulator{
		n:             qubits,
		stabilizers:   make([]row, qubits),
		destabilizers: make([]row, qubits),
		rng:           rngFromSeed(seed),
	}
	for i := 0; i < qubits; i++ {
		s.stabilizers[i] = newRow(qubits)
		s.stabilizers[i].z[i] = true
		s.destabilizers[i] = newRow(qubits)
		s.destabilizers[i].x[i] = true
	}
	return s, nil
}

// Seeded is the reproducible-default constructor: New with seed 0.
func Seeded(qubits int) (*Simulator, error) {
	return New(qubits, 0)
}

// Qubits returns the fixed qubit count N.
func (s *Simulator) Qubits() int { return s.n }

// Clone returns an independent deep copy of the simulator. The clone
// replays gate applications and deterministic measurements identically
// to the parent, but draws nondeterministic coin flips from its own
// derived stream so parent and clone can diverge safely. Deriving the
// stream consumes one value from the parent's source, so successive
// clones of the same parent are decorrelated from each other as well.
// Complexity: O(N²).
func (s *Simulator) Clone() *Simulator {
	c := &Simulator{
		n:             s.n,
		stabilizers:   make([]row, s.n),
		destabilizers: make([]row, s.n),
	}
	for i := 0; i < s.n; i++ {
		c.stabilizers[i] = s.stabilizers[i].clone()
		c.destabilizers[i] = s.destabilizers[i].clone()
	}
	s.cloneStream++
	c.rng = rand.New(rand.NewSource(deriveSeed(s.rng.Int63(), s.cloneStream)))
	return c
}

// StabilizerString renders stabilizer generator row i as a signed
// Pauli string, e.g. "+ZI" or "-YX". Intended for debugging and tests.
// Returns ErrIndexOutOfRange for i outside 0..N-1.
func (s *Simulator) StabilizerString(i int) (string, error) {
	if i < 0 || i >= s.n {
		return "", fmt.Errorf("StabilizerString(%d): row index outside 0..%d: %w", i, s.n-1, ErrIndexOutOfRange)
	}
	return s.stabilizers[i].pauliString(), nil
}

// DestabilizerString renders destabilizer generator row i as a signed
// Pauli string. Returns ErrIndexOutOfRange for i outside 0..N-1.
func (s *Simulator) DestabilizerString(i int) (string, error) {
	if i < 0 || i >= s.n {
		return "", fmt.Errorf("DestabilizerString(%d): row index outside 0..%d: %w", i, s.n-1, ErrIndexOutOfRange)
	}
	return s.destabilizers[i].pauliString(), nil
}
