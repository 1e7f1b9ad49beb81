package stabilizer

import "fmt"

// Measure performs a Z-basis measurement of one qubit. The returned
// bool is the outcome: false for |0⟩, true for |1⟩.
//
// The outcome is deterministic iff no stabilizer row carries an X
// component at the qubit; the tableau is then read without mutation.
// Otherwise the outcome is a genuine coin flip and the tableau is
// collapsed onto the corresponding Z eigenstate, so an immediate
// re-measurement of the same qubit returns the same outcome.
//
// Returns ErrIndexOutOfRange for a qubit outside 0..N-1, and
// ErrInvariantViolation if a rowsum exposes a corrupted tableau (an
// engine defect; the simulator is unusable afterwards).
// Complexity: O(N²).
func (s *Simulator) Measure(qubit int) (bool, error) {
	if qubit < 0 || qubit >= s.n {
		return false, fmt.Errorf("Measure(%d): qubit outside 0..%d: %w", qubit, s.n-1, ErrIndexOutOfRange)
	}
	p, found := s.findXStabilizer(qubit)
	if !found {
		return s.measureDeterministic(qubit)
	}
	return s.measureRandom(qubit, p)
}

// findXStabilizer returns the index of the first stabilizer row with
// an X component at the qubit, if any. Complexity: O(N).
func (s *Simulator) findXStabilizer(qubit int) (int, bool) {
	for i := 0; i < s.n; i++ {
		if s.stabilizers[i].x[qubit] {
			return i, true
		}
	}
	return 0, false
}

// measureDeterministic resolves a forced outcome without mutating the
// tableau. It accumulates, into an identity scratch row, the product
// of every stabilizer whose destabilizer has an X component at the
// qubit. Destabilizer i anticommutes with stabilizer i alone, so
// exactly the stabilizers participating in the group product that
// forms ±Z-at-qubit are selected; the accumulated sign is the answer.
func (s *Simulator) measureDeterministic(qubit int) (bool, error) {
	scratch := newRow(s.n)
	for i := 0; i < s.n; i++ {
		if !s.destabilizers[i].x[qubit] {
			continue
		}
		if err := rowsum(&scratch, &s.stabilizers[i]); err != nil {
			return false, fmt.Errorf("Measure(%d): deterministic accumulation at row %d: %w", qubit, i, err)
		}
	}
	return scratch.phaseNegated, nil
}

// measureRandom collapses the state at the qubit, with stabilizer row
// p the pivot carrying an X component there:
//
//  1. multiply row p into every other stabilizer with an X component
//     at the qubit, cancelling that component while keeping the
//     stabilizers commuting; when destabilizer i≠p carries the X
//     component, the product is folded into destabilizer p, which is
//     being re-derived as the new anticommuting partner;
//  2. move the old row p into destabilizer p;
//  3. replace row p by ±Z-at-qubit with a coin-flip sign — the only
//     point in the engine where randomness is consumed;
//  4. the new sign is the outcome.
func (s *Simulator) measureRandom(qubit, p int) (bool, error) {
	pivot := s.stabilizers[p].clone()
	for i := 0; i < s.n; i++ {
		if i == p {
			continue
		}
		if s.stabilizers[i].x[qubit] {
			if err := rowsum(&s.stabilizers[i], &pivot); err != nil {
				return false, fmt.Errorf("Measure(%d): clearing stabilizer %d: %w", qubit, i, err)
			}
		}
		if s.destabilizers[i].x[qubit] {
			if err := rowsum(&s.destabilizers[p], &pivot); err != nil {
				return false, fmt.Errorf("Measure(%d): re-anchoring destabilizer %d: %w", qubit, p, err)
			}
		}
	}
	s.destabilizers[p] = s.stabilizers[p]
	collapsed := newRow(s.n)
	collapsed.z[qubit] = true
	collapsed.phaseNegated = s.rng.Intn(2) == 1
	s.stabilizers[p] = collapsed
	return collapsed.phaseNegated, nil
}
