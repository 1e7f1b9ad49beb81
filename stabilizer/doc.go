// Package stabilizer simulates N-qubit stabilizer circuits with the
// tableau (CHP) algorithm of Aaronson & Gottesman.
//
// What:
//
//   - Simulator holds N stabilizer and N destabilizer generator rows,
//     each a Pauli string encoded as x/z bit vectors plus a sign bit.
//   - ApplyGate conjugates every row by a Clifford gate: H, S or CNOT.
//   - Measure performs a Z-basis measurement on one qubit, detecting
//     whether the outcome is forced by the stabilizer group or a
//     genuine coin flip, and collapses the tableau accordingly.
//
// Why:
//
//   - Amplitude-vector simulation needs 2^N complex numbers; the
//     tableau needs 2N·(2N+1) bits. Circuits made of H, S and CNOT
//     (state preparation, entanglement distribution, error-correction
//     encoding) simulate in polynomial time.
//
// Complexity:
//
//   - ApplyGate: O(N) time, O(1) extra memory.
//   - Measure:   O(N²) time (per-row rowsum loop), O(N) scratch memory.
//
// Sizing:
//
//   - Rows are heap-backed variable-length bit vectors; the qubit
//     count is fixed at construction but chosen at run time. The
//     alternative — compile-time array sizing — favors stack
//     allocation but pins N per build; run-time sizing was chosen so
//     one binary can serve any N.
//
// Determinism:
//
//   - Randomness is consumed at exactly one call site (the coin flip
//     of a nondeterministic measurement) from a source seeded at
//     construction. Same seed and same call sequence ⇒ identical
//     outcomes across runs.
//
// Errors:
//
//   - ErrQubitCount: constructor called with fewer than one qubit.
//   - ErrIndexOutOfRange: qubit index outside 0..N-1 (Measure returns
//     it; ApplyGate panics, see its doc).
//   - ErrInvariantViolation: a rowsum produced an imaginary overall
//     phase — the tableau's commutation invariants are broken and the
//     simulator must be considered corrupted.
package stabilizer
