package stabilizer_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/qstab/stabilizer"
)

// MeasureSuite exercises both measurement branches and the collapse
// bookkeeping that links them.
type MeasureSuite struct {
	suite.Suite
}

func (s *MeasureSuite) newSim(qubits int) *stabilizer.Simulator {
	sim, err := stabilizer.Seeded(qubits)
	require.NoError(s.T(), err)
	return sim
}

// TestForcedOutcomeIgnoresSeed: measuring |0⟩ is deterministic for any
// seed, because the deterministic branch never touches the RNG.
func (s *MeasureSuite) TestForcedOutcomeIgnoresSeed() {
	for _, seed := range []uint64{0, 1, 42, 1 << 63} {
		sim, err := stabilizer.New(1, seed)
		require.NoError(s.T(), err)
		outcome, err := sim.Measure(0)
		require.NoError(s.T(), err)
		require.False(s.T(), outcome, "seed %d", seed)
	}
}

// TestCNOTControlZero: |00⟩ → CNOT → both qubits measure 0.
func (s *MeasureSuite) TestCNOTControlZero() {
	sim := s.newSim(2)
	sim.ApplyGate(stabilizer.CNOT(0, 1))
	for q := 0; q < 2; q++ {
		outcome, err := sim.Measure(q)
		require.NoError(s.T(), err)
		require.False(s.T(), outcome, "qubit %d", q)
	}
}

// TestCNOTControlOne: flipping the control first propagates to the
// target, so both qubits measure 1.
func (s *MeasureSuite) TestCNOTControlOne() {
	sim := s.newSim(2)
	applyX(sim, 0)
	sim.ApplyGate(stabilizer.CNOT(0, 1))
	for q := 0; q < 2; q++ {
		outcome, err := sim.Measure(q)
		require.NoError(s.T(), err)
		require.True(s.T(), outcome, "qubit %d", q)
	}
}

// TestNondeterminismCoverage prepares each of the four equatorial
// eigenstates (0..3 phase gates after a Hadamard) and measures
// repeatedly under a fixed seed: both outcomes must occur — the coin
// must not be systematically biased by the state's X/Y form. The suite
// is seeded, so once green this test is green forever.
func (s *MeasureSuite) TestNondeterminismCoverage() {
	sim := s.newSim(2)
	const trials = 16
	for sReps := 0; sReps < 4; sReps++ {
		seen := map[bool]int{}
		for trial := 0; trial < trials; trial++ {
			sim.ApplyGate(stabilizer.H(0))
			for k := 0; k < sReps; k++ {
				sim.ApplyGate(stabilizer.S(0))
			}
			outcome, err := sim.Measure(0)
			require.NoError(s.T(), err)
			seen[outcome]++
		}
		require.Len(s.T(), seen, 2, "S^%d eigenstate produced only one outcome in %d trials", sReps, trials)
	}
}

// TestCollapseIsStable: once a random measurement has picked an
// eigenstate, re-measuring without intervening gates repeats it.
func (s *MeasureSuite) TestCollapseIsStable() {
	sim := s.newSim(2)
	sim.ApplyGate(stabilizer.H(0))
	first, err := sim.Measure(0)
	require.NoError(s.T(), err)
	for i := 0; i < 3; i++ {
		again, err := sim.Measure(0)
		require.NoError(s.T(), err)
		require.Equal(s.T(), first, again, "re-measurement %d drifted", i)
	}
}

// TestEntangledOutcomesCorrelate: measuring one half of a Bell pair
// pins the other half to the same outcome.
func (s *MeasureSuite) TestEntangledOutcomesCorrelate() {
	sim := s.newSim(2)
	sim.ApplyGate(stabilizer.H(0))
	sim.ApplyGate(stabilizer.CNOT(0, 1))
	first, err := sim.Measure(0)
	require.NoError(s.T(), err)
	second, err := sim.Measure(1)
	require.NoError(s.T(), err)
	require.Equal(s.T(), first, second)
}

// TestMeasureIndexErrors: out-of-range qubits return the sentinel.
func (s *MeasureSuite) TestMeasureIndexErrors() {
	sim := s.newSim(2)
	for _, q := range []int{-1, 2, 100} {
		_, err := sim.Measure(q)
		require.True(s.T(), errors.Is(err, stabilizer.ErrIndexOutOfRange), "Measure(%d) error = %v", q, err)
	}
}

func TestMeasureSuite(t *testing.T) {
	suite.Run(t, new(MeasureSuite))
}

// TestMeasure_SameSeedTraceDeterminism runs an identical gate/measure
// script on two simulators with the same seed and requires the full
// outcome traces to match bit for bit.
func TestMeasure_SameSeedTraceDeterminism(t *testing.T) {
	script := func(t *testing.T) []bool {
		t.Helper()
		sim, err := stabilizer.New(3, 42)
		if err != nil {
			t.Fatalf("New error: %v", err)
		}
		var trace []bool
		for round := 0; round < 8; round++ {
			sim.ApplyGate(stabilizer.H(0))
			sim.ApplyGate(stabilizer.S(0))
			sim.ApplyGate(stabilizer.CNOT(0, 1))
			sim.ApplyGate(stabilizer.H(2))
			for q := 0; q < 3; q++ {
				outcome, err := sim.Measure(q)
				if err != nil {
					t.Fatalf("Measure(%d) round %d error: %v", q, round, err)
				}
				trace = append(trace, outcome)
			}
		}
		return trace
	}

	first := script(t)
	for run := 0; run < 2; run++ {
		again := script(t)
		if len(again) != len(first) {
			t.Fatalf("trace length %d; want %d", len(again), len(first))
		}
		for i := range first {
			if first[i] != again[i] {
				t.Fatalf("run %d diverged at step %d: %v vs %v", run, i, again[i], first[i])
			}
		}
	}
}
