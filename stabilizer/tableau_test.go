package stabilizer_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/qstab/stabilizer"
)

// TestNew_Errors verifies constructor parameter validation.
func TestNew_Errors(t *testing.T) {
	cases := []struct {
		name   string
		qubits int
	}{
		{"Zero", 0},
		{"Negative", -3},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := stabilizer.New(tc.qubits, 0); !errors.Is(err, stabilizer.ErrQubitCount) {
				t.Errorf("New(%d) error = %v; want ErrQubitCount", tc.qubits, err)
			}
		})
	}
}

// TestNew_AllZeroState checks the |00⟩ tableau: stabilizer i is +Z on
// qubit i, destabilizer i is +X on qubit i.
func TestNew_AllZeroState(t *testing.T) {
	sim, err := stabilizer.Seeded(2)
	if err != nil {
		t.Fatalf("Seeded error: %v", err)
	}
	wantStab := []string{"+ZI", "+IZ"}
	wantDestab := []string{"+XI", "+IX"}
	for i := 0; i < sim.Qubits(); i++ {
		got, err := sim.StabilizerString(i)
		if err != nil {
			t.Fatalf("StabilizerString(%d) error: %v", i, err)
		}
		if got != wantStab[i] {
			t.Errorf("stabilizer %d = %s; want %s", i, got, wantStab[i])
		}
		got, err = sim.DestabilizerString(i)
		if err != nil {
			t.Fatalf("DestabilizerString(%d) error: %v", i, err)
		}
		if got != wantDestab[i] {
			t.Errorf("destabilizer %d = %s; want %s", i, got, wantDestab[i])
		}
	}
}

// TestRowStrings_IndexErrors verifies row accessors reject bad indices.
func TestRowStrings_IndexErrors(t *testing.T) {
	sim, err := stabilizer.Seeded(2)
	if err != nil {
		t.Fatalf("Seeded error: %v", err)
	}
	for _, i := range []int{-1, 2, 99} {
		if _, err := sim.StabilizerString(i); !errors.Is(err, stabilizer.ErrIndexOutOfRange) {
			t.Errorf("StabilizerString(%d) error = %v; want ErrIndexOutOfRange", i, err)
		}
		if _, err := sim.DestabilizerString(i); !errors.Is(err, stabilizer.ErrIndexOutOfRange) {
			t.Errorf("DestabilizerString(%d) error = %v; want ErrIndexOutOfRange", i, err)
		}
	}
}

// TestClone_Isolation confirms a clone is a deep copy: collapsing the
// parent's entangled state must not leak into the clone's rows.
func TestClone_Isolation(t *testing.T) {
	parent, err := stabilizer.Seeded(2)
	if err != nil {
		t.Fatalf("Seeded error: %v", err)
	}
	parent.ApplyGate(stabilizer.H(0))
	parent.ApplyGate(stabilizer.CNOT(0, 1))

	clone := parent.Clone()
	if _, err = parent.Measure(0); err != nil {
		t.Fatalf("parent Measure error: %v", err)
	}

	got, err := clone.StabilizerString(0)
	if err != nil {
		t.Fatalf("clone StabilizerString error: %v", err)
	}
	if got != "+XX" {
		t.Errorf("clone stabilizer 0 after parent collapse = %s; want +XX", got)
	}
	if clone.Qubits() != 2 {
		t.Errorf("clone Qubits = %d; want 2", clone.Qubits())
	}
}

// TestGate_String covers the circuit-notation rendering.
func TestGate_String(t *testing.T) {
	cases := []struct {
		gate stabilizer.Gate
		want string
	}{
		{stabilizer.H(0), "H(0)"},
		{stabilizer.S(3), "S(3)"},
		{stabilizer.CNOT(0, 1), "CNOT(0,1)"},
	}
	for _, tc := range cases {
		if got := tc.gate.String(); got != tc.want {
			t.Errorf("String() = %s; want %s", got, tc.want)
		}
	}
}
