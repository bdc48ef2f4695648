package circuit_test

import (
	"encoding/json"
	"reflect"
	"testing"

	"qlab/internal/domain"
	"qlab/internal/quantum/circuit"
)

func TestBuild_RecordsGatesInOrder(t *testing.T) {
	c, err := circuit.New(2).H(0).RY(1, 0.5).CX(0, 1).Build()
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if c.Qubits != 2 {
		t.Fatalf("want 2 qubits, got %d", c.Qubits)
	}
	kinds := []domain.GateKind{domain.GateH, domain.GateRY, domain.GateCX}
	if len(c.Gates) != len(kinds) {
		t.Fatalf("want %d gates, got %d", len(kinds), len(c.Gates))
	}
	for i, k := range kinds {
		if c.Gates[i].Kind != k {
			t.Fatalf("gate %d: want %s, got %s", i, k, c.Gates[i].Kind)
		}
	}
}

func TestBuild_RejectsOutOfRangeTarget(t *testing.T) {
	if _, err := circuit.New(2).H(2).Build(); err == nil {
		t.Fatal("expected error for target outside register")
	}
	if _, err := circuit.New(2).CX(1, 1).Build(); err == nil {
		t.Fatal("expected error for control equal to target")
	}
}

func TestUniform_HadamardPerQubit(t *testing.T) {
	c, err := circuit.Uniform(4)
	if err != nil {
		t.Fatalf("uniform: %v", err)
	}
	if len(c.Gates) != 4 {
		t.Fatalf("want 4 gates, got %d", len(c.Gates))
	}
	for q, g := range c.Gates {
		if g.Kind != domain.GateH || g.Targets[0] != q {
			t.Fatalf("gate %d: want h on qubit %d, got %s on %v", q, q, g.Kind, g.Targets)
		}
	}
	if _, err := circuit.Uniform(0); err == nil {
		t.Fatal("expected error for zero-width register")
	}
}

func TestCircuit_JSONRoundTrip(t *testing.T) {
	c, err := circuit.New(3).H(0).RZ(1, 1.25).CZ(0, 2).Build()
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	raw, err := json.Marshal(c)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var got domain.Circuit
	if err := json.Unmarshal(raw, &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !reflect.DeepEqual(c, got) {
		t.Fatalf("round trip mismatch:\nsent %+v\ngot  %+v", c, got)
	}
}
