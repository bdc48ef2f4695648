package domain

import "fmt"

// GateKind identifies a gate in the supported set.
type GateKind string

const (
	GateH  GateKind = "h"  // Hadamard
	GateX  GateKind = "x"  // Pauli-X
	GateRY GateKind = "ry" // rotation about Y by Theta
	GateRZ GateKind = "rz" // rotation about Z by Theta
	GateCX GateKind = "cx" // controlled-X, Targets[0] controls Targets[1]
	GateCZ GateKind = "cz" // controlled-Z, Targets[0] controls Targets[1]
)

// Gate is one operation on one or two qubits.
type Gate struct {
	Kind    GateKind `json:"kind"`
	Targets []int    `json:"targets"`
	Theta   float64  `json:"theta,omitempty"`
}

// Arity returns the number of qubits the gate kind acts on, or 0 for an
// unknown kind.
func (g Gate) Arity() int {
	switch g.Kind {
	case GateH, GateX, GateRY, GateRZ:
		return 1
	case GateCX, GateCZ:
		return 2
	}
	return 0
}

// Circuit is an ordered gate list over a fixed qubit register. All qubits are
// measured in the computational basis at the end; there are no mid-circuit
// measurements.
type Circuit struct {
	Qubits int    `json:"qubits"`
	Gates  []Gate `json:"gates"`
}

// Validate checks qubit count and per-gate arity and target ranges.
func (c Circuit) Validate() error {
	if c.Qubits < 1 {
		return fmt.Errorf("circuit: qubit count %d < 1", c.Qubits)
	}
	for i, g := range c.Gates {
		ar := g.Arity()
		if ar == 0 {
			return fmt.Errorf("circuit: gate %d: unknown kind %q", i, g.Kind)
		}
		if len(g.Targets) != ar {
			return fmt.Errorf("circuit: gate %d (%s): want %d targets, got %d", i, g.Kind, ar, len(g.Targets))
		}
		for _, t := range g.Targets {
			if t < 0 || t >= c.Qubits {
				return fmt.Errorf("circuit: gate %d (%s): target %d out of range [0,%d)", i, g.Kind, t, c.Qubits)
			}
		}
		if ar == 2 && g.Targets[0] == g.Targets[1] {
			return fmt.Errorf("circuit: gate %d (%s): control equals target (%d)", i, g.Kind, g.Targets[0])
		}
	}
	return nil
}

// Counts maps measurement bitstrings to how often they occurred.
// Bitstrings are written qubit 0 first (leftmost).
type Counts map[string]int

// Shots returns the total number of recorded outcomes.
func (c Counts) Shots() int {
	n := 0
	for _, v := range c {
		n += v
	}
	return n
}
