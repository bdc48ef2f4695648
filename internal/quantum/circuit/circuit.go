package circuit

import (
	"fmt"

	"qlab/internal/domain"
)

// Builder accumulates gates over a fixed register.
type Builder struct {
	qubits int
	gates  []domain.Gate
}

// New returns a builder for a register of the given width.
func New(qubits int) *Builder {
	return &Builder{qubits: qubits}
}

// Qubits returns the register width.
func (b *Builder) Qubits() int { return b.qubits }

func (b *Builder) add(kind domain.GateKind, theta float64, targets ...int) *Builder {
	b.gates = append(b.gates, domain.Gate{Kind: kind, Targets: targets, Theta: theta})
	return b
}

// H applies a Hadamard to qubit q.
func (b *Builder) H(q int) *Builder { return b.add(domain.GateH, 0, q) }

// X applies a Pauli-X to qubit q.
func (b *Builder) X(q int) *Builder { return b.add(domain.GateX, 0, q) }

// RY rotates qubit q about the Y axis by theta.
func (b *Builder) RY(q int, theta float64) *Builder { return b.add(domain.GateRY, theta, q) }

// RZ rotates qubit q about the Z axis by theta.
func (b *Builder) RZ(q int, theta float64) *Builder { return b.add(domain.GateRZ, theta, q) }

// CX applies a controlled-X with control c and target t.
func (b *Builder) CX(c, t int) *Builder { return b.add(domain.GateCX, 0, c, t) }

// CZ applies a controlled-Z with control c and target t.
func (b *Builder) CZ(c, t int) *Builder { return b.add(domain.GateCZ, 0, c, t) }

// Build validates and returns the circuit.
func (b *Builder) Build() (domain.Circuit, error) {
	c := domain.Circuit{Qubits: b.qubits, Gates: b.gates}
	if err := c.Validate(); err != nil {
		return domain.Circuit{}, err
	}
	return c, nil
}

// Uniform returns the superposition circuit used for random-number
// harvesting: a Hadamard on every qubit of an n-wide register, measured in
// the computational basis.
func Uniform(n int) (domain.Circuit, error) {
	if n < 1 {
		return domain.Circuit{}, fmt.Errorf("circuit: uniform register width %d < 1", n)
	}
	b := New(n)
	for q := 0; q < n; q++ {
		b.H(q)
	}
	return b.Build()
}
