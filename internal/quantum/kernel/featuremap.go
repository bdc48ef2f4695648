package kernel

import (
	"fmt"
	"math"

	"qlab/internal/domain"
	"qlab/internal/quantum/circuit"
)

// FeatureMap encodes a sample into a circuit over a fixed register.
type FeatureMap interface {
	Qubits() int
	// Map returns the encoding circuit for x; len(x) must equal Qubits().
	Map(x []float64) (domain.Circuit, error)
}

// AngleMap is the simplest embedding: one qubit per feature, RY(x_k) on
// qubit k. Fidelities under it factor into per-feature cosines, which is
// already enough to separate radially structured data.
type AngleMap struct {
	qubits int
}

// NewAngleMap returns an angle embedding over the given number of features.
func NewAngleMap(features int) *AngleMap { return &AngleMap{qubits: features} }

func (m *AngleMap) Qubits() int { return m.qubits }

func (m *AngleMap) Map(x []float64) (domain.Circuit, error) {
	if len(x) != m.qubits {
		return domain.Circuit{}, fmt.Errorf("kernel: angle map wants %d features, got %d", m.qubits, len(x))
	}
	b := circuit.New(m.qubits)
	for q, v := range x {
		b.RY(q, v)
	}
	return b.Build()
}

// ZZMap is the second-order Pauli-Z feature map: per repetition, Hadamards
// on all qubits, RZ(2*x_k) rotations, then pairwise entangling blocks
// CX-RZ(2*(pi-x_i)*(pi-x_j))-CX. Repetitions deepen the encoding.
type ZZMap struct {
	qubits int
	reps   int
}

// NewZZMap returns a ZZ feature map with the given repetition count
// (values below 1 are treated as 1).
func NewZZMap(features, reps int) *ZZMap {
	if reps < 1 {
		reps = 1
	}
	return &ZZMap{qubits: features, reps: reps}
}

func (m *ZZMap) Qubits() int { return m.qubits }

func (m *ZZMap) Map(x []float64) (domain.Circuit, error) {
	if len(x) != m.qubits {
		return domain.Circuit{}, fmt.Errorf("kernel: zz map wants %d features, got %d", m.qubits, len(x))
	}
	b := circuit.New(m.qubits)
	for r := 0; r < m.reps; r++ {
		for q := 0; q < m.qubits; q++ {
			b.H(q)
			b.RZ(q, 2*x[q])
		}
		for i := 0; i < m.qubits; i++ {
			for j := i + 1; j < m.qubits; j++ {
				b.CX(i, j)
				b.RZ(j, 2*(math.Pi-x[i])*(math.Pi-x[j]))
				b.CX(i, j)
			}
		}
	}
	return b.Build()
}
