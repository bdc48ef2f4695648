package statevec_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"qlab/internal/quantum/circuit"
	"qlab/internal/quantum/statevec"
	"qlab/internal/rand/lcg"
)

func run(t *testing.T, b *circuit.Builder) *statevec.State {
	t.Helper()
	c, err := b.Build()
	require.NoError(t, err)
	s, err := statevec.Run(c)
	require.NoError(t, err)
	return s
}

func TestHadamard_EqualSuperposition(t *testing.T) {
	s := run(t, circuit.New(1).H(0))
	probs := s.Probabilities()
	assert.InDelta(t, 0.5, probs[0], 1e-12)
	assert.InDelta(t, 0.5, probs[1], 1e-12)
}

func TestHadamard_SelfInverse(t *testing.T) {
	s := run(t, circuit.New(1).H(0).H(0))
	probs := s.Probabilities()
	assert.InDelta(t, 1, probs[0], 1e-12)
	assert.InDelta(t, 0, probs[1], 1e-12)
}

func TestBellState_CorrelatedOutcomes(t *testing.T) {
	s := run(t, circuit.New(2).H(0).CX(0, 1))
	probs := s.Probabilities()
	// |00> and |11> only
	assert.InDelta(t, 0.5, probs[0], 1e-12)
	assert.InDelta(t, 0, probs[1], 1e-12)
	assert.InDelta(t, 0, probs[2], 1e-12)
	assert.InDelta(t, 0.5, probs[3], 1e-12)
}

func TestRY_PiFlipsQubit(t *testing.T) {
	s := run(t, circuit.New(1).RY(0, math.Pi))
	probs := s.Probabilities()
	assert.InDelta(t, 0, probs[0], 1e-12)
	assert.InDelta(t, 1, probs[1], 1e-12)
}

func TestGates_PreserveNorm(t *testing.T) {
	s := run(t, circuit.New(3).H(0).RY(1, 0.7).RZ(2, 1.3).CX(0, 1).CZ(1, 2).X(2).H(2))
	assert.InDelta(t, 1, s.Norm(), 1e-10)
}

func TestFidelity_SelfAndOrthogonal(t *testing.T) {
	a := run(t, circuit.New(1).H(0))
	b := run(t, circuit.New(1).H(0))
	f, err := statevec.Fidelity(a, b)
	require.NoError(t, err)
	assert.InDelta(t, 1, f, 1e-12)

	zero := run(t, circuit.New(1))
	one := run(t, circuit.New(1).X(0))
	f, err = statevec.Fidelity(zero, one)
	require.NoError(t, err)
	assert.InDelta(t, 0, f, 1e-12)

	_, err = statevec.Fidelity(a, run(t, circuit.New(2).H(0)))
	assert.Error(t, err)
}

func TestSample_DeterministicWithSeededSource(t *testing.T) {
	s := run(t, circuit.New(3).H(0).H(1).H(2))
	a := s.Sample(256, lcg.New(5))
	b := s.Sample(256, lcg.New(5))
	require.Len(t, a, 256)
	assert.Equal(t, a, b)
	for _, bits := range a {
		require.Len(t, bits, 3)
	}
	assert.Empty(t, s.Sample(0, lcg.New(5)))
}

func TestSample_RespectsDistribution(t *testing.T) {
	// Bell pair: only "00" and "11" may ever appear.
	s := run(t, circuit.New(2).H(0).CX(0, 1))
	mem := s.Sample(2000, lcg.New(17))
	seen := map[string]int{}
	for _, bits := range mem {
		seen[bits]++
	}
	require.Subset(t, []string{"00", "11"}, keys(seen))
	assert.InDelta(t, 1000, seen["00"], 150)
}

func keys(m map[string]int) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	return out
}

func TestNew_RejectsBadWidth(t *testing.T) {
	_, err := statevec.New(0)
	assert.Error(t, err)
	_, err = statevec.New(statevec.MaxQubits + 1)
	assert.Error(t, err)
}
