package statevec

import (
	"fmt"
	"math"
	"math/cmplx"

	"qlab/internal/domain"
)

// MaxQubits caps register width; 2^20 amplitudes is 16 MiB of complex128.
const MaxQubits = 20

// State holds the amplitudes of an n-qubit register. Amplitude index i
// encodes qubit q as bit (i >> q) & 1.
type State struct {
	n    int
	amps []complex128
}

// New returns the register prepared in |0...0>.
func New(n int) (*State, error) {
	if n < 1 || n > MaxQubits {
		return nil, fmt.Errorf("statevec: qubit count %d outside [1,%d]", n, MaxQubits)
	}
	s := &State{n: n, amps: make([]complex128, 1<<n)}
	s.amps[0] = 1
	return s, nil
}

// Run executes the circuit on a fresh register and returns the final state.
func Run(c domain.Circuit) (*State, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	s, err := New(c.Qubits)
	if err != nil {
		return nil, err
	}
	for _, g := range c.Gates {
		if err := s.Apply(g); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// Qubits returns the register width.
func (s *State) Qubits() int { return s.n }

// Amplitudes returns a copy of the amplitude vector.
func (s *State) Amplitudes() []complex128 {
	out := make([]complex128, len(s.amps))
	copy(out, s.amps)
	return out
}

// Apply applies one gate. The gate must already target qubits within the
// register; Run validates, direct callers get an error otherwise.
func (s *State) Apply(g domain.Gate) error {
	if err := (domain.Circuit{Qubits: s.n, Gates: []domain.Gate{g}}).Validate(); err != nil {
		return err
	}
	invSqrt2 := complex(1/math.Sqrt2, 0)
	switch g.Kind {
	case domain.GateH:
		s.apply1(g.Targets[0], invSqrt2, invSqrt2, invSqrt2, -invSqrt2)
	case domain.GateX:
		s.apply1(g.Targets[0], 0, 1, 1, 0)
	case domain.GateRY:
		c := complex(math.Cos(g.Theta/2), 0)
		d := complex(math.Sin(g.Theta/2), 0)
		s.apply1(g.Targets[0], c, -d, d, c)
	case domain.GateRZ:
		e0 := cmplx.Exp(complex(0, -g.Theta/2))
		e1 := cmplx.Exp(complex(0, g.Theta/2))
		s.apply1(g.Targets[0], e0, 0, 0, e1)
	case domain.GateCX:
		s.applyCX(g.Targets[0], g.Targets[1])
	case domain.GateCZ:
		s.applyCZ(g.Targets[0], g.Targets[1])
	default:
		return fmt.Errorf("statevec: unknown gate kind %q", g.Kind)
	}
	return nil
}

// apply1 multiplies the amplitude pairs split by qubit q with the 2x2 matrix
// [[m00 m01] [m10 m11]].
func (s *State) apply1(q int, m00, m01, m10, m11 complex128) {
	mask := 1 << q
	for i := range s.amps {
		if i&mask != 0 {
			continue
		}
		j := i | mask
		a0, a1 := s.amps[i], s.amps[j]
		s.amps[i] = m00*a0 + m01*a1
		s.amps[j] = m10*a0 + m11*a1
	}
}

func (s *State) applyCX(c, t int) {
	cm, tm := 1<<c, 1<<t
	for i := range s.amps {
		if i&cm != 0 && i&tm == 0 {
			j := i | tm
			s.amps[i], s.amps[j] = s.amps[j], s.amps[i]
		}
	}
}

func (s *State) applyCZ(c, t int) {
	cm, tm := 1<<c, 1<<t
	for i := range s.amps {
		if i&cm != 0 && i&tm != 0 {
			s.amps[i] = -s.amps[i]
		}
	}
}

// Probabilities returns |amplitude|^2 per basis state.
func (s *State) Probabilities() []float64 {
	out := make([]float64, len(s.amps))
	for i, a := range s.amps {
		out[i] = real(a)*real(a) + imag(a)*imag(a)
	}
	return out
}

// Norm returns the 2-norm of the state; every gate is unitary so this stays
// at 1 up to rounding.
func (s *State) Norm() float64 {
	var sum float64
	for _, p := range s.Probabilities() {
		sum += p
	}
	return math.Sqrt(sum)
}

// Fidelity returns |<a|b>|^2 for two states over the same register width.
func Fidelity(a, b *State) (float64, error) {
	if a.n != b.n {
		return 0, fmt.Errorf("statevec: fidelity of %d-qubit and %d-qubit states", a.n, b.n)
	}
	var ip complex128
	for i := range a.amps {
		ip += cmplx.Conj(a.amps[i]) * b.amps[i]
	}
	f := real(ip)*real(ip) + imag(ip)*imag(ip)
	// rounding can push a hair past 1
	if f > 1 {
		f = 1
	}
	return f, nil
}
