package qrng

import (
	"context"
	"fmt"
	"math"
	"math/bits"

	"qlab/internal/domain"
	"qlab/internal/quantum/circuit"
)

// Service draws randomness from a backend using width-qubit registers.
type Service struct {
	be    domain.Backend
	width int
}

// New returns a service sampling width qubits per shot. Width is the number
// of random bits each shot yields; it must fit the backend in use.
func New(be domain.Backend, width int) (*Service, error) {
	if width < 1 || width > 62 {
		return nil, fmt.Errorf("qrng: width %d outside [1,62]", width)
	}
	return &Service{be: be, width: width}, nil
}

// Width returns the bits harvested per shot.
func (s *Service) Width() int { return s.width }

// harvest runs one job of n shots and returns the per-shot bitstrings.
func (s *Service) harvest(ctx context.Context, shots int) ([]string, error) {
	c, err := circuit.Uniform(s.width)
	if err != nil {
		return nil, err
	}
	res, err := s.be.Run(ctx, domain.Job{Circuit: c, Shots: shots, Memory: true})
	if err != nil {
		return nil, err
	}
	if len(res.Memory) != shots {
		return nil, fmt.Errorf("qrng: backend returned %d shots, want %d", len(res.Memory), shots)
	}
	return res.Memory, nil
}

// Bits returns n measurement bitstrings, width bits each, qubit 0 first.
func (s *Service) Bits(ctx context.Context, n int) ([]string, error) {
	if n < 1 {
		return nil, fmt.Errorf("qrng: request for %d values", n)
	}
	return s.harvest(ctx, n)
}

// Uints returns n integers uniform over [0, 2^width).
func (s *Service) Uints(ctx context.Context, n int) ([]uint64, error) {
	mem, err := s.Bits(ctx, n)
	if err != nil {
		return nil, err
	}
	out := make([]uint64, len(mem))
	for i, bitstr := range mem {
		v, err := parseBits(bitstr)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

// Uniform returns n floats uniform over [0, 1), each derived from one shot.
func (s *Service) Uniform(ctx context.Context, n int) ([]float64, error) {
	us, err := s.Uints(ctx, n)
	if err != nil {
		return nil, err
	}
	den := math.Ldexp(1, s.width) // 2^width
	out := make([]float64, len(us))
	for i, u := range us {
		out[i] = float64(u) / den
	}
	return out, nil
}

// Ints returns n integers uniform over [0, max) by rejection sampling, so
// no modulo bias is introduced. max must fit in the service width.
func (s *Service) Ints(ctx context.Context, n, max int) ([]int, error) {
	if max < 2 {
		return nil, fmt.Errorf("qrng: max %d < 2", max)
	}
	need := bits.Len(uint(max - 1))
	if need > s.width {
		return nil, fmt.Errorf("qrng: max %d needs %d bits, service width is %d", max, need, s.width)
	}
	mask := uint64(1)<<need - 1

	out := make([]int, 0, n)
	for len(out) < n {
		// Ask for extra shots to cover expected rejections.
		batch := (n - len(out)) * 2
		us, err := s.Uints(ctx, batch)
		if err != nil {
			return nil, err
		}
		for _, u := range us {
			v := u & mask
			if v < uint64(max) {
				out = append(out, int(v))
				if len(out) == n {
					break
				}
			}
		}
	}
	return out, nil
}

// parseBits converts a qubit-0-first bitstring to an integer where qubit q
// contributes bit q.
func parseBits(s string) (uint64, error) {
	var v uint64
	for q := 0; q < len(s); q++ {
		switch s[q] {
		case '1':
			v |= 1 << q
		case '0':
		default:
			return 0, fmt.Errorf("qrng: bad bitstring %q", s)
		}
	}
	return v, nil
}
