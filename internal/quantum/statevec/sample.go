package statevec

import (
	"sort"
	"strings"
)

// Source supplies uniform deviates in [0, 1) for measurement sampling.
// *lcg.LCG satisfies it.
type Source interface {
	Float64() float64
}

// Sample measures the register shots times in the computational basis and
// returns the bitstrings in draw order, qubit 0 first. The state itself is
// not collapsed; each shot is an independent draw from the outcome
// distribution.
func (s *State) Sample(shots int, src Source) []string {
	if shots <= 0 {
		return nil
	}
	probs := s.Probabilities()
	cum := make([]float64, len(probs))
	var acc float64
	for i, p := range probs {
		acc += p
		cum[i] = acc
	}

	out := make([]string, shots)
	for k := 0; k < shots; k++ {
		u := src.Float64()
		idx := sort.SearchFloat64s(cum, u)
		// u can land past the last cumulative value when the norm rounds
		// below 1
		if idx >= len(cum) {
			idx = len(cum) - 1
		}
		// SearchFloat64s finds the first cum >= u; an exact hit belongs to
		// the next bucket
		for idx < len(cum)-1 && cum[idx] == u {
			idx++
		}
		out[k] = s.bitstring(idx)
	}
	return out
}

func (s *State) bitstring(idx int) string {
	var b strings.Builder
	b.Grow(s.n)
	for q := 0; q < s.n; q++ {
		if idx>>q&1 == 1 {
			b.WriteByte('1')
		} else {
			b.WriteByte('0')
		}
	}
	return b.String()
}
