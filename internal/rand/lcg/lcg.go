package lcg

import (
	cryptorand "crypto/rand"
	"encoding/binary"
	"math"
)

// Numerical Recipes parameters, modulus 2^32.
const (
	DefaultA = 1664525
	DefaultC = 1013904223
	DefaultM = 1 << 32
)

// LCG is a linear congruential generator. A modulus of zero selects mod 2^64
// via natural uint64 wraparound.
type LCG struct {
	a, c, m uint64
	state   uint64

	spare    float64 // cached Box-Muller deviate
	hasSpare bool
}

// New returns a generator with the Numerical Recipes parameters and the
// given seed.
func New(seed uint64) *LCG {
	return NewParams(DefaultA, DefaultC, DefaultM, seed)
}

// NewParams returns a generator with explicit parameters. m == 0 means
// modulus 2^64.
func NewParams(a, c, m, seed uint64) *LCG {
	g := &LCG{a: a, c: c, m: m}
	g.Seed(seed)
	return g
}

// FromCryptoSeed returns a default-parameter generator seeded from the
// operating system's cryptographic randomness.
func FromCryptoSeed() *LCG {
	var b [8]byte
	if _, err := cryptorand.Read(b[:]); err != nil {
		panic("lcg: reading cryptographic randomness: " + err.Error())
	}
	return New(binary.BigEndian.Uint64(b[:]))
}

// Seed resets the generator state. With a finite modulus the seed is reduced
// mod m first.
func (g *LCG) Seed(seed uint64) {
	if g.m != 0 {
		seed %= g.m
	}
	g.state = seed
	g.hasSpare = false
}

// Next advances the recurrence and returns the raw state.
func (g *LCG) Next() uint64 {
	if g.m == 0 {
		g.state = g.state*g.a + g.c
	} else {
		g.state = (g.state*g.a + g.c) % g.m
	}
	return g.state
}

// Float64 returns the next output normalised to [0, 1).
func (g *LCG) Float64() float64 {
	x := g.Next()
	if g.m == 0 {
		// Keep the top 53 bits so the quotient is exactly representable.
		return float64(x>>11) / (1 << 53)
	}
	q := float64(x) / float64(g.m)
	// A modulus above 2^53 is not exactly representable; float64(m) can
	// round below x and push the quotient to 1.0.
	if q >= 1 {
		q = math.Nextafter(1, 0)
	}
	return q
}

// Sequence returns the next n normalised outputs. n <= 0 yields an empty
// slice.
func (g *LCG) Sequence(n int) []float64 {
	if n <= 0 {
		return nil
	}
	out := make([]float64, n)
	for i := range out {
		out[i] = g.Float64()
	}
	return out
}

// Intn returns a pseudo-random int in [0, n). Returns 0 if n <= 0.
func (g *LCG) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return int(g.Next() % uint64(n))
}

// Shuffle performs an in-place Fisher-Yates shuffle of n elements.
func (g *LCG) Shuffle(n int, swap func(i, j int)) {
	for i := n - 1; i > 0; i-- {
		j := g.Intn(i + 1)
		swap(i, j)
	}
}

// NormFloat64 returns a standard normal deviate via the Box-Muller transform.
func (g *LCG) NormFloat64() float64 {
	if g.hasSpare {
		g.hasSpare = false
		return g.spare
	}
	var u float64
	for u == 0 { // log(0) is -Inf
		u = g.Float64()
	}
	v := g.Float64()
	r := math.Sqrt(-2 * math.Log(u))
	g.spare = r * math.Sin(2*math.Pi*v)
	g.hasSpare = true
	return r * math.Cos(2*math.Pi*v)
}
