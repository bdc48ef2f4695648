package svm

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"qlab/internal/rand/lcg"
)

// Options tunes the SMO loop. The zero value selects the defaults below.
type Options struct {
	Tol       float64 // KKT violation tolerance (default 1e-3)
	MaxPasses int     // consecutive no-change sweeps before stopping (default 5)
	MaxSweeps int     // hard cap on sweeps (default 500)
	Seed      uint64  // seed for the partner-picking generator (default 1)
}

func (o Options) withDefaults() Options {
	if o.Tol == 0 {
		o.Tol = 1e-3
	}
	if o.MaxPasses == 0 {
		o.MaxPasses = 5
	}
	if o.MaxSweeps == 0 {
		o.MaxSweeps = 500
	}
	if o.Seed == 0 {
		o.Seed = 1
	}
	return o
}

// GramModel is an SVM trained against a precomputed kernel matrix. It knows
// nothing about the original feature vectors; scoring a point requires its
// kernel row against the training set.
type GramModel struct {
	Alpha []float64 // dual coefficients
	B     float64   // bias
	Y     []float64 // training labels as +-1
}

// TrainGram fits the dual SVM on kernel matrix k and labels y with box
// constraint c, using simplified sequential minimal optimisation.
func TrainGram(k mat.Symmetric, y []int, c float64, opts Options) (*GramModel, error) {
	n := k.SymmetricDim()
	if n < 2 {
		return nil, fmt.Errorf("svm: need at least 2 samples, got %d", n)
	}
	if len(y) != n {
		return nil, fmt.Errorf("svm: %d labels for %d samples", len(y), n)
	}
	if c <= 0 {
		return nil, fmt.Errorf("svm: box constraint C must be positive, got %v", c)
	}
	yf := make([]float64, n)
	for i, v := range y {
		if v != 1 && v != -1 {
			return nil, fmt.Errorf("svm: label %d: want -1 or +1, got %d", i, v)
		}
		yf[i] = float64(v)
	}
	o := opts.withDefaults()
	g := lcg.New(o.Seed)

	m := &GramModel{Alpha: make([]float64, n), Y: yf}

	// decision value at training sample i
	f := func(i int) float64 {
		sum := m.B
		for j := 0; j < n; j++ {
			if m.Alpha[j] != 0 {
				sum += m.Alpha[j] * yf[j] * k.At(j, i)
			}
		}
		return sum
	}

	passes := 0
	for sweep := 0; passes < o.MaxPasses && sweep < o.MaxSweeps; sweep++ {
		changed := 0
		for i := 0; i < n; i++ {
			ei := f(i) - yf[i]
			if !((yf[i]*ei < -o.Tol && m.Alpha[i] < c) || (yf[i]*ei > o.Tol && m.Alpha[i] > 0)) {
				continue
			}
			j := g.Intn(n - 1)
			if j >= i {
				j++
			}
			ej := f(j) - yf[j]

			ai, aj := m.Alpha[i], m.Alpha[j]
			var lo, hi float64
			if yf[i] != yf[j] {
				lo = math.Max(0, aj-ai)
				hi = math.Min(c, c+aj-ai)
			} else {
				lo = math.Max(0, ai+aj-c)
				hi = math.Min(c, ai+aj)
			}
			if lo == hi {
				continue
			}
			eta := 2*k.At(i, j) - k.At(i, i) - k.At(j, j)
			if eta >= 0 {
				continue
			}
			ajNew := aj - yf[j]*(ei-ej)/eta
			ajNew = math.Min(math.Max(ajNew, lo), hi)
			if math.Abs(ajNew-aj) < 1e-5 {
				continue
			}
			aiNew := ai + yf[i]*yf[j]*(aj-ajNew)

			b1 := m.B - ei - yf[i]*(aiNew-ai)*k.At(i, i) - yf[j]*(ajNew-aj)*k.At(i, j)
			b2 := m.B - ej - yf[i]*(aiNew-ai)*k.At(i, j) - yf[j]*(ajNew-aj)*k.At(j, j)
			switch {
			case aiNew > 0 && aiNew < c:
				m.B = b1
			case ajNew > 0 && ajNew < c:
				m.B = b2
			default:
				m.B = (b1 + b2) / 2
			}

			m.Alpha[i], m.Alpha[j] = aiNew, ajNew
			changed++
		}
		if changed == 0 {
			passes++
		} else {
			passes = 0
		}
	}
	return m, nil
}

// Decision scores a point from its kernel row against the training samples.
func (m *GramModel) Decision(kRow []float64) float64 {
	sum := m.B
	for j, a := range m.Alpha {
		if a != 0 {
			sum += a * m.Y[j] * kRow[j]
		}
	}
	return sum
}

// Predict returns the sign of Decision; a score of exactly zero goes to +1.
func (m *GramModel) Predict(kRow []float64) int {
	if m.Decision(kRow) < 0 {
		return -1
	}
	return 1
}

// PredictAll classifies one point per row of k, where column j is the kernel
// value against training sample j.
func (m *GramModel) PredictAll(k mat.Matrix) []int {
	r, _ := k.Dims()
	out := make([]int, r)
	for i := 0; i < r; i++ {
		out[i] = m.Predict(mat.Row(nil, i, k))
	}
	return out
}
