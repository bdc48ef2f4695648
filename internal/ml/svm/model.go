package svm

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Model is an SVM that carries its training samples and kernel, so it can
// score arbitrary feature vectors directly.
type Model struct {
	gm     *GramModel
	x      [][]float64
	kernel Kernel
}

// Train builds the Gram matrix of x under k and fits the dual SVM.
func Train(x [][]float64, y []int, c float64, k Kernel, opts Options) (*Model, error) {
	if len(x) == 0 {
		return nil, fmt.Errorf("svm: empty training set")
	}
	if len(x) != len(y) {
		return nil, fmt.Errorf("svm: %d samples but %d labels", len(x), len(y))
	}
	n := len(x)
	gram := mat.NewSymDense(n, nil)
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			gram.SetSym(i, j, k(x[i], x[j]))
		}
	}
	gm, err := TrainGram(gram, y, c, opts)
	if err != nil {
		return nil, err
	}
	return &Model{gm: gm, x: x, kernel: k}, nil
}

// Decision returns the signed distance proxy for p.
func (m *Model) Decision(p []float64) float64 {
	sum := m.gm.B
	for j, a := range m.gm.Alpha {
		if a != 0 {
			sum += a * m.gm.Y[j] * m.kernel(m.x[j], p)
		}
	}
	return sum
}

// Predict returns the class of p in {-1, +1}.
func (m *Model) Predict(p []float64) int {
	if m.Decision(p) < 0 {
		return -1
	}
	return 1
}

// PredictAll classifies each sample.
func (m *Model) PredictAll(xs [][]float64) []int {
	out := make([]int, len(xs))
	for i, p := range xs {
		out[i] = m.Predict(p)
	}
	return out
}

// LinearWeights folds the dual solution into primal weights w and bias b,
// so the boundary is w.x + b = 0. Only meaningful when the model was
// trained with the linear kernel.
func (m *Model) LinearWeights() (w []float64, b float64) {
	if len(m.x) == 0 {
		return nil, m.gm.B
	}
	w = make([]float64, len(m.x[0]))
	for j, a := range m.gm.Alpha {
		if a == 0 {
			continue
		}
		for f := range w {
			w[f] += a * m.gm.Y[j] * m.x[j][f]
		}
	}
	return w, m.gm.B
}

// SupportVectors returns the indices of training samples with non-zero dual
// coefficients.
func (m *Model) SupportVectors() []int {
	var out []int
	for j, a := range m.gm.Alpha {
		if a != 0 {
			out = append(out, j)
		}
	}
	return out
}

// Accuracy returns the fraction of predictions matching want.
func Accuracy(pred, want []int) float64 {
	if len(pred) == 0 || len(pred) != len(want) {
		return 0
	}
	hits := 0
	for i := range pred {
		if pred[i] == want[i] {
			hits++
		}
	}
	return float64(hits) / float64(len(pred))
}
