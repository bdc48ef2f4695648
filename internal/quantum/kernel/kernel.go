package kernel

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"qlab/internal/quantum/statevec"
)

// states runs the feature map once per sample.
func states(fm FeatureMap, X [][]float64) ([]*statevec.State, error) {
	out := make([]*statevec.State, len(X))
	for i, x := range X {
		c, err := fm.Map(x)
		if err != nil {
			return nil, fmt.Errorf("kernel: sample %d: %w", i, err)
		}
		s, err := statevec.Run(c)
		if err != nil {
			return nil, fmt.Errorf("kernel: sample %d: %w", i, err)
		}
		out[i] = s
	}
	return out, nil
}

// Gram returns the fidelity kernel matrix of X under fm: K[i,j] =
// |<phi(x_i)|phi(x_j)>|^2. The result is symmetric with a unit diagonal.
func Gram(fm FeatureMap, X [][]float64) (*mat.SymDense, error) {
	if len(X) == 0 {
		return nil, fmt.Errorf("kernel: empty dataset")
	}
	sts, err := states(fm, X)
	if err != nil {
		return nil, err
	}
	n := len(sts)
	k := mat.NewSymDense(n, nil)
	for i := 0; i < n; i++ {
		k.SetSym(i, i, 1)
		for j := i + 1; j < n; j++ {
			f, err := statevec.Fidelity(sts[i], sts[j])
			if err != nil {
				return nil, err
			}
			k.SetSym(i, j, f)
		}
	}
	return k, nil
}

// GramCross returns the rectangular kernel block between two sample sets:
// K[i,j] = |<phi(a_i)|phi(b_j)>|^2. Used to evaluate a trained model on
// points outside its training set.
func GramCross(fm FeatureMap, A, B [][]float64) (*mat.Dense, error) {
	if len(A) == 0 || len(B) == 0 {
		return nil, fmt.Errorf("kernel: empty dataset")
	}
	sa, err := states(fm, A)
	if err != nil {
		return nil, err
	}
	sb, err := states(fm, B)
	if err != nil {
		return nil, err
	}
	k := mat.NewDense(len(sa), len(sb), nil)
	for i := range sa {
		for j := range sb {
			f, err := statevec.Fidelity(sa[i], sb[j])
			if err != nil {
				return nil, err
			}
			k.Set(i, j, f)
		}
	}
	return k, nil
}
