package svm

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// Kernel scores the similarity of two feature vectors.
type Kernel func(x, z []float64) float64

// Linear returns the dot-product kernel.
func Linear() Kernel {
	return func(x, z []float64) float64 {
		return floats.Dot(x, z)
	}
}

// RBF returns the Gaussian kernel exp(-gamma*||x-z||^2).
func RBF(gamma float64) Kernel {
	return func(x, z []float64) float64 {
		var d2 float64
		for i := range x {
			d := x[i] - z[i]
			d2 += d * d
		}
		return math.Exp(-gamma * d2)
	}
}
