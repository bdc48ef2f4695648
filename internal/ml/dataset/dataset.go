package dataset

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat"

	"qlab/internal/rand/lcg"
)

// Dataset is a labelled sample set. Labels are -1 or +1.
type Dataset struct {
	X [][]float64
	Y []int
}

// Len returns the number of samples.
func (d Dataset) Len() int { return len(d.X) }

// Features returns the feature count, or 0 for an empty set.
func (d Dataset) Features() int {
	if len(d.X) == 0 {
		return 0
	}
	return len(d.X[0])
}

// Blobs returns n samples from two Gaussian clusters centred at (-2,-2) and
// (2,2) with the given standard deviation. Classes alternate so any prefix
// stays roughly balanced.
func Blobs(n int, noise float64, g *lcg.LCG) Dataset {
	d := Dataset{X: make([][]float64, 0, n), Y: make([]int, 0, n)}
	for i := 0; i < n; i++ {
		cx, cy, label := 2.0, 2.0, 1
		if i%2 == 1 {
			cx, cy, label = -2.0, -2.0, -1
		}
		d.X = append(d.X, []float64{cx + noise*g.NormFloat64(), cy + noise*g.NormFloat64()})
		d.Y = append(d.Y, label)
	}
	return d
}

// Circles returns n samples on two concentric circles: class +1 on the unit
// circle, class -1 on a circle of radius factor, both jittered by noise.
// The classes are not linearly separable, which is the point of the qsvm
// demonstration.
func Circles(n int, noise, factor float64, g *lcg.LCG) Dataset {
	d := Dataset{X: make([][]float64, 0, n), Y: make([]int, 0, n)}
	for i := 0; i < n; i++ {
		r, label := 1.0, 1
		if i%2 == 1 {
			r, label = factor, -1
		}
		phi := 2 * math.Pi * g.Float64()
		d.X = append(d.X, []float64{
			r*math.Cos(phi) + noise*g.NormFloat64(),
			r*math.Sin(phi) + noise*g.NormFloat64(),
		})
		d.Y = append(d.Y, label)
	}
	return d
}

// Split shuffles the dataset and carves off testFrac of it as a held-out
// set. testFrac is clamped to [0, 1].
func (d Dataset) Split(testFrac float64, g *lcg.LCG) (train, test Dataset) {
	testFrac = math.Min(math.Max(testFrac, 0), 1)

	idx := make([]int, d.Len())
	for i := range idx {
		idx[i] = i
	}
	g.Shuffle(len(idx), func(i, j int) { idx[i], idx[j] = idx[j], idx[i] })

	nTest := int(math.Round(testFrac * float64(d.Len())))
	for k, i := range idx {
		if k < nTest {
			test.X = append(test.X, d.X[i])
			test.Y = append(test.Y, d.Y[i])
		} else {
			train.X = append(train.X, d.X[i])
			train.Y = append(train.Y, d.Y[i])
		}
	}
	return train, test
}

// Standardize rescales both sets to zero mean and unit variance per feature,
// using statistics from train only.
func Standardize(train, test Dataset) (Dataset, Dataset, error) {
	nf := train.Features()
	if nf == 0 {
		return Dataset{}, Dataset{}, fmt.Errorf("dataset: standardize of empty training set")
	}
	for f := 0; f < nf; f++ {
		col := make([]float64, train.Len())
		for i, x := range train.X {
			col[i] = x[f]
		}
		mean, std := stat.MeanStdDev(col, nil)
		if std == 0 {
			std = 1
		}
		for _, x := range train.X {
			x[f] = (x[f] - mean) / std
		}
		for _, x := range test.X {
			x[f] = (x[f] - mean) / std
		}
	}
	return train, test, nil
}

// ScaleTo rescales both sets feature-wise into [lo, hi] using the training
// set's min and max, the usual preparation before a rotation-angle encoding.
func ScaleTo(train, test Dataset, lo, hi float64) (Dataset, Dataset, error) {
	nf := train.Features()
	if nf == 0 {
		return Dataset{}, Dataset{}, fmt.Errorf("dataset: scale of empty training set")
	}
	for f := 0; f < nf; f++ {
		min, max := math.Inf(1), math.Inf(-1)
		for _, x := range train.X {
			min = math.Min(min, x[f])
			max = math.Max(max, x[f])
		}
		span := max - min
		if span == 0 {
			span = 1
		}
		scale := func(v float64) float64 { return lo + (hi-lo)*(v-min)/span }
		for _, x := range train.X {
			x[f] = scale(x[f])
		}
		for _, x := range test.X {
			x[f] = scale(x[f])
		}
	}
	return train, test, nil
}
