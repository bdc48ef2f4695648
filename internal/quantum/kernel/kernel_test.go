package kernel_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"qlab/internal/quantum/kernel"
)

var samples = [][]float64{
	{0.1, 0.2},
	{1.5, 0.9},
	{2.8, 2.1},
	{0.15, 0.25},
}

func TestGram_UnitDiagonalSymmetricBounded(t *testing.T) {
	for name, fm := range map[string]kernel.FeatureMap{
		"angle": kernel.NewAngleMap(2),
		"zz":    kernel.NewZZMap(2, 2),
	} {
		t.Run(name, func(t *testing.T) {
			k, err := kernel.Gram(fm, samples)
			require.NoError(t, err)
			n, _ := k.Dims()
			require.Equal(t, len(samples), n)
			for i := 0; i < n; i++ {
				assert.InDelta(t, 1, k.At(i, i), 1e-10)
				for j := 0; j < n; j++ {
					assert.InDelta(t, k.At(j, i), k.At(i, j), 1e-12)
					assert.GreaterOrEqual(t, k.At(i, j), -1e-12)
					assert.LessOrEqual(t, k.At(i, j), 1+1e-12)
				}
			}
		})
	}
}

func TestGram_NearbySamplesScoreHigher(t *testing.T) {
	k, err := kernel.Gram(kernel.NewAngleMap(2), samples)
	require.NoError(t, err)
	// samples 0 and 3 are close, 0 and 2 are far
	assert.Greater(t, k.At(0, 3), k.At(0, 2))
	assert.Greater(t, k.At(0, 3), 0.9)
}

func TestGramCross_MatchesGramOnSharedPoints(t *testing.T) {
	fm := kernel.NewZZMap(2, 1)
	k, err := kernel.Gram(fm, samples)
	require.NoError(t, err)
	kc, err := kernel.GramCross(fm, samples[:2], samples)
	require.NoError(t, err)
	r, c := kc.Dims()
	require.Equal(t, 2, r)
	require.Equal(t, len(samples), c)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			assert.InDelta(t, k.At(i, j), kc.At(i, j), 1e-12)
		}
	}
}

func TestMap_RejectsFeatureMismatch(t *testing.T) {
	_, err := kernel.NewAngleMap(2).Map([]float64{1})
	assert.Error(t, err)
	_, err = kernel.NewZZMap(2, 1).Map([]float64{1, 2, 3})
	assert.Error(t, err)
	_, err = kernel.Gram(kernel.NewAngleMap(2), nil)
	assert.Error(t, err)
}
