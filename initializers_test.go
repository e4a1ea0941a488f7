package bayesopt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

func TestInitMiddle(t *testing.T) {
	xs, err := InitMiddle(Of([2]float64{0, 2}, [2]float64{-1, 1}), nil)
	require.NoError(t, err)
	require.Len(t, xs, 1)
	assert.Equal(t, []float64{1, 0}, xs[0])
}

func TestInitUniformBatch(t *testing.T) {
	rng := rand.New(rand.NewSource(8))
	b := Of([2]float64{0, 1}, [2]float64{10, 20})

	xs, err := InitUniform(b, rng)
	require.NoError(t, err)
	require.Len(t, xs, 6)

	for _, x := range xs {
		require.Len(t, x, 2)
		assert.GreaterOrEqual(t, x[0], 0.0)
		assert.Less(t, x[0], 1.0)
		assert.GreaterOrEqual(t, x[1], 10.0)
		assert.Less(t, x[1], 20.0)
	}
}

func TestInitLatinStratifies(t *testing.T) {
	rng := rand.New(rand.NewSource(8))
	b := Of([2]float64{0, 1})

	xs, err := InitLatin(b, rng)
	require.NoError(t, err)
	require.Len(t, xs, 3)

	// Latin hypercube sampling puts exactly one point in each third of
	// the box.
	var thirds [3]int
	for _, x := range xs {
		require.GreaterOrEqual(t, x[0], 0.0)
		require.Less(t, x[0], 1.0)
		thirds[int(x[0]*3)]++
	}
	assert.Equal(t, [3]int{1, 1, 1}, thirds)
}
