package bayesopt

import (
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distmv"
	"gonum.org/v1/gonum/stat/samplemv"
)

// Initializer produces the seed batch of query points from the bounds
// alone. The batch size is the initializer's choice, not the caller's.
type Initializer func(b Bounds, rng *rand.Rand) ([][]float64, error)

// seedsPerDim sizes the random seed batches.
const seedsPerDim = 3

// InitMiddle seeds with the single center point of the box.
func InitMiddle(b Bounds, _ *rand.Rand) ([][]float64, error) {
	return [][]float64{b.Mid()}, nil
}

// InitUniform seeds with 3·D points drawn uniformly from the box.
func InitUniform(b Bounds, rng *rand.Rand) ([][]float64, error) {
	xs := make([][]float64, seedsPerDim*b.Dims())
	for i := range xs {
		xs[i] = b.Sample(rng)
	}
	return xs, nil
}

// InitLatin seeds with a 3·D point Latin hypercube, spreading the
// batch more evenly over the box than independent uniform draws.
func InitLatin(b Bounds, rng *rand.Rand) ([][]float64, error) {
	n := seedsPerDim * b.Dims()
	src := rand.NewSource(rng.Uint64())
	lh := samplemv.LatinHypercube{
		Q:   distmv.NewUniform(b.intervals(), src),
		Src: src,
	}
	batch := mat.NewDense(n, b.Dims(), nil)
	lh.Sample(batch)

	xs := make([][]float64, n)
	for i := range xs {
		xs[i] = mat.Row(nil, i, batch)
	}
	return xs, nil
}
