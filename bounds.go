package bayesopt

import (
	"golang.org/x/exp/constraints"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/spatial/r1"
)

// Bounds describes the search box: one (low, high) pair per dimension.
// Dimensionality is the number of pairs.
type Bounds [][2]float64

// Of builds Bounds from (low, high) pairs of any numeric type.
//
// Usage example:
//
//	b := bayesopt.Of([2]int{0, 10}, [2]int{-5, 5})
func Of[T constraints.Integer | constraints.Float](pairs ...[2]T) Bounds {
	b := make(Bounds, len(pairs))
	for i, p := range pairs {
		b[i] = [2]float64{float64(p[0]), float64(p[1])}
	}
	return b
}

// Unit returns the d-dimensional unit box.
func Unit(d int) Bounds {
	b := make(Bounds, d)
	for i := range b {
		b[i] = [2]float64{0, 1}
	}
	return b
}

// Validate checks that the box has at least one dimension and that
// every pair is ordered low <= high.
func (b Bounds) Validate() error {
	if len(b) == 0 {
		return configErrorf("bounds must have at least one dimension")
	}
	for i, p := range b {
		if p[0] > p[1] {
			return configErrorf("bounds dimension %d: low %v exceeds high %v", i, p[0], p[1])
		}
	}
	return nil
}

// Dims returns the dimensionality of the box.
func (b Bounds) Dims() int { return len(b) }

// Mid returns the center of the box.
func (b Bounds) Mid() []float64 {
	m := make([]float64, len(b))
	for i, p := range b {
		m[i] = p[0] + (p[1]-p[0])/2
	}
	return m
}

// Span returns the per-dimension widths.
func (b Bounds) Span() []float64 {
	s := make([]float64, len(b))
	for i, p := range b {
		s[i] = p[1] - p[0]
	}
	return s
}

// Sample draws one point uniformly from the box.
func (b Bounds) Sample(rng *rand.Rand) []float64 {
	x := make([]float64, len(b))
	for i, p := range b {
		x[i] = p[0] + rng.Float64()*(p[1]-p[0])
	}
	return x
}

// intervals adapts the box for gonum's multivariate distributions.
func (b Bounds) intervals() []r1.Interval {
	iv := make([]r1.Interval, len(b))
	for i, p := range b {
		iv[i] = r1.Interval{Min: p[0], Max: p[1]}
	}
	return iv
}
