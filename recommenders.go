package bayesopt

import (
	"errors"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/floats"
)

// Recommender proposes the best point to report given the current
// model. Recommendations feed the trace, never the model.
type Recommender func(m SurrogateModel, b Bounds, rng *rand.Rand) ([]float64, error)

// BestIncumbent recommends the observed point with the largest
// observed value. Honest under low noise, easily misled otherwise.
func BestIncumbent(m SurrogateModel, _ Bounds, _ *rand.Rand) ([]float64, error) {
	x, _ := m.Incumbent()
	if x == nil {
		return nil, errors.New("bayesopt: incumbent recommender needs at least one observation")
	}
	return x, nil
}

// BestObserved recommends the observed point with the largest
// posterior mean, smoothing observation noise out of the choice.
func BestObserved(m SurrogateModel, _ Bounds, _ *rand.Rand) ([]float64, error) {
	xs, _ := m.Observations()
	if len(xs) == 0 {
		return nil, errors.New("bayesopt: observed recommender needs at least one observation")
	}
	means := make([]float64, len(xs))
	for i, x := range xs {
		means[i], _ = m.Predict(x)
	}
	return xs[floats.MaxIdx(means)], nil
}

// BestLatent recommends the maximizer of the posterior mean anywhere
// in the box, which may be a point never queried. The default.
func BestLatent(m SurrogateModel, b Bounds, rng *rand.Rand) ([]float64, error) {
	x, _, err := SolveLBFGS(func(x []float64) float64 {
		mean, _ := m.Predict(x)
		return mean
	}, b, rng)
	return x, err
}
