package bayesopt

import (
	"errors"
	"math"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// Acquisition scores a candidate point; the solver maximizes it over
// the box.
type Acquisition func(x []float64) float64

// Policy yields an acquisition surface conditioned on the current
// model.
type Policy func(m SurrogateModel, rng *rand.Rand) (Acquisition, error)

// Exploration constants shared by the shipped policies.
const (
	ucbBeta = 2.0
	eiXi    = 0.01
)

var unitNormal = distuv.UnitNormal

// PolicyEI scores points by the expected improvement over the best
// observed value, balancing how likely an improvement is against how
// large it would be. The default policy.
func PolicyEI(m SurrogateModel, _ *rand.Rand) (Acquisition, error) {
	if m.Len() == 0 {
		return nil, errors.New("bayesopt: ei policy needs at least one observation")
	}
	_, best := m.Incumbent()
	return func(x []float64) float64 {
		mean, variance := m.Predict(x)
		imp := mean - best - eiXi
		sigma := math.Sqrt(variance)
		if sigma == 0 {
			return math.Max(imp, 0)
		}
		z := imp / sigma
		return imp*unitNormal.CDF(z) + sigma*unitNormal.Prob(z)
	}, nil
}

// PolicyPI scores points by the probability of improving on the best
// observed value. More conservative than EI: it ignores how large the
// improvement would be.
func PolicyPI(m SurrogateModel, _ *rand.Rand) (Acquisition, error) {
	if m.Len() == 0 {
		return nil, errors.New("bayesopt: pi policy needs at least one observation")
	}
	_, best := m.Incumbent()
	return func(x []float64) float64 {
		mean, variance := m.Predict(x)
		sigma := math.Sqrt(variance)
		if sigma == 0 {
			if mean > best+eiXi {
				return 1
			}
			return 0
		}
		return unitNormal.CDF((mean - best - eiXi) / sigma)
	}, nil
}

// PolicyUCB scores points by an upper confidence bound on the
// posterior, mean plus a fixed multiple of the standard deviation.
func PolicyUCB(m SurrogateModel, _ *rand.Rand) (Acquisition, error) {
	return func(x []float64) float64 {
		mean, variance := m.Predict(x)
		return mean + ucbBeta*math.Sqrt(variance)
	}, nil
}

// PolicyThompson scores each point with an independent draw from the
// pointwise posterior. The surface is stochastic, so pair it with the
// "random" solver rather than "lbfgs".
func PolicyThompson(m SurrogateModel, rng *rand.Rand) (Acquisition, error) {
	return func(x []float64) float64 {
		mean, variance := m.Predict(x)
		return mean + math.Sqrt(variance)*rng.NormFloat64()
	}, nil
}
