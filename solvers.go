package bayesopt

import (
	"errors"
	"math"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/diff/fd"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/optimize"
)

// Solver maximizes an arbitrary scalar surface over the box, reporting
// the maximizer and the value there.
type Solver func(f Acquisition, b Bounds, rng *rand.Rand) ([]float64, float64, error)

const (
	// scanCandidatesPerDim sizes the random scan per call.
	scanCandidatesPerDim = 200

	// lbfgsStarts is the number of multistart points for SolveLBFGS:
	// the box center plus random draws.
	lbfgsStarts = 5
)

// SolveRandom maximizes by scanning uniform random candidates and
// keeping the best. Crude but assumption-free, and the right partner
// for stochastic surfaces like Thompson sampling.
func SolveRandom(f Acquisition, b Bounds, rng *rand.Rand) ([]float64, float64, error) {
	n := scanCandidatesPerDim * b.Dims()
	points := make([][]float64, n)
	scores := make([]float64, n)
	for i := range points {
		points[i] = b.Sample(rng)
		scores[i] = f(points[i])
	}
	i := floats.MaxIdx(scores)
	return points[i], scores[i], nil
}

// SolveLBFGS maximizes with multistart L-BFGS. The box constraint is
// handled by a sigmoid reparameterization onto an unconstrained
// variable, and gradients come from central finite differences, so the
// surface never needs a closed-form derivative.
func SolveLBFGS(f Acquisition, b Bounds, rng *rand.Rand) ([]float64, float64, error) {
	d := b.Dims()

	toBox := func(u []float64) []float64 {
		x := make([]float64, d)
		for i, p := range b {
			x[i] = p[0] + (p[1]-p[0])/(1+math.Exp(-u[i]))
		}
		return x
	}
	fromBox := func(x []float64) []float64 {
		u := make([]float64, d)
		for i, p := range b {
			t := 0.5
			if w := p[1] - p[0]; w > 0 {
				t = (x[i] - p[0]) / w
			}
			t = math.Min(math.Max(t, 1e-6), 1-1e-6)
			u[i] = math.Log(t / (1 - t))
		}
		return u
	}

	neg := func(u []float64) float64 { return -f(toBox(u)) }
	problem := optimize.Problem{
		Func: neg,
		Grad: func(grad, u []float64) {
			fd.Gradient(grad, neg, u, nil)
		},
	}

	var (
		bestX   []float64
		bestVal = math.Inf(-1)
		lastErr error
	)
	for s := 0; s < lbfgsStarts; s++ {
		start := b.Mid()
		if s > 0 {
			start = b.Sample(rng)
		}
		result, err := optimize.Minimize(problem, fromBox(start), nil, &optimize.LBFGS{})
		if result == nil {
			lastErr = err
			continue
		}
		// A linesearch failure can still leave a usable location, so a
		// start only counts as failed when its value is unusable.
		val := -result.F
		if math.IsNaN(val) || math.IsInf(val, 0) {
			if err != nil {
				lastErr = err
			}
			continue
		}
		if bestX == nil || val > bestVal {
			bestVal = val
			bestX = toBox(result.X)
		}
	}
	if bestX == nil {
		if lastErr == nil {
			lastErr = errors.New("bayesopt: lbfgs produced no usable result")
		}
		return nil, 0, lastErr
	}
	return bestX, bestVal, nil
}
