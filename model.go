package bayesopt

import "gonum.org/v1/gonum/stat"

// SurrogateModel is the contract the optimization loop requires from a
// probabilistic regression model over the objective. The loop owns the
// model for the duration of a run and mutates it only through Observe
// and ObserveBatch; everything else is the read-only snapshot the
// shipped policies and recommenders consume.
type SurrogateModel interface {
	// Observe ingests a single observation.
	Observe(x []float64, y float64)

	// ObserveBatch ingests a batch of observations in one call.
	ObserveBatch(xs [][]float64, ys []float64)

	// Len reports the number of ingested observations.
	Len() int

	// Predict returns the posterior mean and variance at x.
	Predict(x []float64) (mean, variance float64)

	// Incumbent returns the observed (x, y) pair with the largest y,
	// or (nil, -Inf) with no observations.
	Incumbent() (x []float64, y float64)

	// Observations returns the ingested inputs and values.
	Observations() (xs [][]float64, ys []float64)
}

// Objective is the function being maximized. Eval is treated as pure
// and possibly expensive; any error it returns aborts the run.
type Objective interface {
	Eval(x []float64) (float64, error)
}

// ObjectiveFunc adapts a plain function to the Objective interface.
type ObjectiveFunc func(x []float64) (float64, error)

func (f ObjectiveFunc) Eval(x []float64) (float64, error) { return f(x) }

// NoiseFree is an optional capability of an Objective: a clean
// evaluation oracle used only to score recommendations in the trace,
// never fed back into the model. Synthetic benchmarks with known
// ground truth implement it; real noisy objectives usually cannot.
type NoiseFree interface {
	NoiseFreeEval(x []float64) (float64, error)
}

const (
	defaultNoise  = 1e-3
	defaultSignal = 10.0
)

// Hyperprior describes default surrogate construction parameters
// derived from the seed batch. It is consumed by model construction
// and not retained.
type Hyperprior struct {
	// Noise is the observation noise scale.
	Noise float64

	// Signal is the kernel signal scale: the sample standard deviation
	// of the seed values, or a fixed fallback when there are too few.
	Signal float64

	// Mean is the constant prior mean, the sample mean of the seed
	// values.
	Mean float64

	// LengthScales are the kernel length scales the default model
	// uses, one per dimension (the bound widths).
	LengthScales []float64

	// LengthScaleLow and LengthScaleHigh bound the plausible length
	// scales per dimension. Models that sample hyperparameters may use
	// the band; the default model keeps the point estimate.
	LengthScaleLow  []float64
	LengthScaleHigh []float64
}

func defaultHyperprior(b Bounds, ys []float64) Hyperprior {
	sf := defaultSignal
	if len(ys) > 1 {
		sf = stat.StdDev(ys, nil)
	}
	mu := 0.0
	if len(ys) > 0 {
		mu = stat.Mean(ys, nil)
	}
	ell := b.Span()
	low := make([]float64, len(ell))
	high := make([]float64, len(ell))
	for i, w := range ell {
		if w == 0 {
			// Degenerate dimension; any positive scale works.
			w = 1
			ell[i] = w
		}
		low[i] = w / 100
		high[i] = w * 2
	}
	return Hyperprior{
		Noise:           defaultNoise,
		Signal:          sf,
		Mean:            mu,
		LengthScales:    ell,
		LengthScaleLow:  low,
		LengthScaleHigh: high,
	}
}

// defaultModel builds the zero-tuning surrogate used when the caller
// supplies none: a Matérn-5/2 GP configured from the seed batch.
func defaultModel(b Bounds, ys []float64) *GP {
	h := defaultHyperprior(b, ys)
	return NewGP(Matern52(h.Signal, h.LengthScales), h.Noise, h.Mean)
}
