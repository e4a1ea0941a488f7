package bayesopt

import (
	"time"

	"golang.org/x/exp/rand"
)

// Observer is an optional side-effecting hook invoked once per
// main-loop iteration, before the chosen point is evaluated. It
// receives the trace written so far, the point about to be queried,
// and the run's moving parts. Nothing it returns is consumed; it
// exists for introspection and visualization.
type Observer func(sofar Trace, next []float64, f Objective, m SurrogateModel, b Bounds, acq Acquisition)

// Config controls a single optimization run.
type Config struct {
	// Horizon is the total number of objective evaluations, seed batch
	// included. The returned trace has exactly this many entries.
	Horizon int

	// Policy, Initializer, Solver and Recommender name the pluggable
	// strategies, resolved case-insensitively against the built-in
	// registries before anything is evaluated.
	Policy      string
	Initializer string
	Solver      string
	Recommender string

	// Model, when non-nil, replaces the default Matérn-5/2 GP. It may
	// arrive pre-seeded with observations.
	Model SurrogateModel

	// Observer, when non-nil, is invoked once per main-loop iteration.
	Observer Observer

	// Seed fixes the run's random stream; zero seeds from the clock.
	Seed uint64
}

// DefaultConfig returns the zero-tuning configuration: expected
// improvement over a default GP, seeded at the box center, with
// multistart L-BFGS as the inner solver and the posterior-mean
// maximizer as the recommendation.
func DefaultConfig() Config {
	return Config{
		Horizon:     100,
		Policy:      "ei",
		Initializer: "middle",
		Solver:      "lbfgs",
		Recommender: "latent",
	}
}

// components holds a run's resolved strategies.
type components struct {
	policy      Policy
	initializer Initializer
	solver      Solver
	recommender Recommender
}

// resolve looks the four strategy names up before any evaluation, so a
// misconfigured run fails with zero objective side effects.
func resolve(cfg Config) (components, error) {
	var (
		c   components
		err error
	)
	if c.policy, err = policies.lookup(cfg.Policy); err != nil {
		return components{}, err
	}
	if c.initializer, err = initializers.lookup(cfg.Initializer); err != nil {
		return components{}, err
	}
	if c.solver, err = solvers.lookup(cfg.Solver); err != nil {
		return components{}, err
	}
	if c.recommender, err = recommenders.lookup(cfg.Recommender); err != nil {
		return components{}, err
	}
	return c, nil
}

// Solve maximizes f over b by sequential model-based optimization and
// returns the convergence trace of the whole run.
//
// The run seeds the model with the initializer's batch, then loops:
// acquisition surface from the policy, maximizer from the solver, one
// objective evaluation, one model update, one recommendation. Each
// iteration fills the next trace slot until the trace is full.
//
// The run is strictly sequential and owns its model and trace. Any
// error from the objective or a strategy aborts the run; no partial
// trace is returned.
func Solve(f Objective, b Bounds, cfg Config) (Trace, error) {
	if f == nil {
		return nil, configErrorf("objective must not be nil")
	}
	if err := b.Validate(); err != nil {
		return nil, err
	}
	if cfg.Horizon <= 0 {
		return nil, configErrorf("horizon must be positive, got %d", cfg.Horizon)
	}
	comps, err := resolve(cfg)
	if err != nil {
		return nil, err
	}
	return run(f, b, cfg, comps)
}

func run(f Objective, b Bounds, cfg Config, comps components) (Trace, error) {
	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	rng := rand.New(rand.NewSource(seed))

	seeds, err := comps.initializer(b, rng)
	if err != nil {
		return nil, err
	}
	if len(seeds) > cfg.Horizon {
		return nil, configErrorf("initializer produced %d seed points, exceeding horizon %d", len(seeds), cfg.Horizon)
	}

	values := make([]float64, len(seeds))
	for i, x := range seeds {
		if values[i], err = f.Eval(x); err != nil {
			return nil, err
		}
	}

	model := cfg.Model
	if model == nil {
		model = defaultModel(b, values)
	}
	model.ObserveBatch(seeds, values)

	// Seed entries carry no recommendation; the remaining slots start
	// pending and are filled one per main-loop iteration.
	trace := make(Trace, cfg.Horizon)
	for i, x := range seeds {
		trace[i] = Step{Point: x, Value: values[i]}
	}

	oracle, _ := f.(NoiseFree)

	for next := len(seeds); next < cfg.Horizon; next++ {
		acq, err := comps.policy(model, rng)
		if err != nil {
			return nil, err
		}
		x, _, err := comps.solver(acq, b, rng)
		if err != nil {
			return nil, err
		}
		if cfg.Observer != nil {
			cfg.Observer(trace[:next], x, f, model, b, acq)
		}

		y, err := f.Eval(x)
		if err != nil {
			return nil, err
		}
		model.Observe(x, y)

		best, err := comps.recommender(model, b, rng)
		if err != nil {
			return nil, err
		}
		step := Step{Point: x, Value: y, Best: best}
		if oracle != nil {
			if step.BestValue, err = oracle.NoiseFreeEval(best); err != nil {
				return nil, err
			}
			step.BestKnown = true
		}
		trace[next] = step
	}
	return trace, nil
}
