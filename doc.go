// Package bayesopt maximizes expensive black-box functions over a
// bounded continuous domain using sequential model-based (Bayesian)
// optimization.
//
// A run composes four pluggable strategies, each resolved by name
// against a built-in registry:
//
//   - an initializer produces the seed batch of query points
//     ("middle", "uniform", "latin")
//   - a policy turns the current surrogate model into an acquisition
//     surface ("ei", "pi", "ucb", "thompson")
//   - a solver maximizes that surface over the box ("lbfgs", "random")
//   - a recommender proposes the best-known point after every
//     observation ("latent", "incumbent", "observed")
//
// The loop evaluates the objective at the seed batch, feeds the
// observations to the surrogate model, then repeatedly asks the policy
// for an acquisition surface, the solver for its maximizer, the
// objective for a value there, and the recommender for the current
// best guess, recording every step in a fixed-length convergence
// trace.
//
// Usage example:
//
//	obj := bayesopt.ObjectiveFunc(func(x []float64) (float64, error) {
//	    return -(x[0] - 0.3) * (x[0] - 0.3), nil
//	})
//
//	cfg := bayesopt.DefaultConfig()
//	cfg.Horizon = 30
//
//	trace, err := bayesopt.Solve(obj, bayesopt.Of([2]float64{0, 1}), cfg)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	best, _ := trace.Last()
//	fmt.Println(best.Best)
//
// The surrogate defaults to a Matérn-5/2 Gaussian process configured
// from the seed observations; any SurrogateModel implementation can
// replace it, pre-seeded or empty. Unknown strategy names, invalid
// bounds, and seed batches larger than the horizon fail with a
// ConfigurationError before the objective is ever evaluated. Errors
// raised by the objective or by a strategy abort the run; no partial
// trace is returned.
//
// A run is strictly sequential and owns its model and trace. For
// concurrent optimization, make independent Solve calls, each with its
// own model.
package bayesopt
