package bayesopt

import (
	"sort"
	"strings"
)

// component pairs an exported strategy name with its implementation.
type component[F any] struct {
	name string
	fn   F
}

// registry maps normalized strategy names to implementations. One
// registry per pluggable role, built once at process start.
type registry[F any] struct {
	role   string
	byName map[string]F
}

// newRegistry normalizes each component name by stripping the role's
// prefix and suffix conventions and lower-casing the remainder. Two
// names normalizing to the same key are a configuration error, never a
// silent overwrite.
func newRegistry[F any](role, prefix, suffix string, comps []component[F]) (registry[F], error) {
	r := registry[F]{role: role, byName: make(map[string]F, len(comps))}
	for _, c := range comps {
		key := strings.ToLower(strings.TrimSuffix(strings.TrimPrefix(c.name, prefix), suffix))
		if _, dup := r.byName[key]; dup {
			return registry[F]{}, configErrorf("%s registry: %q collides with an existing entry under key %q", role, c.name, key)
		}
		r.byName[key] = c.fn
	}
	return r, nil
}

// lookup resolves a case-folded name, listing the known names on a
// miss.
func (r registry[F]) lookup(name string) (F, error) {
	fn, ok := r.byName[strings.ToLower(name)]
	if !ok {
		return fn, configErrorf("unknown %s %q (known: %s)", r.role, name, strings.Join(r.names(), ", "))
	}
	return fn, nil
}

func (r registry[F]) names() []string {
	names := make([]string, 0, len(r.byName))
	for k := range r.byName {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

func mustRegistry[F any](r registry[F], err error) registry[F] {
	if err != nil {
		panic(err)
	}
	return r
}

// The four role registries. Keys follow the exported identifiers with
// the role prefix stripped, so PolicyEI resolves as "ei", InitMiddle
// as "middle", SolveLBFGS as "lbfgs", and BestLatent as "latent".
var (
	policies = mustRegistry(newRegistry("policy", "Policy", "", []component[Policy]{
		{"PolicyEI", PolicyEI},
		{"PolicyPI", PolicyPI},
		{"PolicyUCB", PolicyUCB},
		{"PolicyThompson", PolicyThompson},
	}))

	initializers = mustRegistry(newRegistry("initializer", "Init", "", []component[Initializer]{
		{"InitMiddle", InitMiddle},
		{"InitUniform", InitUniform},
		{"InitLatin", InitLatin},
	}))

	solvers = mustRegistry(newRegistry("solver", "Solve", "", []component[Solver]{
		{"SolveLBFGS", SolveLBFGS},
		{"SolveRandom", SolveRandom},
	}))

	recommenders = mustRegistry(newRegistry("recommender", "Best", "", []component[Recommender]{
		{"BestLatent", BestLatent},
		{"BestIncumbent", BestIncumbent},
		{"BestObserved", BestObserved},
	}))
)
