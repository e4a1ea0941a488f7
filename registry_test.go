package bayesopt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistryNormalization(t *testing.T) {
	r, err := newRegistry("policy", "Policy", "", []component[string]{
		{"PolicyEI", "ei-impl"},
		{"Custom", "custom-impl"},
	})
	require.NoError(t, err)

	// Prefix stripped, remainder case-folded; lookups case-fold too.
	got, err := r.lookup("EI")
	require.NoError(t, err)
	assert.Equal(t, "ei-impl", got)

	// Names without the prefix pass through untouched.
	got, err = r.lookup("custom")
	require.NoError(t, err)
	assert.Equal(t, "custom-impl", got)
}

func TestRegistrySuffixStripping(t *testing.T) {
	r, err := newRegistry("solver", "Solve", "Method", []component[int]{
		{"SolveGridMethod", 1},
	})
	require.NoError(t, err)

	got, err := r.lookup("grid")
	require.NoError(t, err)
	assert.Equal(t, 1, got)
}

func TestRegistryCollision(t *testing.T) {
	// "SolveGrid" and "Grid" both normalize to "grid"; construction
	// must fail instead of silently keeping one.
	_, err := newRegistry("solver", "Solve", "", []component[int]{
		{"SolveGrid", 1},
		{"Grid", 2},
	})

	var cerr *ConfigurationError
	require.ErrorAs(t, err, &cerr)
}

func TestRegistryUnknownName(t *testing.T) {
	_, err := policies.lookup("nope")

	var cerr *ConfigurationError
	require.ErrorAs(t, err, &cerr)
	assert.Contains(t, err.Error(), "ei")
}

func TestRegistryIdempotentConstruction(t *testing.T) {
	comps := []component[int]{
		{"InitMiddle", 1},
		{"InitLatin", 2},
	}

	a, err := newRegistry("initializer", "Init", "", comps)
	require.NoError(t, err)
	b, err := newRegistry("initializer", "Init", "", comps)
	require.NoError(t, err)

	assert.Equal(t, a.names(), b.names())
	for _, name := range a.names() {
		av, err := a.lookup(name)
		require.NoError(t, err)
		bv, err := b.lookup(name)
		require.NoError(t, err)
		assert.Equal(t, av, bv)
	}
}

func TestBuiltinRegistries(t *testing.T) {
	assert.Equal(t, []string{"ei", "pi", "thompson", "ucb"}, policies.names())
	assert.Equal(t, []string{"latin", "middle", "uniform"}, initializers.names())
	assert.Equal(t, []string{"lbfgs", "random"}, solvers.names())
	assert.Equal(t, []string{"incumbent", "latent", "observed"}, recommenders.names())
}
