package bayesopt

import (
	"math"
	"sync"

	"gonum.org/v1/gonum/mat"
)

// GP is an exact-posterior Gaussian process regressor with a constant
// mean and additive observation noise. It is the default
// SurrogateModel.
//
// All methods are safe for concurrent use. The optimization loop
// itself is strictly sequential; the lock exists so independent
// readers (observers, tests) can inspect a model mid-run.
type GP struct {
	mu sync.RWMutex

	kernel Kernel
	noise  float64
	mean   float64

	xs [][]float64
	ys []float64

	chol  mat.Cholesky
	alpha *mat.VecDense
}

var _ SurrogateModel = (*GP)(nil)

// NewGP returns an empty model with the given covariance kernel,
// observation noise scale, and constant prior mean.
func NewGP(kernel Kernel, noise, mean float64) *GP {
	return &GP{kernel: kernel, noise: noise, mean: mean}
}

// Observe ingests a single observation and refreshes the posterior.
func (gp *GP) Observe(x []float64, y float64) {
	gp.mu.Lock()
	defer gp.mu.Unlock()

	gp.append(x, y)
	gp.factorize()
}

// ObserveBatch ingests a batch in one call, refactorizing once.
func (gp *GP) ObserveBatch(xs [][]float64, ys []float64) {
	if len(xs) != len(ys) {
		panic("bayesopt: observation batch lengths differ")
	}

	gp.mu.Lock()
	defer gp.mu.Unlock()

	for i := range xs {
		gp.append(xs[i], ys[i])
	}
	gp.factorize()
}

// append stores a defensive copy of the observation. Callers hold the
// write lock.
func (gp *GP) append(x []float64, y float64) {
	cp := make([]float64, len(x))
	copy(cp, x)

	gp.xs = append(gp.xs, cp)
	gp.ys = append(gp.ys, y)
}

// factorize rebuilds the Cholesky decomposition of the Gram matrix and
// the weight vector used by Predict. Callers hold the write lock.
// Jitter on the diagonal escalates until the factorization succeeds,
// which near-duplicate observations occasionally require.
func (gp *GP) factorize() {
	n := len(gp.xs)
	if n == 0 {
		return
	}

	gram := mat.NewSymDense(n, nil)
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			gram.SetSym(i, j, gp.kernel(gp.xs[i], gp.xs[j]))
		}
	}

	jitter := gp.noise * gp.noise
	if jitter == 0 {
		jitter = 1e-12
	}
	for {
		try := mat.NewSymDense(n, nil)
		try.CopySym(gram)
		for i := 0; i < n; i++ {
			try.SetSym(i, i, gram.At(i, i)+jitter)
		}
		if gp.chol.Factorize(try) {
			break
		}
		if jitter > 1e6 {
			panic("bayesopt: kernel matrix is not positive definite")
		}
		jitter *= 10
	}

	resid := mat.NewVecDense(n, nil)
	for i, y := range gp.ys {
		resid.SetVec(i, y-gp.mean)
	}
	gp.alpha = mat.NewVecDense(n, nil)
	if err := gp.chol.SolveVecTo(gp.alpha, resid); err != nil {
		panic(err)
	}
}

// Predict returns the posterior mean and variance at x. With no
// observations it falls back to the prior.
func (gp *GP) Predict(x []float64) (mean, variance float64) {
	gp.mu.RLock()
	defer gp.mu.RUnlock()

	prior := gp.kernel(x, x)
	n := len(gp.xs)
	if n == 0 {
		return gp.mean, prior
	}

	ks := mat.NewVecDense(n, nil)
	for i := range gp.xs {
		ks.SetVec(i, gp.kernel(x, gp.xs[i]))
	}

	mean = gp.mean + mat.Dot(ks, gp.alpha)

	v := mat.NewVecDense(n, nil)
	if err := gp.chol.SolveVecTo(v, ks); err != nil {
		panic(err)
	}
	variance = prior - mat.Dot(ks, v)
	if variance < 0 {
		variance = 0
	}
	return mean, variance
}

// Len reports the number of ingested observations.
func (gp *GP) Len() int {
	gp.mu.RLock()
	defer gp.mu.RUnlock()

	return len(gp.xs)
}

// Incumbent returns a copy of the observed pair with the largest
// value, or (nil, -Inf) with no observations.
func (gp *GP) Incumbent() ([]float64, float64) {
	gp.mu.RLock()
	defer gp.mu.RUnlock()

	best := math.Inf(-1)
	var bx []float64
	for i, y := range gp.ys {
		if y > best {
			best = y
			bx = gp.xs[i]
		}
	}
	if bx == nil {
		return nil, best
	}
	cp := make([]float64, len(bx))
	copy(cp, bx)
	return cp, best
}

// Observations returns copies of the ingested inputs and values.
func (gp *GP) Observations() ([][]float64, []float64) {
	gp.mu.RLock()
	defer gp.mu.RUnlock()

	xs := make([][]float64, len(gp.xs))
	for i, x := range gp.xs {
		cp := make([]float64, len(x))
		copy(cp, x)
		xs[i] = cp
	}
	ys := make([]float64, len(gp.ys))
	copy(ys, gp.ys)
	return xs, ys
}
