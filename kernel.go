package bayesopt

import "math"

// Kernel measures covariance between two points in the domain.
type Kernel func(a, b []float64) float64

// scaledSqDist is the squared Euclidean distance after dividing each
// coordinate by its length scale.
func scaledSqDist(a, b, ell []float64) float64 {
	if len(a) != len(b) || len(a) != len(ell) {
		panic("bayesopt: kernel inputs must share the bounds' dimensionality")
	}
	var sum float64
	for i := range a {
		d := (a[i] - b[i]) / ell[i]
		sum += d * d
	}
	return sum
}

// RBF returns the squared-exponential kernel with the given signal
// scale and per-dimension length scales.
func RBF(signal float64, lengthScales []float64) Kernel {
	sf2 := signal * signal
	return func(a, b []float64) float64 {
		return sf2 * math.Exp(-0.5*scaledSqDist(a, b, lengthScales))
	}
}

// Matern52 returns the Matérn kernel with smoothness 5/2, the
// covariance of the zero-tuning default surrogate.
func Matern52(signal float64, lengthScales []float64) Kernel {
	sf2 := signal * signal
	return func(a, b []float64) float64 {
		r := math.Sqrt(5 * scaledSqDist(a, b, lengthScales))
		return sf2 * (1 + r + r*r/3) * math.Exp(-r)
	}
}
