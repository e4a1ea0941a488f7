package bayesopt

// Step is one entry of the convergence trace: the point queried at
// this step, the value observed there, and the recommendation made
// after the model absorbed the observation.
type Step struct {
	// Point is the queried location. It is nil while the entry is
	// pending, which on a successful run never survives to the caller.
	Point []float64

	// Value is the observed objective at Point.
	Value float64

	// Best is the recommended point after this step. It stays nil for
	// entries backfilled from the seed batch, which run no
	// recommendation step.
	Best []float64

	// BestValue is the noise-free objective at Best. Meaningful only
	// when BestKnown is true, which requires the objective to expose a
	// NoiseFree oracle.
	BestValue float64

	// BestKnown reports whether BestValue was computed.
	BestKnown bool
}

// Pending reports whether the entry has been written yet.
func (s Step) Pending() bool { return s.Point == nil }

// Recommended reports whether a recommendation was recorded.
func (s Step) Recommended() bool { return s.Best != nil }

// Trace is the fixed-length record of a whole run, one Step per
// objective evaluation in order. Entries are immutable once written.
type Trace []Step

// Last returns the latest written entry, the run's final
// recommendation on a completed trace. The second return is false when
// nothing has been written.
func (t Trace) Last() (Step, bool) {
	for i := len(t) - 1; i >= 0; i-- {
		if !t[i].Pending() {
			return t[i], true
		}
	}
	return Step{}, false
}
