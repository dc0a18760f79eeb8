package fuzzy

// DefaultPoints is the default discretization of a universe.
const DefaultPoints = 1000

// Universe is a discretized axis over which consequents are defuzzified.
type Universe struct {
	// Min and Max are the inclusive bounds of the axis.
	Min, Max float64
	// Points is the number of evenly spaced samples, including both bounds.
	Points int
}

// NewUniverse creates a universe with the default number of samples.
func NewUniverse(min, max float64) Universe {
	return Universe{Min: min, Max: max, Points: DefaultPoints}
}

// Samples returns the evenly spaced sample values from Min to Max inclusive.
func (u Universe) Samples() []float64 {
	n := u.Points
	if n < 2 {
		n = 2
	}
	step := (u.Max - u.Min) / float64(n-1)
	out := make([]float64, n)
	for i := range out {
		out[i] = u.Min + float64(i)*step
	}
	// Guard against floating point drift on the last sample.
	out[n-1] = u.Max
	return out
}

// Mean returns the midpoint of the universe, the fallback crisp value when
// no sample reaches a rule's firing strength.
func (u Universe) Mean() float64 {
	return (u.Min + u.Max) / 2
}
