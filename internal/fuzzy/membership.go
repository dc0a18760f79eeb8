// Package fuzzy implements Tsukamoto fuzzy inference with trapezoidal
// and triangular membership functions.
package fuzzy

// slopeEpsilon keeps degenerate slopes (equal breakpoints) from dividing
// by zero; it matches the epsilon the membership math was tuned with.
const slopeEpsilon = 1e-6

// MembershipFunc maps a crisp value to a membership grade in [0, 1].
type MembershipFunc interface {
	Grade(x float64) float64
}

// Trapezoid is a trapezoidal membership function with feet at A and D
// and a plateau between B and C. A <= B <= C <= D is expected; shoulder
// shapes are expressed by pushing A or D far outside the universe.
type Trapezoid struct {
	A, B, C, D float64
}

// Grade returns the membership grade of x.
func (t Trapezoid) Grade(x float64) float64 {
	rise := (x - t.A) / (t.B - t.A + slopeEpsilon)
	fall := (t.D - x) / (t.D - t.C + slopeEpsilon)
	return max(0, min(rise, 1, fall))
}

// Triangle is a triangular membership function peaking at B.
type Triangle struct {
	A, B, C float64
}

// Grade returns the membership grade of x.
func (t Triangle) Grade(x float64) float64 {
	rise := (x - t.A) / (t.B - t.A + slopeEpsilon)
	fall := (t.C - x) / (t.C - t.B + slopeEpsilon)
	return max(0, min(rise, fall))
}
