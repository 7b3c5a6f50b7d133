// Package escape implements escape-time iteration of the quadratic map
// z <- z^2 + c together with the smooth (fractional) iteration count.
package escape

import "math"

// Bailout is the squared modulus beyond which a point has escaped.
const Bailout = 4.0

var log10Two = math.Log10(2)

// Result is the outcome of iterating a single point.
type Result struct {
	Iterations int
	X, Y       float64
	Escaped    bool
}

// Iterate runs z <- z^2 + c from z = 0 with c = (x0, y0) until |z|^2 exceeds
// Bailout or maxIteration is reached. Iterations never exceeds maxIteration.
func Iterate(x0, y0 float64, maxIteration int) Result {
	x, y := 0.0, 0.0
	n := 0
	for x*x+y*y <= Bailout && n < maxIteration {
		xt := x*x - y*y + x0
		y = 2*x*y + y0
		x = xt
		n++
	}
	return Result{Iterations: n, X: x, Y: y, Escaped: n < maxIteration}
}

// Smooth returns the fractionally corrected iteration count. The correction
// n + 1 - log10(log10(|z|)/log10(2))/log10(2) is applied only to escaped
// points; other results report the raw count.
func Smooth(r Result) float64 {
	n := float64(r.Iterations)
	if !r.Escaped {
		return n
	}
	logZn := math.Log10(r.X*r.X+r.Y*r.Y) / 2
	nu := math.Log10(logZn/log10Two) / log10Two
	return n + 1 - nu
}

// SmoothAt iterates (x0, y0) and returns the smooth count and escape flag.
func SmoothAt(x0, y0 float64, maxIteration int) (float64, bool) {
	r := Iterate(x0, y0, maxIteration)
	return Smooth(r), r.Escaped
}
