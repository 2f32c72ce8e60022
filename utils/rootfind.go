package utils

import (
	"errors"
	"fmt"
	"math"
)

const (
	RootTol      = 1.e-12
	RootMaxIters = 200
)

var ErrNotBracketed = errors.New("root is not bracketed")

/*
BrentRoot finds a zero of f inside [a, b] using Brent's method (inverse quadratic interpolation with
bisection fallback). f(a) and f(b) must have opposite signs, or one of them must be zero.
*/
func BrentRoot(f func(x float64) float64, a, b float64) (root float64, err error) {
	var (
		fa, fb         = f(a), f(b)
		c, fc          float64
		d, e           float64
		p, q, r, s     float64
		tol1, xm, min1 float64
	)
	switch {
	case fa == 0:
		return a, nil
	case fb == 0:
		return b, nil
	case math.IsNaN(fa) || math.IsNaN(fb):
		return math.NaN(), fmt.Errorf("function is NaN at the bracket [%g, %g]", a, b)
	case fa*fb > 0:
		return math.NaN(), fmt.Errorf("%w: f(%g) = %g, f(%g) = %g", ErrNotBracketed, a, fa, b, fb)
	}
	c, fc = b, fb
	for iter := 0; iter < RootMaxIters; iter++ {
		if (fb > 0 && fc > 0) || (fb < 0 && fc < 0) {
			c, fc = a, fa
			d = b - a
			e = d
		}
		if math.Abs(fc) < math.Abs(fb) {
			a, b, c = b, c, b
			fa, fb, fc = fb, fc, fb
		}
		tol1 = 2*math.SmallestNonzeroFloat64 + 0.5*RootTol*math.Max(1, math.Abs(b))
		xm = 0.5 * (c - b)
		if math.Abs(xm) <= tol1 || fb == 0 {
			return b, nil
		}
		if math.Abs(e) >= tol1 && math.Abs(fa) > math.Abs(fb) {
			// Attempt inverse quadratic interpolation
			s = fb / fa
			if a == c {
				p = 2 * xm * s
				q = 1 - s
			} else {
				q = fa / fc
				r = fb / fc
				p = s * (2*xm*q*(q-r) - (b-a)*(r-1))
				q = (q - 1) * (r - 1) * (s - 1)
			}
			if p > 0 {
				q = -q
			}
			p = math.Abs(p)
			min1 = 3*xm*q - math.Abs(tol1*q)
			if 2*p < math.Min(min1, math.Abs(e*q)) {
				e = d
				d = p / q
			} else {
				d = xm
				e = d
			}
		} else {
			d = xm
			e = d
		}
		a, fa = b, fb
		if math.Abs(d) > tol1 {
			b += d
		} else {
			b += math.Copysign(tol1, xm)
		}
		fb = f(b)
	}
	return b, fmt.Errorf("root finding did not converge in %d iterations, last estimate %g", RootMaxIters, b)
}
