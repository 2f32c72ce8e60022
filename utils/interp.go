package utils

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/interp"
)

/*
Table1D is a piecewise linear lookup over ascending abscissae. Outside the data range the
end values are returned, and a single sample acts as a constant.
*/
type Table1D struct {
	X, Y []float64
	pl   interp.PiecewiseLinear
}

func NewTable1D(X, Y []float64) (tb *Table1D, err error) {
	if len(X) != len(Y) {
		return nil, fmt.Errorf("table abscissa and ordinate lengths differ: %d != %d", len(X), len(Y))
	}
	if len(X) == 0 {
		return nil, fmt.Errorf("table has no data")
	}
	for i := 1; i < len(X); i++ {
		if X[i] <= X[i-1] {
			return nil, fmt.Errorf("table abscissae must be strictly increasing, X[%d] = %g follows %g", i, X[i], X[i-1])
		}
	}
	tb = &Table1D{X: X, Y: Y}
	if len(X) > 1 {
		if err = tb.pl.Fit(X, Y); err != nil {
			return nil, err
		}
	}
	return
}

// MustTable1D is for tables embedded in source, which are known to be valid
func MustTable1D(X, Y []float64) (tb *Table1D) {
	var err error
	if tb, err = NewTable1D(X, Y); err != nil {
		panic(err)
	}
	return
}

func (tb *Table1D) At(x float64) float64 {
	if len(tb.X) == 1 {
		return tb.Y[0]
	}
	return tb.pl.Predict(x)
}

func (tb *Table1D) Min() float64 { return tb.X[0] }

func (tb *Table1D) Max() float64 { return tb.X[len(tb.X)-1] }

// Linspace returns N evenly spaced values from start to end inclusive, in either direction
func Linspace(start, end float64, N int) (v []float64) {
	switch {
	case N <= 0:
		return nil
	case N == 1:
		return []float64{start}
	}
	v = make([]float64, N)
	floats.Span(v, start, end)
	// Pin the far end, the span can land an ulp outside a bounded domain
	v[N-1] = end
	return
}
