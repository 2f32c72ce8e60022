/*
Package nozzle builds the diverging section contour of a Rao (thrust optimised parabolic) bell nozzle.

Position x is measured along the centreline from the throat, so the contour is defined on [0, Length].
References:
  - The Thrust Optimised Parabolic nozzle, AspireSpace
  - Design and analysis of contour bell nozzle and comparison with dual bell nozzle, https://core.ac.uk/download/pdf/154060575.pdf
*/
package nozzle

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/notargets/gonozzle/gas"
	"github.com/notargets/gonozzle/types"
)

const (
	// Radius of the throat arc on the diverging side, in throat radii
	DivergingArcFactor = 0.382
)

type Nozzle struct {
	At, Ae         float64 // Throat and exit plane areas (m^2)
	Rt, Re         float64 // Throat and exit radii (m)
	Type           types.NozzleType
	LengthFraction float64
	ThetaN         float64 // Inflection angle (rad)
	ThetaE         float64 // Exit angle (rad)
	Nx, Ny         float64 // Inflection point
	Ex, Ey         float64 // Exit point
	Length         float64
	A, B, C        float64 // Parabola coefficients for x = a*y^2 + b*y + c
}

func New(At, Ae float64, nozzleType types.NozzleType, lengthFraction float64) (nz *Nozzle, err error) {
	if At <= 0 || Ae < At {
		return nil, fmt.Errorf("%w: nozzle areas must satisfy Ae >= At > 0, have At = %g m^2, Ae = %g m^2",
			types.ErrConfiguration, At, Ae)
	}
	if nozzleType != types.NozzleRao {
		return nil, fmt.Errorf("%w: nozzle type %q is not currently implemented, try \"rao\"",
			types.ErrConfiguration, nozzleType.String())
	}
	nz = &Nozzle{
		At:             At,
		Ae:             Ae,
		Rt:             math.Sqrt(At / math.Pi),
		Re:             math.Sqrt(Ae / math.Pi),
		Type:           nozzleType,
		LengthFraction: lengthFraction,
	}
	areaRatio := Ae / At
	if nz.ThetaN, err = RaoThetaN(areaRatio, lengthFraction); err != nil {
		return nil, err
	}
	if nz.ThetaE, err = RaoThetaE(areaRatio, lengthFraction); err != nil {
		return nil, err
	}
	var (
		Rt = nz.Rt
		r  = DivergingArcFactor * Rt
	)
	nz.Nx = r * math.Cos(nz.ThetaN-math.Pi/2)
	nz.Ny = r*math.Sin(nz.ThetaN-math.Pi/2) + r + Rt
	nz.Ex = lengthFraction * ((nz.Re / Rt) - 1) * Rt / math.Tan(math.Pi/12)
	nz.Ey = nz.Re
	if err = nz.solveParabola(); err != nil {
		return nil, err
	}
	// The contour ends where it reaches the exit radius, which is where the exit tangent applies
	if nz.Re > nz.Ny {
		nz.Length = nz.A*nz.Re*nz.Re + nz.B*nz.Re + nz.C
	} else {
		// Nearly unit area ratios reach Re on the throat arc
		nz.Length = r * math.Cos(math.Asin((nz.Re-Rt-r)/r))
	}
	return
}

/*
solveParabola finds x = a*y^2 + b*y + c with slope dx/dy = cot(θn) at the inflection point,
dx/dy = cot(θe) at the exit and passing through the inflection point
*/
func (nz *Nozzle) solveParabola() (err error) {
	var (
		A = mat.NewDense(3, 3, []float64{
			2 * nz.Ny, 1, 0,
			2 * nz.Ey, 1, 0,
			nz.Ny * nz.Ny, nz.Ny, 1,
		})
		b      = mat.NewVecDense(3, []float64{1 / math.Tan(nz.ThetaN), 1 / math.Tan(nz.ThetaE), nz.Nx})
		coeffs mat.VecDense
	)
	if err = coeffs.SolveVec(A, b); err != nil {
		return fmt.Errorf("%w: unable to fit the bell contour parabola for area ratio %g: %v",
			types.ErrConfiguration, nz.Ae/nz.At, err)
	}
	nz.A, nz.B, nz.C = coeffs.AtVec(0), coeffs.AtVec(1), coeffs.AtVec(2)
	return
}

// FromEngineComponents sizes a nozzle that is choked at the throat and expands to pAmb at the exit
func FromEngineComponents(pg gas.PerfectGas, cc gas.ChamberConditions, pAmb float64,
	nozzleType types.NozzleType, lengthFraction float64) (nz *Nozzle, err error) {
	var Ae float64
	if Ae, err = gas.ExitArea(pg, cc, pAmb); err != nil {
		return
	}
	return New(gas.ThroatArea(pg, cc), Ae, nozzleType, lengthFraction)
}

// Y is the distance from the centreline to the contour at x downstream of the throat
func (nz *Nozzle) Y(x float64) (y float64, err error) {
	var (
		r = DivergingArcFactor * nz.Rt
	)
	switch {
	case x < 0:
		return math.NaN(), fmt.Errorf("%w: x must be greater than zero, you tried to input %g", types.ErrDomain, x)
	case x > nz.Length:
		return math.NaN(), fmt.Errorf("%w: x is beyond the end of the nozzle, which is only %g m long, you tried to input %g",
			types.ErrDomain, nz.Length, x)
	case x < nz.Nx:
		// Circular throat section, the angle is in [-90, 0] deg
		theta := -math.Acos(x / r)
		y = r*math.Sin(theta) + r + nz.Rt
	default:
		// Parabolic section, the quadratic solved for y
		y = (math.Sqrt(4*nz.A*(x-nz.C)+nz.B*nz.B) - nz.B) / (2 * nz.A)
	}
	return
}

// Area is the cross sectional area at x downstream of the throat
func (nz *Nozzle) Area(x float64) (A float64, err error) {
	var y float64
	if y, err = nz.Y(x); err != nil {
		return
	}
	return math.Pi * y * y, nil
}

// Sample returns N evenly spaced contour points from the throat to the exit, for plotting
func (nz *Nozzle) Sample(N int) (X, Y []float64) {
	if N < 2 {
		N = 2
	}
	X = make([]float64, N)
	Y = make([]float64, N)
	for i := range X {
		X[i] = nz.Length * float64(i) / float64(N-1)
		Y[i], _ = nz.Y(X[i])
	}
	X[N-1] = nz.Length
	Y[N-1], _ = nz.Y(nz.Length)
	return
}

func (nz *Nozzle) String() string {
	return fmt.Sprintf("Rao type nozzle (length fraction = %g)\n"+
		"Length = %g m\nThroat area = %g m^2\nExit area = %g m^2\nArea ratio = %g\n"+
		"Rao inflection angle = %g deg\nRao exit angle = %g deg",
		nz.LengthFraction, nz.Length, nz.At, nz.Ae, nz.Ae/nz.At, nz.ThetaN*180/math.Pi, nz.ThetaE*180/math.Pi)
}
