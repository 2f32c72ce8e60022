/*
Package geometry extends a nozzle contour upstream of the throat into a converging section and a
constant area combustion chamber. x = 0 is the throat and x < 0 is inside the chamber.
*/
package geometry

import (
	"fmt"
	"math"

	"github.com/notargets/gonozzle/nozzle"
	"github.com/notargets/gonozzle/types"
	"github.com/notargets/gonozzle/utils"
)

const (
	// Radius of the throat arc on the converging side, in throat radii
	ConvergingArcFactor = 1.5
	// The converging arc never starts further round than this angle
	ThetaConvergingLimit = -3 * math.Pi / 4
)

type EngineGeometry struct {
	Nozzle        *nozzle.Nozzle
	ChamberLength float64 // m
	ChamberArea   float64 // m^2
	ChamberRadius float64 // m
	WallThickness []float64
	Style         types.GeometryStyle

	ThetaConvergingStart float64 // Angle at which the converging arc starts (rad)
	XConvergingStart     float64 // Upstream end of the converging arc
	YConvergingStart     float64
	XChamberEnd          float64 // Where the converging section meets the chamber radius
	XMin, XMax           float64 // Injector face and nozzle exit

	thickness *utils.Table1D
}

/*
New builds the upstream geometry for the nozzle. The wall thickness samples are spread evenly from
the injector face to the nozzle exit, a single value gives a constant thickness.
*/
func New(nz *nozzle.Nozzle, chamberLength, chamberArea float64, wallThickness []float64,
	style types.GeometryStyle) (eg *EngineGeometry, err error) {
	if nz.At > chamberArea {
		return nil, fmt.Errorf("%w: the combustion chamber area %g m^2 is smaller than the throat area %g m^2",
			types.ErrConfiguration, chamberArea, nz.At)
	}
	if chamberLength < 0 {
		return nil, fmt.Errorf("%w: chamber length must not be negative, have %g m", types.ErrConfiguration, chamberLength)
	}
	if style != types.GeometryAuto {
		return nil, fmt.Errorf("%w: geometry style %q is not implemented, the only option is \"auto\"",
			types.ErrConfiguration, style.String())
	}
	if len(wallThickness) == 0 {
		return nil, fmt.Errorf("%w: at least one wall thickness value is needed", types.ErrConfiguration)
	}
	for _, th := range wallThickness {
		if th <= 0 {
			return nil, fmt.Errorf("%w: wall thickness must be positive, have %g m", types.ErrConfiguration, th)
		}
	}
	eg = &EngineGeometry{
		Nozzle:        nz,
		ChamberLength: chamberLength,
		ChamberArea:   chamberArea,
		ChamberRadius: math.Sqrt(chamberArea / math.Pi),
		WallThickness: append([]float64(nil), wallThickness...),
		Style:         style,
	}
	eg.buildAuto()
	eg.XMin = eg.XChamberEnd - chamberLength
	eg.XMax = nz.Length
	positions := utils.Linspace(eg.XMin, eg.XMax, len(wallThickness))
	if len(positions) > 1 && positions[0] == positions[len(positions)-1] {
		positions = positions[:1]
		eg.WallThickness = eg.WallThickness[:1]
	}
	if eg.thickness, err = utils.NewTable1D(positions, eg.WallThickness); err != nil {
		return nil, fmt.Errorf("%w: %v", types.ErrConfiguration, err)
	}
	return
}

/*
buildAuto caps the converging arc so it never rises above the chamber radius. A straight line
tangent to the arc carries the wall from the arc start up to the chamber radius.
*/
func (eg *EngineGeometry) buildAuto() {
	var (
		Rt       = eg.Nozzle.Rt
		Rc       = eg.ChamberRadius
		rArc     = ConvergingArcFactor * Rt
		theta    = ThetaConvergingLimit
		sinTheta = (Rc - Rt - rArc) / rArc
	)
	// Angle at which the arc itself reaches the chamber radius
	if sinTheta <= 1 {
		if thetaMin := -math.Pi - math.Asin(sinTheta); thetaMin > ThetaConvergingLimit {
			theta = thetaMin
		}
	}
	eg.ThetaConvergingStart = theta
	eg.XConvergingStart = math.Min(rArc*math.Cos(theta), 0)
	eg.YConvergingStart = rArc*math.Sin(theta) + rArc + Rt
	if theta != ThetaConvergingLimit || eg.YConvergingStart >= Rc {
		// The arc runs all the way up to the chamber
		eg.YConvergingStart = Rc
		eg.XChamberEnd = eg.XConvergingStart
		return
	}
	// Wall slope dy/dx at the arc start, negative because the wall closes in towards the throat
	dydx := -math.Cos(theta) / math.Sin(theta)
	eg.XChamberEnd = eg.XConvergingStart + (Rc-eg.YConvergingStart)/dydx
}

// Y is the radius of the engine contour at x
func (eg *EngineGeometry) Y(x float64) (y float64, err error) {
	var (
		Rt   = eg.Nozzle.Rt
		rArc = ConvergingArcFactor * Rt
	)
	switch {
	case x >= 0:
		return eg.Nozzle.Y(x)
	case x > eg.XConvergingStart:
		// Curved converging section, the angle is in [-180, -90] deg
		theta := -math.Acos(x / rArc)
		y = math.Min(rArc*math.Sin(theta)+rArc+Rt, eg.ChamberRadius)
	case x >= eg.XChamberEnd:
		// Straight part of the converging section
		if eg.XConvergingStart == eg.XChamberEnd {
			return eg.YConvergingStart, nil
		}
		f := (x - eg.XChamberEnd) / (eg.XConvergingStart - eg.XChamberEnd)
		y = eg.ChamberRadius + f*(eg.YConvergingStart-eg.ChamberRadius)
	case x >= eg.XMin:
		y = eg.ChamberRadius
	default:
		return math.NaN(), fmt.Errorf("%w: x is beyond the front of the engine, you tried to input %g "+
			"but the minimum value you're allowed is %g", types.ErrDomain, x, eg.XMin)
	}
	return
}

// Area is the engine cross sectional area at x
func (eg *EngineGeometry) Area(x float64) (A float64, err error) {
	var y float64
	if y, err = eg.Y(x); err != nil {
		return
	}
	return math.Pi * y * y, nil
}

// WallThicknessAt is the inner liner thickness at x
func (eg *EngineGeometry) WallThicknessAt(x float64) float64 {
	return eg.thickness.At(x)
}

// LinerProfile maps the wall thickness onto a set of axial stations
func (eg *EngineGeometry) LinerProfile(X []float64) (liner []float64) {
	liner = make([]float64, len(X))
	for i, x := range X {
		liner[i] = eg.WallThicknessAt(x)
	}
	return
}

// Sample returns N evenly spaced contour points from the injector face to the nozzle exit
func (eg *EngineGeometry) Sample(N int) (X, Y []float64) {
	if N < 2 {
		N = 2
	}
	X = utils.Linspace(eg.XMin, eg.XMax, N)
	Y = make([]float64, N)
	for i, x := range X {
		Y[i], _ = eg.Y(x)
	}
	return
}
