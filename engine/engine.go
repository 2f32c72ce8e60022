/*
Package engine combines the exhaust gas, chamber conditions, nozzle and the optional chamber
geometry and cooling jacket into a quasi 1D engine model.

Conventions:
  - x = 0 at the throat, x < 0 in the combustion chamber, x > 0 in the diverging section
  - Subscripts: 0 stagnation, t throat, e exit plane, amb ambient
*/
package engine

import (
	"fmt"
	"math"

	"github.com/notargets/gonozzle/cooling"
	"github.com/notargets/gonozzle/gas"
	"github.com/notargets/gonozzle/geometry"
	"github.com/notargets/gonozzle/isentropic"
	"github.com/notargets/gonozzle/nozzle"
	"github.com/notargets/gonozzle/provider"
	"github.com/notargets/gonozzle/types"
)

type Engine struct {
	Gas     gas.PerfectGas
	Chamber gas.ChamberConditions
	Nozzle  *nozzle.Nozzle
	CStar   float64 // Characteristic velocity p0*At/mdot (m/s)

	Geometry         *geometry.EngineGeometry
	CoolingJacket    *cooling.CoolingJacket
	ExhaustTransport provider.ExhaustTransport

	chamberSpec *chamberSpec
}

// The chamber inputs, kept so the geometry can be rebuilt around a new nozzle
type chamberSpec struct {
	length, area  float64
	wallThickness []float64
	style         types.GeometryStyle
}

/*
New checks that the nozzle throat is choked for the gas and chamber conditions. A throat larger than
the sonic area returns an *types.UnchokedError carrying the largest throat that would choke.
*/
func New(pg gas.PerfectGas, cc gas.ChamberConditions, nz *nozzle.Nozzle) (e *Engine, err error) {
	if nz == nil {
		return nil, fmt.Errorf("%w: the engine needs a nozzle", types.ErrConfiguration)
	}
	maxAt := gas.ThroatArea(pg, cc)
	if nz.At > maxAt {
		return nil, &types.UnchokedError{At: nz.At, MaxAt: maxAt}
	}
	e = &Engine{
		Gas:     pg,
		Chamber: cc,
		Nozzle:  nz,
		CStar:   cc.P0 * nz.At / cc.Mdot,
	}
	return
}

/*
WithNozzle returns a new engine around nz, with the choked throat check and CStar redone and the
geometry rebuilt from the same chamber inputs. The receiver is not modified.
*/
func (e *Engine) WithNozzle(nz *nozzle.Nozzle) (ne *Engine, err error) {
	if ne, err = New(e.Gas, e.Chamber, nz); err != nil {
		return
	}
	if cs := e.chamberSpec; cs != nil {
		if err = ne.AddGeometry(cs.length, cs.area, cs.wallThickness, cs.style); err != nil {
			return nil, err
		}
	}
	ne.CoolingJacket = e.CoolingJacket
	ne.ExhaustTransport = e.ExhaustTransport
	return
}

// AddGeometry adds the converging section and combustion chamber, needed for anything upstream of the throat
func (e *Engine) AddGeometry(chamberLength, chamberArea float64, wallThickness []float64,
	style types.GeometryStyle) (err error) {
	var eg *geometry.EngineGeometry
	if eg, err = geometry.New(e.Nozzle, chamberLength, chamberArea, wallThickness, style); err != nil {
		return
	}
	e.Geometry = eg
	e.chamberSpec = &chamberSpec{
		length:        chamberLength,
		area:          chamberArea,
		wallThickness: append([]float64(nil), wallThickness...),
		style:         style,
	}
	return
}

func (e *Engine) AddCoolingJacket(cj *cooling.CoolingJacket) { e.CoolingJacket = cj }

func (e *Engine) AddExhaustTransport(et provider.ExhaustTransport) { e.ExhaustTransport = et }

// Y is the radius of the engine contour at x
func (e *Engine) Y(x float64) (y float64, err error) {
	if x >= 0 {
		return e.Nozzle.Y(x)
	}
	if e.Geometry == nil {
		return math.NaN(), fmt.Errorf("%w: geometry is not defined for x < 0, add it with AddGeometry",
			types.ErrMissingComponent)
	}
	return e.Geometry.Y(x)
}

// A is the cross sectional area at x
func (e *Engine) A(x float64) (A float64, err error) {
	var y float64
	if y, err = e.Y(x); err != nil {
		return
	}
	return math.Pi * y * y, nil
}

// M is the freestream Mach number at x, sonic at the throat, supersonic downstream and subsonic upstream
func (e *Engine) M(x float64) (M float64, err error) {
	if x == 0 {
		return 1, nil
	}
	var A float64
	if A, err = e.A(x); err != nil {
		return math.NaN(), err
	}
	mBar := gas.MassFlowParameter(e.Gas, e.Chamber) / A
	if M, err = isentropic.MachFromMBar(mBar, e.Gas.Gamma, x > 0); err != nil {
		return math.NaN(), fmt.Errorf("at x = %g m: %w", x, err)
	}
	return
}

// T is the freestream static temperature at x
func (e *Engine) T(x float64) (T float64, err error) {
	var M float64
	if M, err = e.M(x); err != nil {
		return math.NaN(), err
	}
	return isentropic.T(e.Chamber.T0, M, e.Gas.Gamma), nil
}

// P is the freestream static pressure at x
func (e *Engine) P(x float64) (p float64, err error) {
	var M float64
	if M, err = e.M(x); err != nil {
		return math.NaN(), err
	}
	return isentropic.P(e.Chamber.P0, M, e.Gas.Gamma), nil
}

// Rho is the freestream density at x
func (e *Engine) Rho(x float64) (rho float64, err error) {
	var fs FlowState
	if fs, err = e.State(x); err != nil {
		return math.NaN(), err
	}
	return fs.Rho, nil
}

// FlowState is the freestream state at one axial position
type FlowState struct {
	X, Y, A   float64
	M         float64
	T, P, Rho float64
}

// State solves the Mach number once and derives the rest of the freestream state from it
func (e *Engine) State(x float64) (fs FlowState, err error) {
	fs.X = x
	if fs.Y, err = e.Y(x); err != nil {
		return
	}
	fs.A = math.Pi * fs.Y * fs.Y
	if fs.M, err = e.M(x); err != nil {
		return
	}
	fs.T = isentropic.T(e.Chamber.T0, fs.M, e.Gas.Gamma)
	fs.P = isentropic.P(e.Chamber.P0, fs.M, e.Gas.Gamma)
	fs.Rho = fs.P / (e.Gas.R * fs.T)
	return
}

func (e *Engine) String() string {
	return fmt.Sprintf("%s\nchamber: p0 = %g Pa, T0 = %g K, mdot = %g kg/s\nc* = %g m/s\n%s",
		e.Gas, e.Chamber.P0, e.Chamber.T0, e.Chamber.Mdot, e.CStar, e.Nozzle)
}
